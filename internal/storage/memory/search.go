package memory

import (
	"context"
	"sort"
	"strings"

	"LearnHub/internal/models"
)

// CourseSearchMemory scans the shared course map directly, so the index
// maintenance hooks are no-ops.
type CourseSearchMemory struct {
	s *Storage
}

func NewCourseSearchMemory(s *Storage) *CourseSearchMemory {
	return &CourseSearchMemory{s: s}
}

func (r *CourseSearchMemory) Index(_ context.Context, _ models.Course) error  { return nil }
func (r *CourseSearchMemory) Update(_ context.Context, _ models.Course) error { return nil }
func (r *CourseSearchMemory) Delete(_ context.Context, _ int64) error         { return nil }

// Search matches the query as a case-insensitive substring of the title,
// description, category or instructor.
func (r *CourseSearchMemory) Search(_ context.Context, query string, size int) ([]int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	term := strings.ToLower(query)
	var ids []int64
	for _, c := range r.s.courses {
		if strings.Contains(strings.ToLower(c.Title), term) ||
			strings.Contains(strings.ToLower(c.Description), term) ||
			strings.Contains(strings.ToLower(c.Category), term) ||
			strings.Contains(strings.ToLower(c.Instructor), term) {
			ids = append(ids, c.ID)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	if size > 0 && len(ids) > size {
		ids = ids[:size]
	}
	return ids, nil
}
