package memory

import (
	"context"
	"sort"

	"LearnHub/internal/models"
)

type ProgressMemory struct {
	s *Storage
}

func NewProgressMemory(s *Storage) *ProgressMemory {
	return &ProgressMemory{s: s}
}

func (r *ProgressMemory) CourseProgress(_ context.Context, userID, courseID int64) (*models.CourseProgress, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	p, ok := r.s.progress[pairKey{userID, courseID}]
	if !ok {
		return nil, nil
	}
	return copyProgress(p), nil
}

func (r *ProgressMemory) UserProgress(_ context.Context, userID int64) ([]models.CourseProgress, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var records []models.CourseProgress
	for key, p := range r.s.progress {
		if key.userID == userID {
			records = append(records, *copyProgress(p))
		}
	}
	sort.Slice(records, func(i, j int) bool { return records[i].LastAccessed.After(records[j].LastAccessed) })
	return records, nil
}

func (r *ProgressMemory) SaveProgress(_ context.Context, progress *models.CourseProgress) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.progress[pairKey{progress.UserID, progress.CourseID}] = copyProgress(progress)
	return nil
}
