package memory

import (
	"context"
	"sort"
	"time"

	"LearnHub/internal/app_errors"
	"LearnHub/internal/models"
)

type EnrollmentMemory struct {
	s *Storage
}

func NewEnrollmentMemory(s *Storage) *EnrollmentMemory {
	return &EnrollmentMemory{s: s}
}

func (r *EnrollmentMemory) Enroll(_ context.Context, userID, courseID int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	key := pairKey{userID, courseID}
	if _, ok := r.s.enrollments[key]; ok {
		return nil
	}
	r.s.enrollments[key] = models.Enrollment{
		UserID:     userID,
		CourseID:   courseID,
		EnrolledAt: time.Now().UTC(),
	}
	return nil
}

func (r *EnrollmentMemory) Unenroll(_ context.Context, userID, courseID int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	key := pairKey{userID, courseID}
	if _, ok := r.s.enrollments[key]; !ok {
		return app_errors.ErrNotEnrolled
	}
	delete(r.s.enrollments, key)
	delete(r.s.progress, key)
	delete(r.s.ratings, key)
	return nil
}

func (r *EnrollmentMemory) IsEnrolled(_ context.Context, userID, courseID int64) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	_, ok := r.s.enrollments[pairKey{userID, courseID}]
	return ok, nil
}

func (r *EnrollmentMemory) EnrolledCourseIDs(_ context.Context, userID int64) ([]int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	type record struct {
		courseID int64
		at       time.Time
	}
	var records []record
	for key, e := range r.s.enrollments {
		if key.userID == userID {
			records = append(records, record{key.courseID, e.EnrolledAt})
		}
	}
	sort.Slice(records, func(i, j int) bool { return records[i].at.After(records[j].at) })

	ids := make([]int64, 0, len(records))
	for _, rec := range records {
		ids = append(ids, rec.courseID)
	}
	return ids, nil
}
