package enrollment

import (
	"context"
	"errors"
	"testing"

	"LearnHub/internal/app_errors"
	"LearnHub/internal/models"
	"LearnHub/internal/storage/memory"
	"LearnHub/pkg/logger"
)

func newTestService(t *testing.T) (*EnrollmentService, *memory.Storage, int64) {
	t.Helper()
	store := memory.New()
	courses := memory.NewCourseMemory(store)
	courseID, err := courses.CreateCourse(context.Background(), &models.Course{
		Title:       "Test Course",
		Description: "desc",
		Lessons: []models.Lesson{
			{Title: "One", Order: 1, Type: models.LessonTypeVideo},
			{Title: "Two", Order: 2, Type: models.LessonTypeText},
		},
	})
	if err != nil {
		t.Fatalf("create course: %v", err)
	}
	svc := NewEnrollmentService(logger.New("local"), courses, memory.NewEnrollmentMemory(store))
	return svc, store, courseID
}

func TestEnrollIsIdempotent(t *testing.T) {
	svc, _, courseID := newTestService(t)
	ctx := context.Background()

	if err := svc.Enroll(ctx, 1, courseID); err != nil {
		t.Fatalf("first enroll: %v", err)
	}
	if err := svc.Enroll(ctx, 1, courseID); err != nil {
		t.Fatalf("second enroll: %v", err)
	}

	ids, err := svc.EnrolledCourseIDs(ctx, 1)
	if err != nil {
		t.Fatalf("enrolled ids: %v", err)
	}
	if len(ids) != 1 || ids[0] != courseID {
		t.Fatalf("expected single enrollment in course %d, got %v", courseID, ids)
	}
}

func TestEnrollUnknownCourse(t *testing.T) {
	svc, _, _ := newTestService(t)

	err := svc.Enroll(context.Background(), 1, 999)
	if !errors.Is(err, app_errors.ErrCourseNotFound) {
		t.Fatalf("expected ErrCourseNotFound, got %v", err)
	}
}

func TestUnenrollWithoutEnrollment(t *testing.T) {
	svc, _, courseID := newTestService(t)

	err := svc.Unenroll(context.Background(), 1, courseID)
	if !errors.Is(err, app_errors.ErrNotEnrolled) {
		t.Fatalf("expected ErrNotEnrolled, got %v", err)
	}
}

func TestUnenrollCascadesProgressAndRating(t *testing.T) {
	svc, store, courseID := newTestService(t)
	ctx := context.Background()

	if err := svc.Enroll(ctx, 1, courseID); err != nil {
		t.Fatalf("enroll: %v", err)
	}

	progressRepo := memory.NewProgressMemory(store)
	if err := progressRepo.SaveProgress(ctx, &models.CourseProgress{
		UserID: 1, CourseID: courseID, CompletedLessons: []int64{1}, ProgressPercentage: 50,
	}); err != nil {
		t.Fatalf("save progress: %v", err)
	}
	ratingRepo := memory.NewRatingMemory(store)
	if _, err := ratingRepo.CreateRating(ctx, &models.Rating{UserID: 1, CourseID: courseID, Value: 5}); err != nil {
		t.Fatalf("create rating: %v", err)
	}

	if err := svc.Unenroll(ctx, 1, courseID); err != nil {
		t.Fatalf("unenroll: %v", err)
	}

	progress, err := progressRepo.CourseProgress(ctx, 1, courseID)
	if err != nil {
		t.Fatalf("load progress: %v", err)
	}
	if progress != nil {
		t.Errorf("expected progress removed after unenroll, got %+v", progress)
	}

	rating, err := ratingRepo.UserRating(ctx, 1, courseID)
	if err != nil {
		t.Fatalf("load rating: %v", err)
	}
	if rating != nil {
		t.Errorf("expected rating removed after unenroll, got %+v", rating)
	}
}
