package rating

import (
	"context"
	"errors"
	"testing"

	"LearnHub/internal/app_errors"
	"LearnHub/internal/models"
	"LearnHub/internal/storage/memory"
	"LearnHub/pkg/logger"
)

func newTestService(t *testing.T) (*RatingService, *memory.EnrollmentMemory, int64) {
	t.Helper()
	store := memory.New()
	courses := memory.NewCourseMemory(store)
	courseID, err := courses.CreateCourse(context.Background(), &models.Course{Title: "Rated Course"})
	if err != nil {
		t.Fatalf("create course: %v", err)
	}
	enrollments := memory.NewEnrollmentMemory(store)
	svc := NewRatingService(logger.New("local"), courses, enrollments, memory.NewRatingMemory(store))
	return svc, enrollments, courseID
}

func enroll(t *testing.T, enrollments *memory.EnrollmentMemory, userID, courseID int64) {
	t.Helper()
	if err := enrollments.Enroll(context.Background(), userID, courseID); err != nil {
		t.Fatalf("enroll user %d: %v", userID, err)
	}
}

func TestRateCourseValidation(t *testing.T) {
	svc, enrollments, courseID := newTestService(t)
	enroll(t, enrollments, 1, courseID)

	for _, value := range []int{0, -1, 6} {
		if _, err := svc.RateCourse(context.Background(), 1, courseID, value); !errors.Is(err, app_errors.ErrInvalidRating) {
			t.Errorf("value %d: expected ErrInvalidRating, got %v", value, err)
		}
	}
}

func TestRateCourseRequiresEnrollment(t *testing.T) {
	svc, _, courseID := newTestService(t)

	_, err := svc.RateCourse(context.Background(), 1, courseID, 4)
	if !errors.Is(err, app_errors.ErrNotEnrolled) {
		t.Fatalf("expected ErrNotEnrolled, got %v", err)
	}
}

func TestRateCourseTwice(t *testing.T) {
	svc, enrollments, courseID := newTestService(t)
	enroll(t, enrollments, 1, courseID)
	ctx := context.Background()

	if _, err := svc.RateCourse(ctx, 1, courseID, 5); err != nil {
		t.Fatalf("first rating: %v", err)
	}
	_, err := svc.RateCourse(ctx, 1, courseID, 3)
	if !errors.Is(err, app_errors.ErrAlreadyRated) {
		t.Fatalf("expected ErrAlreadyRated, got %v", err)
	}
}

func TestCourseRatingSummary(t *testing.T) {
	svc, enrollments, courseID := newTestService(t)
	ctx := context.Background()

	summary, err := svc.CourseRatingSummary(ctx, courseID)
	if err != nil {
		t.Fatalf("empty summary: %v", err)
	}
	if summary.Average != 0 || summary.Count != 0 {
		t.Fatalf("expected zero summary, got %+v", summary)
	}

	for userID, value := range map[int64]int{1: 5, 2: 4, 3: 5, 4: 4} {
		enroll(t, enrollments, userID, courseID)
		if _, err := svc.RateCourse(ctx, userID, courseID, value); err != nil {
			t.Fatalf("rate as user %d: %v", userID, err)
		}
	}

	summary, err = svc.CourseRatingSummary(ctx, courseID)
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if summary.Count != 4 {
		t.Errorf("expected count 4, got %d", summary.Count)
	}
	if summary.Average != 4.5 {
		t.Errorf("expected average 4.5, got %v", summary.Average)
	}
}

func TestUpdateRating(t *testing.T) {
	svc, enrollments, courseID := newTestService(t)
	enroll(t, enrollments, 1, courseID)
	ctx := context.Background()

	if _, err := svc.RateCourse(ctx, 1, courseID, 2); err != nil {
		t.Fatalf("rate: %v", err)
	}
	if err := svc.UpdateRating(ctx, 1, courseID, 5); err != nil {
		t.Fatalf("update: %v", err)
	}

	rating, err := svc.UserRating(ctx, 1, courseID)
	if err != nil {
		t.Fatalf("user rating: %v", err)
	}
	if rating == nil || rating.Value != 5 {
		t.Fatalf("expected updated rating 5, got %+v", rating)
	}
}

func TestUpdateMissingRating(t *testing.T) {
	svc, _, courseID := newTestService(t)

	err := svc.UpdateRating(context.Background(), 1, courseID, 4)
	if !errors.Is(err, app_errors.ErrRatingNotFound) {
		t.Fatalf("expected ErrRatingNotFound, got %v", err)
	}
}

func TestDeleteRating(t *testing.T) {
	svc, enrollments, courseID := newTestService(t)
	enroll(t, enrollments, 1, courseID)
	ctx := context.Background()

	if _, err := svc.RateCourse(ctx, 1, courseID, 3); err != nil {
		t.Fatalf("rate: %v", err)
	}
	if err := svc.DeleteRating(ctx, 1, courseID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	rating, err := svc.UserRating(ctx, 1, courseID)
	if err != nil {
		t.Fatalf("user rating: %v", err)
	}
	if rating != nil {
		t.Fatalf("expected no rating after delete, got %+v", rating)
	}

	if err := svc.DeleteRating(ctx, 1, courseID); !errors.Is(err, app_errors.ErrRatingNotFound) {
		t.Fatalf("expected ErrRatingNotFound on second delete, got %v", err)
	}
}
