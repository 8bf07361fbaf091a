package enrollment

import (
	"context"

	"LearnHub/internal/models"
	"LearnHub/pkg/logger"
)

type courseRepo interface {
	CourseByID(ctx context.Context, id int64) (*models.Course, error)
}

type enrollmentRepo interface {
	Enroll(ctx context.Context, userID, courseID int64) error
	Unenroll(ctx context.Context, userID, courseID int64) error
	IsEnrolled(ctx context.Context, userID, courseID int64) (bool, error)
	EnrolledCourseIDs(ctx context.Context, userID int64) ([]int64, error)
}

type EnrollmentService struct {
	log            logger.Log
	courseRepo     courseRepo
	enrollmentRepo enrollmentRepo
}

func NewEnrollmentService(l logger.Log, c courseRepo, e enrollmentRepo) *EnrollmentService {
	return &EnrollmentService{
		log:            l,
		courseRepo:     c,
		enrollmentRepo: e,
	}
}

// Enroll is idempotent: enrolling twice leaves a single enrollment and
// returns no error.
func (s *EnrollmentService) Enroll(ctx context.Context, userID, courseID int64) error {
	if _, err := s.courseRepo.CourseByID(ctx, courseID); err != nil {
		return err
	}
	return s.enrollmentRepo.Enroll(ctx, userID, courseID)
}

// Unenroll drops the enrollment along with the user's progress and rating
// for the course.
func (s *EnrollmentService) Unenroll(ctx context.Context, userID, courseID int64) error {
	return s.enrollmentRepo.Unenroll(ctx, userID, courseID)
}

func (s *EnrollmentService) IsEnrolled(ctx context.Context, userID, courseID int64) (bool, error) {
	return s.enrollmentRepo.IsEnrolled(ctx, userID, courseID)
}

func (s *EnrollmentService) EnrolledCourseIDs(ctx context.Context, userID int64) ([]int64, error) {
	return s.enrollmentRepo.EnrolledCourseIDs(ctx, userID)
}
