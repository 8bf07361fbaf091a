package rating

import (
	"context"

	"LearnHub/internal/app_errors"
	"LearnHub/internal/models"
	"LearnHub/pkg/logger"
)

type courseRepo interface {
	CourseByID(ctx context.Context, id int64) (*models.Course, error)
}

type enrollmentRepo interface {
	IsEnrolled(ctx context.Context, userID, courseID int64) (bool, error)
}

type ratingRepo interface {
	CreateRating(ctx context.Context, rating *models.Rating) (int64, error)
	UpdateRating(ctx context.Context, userID, courseID int64, value int) error
	DeleteRating(ctx context.Context, userID, courseID int64) error
	UserRating(ctx context.Context, userID, courseID int64) (*models.Rating, error)
	CourseRatingSummary(ctx context.Context, courseID int64) (models.RatingSummary, error)
}

type RatingService struct {
	log            logger.Log
	courseRepo     courseRepo
	enrollmentRepo enrollmentRepo
	ratingRepo     ratingRepo
}

func NewRatingService(l logger.Log, c courseRepo, e enrollmentRepo, r ratingRepo) *RatingService {
	return &RatingService{
		log:            l,
		courseRepo:     c,
		enrollmentRepo: e,
		ratingRepo:     r,
	}
}

// RateCourse records a 1-5 rating. Only enrolled users may rate, and a user
// rates a course at most once; repeat submissions go through UpdateRating.
func (s *RatingService) RateCourse(ctx context.Context, userID, courseID int64, value int) (*models.Rating, error) {
	if value < models.MinRating || value > models.MaxRating {
		return nil, app_errors.ErrInvalidRating
	}
	if _, err := s.courseRepo.CourseByID(ctx, courseID); err != nil {
		return nil, err
	}
	enrolled, err := s.enrollmentRepo.IsEnrolled(ctx, userID, courseID)
	if err != nil {
		return nil, err
	}
	if !enrolled {
		return nil, app_errors.ErrNotEnrolled
	}

	rating := &models.Rating{
		UserID:   userID,
		CourseID: courseID,
		Value:    value,
	}
	if _, err := s.ratingRepo.CreateRating(ctx, rating); err != nil {
		return nil, err
	}
	return rating, nil
}

func (s *RatingService) UpdateRating(ctx context.Context, userID, courseID int64, value int) error {
	if value < models.MinRating || value > models.MaxRating {
		return app_errors.ErrInvalidRating
	}
	return s.ratingRepo.UpdateRating(ctx, userID, courseID, value)
}

func (s *RatingService) DeleteRating(ctx context.Context, userID, courseID int64) error {
	return s.ratingRepo.DeleteRating(ctx, userID, courseID)
}

// UserRating returns nil when the user has not rated the course.
func (s *RatingService) UserRating(ctx context.Context, userID, courseID int64) (*models.Rating, error) {
	return s.ratingRepo.UserRating(ctx, userID, courseID)
}

// CourseRatingSummary averages to one decimal place; a course with no
// ratings summarizes as {0, 0}.
func (s *RatingService) CourseRatingSummary(ctx context.Context, courseID int64) (models.RatingSummary, error) {
	if _, err := s.courseRepo.CourseByID(ctx, courseID); err != nil {
		return models.RatingSummary{}, err
	}
	return s.ratingRepo.CourseRatingSummary(ctx, courseID)
}
