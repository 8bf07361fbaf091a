package bookmark

import (
	"context"

	"LearnHub/internal/models"
	"LearnHub/pkg/logger"
)

type courseRepo interface {
	CourseByID(ctx context.Context, id int64) (*models.Course, error)
}

type bookmarkRepo interface {
	AddBookmark(ctx context.Context, userID, courseID int64) error
	RemoveBookmark(ctx context.Context, userID, courseID int64) error
	IsBookmarked(ctx context.Context, userID, courseID int64) (bool, error)
	BookmarkedCourseIDs(ctx context.Context, userID int64) ([]int64, error)
}

type BookmarkService struct {
	log          logger.Log
	courseRepo   courseRepo
	bookmarkRepo bookmarkRepo
}

func NewBookmarkService(l logger.Log, c courseRepo, b bookmarkRepo) *BookmarkService {
	return &BookmarkService{
		log:          l,
		courseRepo:   c,
		bookmarkRepo: b,
	}
}

// ToggleBookmark flips the bookmark and reports the new state.
func (s *BookmarkService) ToggleBookmark(ctx context.Context, userID, courseID int64) (bool, error) {
	if _, err := s.courseRepo.CourseByID(ctx, courseID); err != nil {
		return false, err
	}
	bookmarked, err := s.bookmarkRepo.IsBookmarked(ctx, userID, courseID)
	if err != nil {
		return false, err
	}
	if bookmarked {
		if err := s.bookmarkRepo.RemoveBookmark(ctx, userID, courseID); err != nil {
			return false, err
		}
		return false, nil
	}
	if err := s.bookmarkRepo.AddBookmark(ctx, userID, courseID); err != nil {
		return false, err
	}
	return true, nil
}

func (s *BookmarkService) AddBookmark(ctx context.Context, userID, courseID int64) error {
	if _, err := s.courseRepo.CourseByID(ctx, courseID); err != nil {
		return err
	}
	return s.bookmarkRepo.AddBookmark(ctx, userID, courseID)
}

func (s *BookmarkService) RemoveBookmark(ctx context.Context, userID, courseID int64) error {
	return s.bookmarkRepo.RemoveBookmark(ctx, userID, courseID)
}

func (s *BookmarkService) IsBookmarked(ctx context.Context, userID, courseID int64) (bool, error) {
	return s.bookmarkRepo.IsBookmarked(ctx, userID, courseID)
}

func (s *BookmarkService) BookmarkedCourseIDs(ctx context.Context, userID int64) ([]int64, error) {
	return s.bookmarkRepo.BookmarkedCourseIDs(ctx, userID)
}
