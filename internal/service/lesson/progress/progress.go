package progress

import (
	"context"
	"time"

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

type progressRepo interface {
	CourseProgress(ctx context.Context, userID, courseID int64) (*models.CourseProgress, error)
	UserProgress(ctx context.Context, userID int64) ([]models.CourseProgress, error)
	SaveProgress(ctx context.Context, progress *models.CourseProgress) error
}

type ProgressService struct {
	log            logger.Log
	courseRepo     courseRepo
	enrollmentRepo enrollmentRepo
	progressRepo   progressRepo
}

func NewProgressService(l logger.Log, c courseRepo, e enrollmentRepo, p progressRepo) *ProgressService {
	return &ProgressService{
		log:            l,
		courseRepo:     c,
		enrollmentRepo: e,
		progressRepo:   p,
	}
}

// SetLessonCompletion marks a lesson done or not done. The completion set
// never holds duplicates, so marking a finished lesson again is a no-op.
// Only enrolled users can record progress.
func (s *ProgressService) SetLessonCompletion(ctx context.Context, userID, courseID, lessonID int64, completed bool) (*models.CourseProgress, error) {
	course, err := s.courseRepo.CourseByID(ctx, courseID)
	if err != nil {
		return nil, err
	}

	var found bool
	for _, l := range course.Lessons {
		if l.ID == lessonID {
			found = true
			break
		}
	}
	if !found {
		return nil, app_errors.ErrLessonNotInCourse
	}

	enrolled, err := s.enrollmentRepo.IsEnrolled(ctx, userID, courseID)
	if err != nil {
		return nil, err
	}
	if !enrolled {
		return nil, app_errors.ErrNotEnrolled
	}

	progress, err := s.progressRepo.CourseProgress(ctx, userID, courseID)
	if err != nil {
		return nil, err
	}
	if progress == nil {
		progress = &models.CourseProgress{UserID: userID, CourseID: courseID}
	}

	if completed {
		if !progress.IsLessonCompleted(lessonID) {
			progress.CompletedLessons = append(progress.CompletedLessons, lessonID)
		}
	} else {
		for i, id := range progress.CompletedLessons {
			if id == lessonID {
				progress.CompletedLessons = append(progress.CompletedLessons[:i], progress.CompletedLessons[i+1:]...)
				break
			}
		}
	}

	progress.LastAccessed = time.Now().UTC()
	progress.ProgressPercentage = models.CompletionPercent(len(progress.CompletedLessons), len(course.Lessons))

	if err := s.progressRepo.SaveProgress(ctx, progress); err != nil {
		return nil, err
	}
	return progress, nil
}

// CourseProgress returns an empty record rather than an error when the user
// has never touched the course: no record means 0%.
func (s *ProgressService) CourseProgress(ctx context.Context, userID, courseID int64) (*models.CourseProgress, error) {
	if _, err := s.courseRepo.CourseByID(ctx, courseID); err != nil {
		return nil, err
	}
	progress, err := s.progressRepo.CourseProgress(ctx, userID, courseID)
	if err != nil {
		return nil, err
	}
	if progress == nil {
		progress = &models.CourseProgress{
			UserID:           userID,
			CourseID:         courseID,
			CompletedLessons: []int64{},
		}
	}
	return progress, nil
}

func (s *ProgressService) UserProgress(ctx context.Context, userID int64) ([]models.CourseProgress, error) {
	return s.progressRepo.UserProgress(ctx, userID)
}
