package management

import (
	"context"
	"io"
	"mime"
	"path/filepath"
	"strings"

	"LearnHub/internal/app_errors"
	"LearnHub/internal/models"
	"LearnHub/pkg/logger"
)

const maxThumbnailSizeBytes = 5 << 20

type courseRepo interface {
	CreateCourse(ctx context.Context, course *models.Course) (int64, error)
	UpdateCourse(ctx context.Context, course *models.Course) error
	DeleteCourse(ctx context.Context, courseID int64) error
	UpdateThumbnail(ctx context.Context, courseID int64, objectKey string) error
	CourseByID(ctx context.Context, id int64) (*models.Course, error)
	CreateLesson(ctx context.Context, lesson *models.Lesson) (int64, error)
	DeleteLesson(ctx context.Context, lessonID int64) error
	MaxLessonOrder(ctx context.Context, courseID int64) (int, error)
}

type searchRepo interface {
	Index(ctx context.Context, course models.Course) error
	Update(ctx context.Context, course models.Course) error
	Delete(ctx context.Context, id int64) error
}

type thumbnailRepo interface {
	UploadThumbnail(ctx context.Context, courseID int64, filename string, reader io.Reader, size int64, contentType string) (objectKey string, err error)
	GetThumbnailURL(ctx context.Context, objectKey string) (string, error)
	DeleteThumbnail(ctx context.Context, objectKey string) error
}

// CourseManagementService is the admin surface: catalog and lesson CRUD
// plus thumbnail uploads. Mutations keep the search index in sync.
type CourseManagementService struct {
	log           logger.Log
	courseRepo    courseRepo
	searchRepo    searchRepo
	thumbnailRepo thumbnailRepo
}

func NewCourseManagementService(l logger.Log, c courseRepo, s searchRepo, t thumbnailRepo) *CourseManagementService {
	return &CourseManagementService{
		log:           l,
		courseRepo:    c,
		searchRepo:    s,
		thumbnailRepo: t,
	}
}

func (s *CourseManagementService) CreateCourse(ctx context.Context, course models.Course) (int64, error) {
	for i := range course.Lessons {
		if !models.ValidLessonType(course.Lessons[i].Type) {
			course.Lessons[i].Type = models.LessonTypeVideo
		}
		if course.Lessons[i].Order == 0 {
			course.Lessons[i].Order = i + 1
		}
	}

	id, err := s.courseRepo.CreateCourse(ctx, &course)
	if err != nil {
		return 0, err
	}

	if err := s.searchRepo.Index(ctx, course); err != nil {
		s.log.ErrorErr("failed to index course", err, "course_id", id)
	}
	return id, nil
}

func (s *CourseManagementService) UpdateCourse(ctx context.Context, course models.Course) error {
	if err := s.courseRepo.UpdateCourse(ctx, &course); err != nil {
		return err
	}
	if err := s.searchRepo.Update(ctx, course); err != nil {
		s.log.ErrorErr("failed to update course index", err, "course_id", course.ID)
	}
	return nil
}

// DeleteCourse removes the course with everything attached to it:
// enrollments, progress, ratings, notes, bookmarks, the search document
// and the stored thumbnail.
func (s *CourseManagementService) DeleteCourse(ctx context.Context, courseID int64) error {
	course, err := s.courseRepo.CourseByID(ctx, courseID)
	if err != nil {
		return err
	}

	if err := s.courseRepo.DeleteCourse(ctx, courseID); err != nil {
		return err
	}

	if err := s.searchRepo.Delete(ctx, courseID); err != nil {
		s.log.ErrorErr("failed to delete course from index", err, "course_id", courseID)
	}
	if key := course.Thumbnail; key != "" && !strings.HasPrefix(key, "http") {
		if err := s.thumbnailRepo.DeleteThumbnail(ctx, key); err != nil {
			s.log.ErrorErr("failed to delete thumbnail", err, "course_id", courseID)
		}
	}
	return nil
}

// AddLesson appends the lesson at the end of the course unless an explicit
// order is given.
func (s *CourseManagementService) AddLesson(ctx context.Context, lesson models.Lesson) (int64, error) {
	if !models.ValidLessonType(lesson.Type) {
		lesson.Type = models.LessonTypeVideo
	}
	if lesson.Order == 0 {
		maxOrder, err := s.courseRepo.MaxLessonOrder(ctx, lesson.CourseID)
		if err != nil {
			return 0, err
		}
		lesson.Order = maxOrder + 1
	}
	return s.courseRepo.CreateLesson(ctx, &lesson)
}

func (s *CourseManagementService) DeleteLesson(ctx context.Context, lessonID int64) error {
	return s.courseRepo.DeleteLesson(ctx, lessonID)
}

func (s *CourseManagementService) UploadThumbnail(
	ctx context.Context,
	courseID int64,
	filename string,
	reader io.Reader,
	size int64,
	contentType string,
) (string, error) {
	course, err := s.courseRepo.CourseByID(ctx, courseID)
	if err != nil {
		return "", err
	}

	if size > maxThumbnailSizeBytes {
		return "", app_errors.ErrFileSize
	}

	if contentType == "" {
		contentType = mime.TypeByExtension(strings.ToLower(filepath.Ext(filename)))
	}
	if !strings.HasPrefix(contentType, "image/") {
		return "", app_errors.ErrNotImage
	}

	if key := course.Thumbnail; key != "" && !strings.HasPrefix(key, "http") {
		if err := s.thumbnailRepo.DeleteThumbnail(ctx, key); err != nil {
			s.log.ErrorErr("failed to delete previous thumbnail", err)
		}
	}

	objectKey, err := s.thumbnailRepo.UploadThumbnail(ctx, courseID, filename, reader, size, contentType)
	if err != nil {
		s.log.ErrorErr("failed to upload thumbnail", err)
		return "", err
	}

	if err = s.courseRepo.UpdateThumbnail(ctx, courseID, objectKey); err != nil {
		s.log.ErrorErr("failed to save thumbnail key", err)
		return "", err
	}

	url, err := s.thumbnailRepo.GetThumbnailURL(ctx, objectKey)
	if err != nil {
		s.log.ErrorErr("failed to get presigned URL", err)
		return "", err
	}
	return url, nil
}
