package query

import (
	"context"
	"strings"

	"LearnHub/internal/models"
	"LearnHub/pkg/logger"
)

type courseRepo interface {
	CourseByID(ctx context.Context, id int64) (*models.Course, error)
	ListCourses(ctx context.Context) ([]models.Course, error)
}

type enrollmentRepo interface {
	IsEnrolled(ctx context.Context, userID, courseID int64) (bool, error)
	EnrolledCourseIDs(ctx context.Context, userID int64) ([]int64, error)
}

type progressRepo interface {
	CourseProgress(ctx context.Context, userID, courseID int64) (*models.CourseProgress, error)
}

type ratingRepo interface {
	UserRating(ctx context.Context, userID, courseID int64) (*models.Rating, error)
	CourseRatingSummary(ctx context.Context, courseID int64) (models.RatingSummary, error)
}

type bookmarkRepo interface {
	IsBookmarked(ctx context.Context, userID, courseID int64) (bool, error)
	BookmarkedCourseIDs(ctx context.Context, userID int64) ([]int64, error)
}

type searchRepo interface {
	Search(ctx context.Context, query string, size int) ([]int64, error)
}

type thumbnailRepo interface {
	GetThumbnailURL(ctx context.Context, objectKey string) (string, error)
}

// CourseQueryService assembles the per-user course view: catalog data with
// the caller's enrollment, progress, rating and bookmark state folded in.
type CourseQueryService struct {
	log            logger.Log
	courseRepo     courseRepo
	enrollmentRepo enrollmentRepo
	progressRepo   progressRepo
	ratingRepo     ratingRepo
	bookmarkRepo   bookmarkRepo
	searchRepo     searchRepo
	thumbnailRepo  thumbnailRepo
}

func NewCourseQueryService(
	log logger.Log,
	c courseRepo,
	e enrollmentRepo,
	p progressRepo,
	r ratingRepo,
	b bookmarkRepo,
	s searchRepo,
	t thumbnailRepo,
) *CourseQueryService {
	return &CourseQueryService{
		log:            log,
		courseRepo:     c,
		enrollmentRepo: e,
		progressRepo:   p,
		ratingRepo:     r,
		bookmarkRepo:   b,
		searchRepo:     s,
		thumbnailRepo:  t,
	}
}

func (s *CourseQueryService) CourseByID(ctx context.Context, userID, courseID int64) (*models.CourseDetail, error) {
	course, err := s.courseRepo.CourseByID(ctx, courseID)
	if err != nil {
		return nil, err
	}
	detail, err := s.detail(ctx, userID, *course)
	if err != nil {
		return nil, err
	}
	return detail, nil
}

// Courses lists the catalog. A blank search term leaves the catalog
// unfiltered; otherwise only matching courses come back, in search order.
func (s *CourseQueryService) Courses(ctx context.Context, userID int64, searchTerm string) ([]models.CourseDetail, error) {
	courses, err := s.courseRepo.ListCourses(ctx)
	if err != nil {
		return nil, err
	}

	if term := strings.TrimSpace(searchTerm); term != "" {
		ids, err := s.searchRepo.Search(ctx, term, len(courses))
		if err != nil {
			return nil, err
		}
		byID := make(map[int64]models.Course, len(courses))
		for _, c := range courses {
			byID[c.ID] = c
		}
		courses = courses[:0]
		for _, id := range ids {
			if c, ok := byID[id]; ok {
				courses = append(courses, c)
			}
		}
	}

	return s.details(ctx, userID, courses)
}

func (s *CourseQueryService) EnrolledCourses(ctx context.Context, userID int64) ([]models.CourseDetail, error) {
	ids, err := s.enrollmentRepo.EnrolledCourseIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.detailsByIDs(ctx, userID, ids)
}

func (s *CourseQueryService) BookmarkedCourses(ctx context.Context, userID int64) ([]models.CourseDetail, error) {
	ids, err := s.bookmarkRepo.BookmarkedCourseIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.detailsByIDs(ctx, userID, ids)
}

func (s *CourseQueryService) detailsByIDs(ctx context.Context, userID int64, ids []int64) ([]models.CourseDetail, error) {
	courses := make([]models.Course, 0, len(ids))
	for _, id := range ids {
		course, err := s.courseRepo.CourseByID(ctx, id)
		if err != nil {
			s.log.ErrorErr("failed to load course", err, "course_id", id)
			continue
		}
		courses = append(courses, *course)
	}
	return s.details(ctx, userID, courses)
}

func (s *CourseQueryService) details(ctx context.Context, userID int64, courses []models.Course) ([]models.CourseDetail, error) {
	details := make([]models.CourseDetail, 0, len(courses))
	for _, c := range courses {
		detail, err := s.detail(ctx, userID, c)
		if err != nil {
			return nil, err
		}
		details = append(details, *detail)
	}
	return details, nil
}

func (s *CourseQueryService) detail(ctx context.Context, userID int64, course models.Course) (*models.CourseDetail, error) {
	summary, err := s.ratingRepo.CourseRatingSummary(ctx, course.ID)
	if err != nil {
		return nil, err
	}
	enrolled, err := s.enrollmentRepo.IsEnrolled(ctx, userID, course.ID)
	if err != nil {
		return nil, err
	}
	bookmarked, err := s.bookmarkRepo.IsBookmarked(ctx, userID, course.ID)
	if err != nil {
		return nil, err
	}

	detail := &models.CourseDetail{
		Course:        course,
		ThumbnailURL:  s.thumbnailURL(ctx, course.Thumbnail),
		AverageRating: summary.Average,
		RatingCount:   summary.Count,
		Enrolled:      enrolled,
		Bookmarked:    bookmarked,
	}

	if rating, err := s.ratingRepo.UserRating(ctx, userID, course.ID); err != nil {
		return nil, err
	} else if rating != nil {
		detail.UserRating = &rating.Value
	}

	progress, err := s.progressRepo.CourseProgress(ctx, userID, course.ID)
	if err != nil {
		return nil, err
	}
	if progress != nil {
		detail.Progress = progress
		for i := range detail.Lessons {
			detail.Lessons[i].Completed = progress.IsLessonCompleted(detail.Lessons[i].ID)
		}
	}

	return detail, nil
}

// thumbnailURL resolves stored object keys through the object store.
// Absolute URLs (seeded catalogs) pass through untouched.
func (s *CourseQueryService) thumbnailURL(ctx context.Context, thumbnail string) string {
	if thumbnail == "" {
		return ""
	}
	if strings.HasPrefix(thumbnail, "http://") || strings.HasPrefix(thumbnail, "https://") {
		return thumbnail
	}
	url, err := s.thumbnailRepo.GetThumbnailURL(ctx, thumbnail)
	if err != nil {
		s.log.ErrorErr("failed to get thumbnail URL", err)
		return ""
	}
	return url
}
