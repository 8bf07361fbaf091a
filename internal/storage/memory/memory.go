package memory

import (
	"sync"

	"LearnHub/internal/models"
)

// Storage is the process-local counterpart of the Postgres pool: one shared
// root guarding every collection with a single RWMutex. Per-aggregate
// repositories wrap it the way the pgx repositories wrap *pgxpool.Pool, so
// cross-aggregate cascades stay inside one lock.
type Storage struct {
	mu sync.RWMutex

	courses     map[int64]*models.Course
	enrollments map[pairKey]models.Enrollment
	progress    map[pairKey]*models.CourseProgress
	ratings     map[pairKey]*models.Rating
	notes       map[int64]*models.Note
	bookmarks   map[int64]map[int64]bool
	users       map[int64]*models.User
	tokens      map[int64]map[string]*models.RefreshToken

	nextCourseID int64
	nextLessonID int64
	nextRatingID int64
	nextNoteID   int64
	nextUserID   int64
}

type pairKey struct {
	userID   int64
	courseID int64
}

func New() *Storage {
	return &Storage{
		courses:     make(map[int64]*models.Course),
		enrollments: make(map[pairKey]models.Enrollment),
		progress:    make(map[pairKey]*models.CourseProgress),
		ratings:     make(map[pairKey]*models.Rating),
		notes:       make(map[int64]*models.Note),
		bookmarks:   make(map[int64]map[int64]bool),
		users:       make(map[int64]*models.User),
		tokens:      make(map[int64]map[string]*models.RefreshToken),
	}
}

func copyCourse(c *models.Course) *models.Course {
	cp := *c
	cp.Lessons = make([]models.Lesson, len(c.Lessons))
	copy(cp.Lessons, c.Lessons)
	return &cp
}

func copyProgress(p *models.CourseProgress) *models.CourseProgress {
	cp := *p
	cp.CompletedLessons = make([]int64, len(p.CompletedLessons))
	copy(cp.CompletedLessons, p.CompletedLessons)
	return &cp
}
