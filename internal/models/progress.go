package models

import (
	"math"
	"time"
)

// CourseProgress tracks which lessons a user finished in a course.
// CompletedLessons has set semantics: no duplicates, order not significant.
// ProgressPercentage is a cached derived value, recomputed whenever the
// completion set or the course lesson count changes.
type CourseProgress struct {
	UserID             int64     `json:"user_id"`
	CourseID           int64     `json:"course_id"`
	CompletedLessons   []int64   `json:"completed_lessons"`
	LastAccessed       time.Time `json:"last_accessed"`
	ProgressPercentage int       `json:"progress_percentage"`
}

// CompletionPercent rounds half away from zero; a course with no lessons
// is 0%.
func CompletionPercent(completed, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(completed) / float64(total) * 100))
}

func (p *CourseProgress) IsLessonCompleted(lessonID int64) bool {
	for _, id := range p.CompletedLessons {
		if id == lessonID {
			return true
		}
	}
	return false
}
