package models

import "time"

const (
	DifficultyBeginner     = "beginner"
	DifficultyIntermediate = "intermediate"
	DifficultyAdvanced     = "advanced"
)

type Course struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Thumbnail   string    `json:"thumbnail"`
	Instructor  string    `json:"instructor"`
	Duration    string    `json:"duration"`
	Category    string    `json:"category"`
	Difficulty  string    `json:"difficulty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Lessons     []Lesson  `json:"lessons"`
}

// CourseDetail is the denormalized per-user view returned to clients:
// the course with rating, enrollment and progress state folded in.
// Lessons carry the per-user Completed overlay.
type CourseDetail struct {
	Course
	ThumbnailURL  string          `json:"thumbnail_url"`
	AverageRating float64         `json:"average_rating"`
	RatingCount   int             `json:"rating_count"`
	UserRating    *int            `json:"user_rating"`
	Enrolled      bool            `json:"enrolled"`
	Bookmarked    bool            `json:"bookmarked"`
	Progress      *CourseProgress `json:"progress,omitempty"`
}
