package models

import "time"

const (
	MinRating = 1
	MaxRating = 5
)

type Rating struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	CourseID  int64     `json:"course_id"`
	Value     int       `json:"rating"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// RatingSummary is the aggregate a course card shows: average rounded to
// one decimal, zero-valued when the course has no ratings.
type RatingSummary struct {
	Average float64 `json:"average"`
	Count   int     `json:"count"`
}
