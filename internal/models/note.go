package models

import "time"

type Note struct {
	ID        int64     `json:"id"`
	CourseID  int64     `json:"course_id"`
	LessonID  int64     `json:"lesson_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"timestamp"`
	UpdatedAt time.Time `json:"last_updated"`
}
