package models

const (
	LessonTypeVideo      = "video"
	LessonTypeText       = "text"
	LessonTypeQuiz       = "quiz"
	LessonTypeAssignment = "assignment"
)

type Lesson struct {
	ID       int64  `json:"id"`
	CourseID int64  `json:"course_id"`
	Title    string `json:"title"`
	Content  string `json:"content"`
	Duration string `json:"duration"`
	Order    int    `json:"order"`
	Type     string `json:"type"`
	// Completed is per-user state, filled only in course views.
	Completed bool `json:"completed"`
}

func ValidLessonType(t string) bool {
	switch t {
	case LessonTypeVideo, LessonTypeText, LessonTypeQuiz, LessonTypeAssignment:
		return true
	}
	return false
}
