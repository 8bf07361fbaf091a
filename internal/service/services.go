package service

import (
	"LearnHub/internal/service/auth"
	"LearnHub/internal/service/bookmark"
	"LearnHub/internal/service/course/enrollment"
	"LearnHub/internal/service/course/management"
	"LearnHub/internal/service/course/query"
	"LearnHub/internal/service/course/rating"
	"LearnHub/internal/service/lesson/progress"
	"LearnHub/internal/service/notes"
)

type Collection struct {
	*auth.AuthService
	*enrollment.EnrollmentService
	*rating.RatingService
	*query.CourseQueryService
	*management.CourseManagementService
	*progress.ProgressService
	*notes.NotesService
	*bookmark.BookmarkService
}
