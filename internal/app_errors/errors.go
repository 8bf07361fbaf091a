package app_errors

import "errors"

var ErrUserExists = errors.New("user already exists")
var ErrUserNotFound = errors.New("user not found")
var ErrIncorrectPassword = errors.New("incorrect password")
var ErrTokenNotFound = errors.New("token not found")
var ErrTokenExpired = errors.New("token expired")

var ErrCourseNotFound = errors.New("course not found")
var ErrLessonNotFound = errors.New("lesson not found")
var ErrLessonNotInCourse = errors.New("lesson does not belong to course")

var ErrNotEnrolled = errors.New("not enrolled in this course")

var ErrInvalidRating = errors.New("rating must be an integer between 1 and 5")
var ErrAlreadyRated = errors.New("course already rated")
var ErrRatingNotFound = errors.New("rating not found")

var ErrNoteNotFound = errors.New("note not found")
var ErrMissingNoteFields = errors.New("missing required note fields")

var ErrNotBookmarked = errors.New("course not bookmarked")

var ErrNotImage = errors.New("not image")
var ErrFileSize = errors.New("file size error")
