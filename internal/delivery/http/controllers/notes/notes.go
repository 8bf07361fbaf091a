package notes

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"LearnHub/internal/app_errors"
	"LearnHub/internal/models"
	"LearnHub/pkg/logger"

	"github.com/gin-gonic/gin"
)

type NotesService interface {
	CreateNote(ctx context.Context, note models.Note) (*models.Note, error)
	UpdateNote(ctx context.Context, id int64, title, content string) (*models.Note, error)
	DeleteNote(ctx context.Context, id int64) error
	CourseNotes(ctx context.Context, courseID int64) ([]models.Note, error)
	LessonNotes(ctx context.Context, courseID, lessonID int64) ([]models.Note, error)
	SearchNotes(ctx context.Context, term string, courseID, lessonID int64) ([]models.Note, error)
}

type NotesHandler struct {
	log     logger.Log
	service NotesService
}

func NewNotesHandler(log logger.Log, s NotesService) *NotesHandler {
	return &NotesHandler{
		log:     log,
		service: s,
	}
}

type noteRequest struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
}

func (h *NotesHandler) CreateNote(c *gin.Context) {
	courseID, ok := paramID(c, "course_id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid course_id"})
		return
	}
	lessonID, ok := paramID(c, "lesson_id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid lesson_id"})
		return
	}
	var input noteRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	note, err := h.service.CreateNote(c.Request.Context(), models.Note{
		CourseID: courseID,
		LessonID: lessonID,
		Title:    input.Title,
		Content:  input.Content,
	})
	if err != nil {
		switch {
		case errors.Is(err, app_errors.ErrMissingNoteFields), errors.Is(err, app_errors.ErrLessonNotInCourse):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, app_errors.ErrCourseNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusCreated, note)
}

func (h *NotesHandler) UpdateNote(c *gin.Context) {
	noteID, ok := paramID(c, "note_id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid note_id"})
		return
	}
	var input noteRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	note, err := h.service.UpdateNote(c.Request.Context(), noteID, input.Title, input.Content)
	if err != nil {
		switch {
		case errors.Is(err, app_errors.ErrNoteNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, app_errors.ErrMissingNoteFields):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, note)
}

func (h *NotesHandler) DeleteNote(c *gin.Context) {
	noteID, ok := paramID(c, "note_id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid note_id"})
		return
	}

	if err := h.service.DeleteNote(c.Request.Context(), noteID); err != nil {
		if errors.Is(err, app_errors.ErrNoteNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// CourseNotes lists a course's notes newest first. ?lesson_id= narrows to a
// lesson.
func (h *NotesHandler) CourseNotes(c *gin.Context) {
	courseID, ok := paramID(c, "course_id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid course_id"})
		return
	}

	var notes []models.Note
	var err error
	if s := c.Query("lesson_id"); s != "" {
		lessonID, parseErr := strconv.ParseInt(s, 10, 64)
		if parseErr != nil || lessonID <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid lesson_id"})
			return
		}
		notes, err = h.service.LessonNotes(c.Request.Context(), courseID, lessonID)
	} else {
		notes, err = h.service.CourseNotes(c.Request.Context(), courseID)
	}
	if err != nil {
		switch {
		case errors.Is(err, app_errors.ErrCourseNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, app_errors.ErrLessonNotInCourse):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"notes": notes})
}

// SearchNotes matches the query against titles and content; course_id and
// lesson_id query params narrow the scope.
func (h *NotesHandler) SearchNotes(c *gin.Context) {
	var courseID, lessonID int64
	if s := c.Query("course_id"); s != "" {
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil || v <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid course_id"})
			return
		}
		courseID = v
	}
	if s := c.Query("lesson_id"); s != "" {
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil || v <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid lesson_id"})
			return
		}
		lessonID = v
	}

	notes, err := h.service.SearchNotes(c.Request.Context(), c.Query("query"), courseID, lessonID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"notes": notes})
}

func paramID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
