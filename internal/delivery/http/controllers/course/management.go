package course

import (
	"context"
	"errors"
	"io"
	"mime"
	"net/http"
	"path/filepath"
	"strings"

	"LearnHub/internal/app_errors"
	"LearnHub/internal/models"
	"LearnHub/pkg/logger"

	"github.com/gin-gonic/gin"
)

type ManagementService interface {
	CreateCourse(ctx context.Context, course models.Course) (int64, error)
	UpdateCourse(ctx context.Context, course models.Course) error
	DeleteCourse(ctx context.Context, courseID int64) error
	AddLesson(ctx context.Context, lesson models.Lesson) (int64, error)
	DeleteLesson(ctx context.Context, lessonID int64) error
	UploadThumbnail(ctx context.Context, courseID int64, filename string, reader io.Reader, size int64, contentType string) (string, error)
}

type ManagementHandler struct {
	log     logger.Log
	service ManagementService
}

func NewManagementHandler(l logger.Log, s ManagementService) *ManagementHandler {
	return &ManagementHandler{
		log:     l,
		service: s,
	}
}

type lessonInput struct {
	Title    string `json:"title" binding:"required"`
	Content  string `json:"content"`
	Duration string `json:"duration"`
	Order    int    `json:"order"`
	Type     string `json:"type"`
}

type courseRequest struct {
	Title       string        `json:"title" binding:"required"`
	Description string        `json:"description" binding:"required"`
	Instructor  string        `json:"instructor"`
	Duration    string        `json:"duration"`
	Category    string        `json:"category"`
	Difficulty  string        `json:"difficulty"`
	Lessons     []lessonInput `json:"lessons"`
}

func (h *ManagementHandler) CreateCourse(c *gin.Context) {
	var input courseRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	course := models.Course{
		Title:       input.Title,
		Description: input.Description,
		Instructor:  input.Instructor,
		Duration:    input.Duration,
		Category:    input.Category,
		Difficulty:  input.Difficulty,
	}
	for _, l := range input.Lessons {
		course.Lessons = append(course.Lessons, models.Lesson{
			Title:    l.Title,
			Content:  l.Content,
			Duration: l.Duration,
			Order:    l.Order,
			Type:     l.Type,
		})
	}

	id, err := h.service.CreateCourse(c.Request.Context(), course)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

func (h *ManagementHandler) UpdateCourse(c *gin.Context) {
	courseID, ok := paramID(c, "course_id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid course_id"})
		return
	}
	var input courseRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	course := models.Course{
		ID:          courseID,
		Title:       input.Title,
		Description: input.Description,
		Instructor:  input.Instructor,
		Duration:    input.Duration,
		Category:    input.Category,
		Difficulty:  input.Difficulty,
	}
	if err := h.service.UpdateCourse(c.Request.Context(), course); err != nil {
		if errors.Is(err, app_errors.ErrCourseNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}

func (h *ManagementHandler) DeleteCourse(c *gin.Context) {
	courseID, ok := paramID(c, "course_id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid course_id"})
		return
	}

	if err := h.service.DeleteCourse(c.Request.Context(), courseID); err != nil {
		if errors.Is(err, app_errors.ErrCourseNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

func (h *ManagementHandler) AddLesson(c *gin.Context) {
	courseID, ok := paramID(c, "course_id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid course_id"})
		return
	}
	var input lessonInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	lesson := models.Lesson{
		CourseID: courseID,
		Title:    input.Title,
		Content:  input.Content,
		Duration: input.Duration,
		Order:    input.Order,
		Type:     input.Type,
	}
	id, err := h.service.AddLesson(c.Request.Context(), lesson)
	if err != nil {
		if errors.Is(err, app_errors.ErrCourseNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

func (h *ManagementHandler) DeleteLesson(c *gin.Context) {
	lessonID, ok := paramID(c, "lesson_id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid lesson_id"})
		return
	}

	if err := h.service.DeleteLesson(c.Request.Context(), lessonID); err != nil {
		if errors.Is(err, app_errors.ErrLessonNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

func (h *ManagementHandler) UploadThumbnail(c *gin.Context) {
	courseID, ok := paramID(c, "course_id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid course_id"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "cannot open uploaded file"})
		return
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = mime.TypeByExtension(strings.ToLower(filepath.Ext(fileHeader.Filename)))
	}

	url, err := h.service.UploadThumbnail(
		c.Request.Context(),
		courseID,
		fileHeader.Filename,
		file,
		fileHeader.Size,
		contentType,
	)
	if err != nil {
		switch {
		case errors.Is(err, app_errors.ErrCourseNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, app_errors.ErrFileSize):
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": err.Error()})
		case errors.Is(err, app_errors.ErrNotImage):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			h.log.ErrorErr("UploadThumbnail failed", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "upload failed"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"url":    url,
	})
}
