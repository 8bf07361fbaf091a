package course

import (
	"context"
	"errors"
	"net/http"

	"LearnHub/internal/app_errors"
	"LearnHub/internal/delivery/http/controllers/middleware"
	"LearnHub/pkg/logger"

	"github.com/gin-gonic/gin"
)

type EnrollmentService interface {
	Enroll(ctx context.Context, userID, courseID int64) error
	Unenroll(ctx context.Context, userID, courseID int64) error
}

type EnrollmentHandler struct {
	log     logger.Log
	service EnrollmentService
}

func NewEnrollmentHandler(log logger.Log, s EnrollmentService) *EnrollmentHandler {
	return &EnrollmentHandler{
		log:     log,
		service: s,
	}
}

func (h *EnrollmentHandler) Enroll(c *gin.Context) {
	courseID, ok := paramID(c, "course_id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid course_id"})
		return
	}
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	if err := h.service.Enroll(c.Request.Context(), userID, courseID); err != nil {
		if errors.Is(err, app_errors.ErrCourseNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "enrolled"})
}

func (h *EnrollmentHandler) Unenroll(c *gin.Context) {
	courseID, ok := paramID(c, "course_id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid course_id"})
		return
	}
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	if err := h.service.Unenroll(c.Request.Context(), userID, courseID); err != nil {
		if errors.Is(err, app_errors.ErrNotEnrolled) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "unenrolled"})
}
