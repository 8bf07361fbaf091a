package course

import (
	"context"
	"errors"
	"net/http"

	"LearnHub/internal/app_errors"
	"LearnHub/internal/delivery/http/controllers/middleware"
	"LearnHub/internal/models"
	"LearnHub/pkg/logger"

	"github.com/gin-gonic/gin"
)

type QueryService interface {
	CourseByID(ctx context.Context, userID, courseID int64) (*models.CourseDetail, error)
	Courses(ctx context.Context, userID int64, searchTerm string) ([]models.CourseDetail, error)
	EnrolledCourses(ctx context.Context, userID int64) ([]models.CourseDetail, error)
	BookmarkedCourses(ctx context.Context, userID int64) ([]models.CourseDetail, error)
}

type QueryHandler struct {
	log     logger.Log
	service QueryService
}

func NewQueryHandler(log logger.Log, s QueryService) *QueryHandler {
	return &QueryHandler{
		log:     log,
		service: s,
	}
}

// ListCourses returns the catalog with the caller's state folded in.
// An optional ?query= filters it; a blank query lists everything.
func (h *QueryHandler) ListCourses(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	courses, err := h.service.Courses(c.Request.Context(), userID, c.Query("query"))
	if err != nil {
		h.log.ErrorErr("ListCourses failed", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch courses"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"courses": courses})
}

func (h *QueryHandler) CourseByID(c *gin.Context) {
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

	detail, err := h.service.CourseByID(c.Request.Context(), userID, courseID)
	if err != nil {
		if errors.Is(err, app_errors.ErrCourseNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, detail)
}

func (h *QueryHandler) EnrolledCourses(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	courses, err := h.service.EnrolledCourses(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"courses": courses})
}

func (h *QueryHandler) BookmarkedCourses(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	courses, err := h.service.BookmarkedCourses(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"courses": courses})
}
