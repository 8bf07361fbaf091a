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

type RatingService interface {
	RateCourse(ctx context.Context, userID, courseID int64, value int) (*models.Rating, error)
	UpdateRating(ctx context.Context, userID, courseID int64, value int) error
	DeleteRating(ctx context.Context, userID, courseID int64) error
	UserRating(ctx context.Context, userID, courseID int64) (*models.Rating, error)
	CourseRatingSummary(ctx context.Context, courseID int64) (models.RatingSummary, error)
}

type RatingHandler struct {
	log     logger.Log
	service RatingService
}

func NewRatingHandler(log logger.Log, s RatingService) *RatingHandler {
	return &RatingHandler{
		log:     log,
		service: s,
	}
}

type rateRequest struct {
	Rating int `json:"rating" binding:"required"`
}

func (h *RatingHandler) RateCourse(c *gin.Context) {
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
	var input rateRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rating, err := h.service.RateCourse(c.Request.Context(), userID, courseID, input.Rating)
	if err != nil {
		switch {
		case errors.Is(err, app_errors.ErrInvalidRating):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, app_errors.ErrCourseNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, app_errors.ErrNotEnrolled):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		case errors.Is(err, app_errors.ErrAlreadyRated):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusCreated, rating)
}

func (h *RatingHandler) UpdateRating(c *gin.Context) {
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
	var input rateRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.service.UpdateRating(c.Request.Context(), userID, courseID, input.Rating); err != nil {
		switch {
		case errors.Is(err, app_errors.ErrInvalidRating):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, app_errors.ErrRatingNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}

func (h *RatingHandler) DeleteRating(c *gin.Context) {
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

	if err := h.service.DeleteRating(c.Request.Context(), userID, courseID); err != nil {
		if errors.Is(err, app_errors.ErrRatingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// CourseRating reports the aggregate alongside the caller's own rating,
// which is null until they rate.
func (h *RatingHandler) CourseRating(c *gin.Context) {
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

	summary, err := h.service.CourseRatingSummary(c.Request.Context(), courseID)
	if err != nil {
		if errors.Is(err, app_errors.ErrCourseNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	rating, err := h.service.UserRating(c.Request.Context(), userID, courseID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	var userRating *int
	if rating != nil {
		userRating = &rating.Value
	}

	c.JSON(http.StatusOK, gin.H{
		"average":     summary.Average,
		"count":       summary.Count,
		"user_rating": userRating,
	})
}
