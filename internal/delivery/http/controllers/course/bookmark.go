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

type BookmarkService interface {
	ToggleBookmark(ctx context.Context, userID, courseID int64) (bool, error)
	RemoveBookmark(ctx context.Context, userID, courseID int64) error
	BookmarkedCourseIDs(ctx context.Context, userID int64) ([]int64, error)
}

type BookmarkHandler struct {
	log     logger.Log
	service BookmarkService
}

func NewBookmarkHandler(log logger.Log, s BookmarkService) *BookmarkHandler {
	return &BookmarkHandler{
		log:     log,
		service: s,
	}
}

func (h *BookmarkHandler) ToggleBookmark(c *gin.Context) {
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

	bookmarked, err := h.service.ToggleBookmark(c.Request.Context(), userID, courseID)
	if err != nil {
		if errors.Is(err, app_errors.ErrCourseNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookmarked": bookmarked})
}

func (h *BookmarkHandler) RemoveBookmark(c *gin.Context) {
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

	if err := h.service.RemoveBookmark(c.Request.Context(), userID, courseID); err != nil {
		if errors.Is(err, app_errors.ErrNotBookmarked) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "removed"})
}

func (h *BookmarkHandler) BookmarkIDs(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	ids, err := h.service.BookmarkedCourseIDs(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"course_ids": ids})
}
