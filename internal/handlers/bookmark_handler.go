package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"study-service/internal/models"
	"study-service/internal/service"
)

type BookmarkHandler struct {
	Service *service.BookmarkService
}

func NewBookmarkHandler(s *service.BookmarkService) *BookmarkHandler {
	return &BookmarkHandler{Service: s}
}

// Add saves an explanation. Duplicate explanations create separate entries;
// callers use Check to decide whether to offer the save action at all.
func (h *BookmarkHandler) Add(c *gin.Context) {
	var req struct {
		Topic       string            `json:"topic" binding:"required"`
		Complexity  models.Complexity `json:"complexity" binding:"required"`
		Explanation string            `json:"explanation" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format", "details": err.Error()})
		return
	}
	if !models.ValidComplexity(req.Complexity) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Complexity must be beginner, intermediate or advanced"})
		return
	}
	if strings.TrimSpace(req.Explanation) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Explanation must not be empty"})
		return
	}

	bookmark, err := h.Service.Add(c.Request.Context(), req.Topic, req.Complexity, req.Explanation)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, bookmark)
}

// Remove deletes one bookmark by id.
func (h *BookmarkHandler) Remove(c *gin.Context) {
	if err := h.Service.Remove(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Bookmark removed"})
}

// List returns bookmarks filtered by the optional q parameter.
func (h *BookmarkHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"bookmarks": h.Service.Search(c.Query("q"))})
}

// Check reports whether an explanation text is already bookmarked. The text
// travels in the body because explanations routinely exceed URL limits.
func (h *BookmarkHandler) Check(c *gin.Context) {
	var req struct {
		Explanation string `json:"explanation" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookmarked": h.Service.IsBookmarked(req.Explanation)})
}
