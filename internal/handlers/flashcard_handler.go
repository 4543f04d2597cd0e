package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"study-service/internal/generation"
	"study-service/internal/models"
	"study-service/internal/service"
)

type FlashcardHandler struct {
	Service   *service.FlashcardService
	Dashboard *service.DashboardService
	Generator *generation.Client
}

func NewFlashcardHandler(s *service.FlashcardService, dashboard *service.DashboardService, generator *generation.Client) *FlashcardHandler {
	return &FlashcardHandler{
		Service:   s,
		Dashboard: dashboard,
		Generator: generator,
	}
}

// Generate creates a new flashcard set from generated content. A failed
// generation leaves the active slot untouched.
func (h *FlashcardHandler) Generate(c *gin.Context) {
	var req struct {
		Topic     string `json:"topic" binding:"required"`
		CardCount int    `json:"card_count" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format", "details": err.Error()})
		return
	}

	topic := strings.TrimSpace(req.Topic)
	if topic == "" || len(topic) > 500 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Topic must be between 1 and 500 characters"})
		return
	}
	if req.CardCount < generation.MinCards || req.CardCount > generation.MaxCards {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Card count must be between 5 and 30"})
		return
	}

	cards, err := h.Generator.GenerateFlashcards(c.Request.Context(), topic, req.CardCount)
	if err != nil {
		status, msg := generationStatus(err)
		c.JSON(status, gin.H{"error": msg})
		return
	}

	set, err := h.Service.CreateSet(c.Request.Context(), topic, cards)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, set)
}

// Current returns the active set and the study cursor.
func (h *FlashcardHandler) Current(c *gin.Context) {
	set, ok := h.Service.CurrentSet()
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "No active flashcard set"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"set": set, "current_card_index": h.Service.Cursor()})
}

// UpdateCardStatus marks one card of the active set.
func (h *FlashcardHandler) UpdateCardStatus(c *gin.Context) {
	var req struct {
		Status models.CardStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format", "details": err.Error()})
		return
	}
	if !models.ValidCardStatus(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unsupported card status: " + string(req.Status)})
		return
	}
	if _, ok := h.Service.CurrentSet(); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "No active flashcard set"})
		return
	}

	if err := h.Service.UpdateCardStatus(c.Request.Context(), c.Param("id"), req.Status); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	set, _ := h.Service.CurrentSet()
	c.JSON(http.StatusOK, gin.H{"mastery_percentage": set.MasteryPercentage})
}

// Advance moves the study cursor forward or back, clamped at the set bounds.
func (h *FlashcardHandler) Advance(c *gin.Context) {
	var req struct {
		Direction string `json:"direction" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format", "details": err.Error()})
		return
	}

	var cursor int
	switch req.Direction {
	case "next":
		cursor = h.Service.NextCard()
	case "previous":
		cursor = h.Service.PreviousCard()
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Direction must be next or previous"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"current_card_index": cursor})
}

// GoTo jumps the cursor to a specific card.
func (h *FlashcardHandler) GoTo(c *gin.Context) {
	var req struct {
		Index int `json:"index"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"current_card_index": h.Service.GoToCard(req.Index)})
}

// Shuffle randomizes the card order of the active set.
func (h *FlashcardHandler) Shuffle(c *gin.Context) {
	if err := h.Service.Shuffle(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	set, ok := h.Service.CurrentSet()
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "No active flashcard set"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"set": set, "current_card_index": 0})
}

// Reset puts every card of the active set back to not-studied.
func (h *FlashcardHandler) Reset(c *gin.Context) {
	if err := h.Service.ResetCurrentSet(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Set reset"})
}

// Complete archives the active set and logs the session on the dashboard.
func (h *FlashcardHandler) Complete(c *gin.Context) {
	set, ok, err := h.Service.CompleteSet(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "No active flashcard set"})
		return
	}

	if err := h.Dashboard.RecordFlashcards(c.Request.Context(), set.Topic, set.MasteryPercentage, len(set.Cards)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, set)
}

// History lists archived sets, most recent first.
func (h *FlashcardHandler) History(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"sets": h.Service.History()})
}
