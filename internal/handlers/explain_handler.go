package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"study-service/internal/generation"
	"study-service/internal/models"
	"study-service/internal/service"
)

type ExplainHandler struct {
	Dashboard *service.DashboardService
	Generator *generation.Client
}

func NewExplainHandler(dashboard *service.DashboardService, generator *generation.Client) *ExplainHandler {
	return &ExplainHandler{
		Dashboard: dashboard,
		Generator: generator,
	}
}

// Explain streams explanation text to the client as it arrives from the
// provider. If the client disconnects mid-stream the partial text is
// discarded; no store state has been touched yet.
func (h *ExplainHandler) Explain(c *gin.Context) {
	var req struct {
		Topic      string            `json:"topic" binding:"required"`
		Complexity models.Complexity `json:"complexity" binding:"required"`
		Context    string            `json:"context"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format", "details": err.Error()})
		return
	}

	topic := strings.TrimSpace(req.Topic)
	if len(topic) < 2 || len(topic) > 200 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Topic must be between 2 and 200 characters"})
		return
	}
	if !models.ValidComplexity(req.Complexity) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Complexity must be beginner, intermediate or advanced"})
		return
	}
	if len(req.Context) > 1000 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Context must be less than 1000 characters"})
		return
	}

	c.Writer.Header().Set("Content-Type", "text/plain; charset=utf-8")
	c.Writer.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")

	streamed := false
	err := h.Generator.StreamExplanation(c.Request.Context(), topic, req.Complexity, req.Context, func(chunk string) error {
		if !streamed {
			c.Writer.WriteHeader(http.StatusOK)
			streamed = true
		}
		if _, err := c.Writer.WriteString(chunk); err != nil {
			return err
		}
		c.Writer.Flush()
		return nil
	})
	if err != nil {
		if !streamed {
			status, msg := generationStatus(err)
			c.JSON(status, gin.H{"error": msg})
		}
		// Once text has been flushed the response status is fixed; nothing
		// more to send.
		return
	}

	if streamed {
		if err := h.Dashboard.RecordExplanation(c.Request.Context(), topic, req.Complexity); err != nil {
			log.Printf("failed to record explanation session: %v", err)
		}
	}
}
