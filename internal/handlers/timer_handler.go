package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"study-service/internal/models"
	"study-service/internal/service"
)

type TimerHandler struct {
	Service *service.TimerService
}

func NewTimerHandler(s *service.TimerService) *TimerHandler {
	return &TimerHandler{Service: s}
}

// RecordSession logs one finished pomodoro or break interval.
func (h *TimerHandler) RecordSession(c *gin.Context) {
	var req struct {
		Mode            models.TimerMode `json:"mode" binding:"required"`
		DurationSeconds int              `json:"duration_seconds" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format", "details": err.Error()})
		return
	}
	if !models.ValidTimerMode(req.Mode) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Mode must be pomodoro, short-break or long-break"})
		return
	}
	if req.DurationSeconds <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Duration must be positive"})
		return
	}

	session, err := h.Service.RecordSession(c.Request.Context(), req.Mode, req.DurationSeconds)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, session)
}

// Stats returns today's pomodoro count and study time.
func (h *TimerHandler) Stats(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"today_pomodoros":     h.Service.TodayPomodoros(),
		"today_study_seconds": h.Service.TodayStudySeconds(),
	})
}

// Sessions lists the logged intervals, most recent first.
func (h *TimerHandler) Sessions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"sessions": h.Service.Sessions()})
}
