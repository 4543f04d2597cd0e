package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"study-service/internal/generation"
	"study-service/internal/models"
	"study-service/internal/service"
)

type QuizHandler struct {
	Service   *service.QuizService
	Dashboard *service.DashboardService
	Generator *generation.Client
}

func NewQuizHandler(s *service.QuizService, dashboard *service.DashboardService, generator *generation.Client) *QuizHandler {
	return &QuizHandler{
		Service:   s,
		Dashboard: dashboard,
		Generator: generator,
	}
}

// Generate calls the generation service and, only on success, replaces the
// active quiz slot. A failed generation leaves the slot untouched.
func (h *QuizHandler) Generate(c *gin.Context) {
	var req struct {
		Topic         string                `json:"topic" binding:"required"`
		Difficulty    models.Difficulty     `json:"difficulty" binding:"required"`
		QuestionCount int                   `json:"question_count" binding:"required"`
		QuestionTypes []models.QuestionType `json:"question_types" binding:"required"`
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
	if !models.ValidDifficulty(req.Difficulty) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Difficulty must be easy, medium or hard"})
		return
	}
	if req.QuestionCount < generation.MinQuestions || req.QuestionCount > generation.MaxQuestions {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Question count must be between 5 and 20"})
		return
	}
	if len(req.QuestionTypes) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "At least one question type is required"})
		return
	}
	for _, t := range req.QuestionTypes {
		if !models.ValidQuestionType(t) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unsupported question type: " + string(t)})
			return
		}
	}

	questions, err := h.Generator.GenerateQuiz(c.Request.Context(), topic, req.Difficulty, req.QuestionCount, req.QuestionTypes)
	if err != nil {
		status, msg := generationStatus(err)
		c.JSON(status, gin.H{"error": msg})
		return
	}

	quiz, err := h.Service.CreateQuiz(c.Request.Context(), topic, req.Difficulty, questions)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, quiz)
}

// Current returns the active quiz.
func (h *QuizHandler) Current(c *gin.Context) {
	quiz, ok := h.Service.CurrentQuiz()
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "No active quiz"})
		return
	}
	c.JSON(http.StatusOK, quiz)
}

// Answer submits an answer for one question of the active quiz.
func (h *QuizHandler) Answer(c *gin.Context) {
	var req struct {
		Index  int    `json:"index"`
		Answer string `json:"answer" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid answer format", "details": err.Error()})
		return
	}

	quiz, ok := h.Service.CurrentQuiz()
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "No active quiz"})
		return
	}
	if req.Index < 0 || req.Index >= len(quiz.Questions) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Question index out of range"})
		return
	}

	if err := h.Service.SubmitAnswer(c.Request.Context(), req.Index, req.Answer); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	quiz, _ = h.Service.CurrentQuiz()
	c.JSON(http.StatusOK, gin.H{
		"question": quiz.Questions[req.Index],
		"score":    h.Service.Score(),
	})
}

// Complete freezes the active quiz into history and logs it on the dashboard.
func (h *QuizHandler) Complete(c *gin.Context) {
	quiz, ok, err := h.Service.CompleteQuiz(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "No active quiz"})
		return
	}

	if err := h.Dashboard.RecordQuiz(c.Request.Context(), quiz.Topic, *quiz.Score, len(quiz.Questions), quiz.Difficulty); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, quiz)
}

// Reset clears the active quiz slot.
func (h *QuizHandler) Reset(c *gin.Context) {
	if err := h.Service.ResetQuiz(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Quiz reset"})
}

// History lists completed quizzes, most recent first.
func (h *QuizHandler) History(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"quizzes": h.Service.History()})
}

// HistoryByID returns one completed quiz.
func (h *QuizHandler) HistoryByID(c *gin.Context) {
	quiz, ok := h.Service.QuizByID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Quiz not found"})
		return
	}
	c.JSON(http.StatusOK, quiz)
}
