package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"study-service/internal/service"
)

type DashboardHandler struct {
	Service *service.DashboardService
}

func NewDashboardHandler(s *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{Service: s}
}

// Stats returns the aggregate study statistics.
func (h *DashboardHandler) Stats(c *gin.Context) {
	c.JSON(http.StatusOK, h.Service.Stats())
}

// Recent returns the latest study records, newest first.
func (h *DashboardHandler) Recent(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "5"))
	c.JSON(http.StatusOK, gin.H{"sessions": h.Service.Recent(limit)})
}
