package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Health answers GET /api/health.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "mixcrate",
	})
}
