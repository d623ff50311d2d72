package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mixcrate/internal/templates"
)

// Index serves the single-page browser UI.
func (h *Handler) Index(c *gin.Context) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	if err := templates.Index(h.genreAllowList).Render(c.Request.Context(), c.Writer); err != nil {
		c.AbortWithStatus(http.StatusInternalServerError)
	}
}
