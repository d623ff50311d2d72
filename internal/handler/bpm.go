package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"mixcrate/internal/bpm"
	"mixcrate/internal/model"
)

// EstimateBpm answers POST /api/bpm/estimate. The browser keeps the raw tap
// timestamps and posts the whole sequence on every tap; the server is
// stateless and just runs the estimator over it.
func (h *Handler) EstimateBpm(c *gin.Context) {
	var req model.EstimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, fmt.Errorf("malformed body: %w", model.ErrValidation))
		return
	}
	c.JSON(http.StatusOK, model.EstimateResponse{Bpm: bpm.Estimate(req.Taps)})
}
