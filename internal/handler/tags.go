package handler

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"mixcrate/internal/model"
)

// GetTags answers GET /api/tags/:root/*filepath with the track's TagSet.
// Reads are best effort: an unreadable metadata block comes back as the
// all-empty TagSet so the form is still editable.
func (h *Handler) GetTags(c *gin.Context) {
	root, relPath, ok := pathParams(c)
	if !ok {
		return
	}
	ts, err := h.library.ReadTags(root, relPath)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ts)
}

// Save answers POST /api/save: writes the tags, relocating the track into
// the output root under its derived filename.
func (h *Handler) Save(c *gin.Context) {
	var req model.SaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, fmt.Errorf("malformed body: %w", model.ErrValidation))
		return
	}
	if !model.ValidRoot(req.SourceDir) || strings.TrimSpace(req.SourcePath) == "" {
		respondError(c, fmt.Errorf("sourceDir and sourcePath are required: %w", model.ErrValidation))
		return
	}

	rec, err := h.library.Save(req.SourceDir, req.SourcePath, req.Tags)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.FileOpResponse{
		Message: fmt.Sprintf("saved %s", rec.Path),
		NewFile: rec,
	})
}

// MoveToInput answers POST /api/move-to-input: relocates an output track
// back to the input root under its base filename.
func (h *Handler) MoveToInput(c *gin.Context) {
	var req model.MoveToInputRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, fmt.Errorf("malformed body: %w", model.ErrValidation))
		return
	}
	if strings.TrimSpace(req.File.Path) == "" {
		respondError(c, fmt.Errorf("file.path is required: %w", model.ErrValidation))
		return
	}

	rec, err := h.library.MoveToInput(req.File.Path)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.FileOpResponse{
		Message: fmt.Sprintf("moved %s back to input", rec.Path),
		NewFile: rec,
	})
}
