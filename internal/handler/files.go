package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"mixcrate/internal/model"
)

// ListFiles answers GET /api/files with both root listings, newest first.
// Both directories are re-scanned on every call; there is no cached index.
func (h *Handler) ListFiles(c *gin.Context) {
	inputFiles, err := h.scanner.Scan(h.inputDir)
	if err != nil {
		respondError(c, fmt.Errorf("failed to scan input directory: %w", err))
		return
	}
	outputFiles, err := h.scanner.Scan(h.outputDir)
	if err != nil {
		respondError(c, fmt.Errorf("failed to scan output directory: %w", err))
		return
	}

	c.JSON(http.StatusOK, model.FilesResponse{
		InputFiles:  inputFiles,
		OutputFiles: outputFiles,
	})
}

// DeleteFile answers DELETE /api/files/:root/*filepath.
func (h *Handler) DeleteFile(c *gin.Context) {
	root, relPath, ok := pathParams(c)
	if !ok {
		return
	}
	if err := h.library.Delete(root, relPath); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("deleted %s", relPath)})
}
