// Package handler exposes the HTTP surface over the library services.
package handler

import (
	"errors"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"

	"mixcrate/internal/model"
)

// Scanner lists the tracks under a root directory.
type Scanner interface {
	Scan(root string) ([]model.TrackRecord, error)
}

// Library is the file lifecycle service the handlers drive.
type Library interface {
	Save(sourceRoot, sourcePath string, ts model.TagSet) (model.TrackRecord, error)
	MoveToInput(outputPath string) (model.TrackRecord, error)
	Delete(rootLabel, relPath string) error
	Open(rootLabel, relPath string) (*os.File, os.FileInfo, error)
	ReadTags(rootLabel, relPath string) (model.TagSet, error)
}

type Handler struct {
	scanner        Scanner
	library        Library
	inputDir       string
	outputDir      string
	genreAllowList []string
}

func New(scanner Scanner, library Library, inputDir, outputDir string, genreAllowList []string) *Handler {
	return &Handler{
		scanner:        scanner,
		library:        library,
		inputDir:       inputDir,
		outputDir:      outputDir,
		genreAllowList: genreAllowList,
	}
}

// pathParams extracts and validates the :root and *filepath route params.
func pathParams(c *gin.Context) (root, relPath string, ok bool) {
	root = c.Param("root")
	if !model.ValidRoot(root) {
		respondError(c, model.ErrValidation)
		return "", "", false
	}
	relPath = strings.TrimPrefix(c.Param("filepath"), "/")
	if relPath == "" {
		respondError(c, model.ErrValidation)
		return "", "", false
	}
	return root, relPath, true
}

// respondError maps the error taxonomy onto status codes and renders the
// {error} body every failing route shares.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, model.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, model.ErrForbiddenPath):
		status = http.StatusForbidden
	case errors.Is(err, model.ErrNotFound):
		status = http.StatusNotFound
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
