package handler

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

const audioContentType = "audio/mpeg"

// Play answers GET /api/play/:root/*filepath with the track's bytes.
// Range requests are honored so the browser can scrub without downloading
// the whole file first.
func (h *Handler) Play(c *gin.Context) {
	root, relPath, ok := pathParams(c)
	if !ok {
		return
	}

	file, info, err := h.library.Open(root, relPath)
	if err != nil {
		respondError(c, err)
		return
	}
	defer file.Close()

	c.Header("Accept-Ranges", "bytes")
	c.Header("Cache-Control", "no-cache")

	if rangeHeader := c.GetHeader("Range"); rangeHeader != "" {
		h.serveRange(c, file, info.Size(), rangeHeader)
		return
	}

	c.Header("Content-Type", audioContentType)
	c.Header("Content-Length", strconv.FormatInt(info.Size(), 10))
	c.Status(http.StatusOK)
	if _, err := io.Copy(c.Writer, file); err != nil {
		log.Printf("stream: error sending %s: %v", relPath, err)
	}
}

// serveRange streams a single byte span per "Range: bytes=start-end".
func (h *Handler) serveRange(c *gin.Context, file *os.File, fileSize int64, rangeHeader string) {
	start, end, ok := parseRange(rangeHeader, fileSize)
	if !ok {
		c.Header("Content-Range", fmt.Sprintf("bytes */%d", fileSize))
		c.Status(http.StatusRequestedRangeNotSatisfiable)
		return
	}

	if _, err := file.Seek(start, io.SeekStart); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to seek file"})
		return
	}

	contentLength := end - start + 1
	c.Header("Content-Type", audioContentType)
	c.Header("Content-Length", strconv.FormatInt(contentLength, 10))
	c.Header("Content-Range", fmt.Sprintf("bytes %d-%d/%d", start, end, fileSize))
	c.Status(http.StatusPartialContent)

	if _, err := io.CopyN(c.Writer, file, contentLength); err != nil {
		log.Printf("stream: error sending range %d-%d: %v", start, end, err)
	}
}

// parseRange interprets a single-span "bytes=start-end" header against the
// file size, clamping an open end to the last byte.
func parseRange(header string, fileSize int64) (start, end int64, ok bool) {
	if !strings.HasPrefix(header, "bytes=") {
		return 0, 0, false
	}
	spec := strings.TrimPrefix(header, "bytes=")
	parts := strings.Split(spec, "-")
	if len(parts) != 2 {
		return 0, 0, false
	}

	var err error
	if parts[0] != "" {
		start, err = strconv.ParseInt(parts[0], 10, 64)
		if err != nil || start < 0 {
			return 0, 0, false
		}
	}
	if parts[1] != "" {
		end, err = strconv.ParseInt(parts[1], 10, 64)
		if err != nil || end < start {
			return 0, 0, false
		}
	} else {
		end = fileSize - 1
	}

	if start >= fileSize {
		return 0, 0, false
	}
	if end >= fileSize {
		end = fileSize - 1
	}
	return start, end, true
}
