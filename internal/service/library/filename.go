package library

import (
	"regexp"
	"strings"

	"mixcrate/internal/service/scan"
)

// Fallbacks used when a field is empty at save time.
const (
	unknownArtist = "Unknown Artist"
	untitled      = "Untitled"
)

// illegalFilenameChars matches every character that common filesystems
// reject in filenames, plus the control range.
var illegalFilenameChars = regexp.MustCompile(`[<>:"/\\|?*\x00-\x1f]`)

// DeriveFilename computes the canonical output filename for a track:
// sanitize("<artist> — <title>.mp3") with fallbacks for empty fields.
// Pure and deterministic, so re-saving unchanged tags is idempotent.
func DeriveFilename(artist, title string) string {
	if artist == "" {
		artist = unknownArtist
	}
	if title == "" {
		title = untitled
	}
	name := artist + " — " + title + scan.Ext
	name = illegalFilenameChars.ReplaceAllString(name, "_")
	return strings.TrimSpace(name)
}
