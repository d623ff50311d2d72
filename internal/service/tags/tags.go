// Package tags reads and writes the mixcrate tag schema on MP3 files.
//
// Reading is best effort: a file with malformed or missing metadata yields
// the zero TagSet so the UI can still offer an editable blank form. Writing
// is strict: any encoding or persistence failure propagates, because a save
// must not be reported as successful when the tags did not land.
package tags

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"mixcrate/internal/model"
)

// commentSeparator packs the structure and quadre fields into the single
// underlying comment frame as "<structure>|<quadre>".
const commentSeparator = "|"

// Codec converts between files on disk and TagSets, filtering genres
// against a fixed allow-list.
type Codec struct {
	allowList map[string]struct{}
}

// NewCodec builds a codec for the given genre allow-list. Values are
// case-folded to lowercase before comparison.
func NewCodec(allowList []string) *Codec {
	allowed := make(map[string]struct{}, len(allowList))
	for _, g := range allowList {
		g = strings.ToLower(strings.TrimSpace(g))
		if g != "" {
			allowed[g] = struct{}{}
		}
	}
	return &Codec{allowList: allowed}
}

// FormatGenres normalizes raw genre declarations: declarations containing
// comma-separated sub-values are split into individual candidates, every
// candidate is trimmed and lowercased, values outside the allow-list are
// dropped, and the survivors are deduplicated and sorted ascending.
func (c *Codec) FormatGenres(declarations []string) []string {
	seen := make(map[string]struct{})
	genres := []string{}
	for _, decl := range declarations {
		for _, candidate := range strings.Split(decl, ",") {
			candidate = strings.ToLower(strings.TrimSpace(candidate))
			if candidate == "" {
				continue
			}
			if _, ok := c.allowList[candidate]; !ok {
				continue
			}
			if _, ok := seen[candidate]; ok {
				continue
			}
			seen[candidate] = struct{}{}
			genres = append(genres, candidate)
		}
	}
	sort.Strings(genres)
	return genres
}

// PackComment serializes the two freeform fields into the comment frame
// value. The fields themselves must not rely on embedded "|" characters:
// only the first two segments survive a round trip.
func PackComment(structure, quadre string) string {
	return structure + commentSeparator + quadre
}

// SplitComment unpacks a comment frame value. The first segment is
// structure, the second quadre; excess segments are ignored and missing
// ones default to empty.
func SplitComment(comment string) (structure, quadre string) {
	parts := strings.Split(comment, commentSeparator)
	if len(parts) > 0 {
		structure = parts[0]
	}
	if len(parts) > 1 {
		quadre = parts[1]
	}
	return structure, quadre
}

// parseBpm converts a raw TBPM value to a non-negative integer tempo.
// Unparseable or negative values read as unset.
func parseBpm(raw string) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}
	if v, err := strconv.Atoi(raw); err == nil {
		if v < 0 {
			return 0
		}
		return v
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil && f > 0 {
		return int(f + 0.5)
	}
	return 0
}

// formatBpm renders a tempo for the TBPM frame.
func formatBpm(bpm int) string {
	return strconv.Itoa(bpm)
}

// emptyTagSet is what a failed read yields: all fields empty, genres
// present as an empty list rather than null.
func emptyTagSet() model.TagSet {
	return model.TagSet{Genres: []string{}}
}

func wrapWriteErr(op string, err error) error {
	return fmt.Errorf("%s: %v: %w", op, err, model.ErrMetadataWrite)
}
