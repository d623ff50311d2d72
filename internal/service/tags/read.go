package tags

import (
	"os"

	"github.com/bogem/id3v2/v2"
	"github.com/dhowden/tag"

	"mixcrate/internal/model"
)

// Read parses the embedded metadata block of the file at path.
//
// Any failure along the way (missing file, malformed block, no tags at all)
// degrades to whatever could be extracted, down to the zero TagSet. Callers
// never see an error from a read.
func (c *Codec) Read(path string) model.TagSet {
	ts := emptyTagSet()
	var declarations []string

	if f, err := os.Open(path); err == nil {
		if m, err := tag.ReadFrom(f); err == nil {
			ts.Title = m.Title()
			ts.Artist = m.Artist()
			if g := m.Genre(); g != "" {
				declarations = append(declarations, g)
			}
			ts.Structure, ts.Quadre = SplitComment(m.Comment())
		}
		f.Close()
	}

	c.readExtended(path, &ts, &declarations)
	ts.Genres = c.FormatGenres(declarations)
	return ts
}

// readExtended pulls the frames dhowden/tag does not surface (TBPM, COMM)
// directly from the ID3v2 block, and backfills the basic fields when the
// primary read came up empty.
func (c *Codec) readExtended(path string, ts *model.TagSet, declarations *[]string) {
	id3, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return
	}
	defer id3.Close()

	if ts.Title == "" {
		ts.Title = id3.Title()
	}
	if ts.Artist == "" {
		ts.Artist = id3.Artist()
	}
	if len(*declarations) == 0 {
		if g := id3.Genre(); g != "" {
			*declarations = append(*declarations, g)
		}
	}

	ts.Bpm = parseBpm(id3.GetTextFrame("TBPM").Text)

	if ts.Structure == "" && ts.Quadre == "" {
		for _, fr := range id3.GetFrames(id3.CommonID("Comments")) {
			if comm, ok := fr.(id3v2.CommentFrame); ok {
				ts.Structure, ts.Quadre = SplitComment(comm.Text)
				break
			}
		}
	}
}
