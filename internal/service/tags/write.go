package tags

import (
	"strings"

	"github.com/bogem/id3v2/v2"

	"mixcrate/internal/model"
)

// Write replaces the metadata block of the file at path with the given
// TagSet, leaving the audio payload untouched. Genres are normalized through
// the allow-list before encoding and joined with ", " in the genre frame.
//
// Every failure wraps model.ErrMetadataWrite so the save orchestration can
// report the operation as failed instead of pretending the tags persisted.
func (c *Codec) Write(path string, ts model.TagSet) error {
	id3, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return wrapWriteErr("open metadata block", err)
	}
	defer id3.Close()

	// ID3v2.4 with UTF-8 throughout.
	id3.SetVersion(4)
	id3.SetDefaultEncoding(id3v2.EncodingUTF8)

	id3.SetTitle(ts.Title)
	id3.SetArtist(ts.Artist)
	id3.SetGenre(strings.Join(c.FormatGenres(ts.Genres), ", "))

	id3.DeleteFrames("TBPM")
	if ts.Bpm > 0 {
		id3.AddTextFrame("TBPM", id3v2.EncodingUTF8, formatBpm(ts.Bpm))
	}

	id3.DeleteFrames(id3.CommonID("Comments"))
	id3.AddCommentFrame(id3v2.CommentFrame{
		Encoding:    id3v2.EncodingUTF8,
		Language:    "eng",
		Description: "",
		Text:        PackComment(ts.Structure, ts.Quadre),
	})

	if err := id3.Save(); err != nil {
		return wrapWriteErr("save metadata block", err)
	}
	return nil
}
