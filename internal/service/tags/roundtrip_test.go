package tags

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mixcrate/internal/model"
)

// writeTestMP3 creates a minimal valid MPEG audio file: a single frame
// header followed by padding, no metadata block.
func writeTestMP3(t *testing.T) string {
	t.Helper()

	frame := make([]byte, 417)
	frame[0] = 0xff
	frame[1] = 0xfb
	frame[2] = 0x90
	frame[3] = 0x00

	path := filepath.Join(t.TempDir(), "test.mp3")
	require.NoError(t, os.WriteFile(path, frame, 0o644))
	return path
}

func TestWriteRead_RoundTrip(t *testing.T) {
	c := testCodec()
	path := writeTestMP3(t)

	in := model.TagSet{
		Title:     "La Noche",
		Artist:    "Grupo Extra",
		Genres:    []string{"salsa", "bachata"},
		Bpm:       128,
		Structure: "intro-verse-chorus",
		Quadre:    "Q4",
	}
	require.NoError(t, c.Write(path, in))

	out := c.Read(path)
	assert.Equal(t, in.Title, out.Title)
	assert.Equal(t, in.Artist, out.Artist)
	assert.Equal(t, []string{"bachata", "salsa"}, out.Genres)
	assert.Equal(t, in.Bpm, out.Bpm)
	assert.Equal(t, in.Structure, out.Structure)
	assert.Equal(t, in.Quadre, out.Quadre)
}

func TestWriteRead_EmptyFields(t *testing.T) {
	c := testCodec()
	path := writeTestMP3(t)

	require.NoError(t, c.Write(path, model.TagSet{Title: "Only Title"}))

	out := c.Read(path)
	assert.Equal(t, "Only Title", out.Title)
	assert.Empty(t, out.Artist)
	assert.Equal(t, []string{}, out.Genres)
	assert.Zero(t, out.Bpm)
	assert.Empty(t, out.Structure)
	assert.Empty(t, out.Quadre)
}

func TestWrite_NormalizesGenres(t *testing.T) {
	c := testCodec()
	path := writeTestMP3(t)

	in := model.TagSet{Genres: []string{"Salsa", "techno", "bachata, salsa"}}
	require.NoError(t, c.Write(path, in))

	out := c.Read(path)
	assert.Equal(t, []string{"bachata", "salsa"}, out.Genres)
}

func TestWrite_RewriteReplacesPriorBlock(t *testing.T) {
	c := testCodec()
	path := writeTestMP3(t)

	require.NoError(t, c.Write(path, model.TagSet{
		Title: "First", Artist: "A", Bpm: 100,
		Structure: "old", Quadre: "Q1",
	}))
	require.NoError(t, c.Write(path, model.TagSet{
		Title: "Second", Artist: "B",
		Structure: "new", Quadre: "Q2",
	}))

	out := c.Read(path)
	assert.Equal(t, "Second", out.Title)
	assert.Equal(t, "B", out.Artist)
	assert.Zero(t, out.Bpm, "cleared bpm must not leak from the prior block")
	assert.Equal(t, "new", out.Structure)
	assert.Equal(t, "Q2", out.Quadre)
}

func TestWrite_MissingFileFails(t *testing.T) {
	c := testCodec()
	err := c.Write(filepath.Join(t.TempDir(), "absent.mp3"), model.TagSet{Title: "x"})
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrMetadataWrite)
}

func TestRead_BestEffort(t *testing.T) {
	c := testCodec()

	t.Run("missing file", func(t *testing.T) {
		out := c.Read(filepath.Join(t.TempDir(), "absent.mp3"))
		assert.Equal(t, emptyTagSet(), out)
	})

	t.Run("garbage content", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "garbage.mp3")
		require.NoError(t, os.WriteFile(path, []byte("this is not audio"), 0o644))
		out := c.Read(path)
		assert.Equal(t, emptyTagSet(), out)
	})

	t.Run("untagged audio", func(t *testing.T) {
		out := c.Read(writeTestMP3(t))
		assert.Equal(t, emptyTagSet(), out)
	})
}
