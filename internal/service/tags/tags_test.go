package tags

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testCodec() *Codec {
	return NewCodec([]string{"bachata", "salsa"})
}

func TestFormatGenres(t *testing.T) {
	c := testCodec()

	tests := []struct {
		name         string
		declarations []string
		want         []string
	}{
		{"empty", nil, []string{}},
		{"single allowed", []string{"bachata"}, []string{"bachata"}},
		{"case folded", []string{"Bachata", "SALSA"}, []string{"bachata", "salsa"}},
		{"unknown dropped", []string{"techno", "salsa"}, []string{"salsa"}},
		{"comma packed declaration split", []string{"salsa, bachata"}, []string{"bachata", "salsa"}},
		{"comma packed with unknowns", []string{"rock, salsa, pop"}, []string{"salsa"}},
		{"deduplicated", []string{"salsa", "Salsa", "salsa, salsa"}, []string{"salsa"}},
		{"sorted ascending", []string{"salsa", "bachata"}, []string{"bachata", "salsa"}},
		{"whitespace trimmed", []string{"  bachata ", " salsa"}, []string{"bachata", "salsa"}},
		{"all unknown", []string{"jazz, blues"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.FormatGenres(tt.declarations))
		})
	}
}

func TestPackSplitComment(t *testing.T) {
	tests := []struct {
		name      string
		structure string
		quadre    string
	}{
		{"both set", "AABB", "Q4"},
		{"structure only", "intro-verse", ""},
		{"quadre only", "", "Q2"},
		{"both empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, q := SplitComment(PackComment(tt.structure, tt.quadre))
			assert.Equal(t, tt.structure, s)
			assert.Equal(t, tt.quadre, q)
		})
	}
}

func TestSplitComment(t *testing.T) {
	tests := []struct {
		name          string
		comment       string
		wantStructure string
		wantQuadre    string
	}{
		{"no separator", "just a note", "just a note", ""},
		{"empty", "", "", ""},
		{"excess segments ignored", "a|b|c|d", "a", "b"},
		{"leading separator", "|Q4", "", "Q4"},
		{"trailing separator", "AABB|", "AABB", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, q := SplitComment(tt.comment)
			assert.Equal(t, tt.wantStructure, s)
			assert.Equal(t, tt.wantQuadre, q)
		})
	}
}

func TestSplitComment_EmbeddedSeparatorLosesTail(t *testing.T) {
	// A "|" inside structure cannot survive the round trip: only the first
	// two segments are meaningful.
	s, q := SplitComment(PackComment("a|b", "c"))
	assert.Equal(t, "a", s)
	assert.Equal(t, "b", q)
}

func TestParseBpm(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{"", 0},
		{"120", 120},
		{" 98 ", 98},
		{"-5", 0},
		{"127.6", 128},
		{"fast", 0},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, parseBpm(tt.raw))
		})
	}
}
