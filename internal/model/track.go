package model

// Root labels the two directories a track can live in.
const (
	RootInput  = "input"
	RootOutput = "output"
)

// ValidRoot reports whether label names one of the two track roots.
func ValidRoot(label string) bool {
	return label == RootInput || label == RootOutput
}

// TrackRecord is a single listing entry: a root-relative path (forward-slash
// separated on every platform) and the file's last-modified time in Unix
// milliseconds. Records carry no persistent identity beyond the path string;
// every listing request recomputes them from the filesystem.
type TrackRecord struct {
	Path  string `json:"path"`
	Mtime int64  `json:"mtime"`
}

// TagSet is the editable metadata schema.
//
// Genres holds only values from the configured allow-list, lowercased,
// deduplicated and sorted ascending. Structure and Quadre are two freeform
// fields packed into the underlying comment frame as "<structure>|<quadre>".
// Bpm of 0 means unset.
type TagSet struct {
	Title     string   `json:"title"`
	Artist    string   `json:"artist"`
	Genres    []string `json:"genres"`
	Bpm       int      `json:"bpm"`
	Structure string   `json:"structure"`
	Quadre    string   `json:"quadre"`
}
