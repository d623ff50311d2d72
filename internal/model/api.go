package model

// FilesResponse is the payload of GET /api/files. Both lists are sorted by
// modification time, newest first.
type FilesResponse struct {
	InputFiles  []TrackRecord `json:"inputFiles"`
	OutputFiles []TrackRecord `json:"outputFiles"`
}

// SaveRequest is the payload of POST /api/save.
type SaveRequest struct {
	SourceDir  string `json:"sourceDir"`
	SourcePath string `json:"sourcePath"`
	Tags       TagSet `json:"tags"`
}

// MoveToInputRequest is the payload of POST /api/move-to-input.
type MoveToInputRequest struct {
	File TrackRecord `json:"file"`
}

// FileOpResponse reports a completed save or move.
type FileOpResponse struct {
	Message string      `json:"message"`
	NewFile TrackRecord `json:"newFile"`
}

// EstimateRequest is the payload of POST /api/bpm/estimate: tap timestamps
// in milliseconds, oldest first.
type EstimateRequest struct {
	Taps []int64 `json:"taps"`
}

// EstimateResponse carries the estimated tempo; 0 means no estimate.
type EstimateResponse struct {
	Bpm int `json:"bpm"`
}
