// Package scan lists the audio files under a root directory.
package scan

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"mixcrate/internal/model"
)

// Ext is the single supported audio container extension.
const Ext = ".mp3"

type Scanner struct{}

func NewScanner() *Scanner {
	return &Scanner{}
}

// Scan enumerates every MP3 file under root, returning root-relative
// forward-slash paths with their modification times, newest first.
//
// Traversal uses an explicit work list rather than recursion, so deeply
// nested trees cannot exhaust the stack. Directories that cannot be read
// are logged and skipped; a bad subtree never aborts the whole scan.
func (s *Scanner) Scan(root string) ([]model.TrackRecord, error) {
	if _, err := os.Stat(root); err != nil {
		return nil, fmt.Errorf("failed to stat root %q: %w", root, err)
	}

	records := []model.TrackRecord{}
	pending := []string{root}

	for len(pending) > 0 {
		dir := pending[len(pending)-1]
		pending = pending[:len(pending)-1]

		entries, err := os.ReadDir(dir)
		if err != nil {
			log.Printf("scan: skipping unreadable directory %s: %v", dir, err)
			continue
		}

		for _, entry := range entries {
			path := filepath.Join(dir, entry.Name())
			if entry.IsDir() {
				pending = append(pending, path)
				continue
			}
			if !IsAudioFile(entry.Name()) {
				continue
			}

			info, err := entry.Info()
			if err != nil {
				log.Printf("scan: skipping unreadable file %s: %v", path, err)
				continue
			}

			rel, err := filepath.Rel(root, path)
			if err != nil {
				log.Printf("scan: skipping file outside root %s: %v", path, err)
				continue
			}

			records = append(records, model.TrackRecord{
				Path:  filepath.ToSlash(rel),
				Mtime: info.ModTime().UnixMilli(),
			})
		}
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Mtime > records[j].Mtime
	})
	return records, nil
}

// IsAudioFile reports whether the filename carries the supported extension,
// case-insensitively.
func IsAudioFile(name string) bool {
	return strings.EqualFold(filepath.Ext(name), Ext)
}
