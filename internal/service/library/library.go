// Package library moves tracks through their lifecycle between the input
// and output root directories.
//
// Every operation resolves user-supplied relative paths against a root and
// rejects anything that escapes it before touching the filesystem. Moves are
// copy-then-delete rather than rename: the two roots may sit on different
// filesystems.
//
// Operations on the same path are not coordinated; two concurrent saves of
// one source file can race, with one failing on the missing source. That is
// a documented limitation of this single-user tool, not a guarantee.
package library

import (
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"mixcrate/internal/model"
	"mixcrate/internal/service/tags"
)

type Service struct {
	inputDir  string
	outputDir string
	codec     *tags.Codec
}

func NewService(inputDir, outputDir string, codec *tags.Codec) *Service {
	return &Service{
		inputDir:  filepath.Clean(inputDir),
		outputDir: filepath.Clean(outputDir),
		codec:     codec,
	}
}

func (s *Service) rootDir(label string) (string, error) {
	switch label {
	case model.RootInput:
		return s.inputDir, nil
	case model.RootOutput:
		return s.outputDir, nil
	default:
		return "", fmt.Errorf("unknown root %q: %w", label, model.ErrValidation)
	}
}

// resolve joins a root-relative path onto its root directory and verifies
// the result stays inside it. Absolute paths and ".." escapes fail with
// model.ErrForbiddenPath before any filesystem access.
func (s *Service) resolve(rootLabel, relPath string) (string, error) {
	root, err := s.rootDir(rootLabel)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(relPath) == "" {
		return "", fmt.Errorf("empty path: %w", model.ErrValidation)
	}
	if filepath.IsAbs(relPath) || strings.HasPrefix(filepath.ToSlash(relPath), "/") {
		return "", fmt.Errorf("absolute path %q: %w", relPath, model.ErrForbiddenPath)
	}

	resolved := filepath.Join(root, filepath.FromSlash(relPath))
	if resolved == root || !strings.HasPrefix(resolved, root+string(os.PathSeparator)) {
		return "", fmt.Errorf("path %q: %w", relPath, model.ErrForbiddenPath)
	}
	return resolved, nil
}

// Save writes tags to the track at (sourceRoot, sourcePath), relocating it
// into the output root under its derived filename. When the computed
// destination equals the source the file stays put and only its tags are
// rewritten. The returned record describes the relocated file.
func (s *Service) Save(sourceRoot, sourcePath string, ts model.TagSet) (model.TrackRecord, error) {
	src, err := s.resolve(sourceRoot, sourcePath)
	if err != nil {
		return model.TrackRecord{}, err
	}
	if _, err := os.Stat(src); err != nil {
		if os.IsNotExist(err) {
			return model.TrackRecord{}, fmt.Errorf("source %q: %w", sourcePath, model.ErrNotFound)
		}
		return model.TrackRecord{}, fmt.Errorf("failed to stat source: %w", err)
	}

	destName := DeriveFilename(ts.Artist, ts.Title)
	dst, err := s.resolve(model.RootOutput, destName)
	if err != nil {
		return model.TrackRecord{}, err
	}

	if src != dst {
		if err := s.relocate(src, dst); err != nil {
			return model.TrackRecord{}, err
		}
	}

	// The save has not succeeded until the tags are on disk at the
	// destination; a write failure here is the operation's failure.
	if err := s.codec.Write(dst, ts); err != nil {
		return model.TrackRecord{}, err
	}

	return s.record(dst, destName)
}

// MoveToInput relocates a track from the output root back to the input
// root, keeping only its base filename.
func (s *Service) MoveToInput(outputPath string) (model.TrackRecord, error) {
	src, err := s.resolve(model.RootOutput, outputPath)
	if err != nil {
		return model.TrackRecord{}, err
	}
	if _, err := os.Stat(src); err != nil {
		if os.IsNotExist(err) {
			return model.TrackRecord{}, fmt.Errorf("output file %q: %w", outputPath, model.ErrNotFound)
		}
		return model.TrackRecord{}, fmt.Errorf("failed to stat output file: %w", err)
	}

	base := path.Base(filepath.ToSlash(outputPath))
	dst, err := s.resolve(model.RootInput, base)
	if err != nil {
		return model.TrackRecord{}, err
	}

	if err := s.relocate(src, dst); err != nil {
		return model.TrackRecord{}, err
	}
	return s.record(dst, base)
}

// Delete permanently removes the track at (rootLabel, relPath). A missing
// target fails with model.ErrNotFound so callers can answer "already gone"
// instead of a generic failure.
func (s *Service) Delete(rootLabel, relPath string) error {
	target, err := s.resolve(rootLabel, relPath)
	if err != nil {
		return err
	}
	if err := os.Remove(target); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("file %q: %w", relPath, model.ErrNotFound)
		}
		return fmt.Errorf("failed to delete %q: %w", relPath, err)
	}
	return nil
}

// Open validates containment and opens the track for streaming, returning
// the open file and its stat info.
func (s *Service) Open(rootLabel, relPath string) (*os.File, os.FileInfo, error) {
	target, err := s.resolve(rootLabel, relPath)
	if err != nil {
		return nil, nil, err
	}
	f, err := os.Open(target)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil, fmt.Errorf("file %q: %w", relPath, model.ErrNotFound)
		}
		return nil, nil, fmt.Errorf("failed to open %q: %w", relPath, err)
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, nil, fmt.Errorf("failed to stat %q: %w", relPath, err)
	}
	return f, info, nil
}

// ReadTags reads the TagSet of the track at (rootLabel, relPath). The read
// itself is best effort (an unreadable block yields the empty TagSet); only
// containment and root-label failures surface as errors.
func (s *Service) ReadTags(rootLabel, relPath string) (model.TagSet, error) {
	target, err := s.resolve(rootLabel, relPath)
	if err != nil {
		return model.TagSet{}, err
	}
	return s.codec.Read(target), nil
}

// relocate copies src to dst and removes the original. Copy-then-delete
// instead of rename: input and output may live on different filesystems.
func (s *Service) relocate(src, dst string) error {
	if err := copyFile(src, dst); err != nil {
		return err
	}
	if err := os.Remove(src); err != nil {
		return fmt.Errorf("failed to remove source after copy: %w", err)
	}
	return nil
}

func (s *Service) record(target, name string) (model.TrackRecord, error) {
	info, err := os.Stat(target)
	if err != nil {
		return model.TrackRecord{}, fmt.Errorf("failed to stat %q: %w", name, err)
	}
	return model.TrackRecord{
		Path:  filepath.ToSlash(name),
		Mtime: info.ModTime().UnixMilli(),
	}, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open source: %w", err)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("failed to create destination: %w", err)
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("failed to copy file contents: %w", err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("failed to flush destination: %w", err)
	}
	return nil
}
