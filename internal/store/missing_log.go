package store

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dcschmid/music-trivia-generator/internal/domain"
)

// MissingCoverLog records albums whose cover art could not be resolved.
// The log is line-oriented, append-only and never truncated; repeated runs
// keep adding to it.
type MissingCoverLog struct {
	path string
}

// NewMissingCoverLog returns a log writing to path. The file is created
// on first append.
func NewMissingCoverLog(path string) *MissingCoverLog {
	return &MissingCoverLog{path: path}
}

// Append writes one "artist | album | year" line for the album.
func (l *MissingCoverLog) Append(a domain.Album) error {
	if err := os.MkdirAll(filepath.Dir(l.path), 0o755); err != nil {
		return fmt.Errorf("create missing-cover log directory: %w", err)
	}

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open missing-cover log: %w", err)
	}
	defer func() { _ = f.Close() }()

	if _, err := fmt.Fprintf(f, "%s | %s | %s\n", a.Artist, a.Title, a.Year); err != nil {
		return fmt.Errorf("append to missing-cover log: %w", err)
	}

	return nil
}
