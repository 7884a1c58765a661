package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dcschmid/music-trivia-generator/internal/domain"
)

// ErrNilRecord is returned when a record without content is appended.
var ErrNilRecord = errors.New("record must carry questions or a failure marker")

// identity is the (artist, album, year) tuple that makes a record unique.
type identity struct {
	artist string
	album  string
	year   string
}

// AlbumStore holds the records of one output JSON file. The file is an
// array of album records; it is re-written after every append so progress
// survives interruption, and the write is atomic (temp file + rename) so
// an interrupted run never leaves a torn file behind.
//
// Not safe for concurrent use; the pipeline processes albums sequentially.
type AlbumStore struct {
	path    string
	records []domain.AlbumRecord
	index   map[identity]struct{}
}

// OpenAlbumStore loads the records already present at path. A missing
// file yields an empty store. A file that fails to decode also yields an
// empty store, mirroring how previous runs of the tool treated corrupt
// output; the next append re-writes the file wholesale.
func OpenAlbumStore(path string) (*AlbumStore, error) {
	s := &AlbumStore{
		path:  path,
		index: make(map[identity]struct{}),
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read album store: %w", err)
	}

	var records []domain.AlbumRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return s, nil
	}

	s.records = records
	for i := range records {
		s.index[identityOf(records[i].Album)] = struct{}{}
	}

	return s, nil
}

// Contains reports whether a record for the album is already stored.
func (s *AlbumStore) Contains(a domain.Album) bool {
	_, ok := s.index[identityOf(a)]
	return ok
}

// Len returns the number of stored records.
func (s *AlbumStore) Len() int {
	return len(s.records)
}

// Append adds the record and re-writes the backing file.
func (s *AlbumStore) Append(r domain.AlbumRecord) error {
	if r.Questions == nil && r.Failure == nil {
		return ErrNilRecord
	}

	s.records = append(s.records, r)
	s.index[identityOf(r.Album)] = struct{}{}

	return s.flush()
}

// flush writes the full record array to a temp file in the target
// directory and renames it over the destination.
func (s *AlbumStore) flush() error {
	data, err := json.MarshalIndent(s.records, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal album store: %w", err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("write album store: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("replace album store: %w", err)
	}

	return nil
}

func identityOf(a domain.Album) identity {
	return identity{artist: a.Artist, album: a.Title, year: a.Year}
}
