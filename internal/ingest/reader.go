package ingest

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/dcschmid/music-trivia-generator/internal/domain"
)

// genrePattern strips the conventional top100_<genre>_albums naming of the
// input files down to the genre.
var genrePattern = regexp.MustCompile(`^top100_|_albums$`)

// ReadAlbumFile parses one album list. Malformed lines are skipped with a
// logged reason; every well-formed line yields one Album in file order.
func ReadAlbumFile(path string, logger *slog.Logger) ([]domain.Album, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open album list: %w", err)
	}
	defer func() { _ = f.Close() }()

	var albums []domain.Album
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		album, err := domain.ParseAlbumLine(line)
		if err != nil {
			logger.Warn("skipping malformed line",
				"file", filepath.Base(path),
				"line", lineNo,
				"error", err)
			continue
		}
		albums = append(albums, album)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read album list: %w", err)
	}

	return albums, nil
}

// ListInputFiles returns the .txt files of dir in sorted order.
func ListInputFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read input directory: %w", err)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".txt") {
			continue
		}
		files = append(files, filepath.Join(dir, e.Name()))
	}
	sort.Strings(files)

	return files, nil
}

// GenreFromFilename derives the output file's genre name from an input
// filename, e.g. "top100_jazz_albums.txt" becomes "jazz".
func GenreFromFilename(path string) string {
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return genrePattern.ReplaceAllString(base, "")
}

// MoveToFinished moves a fully processed input file into finishedDir,
// creating the directory when needed.
func MoveToFinished(path, finishedDir string) error {
	if err := os.MkdirAll(finishedDir, 0o755); err != nil {
		return fmt.Errorf("create finished directory: %w", err)
	}

	target := filepath.Join(finishedDir, filepath.Base(path))
	if err := os.Rename(path, target); err != nil {
		return fmt.Errorf("move finished file: %w", err)
	}

	return nil
}
