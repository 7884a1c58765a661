package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// Album-specific validation errors
var (
	// ErrArtistEmpty is returned when an album's artist is empty.
	ErrArtistEmpty = errors.New("album artist cannot be empty")

	// ErrAlbumTitleEmpty is returned when an album's title is empty.
	ErrAlbumTitleEmpty = errors.New("album title cannot be empty")

	// ErrYearInvalid is returned when an album's release year is not a
	// four-digit number.
	ErrYearInvalid = errors.New("album year must be a four-digit number")

	// ErrLineFormat is returned when an input line does not match the
	// "Artist - Album - Year" shape.
	ErrLineFormat = errors.New("line must have the form \"Artist - Album - Year\"")
)

var yearPattern = regexp.MustCompile(`^\d{4}$`)

// fieldSeparator delimits the three fields of an input line.
const fieldSeparator = " - "

// Album identifies one album to generate trivia for. Identity is the
// (artist, album, year) tuple; the year stays a string because the input
// files and the generated JSON carry it verbatim.
type Album struct {
	Artist string `json:"artist"`
	Title  string `json:"album"`
	Year   string `json:"year"`
}

// NewAlbum creates a new Album with the given fields.
// Returns an error if validation fails.
func NewAlbum(artist, title, year string) (Album, error) {
	a := Album{
		Artist: artist,
		Title:  title,
		Year:   year,
	}

	if err := a.Validate(); err != nil {
		return Album{}, err
	}

	return a, nil
}

// Validate checks if the Album has valid data.
func (a *Album) Validate() error {
	if a.Artist == "" {
		return ErrArtistEmpty
	}

	if a.Title == "" {
		return ErrAlbumTitleEmpty
	}

	if !yearPattern.MatchString(a.Year) {
		return ErrYearInvalid
	}

	return nil
}

// ParseAlbumLine parses one "Artist - Album - Year" input line.
//
// The year is split off at the last " - " so that hyphenated album titles
// like "The Man-Machine" survive; the remainder splits at the first " - "
// into artist and album.
func ParseAlbumLine(line string) (Album, error) {
	line = strings.TrimSpace(line)

	yearIdx := strings.LastIndex(line, fieldSeparator)
	if yearIdx < 0 {
		return Album{}, fmt.Errorf("%w: %q", ErrLineFormat, line)
	}
	year := strings.TrimSpace(line[yearIdx+len(fieldSeparator):])

	rest := line[:yearIdx]
	artistIdx := strings.Index(rest, fieldSeparator)
	if artistIdx < 0 {
		return Album{}, fmt.Errorf("%w: %q", ErrLineFormat, line)
	}

	artist := strings.TrimSpace(rest[:artistIdx])
	title := strings.TrimSpace(rest[artistIdx+len(fieldSeparator):])

	a, err := NewAlbum(artist, title, year)
	if err != nil {
		return Album{}, fmt.Errorf("%w: %q", err, line)
	}

	return a, nil
}

// GenerationFailure is the explicit marker written in place of a question
// set when generation exhausted all attempts. Its "error" key makes it
// unambiguously distinguishable from a valid QuestionSet.
type GenerationFailure struct {
	Error               string `json:"error"`
	FailedAfterAttempts int    `json:"failedAfterAttempts"`
}

// AlbumRecord is the finished output record for one album. Exactly one of
// Questions and Failure is set; CoverSrc is the empty string when no cover
// art could be resolved.
type AlbumRecord struct {
	Album

	CoverSrc  string
	Questions *QuestionSet
	Failure   *GenerationFailure
}

// Succeeded reports whether the record carries a validated question set
// rather than a failure marker.
func (r *AlbumRecord) Succeeded() bool {
	return r.Questions != nil
}

// albumRecordJSON is the wire shape of an output record. The questions
// field holds either a QuestionSet or a GenerationFailure object.
type albumRecordJSON struct {
	Artist    string          `json:"artist"`
	Album     string          `json:"album"`
	Year      string          `json:"year"`
	CoverSrc  string          `json:"coverSrc"`
	Questions json.RawMessage `json:"questions"`
}

// MarshalJSON writes the record in the output file format, emitting the
// failure marker in place of the questions object when generation failed.
func (r AlbumRecord) MarshalJSON() ([]byte, error) {
	var questions any
	switch {
	case r.Questions != nil:
		questions = r.Questions
	case r.Failure != nil:
		questions = r.Failure
	default:
		return nil, fmt.Errorf("%w: record for %q has neither questions nor failure marker",
			ErrValidation, r.Title)
	}

	raw, err := json.Marshal(questions)
	if err != nil {
		return nil, err
	}

	return json.Marshal(albumRecordJSON{
		Artist:    r.Artist,
		Album:     r.Title,
		Year:      r.Year,
		CoverSrc:  r.CoverSrc,
		Questions: raw,
	})
}

// UnmarshalJSON reads a record back from an output file, recognizing the
// failure marker by its "error" key.
func (r *AlbumRecord) UnmarshalJSON(data []byte) error {
	var wire albumRecordJSON
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}

	r.Artist = wire.Artist
	r.Title = wire.Album
	r.Year = wire.Year
	r.CoverSrc = wire.CoverSrc
	r.Questions = nil
	r.Failure = nil

	if len(wire.Questions) == 0 || string(wire.Questions) == "null" {
		return nil
	}

	var probe map[string]json.RawMessage
	if err := json.Unmarshal(wire.Questions, &probe); err != nil {
		return fmt.Errorf("%w: questions field: %v", ErrInvalidFormat, err)
	}

	if _, failed := probe["error"]; failed {
		var failure GenerationFailure
		if err := json.Unmarshal(wire.Questions, &failure); err != nil {
			return fmt.Errorf("%w: failure marker: %v", ErrInvalidFormat, err)
		}
		r.Failure = &failure
		return nil
	}

	var set QuestionSet
	if err := json.Unmarshal(wire.Questions, &set); err != nil {
		return fmt.Errorf("%w: question set: %v", ErrInvalidFormat, err)
	}
	r.Questions = &set
	return nil
}
