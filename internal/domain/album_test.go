package domain

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestNewAlbum(t *testing.T) {
	t.Parallel()

	album, err := NewAlbum("The Beatles", "Abbey Road", "1969")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if album.Artist != "The Beatles" {
		t.Errorf("Expected artist %q, got %q", "The Beatles", album.Artist)
	}

	// Empty artist
	if _, err := NewAlbum("", "Abbey Road", "1969"); err != ErrArtistEmpty {
		t.Errorf("Expected error %v, got %v", ErrArtistEmpty, err)
	}

	// Empty title
	if _, err := NewAlbum("The Beatles", "", "1969"); err != ErrAlbumTitleEmpty {
		t.Errorf("Expected error %v, got %v", ErrAlbumTitleEmpty, err)
	}

	// Non-numeric year
	if _, err := NewAlbum("The Beatles", "Abbey Road", "sixty-nine"); err != ErrYearInvalid {
		t.Errorf("Expected error %v, got %v", ErrYearInvalid, err)
	}

	// Two-digit year
	if _, err := NewAlbum("The Beatles", "Abbey Road", "69"); err != ErrYearInvalid {
		t.Errorf("Expected error %v, got %v", ErrYearInvalid, err)
	}
}

func TestParseAlbumLine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		line    string
		want    Album
		wantErr error
	}{
		{
			name: "plain line",
			line: "The Beatles - Abbey Road - 1969",
			want: Album{Artist: "The Beatles", Title: "Abbey Road", Year: "1969"},
		},
		{
			name: "hyphenated album title",
			line: "Kraftwerk - The Man-Machine - 1978",
			want: Album{Artist: "Kraftwerk", Title: "The Man-Machine", Year: "1978"},
		},
		{
			name: "album title containing the separator",
			line: "Nine Inch Nails - Year Zero - Remixed - 2007",
			want: Album{Artist: "Nine Inch Nails", Title: "Year Zero - Remixed", Year: "2007"},
		},
		{
			name: "surrounding whitespace",
			line: "  Miles Davis - Kind of Blue - 1959\n",
			want: Album{Artist: "Miles Davis", Title: "Kind of Blue", Year: "1959"},
		},
		{
			name:    "missing year field",
			line:    "The Beatles - Abbey Road",
			wantErr: ErrLineFormat,
		},
		{
			name:    "single field",
			line:    "Abbey Road",
			wantErr: ErrLineFormat,
		},
		{
			name:    "empty line",
			line:    "",
			wantErr: ErrLineFormat,
		},
		{
			name:    "year not a number",
			line:    "The Beatles - Abbey Road - next year",
			wantErr: ErrYearInvalid,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseAlbumLine(tt.line)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Expected error %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Expected no error, got %v", err)
			}
			if got != tt.want {
				t.Errorf("Expected %+v, got %+v", tt.want, got)
			}
		})
	}
}

func TestAlbumRecordMarshalJSON(t *testing.T) {
	t.Parallel()

	album := Album{Artist: "The Beatles", Title: "Abbey Road", Year: "1969"}
	set := validQuestionSet()

	record := AlbumRecord{Album: album, CoverSrc: "https://covers.example/abbey.jpg", Questions: &set}
	data, err := json.Marshal(record)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	var wire map[string]json.RawMessage
	if err := json.Unmarshal(data, &wire); err != nil {
		t.Fatalf("Output record is not a JSON object: %v", err)
	}
	for _, key := range []string{"artist", "album", "year", "coverSrc", "questions"} {
		if _, ok := wire[key]; !ok {
			t.Errorf("Output record is missing key %q", key)
		}
	}

	// Failure marker takes the place of the questions object
	record = AlbumRecord{
		Album:   album,
		Failure: &GenerationFailure{Error: "exhausted retries", FailedAfterAttempts: 3},
	}
	data, err = json.Marshal(record)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	var roundTrip AlbumRecord
	if err := json.Unmarshal(data, &roundTrip); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if roundTrip.Succeeded() {
		t.Error("Expected failed record after round trip")
	}
	if roundTrip.Failure == nil || roundTrip.Failure.FailedAfterAttempts != 3 {
		t.Errorf("Expected failure marker with 3 attempts, got %+v", roundTrip.Failure)
	}

	// A record with neither questions nor failure marker refuses to marshal
	record = AlbumRecord{Album: album}
	if _, err := json.Marshal(record); err == nil {
		t.Error("Expected marshal of empty record to fail")
	}
}

func TestAlbumRecordUnmarshalJSON(t *testing.T) {
	t.Parallel()

	set := validQuestionSet()
	record := AlbumRecord{
		Album:     Album{Artist: "Kraftwerk", Title: "The Man-Machine", Year: "1978"},
		CoverSrc:  "",
		Questions: &set,
	}

	data, err := json.Marshal(record)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	var got AlbumRecord
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !got.Succeeded() {
		t.Fatal("Expected successful record after round trip")
	}
	if err := got.Questions.Validate(); err != nil {
		t.Errorf("Round-tripped question set is invalid: %v", err)
	}
	if got.Album != record.Album {
		t.Errorf("Expected album %+v, got %+v", record.Album, got.Album)
	}
}
