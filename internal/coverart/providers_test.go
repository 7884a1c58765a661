package coverart

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestProviderNames(t *testing.T) {
	// The chain logs and results identify providers by these names; the
	// wiring in cmd relies on them too.
	tests := []struct {
		provider Provider
		want     string
	}{
		{provider: NewLastFMProvider(nil, "", "k"), want: "lastfm"},
		{provider: newSpotifyProviderWithClient(nil, ""), want: "spotify"},
		{provider: NewDiscogsProvider(nil, "", "t", "ua"), want: "discogs"},
		{provider: NewAudioDBProvider(nil, "", "k"), want: "audiodb"},
	}

	for _, tt := range tests {
		if got := tt.provider.Name(); got != tt.want {
			t.Errorf("Name(): got %q, want %q", got, tt.want)
		}
	}
}

func TestLastFMLookup(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		response   string
		wantURL    string
		wantErr    error
		anyErr     bool
	}{
		{
			name:       "prefers extralarge image",
			statusCode: http.StatusOK,
			response: `{"album": {"image": [
				{"#text": "https://img.example/s.jpg", "size": "small"},
				{"#text": "https://img.example/xl.jpg", "size": "extralarge"},
				{"#text": "https://img.example/l.jpg", "size": "large"}
			]}}`,
			wantURL: "https://img.example/xl.jpg",
		},
		{
			name:       "falls back to any non-empty image",
			statusCode: http.StatusOK,
			response:   `{"album": {"image": [{"#text": "https://img.example/tiny.jpg", "size": "mega"}]}}`,
			wantURL:    "https://img.example/tiny.jpg",
		},
		{
			name:       "api error code 6 is a miss",
			statusCode: http.StatusOK,
			response:   `{"error": 6, "message": "Album not found"}`,
			wantErr:    ErrNotFound,
		},
		{
			name:       "all images empty is a miss",
			statusCode: http.StatusOK,
			response:   `{"album": {"image": [{"#text": "", "size": "extralarge"}]}}`,
			wantErr:    ErrNotFound,
		},
		{
			name:       "other api errors surface",
			statusCode: http.StatusOK,
			response:   `{"error": 29, "message": "Rate limit exceeded"}`,
			anyErr:     true,
		},
		{
			name:       "server error surfaces",
			statusCode: http.StatusInternalServerError,
			response:   `boom`,
			anyErr:     true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if got := r.URL.Query().Get("method"); got != "album.getinfo" {
					t.Errorf("method: got %q, want %q", got, "album.getinfo")
				}
				if got := r.URL.Query().Get("artist"); got != "The Beatles" {
					t.Errorf("artist: got %q, want %q", got, "The Beatles")
				}
				w.WriteHeader(tt.statusCode)
				_, _ = w.Write([]byte(tt.response))
			}))
			defer srv.Close()

			p := NewLastFMProvider(srv.Client(), srv.URL, "test-key")
			url, err := p.Lookup(context.Background(), "The Beatles", "Abbey Road")

			switch {
			case tt.anyErr:
				if err == nil {
					t.Fatal("expected an error")
				}
			case tt.wantErr != nil:
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected error %v, got %v", tt.wantErr, err)
				}
			default:
				if err != nil {
					t.Fatalf("expected no error, got %v", err)
				}
				if url != tt.wantURL {
					t.Errorf("url: got %q, want %q", url, tt.wantURL)
				}
			}
		})
	}
}

func TestSpotifyLookup(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search" {
			t.Errorf("path: got %q, want /search", r.URL.Path)
		}
		if got := r.URL.Query().Get("type"); got != "album" {
			t.Errorf("type: got %q, want album", got)
		}
		_, _ = w.Write([]byte(`{"albums": {"items": [{"images": [
			{"url": "https://i.scdn.example/large.jpg"},
			{"url": "https://i.scdn.example/small.jpg"}
		]}]}}`))
	}))
	defer srv.Close()

	p := newSpotifyProviderWithClient(srv.Client(), srv.URL)
	url, err := p.Lookup(context.Background(), "The Beatles", "Abbey Road")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if url != "https://i.scdn.example/large.jpg" {
		t.Errorf("url: got %q, want largest image", url)
	}
}

func TestSpotifyLookupNoResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"albums": {"items": []}}`))
	}))
	defer srv.Close()

	p := newSpotifyProviderWithClient(srv.Client(), srv.URL)
	_, err := p.Lookup(context.Background(), "Unknown Artist", "Obscure Album")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDiscogsLookup(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Discogs token=test-token" {
			t.Errorf("authorization: got %q", got)
		}
		if got := r.Header.Get("User-Agent"); got != "trivia-gen/1.0" {
			t.Errorf("user-agent: got %q", got)
		}
		if got := r.URL.Query().Get("release_title"); got != "Abbey Road" {
			t.Errorf("release_title: got %q", got)
		}
		_, _ = w.Write([]byte(`{"results": [{"cover_image": "https://img.discogs.example/r.jpg"}]}`))
	}))
	defer srv.Close()

	p := NewDiscogsProvider(srv.Client(), srv.URL, "test-token", "trivia-gen/1.0")
	url, err := p.Lookup(context.Background(), "The Beatles", "Abbey Road")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if url != "https://img.discogs.example/r.jpg" {
		t.Errorf("url: got %q", url)
	}
}

func TestDiscogsLookupEmptyResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"results": []}`))
	}))
	defer srv.Close()

	p := NewDiscogsProvider(srv.Client(), srv.URL, "t", "ua")
	_, err := p.Lookup(context.Background(), "Unknown Artist", "Obscure Album")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestAudioDBLookup(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/test-key/searchalbum.php" {
			t.Errorf("path: got %q", r.URL.Path)
		}
		if got := r.URL.Query().Get("s"); got != "The Beatles" {
			t.Errorf("s: got %q", got)
		}
		_, _ = w.Write([]byte(`{"album": [{"strAlbumThumb": "https://audiodb.example/t.jpg"}]}`))
	}))
	defer srv.Close()

	p := NewAudioDBProvider(srv.Client(), srv.URL, "test-key")
	url, err := p.Lookup(context.Background(), "The Beatles", "Abbey Road")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if url != "https://audiodb.example/t.jpg" {
		t.Errorf("url: got %q", url)
	}
}

func TestAudioDBLookupNullAlbum(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"album": null}`))
	}))
	defer srv.Close()

	p := NewAudioDBProvider(srv.Client(), srv.URL, "test-key")
	_, err := p.Lookup(context.Background(), "Unknown Artist", "Obscure Album")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
