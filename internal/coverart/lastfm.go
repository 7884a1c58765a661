package coverart

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultLastFMBaseURL = "https://ws.audioscrobbler.com/2.0/"

// LastFMProvider queries the Last.fm album.getinfo API.
type LastFMProvider struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

// NewLastFMProvider constructs a Last.fm provider. An empty baseURL uses
// the public API endpoint.
func NewLastFMProvider(httpClient *http.Client, baseURL, apiKey string) *LastFMProvider {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	if baseURL == "" {
		baseURL = defaultLastFMBaseURL
	}
	return &LastFMProvider{
		httpClient: httpClient,
		baseURL:    baseURL,
		apiKey:     apiKey,
	}
}

// Name implements Provider.
func (p *LastFMProvider) Name() string { return "lastfm" }

type lastFMImage struct {
	URL  string `json:"#text"`
	Size string `json:"size"`
}

type lastFMAlbumInfo struct {
	Album *struct {
		Images []lastFMImage `json:"image"`
	} `json:"album"`
	Error   int    `json:"error"`
	Message string `json:"message"`
}

// lastFMErrNotFound is Last.fm's error code for an unknown album.
const lastFMErrNotFound = 6

// Lookup implements Provider. It prefers the largest listed image.
func (p *LastFMProvider) Lookup(ctx context.Context, artist, album string) (string, error) {
	params := url.Values{}
	params.Set("method", "album.getinfo")
	params.Set("api_key", p.apiKey)
	params.Set("artist", artist)
	params.Set("album", album)
	params.Set("format", "json")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("lastfm: %w", err)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("lastfm: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusNotFound {
		return "", ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("lastfm: status %d", resp.StatusCode)
	}

	var info lastFMAlbumInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return "", fmt.Errorf("lastfm: %w", err)
	}

	if info.Error == lastFMErrNotFound || info.Album == nil {
		return "", ErrNotFound
	}
	if info.Error != 0 {
		return "", fmt.Errorf("lastfm: api error %d: %s", info.Error, info.Message)
	}

	if img := pickLastFMImage(info.Album.Images); img != "" {
		return img, nil
	}
	return "", ErrNotFound
}

// sizePriority ranks Last.fm image sizes from most to least desirable.
var sizePriority = []string{"extralarge", "large", "medium"}

func pickLastFMImage(images []lastFMImage) string {
	for _, size := range sizePriority {
		for _, img := range images {
			if strings.EqualFold(img.Size, size) && img.URL != "" {
				return img.URL
			}
		}
	}
	for _, img := range images {
		if img.URL != "" {
			return img.URL
		}
	}
	return ""
}
