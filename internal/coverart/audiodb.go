package coverart

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const defaultAudioDBBaseURL = "https://theaudiodb.com/api/v1/json"

// AudioDBProvider queries TheAudioDB album search API.
type AudioDBProvider struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

// NewAudioDBProvider constructs a TheAudioDB provider.
func NewAudioDBProvider(httpClient *http.Client, baseURL, apiKey string) *AudioDBProvider {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	if baseURL == "" {
		baseURL = defaultAudioDBBaseURL
	}
	return &AudioDBProvider{
		httpClient: httpClient,
		baseURL:    baseURL,
		apiKey:     apiKey,
	}
}

// Name implements Provider.
func (p *AudioDBProvider) Name() string { return "audiodb" }

type audioDBSearchResponse struct {
	Album []struct {
		Thumb string `json:"strAlbumThumb"`
	} `json:"album"`
}

// Lookup implements Provider.
func (p *AudioDBProvider) Lookup(ctx context.Context, artist, album string) (string, error) {
	params := url.Values{}
	params.Set("s", artist)
	params.Set("a", album)

	endpoint := fmt.Sprintf("%s/%s/searchalbum.php?%s", p.baseURL, p.apiKey, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("audiodb: %w", err)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("audiodb: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("audiodb: status %d", resp.StatusCode)
	}

	var search audioDBSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&search); err != nil {
		return "", fmt.Errorf("audiodb: %w", err)
	}

	if len(search.Album) == 0 || search.Album[0].Thumb == "" {
		return "", ErrNotFound
	}

	return search.Album[0].Thumb, nil
}
