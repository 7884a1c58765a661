package coverart

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"golang.org/x/oauth2/clientcredentials"
)

const (
	defaultSpotifyBaseURL  = "https://api.spotify.com/v1"
	defaultSpotifyTokenURL = "https://accounts.spotify.com/api/token"
)

// SpotifyProvider queries the Spotify album search API. Authentication
// uses the client-credentials flow; the oauth2 client refreshes tokens
// transparently.
type SpotifyProvider struct {
	httpClient *http.Client
	baseURL    string
}

// NewSpotifyProvider constructs a Spotify provider from API credentials.
// Empty baseURL and tokenURL use the public endpoints.
func NewSpotifyProvider(ctx context.Context, clientID, clientSecret, baseURL, tokenURL string) *SpotifyProvider {
	if baseURL == "" {
		baseURL = defaultSpotifyBaseURL
	}
	if tokenURL == "" {
		tokenURL = defaultSpotifyTokenURL
	}

	conf := &clientcredentials.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		TokenURL:     tokenURL,
	}

	return &SpotifyProvider{
		httpClient: conf.Client(ctx),
		baseURL:    baseURL,
	}
}

// newSpotifyProviderWithClient is used by tests to bypass the token flow.
func newSpotifyProviderWithClient(httpClient *http.Client, baseURL string) *SpotifyProvider {
	return &SpotifyProvider{httpClient: httpClient, baseURL: baseURL}
}

// Name implements Provider.
func (p *SpotifyProvider) Name() string { return "spotify" }

type spotifySearchResponse struct {
	Albums struct {
		Items []struct {
			Images []struct {
				URL string `json:"url"`
			} `json:"images"`
		} `json:"items"`
	} `json:"albums"`
}

// Lookup implements Provider via the search endpoint, taking the largest
// image of the first matching album. Spotify orders images by size,
// largest first.
func (p *SpotifyProvider) Lookup(ctx context.Context, artist, album string) (string, error) {
	params := url.Values{}
	params.Set("q", fmt.Sprintf("album:%s artist:%s", album, artist))
	params.Set("type", "album")
	params.Set("limit", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"/search?"+params.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("spotify: %w", err)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("spotify: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("spotify: status %d", resp.StatusCode)
	}

	var search spotifySearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&search); err != nil {
		return "", fmt.Errorf("spotify: %w", err)
	}

	if len(search.Albums.Items) == 0 || len(search.Albums.Items[0].Images) == 0 {
		return "", ErrNotFound
	}

	return search.Albums.Items[0].Images[0].URL, nil
}
