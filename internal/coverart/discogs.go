package coverart

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const defaultDiscogsBaseURL = "https://api.discogs.com"

// DiscogsProvider queries the Discogs database search API.
type DiscogsProvider struct {
	httpClient *http.Client
	baseURL    string
	token      string
	useragent  string
}

// NewDiscogsProvider constructs a Discogs provider. Discogs requires a
// personal access token and a descriptive User-Agent.
func NewDiscogsProvider(httpClient *http.Client, baseURL, token, useragent string) *DiscogsProvider {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	if baseURL == "" {
		baseURL = defaultDiscogsBaseURL
	}
	return &DiscogsProvider{
		httpClient: httpClient,
		baseURL:    baseURL,
		token:      token,
		useragent:  useragent,
	}
}

// Name implements Provider.
func (p *DiscogsProvider) Name() string { return "discogs" }

type discogsSearchResponse struct {
	Results []struct {
		CoverImage string `json:"cover_image"`
	} `json:"results"`
}

// Lookup implements Provider.
func (p *DiscogsProvider) Lookup(ctx context.Context, artist, album string) (string, error) {
	params := url.Values{}
	params.Set("artist", artist)
	params.Set("release_title", album)
	params.Set("type", "release")
	params.Set("per_page", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		p.baseURL+"/database/search?"+params.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("discogs: %w", err)
	}
	req.Header.Set("User-Agent", p.useragent)
	req.Header.Set("Authorization", "Discogs token="+p.token)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("discogs: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("discogs: status %d", resp.StatusCode)
	}

	var search discogsSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&search); err != nil {
		return "", fmt.Errorf("discogs: %w", err)
	}

	if len(search.Results) == 0 || search.Results[0].CoverImage == "" {
		return "", ErrNotFound
	}

	return search.Results[0].CoverImage, nil
}
