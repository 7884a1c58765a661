package coverart

import (
	"context"
	"errors"
	"log/slog"
)

// ErrNotFound is returned by a Provider when its catalog simply has no
// cover for the album. It is an expected outcome, not a failure.
var ErrNotFound = errors.New("cover art not found")

// Provider looks up cover art at one external service.
type Provider interface {
	// Name identifies the provider in logs and results.
	Name() string

	// Lookup returns the cover URL for the album, ErrNotFound when the
	// service has none, or another error on transport problems.
	Lookup(ctx context.Context, artist, album string) (string, error)
}

// Result is the outcome of one resolution across the provider chain.
type Result struct {
	// URL is the resolved cover URL; empty when Found is false.
	URL string

	// Provider names the provider that produced the hit; empty on a miss.
	Provider string

	// Found reports whether any provider returned a cover.
	Found bool
}

// Resolver queries providers in their configured priority order. A
// provider is tried exactly once per Resolve call; both a clean miss and
// an error fall through to the next provider, errors additionally being
// logged with the provider's identity.
type Resolver struct {
	providers []Provider
	logger    *slog.Logger
}

// NewResolver creates a Resolver over the given chain. Order matters:
// earlier providers win.
func NewResolver(logger *slog.Logger, providers ...Provider) (*Resolver, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	return &Resolver{
		providers: providers,
		logger:    logger,
	}, nil
}

// Resolve walks the chain and returns the first hit. When every provider
// misses or errors, the result carries Found=false and the caller is
// expected to record the album in the missing-covers log.
func (r *Resolver) Resolve(ctx context.Context, artist, album string) Result {
	logger := r.logger.With("artist", artist, "album", album)

	for _, p := range r.providers {
		url, err := p.Lookup(ctx, artist, album)
		switch {
		case err == nil:
			logger.Info("cover art resolved", "provider", p.Name())
			return Result{URL: url, Provider: p.Name(), Found: true}
		case errors.Is(err, ErrNotFound):
			logger.Debug("provider has no cover", "provider", p.Name())
		default:
			logger.Warn("cover art lookup failed",
				"provider", p.Name(),
				"error", err)
		}
	}

	logger.Info("no cover art found")
	return Result{}
}
