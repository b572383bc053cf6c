// Package poster checks that poster images are reachable.
package poster

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/moviesearch/internal/domain/movie"
	logpkg "github.com/kailas-cloud/moviesearch/internal/logger"
	"github.com/kailas-cloud/moviesearch/internal/metrics"
	"github.com/kailas-cloud/moviesearch/internal/transport/httpclient"
)

// maxDrain bounds how much of a poster body is read before closing, so small
// images still return their connection to the pool.
const maxDrain = 256 << 10

var errInvalidURL = errors.New("invalid poster url")

// Config holds the prober settings.
type Config struct {
	HTTPClient *http.Client
}

// Prober issues one status-only GET per poster.
type Prober struct {
	client *http.Client
}

// NewProber creates a poster prober. A nil HTTPClient uses httpclient.New defaults.
func NewProber(cfg *Config) *Prober {
	hc := cfg.HTTPClient
	if hc == nil {
		hc = httpclient.New(0)
	}
	return &Prober{client: hc}
}

// Validate returns c unchanged and true if its poster answers with a 2xx status.
// Unsuccessful statuses and faults are logged and reported as false. No retry.
func (p *Prober) Validate(ctx context.Context, c movie.Candidate) (movie.Candidate, bool) {
	log := logpkg.FromContext(ctx).With(
		zap.String("title", c.Title),
		zap.String("poster", c.Poster),
	)

	start := time.Now()
	status, err := p.probe(ctx, c.Poster)
	metrics.PosterProbeDuration.Observe(time.Since(start).Seconds())

	switch {
	case err != nil:
		metrics.PosterProbesTotal.WithLabelValues("error").Inc()
		log.Warn("poster probe failed", zap.Error(err))
		return movie.Candidate{}, false
	case status < 200 || status > 299:
		metrics.PosterProbesTotal.WithLabelValues("bad_status").Inc()
		log.Warn("poster unreachable", zap.Int("status", status))
		return movie.Candidate{}, false
	}

	metrics.PosterProbesTotal.WithLabelValues("ok").Inc()
	return c, true
}

func (p *Prober) probe(ctx context.Context, rawURL string) (int, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", errInvalidURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" || u.Host == "" {
		return 0, fmt.Errorf("%w: %q", errInvalidURL, rawURL)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), http.NoBody)
	if err != nil {
		return 0, fmt.Errorf("build poster request: %w", err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("poster request: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxDrain))

	return resp.StatusCode, nil
}
