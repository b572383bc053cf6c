package moviesearch

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/moviesearch/internal/domain/movie"
	logpkg "github.com/kailas-cloud/moviesearch/internal/logger"
	"github.com/kailas-cloud/moviesearch/internal/transport/httpclient"
	"github.com/kailas-cloud/moviesearch/internal/transport/omdb"
	"github.com/kailas-cloud/moviesearch/internal/transport/poster"
	healthuc "github.com/kailas-cloud/moviesearch/internal/usecase/health"
	searchuc "github.com/kailas-cloud/moviesearch/internal/usecase/search"
)

// Внутренние интерфейсы для подмены в тестах.
type searchUseCase interface {
	Search(ctx context.Context, query string) (movie.Outcome, error)
}

// Client is the moviesearch SDK entry point.
type Client struct {
	searchSvc searchUseCase
	healthSvc healthUseCase
	logger    *zap.Logger
	obs       *observer
}

// New creates a Client. An OMDb API key is required.
func New(opts ...Option) (*Client, error) {
	cfg := &clientConfig{}
	for _, o := range opts {
		o.apply(cfg)
	}

	if cfg.apiKey == "" {
		return nil, errors.New("moviesearch: OMDb API key required (use WithAPIKey)")
	}
	if cfg.maxConcurrentProbes < 0 {
		return nil, fmt.Errorf("moviesearch: max concurrent probes must be >= 0, got %d", cfg.maxConcurrentProbes)
	}

	obs, err := newObserver(cfg.logger, cfg.metricsReg)
	if err != nil {
		return nil, err
	}
	return wireClient(cfg, obs), nil
}

func wireClient(cfg *clientConfig, obs *observer) *Client {
	omdbHTTP, posterHTTP := cfg.httpClient, cfg.httpClient
	if omdbHTTP == nil {
		omdbHTTP = httpclient.New(cfg.omdbTimeout)
		posterHTTP = httpclient.New(cfg.posterTimeout)
	}

	omdbClient := omdb.NewClient(&omdb.Config{
		APIKey:     cfg.apiKey,
		BaseURL:    cfg.baseURL,
		HTTPClient: omdbHTTP,
	})
	prober := poster.NewProber(&poster.Config{HTTPClient: posterHTTP})

	return &Client{
		searchSvc: searchuc.New(omdbClient, prober).WithMaxConcurrentProbes(cfg.maxConcurrentProbes),
		healthSvc: healthuc.New(omdbClient),
		logger:    cfg.logger,
		obs:       obs,
	}
}

// Search looks up query on OMDb and returns the hits with a reachable poster,
// in OMDb order. Unreachable posters are dropped silently.
func (c *Client) Search(ctx context.Context, query string) (movies []Movie, err error) {
	start := time.Now()
	defer func() { c.obs.observe("search", start, err) }()

	if c.logger != nil {
		ctx = logpkg.ContextWithLogger(ctx, c.logger)
	}

	out, err := c.searchSvc.Search(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("search %q: %w", query, err)
	}

	movies = make([]Movie, 0, out.Len())
	for _, r := range out.Results() {
		movies = append(movies, Movie{
			Title:  r.Title(),
			Year:   r.Year(),
			IMDbID: r.IMDbID(),
			Poster: r.Poster(),
		})
	}
	return movies, nil
}
