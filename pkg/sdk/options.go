package moviesearch

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// Option configures the Client.
type Option interface {
	apply(*clientConfig)
}

// optionFunc adapts a function to the Option interface.
type optionFunc func(*clientConfig)

func (f optionFunc) apply(c *clientConfig) { f(c) }

type clientConfig struct {
	apiKey  string
	baseURL string

	omdbTimeout   time.Duration
	posterTimeout time.Duration
	httpClient    *http.Client

	maxConcurrentProbes int

	logger     *zap.Logger
	metricsReg prometheus.Registerer
}

// WithAPIKey sets the OMDb API key. Required.
func WithAPIKey(key string) Option {
	return optionFunc(func(c *clientConfig) {
		c.apiKey = key
	})
}

// WithBaseURL overrides the OMDb endpoint (default https://www.omdbapi.com).
func WithBaseURL(u string) Option {
	return optionFunc(func(c *clientConfig) {
		c.baseURL = u
	})
}

// WithTimeouts sets the per-request timeouts for OMDb calls and poster probes.
// Zero keeps the default of 10 seconds.
func WithTimeouts(omdb, poster time.Duration) Option {
	return optionFunc(func(c *clientConfig) {
		c.omdbTimeout = omdb
		c.posterTimeout = poster
	})
}

// WithHTTPClient uses hc for both OMDb calls and poster probes.
// Overrides WithTimeouts.
func WithHTTPClient(hc *http.Client) Option {
	return optionFunc(func(c *clientConfig) {
		c.httpClient = hc
	})
}

// WithMaxConcurrentProbes bounds the number of poster probes in flight per search.
// Default: 0 (one probe per result, all at once).
func WithMaxConcurrentProbes(n int) Option {
	return optionFunc(func(c *clientConfig) {
		c.maxConcurrentProbes = n
	})
}

// WithLogger enables structured logging for SDK operations and probe failures.
// Pass nil to disable (default).
func WithLogger(l *zap.Logger) Option {
	return optionFunc(func(c *clientConfig) {
		c.logger = l
	})
}

// WithPrometheus registers SDK metrics (operation counts and durations)
// on the given registerer. Pass nil to disable (default).
func WithPrometheus(reg prometheus.Registerer) Option {
	return optionFunc(func(c *clientConfig) {
		c.metricsReg = reg
	})
}
