// Package omdb is a client for the OMDb title search endpoint.
package omdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/moviesearch/internal/domain"
	"github.com/kailas-cloud/moviesearch/internal/domain/movie"
	logpkg "github.com/kailas-cloud/moviesearch/internal/logger"
	"github.com/kailas-cloud/moviesearch/internal/metrics"
	"github.com/kailas-cloud/moviesearch/internal/transport/httpclient"
)

// DefaultBaseURL is the public OMDb endpoint.
const DefaultBaseURL = "https://www.omdbapi.com"

// Config holds the OMDb client settings.
type Config struct {
	APIKey     string
	BaseURL    string
	HTTPClient *http.Client
}

// Client queries OMDb for titles.
type Client struct {
	apiKey  string
	baseURL string
	http    *http.Client
}

// NewClient creates an OMDb client. Empty BaseURL and nil HTTPClient fall back to defaults.
func NewClient(cfg *Config) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	hc := cfg.HTTPClient
	if hc == nil {
		hc = httpclient.New(0)
	}
	return &Client{
		apiKey:  cfg.APIKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    hc,
	}
}

// searchResponse mirrors the body of GET /?s=.
type searchResponse struct {
	Search       []searchItem `json:"Search"`
	TotalResults string       `json:"totalResults"`
	Response     string       `json:"Response"`
	Error        string       `json:"Error"`
}

type searchItem struct {
	Title  string `json:"Title"`
	Year   string `json:"Year"`
	IMDbID string `json:"imdbID"`
	Type   string `json:"Type"`
	Poster string `json:"Poster"`
}

// Search returns the candidates OMDb lists for query, in response order.
// A successful response without hits yields an empty slice and no error.
func (c *Client) Search(ctx context.Context, query string) ([]movie.Candidate, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.searchURL(query), http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("build omdb request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		metrics.OMDbRequestsTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("omdb request: %w: %w", domain.ErrUpstreamUnavailable, redactKey(err, c.apiKey))
	}
	defer resp.Body.Close()

	metrics.OMDbRequestDuration.Observe(time.Since(start).Seconds())

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		metrics.OMDbRequestsTotal.WithLabelValues("bad_status").Inc()
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, domain.NewStatusError(resp.StatusCode)
	}

	var body searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		metrics.OMDbRequestsTotal.WithLabelValues("decode_error").Inc()
		return nil, fmt.Errorf("decode omdb response: %w: %w", domain.ErrUpstreamUnavailable, err)
	}
	metrics.OMDbRequestsTotal.WithLabelValues("success").Inc()

	if len(body.Search) == 0 {
		logpkg.FromContext(ctx).Debug("omdb returned no hits",
			zap.String("response", body.Response),
			zap.String("omdb_error", body.Error),
		)
		return []movie.Candidate{}, nil
	}

	candidates := make([]movie.Candidate, len(body.Search))
	for i, item := range body.Search {
		candidates[i] = movie.Candidate{
			Title:  item.Title,
			Year:   item.Year,
			IMDbID: item.IMDbID,
			Type:   item.Type,
			Poster: item.Poster,
		}
	}
	return candidates, nil
}

// HealthCheck verifies the OMDb host answers. It does not spend an API call:
// the base URL is requested without a key and any non-5xx status counts as up.
func (c *Client) HealthCheck(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/", http.NoBody)
	if err != nil {
		return fmt.Errorf("build omdb health request: %w", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("omdb health request: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))

	if resp.StatusCode >= 500 {
		return domain.NewStatusError(resp.StatusCode)
	}
	return nil
}

func (c *Client) searchURL(query string) string {
	params := url.Values{}
	params.Set("apikey", c.apiKey)
	params.Set("s", query)
	return c.baseURL + "/?" + params.Encode()
}

// redactKey strips the API key from transport errors, which embed the request URL.
func redactKey(err error, key string) error {
	if key == "" {
		return err
	}
	var uerr *url.Error
	if !errors.As(err, &uerr) {
		return err
	}
	escaped := url.QueryEscape(key)
	return &url.Error{
		Op:  uerr.Op,
		URL: strings.ReplaceAll(uerr.URL, "apikey="+escaped, "apikey=REDACTED"),
		Err: uerr.Err,
	}
}
