package moviesearch

import "github.com/kailas-cloud/moviesearch/internal/domain"

// Sentinel errors re-exported from the domain layer.
// Use errors.Is() to check.
var (
	ErrEmptyQuery          = domain.ErrEmptyQuery
	ErrUpstreamStatus      = domain.ErrUpstreamStatus
	ErrUpstreamUnavailable = domain.ErrUpstreamUnavailable
)
