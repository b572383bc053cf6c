package health

import "context"

// UpstreamChecker checks availability of the movie search API.
type UpstreamChecker interface {
	HealthCheck(ctx context.Context) error
}
