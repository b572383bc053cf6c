package search

import (
	"context"

	"github.com/kailas-cloud/moviesearch/internal/domain/movie"
)

// MovieSearcher queries the remote title search API.
type MovieSearcher interface {
	Search(ctx context.Context, query string) ([]movie.Candidate, error)
}

// PosterValidator probes a candidate's poster. ok=false drops the candidate.
type PosterValidator interface {
	Validate(ctx context.Context, c movie.Candidate) (movie.Candidate, bool)
}
