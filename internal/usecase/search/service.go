package search

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/semaphore"

	"github.com/kailas-cloud/moviesearch/internal/domain"
	"github.com/kailas-cloud/moviesearch/internal/domain/movie"
	logpkg "github.com/kailas-cloud/moviesearch/internal/logger"
	"github.com/kailas-cloud/moviesearch/internal/metrics"
)

// Service runs a title search and keeps only hits whose poster is reachable.
type Service struct {
	movies    MovieSearcher
	posters   PosterValidator
	maxProbes int64
}

// New creates a search service. Poster probes are unbounded by default.
func New(movies MovieSearcher, posters PosterValidator) *Service {
	return &Service{movies: movies, posters: posters}
}

// WithMaxConcurrentProbes caps in-flight poster probes per search. n <= 0 means unbounded.
func (s *Service) WithMaxConcurrentProbes(n int) *Service {
	if n < 0 {
		n = 0
	}
	s.maxProbes = int64(n)
	return s
}

// Search queries the movie API, probes every candidate poster concurrently and
// waits for all probes to settle. Results keep the API order and carry
// truncated titles. A failed probe drops only its own candidate.
func (s *Service) Search(ctx context.Context, query string) (movie.Outcome, error) {
	if query == "" {
		return movie.Outcome{}, domain.ErrEmptyQuery
	}

	ctx, log := logpkg.With(ctx, zap.String("search_id", uuid.NewString()))

	candidates, err := s.movies.Search(ctx, query)
	if err != nil {
		return movie.Outcome{}, fmt.Errorf("search omdb: %w", err)
	}
	metrics.SearchResultsTotal.WithLabelValues("candidate").Add(float64(len(candidates)))

	if len(candidates) == 0 {
		log.Info("search completed", zap.String("query", query), zap.Int("candidates", 0))
		return movie.NewOutcome(nil), nil
	}

	validated := s.validateAll(ctx, candidates)

	results := make([]movie.Result, 0, len(candidates))
	for _, v := range validated {
		if v.ok {
			results = append(results, movie.NewResult(v.candidate))
		}
	}
	metrics.SearchResultsTotal.WithLabelValues("validated").Add(float64(len(results)))

	log.Info("search completed",
		zap.String("query", query),
		zap.Int("candidates", len(candidates)),
		zap.Int("validated", len(results)),
	)
	return movie.NewOutcome(results), nil
}

type probeOutcome struct {
	candidate movie.Candidate
	ok        bool
}

// validateAll fans out one probe per candidate and joins on all of them.
// Each goroutine writes only its own slot, so order follows the input.
func (s *Service) validateAll(ctx context.Context, candidates []movie.Candidate) []probeOutcome {
	out := make([]probeOutcome, len(candidates))

	var sem *semaphore.Weighted
	if s.maxProbes > 0 {
		sem = semaphore.NewWeighted(s.maxProbes)
	}

	var wg sync.WaitGroup
	for i, c := range candidates {
		wg.Add(1)
		go func(i int, c movie.Candidate) {
			defer wg.Done()
			defer func() {
				if rvr := recover(); rvr != nil {
					logpkg.FromContext(ctx).Error("poster probe panicked",
						zap.String("title", c.Title),
						zap.Any("panic", rvr),
						zap.Stack("stacktrace"),
					)
				}
			}()

			if sem != nil {
				if err := sem.Acquire(ctx, 1); err != nil {
					return
				}
				defer sem.Release(1)
			}

			v, ok := s.posters.Validate(ctx, c)
			out[i] = probeOutcome{candidate: v, ok: ok}
		}(i, c)
	}
	wg.Wait()

	return out
}
