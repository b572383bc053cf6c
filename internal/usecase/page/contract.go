package page

import (
	"context"

	"github.com/kailas-cloud/moviesearch/internal/domain/movie"
)

// UI is the display surface a search renders into.
type UI interface {
	// QueryText returns the raw text of the search field.
	QueryText() string
	// ClearResults removes every rendered card or empty-state node.
	ClearResults()
	// RenderEmptyState appends the "no movie found" message.
	RenderEmptyState()
	// RenderCard appends one result card.
	RenderCard(title, posterURL string)
}

// Searcher produces validated results for a query.
type Searcher interface {
	Search(ctx context.Context, query string) (movie.Outcome, error)
}
