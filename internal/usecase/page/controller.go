// Package page drives one search cycle against a UI: read the query, clear the
// previous output, search and render cards or the empty state.
package page

import (
	"context"
	"sync"

	"go.uber.org/zap"

	logpkg "github.com/kailas-cloud/moviesearch/internal/logger"
)

// Controller handles search triggers for a single UI.
type Controller struct {
	ui     UI
	search Searcher

	// mu serializes UI mutations. generation is bumped on every accepted
	// trigger; only the search holding the newest generation renders.
	mu         sync.Mutex
	generation uint64
}

// New creates a controller bound to ui.
func New(ui UI, search Searcher) *Controller {
	return &Controller{ui: ui, search: search}
}

// Trigger runs one search cycle. Empty query text is ignored entirely. Search
// failures are logged and leave the cleared UI empty. If another trigger was
// accepted while this search was running, this search renders nothing.
func (c *Controller) Trigger(ctx context.Context) {
	query := c.ui.QueryText()
	if query == "" {
		return
	}

	c.mu.Lock()
	c.generation++
	gen := c.generation
	c.ui.ClearResults()
	c.mu.Unlock()

	log := logpkg.FromContext(ctx)
	outcome, err := c.search.Search(ctx, query)
	if err != nil {
		log.Error("search failed", zap.String("query", query), zap.Error(err))
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.generation != gen {
		log.Debug("discarding stale search",
			zap.String("query", query),
			zap.Uint64("generation", gen),
			zap.Uint64("latest", c.generation),
		)
		return
	}

	if outcome.Empty() {
		c.ui.RenderEmptyState()
		return
	}
	for _, r := range outcome.Results() {
		c.ui.RenderCard(r.Title(), r.Poster())
	}
}
