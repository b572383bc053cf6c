package page

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/kailas-cloud/moviesearch/internal/domain"
	"github.com/kailas-cloud/moviesearch/internal/domain/movie"
)

// --- Mocks ---

// recordingUI logs every port call in order.
type recordingUI struct {
	mu    sync.Mutex
	query string
	calls []string
}

func (u *recordingUI) QueryText() string { return u.query }

func (u *recordingUI) ClearResults() { u.record("clear") }

func (u *recordingUI) RenderEmptyState() { u.record("empty") }

func (u *recordingUI) RenderCard(title, posterURL string) {
	u.record("card:" + title + "|" + posterURL)
}

func (u *recordingUI) record(call string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.calls = append(u.calls, call)
}

func (u *recordingUI) snapshot() []string {
	u.mu.Lock()
	defer u.mu.Unlock()
	return append([]string(nil), u.calls...)
}

type mockSearcher struct {
	outcome movie.Outcome
	err     error
	calls   int
	queries []string
}

func (m *mockSearcher) Search(_ context.Context, query string) (movie.Outcome, error) {
	m.calls++
	m.queries = append(m.queries, query)
	return m.outcome, m.err
}

func outcomeOf(cs ...movie.Candidate) movie.Outcome {
	rs := make([]movie.Result, len(cs))
	for i, c := range cs {
		rs[i] = movie.NewResult(c)
	}
	return movie.NewOutcome(rs)
}

// --- Tests ---

func TestTrigger_EmptyQueryDoesNothing(t *testing.T) {
	ui := &recordingUI{query: ""}
	search := &mockSearcher{}

	New(ui, search).Trigger(context.Background())

	if calls := ui.snapshot(); len(calls) != 0 {
		t.Errorf("expected no UI calls, got %v", calls)
	}
	if search.calls != 0 {
		t.Errorf("expected no search, got %d", search.calls)
	}
}

func TestTrigger_WhitespaceQueryIsSearchedRaw(t *testing.T) {
	ui := &recordingUI{query: "   "}
	search := &mockSearcher{}

	New(ui, search).Trigger(context.Background())

	if search.calls != 1 || search.queries[0] != "   " {
		t.Errorf("expected one raw search, got %v", search.queries)
	}
}

func TestTrigger_RendersCardsInOrder(t *testing.T) {
	ui := &recordingUI{query: "batman"}
	search := &mockSearcher{outcome: outcomeOf(
		movie.Candidate{Title: "Batman Begins", Poster: "p1"},
		movie.Candidate{Title: "The Batman", Poster: "p3"},
		movie.Candidate{Title: strings.Repeat("B", 45), Poster: "p4"},
	)}

	New(ui, search).Trigger(context.Background())

	want := []string{
		"clear",
		"card:Batman Begins|p1",
		"card:The Batman|p3",
		"card:" + strings.Repeat("B", 40) + "...|p4",
	}
	if got := ui.snapshot(); !cmp.Equal(want, got) {
		t.Error(cmp.Diff(want, got))
	}
}

func TestTrigger_EmptyOutcomeRendersEmptyState(t *testing.T) {
	ui := &recordingUI{query: "zzzznomatch"}

	New(ui, &mockSearcher{outcome: movie.NewOutcome(nil)}).Trigger(context.Background())

	want := []string{"clear", "empty"}
	if got := ui.snapshot(); !cmp.Equal(want, got) {
		t.Error(cmp.Diff(want, got))
	}
}

func TestTrigger_SearchErrorLeavesUICleared(t *testing.T) {
	ui := &recordingUI{query: "batman"}
	search := &mockSearcher{err: errors.Join(domain.ErrUpstreamUnavailable, errors.New("dial tcp"))}

	New(ui, search).Trigger(context.Background())

	want := []string{"clear"}
	if got := ui.snapshot(); !cmp.Equal(want, got) {
		t.Error(cmp.Diff(want, got))
	}
}

// blockingSearcher holds the first search until released, answering later ones immediately.
type blockingSearcher struct {
	started chan struct{}
	release chan struct{}
	mu      sync.Mutex
	n       int
	first   movie.Outcome
	later   movie.Outcome
}

func (b *blockingSearcher) Search(_ context.Context, _ string) (movie.Outcome, error) {
	b.mu.Lock()
	b.n++
	n := b.n
	b.mu.Unlock()

	if n == 1 {
		close(b.started)
		<-b.release
		return b.first, nil
	}
	return b.later, nil
}

func TestTrigger_StaleSearchDoesNotRender(t *testing.T) {
	ui := &recordingUI{query: "old"}
	search := &blockingSearcher{
		started: make(chan struct{}),
		release: make(chan struct{}),
		first:   outcomeOf(movie.Candidate{Title: "Old", Poster: "old"}),
		later:   outcomeOf(movie.Candidate{Title: "New", Poster: "new"}),
	}
	c := New(ui, search)

	done := make(chan struct{})
	go func() {
		c.Trigger(context.Background())
		close(done)
	}()
	<-search.started

	c.Trigger(context.Background())
	close(search.release)
	<-done

	want := []string{"clear", "clear", "card:New|new"}
	if got := ui.snapshot(); !cmp.Equal(want, got) {
		t.Error(cmp.Diff(want, got))
	}
}
