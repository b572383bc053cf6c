// Package movie holds the movie search value types: candidates returned by
// the search API, validated results and the outcome of one search.
package movie

import "unicode/utf8"

const (
	// MaxTitleLen is the number of characters a rendered title keeps before truncation.
	MaxTitleLen = 40
	// TitleEllipsis is appended to truncated titles.
	TitleEllipsis = "..."
	// EmptyStateMessage is shown when a search has no validated results.
	EmptyStateMessage = "No movie found!!! Please search for another title."
	// PosterUnavailable is the literal the search API uses for a missing poster.
	PosterUnavailable = "N/A"
)

// Candidate is a search hit before its poster has been checked.
type Candidate struct {
	Title  string
	Year   string
	IMDbID string
	Type   string
	Poster string
}

// Result is a candidate whose poster answered a probe successfully.
type Result struct {
	title  string
	year   string
	imdbID string
	poster string
}

// NewResult creates a result from a validated candidate, truncating its title.
func NewResult(c Candidate) Result {
	return Result{
		title:  TruncateTitle(c.Title),
		year:   c.Year,
		imdbID: c.IMDbID,
		poster: c.Poster,
	}
}

// Title returns the display title, already truncated.
func (r Result) Title() string { return r.title }

// Year returns the release year as reported by the search API.
func (r Result) Year() string { return r.year }

// IMDbID returns the IMDb identifier.
func (r Result) IMDbID() string { return r.imdbID }

// Poster returns the poster URL.
func (r Result) Poster() string { return r.poster }

// Outcome is the product of one search: validated results in API order.
type Outcome struct {
	results []Result
}

// NewOutcome creates an outcome. A nil or empty slice is the empty state.
func NewOutcome(results []Result) Outcome {
	return Outcome{results: results}
}

// Results returns the validated results in the order the search API returned them.
func (o Outcome) Results() []Result { return o.results }

// Len returns the number of validated results.
func (o Outcome) Len() int { return len(o.results) }

// Empty reports whether the empty state should be rendered.
func (o Outcome) Empty() bool { return len(o.results) == 0 }

// TruncateTitle keeps titles up to MaxTitleLen characters and cuts longer
// ones to the first MaxTitleLen characters followed by TitleEllipsis.
// Characters are runes, so multi-byte titles are never split mid-character.
func TruncateTitle(title string) string {
	if utf8.RuneCountInString(title) <= MaxTitleLen {
		return title
	}
	runes := []rune(title)
	return string(runes[:MaxTitleLen]) + TitleEllipsis
}
