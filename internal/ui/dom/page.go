// Package dom renders search results into an HTML document held in memory.
package dom

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/kailas-cloud/moviesearch/internal/domain/movie"
)

// Element ids and class markers used by the page shell and external styling.
const (
	QueryInputID   = "searchBar"
	TriggerID      = "searchIconDiv"
	ResultsID      = "movieCards"
	CardClass      = "card"
	CardTitleClass = "cardTitle"
	PosterDivClass = "cardPosterDiv"
	PosterClass    = "moviePoster"
	EmptyClass     = "noresult"
	PosterAlt      = "Movie poster"
)

//go:embed shell.html
var shell string

// Page is a search page document. It implements page.UI.
// A Page is not safe for concurrent use.
type Page struct {
	doc     *goquery.Document
	input   *goquery.Selection
	results *goquery.Selection
}

// NewPage parses the page shell and fills the search field with query.
func NewPage(query string) (*Page, error) {
	return parse(shell, query)
}

func parse(src, query string) (*Page, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(src))
	if err != nil {
		return nil, fmt.Errorf("parse page shell: %w", err)
	}

	input := doc.Find("#" + QueryInputID)
	if input.Length() != 1 {
		return nil, errors.New("page shell must contain exactly one #" + QueryInputID)
	}
	results := doc.Find("#" + ResultsID)
	if results.Length() != 1 {
		return nil, errors.New("page shell must contain exactly one #" + ResultsID)
	}

	input.SetAttr("value", query)
	return &Page{doc: doc, input: input, results: results}, nil
}

// QueryText returns the raw value of the search field.
func (p *Page) QueryText() string {
	v, _ := p.input.Attr("value")
	return v
}

// ClearResults removes every node from the results container.
func (p *Page) ClearResults() {
	p.results.Empty()
}

// RenderEmptyState appends the no-result message.
func (p *Page) RenderEmptyState() {
	msg := element(atom.P, EmptyClass)
	msg.AppendChild(text(movie.EmptyStateMessage))
	p.results.AppendNodes(msg)
}

// RenderCard appends a card:
//
//	<article class="card">
//	  <p class="cardTitle">title</p>
//	  <div class="cardPosterDiv"><img class="moviePoster" src="..." alt="Movie poster"></div>
//	</article>
func (p *Page) RenderCard(title, posterURL string) {
	card := element(atom.Article, CardClass)

	heading := element(atom.P, CardTitleClass)
	heading.AppendChild(text(title))

	posterDiv := element(atom.Div, PosterDivClass)
	posterDiv.AppendChild(element(atom.Img, PosterClass,
		html.Attribute{Key: "src", Val: posterURL},
		html.Attribute{Key: "alt", Val: PosterAlt},
	))

	card.AppendChild(heading)
	card.AppendChild(posterDiv)
	p.results.AppendNodes(card)
}

// Cards returns the number of rendered cards.
func (p *Page) Cards() int {
	return p.results.ChildrenFiltered("article." + CardClass).Length()
}

// EmptyStates returns the number of rendered empty-state nodes.
func (p *Page) EmptyStates() int {
	return p.results.ChildrenFiltered("p." + EmptyClass).Length()
}

// HTML serializes the whole document.
func (p *Page) HTML() (string, error) {
	out, err := p.doc.Html()
	if err != nil {
		return "", fmt.Errorf("render page: %w", err)
	}
	return out, nil
}

func element(a atom.Atom, class string, attrs ...html.Attribute) *html.Node {
	n := &html.Node{
		Type:     html.ElementNode,
		DataAtom: a,
		Data:     a.String(),
		Attr:     append([]html.Attribute{{Key: "class", Val: class}}, attrs...),
	}
	return n
}

func text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}
