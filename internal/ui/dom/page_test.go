package dom

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"

	"github.com/kailas-cloud/moviesearch/internal/domain/movie"
	"github.com/kailas-cloud/moviesearch/internal/usecase/page"
)

var _ page.UI = (*Page)(nil)

func mustPage(t *testing.T, query string) *Page {
	t.Helper()
	p, err := NewPage(query)
	if err != nil {
		t.Fatalf("NewPage: %v", err)
	}
	return p
}

// reparse serializes the page and parses it again, so assertions run on what a browser receives.
func reparse(t *testing.T, p *Page) *goquery.Document {
	t.Helper()
	out, err := p.HTML()
	if err != nil {
		t.Fatalf("HTML: %v", err)
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(out))
	if err != nil {
		t.Fatalf("reparse: %v", err)
	}
	return doc
}

func TestNewPage_ShellStructure(t *testing.T) {
	doc := reparse(t, mustPage(t, ""))

	for _, id := range []string{QueryInputID, TriggerID, ResultsID} {
		if doc.Find("#"+id).Length() != 1 {
			t.Errorf("expected exactly one #%s", id)
		}
	}
	if name, _ := doc.Find("#" + QueryInputID).Attr("name"); name != "s" {
		t.Errorf("search field name: got %q, want s", name)
	}
	if doc.Find("#"+ResultsID).Children().Length() != 0 {
		t.Error("results container should start empty")
	}
}

func TestNewPage_QueryText(t *testing.T) {
	tests := []string{"", "batman", "  spaced  ", `quote" <b>`}
	for _, q := range tests {
		if got := mustPage(t, q).QueryText(); got != q {
			t.Errorf("QueryText: got %q, want %q", got, q)
		}
	}
}

func TestParse_RejectsShellWithoutContainer(t *testing.T) {
	if _, err := parse(`<html><body><input id="searchBar"></body></html>`, ""); err == nil {
		t.Fatal("expected error for missing results container")
	}
	if _, err := parse(`<html><body><section id="movieCards"></section></body></html>`, ""); err == nil {
		t.Fatal("expected error for missing search field")
	}
}

func TestClearResults_OnEmptyContainer(t *testing.T) {
	p := mustPage(t, "")
	p.ClearResults()
	p.ClearResults()

	if p.Cards() != 0 || p.EmptyStates() != 0 {
		t.Errorf("expected empty container, got %d cards, %d empty states", p.Cards(), p.EmptyStates())
	}
}

func TestClearResults_RemovesEverything(t *testing.T) {
	p := mustPage(t, "")
	p.RenderCard("A", "https://img.example.com/a.jpg")
	p.RenderCard("B", "https://img.example.com/b.jpg")
	p.RenderEmptyState()

	p.ClearResults()

	if n := reparse(t, p).Find("#" + ResultsID).Contents().Length(); n != 0 {
		t.Errorf("expected no child nodes after clear, got %d", n)
	}
}

func TestRenderCard_Structure(t *testing.T) {
	p := mustPage(t, "batman")
	p.RenderCard("Batman Begins", "https://img.example.com/begins.jpg")

	doc := reparse(t, p)
	cards := doc.Find("#" + ResultsID + " > article." + CardClass)
	if cards.Length() != 1 {
		t.Fatalf("expected 1 card, got %d", cards.Length())
	}

	title := cards.Find("p." + CardTitleClass)
	if title.Text() != "Batman Begins" {
		t.Errorf("title: got %q", title.Text())
	}

	img := cards.Find("div." + PosterDivClass + " > img." + PosterClass)
	if img.Length() != 1 {
		t.Fatal("expected poster image inside poster div")
	}
	if src, _ := img.Attr("src"); src != "https://img.example.com/begins.jpg" {
		t.Errorf("src: got %q", src)
	}
	if alt, _ := img.Attr("alt"); alt != PosterAlt {
		t.Errorf("alt: got %q", alt)
	}
}

func TestRenderCard_EscapesContent(t *testing.T) {
	p := mustPage(t, "")
	p.RenderCard(`<script>alert("x")</script>`, `https://img.example.com/a.jpg" onerror="alert(1)`)

	out, err := p.HTML()
	if err != nil {
		t.Fatalf("HTML: %v", err)
	}
	if strings.Contains(out, "<script>") {
		t.Error("title was not escaped")
	}

	doc := reparse(t, p)
	if _, ok := doc.Find("img." + PosterClass).Attr("onerror"); ok {
		t.Error("poster url broke out of the src attribute")
	}
	if got := doc.Find("p." + CardTitleClass).Text(); got != `<script>alert("x")</script>` {
		t.Errorf("title text: got %q", got)
	}
}

func TestRenderCard_KeepsCallOrder(t *testing.T) {
	p := mustPage(t, "")
	want := []string{"First", "Second", "Third"}
	for _, title := range want {
		p.RenderCard(title, "https://img.example.com/"+title+".jpg")
	}

	var got []string
	reparse(t, p).Find("p." + CardTitleClass).Each(func(_ int, s *goquery.Selection) {
		got = append(got, s.Text())
	})
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("order: got %v, want %v", got, want)
	}
}

func TestRenderEmptyState(t *testing.T) {
	p := mustPage(t, "zzzznomatch")
	p.RenderEmptyState()

	doc := reparse(t, p)
	empty := doc.Find("#" + ResultsID + " > p." + EmptyClass)
	if empty.Length() != 1 {
		t.Fatalf("expected 1 empty-state node, got %d", empty.Length())
	}
	if empty.Text() != movie.EmptyStateMessage {
		t.Errorf("message: got %q", empty.Text())
	}
	if doc.Find("article."+CardClass).Length() != 0 {
		t.Error("empty state must not coexist with cards")
	}
}

func TestCounters(t *testing.T) {
	p := mustPage(t, "")
	p.RenderCard("A", "a")
	p.RenderCard("B", "b")
	if p.Cards() != 2 || p.EmptyStates() != 0 {
		t.Errorf("got %d cards, %d empty states", p.Cards(), p.EmptyStates())
	}

	p.ClearResults()
	p.RenderEmptyState()
	if p.Cards() != 0 || p.EmptyStates() != 1 {
		t.Errorf("got %d cards, %d empty states", p.Cards(), p.EmptyStates())
	}
}
