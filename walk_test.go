package rtf2html_test

import (
	"strings"
	"testing"

	"github.com/growler/go-rtf2html"
	"github.com/growler/go-rtf2html/dot"
)

func testDoc() *rtf2html.Document {
	return dot.Doc(
		dot.Container(
			dot.Text("Head", dot.Bold),
			dot.Html("<hr />"),
		),
		dot.Para(
			dot.Text("one"),
			dot.Container(dot.Text("two"), dot.Html("<br/>")),
		),
		dot.Text("three", dot.Link("https://x")),
	)
}

func TestQuery(t *testing.T) {
	var items []string
	rtf2html.Query(testDoc(), func(e *rtf2html.Text) rtf2html.WalkResult {
		items = append(items, rtf2html.PlainText(e.Items()))
		return rtf2html.WalkContinue
	})
	const expected = "Head,one,two,three"
	if result := strings.Join(items, ","); result != expected {
		t.Errorf("Expected %q, got %q", expected, result)
	}
}

func TestQuerySkipAndStop(t *testing.T) {
	var texts int
	rtf2html.Query(testDoc(), func(i rtf2html.Item) rtf2html.WalkResult {
		switch i.(type) {
		case *rtf2html.Paragraph:
			return rtf2html.WalkSkip
		case *rtf2html.Text:
			texts++
		}
		return rtf2html.WalkContinue
	})
	if texts != 2 {
		t.Errorf("expected 2 texts outside the paragraph, got %d", texts)
	}

	var visited int
	rtf2html.Query(testDoc(), func(*rtf2html.Html) rtf2html.WalkResult {
		visited++
		return rtf2html.WalkStop
	})
	if visited != 1 {
		t.Errorf("expected the walk to stop after the first match, got %d", visited)
	}
}

func TestQueryElement(t *testing.T) {
	var fragments []string
	rtf2html.Query(dot.Container(dot.Str("a"), dot.Text("b")), func(f rtf2html.Fragment) rtf2html.WalkResult {
		fragments = append(fragments, string(f))
		return rtf2html.WalkContinue
	})
	if got := strings.Join(fragments, ""); got != "ab" {
		t.Errorf("expected %q, got %q", "ab", got)
	}
}

func TestFilterRemove(t *testing.T) {
	doc := testDoc()
	filtered := rtf2html.Filter(doc, func(*rtf2html.Html) ([]rtf2html.Item, rtf2html.WalkResult) {
		return nil, rtf2html.WalkReplace
	})

	var before, after int
	count := func(n *int) func(*rtf2html.Html) rtf2html.WalkResult {
		return func(*rtf2html.Html) rtf2html.WalkResult {
			*n++
			return rtf2html.WalkContinue
		}
	}
	rtf2html.Query(doc, count(&before))
	rtf2html.Query(filtered, count(&after))
	if before != 2 || after != 0 {
		t.Errorf("expected 2 Html nodes before and 0 after, got %d and %d", before, after)
	}

	out, err := quietConf().Render(filtered)
	if err != nil {
		t.Fatal(err)
	}
	if want := `<strong>Head</strong><p>onetwo</p><a href="https://x">three</a>`; string(out) != want {
		t.Errorf("expected %q, got %q", want, out)
	}
}

func TestFilterReplace(t *testing.T) {
	doc := testDoc()
	filtered := rtf2html.Filter(doc, func(i *rtf2html.Image) ([]rtf2html.Item, rtf2html.WalkResult) {
		return nil, rtf2html.WalkReplace
	})
	if filtered != doc {
		t.Errorf("expected an unchanged document to be returned as is")
	}

	filtered = rtf2html.Filter(dot.Doc(dot.Container(dot.Image(), dot.Text("x"))),
		func(*rtf2html.Image) ([]rtf2html.Item, rtf2html.WalkResult) {
			return []rtf2html.Item{dot.Text("[image]", dot.Italic)}, rtf2html.WalkReplace
		})
	out, err := quietConf().Render(filtered)
	if err != nil {
		t.Fatal(err)
	}
	if want := "<em>[image]</em>x"; string(out) != want {
		t.Errorf("expected %q, got %q", want, out)
	}
}

func TestFilterStop(t *testing.T) {
	doc := dot.Doc(dot.Html("a"), dot.Html("b"), dot.Text("c"))
	filtered := rtf2html.Filter(doc, func(h *rtf2html.Html) ([]rtf2html.Item, rtf2html.WalkResult) {
		if rtf2html.PlainText(h.Items()) == "a" {
			return nil, rtf2html.WalkReplace
		}
		return nil, rtf2html.WalkStop
	})
	out, err := quietConf().Render(filtered)
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != "bc" {
		t.Errorf("expected %q, got %q", "bc", out)
	}
	if len(doc.Content) != 3 {
		t.Errorf("expected the input document to be left alone")
	}
}

func TestQueryNil(t *testing.T) {
	var visited int
	count := func(rtf2html.Item) rtf2html.WalkResult {
		visited++
		return rtf2html.WalkContinue
	}
	rtf2html.Query((*rtf2html.Document)(nil), count)
	rtf2html.Query((*rtf2html.Container)(nil), count)
	rtf2html.Query(nil, count)
	if visited != 0 {
		t.Errorf("expected nothing to be visited, got %d", visited)
	}

	rtf2html.Query(dot.Doc(dot.Container((*rtf2html.Text)(nil), dot.Str("a"))), count)
	if visited != 3 {
		t.Errorf("expected 3 items, got %d", visited)
	}
}

func TestFilterNilChild(t *testing.T) {
	doc := dot.Doc(dot.Container((*rtf2html.Text)(nil), dot.Html("x")))
	filtered := rtf2html.Filter(doc, func(*rtf2html.Html) ([]rtf2html.Item, rtf2html.WalkResult) {
		return nil, rtf2html.WalkReplace
	})
	c, ok := filtered.Content[0].(*rtf2html.Container)
	if !ok || len(c.Items()) != 1 {
		t.Fatalf("expected a container holding the nil text, got %#v", filtered.Content[0])
	}
}
