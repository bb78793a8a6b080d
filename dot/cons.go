// Package dot provides terse constructors for building document trees.
//
//	doc := dot.Doc(
//	    dot.Container(
//	        dot.Text("Hello, "),
//	        dot.Text("world", dot.Bold, dot.Link("https://example.com")),
//	    ),
//	)
package dot

import "github.com/growler/go-rtf2html"

// Property key-value pair.
type Prop struct {
	Key   string
	Value any
}

var (
	Bold      = Prop{rtf2html.PropBold, true}
	Italic    = Prop{rtf2html.PropItalic, true}
	Underline = Prop{rtf2html.PropUnderline, true}
	Sub       = Prop{rtf2html.PropSub, true}
	Super     = Prop{rtf2html.PropSuper, true}
)

// Hyperlink target
func Link(url string) Prop {
	return Prop{rtf2html.PropURL, url}
}

func props(p []Prop) rtf2html.Properties {
	if len(p) == 0 {
		return nil
	}
	m := make(rtf2html.Properties, len(p))
	for _, kv := range p {
		m[kv.Key] = kv.Value
	}
	return m
}

func Doc(i ...rtf2html.Item) *rtf2html.Document {
	return rtf2html.NewDocument(i...)
}

// Text fragment
func Str(s string) rtf2html.Item {
	return rtf2html.Fragment(s)
}

// Text run with formatting properties
func Text(s string, p ...Prop) *rtf2html.Text {
	return rtf2html.NewText(props(p), rtf2html.Fragment(s))
}

// Text run made of several fragments
func Texts(s []string, p ...Prop) *rtf2html.Text {
	t := rtf2html.NewText(props(p))
	for _, f := range s {
		t.Append(rtf2html.Fragment(f))
	}
	return t
}

// Grouping of items
func Container(i ...rtf2html.Item) *rtf2html.Container {
	return rtf2html.NewContainer(nil, i...)
}

// Paragraph of items
func Para(i ...rtf2html.Item) *rtf2html.Paragraph {
	return rtf2html.NewParagraph(nil, i...)
}

// Raw markup
func Html(markup ...string) *rtf2html.Html {
	h := rtf2html.NewHtml(nil)
	for _, m := range markup {
		h.Append(rtf2html.Fragment(m))
	}
	return h
}

// Image with properties
func Image(p ...Prop) *rtf2html.Image {
	return rtf2html.NewImage(props(p))
}
