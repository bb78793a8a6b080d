// Package xhtml implements the tag tree the rtf2html writer builds before
// serializing, together with its escaping rules.
package xhtml

import (
	"io"
	"strings"
)

// RawName is the name of a tag whose content is written without escaping and
// without any surrounding markup.
const RawName = "html"

// Node is a Tag content item: *Tag, Text or Break.
type Node interface {
	node()
}

// Literal text, escaped on output.
type Text string

func (Text) node() {}

type breakMarker struct{}

func (breakMarker) node()          {}
func (breakMarker) String() string { return "PrettyBreak" }

// Break is the pretty-break marker; it renders as a single newline.
var Break Node = breakMarker{}

// Attribute name-value pair.
type Attr struct {
	Name  string
	Value string
}

// Tag is a tag tree node. A tag with an empty name is transparent: only its
// content is rendered.
type Tag struct {
	Name    string
	Attrs   []Attr
	Content []Node
}

func New(name string, content ...Node) *Tag {
	return &Tag{Name: name, Content: content}
}

func (t *Tag) node() {}

// Returns the attribute value or false if the attribute is not set.
func (t *Tag) Attr(name string) (string, bool) {
	for _, a := range t.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// Sets an attribute. An existing value is replaced in place, keeping the
// attribute order.
func (t *Tag) SetAttr(name, value string) {
	for i := range t.Attrs {
		if t.Attrs[i].Name == name {
			t.Attrs[i].Value = value
			return
		}
	}
	t.Attrs = append(t.Attrs, Attr{name, value})
}

func (t *Tag) Append(n ...Node) {
	t.Content = append(t.Content, n...)
}

// Render serializes the tag and its content to w.
func (t *Tag) Render(w io.Writer) error {
	if t.Name == RawName {
		for _, c := range t.Content {
			if _, err := io.WriteString(w, raw(c)); err != nil {
				return err
			}
		}
		return nil
	}
	if t.Name != "" {
		if _, err := io.WriteString(w, t.open()); err != nil {
			return err
		}
	}
	for _, c := range t.Content {
		switch c := c.(type) {
		case *Tag:
			if err := c.Render(w); err != nil {
				return err
			}
		case breakMarker:
			if _, err := w.Write([]byte{'\n'}); err != nil {
				return err
			}
		case Text:
			if _, err := io.WriteString(w, breakLines(EscapeText(string(c)))); err != nil {
				return err
			}
		}
	}
	if t.Name != "" {
		if _, err := io.WriteString(w, "</"+t.Name+">"); err != nil {
			return err
		}
	}
	return nil
}

func (t *Tag) open() string {
	var sb strings.Builder
	sb.WriteByte('<')
	sb.WriteString(t.Name)
	if len(t.Attrs) > 0 {
		sb.WriteByte(' ')
		sb.WriteString(t.attrString())
	}
	sb.WriteByte('>')
	return sb.String()
}

func (t *Tag) attrString() string {
	parts := make([]string, len(t.Attrs))
	for i, a := range t.Attrs {
		parts[i] = a.Name + `="` + EscapeAttr(a.Value) + `"`
	}
	return strings.Join(parts, " ")
}

// String returns a debug representation of the tree, e.g. T(em)["x"].
func (t *Tag) String() string {
	var sb strings.Builder
	t.debug(&sb)
	return sb.String()
}

func (t *Tag) debug(sb *strings.Builder) {
	sb.WriteString("T(")
	if t.Name == "" {
		sb.WriteString("None")
	} else {
		sb.WriteString(t.Name)
	}
	sb.WriteString(")[")
	for i, c := range t.Content {
		if i > 0 {
			sb.WriteString(", ")
		}
		switch c := c.(type) {
		case *Tag:
			c.debug(sb)
		case breakMarker:
			sb.WriteString(c.String())
		case Text:
			sb.WriteByte('"')
			sb.WriteString(string(c))
			sb.WriteByte('"')
		}
	}
	sb.WriteByte(']')
}

func raw(n Node) string {
	switch n := n.(type) {
	case Text:
		return string(n)
	case breakMarker:
		return "\n"
	case *Tag:
		var sb strings.Builder
		_ = n.Render(&sb)
		return sb.String()
	}
	return ""
}

var (
	textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	attrEscaper = strings.NewReplacer(`"`, "&quot;", "'", "&apos;")
	lineBreaker = strings.NewReplacer("\n", "<br />")
)

// EscapeText escapes &, < and > for use in element content.
func EscapeText(s string) string {
	return textEscaper.Replace(s)
}

// EscapeAttr escapes s for use in a double-quoted attribute value.
func EscapeAttr(s string) string {
	return attrEscaper.Replace(EscapeText(s))
}

func breakLines(s string) string {
	return lineBreaker.Replace(s)
}
