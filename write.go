package rtf2html

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/growler/go-rtf2html/xhtml"
)

// ErrMissingHandler is matched by every *MissingHandlerError.
var ErrMissingHandler = errors.New("missing handler")

// MissingHandlerError reports a node kind the writer has no rendering for.
type MissingHandlerError struct {
	Kind Kind
}

func (e *MissingHandlerError) Error() string {
	return "rtf2html: missing handler for node kind " + e.Kind.String()
}

func (e *MissingHandlerError) Is(target error) bool {
	return target == ErrMissingHandler
}

var tagNames = [...]struct {
	prop string
	tag  string
}{
	{PropBold, "strong"},
	{PropItalic, "em"},
	{PropUnderline, "u"},
}

var scripts = [...]string{PropSub, PropSuper}

// A configuration for writing XHTML.
type Conf struct {
	Pretty bool         // Surround container output with newlines
	Logger *slog.Logger // Defaults to slog.Default()
}

// Returns a Conf with pretty printing switched on or off.
func (c Conf) WithPretty(pretty bool) Conf {
	c.Pretty = pretty
	return c
}

func (c Conf) WithLogger(l *slog.Logger) Conf {
	c.Logger = l
	return c
}

func (c Conf) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.Default()
}

// Write renders doc as an XHTML fragment to sink and returns the sink. A nil
// sink is replaced by a new *bytes.Buffer. A sink implementing io.Seeker is
// rewound to its start once the document is written; a sink that cannot seek,
// such as a pipe, is returned as is.
//
// Example:
//
//	out, err := rtf2html.Write(doc, nil, true)
//	if err != nil {
//	    ...
//	}
//	io.Copy(os.Stdout, out.(io.Reader))
func Write(doc *Document, sink io.Writer, pretty bool) (io.Writer, error) {
	return Conf{Pretty: pretty}.Write(doc, sink)
}

func (c Conf) Write(doc *Document, sink io.Writer) (io.Writer, error) {
	if sink == nil {
		sink = new(bytes.Buffer)
	}
	root, err := c.Build(doc)
	if err != nil {
		return sink, err
	}
	if err := root.Render(sink); err != nil {
		return sink, fmt.Errorf("write xhtml: %w", err)
	}
	if s, ok := sink.(io.Seeker); ok {
		// Pipes and terminals are seekers that cannot seek.
		if _, err := s.Seek(0, io.SeekStart); err != nil {
			c.logger().Debug("sink not rewound", "err", err)
		}
	}
	return sink, nil
}

// Render returns the XHTML fragment for doc.
func (c Conf) Render(doc *Document) ([]byte, error) {
	var b bytes.Buffer
	if _, err := c.Write(doc, &b); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

// Build returns the tag tree for doc without serializing it. The root tag is
// transparent.
func (c Conf) Build(doc *Document) (*xhtml.Tag, error) {
	w := &writer{pretty: c.Pretty, log: c.logger()}
	root := xhtml.New("")
	if doc == nil {
		return root, nil
	}
	for _, i := range doc.Content {
		nodes, err := w.dispatch(i)
		if err != nil {
			return nil, err
		}
		root.Append(nodes...)
	}
	w.log.Debug("built tag tree", "items", len(doc.Content), "texts", w.texts, "pretty", w.pretty)
	return root, nil
}

type writer struct {
	pretty bool
	log    *slog.Logger
	texts  int
}

func (w *writer) dispatch(i Item) ([]xhtml.Node, error) {
	if e, ok := i.(Element); ok && isNil(e) {
		return nil, &MissingHandlerError{Kind: e.Kind()}
	}
	switch i := i.(type) {
	case *Container:
		return w.container(i)
	case *Paragraph:
		return w.paragraph(i)
	case *Html:
		return w.html(i), nil
	case *Text:
		return w.text(i), nil
	case Fragment:
		return []xhtml.Node{xhtml.Text(i)}, nil
	}
	return nil, &MissingHandlerError{Kind: KindOf(i)}
}

func (w *writer) children(items []Item) (*xhtml.Tag, error) {
	tag := xhtml.New("")
	for _, i := range items {
		nodes, err := w.dispatch(i)
		if err != nil {
			return nil, err
		}
		tag.Append(nodes...)
	}
	return tag, nil
}

func (w *writer) wrap(tag *xhtml.Tag) []xhtml.Node {
	if w.pretty {
		return []xhtml.Node{xhtml.Break, tag, xhtml.Break}
	}
	return []xhtml.Node{tag}
}

func (w *writer) container(c *Container) ([]xhtml.Node, error) {
	tag, err := w.children(c.Content)
	if err != nil {
		return nil, err
	}
	return w.wrap(tag), nil
}

func (w *writer) paragraph(p *Paragraph) ([]xhtml.Node, error) {
	tag, err := w.children(p.Content)
	if err != nil {
		return nil, err
	}
	tag.Name = "p"
	return w.wrap(tag), nil
}

func (w *writer) html(h *Html) []xhtml.Node {
	tag := xhtml.New(xhtml.RawName)
	for _, i := range h.Content {
		switch i := i.(type) {
		case Fragment:
			tag.Append(xhtml.Text(i))
		case Element:
			tag.Append(xhtml.Text(PlainText([]Item{i})))
		}
	}
	return []xhtml.Node{tag}
}

func (w *writer) text(t *Text) []xhtml.Node {
	w.texts++
	tag := xhtml.New("")
	if t.Props.Has(PropURL) {
		tag.Name = "a"
		tag.SetAttr("href", propString(t.Props.Get(PropURL)))
	}
	current := tag
	for _, n := range tagNames {
		if t.Props.Has(n.prop) {
			inner := xhtml.New(n.tag)
			current.Append(inner)
			current = inner
		}
	}
	if t.Props.Has(PropSub) && t.Props.Has(PropSuper) {
		w.log.Warn("conflicting vertical alignment, the last one applied wins",
			"props", scripts[:], "applied", PropSuper)
	}
	for _, prop := range scripts {
		if !t.Props.Has(prop) {
			continue
		}
		if current.Name == "" {
			inner := xhtml.New("span")
			current.Append(inner)
			current = inner
		}
		current.SetAttr("style", "vertical-align: "+prop+"; font-size: smaller")
	}
	current.Append(xhtml.Text(PlainText(t.Content)))
	return []xhtml.Node{tag}
}

func propString(v any) string {
	switch v := v.(type) {
	case string:
		return v
	case nil:
		return ""
	case fmt.Stringer:
		return v.String()
	}
	return fmt.Sprint(v)
}
