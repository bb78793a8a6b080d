// Package rtf2html implements a rich-text document tree, as produced by an RTF
// parser, and a writer turning such a tree into an XHTML fragment.
package rtf2html

// Kind names a document node kind.
type Kind string

func (k Kind) String() string { return string(k) }

const (
	ContainerKind = Kind("Container")
	TextKind      = Kind("Text")
	ImageKind     = Kind("Image")
	HtmlKind      = Kind("Html")
	ParagraphKind = Kind("Paragraph")
	FragmentKind  = Kind("Fragment")
)

// Names of the properties interpreted by the writer.
const (
	PropBold      = "bold"
	PropItalic    = "italic"
	PropUnderline = "underline"
	PropSub       = "sub"
	PropSuper     = "super"
	PropURL       = "url"
)

// Item is a content item: either an Element or a Fragment.
type Item interface {
	item()
}

// Fragment is a literal piece of text.
type Fragment string

func (Fragment) item()            {}
func (f Fragment) String() string { return string(f) }

// Properties maps a property name to its value. Values are usually strings or
// the presence flag true; nothing is validated.
type Properties map[string]any

// Returns the value of the key or nil if the key is not present.
func (p Properties) Get(key string) any {
	return p[key]
}

// Returns true if the key is present, whatever its value.
func (p Properties) Has(key string) bool {
	_, ok := p[key]
	return ok
}

// Returns a copy of the properties.
func (p Properties) Clone() Properties {
	c := make(Properties, len(p))
	for k, v := range p {
		c[k] = v
	}
	return c
}

// Element is a document node. The set of implementations is closed.
type Element interface {
	Item
	Root
	Kind() Kind
	Get(key string) any
	Set(key string, value any)
	Delete(key string)
	Append(items ...Item)
	Properties() Properties
	element()
}

// Root is a node holding content: a *Document or an Element.
type Root interface {
	Items() []Item
	root()
}

// base holds what all node kinds share. Each instance owns its map and slice.
type base struct {
	Props   Properties
	Content []Item
}

func newBase(props Properties, items []Item) base {
	b := base{Props: props.Clone()}
	if len(items) > 0 {
		b.Content = append(make([]Item, 0, len(items)), items...)
	}
	return b
}

// with returns a copy holding items, with its own properties map.
func (b *base) with(items []Item) base {
	return base{Props: b.Props.Clone(), Content: items}
}

func (b *base) Get(key string) any { return b.Props.Get(key) }

func (b *base) Set(key string, value any) {
	if b.Props == nil {
		b.Props = Properties{}
	}
	b.Props[key] = value
}

func (b *base) Delete(key string)      { delete(b.Props, key) }
func (b *base) Append(items ...Item)   { b.Content = append(b.Content, items...) }
func (b *base) Properties() Properties { return b.Props }
func (b *base) Items() []Item          { return b.Content }
func (b *base) item()                  {}
func (b *base) element()               {}
func (b *base) root()                  {}

// A grouping node without markup of its own.
type Container struct{ base }

func NewContainer(props Properties, items ...Item) *Container {
	return &Container{newBase(props, items)}
}

func (c *Container) Kind() Kind { return ContainerKind }

// A run of text sharing one set of formatting properties.
type Text struct{ base }

func NewText(props Properties, items ...Item) *Text {
	return &Text{newBase(props, items)}
}

func (t *Text) Kind() Kind { return TextKind }

// An embedded image. Images are modelled but not rendered.
type Image struct{ base }

func NewImage(props Properties, items ...Item) *Image {
	return &Image{newBase(props, items)}
}

func (i *Image) Kind() Kind { return ImageKind }

// Html is a Text whose content is markup emitted without escaping.
type Html struct{ base }

func NewHtml(props Properties, items ...Item) *Html {
	return &Html{newBase(props, items)}
}

func (h *Html) Kind() Kind { return HtmlKind }

// A paragraph of nested content.
type Paragraph struct{ base }

func NewParagraph(props Properties, items ...Item) *Paragraph {
	return &Paragraph{newBase(props, items)}
}

func (p *Paragraph) Kind() Kind { return ParagraphKind }

// Document is the root of a document tree.
type Document struct {
	Content []Item
}

func NewDocument(items ...Item) *Document {
	d := &Document{}
	d.Append(items...)
	return d
}

func (d *Document) Append(items ...Item) { d.Content = append(d.Content, items...) }
func (d *Document) root()                {}

func (d *Document) Items() []Item {
	if d == nil {
		return nil
	}
	return d.Content
}

// isNil reports whether e holds a nil pointer of one of the node kinds.
func isNil(e Element) bool {
	switch e := e.(type) {
	case *Container:
		return e == nil
	case *Text:
		return e == nil
	case *Image:
		return e == nil
	case *Html:
		return e == nil
	case *Paragraph:
		return e == nil
	}
	return e == nil
}

// KindOf returns the kind of a content item.
func KindOf(i Item) Kind {
	switch i := i.(type) {
	case Element:
		return i.Kind()
	case Fragment:
		return FragmentKind
	}
	return Kind("<nil>")
}

// PlainText concatenates the fragments of the items in reading order,
// descending into nested elements.
func PlainText(items []Item) string {
	var n int
	for _, i := range items {
		if f, ok := i.(Fragment); ok {
			n += len(f)
		}
	}
	buf := make([]byte, 0, n)
	return string(appendPlainText(buf, items))
}

func appendPlainText(buf []byte, items []Item) []byte {
	for _, i := range items {
		switch i := i.(type) {
		case Fragment:
			buf = append(buf, i...)
		case Element:
			if !isNil(i) {
				buf = appendPlainText(buf, i.Items())
			}
		}
	}
	return buf
}

// interface check

var _ Root = (*Document)(nil)

var _ []Element = []Element{
	&Container{},
	&Text{},
	&Image{},
	&Html{},
	&Paragraph{},
}
