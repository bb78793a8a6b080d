package rtf2html

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/goccy/go-yaml"
)

// UnknownKindError reports a node kind in a document file that has no
// counterpart in the document model.
type UnknownKindError struct {
	Kind string
	Path string
}

func (e *UnknownKindError) Error() string {
	return fmt.Sprintf("rtf2html: unknown node kind %q at %s", e.Kind, e.Path)
}

var kindsByName = map[string]func(Properties, ...Item) Element{
	"container": func(p Properties, i ...Item) Element { return NewContainer(p, i...) },
	"text":      func(p Properties, i ...Item) Element { return NewText(p, i...) },
	"image":     func(p Properties, i ...Item) Element { return NewImage(p, i...) },
	"html":      func(p Properties, i ...Item) Element { return NewHtml(p, i...) },
	"paragraph": func(p Properties, i ...Item) Element { return NewParagraph(p, i...) },
}

type docFile struct {
	Content []any `yaml:"content"`
}

// Reads a document tree from a YAML or JSON document file.
//
// The file holds a 'content' list. Each item is either a string, which
// becomes a Fragment, or a mapping:
//
//	content:
//	  - kind: container
//	    content:
//	      - text: "Hello, "
//	      - text: world
//	        props: {bold: true, url: "https://example.com"}
//	      - kind: html
//	        content: ["<hr />"]
//
// 'kind' defaults to text; 'text' is a shorthand for a single fragment of
// content. Syntax errors are reported as the YAML decoder finds them; an
// unterminated flow sequence with no items, such as "content: [", decodes as
// an empty list.
func ReadFrom(r io.Reader) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var f docFile
	if len(bytes.TrimSpace(data)) > 0 {
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("decode document: %w", err)
		}
	}
	items, err := decodeItems(f.Content, "$.content")
	if err != nil {
		return nil, err
	}
	return &Document{Content: items}, nil
}

// Reads a document tree from the named file.
func ReadFile(name string) (*Document, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadFrom(f)
}

func decodeItems(list []any, path string) ([]Item, error) {
	items := make([]Item, 0, len(list))
	for n, v := range list {
		i, err := decodeItem(v, fmt.Sprintf("%s[%d]", path, n))
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, nil
}

func decodeItem(v any, path string) (Item, error) {
	switch v := v.(type) {
	case string:
		return Fragment(v), nil
	case map[string]any:
		return decodeElement(v, path)
	case map[any]any:
		m := make(map[string]any, len(v))
		for k, e := range v {
			m[fmt.Sprint(k)] = e
		}
		return decodeElement(m, path)
	case nil:
		return Fragment(""), nil
	}
	return Fragment(fmt.Sprint(v)), nil
}

func decodeElement(m map[string]any, path string) (Element, error) {
	kind := "text"
	if k, ok := m["kind"]; ok {
		kind = strings.ToLower(fmt.Sprint(k))
	}
	build, ok := kindsByName[kind]
	if !ok {
		return nil, &UnknownKindError{Kind: kind, Path: path}
	}
	props, err := decodeProps(m["props"], path+".props")
	if err != nil {
		return nil, err
	}
	var items []Item
	if t, ok := m["text"]; ok {
		items = append(items, Fragment(fmt.Sprint(t)))
	}
	switch c := m["content"].(type) {
	case nil:
	case []any:
		children, err := decodeItems(c, path+".content")
		if err != nil {
			return nil, err
		}
		items = append(items, children...)
	default:
		i, err := decodeItem(c, path+".content")
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return build(props, items...), nil
}

func decodeProps(v any, path string) (Properties, error) {
	switch v := v.(type) {
	case nil:
		return nil, nil
	case map[string]any:
		return Properties(v), nil
	case map[any]any:
		p := make(Properties, len(v))
		for k, e := range v {
			p[fmt.Sprint(k)] = e
		}
		return p, nil
	case []any:
		// A list of names is a set of presence flags.
		p := make(Properties, len(v))
		for _, k := range v {
			p[fmt.Sprint(k)] = true
		}
		return p, nil
	}
	return nil, fmt.Errorf("rtf2html: props at %s must be a mapping or a list, got %T", path, v)
}

// Kinds returns the node kind names accepted in document files.
func Kinds() []string {
	names := make([]string, 0, len(kindsByName))
	for k := range kindsByName {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
