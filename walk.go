package rtf2html

// WalkResult is the result of a walk operation.
type WalkResult int

// WalkContinue indicates that the walk operation should continue.
const WalkContinue WalkResult = 0

// WalkReplace indicates that the current item should be replaced with the
// items returned by the function.
const WalkReplace WalkResult = 1

// WalkSkip indicates that the children of the current item should not be
// processed.
const WalkSkip WalkResult = 2

// WalkStop indicates that the walk operation should stop immediately.
const WalkStop WalkResult = 3

// Query applies 'fun' to every descendant item of 'root' whose type matches P,
// in reading order. 'fun' is not applied to 'root' itself.
//
// Returning WalkSkip prevents the children of the current item from being
// visited, WalkStop terminates the traversal.
//
// Example:
//
//	var links int
//	rtf2html.Query(doc, func(t *rtf2html.Text) rtf2html.WalkResult {
//	    if t.Props.Has(rtf2html.PropURL) {
//	        links++
//	    }
//	    return rtf2html.WalkContinue
//	})
func Query[P any](root Root, fun func(P) WalkResult) {
	queryList(childrenOf(root), fun)
}

func queryList[P any](items []Item, fun func(P) WalkResult) WalkResult {
	for _, i := range items {
		if p, ok := any(i).(P); ok {
			switch fun(p) {
			case WalkStop:
				return WalkStop
			case WalkSkip:
				continue
			}
		}
		if e, ok := i.(Element); ok && !isNil(e) {
			if queryList(e.Items(), fun) == WalkStop {
				return WalkStop
			}
		}
	}
	return WalkContinue
}

// Filter applies 'fun' to every descendant item of 'doc' whose type matches P
// and returns the document with the changes applied. Content lists that
// change are rebuilt; unchanged lists are shared with the input.
//
// The behavior depends on the WalkResult returned by 'fun':
//
//   - WalkStop: Terminates the traversal process immediately.
//   - WalkSkip: Keeps the current item and skips its children.
//   - WalkReplace: Replaces the current item with the returned items.
//   - WalkContinue: Keeps the current item and descends into it.
//
// To remove an item, 'fun' should return no items along with WalkReplace.
//
// Example:
//
//	doc = rtf2html.Filter(doc, func(*rtf2html.Html) ([]rtf2html.Item, rtf2html.WalkResult) {
//	    return nil, rtf2html.WalkReplace
//	})
func Filter[P any](doc *Document, fun func(P) ([]Item, WalkResult)) *Document {
	if doc == nil {
		return nil
	}
	items, updated, _ := filterList(doc.Content, fun)
	if !updated {
		return doc
	}
	return &Document{Content: items}
}

func filterList[P any](items []Item, fun func(P) ([]Item, WalkResult)) ([]Item, bool, WalkResult) {
	var out []Item
	updated := false
	for n, i := range items {
		keep := []Item{i}
		descend := true
		stop := false
		if p, ok := any(i).(P); ok {
			repl, res := fun(p)
			switch res {
			case WalkReplace:
				keep, descend = repl, false
			case WalkSkip:
				descend = false
			case WalkStop:
				descend, stop = false, true
			}
		}
		if descend {
			if e, ok := i.(Element); ok && !isNil(e) {
				children, changed, res := filterList(e.Items(), fun)
				if changed {
					keep = []Item{withItems(e, children)}
				}
				stop = res == WalkStop
			}
		}
		if !updated && (len(keep) != 1 || keep[0] != i) {
			updated = true
			out = append(make([]Item, 0, len(items)), items[:n]...)
		}
		if updated {
			out = append(out, keep...)
		}
		if stop {
			if updated {
				out = append(out, items[n+1:]...)
			}
			return out, updated, WalkStop
		}
	}
	if !updated {
		return items, false, WalkContinue
	}
	return out, true, WalkContinue
}

// withItems returns a copy of e holding items as its content.
func withItems(e Element, items []Item) Element {
	switch e := e.(type) {
	case *Container:
		return &Container{e.with(items)}
	case *Text:
		return &Text{e.with(items)}
	case *Image:
		return &Image{e.with(items)}
	case *Html:
		return &Html{e.with(items)}
	case *Paragraph:
		return &Paragraph{e.with(items)}
	}
	return e
}

func childrenOf(root Root) []Item {
	if root == nil {
		return nil
	}
	if e, ok := root.(Element); ok && isNil(e) {
		return nil
	}
	return root.Items()
}
