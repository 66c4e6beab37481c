package dom

import "golang.org/x/net/html"

// Filter selects elements of a List for Only.
type Filter interface {
	apply(l *List) (Result, error)
}

// Predicate tests one element of a list.
type Predicate func(n *html.Node, i int, all *List) bool

// At keeps the element at index i; negative indexes count from the end.
func At(i int) Filter { return indexFilter(i) }

// Range keeps the elements in [start, end) with slice semantics: negative
// bounds count from the end and both are clamped to the length.
func Range(start, end int) Filter { return rangeFilter{start: start, end: end} }

// Where keeps the elements fn accepts.
func Where(fn Predicate) Filter { return predicateFilter(fn) }

// Matching keeps the elements that match selector. The list's own
// elements are tested; the tree is not searched.
func Matching(selector string) Filter { return selectorFilter(selector) }

// Only filters the list. On a single-element list it returns that element
// when the filter accepts it and an empty list otherwise. On longer lists
// an index, or a range one element wide, yields the bare element, a wider
// range a new List, and Where/Matching a new List of the survivors even
// when only one survives. Out-of-range indexes and empty ranges yield an
// empty list. Only Matching can fail, with the selector engine's error.
func (l *List) Only(f Filter) (Result, error) {
	if l.Len() == 0 {
		return l.empty(), nil
	}
	return f.apply(l)
}

type indexFilter int

func (f indexFilter) apply(l *List) (Result, error) {
	i := int(f)
	if i < 0 {
		i += l.Len()
	}
	if i < 0 || i >= l.Len() {
		return l.empty(), nil
	}
	return l.doc.one(l.nodes[i]), nil
}

type rangeFilter struct{ start, end int }

func (f rangeFilter) apply(l *List) (Result, error) {
	start, end := clampBound(f.start, l.Len()), clampBound(f.end, l.Len())
	switch {
	case end <= start:
		return l.empty(), nil
	case end-start == 1:
		return l.doc.one(l.nodes[start]), nil
	default:
		return Result{doc: l.doc, list: l.doc.list(l.Nodes()[start:end])}, nil
	}
}

func clampBound(i, n int) int {
	if i < 0 {
		i += n
		if i < 0 {
			return 0
		}
		return i
	}
	if i > n {
		return n
	}
	return i
}

type predicateFilter Predicate

func (f predicateFilter) apply(l *List) (Result, error) {
	return l.keep(func(n *html.Node, i int) bool { return f(n, i, l) }), nil
}

type selectorFilter string

func (f selectorFilter) apply(l *List) (Result, error) {
	m, err := l.doc.matcher(string(f))
	if err != nil {
		return l.doc.none(), err
	}
	return l.keep(func(n *html.Node, _ int) bool { return m.Match(n) }), nil
}

// keep applies a membership test with the single-element rule.
func (l *List) keep(ok func(n *html.Node, i int) bool) Result {
	if l.Len() == 1 {
		if ok(l.nodes[0], 0) {
			return l.self()
		}
		return l.empty()
	}
	var kept []*html.Node
	for i, n := range l.Nodes() {
		if ok(n, i) {
			kept = append(kept, n)
		}
	}
	return Result{doc: l.doc, list: l.doc.list(kept)}
}
