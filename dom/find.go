package dom

import (
	"slices"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
)

// Matcher tests one element against a compiled selector.
type Matcher interface {
	Match(n *html.Node) bool
}

// Compiler turns selector text into a Matcher. Its errors reach callers
// unchanged.
type Compiler func(selector string) (Matcher, error)

// CascadiaCompiler compiles CSS selector groups with cascadia.
func CascadiaCompiler(selector string) (Matcher, error) {
	sel, err := cascadia.Compile(selector)
	if err != nil {
		return nil, err
	}
	return sel, nil
}

// matcher compiles selector once per Document.
func (d *Document) matcher(selector string) (Matcher, error) {
	if m, ok := d.cache[selector]; ok {
		return m, nil
	}
	m, err := d.compile(selector)
	if err != nil {
		return nil, err
	}
	d.cache[selector] = m
	return m, nil
}

// Find searches the whole tree for elements matching selector.
func (d *Document) Find(selector string) (Result, error) {
	if d.top == nil {
		return d.none(), nil
	}
	m, err := d.matcher(selector)
	if err != nil {
		return d.none(), err
	}
	var out []*html.Node
	if d.top.Type == html.ElementNode && m.Match(d.top) {
		out = append(out, d.top)
	}
	walk(d.top, func(n *html.Node) {
		if n.Type == html.ElementNode && m.Match(n) {
			out = append(out, n)
		}
	})
	return d.result(out), nil
}

// Find searches the descendants of the list's elements, never the
// elements themselves or anything outside them. Matches come back once
// each, in document order.
func (l *List) Find(selector string) (Result, error) {
	if l.Len() == 0 {
		return l.empty(), nil
	}
	m, err := l.doc.matcher(selector)
	if err != nil {
		return l.doc.none(), err
	}
	var out []*html.Node
	seen := make(map[*html.Node]bool)
	for _, root := range l.nodes {
		walk(root, func(n *html.Node) {
			if n.Type == html.ElementNode && !seen[n] && m.Match(n) {
				seen[n] = true
				out = append(out, n)
			}
		})
	}
	if l.Len() > 1 {
		slices.SortStableFunc(out, compareOrder)
	}
	return l.doc.result(out), nil
}
