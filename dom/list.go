package dom

import (
	"slices"

	"golang.org/x/net/html"
)

// List is an ordered, duplicate-free group of elements. A List never
// changes after construction: operations that alter the tree return new
// lists and leave existing ones as point-in-time sequences.
type List struct {
	doc   *Document
	nodes []*html.Node
}

// Wrap builds a List from nodes, dropping nils and repeated handles while
// keeping first-occurrence order.
func (d *Document) Wrap(nodes ...*html.Node) *List {
	out := make([]*html.Node, 0, len(nodes))
	seen := make(map[*html.Node]bool, len(nodes))
	for _, n := range nodes {
		if n == nil || seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return d.list(out)
}

// list wraps nodes the caller already knows to be distinct.
func (d *Document) list(nodes []*html.Node) *List {
	return &List{doc: d, nodes: nodes}
}

// Document returns the Document the list belongs to.
func (l *List) Document() *Document { return l.doc }

// Len returns the number of elements.
func (l *List) Len() int {
	if l == nil {
		return 0
	}
	return len(l.nodes)
}

// At returns the i-th element, or nil when i is out of range.
func (l *List) At(i int) *html.Node {
	if i < 0 || i >= l.Len() {
		return nil
	}
	return l.nodes[i]
}

// Nodes returns a copy of the elements.
func (l *List) Nodes() []*html.Node {
	if l == nil {
		return nil
	}
	return slices.Clone(l.nodes)
}

// Index returns the position of n, or -1.
func (l *List) Index(n *html.Node) int {
	if l == nil {
		return -1
	}
	return slices.Index(l.nodes, n)
}

// Contains reports whether n is in the list.
func (l *List) Contains(n *html.Node) bool { return l.Index(n) >= 0 }

func (l *List) without(n *html.Node) []*html.Node {
	out := make([]*html.Node, 0, len(l.nodes))
	for _, m := range l.nodes {
		if m != n {
			out = append(out, m)
		}
	}
	return out
}

// self is the Result a single-element list returns for a filter it
// satisfies: the element itself.
func (l *List) self() Result { return l.doc.one(l.nodes[0]) }

// empty is the empty-list Result of filters nothing satisfied.
func (l *List) empty() Result {
	if l.Len() == 0 {
		return Result{doc: l.doc, list: l}
	}
	return Result{doc: l.doc, list: l.doc.list(nil)}
}
