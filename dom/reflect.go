package dom

import (
	"slices"
	"strings"

	"golang.org/x/net/html"
)

// slot is one reflection slot: a single child, or a List of two or more
// same-tag children in document order. A slot never holds zero elements;
// an absent slot is a missing map key.
type slot struct {
	one  *html.Node
	many *List
}

func (s slot) nodes() []*html.Node {
	if s.many != nil {
		return s.many.nodes
	}
	return []*html.Node{s.one}
}

// reflector maps (parent, tag) to slots. A parent's table is built from
// the live children on first read and kept current by attach and detach
// afterwards. Plural slots are replaced, never mutated, so a List handed
// out earlier keeps its contents.
type reflector struct {
	doc   *Document
	slots map[*html.Node]map[string]slot
}

func newReflector(d *Document) *reflector {
	return &reflector{doc: d, slots: make(map[*html.Node]map[string]slot)}
}

// table returns parent's slots, building them on first use.
func (r *reflector) table(parent *html.Node) map[string]slot {
	if t, ok := r.slots[parent]; ok {
		return t
	}
	grouped := make(map[string][]*html.Node)
	for c := parent.FirstChild; c != nil; c = c.NextSibling {
		if key := tagOf(c); key != "" {
			grouped[key] = append(grouped[key], c)
		}
	}
	t := make(map[string]slot, len(grouped))
	for key, kids := range grouped {
		t[key] = r.slotOf(kids)
	}
	r.slots[parent] = t
	return t
}

func (r *reflector) slotOf(nodes []*html.Node) slot {
	if len(nodes) == 1 {
		return slot{one: nodes[0]}
	}
	return slot{many: r.doc.list(nodes)}
}

// attach records child as a new child of parent. Parents never observed
// are skipped: their table is built from the tree when first read.
func (r *reflector) attach(parent, child *html.Node) {
	t, ok := r.slots[parent]
	if !ok {
		return
	}
	key := tagOf(child)
	if key == "" {
		return
	}
	s, ok := t[key]
	if !ok {
		t[key] = slot{one: child}
		return
	}
	members := append(slices.Clone(s.nodes()), child)
	t[key] = r.slotOf(childOrder(parent, members))
}

// detach forgets child under parent. A plural slot drops the matching
// handle and collapses to singular at one; anything else is deleted
// wholesale without an identity check.
func (r *reflector) detach(parent, child *html.Node) {
	t, ok := r.slots[parent]
	if !ok {
		return
	}
	key := tagOf(child)
	s, ok := t[key]
	if !ok {
		return
	}
	if s.many == nil {
		delete(t, key)
		return
	}
	rest := s.many.without(child)
	switch len(rest) {
	case 0:
		delete(t, key)
	case 1:
		t[key] = slot{one: rest[0]}
	default:
		t[key] = slot{many: r.doc.list(rest)}
	}
}

// forget drops parent's table.
func (r *reflector) forget(parent *html.Node) {
	delete(r.slots, parent)
}

func (r *reflector) lookup(parent *html.Node, tag string) Result {
	s, ok := r.table(parent)[strings.ToLower(tag)]
	switch {
	case !ok:
		return r.doc.none()
	case s.many != nil:
		return Result{doc: r.doc, list: s.many}
	default:
		return r.doc.one(s.one)
	}
}

func (r *reflector) keys(parent *html.Node) []string {
	t := r.table(parent)
	keys := make([]string, 0, len(t))
	for k := range t {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// childOrder returns the members that are children of parent, in child
// order.
func childOrder(parent *html.Node, members []*html.Node) []*html.Node {
	out := make([]*html.Node, 0, len(members))
	for c := parent.FirstChild; c != nil; c = c.NextSibling {
		if slices.Contains(members, c) {
			out = append(out, c)
		}
	}
	return out
}
