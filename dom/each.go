package dom

import "golang.org/x/net/html"

// Each calls fn once per element in document order with the element, its
// index and the receiver, then returns the receiver. Iteration runs over a
// snapshot taken before the first call, so fn may change the tree without
// skipping or repeating elements.
func (l *List) Each(fn func(n *html.Node, i int, all *List)) *List {
	if l.Len() == 0 {
		return l
	}
	for i, n := range l.Nodes() {
		fn(n, i, l)
	}
	return l
}

// EachPath resolves p on every element. A callable leaf is invoked with no
// arguments and its return value collected; any other leaf is read. The
// result holds one entry per element, in order; an absent leaf member
// yields nil.
func (l *List) EachPath(p Path) ([]any, error) {
	out := make([]any, 0, l.Len())
	if l.Len() == 0 {
		return out, nil
	}
	for _, n := range l.Nodes() {
		obj, err := l.doc.resolve(n, p)
		if err != nil {
			return nil, err
		}
		leaf := p.leaf()
		if obj.Callable(leaf) {
			v, err := obj.Invoke(leaf)
			if err != nil {
				return nil, &PathError{Path: p, Index: len(p) - 1, Err: err}
			}
			out = append(out, v)
			continue
		}
		v, _ := obj.Get(leaf)
		out = append(out, v)
	}
	return out, nil
}

// EachWith resolves p on every element and either invokes the leaf with
// value as its single argument, when callable, or assigns value to it.
// It returns the receiver. Elements handled before a failure keep their
// changes.
func (l *List) EachWith(p Path, value any) (*List, error) {
	if l.Len() == 0 {
		return l, nil
	}
	for _, n := range l.Nodes() {
		obj, err := l.doc.resolve(n, p)
		if err != nil {
			return l, err
		}
		leaf := p.leaf()
		if obj.Callable(leaf) {
			_, err = obj.Invoke(leaf, value)
		} else {
			err = obj.Set(leaf, value)
		}
		if err != nil {
			return l, &PathError{Path: p, Index: len(p) - 1, Err: err}
		}
	}
	return l, nil
}
