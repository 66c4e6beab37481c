package dom

import "golang.org/x/net/html"

// Remove detaches every element from its parent, in order, keeping the
// reflection slots current. It returns the distinct parents touched, in
// first-seen order. Elements without a parent are skipped.
func (l *List) Remove() *List {
	if l.Len() == 0 {
		return l
	}
	var parents []*html.Node
	seen := make(map[*html.Node]bool)
	for _, n := range l.Nodes() {
		parent := n.Parent
		if parent == nil {
			continue
		}
		if !seen[parent] {
			seen[parent] = true
			parents = append(parents, parent)
		}
		l.doc.detach(parent, n)
	}
	return l.doc.list(parents)
}
