package dom

import "golang.org/x/net/html"

// compareOrder orders two nodes of the same tree depth-first, left to
// right. Nodes of different trees compare equal.
func compareOrder(a, b *html.Node) int {
	if a == b {
		return 0
	}
	pa, pb := ancestry(a), ancestry(b)
	if pa[0] != pb[0] {
		return 0
	}
	i := 0
	for i < len(pa) && i < len(pb) && pa[i] == pb[i] {
		i++
	}
	switch {
	case i == len(pa):
		return -1 // a is an ancestor of b
	case i == len(pb):
		return 1
	}
	for s := pa[i]; s != nil; s = s.NextSibling {
		if s == pb[i] {
			return -1
		}
	}
	return 1
}

// ancestry returns the chain from the top of n's tree down to n.
func ancestry(n *html.Node) []*html.Node {
	var chain []*html.Node
	for ; n != nil; n = n.Parent {
		chain = append(chain, n)
	}
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}
	return chain
}

// walk calls fn on every node under root in document order, root
// excluded.
func walk(root *html.Node, fn func(*html.Node)) {
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		fn(c)
		walk(c, fn)
	}
}
