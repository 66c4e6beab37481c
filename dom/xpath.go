package dom

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
)

// XPath returns the location of n from the top of its tree, e.g.
// "/html/body/section/div[3]". The sibling index is only written when the
// parent has more than one child with the same tag. Text and comment nodes
// end in text() and comment(); the document node is "".
func XPath(n *html.Node) string {
	var parts []string
	for ; n != nil && n.Type != html.DocumentNode; n = n.Parent {
		switch n.Type {
		case html.TextNode:
			parts = append(parts, "text()")
		case html.CommentNode:
			parts = append(parts, "comment()")
		case html.ElementNode:
			parts = append(parts, step(n))
		}
	}
	if len(parts) == 0 {
		return ""
	}
	for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
		parts[i], parts[j] = parts[j], parts[i]
	}
	return "/" + strings.Join(parts, "/")
}

// step computes one element segment with its same-tag sibling index.
func step(n *html.Node) string {
	name := tagOf(n)
	if n.Parent == nil {
		return name
	}
	idx, total := 0, 0
	for c := n.Parent.FirstChild; c != nil; c = c.NextSibling {
		if tagOf(c) != name {
			continue
		}
		total++
		if c == n {
			idx = total
		}
	}
	if total > 1 {
		return fmt.Sprintf("%s[%d]", name, idx)
	}
	return name
}
