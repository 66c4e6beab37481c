package dom

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"

	"github.com/hazyhaar/domkit/dom/mutation"
)

// Object is the member capability a Path resolves against. Get returns
// ok=false for a member that does not exist; a member that exists but is
// empty returns (nil, true).
type Object interface {
	Get(name string) (any, bool)
	Set(name string, value any) error
	Callable(name string) bool
	Invoke(name string, args ...any) (any, error)
}

// Object binds the members of n: element properties, element methods and,
// for any other name, the reflection slot of that tag.
func (d *Document) Object(n *html.Node) Object {
	return &element{doc: d, n: n}
}

type element struct {
	doc *Document
	n   *html.Node
}

func (e *element) Get(name string) (any, bool) {
	n := e.n
	switch name {
	case "tagName", "nodeName":
		if n.Type == html.DocumentNode {
			return "#document", true
		}
		return strings.ToUpper(n.Data), true
	case "localName":
		return tagOf(n), true
	case "id":
		return getAttr(n, "id"), true
	case "className":
		return getAttr(n, "class"), true
	case "classList":
		return &classList{el: e}, true
	case "parentNode":
		return nodeValue(n.Parent)
	case "firstElementChild":
		return nodeValue(nextElement(n.FirstChild, true))
	case "lastElementChild":
		return nodeValue(nextElement(n.LastChild, false))
	case "nextElementSibling":
		return nodeValue(nextElement(n.NextSibling, true))
	case "previousElementSibling":
		return nodeValue(nextElement(n.PrevSibling, false))
	case "childElementCount":
		return len(elementChildren(n)), true
	case "children":
		return e.doc.list(elementChildren(n)), true
	case "textContent":
		return TextContent(n), true
	case "innerHTML":
		var b strings.Builder
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			b.WriteString(outerHTML(c))
		}
		return b.String(), true
	case "outerHTML":
		return outerHTML(n), true
	}
	if e.Callable(name) {
		return nil, false
	}
	r := e.doc.Child(n, name)
	switch r.Kind() {
	case One:
		return r.Node(), true
	case Many:
		return r.Group(), true
	default:
		return nil, false
	}
}

func (e *element) Set(name string, value any) error {
	s := toString(value)
	switch name {
	case "id":
		e.setAttr("id", s)
	case "className":
		e.setAttr("class", s)
	case "textContent":
		e.replaceChildren(&html.Node{Type: html.TextNode, Data: s})
	case "innerHTML":
		nodes, err := html.ParseFragment(strings.NewReader(s), e.n)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrBadArgument, err)
		}
		e.replaceChildren(nodes...)
	default:
		if _, ok := e.Get(name); ok || e.Callable(name) {
			return ErrReadOnly
		}
		return ErrUnknownMember
	}
	return nil
}

func (e *element) Callable(name string) bool {
	switch name {
	case "cloneNode", "getAttribute", "setAttribute", "hasAttribute",
		"removeAttribute", "matches", "closest", "remove":
		return true
	}
	return false
}

func (e *element) Invoke(name string, args ...any) (any, error) {
	n := e.n
	switch name {
	case "cloneNode":
		deep := false
		if len(args) > 0 {
			b, ok := args[0].(bool)
			if !ok {
				return nil, fmt.Errorf("%w: cloneNode wants a bool, got %T", ErrBadArgument, args[0])
			}
			deep = b
		}
		return cloneNode(n, deep), nil
	case "getAttribute":
		key, err := stringArg(name, args, 0)
		if err != nil {
			return nil, err
		}
		if !hasAttr(n, key) {
			return nil, nil
		}
		return getAttr(n, key), nil
	case "hasAttribute":
		key, err := stringArg(name, args, 0)
		if err != nil {
			return nil, err
		}
		return hasAttr(n, key), nil
	case "setAttribute":
		key, err := stringArg(name, args, 0)
		if err != nil {
			return nil, err
		}
		val, err := stringArg(name, args, 1)
		if err != nil {
			return nil, err
		}
		e.setAttr(key, val)
		return nil, nil
	case "removeAttribute":
		key, err := stringArg(name, args, 0)
		if err != nil {
			return nil, err
		}
		e.removeAttr(key)
		return nil, nil
	case "matches":
		sel, err := stringArg(name, args, 0)
		if err != nil {
			return nil, err
		}
		m, err := e.doc.matcher(sel)
		if err != nil {
			return nil, err
		}
		return m.Match(n), nil
	case "closest":
		sel, err := stringArg(name, args, 0)
		if err != nil {
			return nil, err
		}
		m, err := e.doc.matcher(sel)
		if err != nil {
			return nil, err
		}
		for a := n; a != nil; a = a.Parent {
			if a.Type == html.ElementNode && m.Match(a) {
				return a, nil
			}
		}
		return nil, nil
	case "remove":
		if n.Parent != nil {
			e.doc.detach(n.Parent, n)
		}
		return nil, nil
	}
	return nil, ErrUnknownMember
}

func (e *element) setAttr(key, val string) {
	old := getAttr(e.n, key)
	found := false
	for i := range e.n.Attr {
		if e.n.Attr[i].Key == key {
			e.n.Attr[i].Val = val
			found = true
			break
		}
	}
	if !found {
		e.n.Attr = append(e.n.Attr, html.Attribute{Key: key, Val: val})
	}
	if e.doc.journal.enabled() {
		e.doc.journal.record(mutation.Record{
			Op:       mutation.OpAttr,
			XPath:    XPath(e.n),
			Name:     key,
			Value:    val,
			OldValue: old,
		})
	}
}

func (e *element) removeAttr(key string) {
	attrs := e.n.Attr[:0]
	for _, a := range e.n.Attr {
		if a.Key != key {
			attrs = append(attrs, a)
		}
	}
	e.n.Attr = attrs
}

// replaceChildren swaps every child of the element for nodes and drops
// its reflection table.
func (e *element) replaceChildren(nodes ...*html.Node) {
	for c := e.n.FirstChild; c != nil; {
		next := c.NextSibling
		e.n.RemoveChild(c)
		c = next
	}
	for _, c := range nodes {
		e.n.AppendChild(c)
	}
	e.doc.refl.forget(e.n)
	if e.doc.journal.enabled() {
		e.doc.journal.record(mutation.Record{
			Op:    mutation.OpReset,
			XPath: XPath(e.n),
			HTML:  outerHTML(e.n),
		})
	}
}

// classList is the token-list view of the class attribute.
type classList struct {
	el *element
}

func (c *classList) tokens() []string {
	return strings.Fields(getAttr(c.el.n, "class"))
}

func (c *classList) write(tokens []string) {
	c.el.setAttr("class", strings.Join(tokens, " "))
}

func (c *classList) Get(name string) (any, bool) {
	switch name {
	case "length":
		return len(c.tokens()), true
	case "value":
		return getAttr(c.el.n, "class"), true
	}
	return nil, false
}

func (c *classList) Set(name string, value any) error {
	switch name {
	case "value":
		c.el.setAttr("class", toString(value))
		return nil
	case "length":
		return ErrReadOnly
	}
	return ErrUnknownMember
}

func (c *classList) Callable(name string) bool {
	switch name {
	case "add", "remove", "toggle", "contains":
		return true
	}
	return false
}

func (c *classList) Invoke(name string, args ...any) (any, error) {
	if !c.Callable(name) {
		return nil, ErrUnknownMember
	}
	if len(args) == 0 {
		return nil, fmt.Errorf("%w: classList.%s wants a token", ErrBadArgument, name)
	}
	tokens := c.tokens()
	switch name {
	case "add":
		for _, a := range args {
			if t := toString(a); !containsToken(tokens, t) {
				tokens = append(tokens, t)
			}
		}
		c.write(tokens)
		return nil, nil
	case "remove":
		drop := make(map[string]bool, len(args))
		for _, a := range args {
			drop[toString(a)] = true
		}
		kept := tokens[:0]
		for _, t := range tokens {
			if !drop[t] {
				kept = append(kept, t)
			}
		}
		c.write(kept)
		return nil, nil
	case "toggle":
		t := toString(args[0])
		if containsToken(tokens, t) {
			return false, c.remove(t)
		}
		c.write(append(tokens, t))
		return true, nil
	default: // contains
		return containsToken(tokens, toString(args[0])), nil
	}
}

func (c *classList) remove(t string) error {
	_, err := c.Invoke("remove", t)
	return err
}

func containsToken(tokens []string, t string) bool {
	for _, x := range tokens {
		if x == t {
			return true
		}
	}
	return false
}

// getAttr returns the value of an attribute on a node.
func getAttr(n *html.Node, key string) string {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}

// hasAttr checks if a node has a specific attribute.
func hasAttr(n *html.Node, key string) bool {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return true
		}
	}
	return false
}

// nodeValue keeps a nil node from becoming a non-nil interface.
func nodeValue(n *html.Node) (any, bool) {
	if n == nil {
		return nil, true
	}
	return n, true
}

func nextElement(n *html.Node, forward bool) *html.Node {
	for n != nil && n.Type != html.ElementNode {
		if forward {
			n = n.NextSibling
		} else {
			n = n.PrevSibling
		}
	}
	return n
}

func elementChildren(n *html.Node) []*html.Node {
	var kids []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			kids = append(kids, c)
		}
	}
	return kids
}

// TextContent concatenates the text of every descendant text node.
func TextContent(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var b strings.Builder
	walk(n, func(c *html.Node) {
		if c.Type == html.TextNode {
			b.WriteString(c.Data)
		}
	})
	return b.String()
}

// cloneNode copies n without a parent. Attributes are copied; children
// only when deep.
func cloneNode(n *html.Node, deep bool) *html.Node {
	c := &html.Node{
		Type:      n.Type,
		DataAtom:  n.DataAtom,
		Data:      n.Data,
		Namespace: n.Namespace,
		Attr:      append([]html.Attribute(nil), n.Attr...),
	}
	if deep {
		for k := n.FirstChild; k != nil; k = k.NextSibling {
			c.AppendChild(cloneNode(k, true))
		}
	}
	return c
}

func stringArg(method string, args []any, i int) (string, error) {
	if i >= len(args) || args[i] == nil {
		return "", fmt.Errorf("%w: %s wants argument %d", ErrBadArgument, method, i+1)
	}
	return toString(args[i]), nil
}

func toString(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}
