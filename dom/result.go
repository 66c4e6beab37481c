package dom

import "golang.org/x/net/html"

// Kind tells the three shapes of a Result apart.
type Kind int

const (
	None Kind = iota // no element
	One              // exactly one bare element
	Many             // a List
)

func (k Kind) String() string {
	switch k {
	case One:
		return "one"
	case Many:
		return "many"
	default:
		return "none"
	}
}

// Result is the outcome of a slot read, a Find or an Only. Slot reads and
// Find produce One for a single match and Many for two or more; Only may
// also produce a Many of length one for predicate and selector filters.
// The zero value is None.
type Result struct {
	doc  *Document
	node *html.Node
	list *List
}

// Kind returns the shape of the result.
func (r Result) Kind() Kind {
	switch {
	case r.node != nil:
		return One
	case r.list.Len() > 0:
		return Many
	default:
		return None
	}
}

// Node returns the element of a One result, nil otherwise.
func (r Result) Node() *html.Node { return r.node }

// Group returns the List of a Many result, nil otherwise.
func (r Result) Group() *List {
	if r.node != nil || r.list.Len() == 0 {
		return nil
	}
	return r.list
}

// List returns the result as a List: the same List for Many, a new
// one-element List for One and an empty List for None. It never returns
// nil.
func (r Result) List() *List {
	switch {
	case r.node != nil:
		return r.doc.list([]*html.Node{r.node})
	case r.list != nil:
		return r.list
	default:
		return &List{doc: r.doc}
	}
}

// Len returns the number of elements.
func (r Result) Len() int {
	if r.node != nil {
		return 1
	}
	return r.list.Len()
}

// Child reads the reflection slot for tag on a One result. Lists have no
// slots, so Many and None yield None.
func (r Result) Child(tag string) Result {
	if r.node == nil || r.doc == nil {
		return Result{doc: r.doc}
	}
	return r.doc.Child(r.node, tag)
}
