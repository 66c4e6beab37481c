// Package dom is a convenience layer over an x/net/html node tree.
//
// A Document mirrors the tree into reflection slots: for every parent
// element, one slot per distinct child tag, holding the single child of
// that tag or a List of all of them in document order. Slots are read with
// Document.Child or Result.Child and stay consistent with the live tree
// across Append, InsertBefore and List.Remove.
//
// Every query produces a Result: None for no match, One for exactly one
// element, Many for several. Lists carry the batch operations Each,
// EachPath, EachWith, Only, Find and Remove.
//
// A Document is not safe for concurrent use.
package dom

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/net/html"

	"github.com/hazyhaar/domkit/dom/internal/sink"
	"github.com/hazyhaar/domkit/dom/mutation"
)

var (
	// ErrNoParent is returned when a tree operation needs a parent and got nil.
	ErrNoParent = errors.New("dom: nil parent")
	// ErrHierarchy is returned when attaching would make a node its own ancestor.
	ErrHierarchy = errors.New("dom: node cannot be attached under itself")
	// ErrNotChild is returned when a reference node is not a child of the parent.
	ErrNotChild = errors.New("dom: reference node is not a child of parent")
)

// Document is the explicit root handle of a tree. It owns the reflection
// slots, the selector compiler and the mutation journal.
type Document struct {
	top     *html.Node // document node, or the element passed to New
	refl    *reflector
	compile Compiler
	cache   map[string]Matcher
	journal *journal
	logger  *slog.Logger
}

// Parse reads HTML from r and returns a Document over the parsed tree.
func Parse(r io.Reader, opts ...Option) (*Document, error) {
	o := newOptions(opts)
	if o.policy != nil {
		r = o.policy.SanitizeReader(r)
	}
	top, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("dom: parse: %w", err)
	}
	return newDocument(top, o), nil
}

// ParseString is Parse over a string.
func ParseString(s string, opts ...Option) (*Document, error) {
	return Parse(strings.NewReader(s), opts...)
}

// New returns a Document over an existing tree. top is usually an
// html.DocumentNode; an element works too and becomes the root.
func New(top *html.Node, opts ...Option) *Document {
	return newDocument(top, newOptions(opts))
}

func newDocument(top *html.Node, o *options) *Document {
	d := &Document{
		top:     top,
		compile: o.compile,
		cache:   make(map[string]Matcher),
		logger:  o.logger,
	}
	d.refl = newReflector(d)
	d.journal = newJournal(o.pageID, sink.NewRouter(o.logger, o.sinks...))
	return d
}

// Node returns the top node the Document was built on.
func (d *Document) Node() *html.Node { return d.top }

// Root returns the root element: <html> for a parsed document.
func (d *Document) Root() Result {
	if d.top == nil {
		return d.none()
	}
	if d.top.Type == html.ElementNode {
		return d.one(d.top)
	}
	for c := d.top.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			return d.one(c)
		}
	}
	return d.none()
}

// Child reads parent's reflection slot for tag.
func (d *Document) Child(parent *html.Node, tag string) Result {
	if parent == nil {
		return d.none()
	}
	return d.refl.lookup(parent, tag)
}

// Slots returns the tags parent currently has a slot for, sorted.
func (d *Document) Slots(parent *html.Node) []string {
	if parent == nil {
		return nil
	}
	return d.refl.keys(parent)
}

// Refresh drops the cached slots of parent so they are rebuilt from the
// live tree on next read. Needed only after changing children directly
// through html.Node methods.
func (d *Document) Refresh(parent *html.Node) {
	d.refl.forget(parent)
}

// Append attaches child as the last child of parent. A child that already
// has a parent is detached from it first.
func (d *Document) Append(parent, child *html.Node) error {
	return d.InsertBefore(parent, child, nil)
}

// InsertBefore attaches child under parent just before ref, or last when
// ref is nil.
func (d *Document) InsertBefore(parent, child, ref *html.Node) error {
	if parent == nil {
		return ErrNoParent
	}
	if child == nil {
		return fmt.Errorf("dom: insert: nil child")
	}
	for a := parent; a != nil; a = a.Parent {
		if a == child {
			return ErrHierarchy
		}
	}
	if ref != nil && ref.Parent != parent {
		return ErrNotChild
	}
	if child == ref {
		return nil
	}
	if child.Parent != nil {
		d.detach(child.Parent, child)
	}

	if ref == nil {
		parent.AppendChild(child)
	} else {
		parent.InsertBefore(child, ref)
	}
	d.refl.attach(parent, child)

	if d.journal.enabled() {
		d.journal.record(mutation.Record{
			Op:    mutation.OpAttach,
			XPath: XPath(parent),
			Tag:   tagOf(child),
			HTML:  outerHTML(child),
		})
	}
	d.logger.Debug("dom: attached element", "parent", tagOf(parent), "tag", tagOf(child))
	return nil
}

// detach removes child from parent in the live tree and updates the
// reflection slots. The caller guarantees child.Parent == parent.
func (d *Document) detach(parent, child *html.Node) {
	if d.journal.enabled() {
		d.journal.record(mutation.Record{
			Op:    mutation.OpDetach,
			XPath: XPath(parent),
			Tag:   tagOf(child),
		})
	}
	parent.RemoveChild(child)
	d.refl.detach(parent, child)
	d.logger.Debug("dom: detached element", "parent", tagOf(parent), "tag", tagOf(child))
}

// Render writes the whole tree as HTML.
func (d *Document) Render(w io.Writer) error {
	if d.top == nil {
		return nil
	}
	return html.Render(w, d.top)
}

// Snapshot renders the tree and marks it as the reference for the batches
// flushed after it.
func (d *Document) Snapshot() (mutation.Snapshot, error) {
	var buf bytes.Buffer
	if err := d.Render(&buf); err != nil {
		return mutation.Snapshot{}, fmt.Errorf("dom: snapshot: %w", err)
	}
	snap := mutation.Snapshot{
		ID:        uuid.Must(uuid.NewV7()).String(),
		PageID:    d.journal.pageID,
		HTML:      buf.Bytes(),
		HTMLHash:  mutation.HashHTML(buf.Bytes()),
		Timestamp: time.Now().UnixMilli(),
	}
	d.journal.snapshotRef = snap.ID
	return snap, nil
}

// EmitSnapshot takes a snapshot and sends it to the configured sinks.
func (d *Document) EmitSnapshot(ctx context.Context) error {
	snap, err := d.Snapshot()
	if err != nil {
		return err
	}
	if err := d.journal.router.SendSnapshot(ctx, snap); err != nil {
		return fmt.Errorf("dom: emit snapshot: %w", err)
	}
	return nil
}

// Pending returns the journal records not yet flushed.
func (d *Document) Pending() []mutation.Record {
	return append([]mutation.Record(nil), d.journal.records...)
}

// Flush sends the pending journal records to the configured sinks as one
// batch. It is a no-op when nothing is pending.
func (d *Document) Flush(ctx context.Context) error {
	batch, ok := d.journal.take()
	if !ok {
		return nil
	}
	if err := d.journal.router.Send(ctx, batch); err != nil {
		return fmt.Errorf("dom: flush batch %d: %w", batch.Seq, err)
	}
	d.logger.Debug("dom: journal flushed", "seq", batch.Seq, "records", len(batch.Records))
	return nil
}

// Close flushes nothing; it releases the sinks.
func (d *Document) Close() error {
	return d.journal.router.Close()
}

func (d *Document) none() Result { return Result{doc: d} }

func (d *Document) one(n *html.Node) Result { return Result{doc: d, node: n} }

// result applies the duality rule to a query outcome.
func (d *Document) result(nodes []*html.Node) Result {
	switch len(nodes) {
	case 0:
		return d.none()
	case 1:
		return d.one(nodes[0])
	default:
		return Result{doc: d, list: d.list(nodes)}
	}
}

// tagOf returns the tag identity of an element, "" for any other node.
func tagOf(n *html.Node) string {
	if n == nil || n.Type != html.ElementNode {
		return ""
	}
	return strings.ToLower(n.Data)
}

func outerHTML(n *html.Node) string {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return ""
	}
	return buf.String()
}
