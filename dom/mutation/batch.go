// Package mutation defines the change records emitted by a dom.Document.
// These are the public contract of the journal: consumers import this
// package to decode batches without importing dom itself.
package mutation

// Op is the type of tree change recorded.
type Op string

const (
	OpAttach Op = "attach" // child appended or inserted (includes serialised subtree HTML)
	OpDetach Op = "detach" // child removed from its parent
	OpAttr   Op = "attr"   // attribute written through an element member
	OpReset  Op = "reset"  // children replaced wholesale (textContent, innerHTML)
)

// Record is a single tree change.
type Record struct {
	Op       Op     `json:"op"`
	XPath    string `json:"xpath"`          // parent location at the time of the change
	Tag      string `json:"tag,omitempty"`  // child tag for attach/detach
	Name     string `json:"name,omitempty"` // attribute name for attr
	Value    string `json:"value,omitempty"`
	OldValue string `json:"old_value,omitempty"`
	HTML     string `json:"html,omitempty"` // serialised subtree for attach
}

// Batch is the unit emitted by Document.Flush: every record collected
// since the previous flush.
type Batch struct {
	ID          string   `json:"id"` // UUIDv7
	PageID      string   `json:"page_id"`
	Seq         uint64   `json:"seq"` // monotonically increasing per document
	Records     []Record `json:"records"`
	Timestamp   int64    `json:"timestamp"`    // epoch milliseconds at flush
	SnapshotRef string   `json:"snapshot_ref"` // ID of the last snapshot, if any
}
