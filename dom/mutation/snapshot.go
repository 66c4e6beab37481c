package mutation

// Snapshot is a complete rendering of a document. Batches that follow it
// carry its ID in SnapshotRef so a consumer can replay records on top.
type Snapshot struct {
	ID        string `json:"id"` // UUIDv7
	PageID    string `json:"page_id"`
	HTML      []byte `json:"html"`
	HTMLHash  string `json:"html_hash"` // SHA-256 hex
	Timestamp int64  `json:"timestamp"` // epoch milliseconds
}
