// CLAUDE:SUMMARY In-process callback sink delivering journal batches via Go function calls with zero serialization.
package sink

import (
	"context"

	"github.com/hazyhaar/domkit/dom/mutation"
)

// BatchFunc is called for each batch (in-process, zero serialisation).
type BatchFunc func(ctx context.Context, batch mutation.Batch) error

// SnapshotFunc is called for each snapshot.
type SnapshotFunc func(ctx context.Context, snap mutation.Snapshot) error

// Callback delivers batches via Go function calls.
type Callback struct {
	onBatch    BatchFunc
	onSnapshot SnapshotFunc
}

// NewCallback creates a Callback sink. Either handler may be nil.
func NewCallback(onBatch BatchFunc, onSnapshot SnapshotFunc) *Callback {
	return &Callback{onBatch: onBatch, onSnapshot: onSnapshot}
}

func (c *Callback) Send(ctx context.Context, batch mutation.Batch) error {
	if c.onBatch != nil {
		return c.onBatch(ctx, batch)
	}
	return nil
}

func (c *Callback) SendSnapshot(ctx context.Context, snap mutation.Snapshot) error {
	if c.onSnapshot != nil {
		return c.onSnapshot(ctx, snap)
	}
	return nil
}

func (c *Callback) Close() error { return nil }
