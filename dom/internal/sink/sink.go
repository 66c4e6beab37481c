// Package sink defines output backends for dom journal batches.
package sink

import (
	"context"

	"github.com/hazyhaar/domkit/dom/mutation"
)

// Sink is the output interface. Implementations deliver journal batches
// and snapshots to a backend (JSON lines, in-process callback).
type Sink interface {
	Send(ctx context.Context, batch mutation.Batch) error
	SendSnapshot(ctx context.Context, snap mutation.Snapshot) error
	Close() error
}
