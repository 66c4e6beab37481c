package dom

import (
	"context"
	"io"

	"github.com/hazyhaar/domkit/dom/internal/sink"
	"github.com/hazyhaar/domkit/dom/mutation"
)

// Sink is the output interface for journal batches.
type Sink = sink.Sink

// BatchFunc is called for each batch.
type BatchFunc = sink.BatchFunc

// SnapshotFunc is called for each snapshot.
type SnapshotFunc = sink.SnapshotFunc

// NewStdoutSink creates a JSON-lines sink writing to w (os.Stdout if nil).
func NewStdoutSink(w io.Writer) Sink {
	return sink.NewStdout(w)
}

// NewCallbackSink creates an in-process callback sink. Either handler may
// be nil.
func NewCallbackSink(
	onBatch func(ctx context.Context, batch mutation.Batch) error,
	onSnapshot func(ctx context.Context, snap mutation.Snapshot) error,
) Sink {
	return sink.NewCallback(onBatch, onSnapshot)
}
