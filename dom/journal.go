package dom

import (
	"time"

	"github.com/google/uuid"

	"github.com/hazyhaar/domkit/dom/internal/sink"
	"github.com/hazyhaar/domkit/dom/mutation"
)

// journal collects the changes made through a Document until Flush.
type journal struct {
	pageID      string
	seq         uint64
	records     []mutation.Record
	snapshotRef string
	router      *sink.Router
}

func newJournal(pageID string, router *sink.Router) *journal {
	return &journal{pageID: pageID, router: router}
}

// enabled reports whether anything consumes the records.
func (j *journal) enabled() bool { return j.router.Len() > 0 }

func (j *journal) record(r mutation.Record) {
	j.records = append(j.records, r)
}

// take drains the pending records into a new batch.
func (j *journal) take() (mutation.Batch, bool) {
	if len(j.records) == 0 {
		return mutation.Batch{}, false
	}
	j.seq++
	b := mutation.Batch{
		ID:          uuid.Must(uuid.NewV7()).String(),
		PageID:      j.pageID,
		Seq:         j.seq,
		Records:     j.records,
		Timestamp:   time.Now().UnixMilli(),
		SnapshotRef: j.snapshotRef,
	}
	j.records = nil
	return b, true
}
