package dom

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/hazyhaar/domkit/dom/mutation"
)

func TestJournalFlushesDetachRecords(t *testing.T) {
	var batches []mutation.Batch
	d := fixture(t,
		WithPageID("fixture"),
		WithSink(NewCallbackSink(func(_ context.Context, b mutation.Batch) error {
			batches = append(batches, b)
			return nil
		}, nil)),
	)

	first := mustFind(t, d, "#first").List()
	first.Remove()
	if got := len(d.Pending()); got != 1 {
		t.Fatalf("pending: got %d, want 1", got)
	}

	ctx := context.Background()
	if err := d.Flush(ctx); err != nil {
		t.Fatal(err)
	}
	if err := d.Flush(ctx); err != nil {
		t.Fatal(err)
	}
	if len(batches) != 1 {
		t.Fatalf("batches: got %d, want 1 (empty flush is a no-op)", len(batches))
	}

	b := batches[0]
	if b.Seq != 1 || b.PageID != "fixture" || b.ID == "" {
		t.Errorf("batch header: %+v", b)
	}
	r := b.Records[0]
	if r.Op != mutation.OpDetach || r.XPath != "/html/body/section" || r.Tag != "div" {
		t.Errorf("record: %+v", r)
	}
	if len(d.Pending()) != 0 {
		t.Error("flush must drain pending records")
	}
}

func TestJournalRecordsAttachAndAttr(t *testing.T) {
	d := fixture(t, WithSink(NewCallbackSink(nil, nil)))
	sec := sectionOf(t, d)

	if err := d.Append(sec, newElement("p")); err != nil {
		t.Fatal(err)
	}
	if _, err := divsOf(t, d).EachWith(MustPath("id"), "x"); err != nil {
		t.Fatal(err)
	}

	pending := d.Pending()
	if len(pending) != 1+5 {
		t.Fatalf("pending: got %d, want 6", len(pending))
	}
	if pending[0].Op != mutation.OpAttach || pending[0].HTML != "<p></p>" {
		t.Errorf("attach record: %+v", pending[0])
	}
	if pending[1].Op != mutation.OpAttr || pending[1].Name != "id" || pending[1].OldValue != "first" {
		t.Errorf("attr record: %+v", pending[1])
	}
}

func TestJournalDisabledWithoutSinks(t *testing.T) {
	d := fixture(t)
	divsOf(t, d).Remove()
	if len(d.Pending()) != 0 {
		t.Error("nothing should be recorded without sinks")
	}
	if err := d.Flush(context.Background()); err != nil {
		t.Error(err)
	}
}

func TestSnapshotIsReferencedByNextBatch(t *testing.T) {
	var out bytes.Buffer
	d := fixture(t, WithSink(NewStdoutSink(&out)))
	ctx := context.Background()

	if err := d.EmitSnapshot(ctx); err != nil {
		t.Fatal(err)
	}
	mustFind(t, d, "#last").List().Remove()
	if err := d.Flush(ctx); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("lines: got %d, want 2", len(lines))
	}
	var env struct {
		Type string            `json:"type"`
		Data mutation.Snapshot `json:"data"`
	}
	if err := json.Unmarshal([]byte(lines[0]), &env); err != nil {
		t.Fatal(err)
	}
	snap := env.Data
	if env.Type != "snapshot" {
		t.Fatalf("first line: got %q, want snapshot", env.Type)
	}
	if snap.HTMLHash != mutation.HashHTML(snap.HTML) {
		t.Error("snapshot hash mismatch")
	}
	if !strings.Contains(lines[1], `"snapshot_ref":"`+snap.ID+`"`) {
		t.Errorf("batch does not reference snapshot %s: %s", snap.ID, lines[1])
	}
	if err := d.Close(); err != nil {
		t.Error(err)
	}
}
