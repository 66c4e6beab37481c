package dom

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConfigOptionsSanitise(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dom.yaml")
	body := "sanitize: ugc\njournal:\n  page_id: cfg\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfigFile(path)
	if err != nil {
		t.Fatal(err)
	}

	d, err := ParseString(`<div>ok</div><script>alert(1)</script>`, ConfigOptions(cfg)...)
	if err != nil {
		t.Fatal(err)
	}
	if got := mustFind(t, d, "script"); got.Kind() != None {
		t.Error("script should be stripped by the ugc policy")
	}
	div := mustFind(t, d, "div")
	if div.Kind() != One || TextContent(div.Node()) != "ok" {
		t.Errorf("div: got %s", div.Kind())
	}
	if d.journal.pageID != "cfg" {
		t.Errorf("page id: got %q", d.journal.pageID)
	}
}

func TestDefaultConfigHasNoOptions(t *testing.T) {
	if opts := ConfigOptions(DefaultConfig()); len(opts) != 0 {
		t.Errorf("default config: got %d options, want 0", len(opts))
	}
	if Policy("none") != nil || Policy("ugc") == nil || Policy("strict") == nil {
		t.Error("Policy names")
	}
}
