package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/hazyhaar/domkit/dom"
)

const page = `<html><body><section id="s"><div id="a">one</div><div id="b">two</div><div id="c">three</div></section></body></html>`

func runCLI(t *testing.T, o cliOptions) string {
	t.Helper()
	var out bytes.Buffer
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	if err := run(context.Background(), logger, dom.DefaultConfig(), o, strings.NewReader(page), &out); err != nil {
		t.Fatal(err)
	}
	return out.String()
}

func TestParseFilter(t *testing.T) {
	tests := []struct {
		in      string
		wantErr bool
	}{
		{"-1", false},
		{"1:4", false},
		{":2", false},
		{"3:", false},
		{"div.note", false},
		{"", true},
	}
	for _, tt := range tests {
		f, err := parseFilter(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseFilter(%q): err=%v, wantErr=%v", tt.in, err, tt.wantErr)
		}
		if err == nil && f == nil {
			t.Errorf("parseFilter(%q): nil filter", tt.in)
		}
	}
}

func TestRunGet(t *testing.T) {
	got := runCLI(t, cliOptions{find: "div", get: "id"})
	if got != "a\nb\nc\n" {
		t.Errorf("got %q", got)
	}
}

func TestRunOnlyText(t *testing.T) {
	var out bytes.Buffer
	cfg := dom.DefaultConfig()
	cfg.Output.Format = "text"
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	if err := run(context.Background(), logger, cfg, cliOptions{find: "div", only: "1:"}, strings.NewReader(page), &out); err != nil {
		t.Fatal(err)
	}
	if out.String() != "two\nthree\n" {
		t.Errorf("got %q", out.String())
	}
}

func TestRunOnlyLast(t *testing.T) {
	got := runCLI(t, cliOptions{find: "div", only: "-1"})
	if got != `<div id="c">three</div>`+"\n" {
		t.Errorf("got %q", got)
	}
}

func TestRunSetAndRemove(t *testing.T) {
	got := runCLI(t, cliOptions{find: "#b", set: "className=note"})
	if !strings.Contains(got, `<div id="b" class="note">two</div>`) {
		t.Errorf("set: got %q", got)
	}

	got = runCLI(t, cliOptions{find: "#a, #c", remove: true})
	if strings.Contains(got, `id="a"`) || strings.Contains(got, `id="c"`) || !strings.Contains(got, `id="b"`) {
		t.Errorf("remove: got %q", got)
	}
}

func TestRunBadSelector(t *testing.T) {
	var out bytes.Buffer
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	err := run(context.Background(), logger, dom.DefaultConfig(), cliOptions{find: "div["}, strings.NewReader(page), &out)
	if err == nil {
		t.Error("expected selector error")
	}
}
