// CLAUDE:SUMMARY CLI entry point for domq: query, filter, edit and detach elements of an HTML file.
// Command domq runs dom queries against an HTML document.
//
// Usage:
//
//	domq -file page.html -find "section div"            # print matches
//	domq -file page.html -find div -only -1             # last match only
//	domq -file page.html -find div -get parentNode.id   # one value per match
//	domq -file page.html -find div -set className=note  # assign a member
//	domq -file page.html -find div -call classList.add -arg note
//	domq -file page.html -find .ad -remove              # detach and print the document
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"golang.org/x/net/html"

	"github.com/hazyhaar/domkit/dom"
	"github.com/hazyhaar/domkit/render"
)

type cliOptions struct {
	configPath string
	file       string
	find       string
	only       string
	get        string
	set        string
	call       string
	arg        string
	remove     bool
	format     string
	logLevel   string
}

func main() {
	var o cliOptions
	flag.StringVar(&o.configPath, "config", "", "path to domq.yaml config file")
	flag.StringVar(&o.file, "file", "-", "HTML file to load, - for stdin")
	flag.StringVar(&o.find, "find", "", "CSS selector searched over the whole document")
	flag.StringVar(&o.only, "only", "", "filter: index (-1), range (1:4) or selector")
	flag.StringVar(&o.get, "get", "", "member path read (or called) on every match")
	flag.StringVar(&o.set, "set", "", "path=value assigned on every match")
	flag.StringVar(&o.call, "call", "", "method path called on every match with -arg")
	flag.StringVar(&o.arg, "arg", "", "argument passed to -call")
	flag.BoolVar(&o.remove, "remove", false, "detach every match and print the document")
	flag.StringVar(&o.format, "format", "", "output format: html, markdown, text")
	flag.StringVar(&o.logLevel, "log-level", "", "log level: debug, info, warn, error")
	flag.Parse()

	cfg, err := loadConfig(o.configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "domq:", err)
		os.Exit(1)
	}
	if o.logLevel != "" {
		cfg.LogLevel = o.logLevel
	}
	if o.format != "" {
		cfg.Output.Format = o.format
	}

	var level slog.Level
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	in, err := openInput(o.file)
	if err != nil {
		logger.Error("domq: open input", "file", o.file, "error", err)
		os.Exit(1)
	}
	defer in.Close()

	if err := run(ctx, logger, cfg, o, in, os.Stdout); err != nil {
		logger.Error("domq: fatal", "error", err)
		os.Exit(1)
	}
}

func loadConfig(path string) (*dom.Config, error) {
	if path == "" {
		return dom.DefaultConfig(), nil
	}
	return dom.LoadConfigFile(path)
}

func openInput(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(path)
}

func run(ctx context.Context, logger *slog.Logger, cfg *dom.Config, o cliOptions, in io.Reader, out io.Writer) error {
	opts := append(dom.ConfigOptions(cfg), dom.WithLogger(logger))
	doc, err := dom.Parse(in, opts...)
	if err != nil {
		return err
	}
	defer doc.Close()

	res := doc.Root()
	if o.find != "" {
		if res, err = doc.Find(o.find); err != nil {
			return fmt.Errorf("find %q: %w", o.find, err)
		}
	}
	if o.only != "" {
		f, err := parseFilter(o.only)
		if err != nil {
			return err
		}
		if res, err = res.List().Only(f); err != nil {
			return fmt.Errorf("only %q: %w", o.only, err)
		}
	}
	logger.Debug("domq: selected", "kind", res.Kind().String(), "count", res.Len())

	switch {
	case o.get != "":
		p, err := dom.ParsePath(o.get)
		if err != nil {
			return err
		}
		vals, err := res.List().EachPath(p)
		if err != nil {
			return err
		}
		for _, v := range vals {
			if _, err := fmt.Fprintln(out, formatValue(v)); err != nil {
				return err
			}
		}
	case o.set != "":
		path, value, ok := strings.Cut(o.set, "=")
		if !ok {
			return fmt.Errorf("-set wants path=value, got %q", o.set)
		}
		if err := apply(res, path, value); err != nil {
			return err
		}
		if err := render.Write(out, res, cfg.Output.Format); err != nil {
			return err
		}
	case o.call != "":
		if err := apply(res, o.call, o.arg); err != nil {
			return err
		}
		if err := render.Write(out, res, cfg.Output.Format); err != nil {
			return err
		}
	case o.remove:
		parents := res.List().Remove()
		logger.Info("domq: removed", "elements", res.Len(), "parents", parents.Len())
		if err := doc.Render(out); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(out); err != nil {
			return err
		}
	default:
		if err := render.Write(out, res, cfg.Output.Format); err != nil {
			return err
		}
	}

	return doc.Flush(ctx)
}

func apply(res dom.Result, path, value string) error {
	p, err := dom.ParsePath(path)
	if err != nil {
		return err
	}
	_, err = res.List().EachWith(p, value)
	return err
}

// parseFilter reads "-1" as an index, "1:4", ":2" or "3:" as a range and
// anything else as a selector.
func parseFilter(s string) (dom.Filter, error) {
	if i, err := strconv.Atoi(s); err == nil {
		return dom.At(i), nil
	}
	if lo, hi, ok := strings.Cut(s, ":"); ok && isBound(lo) && isBound(hi) {
		start, end := 0, math.MaxInt
		var err error
		if lo != "" {
			if start, err = strconv.Atoi(lo); err != nil {
				return nil, err
			}
		}
		if hi != "" {
			if end, err = strconv.Atoi(hi); err != nil {
				return nil, err
			}
		}
		return dom.Range(start, end), nil
	}
	if s == "" {
		return nil, errors.New("empty filter")
	}
	return dom.Matching(s), nil
}

func isBound(s string) bool {
	if s == "" {
		return true
	}
	_, err := strconv.Atoi(s)
	return err == nil
}

func formatValue(v any) string {
	switch v := v.(type) {
	case nil:
		return "null"
	case *html.Node:
		var b strings.Builder
		if err := html.Render(&b, v); err != nil {
			return fmt.Sprintf("<%s>", v.Data)
		}
		return b.String()
	case *dom.List:
		return fmt.Sprintf("[%d elements]", v.Len())
	default:
		return fmt.Sprint(v)
	}
}
