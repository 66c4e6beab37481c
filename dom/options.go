package dom

import (
	"log/slog"

	"github.com/microcosm-cc/bluemonday"
)

// Option configures a Document.
type Option func(*options)

type options struct {
	logger  *slog.Logger
	compile Compiler
	policy  *bluemonday.Policy
	sinks   []Sink
	pageID  string
}

func newOptions(opts []Option) *options {
	o := &options{
		logger:  slog.Default(),
		compile: CascadiaCompiler,
	}
	for _, fn := range opts {
		fn(o)
	}
	return o
}

// WithLogger sets the logger. Default: slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithCompiler replaces the selector engine. Default: cascadia.
func WithCompiler(c Compiler) Option {
	return func(o *options) {
		if c != nil {
			o.compile = c
		}
	}
}

// WithPolicy sanitises the input with a bluemonday policy before parsing.
// It has no effect on New, which receives an already parsed tree.
func WithPolicy(p *bluemonday.Policy) Option {
	return func(o *options) { o.policy = p }
}

// WithSink adds a journal sink. Without sinks the journal records nothing.
func WithSink(s Sink) Option {
	return func(o *options) {
		if s != nil {
			o.sinks = append(o.sinks, s)
		}
	}
}

// WithPageID stamps journal batches and snapshots with a stable identifier.
func WithPageID(id string) Option {
	return func(o *options) { o.pageID = id }
}
