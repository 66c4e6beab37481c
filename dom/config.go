package dom

import (
	"os"

	"github.com/microcosm-cc/bluemonday"

	"github.com/hazyhaar/domkit/dom/internal/config"
)

// Config is the top-level dom configuration. Re-exported from internal.
type Config = config.Config

// JournalConfig controls where journal batches go.
type JournalConfig = config.JournalConfig

// OutputConfig controls result rendering.
type OutputConfig = config.OutputConfig

// LoadConfigFile reads a YAML configuration file.
func LoadConfigFile(path string) (*Config, error) {
	return config.LoadFile(path)
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return config.Default()
}

// ConfigOptions turns a configuration into Document options: the sanitise
// policy, the page ID and one sink per configured journal target.
func ConfigOptions(cfg *Config) []Option {
	var opts []Option
	if p := Policy(cfg.Sanitize); p != nil {
		opts = append(opts, WithPolicy(p))
	}
	if cfg.Journal.PageID != "" {
		opts = append(opts, WithPageID(cfg.Journal.PageID))
	}
	for _, s := range cfg.Journal.Sinks {
		switch s {
		case "stdout":
			opts = append(opts, WithSink(NewStdoutSink(os.Stdout)))
		case "stderr":
			opts = append(opts, WithSink(NewStdoutSink(os.Stderr)))
		}
	}
	return opts
}

// Policy returns the bluemonday policy named by a sanitize setting, or nil
// for "none" and unknown names.
func Policy(name string) *bluemonday.Policy {
	switch name {
	case "ugc":
		return bluemonday.UGCPolicy()
	case "strict":
		return bluemonday.StrictPolicy()
	default:
		return nil
	}
}
