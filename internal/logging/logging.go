// Package logging builds the hclog loggers used across paintsviewer.
package logging

import (
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
)

// Options configures the root logger.
type Options struct {
	Output  io.Writer
	Verbose bool
	Quiet   bool
	JSON    bool
}

// Level resolves the log level for the given flags. Quiet wins over verbose.
func (o Options) Level() hclog.Level {
	switch {
	case o.Quiet:
		return hclog.Error
	case o.Verbose:
		return hclog.Debug
	default:
		return hclog.Info
	}
}

// New creates the root logger. Output defaults to stderr so that rendered
// documents written to stdout stay clean.
func New(opts Options) hclog.Logger {
	out := opts.Output
	if out == nil {
		out = os.Stderr
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:       "paintsviewer",
		Output:     out,
		Level:      opts.Level(),
		JSONFormat: opts.JSON,
	})
}

// Discard returns a logger that drops everything.
func Discard() hclog.Logger {
	return hclog.New(&hclog.LoggerOptions{
		Name:   "paintsviewer",
		Output: io.Discard,
		Level:  hclog.Off,
	})
}
