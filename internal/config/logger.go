package config

import (
	"io"

	"github.com/charmbracelet/log"
)

// NewLogger builds the stderr logger used by both commands
func NewLogger(w io.Writer, cfg Config, prefix string) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:           cfg.Level(),
		ReportTimestamp: true,
		Prefix:          prefix,
	})
}
