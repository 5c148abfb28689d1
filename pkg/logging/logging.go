// Package logging builds the runtime logger. The TUI owns the terminal, so
// interactive sessions log to a file or nowhere.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	"github.com/pluqqy/tagselect/pkg/models"
)

const prefix = "tagselect"

// Logger wraps a charm logger with the file it may own
type Logger struct {
	*log.Logger
	closeFile func() error
	path      string
}

// New creates a logger for cfg. When cfg.File is empty, output goes to
// fallback with the styled text formatter; a nil fallback discards output.
func New(cfg models.LoggingSettings, fallback io.Writer) (*Logger, error) {
	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("parse logging level %q: %w", cfg.Level, err)
	}

	if cfg.File == "" {
		if fallback == nil {
			fallback = io.Discard
		}
		return &Logger{
			Logger: log.NewWithOptions(fallback, log.Options{
				Level:           level,
				Prefix:          prefix,
				ReportTimestamp: true,
				TimeFormat:      time.Kitchen,
				Formatter:       log.TextFormatter,
			}),
		}, nil
	}

	if dir := filepath.Dir(cfg.File); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create log directory %s: %w", dir, err)
		}
	}
	f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file %s: %w", cfg.File, err)
	}

	// Keep file output parseable
	return &Logger{
		Logger: log.NewWithOptions(f, log.Options{
			Level:           level,
			Prefix:          prefix,
			ReportTimestamp: true,
			TimeFormat:      time.RFC3339,
			Formatter:       log.LogfmtFormatter,
		}),
		closeFile: f.Close,
		path:      cfg.File,
	}, nil
}

// Path returns the log file path, empty when logging to a writer
func (l *Logger) Path() string {
	if l == nil {
		return ""
	}
	return l.path
}

// Close releases the log file if one was opened
func (l *Logger) Close() error {
	if l == nil || l.closeFile == nil {
		return nil
	}
	return l.closeFile()
}
