// Package logging routes application logs to a file so they never draw over
// the terminal UI.
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	cblog "github.com/charmbracelet/log"
)

// EnvLogFile and EnvLogLevel are read and written by Setup.
const (
	EnvLogFile  = "COLORTABLE_LOG_FILE"
	EnvLogLevel = "COLORTABLE_LOG_LEVEL"
)

// ParseLevel maps a level name to a charmbracelet/log level. Unknown names
// give InfoLevel.
func ParseLevel(name string) cblog.Level {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "DEBUG":
		return cblog.DebugLevel
	case "WARN", "WARNING":
		return cblog.WarnLevel
	case "ERROR":
		return cblog.ErrorLevel
	case "FATAL":
		return cblog.FatalLevel
	default:
		return cblog.InfoLevel
	}
}

// New creates a logger writing to w at the level named by EnvLogLevel.
func New(w io.Writer) *cblog.Logger {
	logger := cblog.NewWithOptions(w, cblog.Options{ReportTimestamp: true})
	logger.SetLevel(ParseLevel(os.Getenv(EnvLogLevel)))
	return logger
}

// Setup creates a temp log file, exposes its path via EnvLogFile and makes it
// the destination of both the standard library logger and the default
// charmbracelet logger. The caller closes the returned file on exit.
func Setup() (*os.File, error) {
	f, err := os.CreateTemp("", "colortable-*.log")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp log file: %w", err)
	}
	_ = os.Setenv(EnvLogFile, f.Name())

	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	cblog.SetDefault(New(f))
	cblog.With("component", "app").Info("colortable started", "logFile", f.Name())
	return f, nil
}
