package probe

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/okian/quantumtech/pkg/logger"
)

// File permission constants.
const (
	logFilePermission = 0600
)

// SetupLogging initializes the logger on stderr, and on logFile too when set.
func SetupLogging(logFile string, verbose bool) error {
	var w io.Writer = os.Stderr
	if logFile != "" {
		file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, logFilePermission)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		w = io.MultiWriter(os.Stderr, file)
	}
	if err := logger.InitWithWriter(w); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	level := "warn"
	if verbose {
		level = "debug"
	}
	return logger.SetLevelString(level)
}

// ParseFormats splits a comma separated list of chart formats.
func ParseFormats(s string) []string {
	var out []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.ToLower(strings.TrimSpace(f)); f != "" {
			out = append(out, f)
		}
	}
	return out
}

// ShowHelp prints usage information for the probe.
func ShowHelp(w io.Writer) {
	_, _ = io.WriteString(w, `Quantum Tech Revolution probe
=============================

Walks every dashboard view and secondary selection of a running service,
fetches each chart image and checks the lag and sector invariants.

Usage:
  go run ./cmd/probe [options]

Options:
  -url string
        Base URL of the service (default "http://localhost:9080")
  -timeout duration
        HTTP request timeout (default 10s)
  -formats string
        Comma separated chart formats to fetch (default "png,svg")
  -workers int
        Concurrent chart fetches (default 4)
  -log string
        Also append logs to this file
  -verbose
        Log every passing check
  -help
        Show this help message

Exit status is 1 when any check fails.
`)
}
