package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/okian/quantumtech/internal/probe"
)

// Default configuration constants.
const (
	defaultTimeout  = 10 * time.Second
	defaultRunLimit = 5 * time.Minute
)

func main() {
	var (
		baseURL = flag.String("url", "http://localhost:9080", "Base URL of the service")
		timeout = flag.Duration("timeout", defaultTimeout, "HTTP request timeout")
		formats = flag.String("formats", "png,svg", "Comma separated chart formats to fetch")
		workers = flag.Int("workers", 4, "Concurrent chart fetches")
		logFile = flag.String("log", "", "Also append logs to this file")
		verbose = flag.Bool("verbose", false, "Log every passing check")
		help    = flag.Bool("help", false, "Show help")
	)
	flag.Parse()

	if *help {
		probe.ShowHelp(os.Stdout)
		return
	}

	if err := probe.SetupLogging(*logFile, *verbose); err != nil {
		os.Stderr.WriteString("failed to setup logging: " + err.Error() + "\n")
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, defaultRunLimit)
	defer cancel()

	cfg := &probe.Config{
		BaseURL: *baseURL,
		Timeout: *timeout,
		Formats: probe.ParseFormats(*formats),
		Workers: *workers,
		Verbose: *verbose,
	}

	if _, err := probe.Run(ctx, cfg, os.Stdout); err != nil {
		os.Stderr.WriteString("probe failed: " + err.Error() + "\n")
		os.Exit(1)
	}
}
