package probe

import "time"

// Config holds configuration for a probe run.
type Config struct {
	BaseURL string        // Base URL of the service
	Timeout time.Duration // Per-request timeout
	Formats []string      // Chart image formats to fetch
	Workers int           // Concurrent chart fetches; 0 uses the default
	Verbose bool          // Log every check, not only failures
}

// Check is the outcome of one probe step.
type Check struct {
	Group  string
	Name   string
	Passed bool
	Detail string
	Bytes  int
	Took   time.Duration
}

// Report collects every check of a run.
type Report struct {
	BaseURL  string
	Checks   []Check
	Start    time.Time
	Duration time.Duration
}

// Failed returns the checks that did not pass.
func (r *Report) Failed() []Check {
	var out []Check
	for _, c := range r.Checks {
		if !c.Passed {
			out = append(out, c)
		}
	}
	return out
}

// Bytes sums the payload sizes of every check.
func (r *Report) Bytes() int {
	n := 0
	for _, c := range r.Checks {
		n += c.Bytes
	}
	return n
}
