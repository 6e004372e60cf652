package probe

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"github.com/okian/quantumtech/pkg/logger"
)

// defaultWorkers is the fetch concurrency when Config.Workers is unset.
const defaultWorkers = 4

// chartJob is one chart image to fetch.
type chartJob struct {
	index  int
	name   string
	mode   string
	sel    string
	format string
}

// fetchFunc fetches one chart and returns its check.
type fetchFunc func(ctx context.Context, job chartJob) Check

// fetchWorker pulls jobs off the shared channel until it closes.
type fetchWorker struct {
	name    string
	jobs    <-chan chartJob
	fetch   fetchFunc
	results []Check
	logger  logger.Logger
}

// Run processes jobs until the channel closes or ctx is cancelled.
// results must have one slot per job; each job writes only its own slot.
func (w *fetchWorker) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case job, ok := <-w.jobs:
			if !ok {
				return
			}
			w.results[job.index] = w.fetch(ctx, job)
			w.logger.Debug(ctx, "chart fetched",
				logger.String("chart", job.name),
				logger.String("format", job.format),
			)
		}
	}
}

// fetchPool fans chart fetches out over a fixed number of workers.
type fetchPool struct {
	workers []*fetchWorker
	jobs    chan chartJob
	results []Check
	logger  logger.Logger
}

// newFetchPool creates a pool sized for jobCount jobs.
func newFetchPool(workerCount, jobCount int, fetch fetchFunc, l logger.Logger) *fetchPool {
	if workerCount < 1 {
		workerCount = defaultWorkers
	}
	if jobCount > 0 && workerCount > jobCount {
		workerCount = jobCount
	}

	p := &fetchPool{
		workers: make([]*fetchWorker, workerCount),
		jobs:    make(chan chartJob, jobCount),
		results: make([]Check, jobCount),
		logger:  l.Named("fetch-pool"),
	}
	for i := range p.workers {
		p.workers[i] = &fetchWorker{
			name:    "worker-" + strconv.Itoa(i),
			jobs:    p.jobs,
			fetch:   fetch,
			results: p.results,
		}
		p.workers[i].logger = p.logger.With(logger.String("worker", p.workers[i].name))
	}
	return p
}

// Run enqueues every job, waits for the workers and returns the checks in job order.
// Jobs left unprocessed after cancellation are reported as failed.
func (p *fetchPool) Run(ctx context.Context, jobs []chartJob) []Check {
	var wg sync.WaitGroup
	for _, w := range p.workers {
		wg.Add(1)
		go func(w *fetchWorker) {
			defer wg.Done()
			w.Run(ctx)
		}(w)
	}

	for _, job := range jobs {
		p.jobs <- job
	}
	close(p.jobs)
	wg.Wait()

	for i, job := range jobs {
		if p.results[i].Name == "" {
			p.results[i] = Check{
				Group:  GroupCharts,
				Name:   chartCheckName(job),
				Detail: fmt.Sprintf("not fetched: %v", ctx.Err()),
			}
		}
	}
	return p.results
}

func chartCheckName(job chartJob) string {
	return job.name + " (" + job.format + ")"
}
