// Package probe walks a running dashboard over HTTP and checks that every
// view renders and the derived data holds its invariants.
package probe

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/okian/quantumtech/internal/adapters/codec"
	"github.com/okian/quantumtech/internal/domain/dataset"
	"github.com/okian/quantumtech/internal/domain/model"
	"github.com/okian/quantumtech/internal/domain/render"
	"github.com/okian/quantumtech/internal/domain/types"
	"github.com/okian/quantumtech/pkg/logger"
)

// Check groups, in report order.
const (
	GroupViews      = "views"
	GroupCharts     = "charts"
	GroupInvariants = "invariants"
	GroupErrors     = "errors"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

// runner carries the state of one probe run.
type runner struct {
	cfg    *Config
	client *client
	report *Report
	log    logger.Logger
}

// Run executes the probe against cfg.BaseURL and writes the report to out.
// It returns ErrChecksFailed when any check fails.
func Run(ctx context.Context, cfg *Config, out io.Writer) (*Report, error) {
	r := &runner{
		cfg:    cfg,
		client: newClient(strings.TrimRight(cfg.BaseURL, "/"), cfg.Timeout),
		report: &Report{BaseURL: cfg.BaseURL, Start: time.Now()},
		log:    logger.Named("probe"),
	}

	r.log.Info(ctx, "starting dashboard probe",
		logger.String("baseURL", cfg.BaseURL),
		logger.Duration("timeout", cfg.Timeout),
		logger.Any("formats", cfg.Formats),
	)

	if err := r.checkHealth(ctx); err != nil {
		return r.report, err
	}

	views, err := r.listViews(ctx)
	if err != nil {
		return r.report, err
	}
	var jobs []chartJob
	for _, v := range views {
		jobs = r.walkView(ctx, v, jobs)
	}
	pool := newFetchPool(r.cfg.Workers, len(jobs), r.fetchChart, r.log)
	for _, c := range pool.Run(ctx, jobs) {
		r.record(c)
	}
	r.checkInvariants(ctx)
	r.checkRoundTrip(ctx)
	r.checkErrors(ctx)

	r.report.Duration = time.Since(r.report.Start)
	if _, err := io.WriteString(out, Format(r.report)); err != nil {
		return r.report, fmt.Errorf("write report: %w", err)
	}

	if failed := r.report.Failed(); len(failed) > 0 {
		return r.report, fmt.Errorf("%w: %d of %d", ErrChecksFailed, len(failed), len(r.report.Checks))
	}
	r.log.Info(ctx, "probe completed", logger.Int("checks", len(r.report.Checks)))
	return r.report, nil
}

func (r *runner) record(c Check) {
	r.report.Checks = append(r.report.Checks, c)
	fields := []logger.Field{
		logger.String("group", c.Group),
		logger.String("check", c.Name),
		logger.Duration("took", c.Took),
	}
	if !c.Passed {
		r.log.Warn(context.Background(), "check failed", append(fields, logger.String("detail", c.Detail))...)
		return
	}
	if r.cfg.Verbose {
		r.log.Info(context.Background(), "check passed", fields...)
	}
}

// checkHealth verifies the service answers /healthz.
func (r *runner) checkHealth(ctx context.Context) error {
	resp, err := r.client.get(ctx, "/healthz")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnhealthy, err)
	}
	if resp.Status != http.StatusOK {
		return fmt.Errorf("%w: status %d", ErrUnhealthy, resp.Status)
	}
	return nil
}

func (r *runner) listViews(ctx context.Context) ([]types.ViewSummary, error) {
	var views []types.ViewSummary
	resp, err := r.client.getJSON(ctx, "/api/views", &views)
	if err != nil {
		return nil, err
	}
	r.record(Check{
		Group:  GroupViews,
		Name:   "list views",
		Passed: len(views) > 0,
		Detail: fmt.Sprintf("%d views", len(views)),
		Bytes:  len(resp.Body),
		Took:   resp.Took,
	})
	return views, nil
}

// walkView renders v once per secondary option and appends a chart job per format
// for every render that carries a chart.
func (r *runner) walkView(ctx context.Context, v types.ViewSummary, jobs []chartJob) []chartJob {
	selections := v.Options
	if len(selections) == 0 {
		selections = []string{""}
	}
	for _, sel := range selections {
		name := v.Mode
		if sel != "" {
			name += " / " + sel
		}

		var rendered render.View
		resp, err := r.client.getJSON(ctx, viewPath("/api/views/", v.Mode, sel, ""), &rendered)
		c := Check{Group: GroupViews, Name: name, Bytes: len(resp.Body), Took: resp.Took}
		switch {
		case err != nil:
			c.Detail = err.Error()
		case rendered.Empty():
			c.Detail = "empty render"
		default:
			c.Passed = true
			c.Detail = fmt.Sprintf("%d points, %d sections", rendered.Chart.Points(), len(rendered.Sections))
		}
		r.record(c)
		if err != nil || rendered.Chart == nil {
			continue
		}

		for _, f := range r.cfg.Formats {
			jobs = append(jobs, chartJob{index: len(jobs), name: name, mode: v.Mode, sel: sel, format: f})
		}
	}
	return jobs
}

// fetchChart downloads one chart image and checks its encoding. Safe for concurrent use.
func (r *runner) fetchChart(ctx context.Context, job chartJob) Check {
	format := job.format
	resp, err := r.client.get(ctx, viewPath("/api/charts/", job.mode, job.sel, format))
	c := Check{Group: GroupCharts, Name: chartCheckName(job), Bytes: len(resp.Body), Took: resp.Took}
	switch {
	case err != nil:
		c.Detail = err.Error()
	case resp.Status != http.StatusOK:
		c.Detail = fmt.Sprintf("status %d", resp.Status)
	case format == "png" && !bytes.HasPrefix(resp.Body, pngMagic):
		c.Detail = "not a PNG image"
	case format == "svg" && !bytes.Contains(resp.Body, []byte("<svg")):
		c.Detail = "not an SVG document"
	default:
		c.Passed = true
		c.Detail = resp.ContentType
	}
	return c
}

// checkInvariants verifies lag arithmetic and the sector ordering.
func (r *runner) checkInvariants(ctx context.Context) {
	var snap model.Snapshot
	resp, err := r.client.getJSON(ctx, "/api/dataset?format=json&table="+dataset.TableCorrespondences, &snap)
	c := Check{Group: GroupInvariants, Name: "lag = technology year - discovery year", Bytes: len(resp.Body), Took: resp.Took}
	if err != nil {
		c.Detail = err.Error()
	} else {
		c.Passed, c.Detail = checkLag(snap.Correspondences)
	}
	r.record(c)

	var economic render.View
	resp, err = r.client.getJSON(ctx, "/api/views/economic-impact", &economic)
	c = Check{Group: GroupInvariants, Name: "sector totals non-increasing", Bytes: len(resp.Body), Took: resp.Took}
	if err != nil {
		c.Detail = err.Error()
	} else {
		c.Passed, c.Detail = checkSectorOrder(economic.Chart)
	}
	r.record(c)
}

func checkLag(rows []model.Correspondence) (bool, string) {
	if len(rows) == 0 {
		return false, "no correspondences"
	}
	var sum int
	for _, row := range rows {
		if row.LagYears != row.TechnologyYear-row.DiscoveryYear {
			return false, fmt.Sprintf("%s → %s: lag %d", row.DiscoveryName, row.TechnologyName, row.LagYears)
		}
		if row.LagYears < 0 {
			return false, fmt.Sprintf("%s → %s: negative lag", row.DiscoveryName, row.TechnologyName)
		}
		sum += row.LagYears
	}
	return true, fmt.Sprintf("%d rows, average %.1f years", len(rows), float64(sum)/float64(len(rows)))
}

func checkSectorOrder(c *render.Chart) (bool, string) {
	if c.Points() == 0 {
		return false, "no bars"
	}
	var prev float64
	var total float64
	for i, p := range c.Series[0].Points {
		if i > 0 && p.Y > prev {
			return false, fmt.Sprintf("%s (%.0f) after %.0f", p.Label, p.Y, prev)
		}
		prev = p.Y
		total += p.Y
	}
	return true, fmt.Sprintf("%d sectors, total %.0f", len(c.Series[0].Points), total)
}

// checkRoundTrip downloads the dataset in every importable format, parses it
// back and checks that each format carries the same rows.
func (r *runner) checkRoundTrip(ctx context.Context) {
	codecs := codec.Default()
	var want string
	for _, f := range codecs.ImportFormats() {
		imp, err := codecs.Importer(f)
		if err != nil {
			continue
		}
		resp, err := r.client.get(ctx, "/api/dataset?format="+f)
		c := Check{Group: GroupInvariants, Name: f + " export parses back", Bytes: len(resp.Body), Took: resp.Took}
		if err == nil && resp.Status != http.StatusOK {
			err = fmt.Errorf("%w: status %d", ErrUnexpected, resp.Status)
		}
		var snap model.Snapshot
		if err == nil {
			snap, err = imp.Parse(bytes.NewReader(resp.Body))
		}
		got := tableCounts(snap)
		switch {
		case err != nil:
			c.Detail = err.Error()
		case snap.Rows() == 0:
			c.Detail = "no rows"
		case want != "" && got != want:
			c.Detail = fmt.Sprintf("%s, want %s", got, want)
		default:
			want = got
			c.Passed = true
			c.Detail = got
		}
		r.record(c)
	}
}

func tableCounts(s model.Snapshot) string {
	return fmt.Sprintf("%d/%d/%d/%d rows", len(s.Discoveries), len(s.Technologies), len(s.CategoryUsages), len(s.Correspondences))
}

// checkErrors verifies the documented error mapping.
func (r *runner) checkErrors(ctx context.Context) {
	cases := []struct {
		name, path, code string
		status           int
	}{
		{"unknown view mode", "/api/views/heatmap", "invalid_mode", http.StatusBadRequest},
		{"unknown sector", viewPath("/api/views/", "economic-impact", "Agricoltura", ""), "selection_not_found", http.StatusNotFound},
		{"unknown technology", viewPath("/api/views/", "technology-details", "Teletrasporto", ""), "selection_not_found", http.StatusNotFound},
	}
	for _, tc := range cases {
		resp, err := r.client.get(ctx, tc.path)
		c := Check{Group: GroupErrors, Name: tc.name, Bytes: len(resp.Body), Took: resp.Took}
		var body struct {
			Code string `json:"code"`
		}
		switch {
		case err != nil:
			c.Detail = err.Error()
		case resp.Status != tc.status:
			c.Detail = fmt.Sprintf("status %d, want %d", resp.Status, tc.status)
		case json.Unmarshal(resp.Body, &body) != nil || body.Code != tc.code:
			c.Detail = fmt.Sprintf("code %q, want %q", body.Code, tc.code)
		default:
			c.Passed = true
			c.Detail = fmt.Sprintf("%d %s", resp.Status, body.Code)
		}
		r.record(c)
	}
}

func viewPath(prefix, mode, selection, format string) string {
	q := url.Values{}
	if selection != "" {
		q.Set("selection", selection)
	}
	if format != "" {
		q.Set("format", format)
	}
	p := prefix + url.PathEscape(mode)
	if len(q) > 0 {
		p += "?" + q.Encode()
	}
	return p
}
