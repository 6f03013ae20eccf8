// Package runner orchestrates reconciliation across brands. Brands share no
// mutable state, so they run on a bounded worker pool; per-brand outcomes
// are reduced over a single channel into one run report rather than through
// shared-memory mutation.
package runner

import (
	"context"
	"os"
	"runtime"
	"sort"
	"sync"
	"time"

	"github.com/unisonlabs/unison/pkg/catalogs"
	"github.com/unisonlabs/unison/pkg/logging"
	"github.com/unisonlabs/unison/pkg/reconciler"
)

// Job describes one brand's reconciliation: where its source documents live
// and where the unified catalog must land.
type Job struct {
	BrandID          string
	BrandName        string
	CommercialPath   string
	ManufacturerPath string
	OutputPath       string
}

// BrandSummary is the outcome of one brand's run.
type BrandSummary struct {
	BrandID      string
	Statistics   catalogs.Statistics
	SourcesFound int // how many of the two source files existed (0..2)
	Duration     time.Duration
	Err          error
}

// Report aggregates all brand summaries of a run.
type Report struct {
	Brands   []BrandSummary
	Totals   catalogs.Statistics
	Duration time.Duration
}

// Failed returns the summaries of brands that errored.
func (r *Report) Failed() []BrandSummary {
	var failed []BrandSummary
	for _, b := range r.Brands {
		if b.Err != nil {
			failed = append(failed, b)
		}
	}
	return failed
}

// SourcesFound reports how many source files existed across all brands.
func (r *Report) SourcesFound() int {
	total := 0
	for _, b := range r.Brands {
		total += b.SourcesFound
	}
	return total
}

// Runner executes brand reconciliation jobs.
type Runner struct {
	reconciler *reconciler.Reconciler
	workers    int
}

// Option configures a Runner.
type Option func(*Runner)

// WithWorkers bounds the worker pool. Values below one fall back to the
// number of CPU cores.
func WithWorkers(n int) Option {
	return func(r *Runner) {
		if n > 0 {
			r.workers = n
		}
	}
}

// WithReconciler substitutes the reconciler, letting tests inject fixture
// normalizers or authority tables.
func WithReconciler(rec *reconciler.Reconciler) Option {
	return func(r *Runner) {
		if rec != nil {
			r.reconciler = rec
		}
	}
}

// New creates a Runner with options.
func New(opts ...Option) *Runner {
	r := &Runner{
		reconciler: reconciler.New(),
		workers:    runtime.NumCPU(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run reconciles all jobs and returns the aggregated report. One brand's
// failure never aborts the others; the caller decides what failures mean.
// Cancelling the context stops new brands from starting; a brand already in
// flight runs to completion.
func (r *Runner) Run(ctx context.Context, jobs []Job) *Report {
	start := time.Now()
	logger := logging.FromContext(ctx)

	jobCh := make(chan Job)
	resultCh := make(chan BrandSummary, len(jobs))

	workers := r.workers
	if workers > len(jobs) {
		workers = len(jobs)
	}
	if workers < 1 {
		workers = 1
	}

	var wg sync.WaitGroup
	for n := 0; n < workers; n++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range jobCh {
				resultCh <- r.runBrand(ctx, job)
			}
		}()
	}

	for _, job := range jobs {
		// Check cancellation before offering the job: with a worker already
		// blocked on receive, select alone would pick the send arm at random.
		if ctx.Err() != nil {
			break
		}
		select {
		case <-ctx.Done():
		case jobCh <- job:
			continue
		}
		break
	}
	close(jobCh)

	wg.Wait()
	close(resultCh)

	report := &Report{}
	for summary := range resultCh {
		report.Brands = append(report.Brands, summary)
		report.Totals.Matched += summary.Statistics.Matched
		report.Totals.CommercialOnly += summary.Statistics.CommercialOnly
		report.Totals.ManufacturerOnly += summary.Statistics.ManufacturerOnly
	}

	// Workers finish in arbitrary order; sort for a stable report.
	sort.Slice(report.Brands, func(i, j int) bool {
		return report.Brands[i].BrandID < report.Brands[j].BrandID
	})

	report.Duration = time.Since(start)
	logger.Info().
		Int("brands", len(report.Brands)).
		Int("products", report.Totals.Total()).
		Dur("duration", report.Duration).
		Msg("Run complete")

	return report
}

// runBrand loads one brand's source documents, reconciles them, and writes
// the unified catalog. Nothing is written when any step fails.
func (r *Runner) runBrand(ctx context.Context, job Job) BrandSummary {
	start := time.Now()
	summary := BrandSummary{BrandID: job.BrandID}
	ctx = logging.WithBrand(ctx, job.BrandID)
	logger := logging.FromContext(ctx)

	if fileExists(job.CommercialPath) {
		summary.SourcesFound++
	}
	if fileExists(job.ManufacturerPath) {
		summary.SourcesFound++
	}
	if summary.SourcesFound == 0 {
		// Neither source exists: nothing to reconcile, nothing written.
		summary.Duration = time.Since(start)
		return summary
	}

	commercialDoc, err := catalogs.LoadCommercial(job.CommercialPath)
	if err != nil {
		summary.Err = err
		summary.Duration = time.Since(start)
		return summary
	}
	manufacturerDoc, err := catalogs.LoadManufacturer(job.ManufacturerPath)
	if err != nil {
		summary.Err = err
		summary.Duration = time.Since(start)
		return summary
	}

	products, err := r.reconciler.Brand(ctx, job.BrandID, job.BrandName, commercialDoc.Products, manufacturerDoc.Products)
	if err != nil {
		logger.Error().Err(err).Msg("Brand reconciliation failed")
		summary.Err = err
		summary.Duration = time.Since(start)
		return summary
	}

	catalog := catalogs.Assemble(job.BrandID, products,
		catalogs.WithGeneratedAt(latest(commercialDoc.FetchedAt, manufacturerDoc.FetchedAt)))

	if err := catalog.Save(job.OutputPath); err != nil {
		summary.Err = err
		summary.Duration = time.Since(start)
		return summary
	}

	summary.Statistics = catalog.Statistics
	summary.Duration = time.Since(start)
	return summary
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// latest picks the fresher of the two source snapshot timestamps. Deriving
// generatedAt from input freshness instead of the wall clock keeps repeated
// runs over unchanged input byte-identical.
func latest(a, b time.Time) time.Time {
	if b.After(a) {
		return b
	}
	return a
}
