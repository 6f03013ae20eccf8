// Package cmd implements the unison command-line interface.
package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/unisonlabs/unison/internal/config"
	"github.com/unisonlabs/unison/internal/runner"
	"github.com/unisonlabs/unison/pkg/catalogs"
	"github.com/unisonlabs/unison/pkg/errors"
	"github.com/unisonlabs/unison/pkg/logging"
)

// Exit codes returned by Execute.
const (
	ExitOK      = 0 // every requested brand reconciled
	ExitFailure = 1 // at least one brand failed, or the invocation was invalid
	ExitNoInput = 2 // no source documents found for any requested brand
)

const (
	commercialFile   = "commercial.json"
	manufacturerFile = "manufacturer.json"
	manifestFile     = "brands.yaml"
)

// Execute runs the CLI with the given arguments and returns the process
// exit code.
func Execute(ctx context.Context, args []string) int {
	root := NewRootCommand()
	root.SetArgs(args)

	err := root.ExecuteContext(ctx)
	if err != nil {
		fmt.Fprintf(root.ErrOrStderr(), "Error: %v\n", err)
	}
	return exitCode(err)
}

// exitCode maps a command error to the process exit code.
func exitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, errors.ErrNoInput):
		return ExitNoInput
	default:
		return ExitFailure
	}
}

// NewRootCommand creates the root cobra command.
func NewRootCommand() *cobra.Command {
	cfg := config.Load()

	var (
		brand string
		all   bool
	)

	root := &cobra.Command{
		Use:   "unison",
		Short: "Multi-source product catalog reconciliation",
		Long: `Unison merges per-brand product data from a commercial catalog and a
manufacturer catalog into one unified catalog per brand.

Each brand directory under the input directory may hold a commercial.json
and a manufacturer.json snapshot. Records present in both sources are
merged; records present in only one survive with a lower confidence tier,
so no input record is ever dropped.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, cfg, brand, all)
		},
	}

	root.Flags().StringVar(&brand, "brand", "", "reconcile a single brand by ID")
	root.Flags().BoolVar(&all, "all", false, "reconcile every brand found in the input directory")
	root.Flags().StringVar(&cfg.InputDir, "input", cfg.InputDir, "directory holding per-brand source documents")
	root.Flags().StringVar(&cfg.OutputDir, "output", cfg.OutputDir, "directory for unified brand catalogs")
	root.Flags().StringVar(&cfg.Manifest, "manifest", cfg.Manifest, "brand manifest file (default <input>/brands.yaml)")
	root.Flags().IntVar(&cfg.Workers, "workers", cfg.Workers, "concurrent brand workers (0 = one per CPU core)")
	root.Flags().BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "verbose output (shortcut for LOG_LEVEL=debug)")

	return root
}

func run(cmd *cobra.Command, cfg *config.Config, brand string, all bool) error {
	if brand == "" && !all {
		return errors.NewValidationError("brand", brand, "either --brand <id> or --all is required")
	}
	if brand != "" && all {
		return errors.NewValidationError("brand", brand, "--brand and --all are mutually exclusive")
	}

	logger := setupLogger(cfg)
	ctx := logging.WithLogger(cmd.Context(), &logger)

	manifestPath := cfg.Manifest
	if manifestPath == "" {
		manifestPath = filepath.Join(cfg.InputDir, manifestFile)
	}
	manifest, err := catalogs.LoadManifest(manifestPath)
	if err != nil {
		return err
	}

	var jobs []runner.Job
	if all {
		jobs, err = discoverJobs(cfg, manifest)
		if err != nil {
			return err
		}
	} else {
		jobs = []runner.Job{newJob(cfg, manifest, brand)}
	}

	report := runner.New(runner.WithWorkers(cfg.Workers)).Run(ctx, jobs)

	printSummary(cmd, report)

	if report.SourcesFound() == 0 {
		return fmt.Errorf("%w under %s", errors.ErrNoInput, cfg.InputDir)
	}
	if failed := report.Failed(); len(failed) > 0 {
		return fmt.Errorf("%d of %d brands failed", len(failed), len(report.Brands))
	}
	return nil
}

// discoverJobs lists the brand directories under the input directory. A
// directory qualifies when at least one of the two source documents exists.
func discoverJobs(cfg *config.Config, manifest *catalogs.Manifest) ([]runner.Job, error) {
	entries, err := os.ReadDir(cfg.InputDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: input directory %s does not exist", errors.ErrNoInput, cfg.InputDir)
		}
		return nil, errors.WrapIO("read", cfg.InputDir, err)
	}

	var jobs []runner.Job
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		job := newJob(cfg, manifest, entry.Name())
		if !fileExists(job.CommercialPath) && !fileExists(job.ManufacturerPath) {
			continue
		}
		jobs = append(jobs, job)
	}

	// ReadDir order is already sorted; keep it explicit anyway.
	sort.Slice(jobs, func(i, j int) bool { return jobs[i].BrandID < jobs[j].BrandID })
	return jobs, nil
}

func newJob(cfg *config.Config, manifest *catalogs.Manifest, brandID string) runner.Job {
	return runner.Job{
		BrandID:          brandID,
		BrandName:        manifest.Name(brandID),
		CommercialPath:   filepath.Join(cfg.InputDir, brandID, commercialFile),
		ManufacturerPath: filepath.Join(cfg.InputDir, brandID, manufacturerFile),
		OutputPath:       filepath.Join(cfg.OutputDir, brandID+".json"),
	}
}

func printSummary(cmd *cobra.Command, report *runner.Report) {
	out := cmd.OutOrStdout()
	for _, b := range report.Brands {
		if b.Err != nil {
			fmt.Fprintf(out, "%-16s error: %v\n", b.BrandID, b.Err)
			continue
		}
		if b.SourcesFound == 0 {
			fmt.Fprintf(out, "%-16s no source documents\n", b.BrandID)
			continue
		}
		fmt.Fprintf(out, "%-16s %d matched, %d commercial-only, %d manufacturer-only (%s)\n",
			b.BrandID,
			b.Statistics.Matched,
			b.Statistics.CommercialOnly,
			b.Statistics.ManufacturerOnly,
			b.Duration.Round(time.Millisecond))
	}
	fmt.Fprintf(out, "%d brands, %d products in %s\n",
		len(report.Brands), report.Totals.Total(), report.Duration.Round(time.Millisecond))
}

func setupLogger(cfg *config.Config) zerolog.Logger {
	logger := logging.NewConsole()
	if cfg.LogFormat == "json" {
		logger = logging.NewJSON(os.Stderr)
	}
	if level, err := zerolog.ParseLevel(cfg.LogLevel); err == nil && level != zerolog.NoLevel {
		logger = logger.Level(level)
	}
	if cfg.Verbose {
		logger = logger.Level(zerolog.DebugLevel)
	}
	logging.SetDefault(logger)
	return logger
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
