// Package runner executes the checkout scenario for every test record,
// each in its own browser page, optionally in parallel.
package runner

import (
	"context"
	"fmt"
	"log"
	"sync/atomic"
	"time"

	"github.com/Anubrata-Das/bluebella-e2e/internal/browser"
	"github.com/Anubrata-Das/bluebella-e2e/internal/config"
	"github.com/Anubrata-Das/bluebella-e2e/internal/report"
	"github.com/Anubrata-Das/bluebella-e2e/internal/scenario"
	"github.com/Anubrata-Das/bluebella-e2e/internal/testdata"
	"github.com/fatih/color"
	"golang.org/x/sync/errgroup"
)

var (
	passLine = color.New(color.FgGreen)
	failLine = color.New(color.FgRed, color.Bold)
)

// Runner owns one launched browser and fans records out over it. Records
// share nothing: each run gets a fresh driver, created before and closed
// after the run even on failure.
type Runner struct {
	cfg      *config.SuiteConfig
	session  *browser.Session
	reporter *report.Reporter
	flow     *scenario.Flow
}

func New(cfg *config.SuiteConfig, session *browser.Session, reporter *report.Reporter) *Runner {
	return &Runner{
		cfg:      cfg,
		session:  session,
		reporter: reporter,
		flow:     scenario.NewFlow(cfg),
	}
}

// Run executes every record and writes the run report. A failing record is
// logged and reported but never stops the others; Run returns an error only
// when at least one record failed (or the report could not be written).
func (r *Runner) Run(ctx context.Context, records []testdata.Record, parallel int) error {
	if parallel < 1 {
		parallel = 1
	}
	log.Printf("Run %s: %d records, parallelism %d", r.reporter.RunID(), len(records), parallel)

	var failed atomic.Int64
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(parallel)
	for _, record := range records {
		record := record
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := r.runRecord(record); err != nil {
				failed.Add(1)
			}
			// Record failures are reported, not propagated: propagation
			// would cancel the sibling runs.
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	path, err := r.reporter.Write()
	if err != nil {
		return err
	}
	log.Printf("Report written: %s", path)

	if n := failed.Load(); n > 0 {
		return fmt.Errorf("%d of %d scenario runs failed", n, len(records))
	}
	return nil
}

func (r *Runner) runRecord(record testdata.Record) error {
	name := record.Name()

	// Validation happens before any browser resource is touched.
	if err := record.Validate(testdata.RequiredKeys); err != nil {
		failLine.Printf("FAIL  %s: %v\n", name, err)
		r.reporter.Fail(name, err, "", 0)
		return err
	}

	driver, err := r.session.NewDriver()
	if err != nil {
		failLine.Printf("FAIL  %s: %v\n", name, err)
		r.reporter.Fail(name, err, "", 0)
		return err
	}
	defer func() {
		if err := driver.Close(); err != nil {
			log.Printf("Failed to close driver for %s: %v", name, err)
		}
	}()

	start := time.Now()
	if err := r.flow.Run(driver, record); err != nil {
		duration := time.Since(start)
		screenshot := r.reporter.CaptureScreenshot("checkout_flow_"+name, driver)
		r.reporter.Fail(name, err, screenshot, duration)
		failLine.Printf("FAIL  %s (%s): %v\n", name, duration.Round(time.Millisecond), err)
		return err
	}
	duration := time.Since(start)
	r.reporter.Pass(name, duration)
	passLine.Printf("PASS  %s (%s)\n", name, duration.Round(time.Millisecond))
	return nil
}
