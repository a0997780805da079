// Package cli wires configuration, browser session, and runner together for
// the command-line entrypoint.
package cli

import (
	"context"
	"fmt"
	"log"

	"github.com/Anubrata-Das/bluebella-e2e/internal/browser"
	"github.com/Anubrata-Das/bluebella-e2e/internal/config"
	"github.com/Anubrata-Das/bluebella-e2e/internal/report"
	"github.com/Anubrata-Das/bluebella-e2e/internal/runner"
	"github.com/Anubrata-Das/bluebella-e2e/internal/testdata"
)

// RunOptions carries the command-line overrides for one suite run.
type RunOptions struct {
	Browser  string
	Headless bool
	Parallel int
	DataPath string
}

// RunSuite loads the test records, launches the configured browser, and
// executes the checkout scenario for every record.
func RunSuite(ctx context.Context, cfg *config.SuiteConfig, opts RunOptions) error {
	if opts.Browser != "" {
		cfg.Browser = opts.Browser
	}
	if opts.Headless {
		cfg.Headless = true
	}
	if opts.DataPath != "" {
		cfg.TestDataPath = opts.DataPath
	}

	records, err := testdata.Load(cfg.TestDataPath)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return fmt.Errorf("no test records in %s", cfg.TestDataPath)
	}

	reporter, err := report.New(cfg.ScreenshotsDir, cfg.ReportsDir)
	if err != nil {
		return err
	}

	session, err := browser.Launch(browser.LaunchConfig{
		Browser:       cfg.Browser,
		Headless:      cfg.Headless,
		Args:          cfg.BrowserArgs,
		ActionTimeout: cfg.ImplicitWait,
	})
	if err != nil {
		return err
	}
	defer func() {
		if err := session.Close(); err != nil {
			log.Printf("Failed to close browser session: %v", err)
		}
	}()

	return runner.New(cfg, session, reporter).Run(ctx, records, opts.Parallel)
}
