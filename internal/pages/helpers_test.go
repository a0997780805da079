package pages

import (
	"time"

	"github.com/Anubrata-Das/bluebella-e2e/internal/browser"
	"github.com/Anubrata-Das/bluebella-e2e/internal/config"
)

// testConfig returns a suite config with timeouts shrunk so polling paths
// resolve in milliseconds.
func testConfig() *config.SuiteConfig {
	return &config.SuiteConfig{
		BaseURL:           "https://www.bluebella.com",
		DefaultTimeout:    200 * time.Millisecond,
		ShortTimeout:      50 * time.Millisecond,
		LongTimeout:       300 * time.Millisecond,
		ProbeTimeout:      30 * time.Millisecond,
		PollInterval:      5 * time.Millisecond,
		ScrollStepPx:      400,
		MaxScrollAttempts: 10,
		BottomProximityPx: 500,
	}
}

// finderFor builds a FindFunc serving canned elements keyed by selector.
func finderFor(m map[string][]browser.Element) func(browser.Locator) ([]browser.Element, error) {
	return func(loc browser.Locator) ([]browser.Element, error) {
		return m[loc.Selector], nil
	}
}
