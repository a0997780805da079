package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Anubrata-Das/bluebella-e2e/internal/browser"
)

// SuiteConfig holds every process-wide setting for a suite run. It is
// constructed once at startup and passed to collaborators explicitly; there
// is no global instance.
type SuiteConfig struct {
	BaseURL string

	DefaultTimeout time.Duration
	ShortTimeout   time.Duration
	LongTimeout    time.Duration
	ImplicitWait   time.Duration
	PollInterval   time.Duration
	// ProbeTimeout bounds existence checks on optional UI (popups, size
	// options); those probes degrade to a no-op instead of failing.
	ProbeTimeout time.Duration

	Browser     string
	Headless    bool
	BrowserArgs []string

	TestDataPath   string
	ScreenshotsDir string
	ReportsDir     string
	LogsDir        string

	// Product-search tuning. The defaults mirror the observed page layout
	// but are deliberately overridable; they are heuristics, not truths.
	ScrollStepPx      int
	MaxScrollAttempts int
	BottomProximityPx int
}

// LoadSuiteConfig loads suite configuration from environment variables.
// getenv is injected so tests can supply their own environment.
func LoadSuiteConfig(getenv func(string) string) (*SuiteConfig, error) {
	cfg := &SuiteConfig{
		BaseURL:        envOr(getenv, "BASE_URL", "https://www.bluebella.com"),
		Browser:        envOr(getenv, "BROWSER", "chromium"),
		TestDataPath:   envOr(getenv, "TEST_DATA_PATH", "testdata/bluebella.json"),
		ScreenshotsDir: envOr(getenv, "SCREENSHOTS_DIR", "output/screenshots"),
		ReportsDir:     envOr(getenv, "REPORTS_DIR", "output/reports"),
		LogsDir:        envOr(getenv, "LOGS_DIR", "output/logs"),
	}

	var err error
	if cfg.DefaultTimeout, err = envSeconds(getenv, "DEFAULT_TIMEOUT", 10); err != nil {
		return nil, err
	}
	if cfg.ShortTimeout, err = envSeconds(getenv, "SHORT_TIMEOUT", 5); err != nil {
		return nil, err
	}
	if cfg.LongTimeout, err = envSeconds(getenv, "LONG_TIMEOUT", 20); err != nil {
		return nil, err
	}
	if cfg.ImplicitWait, err = envSeconds(getenv, "IMPLICIT_WAIT", 5); err != nil {
		return nil, err
	}
	if cfg.ProbeTimeout, err = envSeconds(getenv, "PROBE_TIMEOUT", 3); err != nil {
		return nil, err
	}
	pollMs, err := envInt(getenv, "POLL_INTERVAL_MS", 500)
	if err != nil {
		return nil, err
	}
	cfg.PollInterval = time.Duration(pollMs) * time.Millisecond

	if cfg.Headless, err = envBool(getenv, "HEADLESS", false); err != nil {
		return nil, err
	}
	if args := getenv("BROWSER_ARGS"); args != "" {
		for _, arg := range strings.Split(args, ",") {
			if arg = strings.TrimSpace(arg); arg != "" {
				cfg.BrowserArgs = append(cfg.BrowserArgs, arg)
			}
		}
	}

	if cfg.ScrollStepPx, err = envInt(getenv, "SCROLL_STEP_PX", 400); err != nil {
		return nil, err
	}
	if cfg.MaxScrollAttempts, err = envInt(getenv, "MAX_SCROLL_ATTEMPTS", 100); err != nil {
		return nil, err
	}
	if cfg.BottomProximityPx, err = envInt(getenv, "BOTTOM_PROXIMITY_PX", 500); err != nil {
		return nil, err
	}

	if err := validateBrowser(cfg.Browser); err != nil {
		return nil, err
	}
	return cfg, nil
}

func validateBrowser(name string) error {
	for _, supported := range browser.SupportedBrowsers {
		if name == supported {
			return nil
		}
	}
	return &browser.UnsupportedBrowserError{Name: name}
}

func envOr(getenv func(string) string, key, fallback string) string {
	if v := getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(getenv func(string) string, key string, fallback int) (int, error) {
	v := getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func envSeconds(getenv func(string) string, key string, fallback int) (time.Duration, error) {
	n, err := envInt(getenv, key, fallback)
	if err != nil {
		return 0, err
	}
	return time.Duration(n) * time.Second, nil
}

func envBool(getenv func(string) string, key string, fallback bool) (bool, error) {
	v := getenv(key)
	if v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("invalid %s: %w", key, err)
	}
	return b, nil
}
