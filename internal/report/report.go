// Package report collects per-record outcomes and failure artifacts for one
// suite run.
package report

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/Anubrata-Das/bluebella-e2e/internal/browser"
	"github.com/google/uuid"
)

// Result is the outcome of one scenario run.
type Result struct {
	Record     string        `json:"record"`
	Status     string        `json:"status"`
	Error      string        `json:"error,omitempty"`
	Screenshot string        `json:"screenshot,omitempty"`
	Duration   time.Duration `json:"duration_ns"`
}

// Summary is the JSON artifact written at the end of a run.
type Summary struct {
	RunID      string    `json:"run_id"`
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`
	Passed     int       `json:"passed"`
	Failed     int       `json:"failed"`
	Results    []Result  `json:"results"`
}

// Reporter accumulates results for a run and captures screenshots on
// failure. Safe for concurrent use by parallel record runs.
type Reporter struct {
	runID          string
	screenshotsDir string
	reportsDir     string
	startedAt      time.Time

	mu      sync.Mutex
	results []Result
}

// New creates a Reporter with a fresh run id, ensuring both output
// directories exist.
func New(screenshotsDir, reportsDir string) (*Reporter, error) {
	for _, dir := range []string{screenshotsDir, reportsDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create output directory %s: %w", dir, err)
		}
	}
	return &Reporter{
		runID:          uuid.NewString(),
		screenshotsDir: screenshotsDir,
		reportsDir:     reportsDir,
		startedAt:      time.Now(),
	}, nil
}

// RunID identifies this run in artifacts and logs.
func (r *Reporter) RunID() string {
	return r.runID
}

// CaptureScreenshot saves the driver's current viewport, keyed by test
// identifier and timestamp. A capture failure is logged, never propagated:
// the artifact must not mask the original test failure.
func (r *Reporter) CaptureScreenshot(testID string, driver browser.Driver) string {
	png, err := driver.Screenshot()
	if err != nil {
		log.Printf("Failed to take screenshot for %s: %v", testID, err)
		return ""
	}
	timestamp := time.Now().Format("2006-01-02_15-04-05")
	filename := fmt.Sprintf("%s_%s.png", sanitize(testID), timestamp)
	path := filepath.Join(r.screenshotsDir, filename)
	if err := os.WriteFile(path, png, 0o644); err != nil {
		log.Printf("Failed to save screenshot for %s: %v", testID, err)
		return ""
	}
	log.Printf("Screenshot saved: %s", path)
	return path
}

// Pass records a successful scenario run.
func (r *Reporter) Pass(record string, duration time.Duration) {
	r.add(Result{Record: record, Status: "passed", Duration: duration})
}

// Fail records a failed scenario run with its error and optional
// screenshot path.
func (r *Reporter) Fail(record string, err error, screenshot string, duration time.Duration) {
	r.add(Result{
		Record:     record,
		Status:     "failed",
		Error:      err.Error(),
		Screenshot: screenshot,
		Duration:   duration,
	})
}

func (r *Reporter) add(result Result) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.results = append(r.results, result)
}

// Write dumps the run summary as JSON and returns its path.
func (r *Reporter) Write() (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	summary := Summary{
		RunID:      r.runID,
		StartedAt:  r.startedAt,
		FinishedAt: time.Now(),
		Results:    r.results,
	}
	for _, result := range r.results {
		if result.Status == "passed" {
			summary.Passed++
		} else {
			summary.Failed++
		}
	}

	raw, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode report: %w", err)
	}
	filename := fmt.Sprintf("report_%s_%s.json", r.startedAt.Format("2006-01-02_15-04-05"), r.runID)
	path := filepath.Join(r.reportsDir, filename)
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return "", fmt.Errorf("failed to write report: %w", err)
	}
	return path, nil
}

func sanitize(testID string) string {
	replacer := strings.NewReplacer("::", "_", "/", "_", "\\", "_", " ", "_")
	return replacer.Replace(testID)
}
