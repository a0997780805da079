package pages

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/Anubrata-Das/bluebella-e2e/internal/browser"
	"github.com/Anubrata-Das/bluebella-e2e/internal/config"
	"github.com/Anubrata-Das/bluebella-e2e/internal/wait"
)

// Page carries the shared plumbing every page object needs: the driver, a
// waiter configured with the suite defaults, and the suite config itself.
type Page struct {
	driver browser.Driver
	waiter *wait.Waiter
	cfg    *config.SuiteConfig
}

func newPage(driver browser.Driver, cfg *config.SuiteConfig) Page {
	return Page{
		driver: driver,
		waiter: wait.New(driver, wait.Config{
			Timeout:      cfg.DefaultTimeout,
			PollInterval: cfg.PollInterval,
		}),
		cfg: cfg,
	}
}

// Waiter exposes the page's waiter for callers composing their own waits.
func (p *Page) Waiter() *wait.Waiter {
	return p.waiter
}

// URL returns the current page URL.
func (p *Page) URL() string {
	return p.driver.URL()
}

// Title returns the current page title.
func (p *Page) Title() (string, error) {
	return p.driver.Title()
}

// NavigateTo loads url and waits for the document to finish loading.
func (p *Page) NavigateTo(url string) error {
	log.Printf("Navigating to: %s", url)
	if err := p.driver.Navigate(url); err != nil {
		return err
	}
	p.waitForLoad()
	return nil
}

// waitForLoad polls document.readyState until the page reports complete.
// A timeout here is logged, not fatal: some pages never settle but are
// still usable.
func (p *Page) waitForLoad() {
	deadline := time.Now().Add(p.cfg.DefaultTimeout)
	for {
		state, err := p.driver.Evaluate("document.readyState")
		if err == nil && state == "complete" {
			return
		}
		if !time.Now().Before(deadline) {
			log.Printf("Page load timeout, readyState=%v", state)
			return
		}
		time.Sleep(p.cfg.PollInterval)
	}
}

// Click waits for the locator to be clickable, then clicks it.
func (p *Page) Click(loc browser.Locator, override ...time.Duration) error {
	el, err := p.waiter.ForClickable(loc, override...)
	if err != nil {
		return err
	}
	return el.Click()
}

// Fill waits for the locator to be visible, then replaces its content.
func (p *Page) Fill(loc browser.Locator, text string, override ...time.Duration) error {
	el, err := p.waiter.ForVisible(loc, override...)
	if err != nil {
		return err
	}
	return el.Fill(text)
}

// Text waits for the locator to be visible and returns its text.
func (p *Page) Text(loc browser.Locator, override ...time.Duration) (string, error) {
	el, err := p.waiter.ForVisible(loc, override...)
	if err != nil {
		return "", err
	}
	return el.Text()
}

// IsVisible is a short, non-throwing visibility probe for optional UI.
func (p *Page) IsVisible(loc browser.Locator, timeout time.Duration) bool {
	return p.waiter.IsVisible(loc, timeout)
}

// ScrollTo waits for the locator to be present and scrolls it into view.
func (p *Page) ScrollTo(loc browser.Locator, override ...time.Duration) error {
	el, err := p.waiter.ForPresent(loc, override...)
	if err != nil {
		return err
	}
	return el.ScrollIntoView()
}

// scrollToY scrolls the window to an absolute vertical offset.
func (p *Page) scrollToY(y int) {
	if _, err := p.driver.Evaluate(fmt.Sprintf("window.scrollTo(0, %d);", y)); err != nil {
		log.Printf("Scroll to %d failed: %v", y, err)
	}
}

// pageHeight returns document.body.scrollHeight, or 0 when unreadable.
func (p *Page) pageHeight() int {
	v, err := p.driver.Evaluate("document.body.scrollHeight")
	if err != nil {
		return 0
	}
	return toInt(v)
}

// scrollOffset returns the current vertical scroll position.
func (p *Page) scrollOffset() int {
	v, err := p.driver.Evaluate("window.pageYOffset || window.scrollY || 0")
	if err != nil {
		return 0
	}
	return toInt(v)
}

// toInt normalizes the numeric types a JS evaluation can come back as.
func toInt(v interface{}) int {
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		return int(n)
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0
		}
		return int(f)
	default:
		return 0
	}
}
