package browser

import (
	"fmt"
	"log"
	"time"

	"github.com/playwright-community/playwright-go"
)

// SupportedBrowsers lists the browser choices Launch accepts.
var SupportedBrowsers = []string{"chromium", "firefox", "webkit"}

// LaunchConfig describes how to start the browser.
type LaunchConfig struct {
	Browser  string
	Headless bool
	Args     []string
	// ActionTimeout bounds individual element actions (click, fill). The
	// wait layer owns polling, so per-action auto-waiting stays short.
	ActionTimeout time.Duration
}

// Session owns a running Playwright instance and a launched browser. One
// session can hand out multiple independent drivers (one page each).
type Session struct {
	pw      *playwright.Playwright
	browser playwright.Browser
	timeout float64
}

// Launch starts Playwright and the configured browser. An unknown browser
// name fails with UnsupportedBrowserError before anything is started.
func Launch(cfg LaunchConfig) (*Session, error) {
	var pick func(pw *playwright.Playwright) playwright.BrowserType
	switch cfg.Browser {
	case "chromium":
		pick = func(pw *playwright.Playwright) playwright.BrowserType { return pw.Chromium }
	case "firefox":
		pick = func(pw *playwright.Playwright) playwright.BrowserType { return pw.Firefox }
	case "webkit":
		pick = func(pw *playwright.Playwright) playwright.BrowserType { return pw.WebKit }
	default:
		return nil, &UnsupportedBrowserError{Name: cfg.Browser}
	}

	pw, err := playwright.Run()
	if err != nil {
		return nil, fmt.Errorf("failed to start playwright: %w", err)
	}

	log.Printf("Launching %s (headless=%v)", cfg.Browser, cfg.Headless)
	b, err := pick(pw).Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(cfg.Headless),
		Args:     cfg.Args,
	})
	if err != nil {
		pw.Stop()
		return nil, fmt.Errorf("failed to launch %s: %w", cfg.Browser, err)
	}

	timeout := cfg.ActionTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Session{pw: pw, browser: b, timeout: float64(timeout.Milliseconds())}, nil
}

// Install downloads the Playwright browser bundles. Exposed for the CLI
// install command.
func Install() error {
	return playwright.Install()
}

// NewDriver opens a fresh page in the launched browser.
func (s *Session) NewDriver() (Driver, error) {
	page, err := s.browser.NewPage()
	if err != nil {
		return nil, fmt.Errorf("failed to open page: %w", err)
	}
	return &pwDriver{page: page, timeout: s.timeout}, nil
}

// Close shuts down the browser and the Playwright instance.
func (s *Session) Close() error {
	if err := s.browser.Close(); err != nil {
		s.pw.Stop()
		return fmt.Errorf("failed to close browser: %w", err)
	}
	return s.pw.Stop()
}

type pwDriver struct {
	page    playwright.Page
	timeout float64
}

func (d *pwDriver) Navigate(url string) error {
	if _, err := d.page.Goto(url, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateLoad,
	}); err != nil {
		return fmt.Errorf("failed to navigate to %s: %w", url, err)
	}
	return nil
}

func (d *pwDriver) URL() string {
	return d.page.URL()
}

func (d *pwDriver) Title() (string, error) {
	return d.page.Title()
}

func (d *pwDriver) Find(loc Locator) ([]Element, error) {
	all, err := d.page.Locator(loc.Query()).All()
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", loc, err)
	}
	elements := make([]Element, 0, len(all))
	for _, l := range all {
		elements = append(elements, &pwElement{loc: l, timeout: d.timeout})
	}
	return elements, nil
}

func (d *pwDriver) Evaluate(script string) (interface{}, error) {
	return d.page.Evaluate(script)
}

func (d *pwDriver) Screenshot() ([]byte, error) {
	return d.page.Screenshot()
}

func (d *pwDriver) Close() error {
	return d.page.Close()
}

type pwElement struct {
	loc     playwright.Locator
	timeout float64
}

func (e *pwElement) Text() (string, error) {
	return e.loc.TextContent(playwright.LocatorTextContentOptions{
		Timeout: playwright.Float(e.timeout),
	})
}

func (e *pwElement) Click() error {
	return e.loc.Click(playwright.LocatorClickOptions{
		Timeout: playwright.Float(e.timeout),
	})
}

func (e *pwElement) Fill(text string) error {
	return e.loc.Fill(text, playwright.LocatorFillOptions{
		Timeout: playwright.Float(e.timeout),
	})
}

func (e *pwElement) Hover() error {
	return e.loc.Hover(playwright.LocatorHoverOptions{
		Timeout: playwright.Float(e.timeout),
	})
}

func (e *pwElement) IsVisible() (bool, error) {
	return e.loc.IsVisible()
}

func (e *pwElement) IsEnabled() (bool, error) {
	return e.loc.IsEnabled()
}

func (e *pwElement) IsChecked() (bool, error) {
	return e.loc.IsChecked()
}

func (e *pwElement) Check() error {
	return e.loc.Check(playwright.LocatorCheckOptions{
		Timeout: playwright.Float(e.timeout),
	})
}

func (e *pwElement) ScrollIntoView() error {
	return e.loc.ScrollIntoViewIfNeeded(playwright.LocatorScrollIntoViewIfNeededOptions{
		Timeout: playwright.Float(e.timeout),
	})
}

func (e *pwElement) Find(loc Locator) (Element, error) {
	child := e.loc.Locator(loc.Query())
	count, err := child.Count()
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", loc, err)
	}
	if count == 0 {
		return nil, &ElementNotFoundError{Locator: loc}
	}
	return &pwElement{loc: child.First(), timeout: e.timeout}, nil
}

func (e *pwElement) SelectByValue(value string) error {
	_, err := e.loc.SelectOption(playwright.SelectOptionValues{
		Values: &[]string{value},
	}, playwright.LocatorSelectOptionOptions{Timeout: playwright.Float(e.timeout)})
	return err
}

func (e *pwElement) SelectByText(text string) error {
	_, err := e.loc.SelectOption(playwright.SelectOptionValues{
		Labels: &[]string{text},
	}, playwright.LocatorSelectOptionOptions{Timeout: playwright.Float(e.timeout)})
	return err
}
