// Package browsertest provides a scriptable fake Driver for unit tests, so
// wait and page-object logic can be exercised without a real browser.
package browsertest

import (
	"sync"

	"github.com/Anubrata-Das/bluebella-e2e/internal/browser"
)

// Driver is a fake browser.Driver. Behavior is scripted through the
// function fields; unset fields fall back to inert defaults. All calls are
// recorded for assertions.
type Driver struct {
	mu sync.Mutex

	CurrentURL string
	PageTitle  string

	NavigateFunc   func(url string) error
	FindFunc       func(loc browser.Locator) ([]browser.Element, error)
	EvaluateFunc   func(script string) (interface{}, error)
	ScreenshotFunc func() ([]byte, error)

	Navigations []string
	Finds       []browser.Locator
	Scripts     []string
	Closed      bool
}

var _ browser.Driver = (*Driver)(nil)

func (d *Driver) Navigate(url string) error {
	d.mu.Lock()
	d.Navigations = append(d.Navigations, url)
	d.mu.Unlock()
	if d.NavigateFunc != nil {
		return d.NavigateFunc(url)
	}
	d.CurrentURL = url
	return nil
}

func (d *Driver) URL() string {
	return d.CurrentURL
}

func (d *Driver) Title() (string, error) {
	return d.PageTitle, nil
}

func (d *Driver) Find(loc browser.Locator) ([]browser.Element, error) {
	d.mu.Lock()
	d.Finds = append(d.Finds, loc)
	d.mu.Unlock()
	if d.FindFunc != nil {
		return d.FindFunc(loc)
	}
	return nil, nil
}

func (d *Driver) Evaluate(script string) (interface{}, error) {
	d.mu.Lock()
	d.Scripts = append(d.Scripts, script)
	d.mu.Unlock()
	if d.EvaluateFunc != nil {
		return d.EvaluateFunc(script)
	}
	return nil, nil
}

func (d *Driver) Screenshot() ([]byte, error) {
	if d.ScreenshotFunc != nil {
		return d.ScreenshotFunc()
	}
	return []byte("png"), nil
}

func (d *Driver) Close() error {
	d.Closed = true
	return nil
}

// CallCount returns how many times Find was invoked, across all locators.
func (d *Driver) CallCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.Finds)
}

// Element is a fake browser.Element with scriptable state and errors.
type Element struct {
	TextValue string
	TextErr   error
	Visible   bool
	Enabled   bool
	Checked   bool
	ClickErr  error

	// Children maps child locator selectors to nested fake elements for
	// relative Find calls.
	Children map[string]*Element

	Clicks         int
	Filled         []string
	Hovers         int
	Scrolled       int
	SelectedValues []string
	SelectedTexts  []string
}

var _ browser.Element = (*Element)(nil)

// NewElement returns a visible, enabled element with the given text.
func NewElement(text string) *Element {
	return &Element{TextValue: text, Visible: true, Enabled: true}
}

func (e *Element) Text() (string, error) {
	if e.TextErr != nil {
		return "", e.TextErr
	}
	return e.TextValue, nil
}

func (e *Element) Click() error {
	e.Clicks++
	return e.ClickErr
}

func (e *Element) Fill(text string) error {
	e.Filled = append(e.Filled, text)
	return nil
}

func (e *Element) Hover() error {
	e.Hovers++
	return nil
}

func (e *Element) IsVisible() (bool, error) {
	return e.Visible, nil
}

func (e *Element) IsEnabled() (bool, error) {
	return e.Enabled, nil
}

func (e *Element) IsChecked() (bool, error) {
	return e.Checked, nil
}

func (e *Element) Check() error {
	e.Checked = true
	return nil
}

func (e *Element) ScrollIntoView() error {
	e.Scrolled++
	return nil
}

func (e *Element) Find(loc browser.Locator) (browser.Element, error) {
	if child, ok := e.Children[loc.Selector]; ok {
		return child, nil
	}
	return nil, &browser.ElementNotFoundError{Locator: loc}
}

func (e *Element) SelectByValue(value string) error {
	e.SelectedValues = append(e.SelectedValues, value)
	return nil
}

func (e *Element) SelectByText(text string) error {
	e.SelectedTexts = append(e.SelectedTexts, text)
	return nil
}
