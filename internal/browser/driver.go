package browser

import "fmt"

// Driver is the capability interface page objects and wait utilities depend
// on. Implementations wrap a real browser session; tests substitute a fake.
type Driver interface {
	// Navigate loads the given URL and returns once the navigation commits.
	Navigate(url string) error
	// URL returns the current page URL.
	URL() string
	// Title returns the current page title.
	Title() (string, error)
	// Find returns the elements currently matching the locator. An empty
	// slice is not an error.
	Find(loc Locator) ([]Element, error)
	// Evaluate runs a JavaScript expression in the page and returns its
	// result.
	Evaluate(script string) (interface{}, error)
	// Screenshot captures the current viewport as PNG bytes.
	Screenshot() ([]byte, error)
	// Close releases the underlying page/session.
	Close() error
}

// Element is a handle to a single DOM node. Handles are short-lived: a DOM
// mutation invalidates them, and any method may return an error afterwards.
// Callers re-query after any DOM-mutating action instead of caching handles.
type Element interface {
	Text() (string, error)
	Click() error
	Fill(text string) error
	Hover() error
	IsVisible() (bool, error)
	IsEnabled() (bool, error)
	IsChecked() (bool, error)
	Check() error
	ScrollIntoView() error
	// Find resolves a locator relative to this element.
	Find(loc Locator) (Element, error)
	SelectByValue(value string) error
	SelectByText(text string) error
}

// UnsupportedBrowserError reports a browser choice outside the supported
// set. It is fatal at startup.
type UnsupportedBrowserError struct {
	Name string
}

func (e *UnsupportedBrowserError) Error() string {
	return fmt.Sprintf("unsupported browser %q (supported: %v)", e.Name, SupportedBrowsers)
}

// ElementNotFoundError reports that a locator matched nothing where exactly
// one element was required. Terminal for the action that raised it.
type ElementNotFoundError struct {
	Locator Locator
}

func (e *ElementNotFoundError) Error() string {
	return fmt.Sprintf("no element matching %s", e.Locator)
}
