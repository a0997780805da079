package browser

import "fmt"

// Strategy identifies how a selector string should be interpreted.
type Strategy string

const (
	ByCSS   Strategy = "css"
	ByXPath Strategy = "xpath"
)

// Locator identifies zero or more DOM nodes as a (strategy, selector) pair.
// Locators are plain values: constructed once per page object and never
// mutated.
type Locator struct {
	Strategy Strategy
	Selector string
}

// CSS returns a CSS selector locator.
func CSS(selector string) Locator {
	return Locator{Strategy: ByCSS, Selector: selector}
}

// XPath returns an XPath locator.
func XPath(selector string) Locator {
	return Locator{Strategy: ByXPath, Selector: selector}
}

// Query returns the selector in the engine-prefixed form the driver expects.
func (l Locator) Query() string {
	if l.Strategy == ByXPath {
		return "xpath=" + l.Selector
	}
	return l.Selector
}

func (l Locator) String() string {
	return fmt.Sprintf("(%s, %s)", l.Strategy, l.Selector)
}
