// Package wait implements the element wait policy: bounded polling of the
// browser driver until a named condition holds.
package wait

import (
	"fmt"
	"strings"
	"time"

	"github.com/Anubrata-Das/bluebella-e2e/internal/browser"
)

const defaultPollInterval = 500 * time.Millisecond

// Config holds the polling parameters for a Waiter.
type Config struct {
	Timeout      time.Duration
	PollInterval time.Duration
}

// TimeoutError reports a condition that never held within its timeout. It
// carries the locator and the condition name; callers that need a
// non-throwing check convert it to a boolean.
type TimeoutError struct {
	Locator   browser.Locator
	Condition string
	Timeout   time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("condition %q not met within %s for %s", e.Condition, e.Timeout, e.Locator)
}

// Waiter polls a driver for element state. Conditions are ordered by
// strictness: present (in DOM) < visible (rendered) < clickable (visible,
// enabled, not obscured). Using too strict a condition yields false
// negatives; too loose a one yields clicks on hidden elements.
type Waiter struct {
	driver browser.Driver
	cfg    Config
}

// New returns a Waiter using cfg for defaults. Zero fields fall back to
// 10s timeout and 500ms polling.
func New(driver browser.Driver, cfg Config) *Waiter {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = defaultPollInterval
	}
	return &Waiter{driver: driver, cfg: cfg}
}

// poll evaluates check immediately, then at every poll interval, until it
// holds or the deadline passes. Errors from check are treated as "not yet":
// a stale handle or mid-mutation DOM read is never fatal to the wait.
func (w *Waiter) poll(condition string, loc browser.Locator, timeout time.Duration, check func() (bool, error)) error {
	if timeout <= 0 {
		timeout = w.cfg.Timeout
	}
	deadline := time.Now().Add(timeout)
	for {
		ok, err := check()
		if err == nil && ok {
			return nil
		}
		if !time.Now().Before(deadline) {
			return &TimeoutError{Locator: loc, Condition: condition, Timeout: timeout}
		}
		time.Sleep(w.cfg.PollInterval)
	}
}

// ForPresent waits until the locator matches at least one element in the
// DOM, rendered or not.
func (w *Waiter) ForPresent(loc browser.Locator, override ...time.Duration) (browser.Element, error) {
	var found browser.Element
	err := w.poll("present", loc, first(override), func() (bool, error) {
		elements, err := w.driver.Find(loc)
		if err != nil || len(elements) == 0 {
			return false, err
		}
		found = elements[0]
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return found, nil
}

// ForVisible waits until the first matching element is rendered.
func (w *Waiter) ForVisible(loc browser.Locator, override ...time.Duration) (browser.Element, error) {
	var found browser.Element
	err := w.poll("visible", loc, first(override), func() (bool, error) {
		elements, err := w.driver.Find(loc)
		if err != nil {
			return false, err
		}
		for _, el := range elements {
			visible, err := el.IsVisible()
			if err != nil {
				continue
			}
			if visible {
				found = el
				return true, nil
			}
		}
		return false, nil
	})
	if err != nil {
		return nil, err
	}
	return found, nil
}

// ForClickable waits until the first matching element is visible and
// enabled.
func (w *Waiter) ForClickable(loc browser.Locator, override ...time.Duration) (browser.Element, error) {
	var found browser.Element
	err := w.poll("clickable", loc, first(override), func() (bool, error) {
		elements, err := w.driver.Find(loc)
		if err != nil {
			return false, err
		}
		for _, el := range elements {
			visible, err := el.IsVisible()
			if err != nil || !visible {
				continue
			}
			enabled, err := el.IsEnabled()
			if err != nil || !enabled {
				continue
			}
			found = el
			return true, nil
		}
		return false, nil
	})
	if err != nil {
		return nil, err
	}
	return found, nil
}

// ForHidden waits until the locator matches nothing visible: either no
// elements at all, or none rendered.
func (w *Waiter) ForHidden(loc browser.Locator, override ...time.Duration) error {
	return w.poll("hidden", loc, first(override), func() (bool, error) {
		elements, err := w.driver.Find(loc)
		if err != nil {
			return false, err
		}
		for _, el := range elements {
			visible, err := el.IsVisible()
			if err != nil {
				continue
			}
			if visible {
				return false, nil
			}
		}
		return true, nil
	})
}

// ForText waits until the first matching element's text contains substr.
func (w *Waiter) ForText(loc browser.Locator, substr string, override ...time.Duration) (browser.Element, error) {
	var found browser.Element
	err := w.poll("text-contains", loc, first(override), func() (bool, error) {
		elements, err := w.driver.Find(loc)
		if err != nil || len(elements) == 0 {
			return false, err
		}
		text, err := elements[0].Text()
		if err != nil {
			return false, nil
		}
		if strings.Contains(text, substr) {
			found = elements[0]
			return true, nil
		}
		return false, nil
	})
	if err != nil {
		return nil, err
	}
	return found, nil
}

// ForCount waits until at least min elements match the locator and returns
// them all.
func (w *Waiter) ForCount(loc browser.Locator, min int, override ...time.Duration) ([]browser.Element, error) {
	if min < 1 {
		min = 1
	}
	var found []browser.Element
	err := w.poll(fmt.Sprintf("count>=%d", min), loc, first(override), func() (bool, error) {
		elements, err := w.driver.Find(loc)
		if err != nil || len(elements) < min {
			return false, err
		}
		found = elements
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return found, nil
}

// ForURLContains waits until the page URL contains substr.
func (w *Waiter) ForURLContains(substr string, override ...time.Duration) error {
	return w.poll("url-contains", browser.Locator{}, first(override), func() (bool, error) {
		return strings.Contains(w.driver.URL(), substr), nil
	})
}

// IsVisible is the non-throwing probe for optional UI: a short-timeout
// visibility wait converted to a boolean.
func (w *Waiter) IsVisible(loc browser.Locator, timeout time.Duration) bool {
	_, err := w.ForVisible(loc, timeout)
	return err == nil
}

// IsPresent is the non-throwing presence probe.
func (w *Waiter) IsPresent(loc browser.Locator, timeout time.Duration) bool {
	_, err := w.ForPresent(loc, timeout)
	return err == nil
}

func first(override []time.Duration) time.Duration {
	if len(override) > 0 {
		return override[0]
	}
	return 0
}
