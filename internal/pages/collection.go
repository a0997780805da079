package pages

import (
	"fmt"
	"log"
	"strings"

	"github.com/Anubrata-Das/bluebella-e2e/internal/browser"
	"github.com/Anubrata-Das/bluebella-e2e/internal/config"
)

// ProductNotFoundError reports that a product title was never seen on the
// collection page, including after the final top-rescan.
type ProductNotFoundError struct {
	Name string
}

func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("product %q not found on collection page after scrolling", e.Name)
}

// SearchConfig tunes the incremental product search. The defaults match the
// observed grid layout but are heuristics, not guarantees, so they stay
// configurable.
type SearchConfig struct {
	// ScrollStepPx is the fixed scroll increment that triggers lazy loads.
	ScrollStepPx int
	// MaxAttempts caps scroll iterations so a broken page cannot loop.
	MaxAttempts int
	// BottomProximityPx treats the scan as exhausted once the scroll
	// position is within this distance of the page bottom.
	BottomProximityPx int
}

// CollectionPage drives the product collection grid: sorting and locating
// products on a lazily loading page.
type CollectionPage struct {
	Page
	search SearchConfig
}

func NewCollectionPage(driver browser.Driver, cfg *config.SuiteConfig) *CollectionPage {
	return &CollectionPage{
		Page: newPage(driver, cfg),
		search: SearchConfig{
			ScrollStepPx:      cfg.ScrollStepPx,
			MaxAttempts:       cfg.MaxScrollAttempts,
			BottomProximityPx: cfg.BottomProximityPx,
		},
	}
}

// SortBy opens the sort dropdown and picks the option with the given text,
// then waits for the grid to repopulate.
func (c *CollectionPage) SortBy(sortText string) error {
	log.Printf("Sorting products by: %s", sortText)
	if err := c.Click(sortByButton); err != nil {
		return err
	}
	if _, err := c.waiter.ForClickable(sortingButtons, c.cfg.ShortTimeout); err != nil {
		return err
	}
	option := browser.XPath(fmt.Sprintf(
		"(//div[contains(@class,'collection-filter__sorting')]//button[contains(normalize-space(.),'%s')])[1]",
		sortText,
	))
	if err := c.Click(option); err != nil {
		return err
	}
	// Grid reloads after sorting; wait until products are back.
	_, err := c.waiter.ForCount(productGridItems, 1)
	return err
}

// FindProductByName locates a product tile by exact title on a page that
// loads tiles lazily as the user scrolls. It scrolls a fixed increment at a
// time, re-querying the grid between steps, until the title appears, the
// scan hits the attempt cap, or the scroll position reaches the page
// bottom. On exhaustion one final pass from the top catches tiles whose
// layout shifted during scrolling.
func (c *CollectionPage) FindProductByName(productName string) (browser.Element, error) {
	log.Printf("Searching for product: %s using incremental scrolling", productName)

	scrollPosition := 0
	lastHeight := c.pageHeight()

	for attempt := 0; attempt < c.search.MaxAttempts; attempt++ {
		products, err := c.driver.Find(productGridItems)
		if err != nil {
			return nil, err
		}

		if len(products) == 0 {
			// Nothing realized yet; nudge the page to trigger loading.
			scrollPosition += c.search.ScrollStepPx
			c.scrollToY(scrollPosition)
			c.waiter.IsPresent(productGridItems, c.cfg.ShortTimeout)
			continue
		}

		if match := c.matchProduct(products, productName); match != nil {
			log.Printf("Found matching product %q after %d scrolls", productName, attempt)
			if err := match.ScrollIntoView(); err != nil {
				log.Printf("Scroll into view failed: %v", err)
			}
			return match, nil
		}

		scrollPosition += c.search.ScrollStepPx
		c.scrollToY(scrollPosition)

		// Tolerate slow loads: wait for the tile count to recover to at
		// least its previous value, without demanding growth.
		if _, err := c.waiter.ForCount(productGridItems, len(products), c.cfg.ShortTimeout); err != nil {
			log.Printf("No new products loaded after scroll %d", attempt+1)
		}

		newHeight := c.pageHeight()
		currentScroll := c.scrollOffset()
		if currentScroll+c.search.BottomProximityPx >= newHeight {
			log.Printf("Reached bottom of page (scroll: %d, height: %d)", currentScroll, newHeight)
			break
		}
		if newHeight > lastHeight {
			lastHeight = newHeight
		}
	}

	// Final recheck from the top: layout shifts during lazy loading can hide
	// a tile that is visible again once everything has settled.
	log.Printf("Performing final check by scrolling to top")
	c.scrollToY(0)
	if _, err := c.waiter.ForCount(productGridItems, 1, c.cfg.ShortTimeout); err != nil {
		log.Printf("Grid not stable for final check: %v", err)
	}
	products, err := c.driver.Find(productGridItems)
	if err != nil {
		return nil, err
	}
	if match := c.matchProduct(products, productName); match != nil {
		log.Printf("Found product %q in final check", productName)
		if err := match.ScrollIntoView(); err != nil {
			log.Printf("Scroll into view failed: %v", err)
		}
		return match, nil
	}
	return nil, &ProductNotFoundError{Name: productName}
}

// matchProduct returns the first tile whose title equals productName, in
// DOM order. Tiles whose title cannot be read (stale handle, no title node)
// are skipped, never fatal.
func (c *CollectionPage) matchProduct(products []browser.Element, productName string) browser.Element {
	for _, product := range products {
		title, err := product.Find(productTitle)
		if err != nil {
			continue
		}
		text, err := title.Text()
		if err != nil {
			continue
		}
		if strings.TrimSpace(text) == productName {
			return product
		}
	}
	return nil
}

// FindAndClickProduct locates the product tile and clicks its link. A click
// on a handle gone stale is retried exactly once by re-finding the tile.
func (c *CollectionPage) FindAndClickProduct(productName string) error {
	log.Printf("Finding and clicking product: %s", productName)
	if err := c.clickProductAnchor(productName); err != nil {
		log.Printf("Product click failed (%v), retrying once", err)
		if _, ok := err.(*ProductNotFoundError); ok {
			return err
		}
		return c.clickProductAnchor(productName)
	}
	return nil
}

func (c *CollectionPage) clickProductAnchor(productName string) error {
	product, err := c.FindProductByName(productName)
	if err != nil {
		return err
	}
	anchor, err := product.Find(productAnchor)
	if err != nil {
		return fmt.Errorf("product %q has no link: %w", productName, err)
	}
	if err := anchor.ScrollIntoView(); err != nil {
		log.Printf("Scroll into view failed: %v", err)
	}
	return anchor.Click()
}
