package pages

import (
	"fmt"
	"log"

	"github.com/Anubrata-Das/bluebella-e2e/internal/browser"
	"github.com/Anubrata-Das/bluebella-e2e/internal/config"
)

// ProductPage drives the product detail page: size options, the cart
// drawer, and the "Complete the Look" upsell carousel.
type ProductPage struct {
	Page
}

func NewProductPage(driver browser.Driver, cfg *config.SuiteConfig) *ProductPage {
	return &ProductPage{Page: newPage(driver, cfg)}
}

// SelectSizeIfAvailable clicks the given size option when it exists. Not
// every product has sizes, so absence degrades to false instead of failing
// the flow.
func (p *ProductPage) SelectSizeIfAvailable(size string) bool {
	loc := browser.XPath(fmt.Sprintf(
		"//div[contains(@class,'%s')][normalize-space(text())='%s']",
		sizeOptionClass, size,
	))
	return p.clickSizeOption(loc, size)
}

// SelectQuickAddSizeIfAvailable is SelectSizeIfAvailable scoped to the
// quick-add container in the cart drawer.
func (p *ProductPage) SelectQuickAddSizeIfAvailable(size string) bool {
	loc := browser.XPath(fmt.Sprintf(
		"//div[@class='product-quick-add__container']//div[contains(@class,'%s')][normalize-space(text())='%s']",
		sizeOptionClass, size,
	))
	return p.clickSizeOption(loc, size)
}

func (p *ProductPage) clickSizeOption(loc browser.Locator, size string) bool {
	if !p.IsVisible(loc, p.cfg.ProbeTimeout) {
		log.Printf("Size %q not available", size)
		return false
	}
	if err := p.Click(loc); err != nil {
		log.Printf("Size %q visible but not clickable: %v", size, err)
		return false
	}
	log.Printf("Selected size: %s", size)
	return true
}

// AddToCart clicks the add-to-cart button and waits for the cart drawer.
func (p *ProductPage) AddToCart() error {
	log.Printf("Adding product to cart")
	if err := p.Click(addToCartButton); err != nil {
		return err
	}
	_, err := p.waiter.ForVisible(cartDrawerCloseButton)
	return err
}

// CloseCartDrawer closes the cart drawer when it is open.
func (p *ProductPage) CloseCartDrawer() error {
	if !p.IsVisible(cartDrawerCloseButton, p.cfg.ProbeTimeout) {
		return nil
	}
	log.Printf("Closing cart drawer")
	if err := p.Click(cartDrawerCloseButton); err != nil {
		return err
	}
	if err := p.waiter.ForHidden(cartDrawer, p.cfg.ShortTimeout); err != nil {
		log.Printf("Cart drawer may still be visible: %v", err)
	}
	return nil
}

// AddToCartAndCloseDrawer is the common add-then-continue-shopping flow.
func (p *ProductPage) AddToCartAndCloseDrawer() error {
	if err := p.AddToCart(); err != nil {
		return err
	}
	return p.CloseCartDrawer()
}

// ClickLastCompleteTheLookItem adds the last item of the "Complete the
// Look" carousel to the cart. The carousel is not present on every product,
// so callers treat failure as tolerable.
func (p *ProductPage) ClickLastCompleteTheLookItem() error {
	log.Printf("Clicking last item in Complete the Look")
	if err := p.ScrollTo(completeTheLookSection); err != nil {
		return err
	}
	items, err := p.waiter.ForCount(completeTheLookItems, 1)
	if err != nil {
		return err
	}
	last := items[len(items)-1]
	if err := last.ScrollIntoView(); err != nil {
		log.Printf("Scroll into view failed: %v", err)
	}
	addButton, err := last.Find(completeTheLookAddBtn)
	if err != nil {
		return fmt.Errorf("carousel item has no add button: %w", err)
	}
	return addButton.Click()
}

// ClickQuickAddToCart clicks the quick-add button and waits for the drawer
// checkout button, which the drawer only shows once the item landed.
func (p *ProductPage) ClickQuickAddToCart() error {
	log.Printf("Clicking quick add to cart button")
	if err := p.Click(quickAddToCartButton); err != nil {
		return err
	}
	_, err := p.waiter.ForVisible(checkoutButton, p.cfg.LongTimeout)
	return err
}

// ClickCheckoutButton clicks the checkout link in the cart drawer.
func (p *ProductPage) ClickCheckoutButton() error {
	log.Printf("Clicking checkout button")
	return p.Click(checkoutButton)
}

// ProceedToCheckout quick-adds the current item and continues to checkout.
func (p *ProductPage) ProceedToCheckout() error {
	if err := p.ClickQuickAddToCart(); err != nil {
		return err
	}
	return p.ClickCheckoutButton()
}
