package pages

import (
	"fmt"
	"log"
	"strings"

	"github.com/Anubrata-Das/bluebella-e2e/internal/browser"
	"github.com/Anubrata-Das/bluebella-e2e/internal/config"
)

// HomePage drives the storefront landing page: the marketing popup and the
// hover-activated main navigation.
type HomePage struct {
	Page
}

func NewHomePage(driver browser.Driver, cfg *config.SuiteConfig) *HomePage {
	return &HomePage{Page: newPage(driver, cfg)}
}

// ClosePopup dismisses the Klaviyo marketing popup when present. The popup
// is environment-dependent, so absence is not a failure.
func (h *HomePage) ClosePopup() bool {
	if !h.IsVisible(klaviyoCloseButton, h.cfg.ProbeTimeout) {
		log.Printf("Klaviyo popup not present")
		return false
	}
	log.Printf("Closing Klaviyo popup")
	if err := h.Click(klaviyoCloseButton); err != nil {
		log.Printf("Klaviyo popup close failed: %v", err)
		return false
	}
	return true
}

// HoverToMenu hovers the named main menu entry and clicks the submenu link
// beneath it.
func (h *HomePage) HoverToMenu(menuName, subMenuName string) error {
	log.Printf("Hovering to menu: %s -> %s", menuName, subMenuName)

	menuItems, err := h.waiter.ForCount(mainMenuItems, 1)
	if err != nil {
		return err
	}

	subMenuLocator := browser.XPath(fmt.Sprintf(
		"./ancestor::li[@js-site-header='siteNavItem']//a[normalize-space()='%s']",
		subMenuName,
	))
	for _, item := range menuItems {
		text, err := item.Text()
		if err != nil {
			// Handle went stale while iterating; skip it.
			continue
		}
		if strings.TrimSpace(text) != menuName {
			continue
		}
		if err := item.Hover(); err != nil {
			return fmt.Errorf("failed to hover menu %q: %w", menuName, err)
		}
		subMenu, err := item.Find(subMenuLocator)
		if err != nil {
			return fmt.Errorf("submenu %q not found under %q: %w", subMenuName, menuName, err)
		}
		return subMenu.Click()
	}
	return fmt.Errorf("menu item %q: %w", menuName, &browser.ElementNotFoundError{Locator: mainMenuItems})
}
