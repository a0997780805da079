package pages

import (
	"fmt"
	"log"
	"strings"

	"github.com/Anubrata-Das/bluebella-e2e/internal/browser"
	"github.com/Anubrata-Das/bluebella-e2e/internal/config"
)

// CheckoutForm holds the shipping and contact fields for one checkout.
type CheckoutForm struct {
	Email            string
	LastName         string
	FirstName        string
	PostalCode       string
	Phone            string
	PhoneCountryCode string
	Country          string
	PostalSearchText string
}

// CheckoutPage drives the checkout form and payment selection.
type CheckoutPage struct {
	Page
}

func NewCheckoutPage(driver browser.Driver, cfg *config.SuiteConfig) *CheckoutPage {
	return &CheckoutPage{Page: newPage(driver, cfg)}
}

// FillForm populates the whole checkout form. Optional widgets (marketing
// opt-in, postal code autocomplete) are probed softly; everything else
// propagates failures.
func (c *CheckoutPage) FillForm(form CheckoutForm) error {
	log.Printf("Filling checkout form")
	if err := c.Fill(checkoutEmailInput, form.Email); err != nil {
		return err
	}
	c.CheckMarketingOptIn()
	if err := c.SelectCountry(form.Country); err != nil {
		return err
	}
	if err := c.Fill(checkoutLastNameInput, form.LastName); err != nil {
		return err
	}
	if err := c.Fill(checkoutFirstNameInput, form.FirstName); err != nil {
		return err
	}
	if err := c.Fill(checkoutPostalCodeInput, form.PostalCode); err != nil {
		return err
	}
	c.SelectPostalCodeOption(form.PostalSearchText)
	if err := c.Fill(checkoutPhoneInput, form.Phone); err != nil {
		return err
	}
	if err := c.SelectPhoneCountryCode(form.PhoneCountryCode); err != nil {
		return err
	}
	log.Printf("Checkout form filled successfully")
	return nil
}

// CheckMarketingOptIn ticks the marketing checkbox when the page shows one.
func (c *CheckoutPage) CheckMarketingOptIn() bool {
	if !c.IsVisible(checkoutMarketingCheckbox, c.cfg.ProbeTimeout) {
		log.Printf("Marketing checkbox not found, skipping")
		return false
	}
	el, err := c.waiter.ForClickable(checkoutMarketingCheckbox)
	if err != nil {
		log.Printf("Marketing checkbox not clickable: %v", err)
		return false
	}
	checked, err := el.IsChecked()
	if err == nil && checked {
		return true
	}
	if err := el.Click(); err != nil {
		log.Printf("Marketing checkbox click failed: %v", err)
		return false
	}
	return true
}

// SelectCountry picks the shipping country by its visible name.
func (c *CheckoutPage) SelectCountry(countryName string) error {
	log.Printf("Selecting country: %s", countryName)
	el, err := c.waiter.ForVisible(checkoutCountryDropdown)
	if err != nil {
		return err
	}
	if err := el.SelectByText(countryName); err != nil {
		return fmt.Errorf("country %q not found in dropdown: %w", countryName, err)
	}
	return nil
}

// SelectPostalCodeOption picks the autocomplete suggestion containing
// searchText. The autocomplete does not appear for every postal code, so
// failure degrades to false.
func (c *CheckoutPage) SelectPostalCodeOption(searchText string) bool {
	options, err := c.waiter.ForCount(checkoutPostalCodeOptions, 1, c.cfg.ShortTimeout)
	if err != nil {
		log.Printf("No postal code options appeared: %v", err)
		return false
	}
	for _, option := range options {
		text, err := option.Text()
		if err != nil {
			continue
		}
		if strings.Contains(text, searchText) {
			log.Printf("Selecting postal code option: %s", strings.TrimSpace(text))
			if err := option.Click(); err != nil {
				log.Printf("Postal code option click failed: %v", err)
				return false
			}
			return true
		}
	}
	log.Printf("No postal code option found containing %q", searchText)
	return false
}

// SelectPhoneCountryCode selects the phone country by its option value.
func (c *CheckoutPage) SelectPhoneCountryCode(code string) error {
	log.Printf("Selecting phone country code: %s", code)
	el, err := c.waiter.ForPresent(checkoutPhoneCountry)
	if err != nil {
		return err
	}
	if err := el.ScrollIntoView(); err != nil {
		log.Printf("Scroll into view failed: %v", err)
	}
	if err := el.SelectByValue(code); err != nil {
		return fmt.Errorf("failed to select phone country code %q: %w", code, err)
	}
	return nil
}

// SelectKlarnaPayment selects Klarna as the payment method. The label sits
// under an overlay on some viewports, so the click goes through JavaScript.
func (c *CheckoutPage) SelectKlarnaPayment() error {
	log.Printf("Selecting Klarna payment method")
	el, err := c.waiter.ForVisible(checkoutKlarnaLabel)
	if err != nil {
		return err
	}
	if err := el.ScrollIntoView(); err != nil {
		log.Printf("Scroll into view failed: %v", err)
	}
	script := fmt.Sprintf(
		`document.evaluate(%q, document, null, XPathResult.FIRST_ORDERED_NODE_TYPE, null).singleNodeValue.click()`,
		checkoutKlarnaLabelXPath,
	)
	if _, err := c.driver.Evaluate(script); err != nil {
		return fmt.Errorf("failed to select Klarna payment: %w", err)
	}
	return nil
}

// ClickPayButton scrolls to and clicks the pay button.
func (c *CheckoutPage) ClickPayButton() error {
	log.Printf("Clicking pay button")
	if err := c.ScrollTo(checkoutPayButton); err != nil {
		return err
	}
	return c.Click(checkoutPayButton)
}

// CompleteWithKlarna selects Klarna and submits the payment.
func (c *CheckoutPage) CompleteWithKlarna() error {
	if err := c.SelectKlarnaPayment(); err != nil {
		return err
	}
	return c.ClickPayButton()
}
