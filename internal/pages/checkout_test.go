package pages

import (
	"testing"

	"github.com/Anubrata-Das/bluebella-e2e/internal/browser"
	"github.com/Anubrata-Das/bluebella-e2e/internal/browser/browsertest"
	"github.com/Anubrata-Das/bluebella-e2e/internal/wait"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func checkoutTestForm() CheckoutForm {
	return CheckoutForm{
		Email:            "user@example.com",
		LastName:         "Doe",
		FirstName:        "Jane",
		PostalCode:       "100-0001",
		Phone:            "08000000000",
		PhoneCountryCode: "JP",
		Country:          "Japan",
		PostalSearchText: "Iguchi",
	}
}

func TestFillFormPopulatesEveryField(t *testing.T) {
	email := browsertest.NewElement("")
	marketing := browsertest.NewElement("")
	country := browsertest.NewElement("")
	lastName := browsertest.NewElement("")
	firstName := browsertest.NewElement("")
	postal := browsertest.NewElement("")
	postalOption := browsertest.NewElement("3-chome Iguchi, Mitaka")
	phone := browsertest.NewElement("")
	phoneCountry := browsertest.NewElement("")
	driver := &browsertest.Driver{
		FindFunc: finderFor(map[string][]browser.Element{
			checkoutEmailInput.Selector:        {email},
			checkoutMarketingCheckbox.Selector: {marketing},
			checkoutCountryDropdown.Selector:   {country},
			checkoutLastNameInput.Selector:     {lastName},
			checkoutFirstNameInput.Selector:    {firstName},
			checkoutPostalCodeInput.Selector:   {postal},
			checkoutPostalCodeOptions.Selector: {postalOption},
			checkoutPhoneInput.Selector:        {phone},
			checkoutPhoneCountry.Selector:      {phoneCountry},
		}),
	}
	checkout := NewCheckoutPage(driver, testConfig())

	require.NoError(t, checkout.FillForm(checkoutTestForm()))
	assert.Equal(t, []string{"user@example.com"}, email.Filled)
	assert.Equal(t, 1, marketing.Clicks)
	assert.Equal(t, []string{"Japan"}, country.SelectedTexts)
	assert.Equal(t, []string{"Doe"}, lastName.Filled)
	assert.Equal(t, []string{"Jane"}, firstName.Filled)
	assert.Equal(t, []string{"100-0001"}, postal.Filled)
	assert.Equal(t, 1, postalOption.Clicks)
	assert.Equal(t, []string{"08000000000"}, phone.Filled)
	assert.Equal(t, []string{"JP"}, phoneCountry.SelectedValues)
}

func TestFillFormToleratesMissingOptionalWidgets(t *testing.T) {
	driver := &browsertest.Driver{
		FindFunc: finderFor(map[string][]browser.Element{
			checkoutEmailInput.Selector:      {browsertest.NewElement("")},
			checkoutCountryDropdown.Selector: {browsertest.NewElement("")},
			checkoutLastNameInput.Selector:   {browsertest.NewElement("")},
			checkoutFirstNameInput.Selector:  {browsertest.NewElement("")},
			checkoutPostalCodeInput.Selector: {browsertest.NewElement("")},
			checkoutPhoneInput.Selector:      {browsertest.NewElement("")},
			checkoutPhoneCountry.Selector:    {browsertest.NewElement("")},
		}),
	}
	checkout := NewCheckoutPage(driver, testConfig())

	// No marketing checkbox, no postal autocomplete: still a clean fill.
	require.NoError(t, checkout.FillForm(checkoutTestForm()))
}

func TestFillFormPropagatesMissingRequiredField(t *testing.T) {
	driver := &browsertest.Driver{
		FindFunc: finderFor(map[string][]browser.Element{
			checkoutEmailInput.Selector: {browsertest.NewElement("")},
		}),
	}
	checkout := NewCheckoutPage(driver, testConfig())

	err := checkout.FillForm(checkoutTestForm())
	var timeout *wait.TimeoutError
	require.ErrorAs(t, err, &timeout)
}

func TestCheckMarketingOptInAlreadyChecked(t *testing.T) {
	checkbox := browsertest.NewElement("")
	checkbox.Checked = true
	driver := &browsertest.Driver{
		FindFunc: finderFor(map[string][]browser.Element{
			checkoutMarketingCheckbox.Selector: {checkbox},
		}),
	}
	checkout := NewCheckoutPage(driver, testConfig())

	assert.True(t, checkout.CheckMarketingOptIn())
	assert.Zero(t, checkbox.Clicks)
}

func TestSelectPostalCodeOptionPicksMatchingSuggestion(t *testing.T) {
	other := browsertest.NewElement("1-chome Shibuya, Tokyo")
	match := browsertest.NewElement("3-chome Iguchi, Mitaka")
	driver := &browsertest.Driver{
		FindFunc: finderFor(map[string][]browser.Element{
			checkoutPostalCodeOptions.Selector: {other, match},
		}),
	}
	checkout := NewCheckoutPage(driver, testConfig())

	assert.True(t, checkout.SelectPostalCodeOption("Iguchi"))
	assert.Equal(t, 1, match.Clicks)
	assert.Zero(t, other.Clicks)
}

func TestSelectPostalCodeOptionNoMatch(t *testing.T) {
	driver := &browsertest.Driver{
		FindFunc: finderFor(map[string][]browser.Element{
			checkoutPostalCodeOptions.Selector: {browsertest.NewElement("1-chome Shibuya, Tokyo")},
		}),
	}
	checkout := NewCheckoutPage(driver, testConfig())

	assert.False(t, checkout.SelectPostalCodeOption("Iguchi"))
}

func TestSelectPhoneCountryCodeScrollsAndSelects(t *testing.T) {
	dropdown := browsertest.NewElement("")
	driver := &browsertest.Driver{
		FindFunc: finderFor(map[string][]browser.Element{
			checkoutPhoneCountry.Selector: {dropdown},
		}),
	}
	checkout := NewCheckoutPage(driver, testConfig())

	require.NoError(t, checkout.SelectPhoneCountryCode("JP"))
	assert.Equal(t, 1, dropdown.Scrolled)
	assert.Equal(t, []string{"JP"}, dropdown.SelectedValues)
}

func TestSelectKlarnaPaymentClicksThroughScript(t *testing.T) {
	label := browsertest.NewElement("Klarna")
	driver := &browsertest.Driver{
		FindFunc: finderFor(map[string][]browser.Element{
			checkoutKlarnaLabel.Selector: {label},
		}),
	}
	checkout := NewCheckoutPage(driver, testConfig())

	require.NoError(t, checkout.SelectKlarnaPayment())
	require.NotEmpty(t, driver.Scripts)
	assert.Contains(t, driver.Scripts[len(driver.Scripts)-1], "singleNodeValue.click()")
	assert.Equal(t, 1, label.Scrolled)
}

func TestClickPayButtonScrollsFirst(t *testing.T) {
	payButton := browsertest.NewElement("Pay now")
	driver := &browsertest.Driver{
		FindFunc: finderFor(map[string][]browser.Element{
			checkoutPayButton.Selector: {payButton},
		}),
	}
	checkout := NewCheckoutPage(driver, testConfig())

	require.NoError(t, checkout.ClickPayButton())
	assert.Equal(t, 1, payButton.Scrolled)
	assert.Equal(t, 1, payButton.Clicks)
}
