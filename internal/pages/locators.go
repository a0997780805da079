// Package pages contains the page objects for the bluebella storefront.
// Each page object binds a fixed set of locators and exposes
// intention-revealing actions built on the wait policy.
package pages

import "github.com/Anubrata-Das/bluebella-e2e/internal/browser"

// Site-wide locators.
var (
	klaviyoCloseButton = browser.XPath("//button[contains(@class,'klaviyo-close-form')]")
)

// Login locators.
var (
	loginHeaderButton  = browser.XPath("//div[@class='site-header__icon--account']")
	loginEmailInput    = browser.XPath("//input[@name='customer[email]']")
	loginPasswordInput = browser.XPath("//input[@name='customer[password]']")
	loginSignInButton  = browser.XPath("//input[@value='Sign In']")
)

// Homepage locators.
var (
	mainMenuItems = browser.XPath("//li[@js-site-header='siteNavItem']/a")
)

// Collection page locators.
var (
	productGridItems = browser.XPath("//div[contains(@class,'product-grid-item-column')]")
	sortByButton     = browser.CSS("div[class='collection-filter'] button[class='collection-filter__header']")
	sortingButtons   = browser.XPath("//div[contains(@class,'collection-filter__sorting')]//button")
	productAnchor    = browser.XPath(".//a[contains(@class,'product-grid-item')]")
	productTitle     = browser.XPath(".//*[contains(@class,'product-grid-item__title')]")
)

// Product page locators.
var (
	addToCartButton        = browser.XPath("//button[@id='AddToCart']")
	cartDrawer             = browser.XPath("//div[@class='cart-drawer']")
	cartDrawerCloseButton  = browser.XPath("//button[@class='cart-drawer__close']")
	quickAddToCartButton   = browser.XPath("//div[@class='product-quick-add__container']//button[@id='AddToCart']")
	checkoutButton         = browser.XPath("//div[@class='cart-drawer__footer--buttons']/a[@href='/checkout']")
	completeTheLookSection = browser.XPath("//div[@class='complete-the-look']//div[@class='owl-stage']")
	completeTheLookItems   = browser.XPath("//div[@class='complete-the-look']//div[contains(@class,'owl-item')]")
	completeTheLookAddBtn  = browser.XPath(".//div[contains(@class,'product-card__details')]//button")
)

const sizeOptionClass = "product-form__sizes--option"

// Checkout page locators.
var (
	checkoutEmailInput        = browser.XPath("//input[@id='email']")
	checkoutMarketingCheckbox = browser.XPath("//input[@id='marketing_opt_in']")
	checkoutCountryDropdown   = browser.CSS("select[name='countryCode']")
	checkoutLastNameInput     = browser.CSS("input[name='lastName']")
	checkoutFirstNameInput    = browser.CSS("input[name='firstName']")
	checkoutPostalCodeInput   = browser.CSS("#postalCode")
	checkoutPostalCodeOptions = browser.XPath("//li[contains(@id,'postalCode-option')]")
	checkoutPhoneInput        = browser.CSS("input[name='phone']")
	checkoutPhoneCountry      = browser.CSS("select[name='phone_country_select']")
	checkoutKlarnaLabelXPath  = "//section[@aria-label='Payment']//label[@for='basic-Klarna - Flexible payments']"
	checkoutKlarnaLabel       = browser.XPath(checkoutKlarnaLabelXPath)
	checkoutPayButton         = browser.CSS("#checkout-pay-button")
)
