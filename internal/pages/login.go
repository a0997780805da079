package pages

import (
	"log"
	"strings"

	"github.com/Anubrata-Das/bluebella-e2e/internal/browser"
	"github.com/Anubrata-Das/bluebella-e2e/internal/config"
)

// LoginPage drives the account sign-in flow reached from the site header.
type LoginPage struct {
	Page
}

func NewLoginPage(driver browser.Driver, cfg *config.SuiteConfig) *LoginPage {
	return &LoginPage{Page: newPage(driver, cfg)}
}

// Login opens the login form and submits the given credentials.
func (l *LoginPage) Login(email, password string) error {
	log.Printf("Logging in user: %s", email)
	if err := l.Click(loginHeaderButton); err != nil {
		return err
	}
	if err := l.Fill(loginEmailInput, email); err != nil {
		return err
	}
	if err := l.Fill(loginPasswordInput, password); err != nil {
		return err
	}
	return l.Click(loginSignInButton)
}

// IsSignedIn reports whether the browser landed on the account page.
func (l *LoginPage) IsSignedIn() bool {
	signedIn := strings.HasPrefix(l.URL(), l.cfg.BaseURL+"/account")
	log.Printf("User signed in: %v", signedIn)
	return signedIn
}

// ReturnTo navigates back to originalURL after a successful login.
func (l *LoginPage) ReturnTo(originalURL string) error {
	if !l.IsSignedIn() {
		log.Printf("User not signed in, skipping navigation back")
		return nil
	}
	return l.NavigateTo(originalURL)
}
