// Package quickbooks is scaffolding for the QuickBooks Online integration.
// Only the authorization redirect is real; token exchange and syncing return
// placeholder data until the HTTP calls are written.
package quickbooks

import (
	"errors"
	"net/url"

	"gorm.io/gorm"
)

const AuthBaseURL = "https://appcenter.intuit.com/connect/oauth2"

const scopes = "com.intuit.quickbooks.accounting com.intuit.quickbooks.payroll"

var ErrNotConfigured = errors.New("QuickBooks client_id/redirect_uri not configured")

type Config struct {
	ClientID     string
	ClientSecret string
	RedirectURI  string
	Environment  string
}

// Tokens is the result of an authorization code or refresh exchange.
type Tokens struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int    `json:"expires_in"`
	RealmID      string `json:"realm_id,omitempty"`
}

type Client struct {
	config Config
}

func NewClient(config Config) *Client {
	return &Client{config: config}
}

func (c *Client) Configured() bool {
	return c.config.ClientID != "" && c.config.RedirectURI != ""
}

// AuthorizationURL is where the browser is sent to grant access.
func (c *Client) AuthorizationURL(state string) (string, error) {
	if !c.Configured() {
		return "", ErrNotConfigured
	}

	u, err := url.Parse(AuthBaseURL)
	if err != nil {
		return "", err
	}
	q := u.Query()
	q.Set("client_id", c.config.ClientID)
	q.Set("redirect_uri", c.config.RedirectURI)
	q.Set("response_type", "code")
	q.Set("scope", scopes)
	q.Set("state", state)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// ExchangeCode trades an authorization code for tokens.
// TODO: POST to the Intuit token endpoint with the client secret.
func (c *Client) ExchangeCode(code string, realmID string) (*Tokens, error) {
	return &Tokens{
		AccessToken:  "fake-access-token",
		RefreshToken: "fake-refresh-token",
		ExpiresIn:    3600,
		RealmID:      realmID,
	}, nil
}

// RefreshTokens renews an expired access token.
func (c *Client) RefreshTokens(refreshToken string) (*Tokens, error) {
	return &Tokens{
		AccessToken:  "refreshed-access-token",
		RefreshToken: "refreshed-refresh-token",
		ExpiresIn:    3600,
	}, nil
}

// SyncEmployees will push employee records to QuickBooks.
func (c *Client) SyncEmployees(db *gorm.DB) error {
	return nil
}

// SyncTimesheets will push approved hours to QuickBooks.
func (c *Client) SyncTimesheets(db *gorm.DB) error {
	return nil
}
