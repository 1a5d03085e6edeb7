package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"simplehr.com/simplehr/integrations/quickbooks"
	"simplehr.com/simplehr/web/common"
)

const quickBooksStateCookie = "qb_state"

func renderQuickBooks(c *gin.Context, status int, message string, tokens *quickbooks.Tokens) {
	common.Render(c, status, "quickbooks_status.tmpl", gin.H{
		"Title":  "QuickBooks",
		"Status": message,
		"Tokens": tokens,
	})
}

// ConnectQuickBooks sends the browser to the Intuit consent page.
func (h *Handler) ConnectQuickBooks(c *gin.Context) {
	state := uuid.NewString()
	authURL, err := h.QuickBooks.AuthorizationURL(state)
	if errors.Is(err, quickbooks.ErrNotConfigured) {
		renderQuickBooks(c, http.StatusServiceUnavailable, "QuickBooks is not configured.", nil)
		return
	}
	if err != nil {
		h.fail(c, err)
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(quickBooksStateCookie, state, 600, "/quickbooks", "", false, true)
	c.Redirect(http.StatusFound, authURL)
}

// QuickBooksCallback completes the stubbed authorization code exchange.
func (h *Handler) QuickBooksCallback(c *gin.Context) {
	code := c.Query("code")
	if code == "" {
		renderQuickBooks(c, http.StatusBadRequest, "Missing authorization code", nil)
		return
	}
	expected, err := c.Cookie(quickBooksStateCookie)
	if err != nil || expected != c.Query("state") {
		renderQuickBooks(c, http.StatusBadRequest, "Authorization state does not match", nil)
		return
	}
	c.SetCookie(quickBooksStateCookie, "", -1, "/quickbooks", "", false, true)

	tokens, err := h.QuickBooks.ExchangeCode(code, c.Query("realmId"))
	if err != nil {
		h.fail(c, err)
		return
	}
	renderQuickBooks(c, http.StatusOK, "Connected (stub only)", tokens)
}
