package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"simplehr.com/simplehr/users"
	"simplehr.com/simplehr/web/common"
)

type loginForm struct {
	Email    string `form:"email" binding:"required"`
	Password string `form:"password" binding:"required"`
}

func (h *Handler) LoginPage(c *gin.Context) {
	common.Render(c, http.StatusOK, "login.tmpl", gin.H{"Title": "Sign in"})
}

func (h *Handler) Login(c *gin.Context) {
	var form loginForm
	if err := c.ShouldBind(&form); err != nil {
		h.loginFailed(c, form.Email, common.FormatBindingError(err))
		return
	}

	u, err := users.Authenticate(h.db(c), form.Email, form.Password)
	if errors.Is(err, users.ErrInvalidCredentials) {
		h.loginFailed(c, form.Email, "Invalid email or password")
		return
	}
	if err != nil {
		h.fail(c, err)
		return
	}

	if err := h.Sessions.Issue(c, u.ID); err != nil {
		h.fail(c, err)
		return
	}
	redirect(c, "/")
}

func (h *Handler) loginFailed(c *gin.Context, email, message string) {
	common.Render(c, http.StatusBadRequest, "login.tmpl", gin.H{
		"Title": "Sign in",
		"Email": email,
		"Error": message,
	})
}

func (h *Handler) Logout(c *gin.Context) {
	h.Sessions.Revoke(c)
	redirect(c, "/login")
}
