package common

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"simplehr.com/simplehr/core/models"
)

const currentUserKey = "currentUser"

func SetCurrentUser(c *gin.Context, u *models.User) {
	c.Set(currentUserKey, u)
}

// CurrentUser returns the user resolved from the session cookie, if any.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	v, ok := c.Get(currentUserKey)
	if !ok {
		return nil, false
	}
	u, ok := v.(*models.User)
	return u, ok && u != nil
}

// Render writes the named template with the current user added to data.
func Render(c *gin.Context, status int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	if u, ok := CurrentUser(c); ok {
		data["User"] = u
	}
	c.HTML(status, name, data)
}

type ErrorResponse struct {
	Status  int
	Title   string
	Message string
}

func NewErrorResponse(status int, message string) *ErrorResponse {
	return &ErrorResponse{
		Status:  status,
		Title:   http.StatusText(status),
		Message: message,
	}
}

// AbortWithError renders the error page and stops the handler chain.
func AbortWithError(c *gin.Context, status int, message string) {
	e := NewErrorResponse(status, message)
	Render(c, status, "error.tmpl", gin.H{"Title": e.Title, "Error": e})
	c.Abort()
}
