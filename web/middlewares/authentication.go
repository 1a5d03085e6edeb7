package middlewares

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"simplehr.com/simplehr/core"
	"simplehr.com/simplehr/core/models"
	"simplehr.com/simplehr/security"
	"simplehr.com/simplehr/users"
	"simplehr.com/simplehr/web/common"
)

const CookieName = "session"

// SessionState records why a request did or did not resolve to a user.
// Callers only ever see "user" or "no user".
type SessionState int

const (
	SessionMissing SessionState = iota
	SessionInvalid
	SessionUserGone
	SessionUnavailable
	SessionOK
)

func (s SessionState) String() string {
	switch s {
	case SessionMissing:
		return "missing"
	case SessionInvalid:
		return "invalid"
	case SessionUserGone:
		return "user gone"
	case SessionUnavailable:
		return "unavailable"
	case SessionOK:
		return "ok"
	}
	return "unknown"
}

// Sessions ties the signed session cookie to user accounts.
type Sessions struct {
	codec  *security.SessionCodec
	dm     *core.DatabaseManager
	secure bool
}

func NewSessions(codec *security.SessionCodec, dm *core.DatabaseManager, secure bool) *Sessions {
	return &Sessions{codec: codec, dm: dm, secure: secure}
}

// Issue sets the session cookie for userID.
func (s *Sessions) Issue(c *gin.Context, userID uint) error {
	token, err := s.codec.Issue(userID)
	if err != nil {
		return err
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, token, 0, "/", "", s.secure, true)
	return nil
}

// Revoke deletes the session cookie.
func (s *Sessions) Revoke(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, "", -1, "/", "", s.secure, true)
}

// Resolve never fails. A user is returned only with SessionOK.
func (s *Sessions) Resolve(c *gin.Context) (*models.User, SessionState) {
	token, err := c.Cookie(CookieName)
	if err != nil || token == "" {
		return nil, SessionMissing
	}

	userID, err := s.codec.Parse(token)
	if err != nil {
		return nil, SessionInvalid
	}

	u, err := users.FindByID(s.dm.GetDB(c.Request.Context()), userID)
	if errors.Is(err, users.ErrUserNotFound) {
		return nil, SessionUserGone
	}
	if err != nil {
		log.Printf("[ERROR] session lookup for user %d: %v", userID, err)
		return nil, SessionUnavailable
	}
	return u, SessionOK
}

// Authentication resolves the session cookie on every request and stores
// the user, when there is one, for handlers and the access gates.
func (s *Sessions) Authentication() gin.HandlerFunc {
	return func(c *gin.Context) {
		u, state := s.Resolve(c)
		switch state {
		case SessionOK:
			common.SetCurrentUser(c, u)
		case SessionInvalid, SessionUserGone:
			log.Printf("[INFO] session %s from %s", state, c.ClientIP())
		}
		c.Next()
	}
}
