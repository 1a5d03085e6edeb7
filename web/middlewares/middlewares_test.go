package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"simplehr.com/simplehr/core"
	"simplehr.com/simplehr/core/coretest"
	"simplehr.com/simplehr/core/models"
	"simplehr.com/simplehr/security"
	"simplehr.com/simplehr/web/templates"
)

func setup(t *testing.T) (*gin.Engine, *Sessions, *gorm.DB) {
	gin.SetMode(gin.TestMode)
	db := coretest.NewDB(t)
	sessions := NewSessions(security.NewSessionCodec("test-secret"), core.Wrap(db), false)

	tmpl, err := templates.New()
	require.NoError(t, err)

	r := gin.New()
	r.SetHTMLTemplate(tmpl)
	r.Use(sessions.Authentication())
	ok := func(c *gin.Context) { c.String(http.StatusOK, "ok") }
	r.GET("/user", RequireUser(), ok)
	r.GET("/admin", RequireAdmin(), ok)
	r.GET("/manager", RequireManagerOrAdmin(), ok)
	r.GET("/state", func(c *gin.Context) {
		_, state := sessions.Resolve(c)
		c.String(http.StatusOK, state.String())
	})
	return r, sessions, db
}

func createUser(t *testing.T, db *gorm.DB, email string, role models.Role) *models.User {
	u := &models.User{Email: email, HashedPassword: "x", Role: role}
	require.NoError(t, db.Create(u).Error)
	return u
}

func cookieFor(t *testing.T, userID uint) *http.Cookie {
	token, err := security.NewSessionCodec("test-secret").Issue(userID)
	require.NoError(t, err)
	return &http.Cookie{Name: CookieName, Value: token}
}

func get(r *gin.Engine, path string, cookie *http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAccessGates(t *testing.T) {
	r, _, db := setup(t)
	admin := createUser(t, db, "admin@example.com", models.RoleAdmin)
	manager := createUser(t, db, "manager@example.com", models.RoleManager)
	employee := createUser(t, db, "employee@example.com", models.RoleEmployee)

	tests := []struct {
		name   string
		path   string
		cookie *http.Cookie
		want   int
	}{
		{"anonymous user page", "/user", nil, http.StatusUnauthorized},
		{"anonymous admin page", "/admin", nil, http.StatusUnauthorized},
		{"anonymous manager page", "/manager", nil, http.StatusUnauthorized},
		{"employee user page", "/user", cookieFor(t, employee.ID), http.StatusOK},
		{"employee admin page", "/admin", cookieFor(t, employee.ID), http.StatusForbidden},
		{"employee manager page", "/manager", cookieFor(t, employee.ID), http.StatusForbidden},
		{"manager admin page", "/admin", cookieFor(t, manager.ID), http.StatusForbidden},
		{"manager manager page", "/manager", cookieFor(t, manager.ID), http.StatusOK},
		{"admin admin page", "/admin", cookieFor(t, admin.ID), http.StatusOK},
		{"admin manager page", "/manager", cookieFor(t, admin.ID), http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := get(r, tt.path, tt.cookie)
			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestResolveStates(t *testing.T) {
	r, _, db := setup(t)
	u := createUser(t, db, "gone@example.com", models.RoleAdmin)
	cookie := cookieFor(t, u.ID)

	assert.Equal(t, "missing", get(r, "/state", nil).Body.String())
	assert.Equal(t, "ok", get(r, "/state", cookie).Body.String())

	forged, err := security.NewSessionCodec("other-secret").Issue(u.ID)
	require.NoError(t, err)
	assert.Equal(t, "invalid", get(r, "/state", &http.Cookie{Name: CookieName, Value: forged}).Body.String())

	require.NoError(t, db.Delete(&models.User{}, u.ID).Error)
	assert.Equal(t, "user gone", get(r, "/state", cookie).Body.String())
	assert.Equal(t, http.StatusUnauthorized, get(r, "/user", cookie).Code)
}

func TestIssueAndRevokeCookie(t *testing.T) {
	gin.SetMode(gin.TestMode)
	sessions := NewSessions(security.NewSessionCodec("test-secret"), nil, true)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	require.NoError(t, sessions.Issue(c, 7))

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, CookieName, cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)
	assert.True(t, cookies[0].Secure)
	assert.Equal(t, http.SameSiteLaxMode, cookies[0].SameSite)
	assert.Equal(t, "/", cookies[0].Path)

	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	sessions.Revoke(c)
	cookies = w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.True(t, cookies[0].MaxAge < 0)
}
