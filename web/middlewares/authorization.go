package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"simplehr.com/simplehr/web/common"
)

func requireUser(c *gin.Context) bool {
	if _, ok := common.CurrentUser(c); !ok {
		common.AbortWithError(c, http.StatusUnauthorized, "Please sign in to continue.")
		return false
	}
	return true
}

func requireAdmin(c *gin.Context) bool {
	if !requireUser(c) {
		return false
	}
	u, _ := common.CurrentUser(c)
	if !u.Role.IsAdmin() {
		common.AbortWithError(c, http.StatusForbidden, "Administrators only.")
		return false
	}
	return true
}

func requireManagerOrAdmin(c *gin.Context) bool {
	if !requireUser(c) {
		return false
	}
	u, _ := common.CurrentUser(c)
	if !u.Role.CanManage() {
		common.AbortWithError(c, http.StatusForbidden, "Managers and administrators only.")
		return false
	}
	return true
}

func gate(check func(*gin.Context) bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if check(c) {
			c.Next()
		}
	}
}

func RequireUser() gin.HandlerFunc { return gate(requireUser) }

func RequireAdmin() gin.HandlerFunc { return gate(requireAdmin) }

func RequireManagerOrAdmin() gin.HandlerFunc { return gate(requireManagerOrAdmin) }
