package handlers

import (
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"simplehr.com/simplehr/core"
	"simplehr.com/simplehr/infrastructure/communication"
	"simplehr.com/simplehr/infrastructure/filesystem"
	"simplehr.com/simplehr/integrations/quickbooks"
	"simplehr.com/simplehr/web/common"
	"simplehr.com/simplehr/web/middlewares"
)

// Handler serves every page. Fields are set once at startup.
type Handler struct {
	DB         *core.DatabaseManager
	Sessions   *middlewares.Sessions
	Resumes    filesystem.Store
	Notifier   communication.Notifier
	Mailer     communication.Mailer
	MailFrom   string
	QuickBooks *quickbooks.Client
	Now        func() time.Time
}

func (h *Handler) db(c *gin.Context) *gorm.DB {
	return h.DB.GetDB(c.Request.Context())
}

func (h *Handler) now() time.Time {
	if h.Now != nil {
		return h.Now()
	}
	return time.Now().UTC()
}

// paramID reads a numeric path parameter.
func paramID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 0)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

func redirect(c *gin.Context, location string) {
	c.Redirect(http.StatusSeeOther, location)
}

func (h *Handler) fail(c *gin.Context, err error) {
	log.Printf("[ERROR] %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	if nerr := h.Notifier.Error(fmt.Sprintf("%s %s failed: %v", c.Request.Method, c.Request.URL.Path, err)); nerr != nil {
		log.Printf("[ERROR] notify: %v", nerr)
	}
	common.AbortWithError(c, http.StatusInternalServerError, "Something went wrong. Please try again.")
}

func (h *Handler) notify(message string) {
	if err := h.Notifier.Info(message); err != nil {
		log.Printf("[ERROR] notify: %v", err)
	}
}

func (h *Handler) Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "pong",
	})
}
