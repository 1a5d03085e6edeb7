package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"simplehr.com/simplehr/employees"
	"simplehr.com/simplehr/timesheets"
	"simplehr.com/simplehr/web/common"
)

func (h *Handler) Dashboard(c *gin.Context) {
	db := h.db(c)
	numEmployees, err := employees.Count(db)
	if err != nil {
		h.fail(c, err)
		return
	}
	pending, err := timesheets.CountPending(db)
	if err != nil {
		h.fail(c, err)
		return
	}

	common.Render(c, http.StatusOK, "dashboard.tmpl", gin.H{
		"Title":             "Dashboard",
		"NumEmployees":      numEmployees,
		"PendingTimesheets": pending,
	})
}
