package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"simplehr.com/simplehr/core/models"
	"simplehr.com/simplehr/timesheets"
	"simplehr.com/simplehr/utils"
	"simplehr.com/simplehr/web/common"
)

type timesheetForm struct {
	WeekStart  string   `form:"week_start" binding:"required"`
	TotalHours *float64 `form:"total_hours" binding:"required"`
	Notes      string   `form:"notes"`
}

func (h *Handler) MyTimesheets(c *gin.Context) {
	u, _ := common.CurrentUser(c)
	h.renderMyTimesheets(c, u, http.StatusOK, "")
}

func (h *Handler) renderMyTimesheets(c *gin.Context, u *models.User, status int, message string) {
	var list []models.Timesheet
	if u.EmployeeID != nil {
		var err error
		list, err = timesheets.ListForEmployee(h.db(c), *u.EmployeeID)
		if err != nil {
			h.fail(c, err)
			return
		}
	}
	common.Render(c, status, "timesheets_me.tmpl", gin.H{
		"Title":      "My timesheets",
		"Linked":     u.EmployeeID != nil,
		"Timesheets": list,
		"Error":      message,
	})
}

func (h *Handler) SubmitTimesheet(c *gin.Context) {
	u, _ := common.CurrentUser(c)
	if u.EmployeeID == nil {
		redirect(c, "/timesheets/me")
		return
	}

	var form timesheetForm
	if err := c.ShouldBind(&form); err != nil {
		h.renderMyTimesheets(c, u, http.StatusBadRequest, common.FormatBindingError(err))
		return
	}
	weekStart, err := utils.ParseDate(form.WeekStart)
	if err != nil {
		h.renderMyTimesheets(c, u, http.StatusBadRequest, err.Error())
		return
	}

	ts, err := timesheets.Submit(h.db(c), *u.EmployeeID, weekStart, *form.TotalHours, utils.NilIfEmpty(form.Notes))
	if errors.Is(err, timesheets.ErrInvalidHours) {
		h.renderMyTimesheets(c, u, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		h.fail(c, err)
		return
	}

	h.notify(fmt.Sprintf("%s submitted %.2f hours for the week of %s", u.Email, ts.TotalHours, form.WeekStart))
	redirect(c, "/timesheets/me")
}

func (h *Handler) Approvals(c *gin.Context) {
	pending, err := timesheets.ListPending(h.db(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	common.Render(c, http.StatusOK, "timesheet_approvals.tmpl", gin.H{
		"Title":   "Approvals",
		"Pending": pending,
	})
}

func (h *Handler) ApproveTimesheet(c *gin.Context) {
	h.decide(c, timesheets.Approve)
}

func (h *Handler) RejectTimesheet(c *gin.Context) {
	h.decide(c, timesheets.Reject)
}

func (h *Handler) decide(c *gin.Context, apply func(*gorm.DB, uint) error) {
	if id, ok := paramID(c, "id"); ok {
		if err := apply(h.db(c), id); err != nil {
			h.fail(c, err)
			return
		}
	}
	redirect(c, "/timesheets/approvals")
}
