package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"simplehr.com/simplehr/employees"
	"simplehr.com/simplehr/onboarding"
	"simplehr.com/simplehr/web/common"
)

func (h *Handler) OnboardingOverview(c *gin.Context) {
	overview, err := onboarding.Overview(h.db(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	common.Render(c, http.StatusOK, "onboarding.tmpl", gin.H{
		"Title":    "Onboarding",
		"Overview": overview,
	})
}

func (h *Handler) OnboardingEmployee(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		redirect(c, "/onboarding")
		return
	}
	db := h.db(c)
	emp, err := employees.FindByID(db, id)
	if errors.Is(err, employees.ErrEmployeeNotFound) {
		redirect(c, "/onboarding")
		return
	}
	if err != nil {
		h.fail(c, err)
		return
	}
	tasks, err := onboarding.Tasks(db, emp.ID)
	if err != nil {
		h.fail(c, err)
		return
	}
	common.Render(c, http.StatusOK, "onboarding_employee.tmpl", gin.H{
		"Title":    "Onboarding",
		"Employee": emp,
		"Tasks":    tasks,
	})
}

func (h *Handler) ToggleTask(c *gin.Context) {
	employeeID, ok := paramID(c, "id")
	if !ok {
		redirect(c, "/onboarding")
		return
	}
	if taskID, ok := paramID(c, "taskId"); ok {
		if err := onboarding.Toggle(h.db(c), employeeID, taskID, h.now()); err != nil {
			h.fail(c, err)
			return
		}
	}
	redirect(c, fmt.Sprintf("/onboarding/%d", employeeID))
}
