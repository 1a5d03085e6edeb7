package handlers_test

import (
	"fmt"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"simplehr.com/simplehr/core/models"
	"simplehr.com/simplehr/integrations/quickbooks"
)

func TestSubmitTimesheet(t *testing.T) {
	app := newApp(t, quickbooks.Config{})
	emp := app.createEmployee(t, "Ken", "Thompson")
	user := sessionFor(t, app.createUser(t, "ken@example.com", "pw", models.RoleEmployee, emp.ID))

	w := app.post("/timesheets/me", url.Values{
		"week_start": {"2025-03-03"}, "total_hours": {"37.5"}, "notes": {"release week"},
	}, user)
	assertRedirect(t, w, "/timesheets/me")

	var sheets []models.Timesheet
	require.NoError(t, app.db.Where("employee_id = ?", emp.ID).Find(&sheets).Error)
	require.Len(t, sheets, 1)
	assert.Equal(t, models.TimesheetPending, sheets[0].Status)
	assert.Equal(t, 37.5, sheets[0].TotalHours)
	require.Len(t, app.notices.infos, 1)
	assert.Contains(t, app.notices.infos[0], "ken@example.com")

	w = app.get("/timesheets/me", user)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "2025-03-03")
	assert.Contains(t, w.Body.String(), "PENDING")
}

func TestSubmitTimesheetRejectsBadInput(t *testing.T) {
	app := newApp(t, quickbooks.Config{})
	emp := app.createEmployee(t, "Ken", "Thompson")
	user := sessionFor(t, app.createUser(t, "ken@example.com", "pw", models.RoleEmployee, emp.ID))

	for _, values := range []url.Values{
		{"week_start": {"2025-03-03"}, "total_hours": {"200"}},
		{"week_start": {"2025-03-03"}, "total_hours": {"lots"}},
		{"week_start": {"2025-03-03"}, "total_hours": {"NaN"}},
		{"week_start": {"March"}, "total_hours": {"8"}},
		{"total_hours": {"8"}},
	} {
		w := app.post("/timesheets/me", values, user)
		assert.Equal(t, http.StatusBadRequest, w.Code, values.Encode())
	}

	var n int64
	app.db.Model(&models.Timesheet{}).Count(&n)
	assert.Zero(t, n)
}

func TestSubmitTimesheetWithoutEmployeeLink(t *testing.T) {
	app := newApp(t, quickbooks.Config{})
	user := sessionFor(t, app.createUser(t, "contractor@example.com", "pw", models.RoleEmployee, 0))

	w := app.post("/timesheets/me", url.Values{"week_start": {"2025-03-03"}, "total_hours": {"8"}}, user)
	assertRedirect(t, w, "/timesheets/me")

	var n int64
	app.db.Model(&models.Timesheet{}).Count(&n)
	assert.Zero(t, n)

	w = app.get("/timesheets/me", user)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "not linked")
}

func TestApproveAndRejectTimesheets(t *testing.T) {
	app := newApp(t, quickbooks.Config{})
	emp := app.createEmployee(t, "Rob", "Pike")
	manager := sessionFor(t, app.createUser(t, "manager@example.com", "pw", models.RoleManager, 0))
	employee := sessionFor(t, app.createUser(t, "rob@example.com", "pw", models.RoleEmployee, emp.ID))

	first := &models.Timesheet{EmployeeID: emp.ID, WeekStart: emp.StartDate, TotalHours: 40, Status: models.TimesheetPending}
	second := &models.Timesheet{EmployeeID: emp.ID, WeekStart: emp.StartDate.AddDate(0, 0, 7), TotalHours: 12, Status: models.TimesheetPending}
	require.NoError(t, app.db.Create(first).Error)
	require.NoError(t, app.db.Create(second).Error)

	w := app.get("/timesheets/approvals", manager)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Rob Pike")

	w = app.post(fmt.Sprintf("/timesheets/%d/approve", first.ID), nil, employee)
	assert.Equal(t, http.StatusForbidden, w.Code)

	assertRedirect(t, app.post(fmt.Sprintf("/timesheets/%d/approve", first.ID), nil, manager), "/timesheets/approvals")
	assertRedirect(t, app.post(fmt.Sprintf("/timesheets/%d/reject", second.ID), nil, manager), "/timesheets/approvals")
	// repeat approval and missing ids are accepted
	assertRedirect(t, app.post(fmt.Sprintf("/timesheets/%d/approve", first.ID), nil, manager), "/timesheets/approvals")
	assertRedirect(t, app.post("/timesheets/999/approve", nil, manager), "/timesheets/approvals")

	var got models.Timesheet
	require.NoError(t, app.db.First(&got, first.ID).Error)
	assert.Equal(t, models.TimesheetApproved, got.Status)
	var rejected models.Timesheet
	require.NoError(t, app.db.First(&rejected, second.ID).Error)
	assert.Equal(t, models.TimesheetRejected, rejected.Status)
}
