package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"simplehr.com/simplehr/core/models"
	"simplehr.com/simplehr/employees"
	"simplehr.com/simplehr/utils"
	"simplehr.com/simplehr/web/common"
)

type employeeForm struct {
	FirstName      string `form:"first_name" binding:"required"`
	LastName       string `form:"last_name" binding:"required"`
	Email          string `form:"email" binding:"required,email"`
	EmploymentType string `form:"employment_type" binding:"required"`
	StartDate      string `form:"start_date" binding:"required"`
	Position       string `form:"position"`
	Department     string `form:"department"`
	Notes          string `form:"notes"`
}

func employeeFormFrom(e *models.Employee) employeeForm {
	return employeeForm{
		FirstName:      e.FirstName,
		LastName:       e.LastName,
		Email:          e.Email,
		EmploymentType: e.EmploymentType,
		StartDate:      e.StartDate.Format(utils.DateLayout),
		Position:       utils.Format(e.Position),
		Department:     utils.Format(e.Department),
		Notes:          utils.Format(e.Notes),
	}
}

func (f employeeForm) input() (employees.Input, error) {
	start, err := utils.ParseDate(f.StartDate)
	if err != nil {
		return employees.Input{}, err
	}
	return employees.Input{
		FirstName:      f.FirstName,
		LastName:       f.LastName,
		Email:          f.Email,
		EmploymentType: f.EmploymentType,
		StartDate:      start,
		Position:       utils.NilIfEmpty(f.Position),
		Department:     utils.NilIfEmpty(f.Department),
		Notes:          utils.NilIfEmpty(f.Notes),
	}, nil
}

// bindEmployee reads the posted form. It renders the form again with a
// 400 and returns false when the input is unusable.
func bindEmployee(c *gin.Context, title, action string) (employees.Input, bool) {
	var form employeeForm
	if err := c.ShouldBind(&form); err != nil {
		renderEmployeeForm(c, http.StatusBadRequest, title, action, form, common.FormatBindingError(err))
		return employees.Input{}, false
	}
	in, err := form.input()
	if err != nil {
		renderEmployeeForm(c, http.StatusBadRequest, title, action, form, err.Error())
		return employees.Input{}, false
	}
	return in, true
}

func renderEmployeeForm(c *gin.Context, status int, title, action string, form employeeForm, message string) {
	common.Render(c, status, "employee_form.tmpl", gin.H{
		"Title":  title,
		"Action": action,
		"Form":   form,
		"Error":  message,
	})
}

func (h *Handler) ListEmployees(c *gin.Context) {
	list, err := employees.List(h.db(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	common.Render(c, http.StatusOK, "employees.tmpl", gin.H{
		"Title":     "Employees",
		"Employees": list,
	})
}

func (h *Handler) NewEmployeePage(c *gin.Context) {
	renderEmployeeForm(c, http.StatusOK, "Add New Employee", "/employees/new", employeeForm{}, "")
}

func (h *Handler) CreateEmployee(c *gin.Context) {
	in, ok := bindEmployee(c, "Add New Employee", "/employees/new")
	if !ok {
		return
	}
	if _, err := employees.Create(h.db(c), in); err != nil {
		if errors.Is(err, employees.ErrInvalidEmployee) {
			common.AbortWithError(c, http.StatusBadRequest, err.Error())
			return
		}
		h.fail(c, err)
		return
	}
	redirect(c, "/employees")
}

func (h *Handler) EditEmployeePage(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		redirect(c, "/employees")
		return
	}
	emp, err := employees.FindByID(h.db(c), id)
	if errors.Is(err, employees.ErrEmployeeNotFound) {
		redirect(c, "/employees")
		return
	}
	if err != nil {
		h.fail(c, err)
		return
	}
	renderEmployeeForm(c, http.StatusOK, "Edit Employee", fmt.Sprintf("/employees/%d/edit", id), employeeFormFrom(emp), "")
}

func (h *Handler) UpdateEmployee(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		redirect(c, "/employees")
		return
	}
	exists, err := employees.Exists(h.db(c), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	if !exists {
		redirect(c, "/employees")
		return
	}

	in, ok := bindEmployee(c, "Edit Employee", fmt.Sprintf("/employees/%d/edit", id))
	if !ok {
		return
	}
	_, err = employees.Update(h.db(c), id, in)
	switch {
	case errors.Is(err, employees.ErrEmployeeNotFound):
	case errors.Is(err, employees.ErrInvalidEmployee):
		common.AbortWithError(c, http.StatusBadRequest, err.Error())
		return
	case err != nil:
		h.fail(c, err)
		return
	}
	redirect(c, "/employees")
}

func (h *Handler) DeleteEmployee(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		redirect(c, "/employees")
		return
	}
	if err := employees.Delete(h.db(c), id); err != nil && !errors.Is(err, employees.ErrEmployeeNotFound) {
		h.fail(c, err)
		return
	}
	redirect(c, "/employees")
}

// ExportEmployees sends the roster as an Excel workbook.
func (h *Handler) ExportEmployees(c *gin.Context) {
	list, err := employees.List(h.db(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	f, err := employees.ExportWorkbook(list)
	if err != nil {
		h.fail(c, err)
		return
	}
	defer f.Close()

	buf, err := f.WriteToBuffer()
	if err != nil {
		h.fail(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="employees.xlsx"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
