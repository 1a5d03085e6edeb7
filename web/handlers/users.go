package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"simplehr.com/simplehr/core/models"
	"simplehr.com/simplehr/employees"
	"simplehr.com/simplehr/infrastructure/communication"
	"simplehr.com/simplehr/users"
	"simplehr.com/simplehr/utils"
	"simplehr.com/simplehr/web/common"
)

type userForm struct {
	Email      string `form:"email" binding:"required"`
	Password   string `form:"password" binding:"required"`
	Role       string `form:"role" binding:"required"`
	EmployeeID uint   `form:"employee_id"`
}

type userEditForm struct {
	Email      string `form:"email" binding:"required"`
	Role       string `form:"role" binding:"required"`
	EmployeeID uint   `form:"employee_id"`
}

type passwordForm struct {
	NewPassword string `form:"new_password" binding:"required"`
}

type userRow struct {
	User         models.User
	EmployeeName string
}

// userInputError reports whether err is a problem with what was posted.
func userInputError(err error) bool {
	return errors.Is(err, users.ErrInvalidEmail) ||
		errors.Is(err, users.ErrInvalidPassword) ||
		errors.Is(err, users.ErrInvalidRole) ||
		errors.Is(err, users.ErrEmailAlreadyExists) ||
		errors.Is(err, users.ErrSelfDemotion) ||
		errors.Is(err, users.ErrSelfDeletion)
}

func (h *Handler) ListUsers(c *gin.Context) {
	db := h.db(c)
	list, err := users.List(db)
	if err != nil {
		h.fail(c, err)
		return
	}
	emps, err := employees.List(db)
	if err != nil {
		h.fail(c, err)
		return
	}
	byID := utils.Index(emps, func(e models.Employee) uint { return e.ID })

	rows := utils.Map(list, func(u models.User) userRow {
		row := userRow{User: u}
		if u.EmployeeID != nil {
			if e, ok := byID[*u.EmployeeID]; ok {
				row.EmployeeName = e.FullName()
			}
		}
		return row
	})
	common.Render(c, http.StatusOK, "users.tmpl", gin.H{
		"Title": "Users",
		"Rows":  rows,
	})
}

func (h *Handler) renderUserForm(c *gin.Context, status int, name string, data gin.H) {
	emps, err := employees.List(h.db(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	data["Employees"] = emps
	data["Roles"] = models.Roles()
	common.Render(c, status, name, data)
}

func (h *Handler) NewUserPage(c *gin.Context) {
	h.renderUserForm(c, http.StatusOK, "user_new.tmpl", gin.H{
		"Title": "Add user",
		"Form":  userForm{Role: string(models.RoleEmployee)},
	})
}

func (h *Handler) CreateUser(c *gin.Context) {
	var form userForm
	if err := c.ShouldBind(&form); err != nil {
		h.renderUserForm(c, http.StatusBadRequest, "user_new.tmpl", gin.H{
			"Title": "Add user",
			"Form":  form,
			"Error": common.FormatBindingError(err),
		})
		return
	}

	u, err := users.Create(h.db(c), users.CreateInput{
		Email:      form.Email,
		Password:   form.Password,
		Role:       models.Role(form.Role),
		EmployeeID: form.EmployeeID,
	})
	if errors.Is(err, users.ErrEmailAlreadyExists) {
		redirect(c, "/users")
		return
	}
	if userInputError(err) {
		h.renderUserForm(c, http.StatusBadRequest, "user_new.tmpl", gin.H{
			"Title": "Add user",
			"Form":  form,
			"Error": err.Error(),
		})
		return
	}
	if err != nil {
		h.fail(c, err)
		return
	}

	h.sendWelcome(c.Request.Context(), u)
	redirect(c, "/users")
}

func (h *Handler) sendWelcome(ctx context.Context, u *models.User) {
	if err := h.Mailer.Send(ctx, communication.WelcomeEmail(h.MailFrom, u.Email, string(u.Role))); err != nil {
		log.Printf("[ERROR] welcome email to %s: %v", u.Email, err)
	}
}

// targetUser loads the user named by the :id parameter. It redirects to
// the listing and returns false when there is no such user.
func (h *Handler) targetUser(c *gin.Context) (*models.User, bool) {
	id, ok := paramID(c, "id")
	if !ok {
		redirect(c, "/users")
		return nil, false
	}
	u, err := users.FindByID(h.db(c), id)
	if errors.Is(err, users.ErrUserNotFound) {
		redirect(c, "/users")
		return nil, false
	}
	if err != nil {
		h.fail(c, err)
		return nil, false
	}
	return u, true
}

func editFormFrom(u *models.User) userEditForm {
	form := userEditForm{Email: u.Email, Role: string(u.Role)}
	if u.EmployeeID != nil {
		form.EmployeeID = *u.EmployeeID
	}
	return form
}

func (h *Handler) EditUserPage(c *gin.Context) {
	target, ok := h.targetUser(c)
	if !ok {
		return
	}
	h.renderUserForm(c, http.StatusOK, "user_edit.tmpl", gin.H{
		"Title":  "Edit user",
		"Target": target,
		"Form":   editFormFrom(target),
	})
}

func (h *Handler) UpdateUser(c *gin.Context) {
	target, ok := h.targetUser(c)
	if !ok {
		return
	}

	var form userEditForm
	if err := c.ShouldBind(&form); err != nil {
		h.renderUserForm(c, http.StatusBadRequest, "user_edit.tmpl", gin.H{
			"Title":  "Edit user",
			"Target": target,
			"Form":   form,
			"Error":  common.FormatBindingError(err),
		})
		return
	}

	actor, _ := common.CurrentUser(c)
	_, err := users.Update(h.db(c), actor, target.ID, users.UpdateInput{
		Email:      form.Email,
		Role:       models.Role(form.Role),
		EmployeeID: form.EmployeeID,
	})
	switch {
	case errors.Is(err, users.ErrUserNotFound):
	case userInputError(err):
		h.renderUserForm(c, http.StatusBadRequest, "user_edit.tmpl", gin.H{
			"Title":  "Edit user",
			"Target": target,
			"Form":   form,
			"Error":  err.Error(),
		})
		return
	case err != nil:
		h.fail(c, err)
		return
	}
	redirect(c, "/users")
}

func (h *Handler) DeleteUser(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		redirect(c, "/users")
		return
	}
	actor, _ := common.CurrentUser(c)
	err := users.Delete(h.db(c), actor, id)
	switch {
	case err == nil, errors.Is(err, users.ErrUserNotFound):
		redirect(c, "/users")
	case errors.Is(err, users.ErrSelfDeletion):
		common.AbortWithError(c, http.StatusBadRequest, err.Error())
	default:
		h.fail(c, err)
	}
}

func (h *Handler) PasswordPage(c *gin.Context) {
	target, ok := h.targetUser(c)
	if !ok {
		return
	}
	common.Render(c, http.StatusOK, "user_password.tmpl", gin.H{
		"Title":  "Change password",
		"Target": target,
	})
}

func (h *Handler) ChangePassword(c *gin.Context) {
	target, ok := h.targetUser(c)
	if !ok {
		return
	}

	var form passwordForm
	if err := c.ShouldBind(&form); err != nil {
		common.Render(c, http.StatusBadRequest, "user_password.tmpl", gin.H{
			"Title":  "Change password",
			"Target": target,
			"Error":  common.FormatBindingError(err),
		})
		return
	}
	err := users.SetPassword(h.db(c), target.ID, form.NewPassword)
	if err != nil && !errors.Is(err, users.ErrUserNotFound) {
		h.fail(c, err)
		return
	}
	redirect(c, "/users")
}
