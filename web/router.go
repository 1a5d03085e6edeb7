// Package web assembles the HTTP surface.
package web

import (
	"github.com/gin-gonic/gin"

	"simplehr.com/simplehr/web/handlers"
	"simplehr.com/simplehr/web/middlewares"
	"simplehr.com/simplehr/web/templates"
)

const maxUploadMemory = 10 << 20

func NewRouter(h *handlers.Handler) (*gin.Engine, error) {
	tmpl, err := templates.New()
	if err != nil {
		return nil, err
	}

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	r.SetHTMLTemplate(tmpl)
	r.MaxMultipartMemory = maxUploadMemory

	r.GET("/ping", h.Ping)

	r.Use(h.Sessions.Authentication())
	r.GET("/login", h.LoginPage)
	r.POST("/login", h.Login)
	r.GET("/logout", h.Logout)

	user := r.Group("", middlewares.RequireUser())
	{
		user.GET("/", h.Dashboard)
		user.GET("/timesheets/me", h.MyTimesheets)
		user.POST("/timesheets/me", h.SubmitTimesheet)
	}

	managers := r.Group("/timesheets", middlewares.RequireManagerOrAdmin())
	{
		managers.GET("/approvals", h.Approvals)
		managers.POST("/:id/approve", h.ApproveTimesheet)
		managers.POST("/:id/reject", h.RejectTimesheet)
	}

	admin := r.Group("", middlewares.RequireAdmin())
	{
		admin.GET("/employees", h.ListEmployees)
		admin.GET("/employees/export", h.ExportEmployees)
		admin.GET("/employees/new", h.NewEmployeePage)
		admin.POST("/employees/new", h.CreateEmployee)
		admin.GET("/employees/:id/edit", h.EditEmployeePage)
		admin.POST("/employees/:id/edit", h.UpdateEmployee)
		admin.POST("/employees/:id/delete", h.DeleteEmployee)

		admin.GET("/users", h.ListUsers)
		admin.GET("/users/new", h.NewUserPage)
		admin.POST("/users/new", h.CreateUser)
		admin.GET("/users/:id/edit", h.EditUserPage)
		admin.POST("/users/:id/edit", h.UpdateUser)
		admin.POST("/users/:id/delete", h.DeleteUser)
		admin.GET("/users/:id/password", h.PasswordPage)
		admin.POST("/users/:id/password", h.ChangePassword)

		admin.GET("/hiring", h.Pipeline)
		admin.GET("/hiring/new", h.NewCandidatePage)
		admin.POST("/hiring/new", h.CreateCandidate)
		admin.GET("/hiring/:id", h.ViewCandidate)
		admin.POST("/hiring/:id/stage", h.MoveCandidate)
		admin.GET("/hiring/:id/resume", h.DownloadResume)
		admin.POST("/hiring/:id/resume", h.UploadResume)

		admin.GET("/onboarding", h.OnboardingOverview)
		admin.GET("/onboarding/:id", h.OnboardingEmployee)
		admin.POST("/onboarding/:id/tasks/:taskId/toggle", h.ToggleTask)

		admin.GET("/quickbooks/connect", h.ConnectQuickBooks)
		admin.GET("/quickbooks/callback", h.QuickBooksCallback)
	}

	return r, nil
}
