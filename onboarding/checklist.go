package onboarding

import (
	"fmt"
	"time"

	"gorm.io/gorm"
	"simplehr.com/simplehr/core/models"
	"simplehr.com/simplehr/utils"
)

var defaultTaskTitles = [...]string{
	"Collect W-4 / W-9",
	"I-9 + ID verification",
	"Handbook acknowledgement",
	"Set up email account",
	"Provide safety training",
	"30-day check-in",
	"60-day check-in",
	"90-day check-in",
}

// DefaultTaskTitles returns the checklist every employee starts with.
func DefaultTaskTitles() []string {
	out := make([]string, len(defaultTaskTitles))
	copy(out, defaultTaskTitles[:])
	return out
}

// Progress summarises one employee's checklist.
type Progress struct {
	Employee models.Employee
	Total    int
	Done     int
	Percent  int
}

// EnsureTasks seeds the default checklist when the employee has no tasks.
func EnsureTasks(db *gorm.DB, employeeID uint) error {
	var n int64
	if err := db.Model(&models.OnboardingTask{}).Where("employee_id = ?", employeeID).Count(&n).Error; err != nil {
		return fmt.Errorf("failed to count onboarding tasks: %w", err)
	}
	if n > 0 {
		return nil
	}

	tasks := make([]models.OnboardingTask, 0, len(defaultTaskTitles))
	for _, title := range defaultTaskTitles {
		tasks = append(tasks, models.OnboardingTask{EmployeeID: employeeID, Title: title})
	}
	if err := db.Create(&tasks).Error; err != nil {
		return fmt.Errorf("failed to create onboarding tasks: %w", err)
	}
	return nil
}

// Tasks ensures the checklist exists and returns it in creation order.
func Tasks(db *gorm.DB, employeeID uint) ([]models.OnboardingTask, error) {
	if err := EnsureTasks(db, employeeID); err != nil {
		return nil, err
	}
	var tasks []models.OnboardingTask
	if err := db.Where("employee_id = ?", employeeID).Order("id").Find(&tasks).Error; err != nil {
		return nil, fmt.Errorf("failed to list onboarding tasks: %w", err)
	}
	return tasks, nil
}

// Overview returns checklist progress for every employee.
func Overview(db *gorm.DB) ([]Progress, error) {
	var employees []models.Employee
	if err := db.Order("id").Find(&employees).Error; err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	out := make([]Progress, 0, len(employees))
	for _, emp := range employees {
		tasks, err := Tasks(db, emp.ID)
		if err != nil {
			return nil, err
		}
		done := utils.Filter(tasks, func(t models.OnboardingTask) bool { return t.IsComplete })
		p := Progress{Employee: emp, Total: len(tasks), Done: len(done)}
		if p.Total > 0 {
			p.Percent = p.Done * 100 / p.Total
		}
		out = append(out, p)
	}
	return out, nil
}

// Toggle flips a task's completion. Tasks belonging to another employee
// are ignored. CompletedAt is stamped on the first completion only and is
// kept when the task is later reopened.
func Toggle(db *gorm.DB, employeeID, taskID uint, now time.Time) error {
	var task models.OnboardingTask
	err := db.Where("id = ? AND employee_id = ?", taskID, employeeID).Limit(1).Find(&task).Error
	if err != nil {
		return fmt.Errorf("failed to load onboarding task %d: %w", taskID, err)
	}
	if task.ID == 0 {
		return nil
	}

	task.IsComplete = !task.IsComplete
	if task.IsComplete && task.CompletedAt == nil {
		task.CompletedAt = &now
	}
	if err := db.Save(&task).Error; err != nil {
		return fmt.Errorf("failed to save onboarding task %d: %w", taskID, err)
	}
	return nil
}
