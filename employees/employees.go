package employees

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
	"simplehr.com/simplehr/core/models"
)

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrInvalidEmployee  = errors.New("first name, last name, email and employment type are required")
)

// Input carries the editable employee fields from a form.
type Input struct {
	FirstName      string
	LastName       string
	Email          string
	EmploymentType string
	StartDate      time.Time
	Position       *string
	Department     *string
	Notes          *string
}

func (in Input) validate() error {
	if strings.TrimSpace(in.FirstName) == "" ||
		strings.TrimSpace(in.LastName) == "" ||
		strings.TrimSpace(in.Email) == "" ||
		strings.TrimSpace(in.EmploymentType) == "" {
		return ErrInvalidEmployee
	}
	return nil
}

func (in Input) apply(e *models.Employee) {
	e.FirstName = strings.TrimSpace(in.FirstName)
	e.LastName = strings.TrimSpace(in.LastName)
	e.Email = strings.TrimSpace(in.Email)
	e.EmploymentType = strings.TrimSpace(in.EmploymentType)
	e.StartDate = in.StartDate
	e.Position = in.Position
	e.Department = in.Department
	e.Notes = in.Notes
}

func List(db *gorm.DB) ([]models.Employee, error) {
	var employees []models.Employee
	if err := db.Order("id").Find(&employees).Error; err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	return employees, nil
}

func Count(db *gorm.DB) (int64, error) {
	var n int64
	if err := db.Model(&models.Employee{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("failed to count employees: %w", err)
	}
	return n, nil
}

func FindByID(db *gorm.DB, id uint) (*models.Employee, error) {
	var emp models.Employee
	result := db.First(&emp, id)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, ErrEmployeeNotFound
	}
	if result.Error != nil {
		return nil, fmt.Errorf("failed to load employee %d: %w", id, result.Error)
	}
	return &emp, nil
}

// Exists reports whether an employee with id is on file.
func Exists(db *gorm.DB, id uint) (bool, error) {
	var n int64
	if err := db.Model(&models.Employee{}).Where("id = ?", id).Count(&n).Error; err != nil {
		return false, fmt.Errorf("failed to check employee %d: %w", id, err)
	}
	return n > 0, nil
}

func Create(db *gorm.DB, in Input) (*models.Employee, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	emp := models.Employee{Status: "active"}
	in.apply(&emp)
	if err := db.Create(&emp).Error; err != nil {
		return nil, fmt.Errorf("failed to create employee: %w", err)
	}
	return &emp, nil
}

func Update(db *gorm.DB, id uint, in Input) (*models.Employee, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	emp, err := FindByID(db, id)
	if err != nil {
		return nil, err
	}
	in.apply(emp)
	if err := db.Save(emp).Error; err != nil {
		return nil, fmt.Errorf("failed to update employee %d: %w", id, err)
	}
	return emp, nil
}

// Delete removes the employee together with their onboarding tasks and
// timesheets. Linked user accounts are detached, not deleted.
func Delete(db *gorm.DB, id uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if _, err := FindByID(tx, id); err != nil {
			return err
		}
		if err := tx.Where("employee_id = ?", id).Delete(&models.OnboardingTask{}).Error; err != nil {
			return fmt.Errorf("failed to delete onboarding tasks: %w", err)
		}
		if err := tx.Where("employee_id = ?", id).Delete(&models.Timesheet{}).Error; err != nil {
			return fmt.Errorf("failed to delete timesheets: %w", err)
		}
		if err := tx.Model(&models.User{}).Where("employee_id = ?", id).Update("employee_id", nil).Error; err != nil {
			return fmt.Errorf("failed to detach users: %w", err)
		}
		if err := tx.Delete(&models.Employee{}, id).Error; err != nil {
			return fmt.Errorf("failed to delete employee %d: %w", id, err)
		}
		return nil
	})
}
