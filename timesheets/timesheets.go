package timesheets

import (
	"errors"
	"fmt"
	"math"
	"time"

	"gorm.io/gorm"
	"simplehr.com/simplehr/core/models"
)

var ErrInvalidHours = errors.New("total hours must be between 0 and 168")

// Submit records a new pending timesheet for the employee.
func Submit(db *gorm.DB, employeeID uint, weekStart time.Time, hours float64, notes *string) (*models.Timesheet, error) {
	if math.IsNaN(hours) || hours < 0 || hours > 168 {
		return nil, ErrInvalidHours
	}
	ts := models.Timesheet{
		EmployeeID: employeeID,
		WeekStart:  weekStart,
		TotalHours: hours,
		Notes:      notes,
		Status:     models.TimesheetPending,
	}
	if err := db.Create(&ts).Error; err != nil {
		return nil, fmt.Errorf("failed to submit timesheet: %w", err)
	}
	return &ts, nil
}

func ListForEmployee(db *gorm.DB, employeeID uint) ([]models.Timesheet, error) {
	var sheets []models.Timesheet
	if err := db.Where("employee_id = ?", employeeID).
		Order("week_start desc, id desc").
		Find(&sheets).Error; err != nil {
		return nil, fmt.Errorf("failed to list timesheets: %w", err)
	}
	return sheets, nil
}

// ListPending returns every pending timesheet with its employee loaded.
func ListPending(db *gorm.DB) ([]models.Timesheet, error) {
	var sheets []models.Timesheet
	if err := db.Preload("Employee").
		Where("status = ?", models.TimesheetPending).
		Order("week_start, id").
		Find(&sheets).Error; err != nil {
		return nil, fmt.Errorf("failed to list pending timesheets: %w", err)
	}
	return sheets, nil
}

func CountPending(db *gorm.DB) (int64, error) {
	var n int64
	if err := db.Model(&models.Timesheet{}).Where("status = ?", models.TimesheetPending).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("failed to count pending timesheets: %w", err)
	}
	return n, nil
}

func Approve(db *gorm.DB, id uint) error {
	return setStatus(db, id, models.TimesheetApproved)
}

func Reject(db *gorm.DB, id uint) error {
	return setStatus(db, id, models.TimesheetRejected)
}

// setStatus overwrites the status unconditionally. A missing timesheet is
// not an error.
func setStatus(db *gorm.DB, id uint, status models.TimesheetStatus) error {
	err := db.Model(&models.Timesheet{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"status": status, "updated_at": time.Now().UTC()}).Error
	if err != nil {
		return fmt.Errorf("failed to set timesheet %d to %s: %w", id, status, err)
	}
	return nil
}
