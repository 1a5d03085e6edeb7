package models

import "time"

type TimesheetStatus string

const (
	TimesheetPending  TimesheetStatus = "PENDING"
	TimesheetApproved TimesheetStatus = "APPROVED"
	TimesheetRejected TimesheetStatus = "REJECTED"
)

type Timesheet struct {
	ID         uint            `gorm:"primaryKey;autoIncrement"`
	EmployeeID uint            `gorm:"not null;index"`
	WeekStart  time.Time       `gorm:"type:date"`
	TotalHours float64         `gorm:"type:decimal(10,2)"`
	Notes      *string         `gorm:"type:text"`
	Status     TimesheetStatus `gorm:"size:20;not null;default:PENDING"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Employee Employee `gorm:"foreignKey:EmployeeID"`
}
