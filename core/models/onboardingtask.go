package models

import "time"

type OnboardingTask struct {
	ID          uint       `gorm:"primaryKey;autoIncrement"`
	EmployeeID  uint       `gorm:"not null;index"`
	Title       string     `gorm:"size:255;not null"`
	IsComplete  bool       `gorm:"not null;default:false"`
	DueDate     *time.Time `gorm:"type:date"`
	CompletedAt *time.Time
}
