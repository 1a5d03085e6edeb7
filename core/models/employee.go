package models

import "time"

type Employee struct {
	ID             uint      `gorm:"primaryKey;autoIncrement"`
	FirstName      string    `gorm:"size:120;not null"`
	LastName       string    `gorm:"size:120;not null"`
	Email          string    `gorm:"size:255;not null"`
	EmploymentType string    `gorm:"size:50;not null"`
	Status         string    `gorm:"size:50;not null;default:active"`
	StartDate      time.Time `gorm:"type:date"`
	Position       *string   `gorm:"size:120"`
	Department     *string   `gorm:"size:120"`
	Notes          *string   `gorm:"type:text"`
}

func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}
