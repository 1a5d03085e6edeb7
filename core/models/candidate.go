package models

import "time"

// Candidate is an applicant moving through the hiring pipeline. Stage holds
// one of the stage names defined by the hiring package.
type Candidate struct {
	ID        uint    `gorm:"primaryKey;autoIncrement"`
	FullName  string  `gorm:"size:255;not null"`
	Email     *string `gorm:"size:255"`
	Phone     *string `gorm:"size:50"`
	Position  *string `gorm:"size:120"`
	Source    *string `gorm:"size:120"`
	Stage     string  `gorm:"size:20;not null;default:APPLIED;index"`
	ResumeURL *string `gorm:"size:1024"`
	Notes     *string `gorm:"type:text"`
	CreatedAt time.Time
}
