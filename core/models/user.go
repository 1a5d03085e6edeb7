package models

type User struct {
	ID             uint   `gorm:"primaryKey;autoIncrement"`
	Email          string `gorm:"uniqueIndex;size:255;not null"`
	HashedPassword string `gorm:"size:255;not null"`
	Role           Role   `gorm:"size:20;not null;default:employee"`
	EmployeeID     *uint  `gorm:"index"`
}
