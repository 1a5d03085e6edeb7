package core

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"simplehr.com/simplehr/core/models"
)

// EnsureAdmin creates an admin account linked to a placeholder employee
// when no admin exists yet. It returns true when an account was created.
func EnsureAdmin(db *gorm.DB, email string, hashedPassword string) (bool, error) {
	var admin models.User
	err := db.Where("role = ?", models.RoleAdmin).Take(&admin).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, fmt.Errorf("failed to look up admin: %w", err)
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		emp := models.Employee{
			FirstName:      "Admin",
			LastName:       "User",
			Email:          email,
			EmploymentType: "W2",
			Status:         "active",
			StartDate:      time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		}
		if err := tx.Create(&emp).Error; err != nil {
			return err
		}
		user := models.User{
			Email:          email,
			HashedPassword: hashedPassword,
			Role:           models.RoleAdmin,
			EmployeeID:     &emp.ID,
		}
		return tx.Create(&user).Error
	})
	if err != nil {
		return false, fmt.Errorf("failed to seed admin: %w", err)
	}
	return true, nil
}
