package core

import (
	"fmt"

	"gorm.io/gorm"
	"simplehr.com/simplehr/core/models"
)

// Models lists every table owned by the application.
func Models() []interface{} {
	return []interface{}{
		&models.Employee{},
		&models.User{},
		&models.Timesheet{},
		&models.Candidate{},
		&models.OnboardingTask{},
	}
}

func Migrate(db *gorm.DB) error {
	for _, m := range Models() {
		if err := db.AutoMigrate(m); err != nil {
			return fmt.Errorf("failed to migrate %T: %w", m, err)
		}
	}
	return nil
}
