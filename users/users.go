package users

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
	"simplehr.com/simplehr/core/models"
	"simplehr.com/simplehr/employees"
	"simplehr.com/simplehr/security"
)

type CreateInput struct {
	Email      string
	Password   string
	Role       models.Role
	EmployeeID uint
}

type UpdateInput struct {
	Email      string
	Role       models.Role
	EmployeeID uint
}

func normalizeEmail(email string) (string, error) {
	email = strings.TrimSpace(email)
	if email == "" || !strings.Contains(email, "@") {
		return "", ErrInvalidEmail
	}
	return email, nil
}

func List(db *gorm.DB) ([]models.User, error) {
	var users []models.User
	if err := db.Order("id").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

func FindByID(db *gorm.DB, id uint) (*models.User, error) {
	var u models.User
	err := db.First(&u, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load user %d: %w", id, err)
	}
	return &u, nil
}

func FindByEmail(db *gorm.DB, email string) (*models.User, error) {
	var u models.User
	err := db.Where("email = ?", strings.TrimSpace(email)).Take(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load user %q: %w", email, err)
	}
	return &u, nil
}

// Authenticate returns the user owning email when password matches.
func Authenticate(db *gorm.DB, email, password string) (*models.User, error) {
	u, err := FindByEmail(db, email)
	if errors.Is(err, ErrUserNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if !security.CheckPassword(password, u.HashedPassword) {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

// employeeLink resolves a form employee id. Zero and unknown ids mean no
// link.
func employeeLink(db *gorm.DB, id uint) (*uint, error) {
	if id == 0 {
		return nil, nil
	}
	ok, err := employees.Exists(db, id)
	if err != nil || !ok {
		return nil, err
	}
	return &id, nil
}

func emailTaken(db *gorm.DB, email string, exceptID uint) (bool, error) {
	var n int64
	q := db.Model(&models.User{}).Where("email = ?", email)
	if exceptID != 0 {
		q = q.Where("id <> ?", exceptID)
	}
	if err := q.Count(&n).Error; err != nil {
		return false, fmt.Errorf("failed to check email: %w", err)
	}
	return n > 0, nil
}

func Create(db *gorm.DB, in CreateInput) (*models.User, error) {
	email, err := normalizeEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if in.Password == "" {
		return nil, ErrInvalidPassword
	}
	if _, err := models.ParseRole(string(in.Role)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRole, err)
	}

	taken, err := emailTaken(db, email, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrEmailAlreadyExists
	}

	link, err := employeeLink(db, in.EmployeeID)
	if err != nil {
		return nil, err
	}

	hash, err := security.HashPassword(in.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	u := models.User{
		Email:          email,
		HashedPassword: hash,
		Role:           in.Role,
		EmployeeID:     link,
	}
	if err := db.Create(&u).Error; err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return &u, nil
}

// Update edits the target account on behalf of actor. An admin cannot take
// the admin role away from their own account.
func Update(db *gorm.DB, actor *models.User, id uint, in UpdateInput) (*models.User, error) {
	target, err := FindByID(db, id)
	if err != nil {
		return nil, err
	}
	if _, err := models.ParseRole(string(in.Role)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRole, err)
	}
	if target.ID == actor.ID && !in.Role.IsAdmin() {
		return nil, ErrSelfDemotion
	}

	email, err := normalizeEmail(in.Email)
	if err != nil {
		return nil, err
	}
	taken, err := emailTaken(db, email, target.ID)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrEmailAlreadyExists
	}

	link, err := employeeLink(db, in.EmployeeID)
	if err != nil {
		return nil, err
	}

	target.Email = email
	target.Role = in.Role
	target.EmployeeID = link
	if err := db.Save(target).Error; err != nil {
		return nil, fmt.Errorf("failed to update user %d: %w", id, err)
	}
	return target, nil
}

func Delete(db *gorm.DB, actor *models.User, id uint) error {
	target, err := FindByID(db, id)
	if err != nil {
		return err
	}
	if target.ID == actor.ID {
		return ErrSelfDeletion
	}
	if err := db.Delete(&models.User{}, target.ID).Error; err != nil {
		return fmt.Errorf("failed to delete user %d: %w", id, err)
	}
	return nil
}

func SetPassword(db *gorm.DB, id uint, password string) error {
	if password == "" {
		return ErrInvalidPassword
	}
	if _, err := FindByID(db, id); err != nil {
		return err
	}
	hash, err := security.HashPassword(password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	if err := db.Model(&models.User{}).Where("id = ?", id).Update("hashed_password", hash).Error; err != nil {
		return fmt.Errorf("failed to set password for user %d: %w", id, err)
	}
	return nil
}
