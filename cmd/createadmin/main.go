package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/spf13/pflag"

	"simplehr.com/simplehr/config"
	"simplehr.com/simplehr/core"
	"simplehr.com/simplehr/core/models"
	"simplehr.com/simplehr/users"
)

// createadmin adds a login, or resets the password of an existing one.
func main() {
	var email, password, role string
	var employeeID uint

	flagSet := pflag.NewFlagSet("createadmin", pflag.ContinueOnError)
	flagSet.StringVar(&email, "email", "", "login email (required)")
	flagSet.StringVar(&password, "password", "", "password (required)")
	flagSet.StringVar(&role, "role", string(models.RoleAdmin), "admin, manager or employee")
	flagSet.UintVar(&employeeID, "employee-id", 0, "employee record to link")
	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		log.Fatal(err)
	}
	if email == "" || password == "" {
		fmt.Fprintln(os.Stderr, "usage: createadmin --email EMAIL --password PASSWORD [--role ROLE] [--employee-id ID]")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	dm, err := core.New(cfg.DSN, 1, cfg.DBLogLevel)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer dm.Close()

	if err := dm.Exec(context.Background(), core.Migrate); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	existing, err := users.FindByEmail(dm.DB, email)
	switch {
	case err == nil:
		if err := users.SetPassword(dm.DB, existing.ID, password); err != nil {
			log.Fatalf("failed to reset password: %v", err)
		}
		log.Printf("password reset for %s", email)
	case errors.Is(err, users.ErrUserNotFound):
		u, err := users.Create(dm.DB, users.CreateInput{
			Email:      email,
			Password:   password,
			Role:       models.Role(role),
			EmployeeID: employeeID,
		})
		if err != nil {
			log.Fatalf("failed to create user: %v", err)
		}
		log.Printf("created %s user %s (id %d)", u.Role, u.Email, u.ID)
	default:
		log.Fatalf("failed to look up %s: %v", email, err)
	}
}
