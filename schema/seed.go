package schema

import (
	"database/sql"
	"errors"
	"log"

	"github.com/JaniDhruv/EduResolve/models"
	"github.com/JaniDhruv/EduResolve/repository"
	"github.com/JaniDhruv/EduResolve/utils"
)

// seedDepartments is the initial department roster. Existing rows are left
// untouched; seeding is idempotent.
var seedDepartments = []string{
	"Computer Science",
	"Electronics",
	"Mechanical",
	"Civil",
	"Administration",
}

// SeedDatabase inserts the department roster and a bootstrap admin account
// if none exists. Admins cannot self-register, so the first one has to come
// from here.
func SeedDatabase(db *sql.DB, adminEmail, adminPassword string) {
	departmentRepo := repository.NewDepartmentRepository(db)
	userRepo := repository.NewUserRepository(db)

	for _, name := range seedDepartments {
		if _, err := departmentRepo.EnsureDepartment(name); err != nil {
			log.Fatalf("[SCHEMA] Failed to seed department %s: %v", name, err)
		}
	}
	log.Printf("[SCHEMA] seeded %d departments", len(seedDepartments))

	if adminEmail == "" || adminPassword == "" {
		log.Println("[SCHEMA] ADMIN_EMAIL/ADMIN_PASSWORD not set, skipping bootstrap admin")
		return
	}

	_, err := userRepo.GetUserByEmail(adminEmail)
	if err == nil {
		log.Println("[SCHEMA] bootstrap admin exists")
		return
	}
	if !errors.Is(err, models.ErrNotFound) {
		log.Fatalf("[SCHEMA] Failed to check bootstrap admin: %v", err)
	}

	hash, err := utils.HashPassword(adminPassword)
	if err != nil {
		log.Fatalf("[SCHEMA] Failed to hash bootstrap admin password: %v", err)
	}

	admin := &models.User{
		Email:        adminEmail,
		FirstName:    "System",
		LastName:     "Administrator",
		PasswordHash: hash,
		Role:         models.RoleAdmin,
	}
	if err := userRepo.CreateUser(admin); err != nil {
		log.Fatalf("[SCHEMA] Failed to create bootstrap admin: %v", err)
	}
	log.Printf("[SCHEMA] created bootstrap admin %s", adminEmail)
}
