package main

import (
	"flag"
	"fmt"
	"log"

	"ticket-commerce-platform/internal/config"
	"ticket-commerce-platform/internal/database"
	"ticket-commerce-platform/internal/models"
	"ticket-commerce-platform/internal/repositories"
	"ticket-commerce-platform/internal/utils"
)

func main() {
	var (
		account  = flag.String("account", "admin", "Admin account name")
		email    = flag.String("email", "admin@example.com", "Admin email")
		password = flag.String("password", "", "Admin password (required)")
	)
	flag.Parse()

	if *password == "" {
		log.Fatal("Usage: go run cmd/create-admin/main.go -password <password> [-account admin] [-email admin@example.com]")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	dbConfig := database.Config{
		URL:      cfg.Database.URL,
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		DBName:   cfg.Database.DBName,
		SSLMode:  cfg.Database.SSLMode,
	}

	db, err := database.NewConnection(dbConfig)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	userRepo := repositories.NewUserRepository(db.DB)

	// Promote instead of failing if the account already exists
	if existing, err := userRepo.GetByAccount(*account); err == nil {
		if err := userRepo.SetRole(existing.ID, models.RoleAdmin); err != nil {
			log.Fatal("Failed to promote user:", err)
		}
		fmt.Printf("Existing user %q (ID %d) promoted to admin\n", existing.Account, existing.ID)
		return
	}

	passwordHash, err := utils.HashPassword(*password)
	if err != nil {
		log.Fatal("Failed to hash password:", err)
	}

	user, err := userRepo.Create(&models.UserCreateRequest{
		Account:  *account,
		Email:    *email,
		Password: *password,
	}, passwordHash)
	if err != nil {
		log.Fatal("Failed to create admin user:", err)
	}

	if err := userRepo.SetRole(user.ID, models.RoleAdmin); err != nil {
		log.Fatal("Failed to set admin role:", err)
	}

	fmt.Printf("Admin user %q created with ID %d\n", user.Account, user.ID)
}
