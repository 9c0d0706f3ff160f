package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"syscall"

	"golang.org/x/term"

	"github.com/mazadclick/admin-access/internal/access"
	"github.com/mazadclick/admin-access/internal/config"
	"github.com/mazadclick/admin-access/internal/database"
	"github.com/mazadclick/admin-access/internal/logger"
	"github.com/mazadclick/admin-access/internal/model"
	"github.com/mazadclick/admin-access/internal/repository"
	"github.com/mazadclick/admin-access/internal/service"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)

	ctx := context.Background()

	// ─── Connect to PostgreSQL ─────────────────────────────────────────
	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	// New accounts have no sessions, so no revoker is needed.
	userService := service.NewUserService(repository.NewUserRepository(pool), nil, access.Default, log)
	authService := service.NewAuthService(cfg, nil)

	// ─── CLI Input ─────────────────────────────────────────────────────
	reader := bufio.NewReader(os.Stdin)

	fmt.Println("=== Create New Operator ===")

	fmt.Print("Enter Name: ")
	name, _ := reader.ReadString('\n')
	name = strings.TrimSpace(name)
	if name == "" {
		fmt.Println("Error: Name is required")
		return
	}

	fmt.Print("Enter Email: ")
	email, _ := reader.ReadString('\n')
	email = strings.TrimSpace(email)
	if email == "" || !strings.Contains(email, "@") {
		fmt.Println("Error: A valid email is required")
		return
	}

	fmt.Print("Enter Password: ")
	bytePassword, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		fmt.Println("Error reading password")
		return
	}
	password := string(bytePassword)
	if len(password) < 6 {
		fmt.Println("Error: Password must be at least 6 characters")
		return
	}

	role, ok := promptRole(reader)
	if !ok {
		return
	}

	// ─── Logic ─────────────────────────────────────────────────────────
	hash, err := authService.HashPassword(password)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to hash password")
	}

	user := &model.User{
		Email:        email,
		Name:         name,
		PasswordHash: hash,
		Role:         role,
	}
	if err := userService.Create(ctx, user); err != nil {
		log.Fatal().Err(err).Msg("Failed to create user")
	}

	fmt.Printf("\nSuccess! %s '%s' (%s) created with ID: %d\n", user.Role, user.Name, user.Email, user.ID)
}

func promptRole(reader *bufio.Reader) (model.Role, bool) {
	fmt.Println("Roles:")
	for i, r := range model.AllRoles {
		fmt.Printf("  %d) %s\n", i+1, r)
	}
	fmt.Print("Select Role (default 1): ")
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(input)
	if input == "" {
		return model.AllRoles[0], true
	}

	if n, err := strconv.Atoi(input); err == nil {
		if n < 1 || n > len(model.AllRoles) {
			fmt.Println("Error: Role number out of range")
			return "", false
		}
		return model.AllRoles[n-1], true
	}

	role := model.Role(strings.ToUpper(input))
	if !role.Valid() {
		fmt.Println("Error: Unknown role")
		return "", false
	}
	return role, true
}
