// Command token mints a bearer token signed with the configured jwt.secret_key.
// Logins are handled outside this service; this is for local use and tests.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"quizmaster/internal/config"
	"quizmaster/internal/domain"
	"quizmaster/internal/logger"
	"quizmaster/internal/service"
)

func main() {
	userID := flag.String("user", "", "user id carried by the token")
	admin := flag.Bool("admin", false, "grant the admin role")
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime")
	flag.Parse()

	if *userID == "" {
		fmt.Fprintln(os.Stderr, "usage: token -user <id> [-admin] [-ttl 24h]")
		os.Exit(2)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	l, err := logger.New(cfg.Logger)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	tokens, err := service.NewTokenService(cfg.JWT, l)
	if err != nil {
		log.Fatalf("Failed to create token service: %v", err)
	}

	role := domain.RoleUser
	if *admin {
		role = domain.RoleAdmin
	}
	token, err := tokens.CreateJWT(*userID, role, *ttl)
	if err != nil {
		log.Fatalf("Failed to sign token: %v", err)
	}
	fmt.Println(token)
}
