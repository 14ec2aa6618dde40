package main

import (
	"context"
	"flag"
	"log"

	"quizmaster/internal/config"
	"quizmaster/internal/database"
	"quizmaster/internal/logger"

	"go.uber.org/zap"
)

func main() {
	down := flag.Bool("down", false, "roll back the most recent migration instead of applying pending ones")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	l, err := logger.New(cfg.Logger)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = l.Sync() }()

	db, err := database.NewSQLXDB(context.Background(), cfg.DB.Driver, cfg.GetDSN(), l)
	if err != nil {
		l.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	direction := database.Up
	if *down {
		direction = database.Down
	}
	if err := database.RunMigrations(db.DB, cfg.DB.Driver, direction, l); err != nil {
		l.Fatal("Failed to run migrations", zap.Error(err))
	}
}
