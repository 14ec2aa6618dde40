package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"quizmaster/internal/config"
	"quizmaster/internal/database"
	"quizmaster/internal/logger"
	"quizmaster/internal/quizfile"
	"quizmaster/internal/repository"
	"quizmaster/internal/service"
	"quizmaster/internal/validation"

	"go.uber.org/zap"
)

const defaultSeedFile = "configs/seed_data/initial_quizzes.json"

func main() {
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage: seed [file ...]")
		fmt.Fprintf(os.Stderr, "loads %s when no file is given; .json files hold an array of quizzes, anything else uses the text layout\n", defaultSeedFile)
	}
	flag.Parse()
	files := flag.Args()
	if len(files) == 0 {
		files = []string{defaultSeedFile}
	}

	ctx := context.Background()
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	l, err := logger.New(cfg.Logger)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = l.Sync() }()

	db, err := database.NewSQLXDB(ctx, cfg.DB.Driver, cfg.GetDSN(), l)
	if err != nil {
		l.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()
	if cfg.DB.AutoMigrate {
		if err := database.RunMigrations(db.DB, cfg.DB.Driver, database.Up, l); err != nil {
			l.Fatal("Failed to run migrations", zap.Error(err))
		}
	}

	catalog := service.NewCatalogService(
		repository.NewCatalogDatabaseAdapter(db),
		repository.NewTransactionManagerAdapter(db, l),
		l,
	)
	v := validation.NewValidator()

	failed := 0
	for _, path := range files {
		quizzes, err := quizfile.Load(path, v)
		if err != nil {
			l.Error("Failed to read quiz file", zap.String("path", path), zap.Error(err))
			failed++
			continue
		}
		for _, quiz := range quizzes {
			id, err := catalog.CreateQuiz(ctx, quiz)
			if err != nil {
				l.Error("Failed to create quiz", zap.String("path", path), zap.String("title", quiz.Title), zap.Error(err))
				failed++
				continue
			}
			l.Info("Quiz created",
				zap.Int64("quiz_id", id),
				zap.String("title", quiz.Title),
				zap.Int("questions", len(quiz.Questions)))
		}
	}

	if failed > 0 {
		l.Error("Seeding finished with errors", zap.Int("failed", failed))
		_ = l.Sync()
		os.Exit(1)
	}
	l.Info("Seeding completed")
}
