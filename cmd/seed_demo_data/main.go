package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"learnboard/cmd/seed_demo_data/internal/seedmodels"
	"learnboard/internal/config"
	"learnboard/internal/database"
	"learnboard/internal/logger"
	"learnboard/internal/repository"
	"learnboard/internal/service"

	"go.uber.org/zap"
)

const (
	defaultSeedFile = "configs/seed_data/demo_learner.json"
	devTokenTTL     = 24 * time.Hour
)

func loadSeedFile(path string) (seedmodels.SeedLearner, error) {
	var learner seedmodels.SeedLearner
	byteValue, err := os.ReadFile(path)
	if err != nil {
		return learner, fmt.Errorf("failed to read seed file: %w", err)
	}
	if err := json.Unmarshal(byteValue, &learner); err != nil {
		return learner, fmt.Errorf("failed to unmarshal seed data: %w", err)
	}
	return learner, nil
}

func main() {
	seedFile := flag.String("file", defaultSeedFile, "path of the demo learner JSON file")
	flag.Parse()

	ctx := context.Background()
	cfg, err := config.LoadConfig()
	if err != nil {
		// If logger is not initialized yet, use fmt
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	log := logger.Get()

	log.Info("Starting demo data seeding process...", zap.String("driver", cfg.DB.Driver))
	db, err := database.NewSQLXDB(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	log.Info("Loading seed data from file", zap.String("path", *seedFile))
	learner, err := loadSeedFile(*seedFile)
	if err != nil {
		log.Fatal("Failed to load seed data", zap.Error(err))
	}

	loc, err := cfg.Location()
	if err != nil {
		log.Fatal("Invalid analytics timezone", zap.Error(err))
	}
	plan, err := buildPlan(learner, time.Now().In(loc))
	if err != nil {
		log.Fatal("Invalid seed data", zap.Error(err))
	}
	log.Info("Seed plan ready",
		zap.String("user_id", learner.UserID),
		zap.Int("topics", len(plan.Topics)),
		zap.Int("quizzes", len(plan.Quizzes)),
		zap.Int("answers", len(plan.Answers)),
		zap.Int("flashcards", len(plan.Flashcards)))

	tm := repository.NewTransactionManagerAdapter(db)
	writer := repository.NewSQLXSeedWriter(db)
	if err := tm.WithTransaction(ctx, func(txCtx context.Context) error {
		return plan.apply(txCtx, writer)
	}); err != nil {
		log.Fatal("Seeding failed, transaction rolled back", zap.Error(err))
	}
	log.Info("Demo data seeding process completed.")

	authService, err := service.NewAuthService(cfg.JWT.SecretKey)
	if err != nil {
		log.Warn("Skipping development token", zap.Error(err))
		return
	}
	token, err := authService.CreateJWT(ctx, learner.UserID, devTokenTTL)
	if err != nil {
		log.Warn("Failed to create development token", zap.Error(err))
		return
	}
	fmt.Printf("Development access token for %s (valid %s):\n%s\n", learner.UserID, devTokenTTL, token)
}
