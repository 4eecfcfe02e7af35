package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"learnboard/internal/config"
	"learnboard/internal/database"
	"learnboard/internal/logger"

	"go.uber.org/zap"
)

// parseArgs reads "up", "down" or "down --all". No argument means up.
func parseArgs(args []string) (database.Direction, bool, error) {
	if len(args) == 0 {
		return database.Up, false, nil
	}
	fs := flag.NewFlagSet(args[0], flag.ContinueOnError)
	all := fs.Bool("all", false, "roll back every migration")
	if err := fs.Parse(args[1:]); err != nil {
		return "", false, err
	}
	if fs.NArg() > 0 {
		return "", false, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	switch args[0] {
	case "up":
		if *all {
			return "", false, fmt.Errorf("--all is only valid with down")
		}
		return database.Up, false, nil
	case "down":
		return database.Down, *all, nil
	default:
		return "", false, fmt.Errorf("unknown command %q", args[0])
	}
}

func main() {
	dir, all, err := parseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\nusage: migrate [up | down [--all]]\n", err)
		os.Exit(2)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	l := logger.Get()
	defer logger.Sync()

	db, err := database.NewSQLXDB(cfg)
	if err != nil {
		l.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	l.Info("Running migrations",
		zap.String("driver", cfg.DB.Driver),
		zap.String("direction", string(dir)),
		zap.Bool("all", all))
	if err := database.RunMigrations(db, cfg.DB.Driver, dir, all); err != nil {
		l.Fatal("Failed to run migrations", zap.Error(err))
	}
	l.Info("Migrations finished")
}
