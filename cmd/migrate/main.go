package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"go.uber.org/zap"

	"quiz-maker/internal/config"
	"quiz-maker/internal/database"
	"quiz-maker/internal/logger"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [up|down]\n", os.Args[0])
	}
	flag.Parse()

	dir := database.Up
	if flag.NArg() > 0 {
		dir = database.Direction(flag.Arg(0))
	}
	if dir != database.Up && dir != database.Down {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := logger.Initialize(cfg.Logger); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	ctx := context.Background()
	db, err := database.Open(ctx, cfg)
	if err != nil {
		logger.Get().Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if err := database.RunMigrations(ctx, db, cfg.DB.Driver, dir); err != nil {
		logger.Get().Fatal("Failed to run migrations", zap.Error(err))
	}
}
