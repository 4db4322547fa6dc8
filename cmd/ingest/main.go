// Command ingest loads textbooks from local files without going through the API.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"sync/atomic"
	"syscall"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"quiz-maker/internal/config"
	"quiz-maker/internal/database"
	"quiz-maker/internal/logger"
	"quiz-maker/internal/repository"
	"quiz-maker/internal/service"
)

func main() {
	formatFlag := flag.String("format", "text", "question source: text or sheet")
	author := flag.String("author", "", "author recorded for every file")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [-format text|sheet] [-author a] FILE...\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	format, err := service.ParseIngestFormat(*formatFlag)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	if err := logger.Initialize(cfg.Logger); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	log := logger.Named("ingest")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.Open(ctx, cfg)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	ingestService := service.NewIngestService(
		repository.NewTextbookDatabaseAdapter(db),
		repository.NewQuestionDatabaseAdapter(db),
		repository.NewTransactionManagerAdapter(db),
		nil,
		cfg,
	)

	concurrency := cfg.Ingest.Concurrency
	if concurrency <= 0 {
		concurrency = 1
	}

	var failed atomic.Int32
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for _, path := range flag.Args() {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			base := filepath.Base(path)
			summary, err := ingestService.IngestFile(gctx, service.IngestRequest{
				Title:    strings.TrimSuffix(base, filepath.Ext(base)),
				Author:   *author,
				FilePath: path,
				Format:   format,
			})
			if err != nil {
				// one bad file does not stop the others
				failed.Add(1)
				log.Error("Failed to ingest file", zap.String("file", path), zap.Error(err))
				return nil
			}
			fmt.Printf("%s: textbook %s, %d chapters, %d questions\n", path, summary.TextbookID, summary.Chapters, summary.Questions)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Fatal("Batch ingest aborted", zap.Error(err))
	}

	if n := failed.Load(); n > 0 {
		log.Error("Batch ingest finished with failures", zap.Int32("failed", n), zap.Int("total", flag.NArg()))
		os.Exit(1)
	}
	log.Info("Batch ingest completed", zap.Int("files", flag.NArg()))
}
