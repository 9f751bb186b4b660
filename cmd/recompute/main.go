package main

import (
	"context"
	"errors"
	"log"
	"time"

	"skill-pulse/internal/app"
	"skill-pulse/internal/config"
	"skill-pulse/internal/repository"
	"skill-pulse/internal/usecase"
)

// Batch recompute of every stored confidence index. Meant to run from
// cron so scores decay even for users who never log in.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	container, err := app.NewContainer(cfg, log.Default())
	if err != nil {
		log.Fatalf("failed to build container: %v", err)
	}
	defer func() {
		if err := container.Close(); err != nil {
			log.Printf("cleanup error: %v", err)
		}
	}()

	recordRepo := repository.NewPostgresSkillRecordRepository(container.DB)
	recomputeUC := usecase.NewRecomputeUsecase(recordRepo, container.Cache, container.Cache, container.Logger)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	summary, err := recomputeUC.RecomputeAll(ctx)
	if err != nil {
		if errors.Is(err, usecase.ErrRecomputeInProgress) {
			log.Printf("recompute already running elsewhere, exiting")
			return
		}
		log.Fatalf("recompute failed: %v", err)
	}

	log.Printf("recompute done: scanned=%d updated=%d", summary.Scanned, summary.Updated)
}
