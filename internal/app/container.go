package app

import (
	"context"
	"log"
	"time"

	"skill-pulse/internal/config"
	"skill-pulse/internal/database"
	"skill-pulse/internal/database/migration"
	dbpostgres "skill-pulse/internal/database/postgres"
	"skill-pulse/internal/database/seeder"
	"skill-pulse/internal/infrastructure/cache"
)

type Container struct {
	Config config.Config
	DB     database.DB
	Cache  *cache.Redis
	Logger *log.Logger
}

func NewContainer(cfg config.Config, logger *log.Logger) (*Container, error) {
	if logger == nil {
		logger = log.Default()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	return &Container{
		Config: cfg,
		DB:     db,
		Cache:  cache.NewRedis(logger),
		Logger: logger,
	}, nil
}

// Migrate applies pending SQL migrations and then seeds reference data.
func (c *Container) Migrate(ctx context.Context) error {
	if c == nil || c.DB == nil {
		return nil
	}

	runner := migration.Runner{}
	if err := runner.Run(ctx, c.DB.SQLDB()); err != nil {
		return err
	}

	seedRunner := seeder.Runner{Seeders: seeder.Defaults()}
	return seedRunner.Run(ctx, c.DB)
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
