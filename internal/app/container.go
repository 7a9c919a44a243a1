package app

import (
	"context"
	"time"

	"jobboard/internal/config"
	"jobboard/internal/database"
	"jobboard/internal/database/migration"
	dbpostgres "jobboard/internal/database/postgres"
	"jobboard/internal/infrastructure/session"
	"jobboard/migrations"
)

type Container struct {
	Config   config.Config
	DB       database.DB
	Sessions *session.RevocationStore
}

func NewContainer(cfg config.Config) (*Container, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	runner := migration.Runner{FS: migrations.FS}
	if err := runner.Run(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return &Container{
		Config:   cfg,
		DB:       db,
		Sessions: session.NewRevocationStore(cfg.Redis),
	}, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.Sessions != nil {
		_ = c.Sessions.Close()
	}
	if c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
