package app

import (
	"context"
	"errors"
	"log"
	"time"

	"skill-compass/internal/config"
	"skill-compass/internal/database"
	dbpostgres "skill-compass/internal/database/postgres"
	"skill-compass/internal/database/schema"
	"skill-compass/internal/domain/recommend"
	"skill-compass/internal/index"
	"skill-compass/internal/infrastructure/cache"
	"skill-compass/internal/repository"
)

type Container struct {
	Config config.Config
	DB     database.DB
	Cache  *cache.Redis
	Index  *index.Index
	Logger *log.Logger
}

func NewContainer(cfg config.Config, logger *log.Logger) (*Container, error) {
	if logger == nil {
		logger = log.Default()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	if err := schema.Ensure(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	ix, err := buildIndex(ctx, db, logger)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Container{
		Config: cfg,
		DB:     db,
		Cache:  cache.NewRedis(logger),
		Index:  ix,
		Logger: logger,
	}, nil
}

// buildIndex loads every stored occupation vector and builds the in-memory
// similarity index. The index is rebuilt only by restarting after an
// ingestion run. An empty taxonomy is allowed so the server can come up
// before the first ingestion; recommendations just return nothing.
func buildIndex(ctx context.Context, db database.DB, logger *log.Logger) (*index.Index, error) {
	repo := repository.NewPostgresOccupationRepository(db)
	vectors, err := repo.ListVectors(ctx)
	if err != nil {
		return nil, err
	}

	entries := make([]index.Entry, 0, len(vectors))
	for _, v := range vectors {
		entries = append(entries, index.Entry{URI: v.URI, Vector: recommend.Vector(v.Embedding)})
	}

	ix, err := index.Build(entries)
	if err != nil {
		if errors.Is(err, index.ErrEmptyIndex) {
			logger.Printf("[Index] no occupation vectors found, serving an empty index")
			return &index.Index{}, nil
		}
		return nil, err
	}

	logger.Printf("[Index] built with %d occupation vectors (dim=%d)", ix.Len(), ix.Dim())
	return ix, nil
}

func (c *Container) Close() error {
	if c == nil || c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
