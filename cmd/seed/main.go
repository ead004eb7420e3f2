package main

import (
	"context"
	"log/slog"
	"os"

	"newswire/config"
	"newswire/internal/adapter/out/storage/postgres"
	"newswire/internal/database"
	"newswire/internal/seed"
	"newswire/pkg/logger"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	log := logger.New()
	slog.SetDefault(log)
	ctx := logger.WithLogger(context.Background(), log)

	cfg := config.LoadConfig()
	if cfg.StorageType != "postgres" {
		log.Error("seed requires STORAGE_TYPE=postgres")
		os.Exit(1)
	}

	if err := database.Migrate(cfg.Postgres.GetDSN()); err != nil {
		log.Error("migrate failed", "error", err)
		os.Exit(1)
	}

	pool, err := pgxpool.New(ctx, cfg.Postgres.GetDSN())
	if err != nil {
		log.Error("pgxpool failed", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	st := postgres.NewPostStorage(pool, trmpgx.DefaultCtxGetter)
	trManager := manager.Must(trmpgx.NewDefaultFactory(pool))

	if err := seed.Run(ctx, st, trManager); err != nil {
		log.Error("seed failed", "error", err)
		os.Exit(1)
	}
}
