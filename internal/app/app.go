package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"newswire/config"
	"newswire/internal/adapter/in/rest"
	memstore "newswire/internal/adapter/out/storage/inmemory"
	pgstore "newswire/internal/adapter/out/storage/postgres"
	"newswire/internal/database"
	"newswire/internal/service"
	"newswire/pkg/logger"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

type App struct {
	cfg  config.Config
	srv  *http.Server
	pool *pgxpool.Pool
}

func NewApp(ctx context.Context, cfg config.Config) (*App, error) {
	log := logger.FromContext(ctx)

	var (
		postStorage service.PostStorage
		pool        *pgxpool.Pool
	)

	switch cfg.StorageType {
	case "postgres":
		if err := database.Migrate(cfg.Postgres.GetDSN()); err != nil {
			return nil, fmt.Errorf("migrate: %w", err)
		}

		var err error
		pool, err = pgxpool.New(ctx, cfg.Postgres.GetDSN())
		if err != nil {
			return nil, fmt.Errorf("pgxpool: %w", err)
		}
		if err := pool.Ping(ctx); err != nil {
			pool.Close()
			return nil, fmt.Errorf("postgres ping: %w", err)
		}
		postStorage = pgstore.NewPostStorage(pool, trmpgx.DefaultCtxGetter)

	default:
		postStorage = memstore.NewPostStorage()
	}

	postSvc := service.NewPostService(postStorage)

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(rest.RequestLogger(log), gin.Recovery())
	router.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	rest.NewHandler(postSvc).Register(router)

	addr := ":" + cfg.HTTP.Port
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	log.Info("app initialized", "addr", addr, "storage", cfg.StorageType)
	return &App{cfg: cfg, srv: srv, pool: pool}, nil
}

func (a *App) Run(ctx context.Context) error {
	log := logger.FromContext(ctx)

	errCh := make(chan error, 1)
	go func() {
		log.Info("http server listening", "addr", a.srv.Addr)
		errCh <- a.srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown requested")
		shCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = a.srv.Shutdown(shCtx)
		if a.pool != nil {
			a.pool.Close()
		}
		return nil

	case err := <-errCh:
		if a.pool != nil {
			a.pool.Close()
		}
		return err
	}
}
