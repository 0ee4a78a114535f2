// Command server runs the file storage HTTP service.
package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/rise-and-shine/filevault/internal/config"
	"github.com/rise-and-shine/filevault/internal/crypto"
	"github.com/rise-and-shine/filevault/internal/domain"
	"github.com/rise-and-shine/filevault/internal/logger"
	"github.com/rise-and-shine/filevault/internal/mask"
	"github.com/rise-and-shine/filevault/internal/pg"
	"github.com/rise-and-shine/filevault/internal/repository/postgres"
	"github.com/rise-and-shine/filevault/internal/server"
	"github.com/rise-and-shine/filevault/internal/server/handler"
	"github.com/rise-and-shine/filevault/internal/server/middleware"
	"github.com/rise-and-shine/filevault/internal/service"
	"github.com/rise-and-shine/filevault/internal/storage/minio"
)

func main() {
	cfg := config.MustLoad()

	log, err := logger.New(cfg.Logger)
	if err != nil {
		panic(err)
	}
	defer log.Sync() //nolint:errcheck // best effort on shutdown

	log = log.Named(cfg.ServiceName)
	log.Infow("configuration loaded", mask.Fields(cfg)...)

	db, err := pg.NewBunDB(cfg.Postgres)
	if err != nil {
		log.Fatalw("failed to connect to postgres", "error", err)
	}
	defer db.Close() //nolint:errcheck // process is exiting

	store, err := minio.New(cfg.Minio)
	if err != nil {
		log.Fatalw("failed to connect to object storage", "error", err)
	}

	svc := service.New(
		domain.NewIDGenerator(),
		crypto.NewAESProvider(),
		store,
		postgres.New(db),
		log,
	)

	srv := server.NewHTTPServer(cfg.HTTP, []server.Middleware{
		middleware.NewRecoveryMW(log),
		middleware.NewMetaInjectMW(cfg.ServiceName),
		middleware.NewTimeoutMW(cfg.HTTP.HandleTimeout),
		middleware.NewLoggerMW(log),
		middleware.NewErrorHandlerMW(cfg.HTTP.HideErrorDetails),
	})
	srv.RegisterRouter(handler.New(svc, log).RegisterRoutes)

	go func() {
		log.Infow("http server starting", "addr", cfg.HTTP.Address())
		if err := srv.Start(); err != nil {
			log.Fatalw("http server stopped unexpectedly", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")
	if err := srv.Stop(); err != nil {
		log.Errorw("graceful shutdown failed", "error", err)
	}
}
