package main

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/curbz/visor3d/internal/config"
	"github.com/curbz/visor3d/internal/logging"
	"github.com/curbz/visor3d/internal/server"
)

func main() {
	path := config.Path()
	cfg, err := config.Load(path)
	if err != nil {
		// running without a config file is fine, a broken one is not
		if !errors.Is(err, fs.ErrNotExist) {
			log.Fatalf("Error reading configuration file %s: %v", path, err)
		}
		def := config.Default()
		cfg = &def
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		log.Fatalf("Error configuring logger: %v", err)
	}

	if !logger.IsLevelEnabled(log.DebugLevel) {
		gin.SetMode(gin.ReleaseMode)
	}

	srv := server.New(cfg, logger)
	if err := srv.Preflight(); err != nil {
		logger.Fatalf("FATAL: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := srv.Run(ctx); err != nil {
		logger.Fatalf("FATAL: %v", err)
	}
	logger.Info("viewer stopped")
}
