package main

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/prestine-booking/internal/audit"
	"github.com/BruksfildServices01/prestine-booking/internal/cache"
	"github.com/BruksfildServices01/prestine-booking/internal/config"
	dbpkg "github.com/BruksfildServices01/prestine-booking/internal/db"
	"github.com/BruksfildServices01/prestine-booking/internal/infra/storage"
	"github.com/BruksfildServices01/prestine-booking/internal/logging"
	"github.com/BruksfildServices01/prestine-booking/internal/notify"
	"github.com/BruksfildServices01/prestine-booking/internal/routes"
	"github.com/BruksfildServices01/prestine-booking/internal/timezone"
)

func main() {

	cfg := config.Load()
	log := logging.New(cfg.LogLevel, cfg.LogFormat)
	timezone.SetBusiness(cfg.Timezone)

	db := dbpkg.NewDB(cfg, log)

	redisClient, err := cache.Connect(context.Background(), cfg)
	if err != nil {
		log.WithError(err).Warn("redis unavailable, blocked dates cache disabled")
	}
	if redisClient != nil {
		defer redisClient.Close()
	}

	notifier, closer, err := notify.New(cfg.Notify, log)
	if err != nil {
		log.WithError(err).Fatal("failed to configure notifications")
	}
	defer closer.Close()

	dispatcher := audit.NewDispatcher(audit.New(db), log)
	defer dispatcher.Close()

	infra := routes.Infra{
		DB:       db,
		Redis:    redisClient,
		Notifier: notifier,
		Audit:    dispatcher,
		Log:      log,
	}
	// A nil *S3Uploader must not become a non-nil interface.
	if uploader := storage.NewS3Uploader(cfg.S3); uploader != nil {
		infra.Uploader = uploader
	} else {
		log.Info("S3_BUCKET not set, booking export disabled")
	}

	if cfg.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, cfg, infra)

	log.Infof("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.WithError(err).Fatal("failed to start server")
	}
}
