package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/golang-migrate/migrate/v4"
	pgmigrate "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/JpabloRR1/API-BUSQUEDA-EMPLEO/config"
	"github.com/JpabloRR1/API-BUSQUEDA-EMPLEO/internal/container"
	"github.com/JpabloRR1/API-BUSQUEDA-EMPLEO/internal/infrastructure/cache"
	"github.com/JpabloRR1/API-BUSQUEDA-EMPLEO/internal/infrastructure/messaging"
	pginfra "github.com/JpabloRR1/API-BUSQUEDA-EMPLEO/internal/infrastructure/postgres"
	"github.com/JpabloRR1/API-BUSQUEDA-EMPLEO/internal/infrastructure/search"
	"github.com/JpabloRR1/API-BUSQUEDA-EMPLEO/internal/router"
	"github.com/JpabloRR1/API-BUSQUEDA-EMPLEO/pkg/helpers"
	"github.com/JpabloRR1/API-BUSQUEDA-EMPLEO/pkg/validation"
)

func main() {
	_ = godotenv.Load() // load .env if present

	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName, cfg.Env)
	gin.SetMode(cfg.GinMode)
	validation.Init()

	ctx := context.Background()

	pool, err := pginfra.NewPool(ctx, cfg.PostgresDSN(), cfg.DBMaxConns, cfg.DBMinConns, cfg.DBMaxConnLife)
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}
	defer pool.Close()

	if err := runMigrations(cfg.PostgresDSN(), cfg.MigrationsDir, logger); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	opts := container.Options{Clock: helpers.SystemClock{}}

	if cfg.RedisAddr != "" {
		rdb := cache.NewClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		defer func() { _ = rdb.Close() }()
		if err := rdb.Ping(ctx).Err(); err != nil {
			helpers.LogWarn(logger, "redis unavailable, offer cache disabled", err, logrus.Fields{"addr": cfg.RedisAddr})
		} else {
			opts.Cache = cache.NewOfferCache(rdb, cfg.OfferCacheTTL)
		}
	}

	if addrs := cfg.ESAddrs(); len(addrs) > 0 {
		es, err := search.NewClient(addrs, cfg.ElasticsearchUser, cfg.ElasticsearchPass)
		if err != nil {
			helpers.LogWarn(logger, "elasticsearch client init failed, search disabled", err, nil)
		} else {
			opts.Search = search.NewOfferIndex(es, cfg.ESOffersIndex)
		}
	}

	if cfg.MailSendEnabled {
		pub, err := messaging.NewRabbitPublisher(cfg.RabbitMQURL, cfg.RabbitMQEmailQueue)
		if err != nil {
			helpers.LogWarn(logger, "rabbitmq unavailable, emails disabled", err, logrus.Fields{"queue": cfg.RabbitMQEmailQueue})
		} else {
			defer pub.Close()
			opts.Notifier = messaging.NewEmailNotifier(pub, cfg)
		}
	}

	c := container.New(cfg, logger, container.PostgresRepositories(pool), opts)

	if n, err := c.Sessions.PurgeExpired(ctx); err != nil {
		helpers.LogWarn(logger, "purge expired sessions failed", err, nil)
	} else if n > 0 {
		helpers.LogInfo(logger, "purged expired sessions", logrus.Fields{"count": n})
	}

	r := router.New(c)

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: r, ReadHeaderTimeout: 10 * time.Second}
	go func() {
		logger.Infof("server starting on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server")

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctxShutdown); err != nil {
		logger.Fatalf("server forced to shutdown: %v", err)
	}
	logger.Info("server exited properly")
}

func runMigrations(dsn string, migrationsDir string, logger *logrus.Logger) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()
	driver, err := pgmigrate.WithInstance(db, &pgmigrate.Config{})
	if err != nil {
		return err
	}
	m, err := migrate.NewWithDatabaseInstance(fmt.Sprintf("file://%s", migrationsDir), "postgres", driver)
	if err != nil {
		return err
	}
	logger.Info("running migrations...")
	err = m.Up()
	if errors.Is(err, migrate.ErrNoChange) {
		logger.Info("no migrations to run")
		return nil
	}
	return err
}
