package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/golang-migrate/migrate/v4"
	"github.com/retail-automation/orders/cmd/orders/config"
	"github.com/retail-automation/orders/internal/admin"
	"github.com/retail-automation/orders/internal/decoder"
	"github.com/retail-automation/orders/internal/fetcher"
	"github.com/retail-automation/orders/internal/handler"
	"github.com/retail-automation/orders/internal/importer"
	"github.com/retail-automation/orders/internal/platform/rabbitmq"
	"github.com/retail-automation/orders/internal/platform/storage"
	"github.com/retail-automation/orders/pkg/v1/commander"
	"github.com/rs/zerolog"

	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"
	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	// UserAgent is user agent header value used when fetching price list files.
	UserAgent = "orders/0.0.1"

	shutdownTimeout = 10 * time.Second
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())

	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	var cfg config.Config
	if err := env.Parse(&cfg); err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't parse env variables")
	}

	if err := runMigrations(&cfg); err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't run migrations")
	}

	amqpConnection, err := amqp.Dial(cfg.RabbitMQ.URL)
	if err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't open RabbitMQ connection")
	}

	conn, err := rabbitmq.NewRabbitMQ(amqpConnection, cfg.RabbitMQ.Exchange)
	if err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't open RabbitMQ channel")
	}

	pgDB, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't open Postgres connection")
	}

	pg := storage.NewPostgres(pgDB)

	imp := importer.NewImporter(
		fetcher.NewFetcher(&http.Client{Timeout: cfg.HTTPTimeout}, UserAgent),
		decoder.NewDecoder(),
		pg,
	)

	han := handler.NewHandler(conn, imp, &logger)

	// start consuming and handling import commands
	if err := han.Start(ctx, cfg.RabbitMQ.ImportQueue); err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't start consuming")
	}

	importCommander := commander.NewImportCommander(
		commander.NewRabbitMQSender(conn, cfg.RabbitMQ.ImportKey),
	)

	adminServer := &http.Server{
		Addr:    cfg.AdminAddr,
		Handler: admin.NewServer(pg, importCommander, &logger).Router(),
	}
	go func() {
		if err := adminServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error().
				Err(err).
				Msg("admin server failed")
			cancel()
		}
	}()

	logger.Info().Msg("orders service up and running")

	// handle graceful shutdown and context cancellation
	termChan := make(chan os.Signal, 1)
	signal.Notify(termChan, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-termChan:
		cancel()
	case <-ctx.Done():
	}

	logger.Info().Msg("graceful shutdown start")

	// wait for consumer to finish
	<-conn.Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()
	if err := adminServer.Shutdown(shutdownCtx); err != nil {
		logger.Error().
			Err(err).
			Msg("can't shut down admin server")
	}

	// close connections
	wg := sync.WaitGroup{}
	wg.Add(2)

	go func() {
		defer wg.Done()
		if err := pgDB.Close(); err != nil {
			logger.Fatal().
				Err(err).
				Msg("can't close Postgres connection")
		}
	}()

	go func() {
		defer wg.Done()
		if err := amqpConnection.Close(); err != nil {
			logger.Fatal().
				Err(err).
				Msg("can't close RabbitMQ connection")
		}
	}()

	wg.Wait()

	logger.Info().Msg("graceful shutdown successful")
}

func runMigrations(cfg *config.Config) error {
	mig, err := migrate.New("file://"+cfg.MigrationsPath, cfg.DatabaseURL)
	if err != nil {
		return err
	}

	if err := mig.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}

	sourceErr, dbErr := mig.Close()
	if sourceErr != nil {
		return sourceErr
	}

	return dbErr
}
