package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/caarlos0/env/v6"
	"github.com/harbifirsat/shopping-agent/cmd/agent/config"
	"github.com/harbifirsat/shopping-agent/internal/agent"
	"github.com/harbifirsat/shopping-agent/internal/handler"
	"github.com/harbifirsat/shopping-agent/internal/platform/rabbitmq"
	"github.com/harbifirsat/shopping-agent/internal/platform/storage"
	"github.com/harbifirsat/shopping-agent/internal/queries"
	"github.com/harbifirsat/shopping-agent/internal/searcher"
	_ "github.com/lib/pq"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
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

	amqpConnection, err := amqp.Dial(cfg.RabbitMQ.URL)
	if err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't open RabbitMQ connection")
	}

	conn, err := rabbitmq.NewRabbitMQ(amqpConnection, cfg.RabbitMQ.Exchange, cfg.RabbitMQ.Queue)
	if err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't open RabbitMQ connection")
	}

	pgDB, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't open Postgres connection")
	}

	store := storage.NewPostgres(pgDB)

	ag := agent.NewAgent(
		queries.NewAggregator(store, store, cfg.TrendingKeywordLimit, &logger),
		searcher.NewClient(
			&http.Client{Timeout: cfg.HTTPTimeout},
			searcher.Config{
				APIKey:       cfg.SerpAPI.APIKey,
				BaseURL:      cfg.SerpAPI.BaseURL,
				Engine:       cfg.SerpAPI.Engine,
				Country:      cfg.SerpAPI.Country,
				Language:     cfg.SerpAPI.Language,
				GoogleDomain: cfg.SerpAPI.GoogleDomain,
				NumResults:   cfg.SerpAPI.NumResults,
			},
			&logger,
		),
		store,
		rate.NewLimiter(rate.Every(cfg.QueryDelay), 1),
		&logger,
	)

	han := handler.NewHandler(
		conn,
		ag,
		handler.Defaults{
			MaxQueries:         cfg.MaxQueries,
			MinDiscountPercent: cfg.MinDiscountPercent,
		},
		cfg.RabbitMQ.ResultsKey,
		&logger,
	)

	// start consuming and handling messages
	err = han.Start(ctx, cfg.RabbitMQ.Queue)
	if err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't start consuming")
	}

	logger.Info().Msg("shopping agent up and running")

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
