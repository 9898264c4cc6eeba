package handler

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/harbifirsat/shopping-agent/internal/agent"
	"github.com/harbifirsat/shopping-agent/internal/platform/models"
	"github.com/harbifirsat/shopping-agent/internal/platform/rabbitmq"
	"github.com/harbifirsat/shopping-agent/pkg/v1/commander"
	"github.com/rs/zerolog"
)

// Runner runs searches and stages deals.
type Runner interface {
	Run(ctx context.Context, params agent.RunParams) (*models.RunResult, error)
	RunKeyword(ctx context.Context, keyword, categoryName string, params agent.RunParams) (*models.RunResult, error)
}

// Defaults are run parameters used when a command doesn't override them.
type Defaults struct {
	MaxQueries         int
	MinDiscountPercent float64
}

// RMQHandler handles RMQ run commands.
type RMQHandler struct {
	rmq        *rabbitmq.RabbitMQ
	agent      Runner
	defaults   Defaults
	resultsKey string
	logger     *zerolog.Logger
}

// NewHandler returns new RMQHandler publishing run results to resultsKey.
func NewHandler(
	rmq *rabbitmq.RabbitMQ,
	agent Runner,
	defaults Defaults,
	resultsKey string,
	logger *zerolog.Logger,
) *RMQHandler {
	return &RMQHandler{
		rmq:        rmq,
		agent:      agent,
		defaults:   defaults,
		resultsKey: resultsKey,
		logger:     logger,
	}
}

// Start starts consuming and handling run commands from RMQ.
func (h *RMQHandler) Start(ctx context.Context, queue string) error {
	errorsChan, err := h.rmq.Consume(ctx, queue, func(ctx context.Context, message []byte) error {
		cmd, err := decodeMessage(message)
		if err != nil {
			return err
		}

		h.logger.Debug().
			Str("keyword", cmd.Keyword).
			Msg("run started")

		result, runErr := h.run(ctx, cmd)

		if result != nil {
			if err := h.publishResult(ctx, result); err != nil {
				h.logger.Error().Err(err).Msg("can't publish run result")
			}
		}

		if runErr != nil {
			return fmt.Errorf("run failed: %w", runErr)
		}

		h.logger.Debug().
			Int("dealsCreated", result.DealsCreated).
			Msg("run finished")

		return nil
	})
	if err != nil {
		return err
	}

	go func() {
		for err := range errorsChan {
			h.logger.Error().
				Err(err).
				Msg("can't handle message")
		}
	}()

	return nil
}

// run translates the command into run parameters and dispatches to the
// single-keyword or full run.
func (h *RMQHandler) run(ctx context.Context, cmd *commander.RunCommand) (*models.RunResult, error) {
	params := agent.RunParams{
		MaxQueries:         h.defaults.MaxQueries,
		MinDiscountPercent: h.defaults.MinDiscountPercent,
		CreateDeals:        cmd.CreateDeals,
	}
	if cmd.MaxQueries > 0 {
		params.MaxQueries = cmd.MaxQueries
	}
	if cmd.MinDiscountPercent != nil {
		params.MinDiscountPercent = *cmd.MinDiscountPercent
	}

	if cmd.Keyword != "" {
		return h.agent.RunKeyword(ctx, cmd.Keyword, cmd.Category, params)
	}

	return h.agent.Run(ctx, params)
}

func (h *RMQHandler) publishResult(ctx context.Context, result *models.RunResult) error {
	msg, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("can't marshal run result: %w", err)
	}

	return h.rmq.Publish(ctx, h.resultsKey, msg)
}

func decodeMessage(msg []byte) (*commander.RunCommand, error) {
	var cmd commander.RunCommand
	err := json.Unmarshal(msg, &cmd)
	if err != nil {
		return nil, fmt.Errorf("can't decode run command: %w", err)
	}

	return &cmd, err
}
