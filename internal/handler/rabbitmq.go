// Package handler consumes price list import commands from RabbitMQ.
package handler

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/retail-automation/orders/internal/importer"
	"github.com/retail-automation/orders/internal/metrics"
	"github.com/retail-automation/orders/internal/platform/rabbitmq"
	"github.com/retail-automation/orders/pkg/v1/commander"
	"github.com/rs/zerolog"
)

// Importer imports price lists from price list urls.
type Importer interface {
	Import(ctx context.Context, shopID int, url string) (*importer.Stats, error)
}

// RMQHandler handles RMQ messages.
type RMQHandler struct {
	rmq      *rabbitmq.RabbitMQ
	importer Importer
	logger   *zerolog.Logger
}

// NewHandler returns new RMQHandler.
func NewHandler(rmq *rabbitmq.RabbitMQ, importer Importer, logger *zerolog.Logger) *RMQHandler {
	return &RMQHandler{
		rmq:      rmq,
		importer: importer,
		logger:   logger,
	}
}

// Start starts consuming and handling import commands from RMQ.
func (h *RMQHandler) Start(ctx context.Context, queue string) error {
	errorsChan, err := h.rmq.Consume(ctx, queue, func(ctx context.Context, message []byte) error {
		cmd, err := decodeMessage(message)
		if err != nil {
			metrics.ImportsTotal.WithLabelValues(metrics.StatusError).Inc()
			return err
		}

		h.logger.Debug().
			Int("shopId", cmd.ShopID).
			Str("url", cmd.URL).
			Msg("import started")

		stats, err := h.importer.Import(ctx, cmd.ShopID, cmd.URL)
		if err != nil {
			metrics.ImportsTotal.WithLabelValues(metrics.StatusError).Inc()
			return fmt.Errorf("import failed: %w", err)
		}

		metrics.ImportsTotal.WithLabelValues(metrics.StatusOK).Inc()
		metrics.ImportedGoods.Add(float64(stats.Goods))

		h.logger.Debug().
			Int("shopId", cmd.ShopID).
			Str("shopName", stats.ShopName).
			Int("goods", stats.Goods).
			Dur("took", stats.Took).
			Msg("import finished")

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

func decodeMessage(msg []byte) (*commander.ImportCommand, error) {
	var cmd commander.ImportCommand
	err := json.Unmarshal(msg, &cmd)
	if err != nil {
		return nil, fmt.Errorf("can't decode import command: %w", err)
	}

	return &cmd, err
}
