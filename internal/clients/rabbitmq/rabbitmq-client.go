package rabbitmq_client

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/init-pkg/column-mapper/internal/config"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/fx"
)

// New returns nil when the broker is disabled.
func New(lc fx.Lifecycle, cfg *config.Config, log *slog.Logger) (*amqp.Connection, error) {
	if !cfg.Broker.Enabled {
		return nil, nil
	}

	conn, err := amqp.Dial(cfg.Broker.Url)
	if err != nil {
		return nil, fmt.Errorf("amqp dial: %w", err)
	}
	log.Info("amqp connected", "exchange", cfg.Broker.Exchange)

	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			if conn.IsClosed() {
				return nil
			}
			return conn.Close()
		},
	})

	return conn, nil
}
