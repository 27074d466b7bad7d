package bootstrap

import (
	"log/slog"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/init-pkg/column-mapper/internal/config"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

func coreOptions() fx.Option {
	return fx.Options(
		fx.Provide(
			config.MustLoad,
			NewLogger,
			newValidator,
			newHttpServer,
		),
		fx.WithLogger(func(log *slog.Logger) fxevent.Logger {
			return &fxevent.SlogLogger{Logger: log}
		}),
	)
}

// NewLogger writes JSON to stdout, at debug level in the local environment.
func NewLogger(cfg *config.Config) *slog.Logger {
	level := slog.LevelInfo
	if cfg.Env == "local" {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
}

func newValidator() *validator.Validate {
	return validator.New(validator.WithRequiredStructEnabled())
}
