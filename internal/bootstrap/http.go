package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"net"

	swagger "github.com/Flussen/swagger-fiber-v3"
	"github.com/gofiber/fiber/v3"
	_ "github.com/init-pkg/column-mapper/docs"
	column_mapping_http_handler "github.com/init-pkg/column-mapper/internal/app/mapping/transports/http"
	"github.com/init-pkg/column-mapper/internal/config"
	"go.uber.org/fx"
)

func newHttpServer(lc fx.Lifecycle, cfg *config.Config, log *slog.Logger) *fiber.App {
	mainApp := fiber.New(fiber.Config{
		AppName:      "column-mapper",
		BodyLimit:    cfg.Http.BodyLimit,
		ErrorHandler: column_mapping_http_handler.NewErrorHandler(log),
	})

	mainApp.Get("/swagger/*", swagger.HandlerDefault)

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			ln, err := net.Listen("tcp", cfg.Http.Addr)
			if err != nil {
				return err
			}
			go func() {
				err := mainApp.Listener(ln, fiber.ListenConfig{DisableStartupMessage: true})
				if err != nil && !errors.Is(err, net.ErrClosed) {
					log.Error("http server stopped", "error", err)
				}
			}()
			log.Info("http server started", "addr", cfg.Http.Addr)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return mainApp.ShutdownWithContext(ctx)
		},
	})

	return mainApp
}
