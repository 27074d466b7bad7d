package bootstrap

import (
	"github.com/gofiber/fiber/v3"
	mapping_module "github.com/init-pkg/column-mapper/internal/app/mapping"
	column_mapping_http_handler "github.com/init-pkg/column-mapper/internal/app/mapping/transports/http"
	sheet_parser_module "github.com/init-pkg/column-mapper/internal/app/sheet-parser"
	"go.uber.org/fx"
)

func appOptions() fx.Option {
	return fx.Options(
		sheet_parser_module.Register(),
		mapping_module.Register(),

		fx.Invoke(
			registerHttpHandlers,
		),
	)
}

func registerHttpHandlers(mainApp *fiber.App, columnMappings *column_mapping_http_handler.ColumnMappingHttpHandler) {
	columnMappings.Register(mainApp)
}
