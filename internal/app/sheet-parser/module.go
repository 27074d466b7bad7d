package sheet_parser_module

import (
	"github.com/init-pkg/column-mapper/domain/app"
	sheet_parser_service "github.com/init-pkg/column-mapper/internal/app/sheet-parser/service"
	"go.uber.org/fx"
)

func Register() fx.Option {
	return fx.Provide(
		fx.Annotate(sheet_parser_service.New, fx.As(new(app.SheetParserService))),
	)
}
