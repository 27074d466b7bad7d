package mapping_module

import (
	"log/slog"

	"github.com/init-pkg/column-mapper/domain/app"
	mapping_cache "github.com/init-pkg/column-mapper/internal/app/mapping/cache"
	industry_classifier_service "github.com/init-pkg/column-mapper/internal/app/mapping/classifier"
	column_mapper_service "github.com/init-pkg/column-mapper/internal/app/mapping/column"
	mapping_events "github.com/init-pkg/column-mapper/internal/app/mapping/events"
	external_mapping_service "github.com/init-pkg/column-mapper/internal/app/mapping/external"
	mapping_service "github.com/init-pkg/column-mapper/internal/app/mapping/general"
	schema_registry "github.com/init-pkg/column-mapper/internal/app/mapping/registry"
	review_repository "github.com/init-pkg/column-mapper/internal/app/mapping/review"
	column_mapping_http_handler "github.com/init-pkg/column-mapper/internal/app/mapping/transports/http"
	openai_client "github.com/init-pkg/column-mapper/internal/clients/openai"
	"github.com/init-pkg/column-mapper/internal/config"
	"go.uber.org/fx"
)

func Register() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(schema_registry.Default, fx.As(new(app.SchemaRegistry))),
			fx.Annotate(newClassifier, fx.As(new(app.IndustryClassifier))),
			fx.Annotate(newColumnMapper, fx.As(new(app.ColumnMapperService))),
			fx.Annotate(newExternal, fx.As(new(app.ExternalMappingService))),
			mapping_cache.New,
			mapping_events.New,
			review_repository.New,
			fx.Annotate(mapping_service.New, fx.As(new(app.MappingService))),
			column_mapping_http_handler.New,
		),
	)
}

func newClassifier(registry app.SchemaRegistry, cfg *config.Config) *industry_classifier_service.Service {
	return industry_classifier_service.New(registry, cfg.Mapping.DefaultIndustry)
}

func newColumnMapper(
	registry app.SchemaRegistry,
	classifier app.IndustryClassifier,
	cfg *config.Config,
	log *slog.Logger,
) *column_mapper_service.ColumnMapperService {
	return column_mapper_service.New(registry, classifier, cfg.Mapping.Threshold, log)
}

func newExternal(
	client *openai_client.Client,
	registry app.SchemaRegistry,
	cache app.MappingCache,
	cfg *config.Config,
	log *slog.Logger,
) *external_mapping_service.ExternalMappingService {
	var completer external_mapping_service.Completer
	if cfg.Clients.OpenAI.Enabled {
		completer = client
	}
	return external_mapping_service.New(completer, registry, cache, external_mapping_service.OptionsFromConfig(cfg), log)
}
