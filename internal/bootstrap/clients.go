package bootstrap

import (
	openai_client "github.com/init-pkg/column-mapper/internal/clients/openai"
	postgres_client "github.com/init-pkg/column-mapper/internal/clients/postgres"
	rabbitmq_client "github.com/init-pkg/column-mapper/internal/clients/rabbitmq"
	redis_client "github.com/init-pkg/column-mapper/internal/clients/redis"
	"go.uber.org/fx"
)

func clientsOptions() fx.Option {
	return fx.Options(
		fx.Provide(
			openai_client.New,
			redis_client.New,
			rabbitmq_client.New,
			postgres_client.New,
		),
	)
}
