package components

import (
	"wayfarer/internal/infra/draftstore"
	"wayfarer/internal/infra/repository"
	"wayfarer/internal/pkg/clock"
	"wayfarer/internal/pkg/config"
	"wayfarer/internal/usecase/commands"
	"wayfarer/internal/usecase/queries"

	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		// Draft store (Redis, TTL mirrors offer expiry)
		fx.Annotate(
			NewDraftStore,
			fx.As(new(commands.DraftStore)),
			fx.As(new(queries.DraftReader)),
		),
		// Confirmed orders (Postgres)
		fx.Annotate(
			repository.NewOrderRepository,
			fx.As(new(commands.OrderRepository)),
			fx.As(new(queries.OrderReader)),
		),
	),
)

func NewDraftStore(cfg config.Config, clk clock.Clock) *draftstore.RedisStore {
	return draftstore.NewRedisStore(cfg.Redis, clk)
}
