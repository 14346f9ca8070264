package bootstrap

import (
	"log/slog"

	"wayfarer/internal/infra/supplier"
	"wayfarer/internal/pkg/config"
	"wayfarer/internal/usecase/commands"
	"wayfarer/internal/usecase/queries"

	"go.uber.org/fx"
)

var SupplierModule = fx.Module("supplier",
	fx.Provide(
		fx.Annotate(
			NewSupplierClient,
			fx.As(new(commands.SupplierGateway)),
			fx.As(new(queries.SupplierReader)),
		),
	),
)

func NewSupplierClient(cfg config.Config, logger *slog.Logger) *supplier.Client {
	return supplier.NewClient(cfg.Supplier, logger)
}
