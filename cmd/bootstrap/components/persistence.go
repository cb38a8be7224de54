package components

import (
	"venuehub/internal/infra/db"
	"venuehub/internal/infra/readstore"
	"venuehub/internal/infra/settings"
	"venuehub/internal/infra/uow"
	"venuehub/internal/pkg/config"
	"venuehub/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,
		func(cfg config.Config) config.SettingsConfig { return cfg.Settings },

		// UnitOfWork owns the write side: repositories are created per
		// transaction inside it, so only read stores are wired here.
		uow.NewPostgresUoW,

		readstore.NewSettingsReadStore,
		settings.NewProvider,

		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
		fx.Annotate(
			readstore.NewRefundReadStore,
			fx.As(new(queries.RefundReadStore)),
		),
		fx.Annotate(
			readstore.NewVendorReadStore,
			fx.As(new(queries.VendorReadStore)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
