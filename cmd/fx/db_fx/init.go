package db_fx

import (
	"context"

	"go.uber.org/fx"
	"gorm.io/gorm"

	"subpay/internal/infra"
	"subpay/internal/repositories"
	"subpay/pkg/config"
)

var Module = fx.Provide(
	provideDB,
	repositories.NewPlanRepository,
	repositories.NewUserRepository,
	repositories.NewPaymentRepository,
)

func provideDB(lc fx.Lifecycle, cfg config.Config) *gorm.DB {
	db := infra.InitPostgresql(cfg.PostgresURL)

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			infra.ClosePostgresql(db)
			return nil
		},
	})

	return db
}
