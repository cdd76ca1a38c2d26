package db_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"tradeacademy/internal/config"
	"tradeacademy/internal/infra"
)

var Module = fx.Provide(
	provideDB)

func provideDB(cfg *config.Config) *gorm.DB {
	return infra.InitPostgres(cfg)
}
