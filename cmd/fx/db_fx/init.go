package db_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"foodiesbnb/internal/config"
	"foodiesbnb/internal/infra"
	"foodiesbnb/pkg/sessioncache"
)

var Module = fx.Provide(
	provideDB, provideSessionCache)

func provideDB(cfg config.Config) *gorm.DB {
	return infra.InitPostgresql(cfg)
}

func provideSessionCache() sessioncache.Store {
	return sessioncache.NewMemoryStore()
}
