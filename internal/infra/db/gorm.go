package db

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/isafmcl/Integra-o-com-ERP/internal/config"
)

// Connect opens the store and returns the root *gorm.DB. DATABASE_URL wins
// over the discrete DB_* fields when present.
func Connect(cfg config.Config) (*gorm.DB, error) {
	if cfg.DatabaseURL != "" {
		return gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
	}
	return gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
}
