// Package database holds the GORM persistence adapters.
package database

import (
	"fmt"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"forecastapi.app/internal/ports"
	"forecastapi.app/pkg/errors"
)

// Open connects to the database named by cfg.Driver ("postgres" or "sqlite")
func Open(cfg ports.DatabaseConfig) (*gorm.DB, error) {
	dialector, err := dialectorFor(cfg)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, errors.NewDatabaseError("connect to database", err)
	}

	return db, nil
}

// Migrate creates or updates the tables used by the repositories
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&UserModel{}, &FavoriteCityModel{}); err != nil {
		return errors.NewDatabaseError("auto migrate", err)
	}
	// one row per user and city regardless of case
	if err := db.Exec(favoriteCityUniqueIndex).Error; err != nil {
		return errors.NewDatabaseError("create favorite city index", err)
	}
	return nil
}

const favoriteCityUniqueIndex = `CREATE UNIQUE INDEX IF NOT EXISTS idx_favorite_cities_user_city
	ON favorite_cities (username, LOWER(city_name))`

// Close releases the underlying connection pool
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func dialectorFor(cfg ports.DatabaseConfig) (gorm.Dialector, error) {
	switch strings.ToLower(cfg.Driver) {
	case "", "postgres":
		dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
			cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Name, cfg.SSLMode)
		return postgres.Open(dsn), nil
	case "sqlite":
		path := cfg.SQLitePath
		if path == "" {
			path = "forecast.db"
		}
		return sqlite.Open(path), nil
	default:
		return nil, errors.NewConfigurationError(fmt.Sprintf("unsupported database driver: %s", cfg.Driver), nil)
	}
}

// isUniqueViolation matches the duplicate-key messages of both supported drivers
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if err == gorm.ErrDuplicatedKey {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "duplicate key")
}
