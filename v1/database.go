package v1

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/society-rp/staff-portal/shared/utils"
	"github.com/society-rp/staff-portal/v1/models"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DatabaseConfig holds GORM database connection configuration
type DatabaseConfig struct {
	Driver          string // "postgres" or "sqlite"
	Host            string
	Port            string
	Username        string
	Password        string
	Database        string
	SSLMode         string
	SQLitePath      string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

// NewDatabaseConfig creates a database configuration from the environment
func NewDatabaseConfig() *DatabaseConfig {
	return &DatabaseConfig{
		Driver:          utils.GetEnvOrDefault("DB_DRIVER", "postgres"),
		Host:            utils.GetEnvOrDefault("DB_HOST", "localhost"),
		Port:            utils.GetEnvOrDefault("DB_PORT", "5432"),
		Username:        utils.GetEnvOrDefault("DB_USERNAME", "postgres"),
		Password:        utils.GetEnvOrDefault("DB_PASSWORD", "password"),
		Database:        utils.GetEnvOrDefault("DB_DATABASE", "staff_portal"),
		SSLMode:         utils.GetEnvOrDefault("DB_SSLMODE", "require"),
		SQLitePath:      utils.GetEnvOrDefault("DB_SQLITE_PATH", "staff_portal.db"),
		MaxOpenConns:    25,
		MaxIdleConns:    5,
		ConnMaxLifetime: time.Hour,
		ConnMaxIdleTime: 30 * time.Minute,
	}
}

// ConnectGormDB establishes a GORM connection and migrates the schema.
// SQLite is supported for local development; production runs on PostgreSQL.
func ConnectGormDB(config *DatabaseConfig) (*gorm.DB, error) {
	gormConfig := &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	}

	var db *gorm.DB
	var err error
	switch config.Driver {
	case "sqlite":
		db, err = gorm.Open(sqlite.Open(config.SQLitePath), gormConfig)
	default:
		dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			config.Host, config.Port, config.Username, config.Password, config.Database, config.SSLMode)
		db, err = gorm.Open(postgres.Open(dsn), gormConfig)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(config.MaxOpenConns)
	sqlDB.SetMaxIdleConns(config.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(config.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(config.ConnMaxIdleTime)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err := MigrateSchema(db); err != nil {
		return nil, err
	}

	slog.Info("Connected to database", "driver", config.Driver, "database", config.Database)
	return db, nil
}

// MigrateSchema creates the roster tables and the cadet/guide tables. The
// Account shape is migrated once per roster table.
func MigrateSchema(db *gorm.DB) error {
	for _, spec := range []*models.RosterSpec{&models.DirectoryRoster, &models.SwatRoster, &models.InternalAffairsRoster} {
		if err := db.Table(spec.Table).AutoMigrate(&models.Account{}); err != nil {
			return fmt.Errorf("failed to migrate %s: %w", spec.Table, err)
		}
	}
	if err := db.AutoMigrate(&models.CadetEntry{}, &models.Guide{}); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}
