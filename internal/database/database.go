package database

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"transaction-tree/internal/config"
	"transaction-tree/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const connectTimeout = 5 * time.Second

// DB wraps the gorm handle used by the transaction store
type DB struct {
	*gorm.DB
	config *config.DatabaseConfig
}

// schemaIndexes back the child lookup, the by-type listing and the live-row filter.
var schemaIndexes = []string{
	"CREATE INDEX IF NOT EXISTS idx_transactions_parent_id ON transactions(parent_id)",
	"CREATE INDEX IF NOT EXISTS idx_transactions_type ON transactions(type)",
	"CREATE INDEX IF NOT EXISTS idx_transactions_active ON transactions(is_deleted) WHERE is_deleted = false",
}

// New opens the configured driver, sizes the pool and verifies the connection
func New(cfg *config.DatabaseConfig) (*DB, error) {
	gdb, err := gorm.Open(dialector(cfg), &gorm.Config{
		Logger:  logger.Default.LogMode(logger.Warn),
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", cfg.Driver, err)
	}

	db := &DB{DB: gdb, config: cfg}
	if err := db.configurePool(); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	if err := db.Ping(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to reach %s database: %w", cfg.Driver, err)
	}

	return db, nil
}

func dialector(cfg *config.DatabaseConfig) gorm.Dialector {
	if cfg.Driver == config.DriverSQLite {
		return sqlite.Open(cfg.DSN())
	}
	return postgres.Open(cfg.DSN())
}

func (db *DB) configurePool() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}

	maxOpen := db.config.MaxConnections
	if db.config.Driver == config.DriverSQLite {
		// sqlite allows a single writer; extra connections only produce SQLITE_BUSY.
		maxOpen = 1
	}

	sqlDB.SetMaxOpenConns(maxOpen)
	sqlDB.SetMaxIdleConns(min(db.config.MaxIdleConns, maxOpen))
	sqlDB.SetConnMaxLifetime(db.config.ConnMaxLifetime)
	return nil
}

// Ping checks connectivity within ctx
func (db *DB) Ping(ctx context.Context) error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// HealthCheck is Ping bounded by the connect timeout
func (db *DB) HealthCheck() error {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()
	return db.Ping(ctx)
}

func (db *DB) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// AutoMigrate brings the transactions table in line with models.Transaction
func (db *DB) AutoMigrate() error {
	return db.DB.AutoMigrate(&models.Transaction{})
}

// CreateIndexes applies schemaIndexes. A failed index is logged and skipped;
// sqlite releases without partial index support must still start.
func (db *DB) CreateIndexes() error {
	for _, stmt := range schemaIndexes {
		if err := db.Exec(stmt).Error; err != nil {
			slog.Warn("index not created", "statement", stmt, "error", err)
		}
	}
	return nil
}

// Initialize connects and prepares the schema. Postgres goes through the SQL
// migrations first when AUTO_MIGRATE is set; AutoMigrate then fills in
// whatever they did not create, for both drivers.
func Initialize(cfg *config.Config) (*DB, error) {
	db, err := New(&cfg.Database)
	if err != nil {
		return nil, err
	}

	if cfg.Database.Driver == config.DriverPostgres {
		if err := db.runSQLMigrations(); err != nil {
			slog.Warn("migration runner failed, falling back to AutoMigrate", "error", err)
		}
	}

	if err := db.AutoMigrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	_ = db.CreateIndexes()

	slog.Info("database initialized", "driver", cfg.Database.Driver)
	return db, nil
}

func (db *DB) runSQLMigrations() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}
	return RunMigrationsIfEnabled(sqlDB)
}
