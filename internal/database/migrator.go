package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

const (
	defaultMigrationsPath = "db/migrations"
	defaultSeedsPath      = "db/seeds"
)

var (
	maxRetries    = 30
	retryInterval = 2 * time.Second

	ErrMigrationsDirNotFound = errors.New("migrations directory not found")
)

// MigrationRunner applies the SQL migrations under db/migrations and optional seed files
type MigrationRunner struct {
	db             *sql.DB
	migrationsPath string
	seedsPath      string
}

// RunnerOption customises a MigrationRunner
type RunnerOption func(*MigrationRunner)

// WithMigrationsPath overrides the migrations directory
func WithMigrationsPath(path string) RunnerOption {
	return func(mr *MigrationRunner) {
		mr.migrationsPath = path
	}
}

// WithSeedsPath overrides the seeds directory
func WithSeedsPath(path string) RunnerOption {
	return func(mr *MigrationRunner) {
		mr.seedsPath = path
	}
}

func NewMigrationRunner(db *sql.DB, opts ...RunnerOption) *MigrationRunner {
	mr := &MigrationRunner{
		db:             db,
		migrationsPath: envOr("MIGRATIONS_PATH", defaultMigrationsPath),
		seedsPath:      envOr("SEEDS_PATH", defaultSeedsPath),
	}
	for _, opt := range opts {
		opt(mr)
	}
	return mr
}

// WaitForDatabase pings until the database answers, the retry budget runs out, or ctx ends
func (mr *MigrationRunner) WaitForDatabase(ctx context.Context) error {
	log.Println("Waiting for database to be ready...")

	for attempt := 1; attempt <= maxRetries; attempt++ {
		err := mr.db.PingContext(ctx)
		if err == nil {
			log.Println("Database is ready!")
			return nil
		}

		log.Printf("Database not ready (attempt %d/%d): %v", attempt, maxRetries, err)

		select {
		case <-ctx.Done():
			return fmt.Errorf("waiting for database: %w", ctx.Err())
		case <-time.After(retryInterval):
		}
	}

	return fmt.Errorf("database not ready after %d attempts", maxRetries)
}

// newMigrate binds a migrate instance to one connection checked out of mr.db.
// Release it with closeMigrate; closing the shared pool is left to the caller.
func (mr *MigrationRunner) newMigrate(ctx context.Context) (*migrate.Migrate, error) {
	if _, err := os.Stat(mr.migrationsPath); os.IsNotExist(err) {
		return nil, ErrMigrationsDirNotFound
	}

	absPath, err := filepath.Abs(mr.migrationsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to get absolute path for migrations: %w", err)
	}

	conn, err := mr.db.Conn(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to acquire migration connection: %w", err)
	}

	driver, err := postgres.WithConnection(ctx, conn, &postgres.Config{})
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to create postgres driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance("file://"+absPath, "postgres", driver)
	if err != nil {
		_ = driver.Close()
		return nil, fmt.Errorf("failed to create migration instance: %w", err)
	}

	return m, nil
}

func closeMigrate(m *migrate.Migrate) {
	if sourceErr, dbErr := m.Close(); sourceErr != nil || dbErr != nil {
		log.Printf("Warning: failed to close migration instance: source: %v, database: %v", sourceErr, dbErr)
	}
}

// Up applies every pending migration. A missing migrations directory is skipped.
func (mr *MigrationRunner) Up() error {
	m, err := mr.newMigrate(context.Background())
	if errors.Is(err, ErrMigrationsDirNotFound) {
		log.Printf("Migrations directory not found at %s, skipping migrations", mr.migrationsPath)
		return nil
	}
	if err != nil {
		return err
	}
	defer closeMigrate(m)

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("failed to get migration version: %w", err)
	}

	if dirty {
		log.Printf("Warning: database is in dirty state at version %d, forcing version", version)
		if err := m.Force(int(version)); err != nil {
			return fmt.Errorf("failed to force version: %w", err)
		}
	}

	err = m.Up()
	switch {
	case errors.Is(err, migrate.ErrNoChange):
		log.Println("No new migrations to apply")
		return nil
	case err != nil:
		return fmt.Errorf("migration failed: %w", err)
	}

	newVersion, _, err := m.Version()
	if err != nil {
		return fmt.Errorf("failed to get new migration version: %w", err)
	}
	log.Printf("Successfully applied migrations from version %d to %d", version, newVersion)

	return nil
}

// Down rolls back the given number of migrations
func (mr *MigrationRunner) Down(steps int) error {
	if steps < 1 {
		return fmt.Errorf("steps must be positive, got %d", steps)
	}

	m, err := mr.newMigrate(context.Background())
	if err != nil {
		return err
	}
	defer closeMigrate(m)

	if err := m.Steps(-steps); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("rollback failed: %w", err)
	}

	return nil
}

// Status returns the current schema version and dirty flag
func (mr *MigrationRunner) Status() (version uint, dirty bool, err error) {
	m, err := mr.newMigrate(context.Background())
	if err != nil {
		return 0, false, err
	}
	defer closeMigrate(m)

	return m.Version()
}

// LoadSeeds executes db/seeds/*.sql. Failing files are logged and skipped.
func (mr *MigrationRunner) LoadSeeds(ctx context.Context) error {
	if _, err := os.Stat(mr.seedsPath); os.IsNotExist(err) {
		log.Printf("Seeds directory not found at %s, skipping seed data", mr.seedsPath)
		return nil
	}

	files, err := filepath.Glob(filepath.Join(mr.seedsPath, "*.sql"))
	if err != nil {
		return fmt.Errorf("failed to find seed files: %w", err)
	}

	for _, file := range files {
		content, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("failed to read seed file %s: %w", file, err)
		}

		if _, err := mr.db.ExecContext(ctx, string(content)); err != nil {
			log.Printf("Warning: failed to execute seed file %s: %v", filepath.Base(file), err)
			continue
		}

		log.Printf("Executed seed file: %s", filepath.Base(file))
	}

	return nil
}

// RunMigrationsIfEnabled runs migrations when AUTO_MIGRATE=true, then seeds when SEED_DATABASE=true
func RunMigrationsIfEnabled(db *sql.DB) error {
	if os.Getenv("AUTO_MIGRATE") != "true" {
		log.Println("Auto-migration disabled (AUTO_MIGRATE != true)")
		return nil
	}

	ctx := context.Background()
	runner := NewMigrationRunner(db)

	if err := runner.WaitForDatabase(ctx); err != nil {
		return fmt.Errorf("database readiness check failed: %w", err)
	}

	if err := runner.Up(); err != nil {
		return fmt.Errorf("migration execution failed: %w", err)
	}

	if os.Getenv("SEED_DATABASE") != "true" {
		log.Println("Seed data loading disabled (SEED_DATABASE != true)")
		return nil
	}

	if err := runner.LoadSeeds(ctx); err != nil {
		log.Printf("Warning: seed data loading failed: %v", err)
	}

	return nil
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
