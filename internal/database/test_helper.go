package database

import (
	"testing"

	"transaction-tree/internal/config"
	"transaction-tree/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupTestDB opens a private in-memory sqlite database with the schema applied
func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	// A single connection keeps every query on the same in-memory database.
	db, err := gorm.Open(sqlite.Open("file::memory:"), gormConfig)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	testDB := &DB{
		DB: db,
		config: &config.DatabaseConfig{
			Driver:         config.DriverSQLite,
			MaxConnections: 1,
			MaxIdleConns:   1,
		},
	}

	if err := testDB.AutoMigrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	t.Cleanup(func() {
		_ = testDB.Close()
	})

	return testDB
}

// CreateTestTransaction inserts a shopping transaction under parentID ("" for a root)
func CreateTestTransaction(t *testing.T, db *DB, parentID string, amount string) *models.Transaction {
	t.Helper()

	transaction := &models.Transaction{
		ParentID: models.StringPtr(parentID),
		Type:     models.TransactionTypeShopping,
		Amount:   models.NewAmount(decimal.RequireFromString(amount)),
	}

	if err := db.Create(transaction).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}

	return transaction
}

// ForceParent rewrites parent_id bypassing model hooks, for building malformed graphs
func ForceParent(t *testing.T, db *DB, id, parentID string) {
	t.Helper()

	if err := db.Exec("UPDATE transactions SET parent_id = ? WHERE id = ?", parentID, id).Error; err != nil {
		t.Fatalf("failed to force parent: %v", err)
	}
}

// CleanupTestDB removes every transaction row
func CleanupTestDB(t *testing.T, db *DB) {
	t.Helper()

	if err := db.Exec("DELETE FROM transactions").Error; err != nil {
		t.Logf("failed to cleanup table transactions: %v", err)
	}
}
