// Package testdb opens throwaway sqlite databases with the production schema.
package testdb

import (
	"testing"

	"github.com/Eursukkul/partywknd/config"
	"github.com/Eursukkul/partywknd/pkg/database"
	"gorm.io/gorm"
)

// New returns an empty in-memory database that is closed when the test ends.
func New(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := database.Open(config.DatabaseConfig{
		Driver:   "sqlite",
		URL:      "file::memory:?_foreign_keys=on",
		LogLevel: "silent",
	})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	t.Cleanup(func() { database.Close(db) })
	return db
}
