package testutil

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/cocktails-rolodex/cocktails-api/internal/config"
	dbpkg "github.com/cocktails-rolodex/cocktails-api/internal/db"
)

// SetupDB opens an isolated in-memory sqlite database with the schema migrated.
func SetupDB(t *testing.T) *gorm.DB {
	t.Helper()

	cfg := &config.Config{
		Env:               config.EnvTest,
		DBDriver:          config.DriverSQLite,
		DBUrl:             fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()),
		DBMaxOpenConns:    1,
		DBMaxIdleConns:    1,
		DBConnMaxLifetime: time.Hour,
		DBConnMaxIdleTime: time.Hour,
	}

	db, err := dbpkg.NewDB(cfg)
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	return db
}
