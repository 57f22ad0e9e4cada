package helper

import (
	"path/filepath"
	"restro_pos/model"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&model.Owner{},
		&model.Customer{},
		&model.Table{},
		&model.Product{},
		&model.InventoryItem{},
		&model.Order{},
		&model.OrderItem{},
		&model.Bill{},
	))
	return db
}
