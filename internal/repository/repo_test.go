package repository

import (
	"context"
	"path/filepath"
	"testing"

	"go-pos-backend/internal/model"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "pos.db")), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&model.Product{},
		&model.InventoryChange{},
		&model.Transaction{},
		&model.TransactionItem{},
		&model.User{},
	))
	return db
}

func seedProduct(t *testing.T, db *gorm.DB, id, name string, price int64, stock int) {
	t.Helper()
	require.NoError(t, db.Create(&model.Product{
		ID:       id,
		Name:     name,
		Price:    price,
		Stock:    stock,
		Category: "food",
	}).Error)
}

func productStock(t *testing.T, db *gorm.DB, id string) int {
	t.Helper()
	var product model.Product
	require.NoError(t, db.First(&product, "id = ?", id).Error)
	return product.Stock
}

func testCtx() context.Context {
	return context.Background()
}
