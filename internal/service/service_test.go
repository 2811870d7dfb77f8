package service

import (
	"io"
	"log/slog"
	"testing"

	"toko-storefront/internal/client"
	"toko-storefront/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestDB opens a private in-memory sqlite database. Pool size 1 keeps
// every transaction on the same connection, which both preserves the
// in-memory schema and serializes concurrent writers the way a server
// database would.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, client.Migrate(db))
	return db
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func createProduct(t *testing.T, db *gorm.DB, name, slug, category, price, discountPrice string) *model.Product {
	t.Helper()

	product := &model.Product{
		Name:     name,
		Slug:     slug,
		Category: category,
		Price:    decimal.RequireFromString(price),
	}
	if discountPrice != "" {
		d := decimal.RequireFromString(discountPrice)
		product.DiscountPrice = &d
	}

	require.NoError(t, db.Create(product).Error)
	return product
}

func countRows(t *testing.T, db *gorm.DB, value interface{}) int64 {
	t.Helper()

	var count int64
	require.NoError(t, db.Model(value).Count(&count).Error)
	return count
}
