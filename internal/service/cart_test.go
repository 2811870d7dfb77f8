package service

import (
	"context"
	"sync"
	"testing"

	"toko-storefront/internal/model"
	"toko-storefront/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newCartFixture(t *testing.T) (CartService, *gorm.DB) {
	t.Helper()

	db := newTestDB(t)
	productRepo := repository.NewProductRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	svc := NewCartService(db, testLogger(), productRepo, orderRepo)

	return svc, db
}

func TestAddItemCreatesOpenOrderAndLineItem(t *testing.T) {
	svc, db := newCartFixture(t)
	ctx := context.Background()
	createProduct(t, db, "Batik Shirt", "batik-shirt", "Clothing", "100.00", "")

	item, n, err := svc.AddItem(ctx, "user-1", "batik-shirt")
	require.NoError(t, err)

	assert.Equal(t, "ITEM_ADDED", n.Code)
	assert.Equal(t, 1, item.Quantity)

	var order model.Order
	require.NoError(t, db.Where("user_id = ?", "user-1").First(&order).Error)
	assert.False(t, order.Ordered)
	require.NotNil(t, item.OrderID)
	assert.Equal(t, order.ID, *item.OrderID)

	assert.EqualValues(t, 1, countRows(t, db, &model.Order{}))
	assert.EqualValues(t, 1, countRows(t, db, &model.LineItem{}))
}

func TestAddItemTwiceMergesIntoOneLineItem(t *testing.T) {
	svc, db := newCartFixture(t)
	ctx := context.Background()
	createProduct(t, db, "Batik Shirt", "batik-shirt", "Clothing", "100.00", "")

	_, _, err := svc.AddItem(ctx, "user-1", "batik-shirt")
	require.NoError(t, err)

	item, n, err := svc.AddItem(ctx, "user-1", "batik-shirt")
	require.NoError(t, err)

	assert.Equal(t, "QUANTITY_UPDATED", n.Code)
	assert.Equal(t, 2, item.Quantity)
	assert.EqualValues(t, 1, countRows(t, db, &model.LineItem{}))
	assert.EqualValues(t, 1, countRows(t, db, &model.Order{}))
}

func TestAddItemSecondProductJoinsSameOrder(t *testing.T) {
	svc, db := newCartFixture(t)
	ctx := context.Background()
	createProduct(t, db, "Batik Shirt", "batik-shirt", "Clothing", "100.00", "")
	createProduct(t, db, "Rattan Bag", "rattan-bag", "Accessories", "35.00", "")

	first, _, err := svc.AddItem(ctx, "user-1", "batik-shirt")
	require.NoError(t, err)
	second, _, err := svc.AddItem(ctx, "user-1", "rattan-bag")
	require.NoError(t, err)

	assert.Equal(t, *first.OrderID, *second.OrderID)
	assert.EqualValues(t, 1, countRows(t, db, &model.Order{}))
	assert.EqualValues(t, 2, countRows(t, db, &model.LineItem{}))
}

func TestAddItemUnknownSlug(t *testing.T) {
	svc, _ := newCartFixture(t)

	_, _, err := svc.AddItem(context.Background(), "user-1", "does-not-exist")
	assert.ErrorIs(t, err, repository.ErrProductNotFound)
}

func TestRemoveItemDeletesRow(t *testing.T) {
	svc, db := newCartFixture(t)
	ctx := context.Background()
	createProduct(t, db, "Batik Shirt", "batik-shirt", "Clothing", "100.00", "")

	_, _, err := svc.AddItem(ctx, "user-1", "batik-shirt")
	require.NoError(t, err)

	n, err := svc.RemoveItem(ctx, "user-1", "batik-shirt")
	require.NoError(t, err)

	assert.Equal(t, "ITEM_REMOVED", n.Code)
	assert.EqualValues(t, 0, countRows(t, db, &model.LineItem{}))
}

func TestRemoveItemWithoutActiveOrderIsNoOp(t *testing.T) {
	svc, db := newCartFixture(t)
	createProduct(t, db, "Batik Shirt", "batik-shirt", "Clothing", "100.00", "")

	n, err := svc.RemoveItem(context.Background(), "user-1", "batik-shirt")
	require.NoError(t, err)

	assert.Equal(t, "NO_ACTIVE_ORDER", n.Code)
	assert.EqualValues(t, 0, countRows(t, db, &model.Order{}))
}

func TestRemoveItemNotInCartIsNoOp(t *testing.T) {
	svc, db := newCartFixture(t)
	ctx := context.Background()
	createProduct(t, db, "Batik Shirt", "batik-shirt", "Clothing", "100.00", "")
	createProduct(t, db, "Rattan Bag", "rattan-bag", "Accessories", "35.00", "")

	_, _, err := svc.AddItem(ctx, "user-1", "batik-shirt")
	require.NoError(t, err)

	n, err := svc.RemoveItem(ctx, "user-1", "rattan-bag")
	require.NoError(t, err)

	assert.Equal(t, "ITEM_NOT_IN_CART", n.Code)
	assert.EqualValues(t, 1, countRows(t, db, &model.LineItem{}))
}

// Concurrent adds for the same user must merge into a single open order and
// a single line item; the partial unique indexes are the enforcement.
func TestConcurrentAddItemKeepsOneOpenOrder(t *testing.T) {
	svc, db := newCartFixture(t)
	ctx := context.Background()
	createProduct(t, db, "Batik Shirt", "batik-shirt", "Clothing", "100.00", "")

	const workers = 8
	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _, err := svc.AddItem(ctx, "user-1", "batik-shirt")
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}

	assert.EqualValues(t, 1, countRows(t, db, &model.Order{}))
	assert.EqualValues(t, 1, countRows(t, db, &model.LineItem{}))

	var item model.LineItem
	require.NoError(t, db.First(&item).Error)
	assert.Equal(t, workers, item.Quantity)
}
