package repository

import (
	"context"
	"errors"
	"time"

	"toko-storefront/internal/model"

	"gorm.io/gorm"
)

// OrderRepository persists orders and their line items. Methods taking a tx
// run inside the caller's transaction; the get-or-create paths rely on the
// partial unique indexes on (user, ordered=false) and (user, product,
// ordered=false) rather than application-level checks alone.
type OrderRepository interface {
	Create(ctx context.Context, tx *gorm.DB, order *model.Order) error
	// FindOpenByUser loads the active cart with items, products and address.
	FindOpenByUser(ctx context.Context, userID string) (*model.Order, error)
	FindOpenByUserTx(ctx context.Context, tx *gorm.DB, userID string) (*model.Order, error)
	AttachAddress(ctx context.Context, tx *gorm.DB, orderID, addressID uint) error
	// Finalize flips ordered=true on an open order and records the payment.
	// Returns ErrOrderAlreadyFinalized when no open row matched.
	Finalize(ctx context.Context, tx *gorm.DB, orderID, paymentID uint, at time.Time) error

	FindOpenLineItem(ctx context.Context, tx *gorm.DB, userID string, productID uint) (*model.LineItem, error)
	CreateLineItem(ctx context.Context, tx *gorm.DB, item *model.LineItem) error
	IncrementQuantity(ctx context.Context, tx *gorm.DB, itemID uint) (int, error)
	DeleteLineItem(ctx context.Context, tx *gorm.DB, itemID uint) error
	MarkItemsOrdered(ctx context.Context, tx *gorm.DB, orderID uint) error
}

type orderRepoImpl struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepoImpl{
		db: db,
	}
}

func (r *orderRepoImpl) Create(ctx context.Context, tx *gorm.DB, order *model.Order) error {
	return tx.WithContext(ctx).Create(order).Error
}

func (r *orderRepoImpl) FindOpenByUser(ctx context.Context, userID string) (*model.Order, error) {
	var order model.Order
	err := r.db.WithContext(ctx).
		Preload("Items.Product").
		Preload("ShippingAddress").
		Where("user_id = ? AND ordered = ?", userID, false).
		First(&order).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNoOpenOrder
	}
	if err != nil {
		return nil, err
	}

	return &order, nil
}

func (r *orderRepoImpl) FindOpenByUserTx(ctx context.Context, tx *gorm.DB, userID string) (*model.Order, error) {
	var order model.Order
	err := tx.WithContext(ctx).
		Preload("Items.Product").
		Where("user_id = ? AND ordered = ?", userID, false).
		First(&order).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNoOpenOrder
	}
	if err != nil {
		return nil, err
	}

	return &order, nil
}

func (r *orderRepoImpl) AttachAddress(ctx context.Context, tx *gorm.DB, orderID, addressID uint) error {
	return tx.WithContext(ctx).Model(&model.Order{}).
		Where("id = ? AND ordered = ?", orderID, false).
		Update("shipping_address_id", addressID).Error
}

func (r *orderRepoImpl) Finalize(ctx context.Context, tx *gorm.DB, orderID, paymentID uint, at time.Time) error {
	result := tx.WithContext(ctx).Model(&model.Order{}).
		Where("id = ? AND ordered = ?", orderID, false).
		Updates(map[string]interface{}{
			"ordered":    true,
			"ordered_at": at,
			"payment_id": paymentID,
		})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrOrderAlreadyFinalized
	}

	return nil
}

func (r *orderRepoImpl) FindOpenLineItem(ctx context.Context, tx *gorm.DB, userID string, productID uint) (*model.LineItem, error) {
	var item model.LineItem
	err := tx.WithContext(ctx).
		Where("user_id = ? AND product_id = ? AND ordered = ?", userID, productID, false).
		First(&item).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrLineItemNotFound
	}
	if err != nil {
		return nil, err
	}

	return &item, nil
}

func (r *orderRepoImpl) CreateLineItem(ctx context.Context, tx *gorm.DB, item *model.LineItem) error {
	return tx.WithContext(ctx).Create(item).Error
}

func (r *orderRepoImpl) IncrementQuantity(ctx context.Context, tx *gorm.DB, itemID uint) (int, error) {
	err := tx.WithContext(ctx).Model(&model.LineItem{}).
		Where("id = ?", itemID).
		Update("quantity", gorm.Expr("quantity + ?", 1)).Error
	if err != nil {
		return 0, err
	}

	var item model.LineItem
	if err := tx.WithContext(ctx).First(&item, itemID).Error; err != nil {
		return 0, err
	}

	return item.Quantity, nil
}

func (r *orderRepoImpl) DeleteLineItem(ctx context.Context, tx *gorm.DB, itemID uint) error {
	return tx.WithContext(ctx).Delete(&model.LineItem{}, itemID).Error
}

func (r *orderRepoImpl) MarkItemsOrdered(ctx context.Context, tx *gorm.DB, orderID uint) error {
	return tx.WithContext(ctx).Model(&model.LineItem{}).
		Where("order_id = ? AND ordered = ?", orderID, false).
		Update("ordered", true).Error
}
