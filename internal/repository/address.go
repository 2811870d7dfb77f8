package repository

import (
	"context"

	"toko-storefront/internal/model"

	"gorm.io/gorm"
)

type AddressRepository interface {
	Create(ctx context.Context, tx *gorm.DB, address *model.ShippingAddress) error
}

type addressRepoImpl struct {
	db *gorm.DB
}

func NewAddressRepository(db *gorm.DB) AddressRepository {
	return &addressRepoImpl{
		db: db,
	}
}

func (r *addressRepoImpl) Create(ctx context.Context, tx *gorm.DB, address *model.ShippingAddress) error {
	return tx.WithContext(ctx).Create(address).Error
}
