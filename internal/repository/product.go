package repository

import (
	"context"
	"errors"
	"fmt"

	"toko-storefront/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CategoryAll is the reserved category value meaning "no filter".
const CategoryAll = "All"

type ProductRepository interface {
	Seed(ctx context.Context) error
	List(ctx context.Context) ([]*model.Product, error)
	FindBySlug(ctx context.Context, slug string) (*model.Product, error)
	// Search matches the query as a case-insensitive substring of name or
	// category. An empty query returns the full catalog.
	Search(ctx context.Context, query string) ([]*model.Product, error)
	// ByCategory returns exact category matches; CategoryAll disables the filter.
	ByCategory(ctx context.Context, category string) ([]*model.Product, error)
}

type productRepoImpl struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepoImpl{
		db: db,
	}
}

func discount(v string) *decimal.Decimal {
	d := decimal.RequireFromString(v)
	return &d
}

func (r *productRepoImpl) Seed(ctx context.Context) error {
	products := []model.Product{
		{Name: "Batik Shirt", Price: decimal.RequireFromString("100.00"), DiscountPrice: discount("80.00"), Slug: "batik-shirt", Description: "Hand-drawn batik shirt", Label: "BEST", Category: "Clothing"},
		{Name: "Leather Sandals", Price: decimal.RequireFromString("50.00"), Slug: "leather-sandals", Description: "Handmade leather sandals", Label: "NEW", Category: "Footwear"},
		{Name: "Rattan Bag", Price: decimal.RequireFromString("35.00"), DiscountPrice: discount("29.90"), Slug: "rattan-bag", Description: "Woven rattan bag", Label: "SALE", Category: "Accessories"},
	}

	return r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&products).Error
}

func (r *productRepoImpl) List(ctx context.Context) ([]*model.Product, error) {
	var products []*model.Product
	err := r.db.WithContext(ctx).Find(&products).Error
	if err != nil {
		return nil, err
	}

	return products, nil
}

func (r *productRepoImpl) FindBySlug(ctx context.Context, slug string) (*model.Product, error) {
	var product model.Product
	err := r.db.WithContext(ctx).
		Where("slug = ?", slug).
		First(&product).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}

	return &product, nil
}

func (r *productRepoImpl) Search(ctx context.Context, query string) ([]*model.Product, error) {
	var products []*model.Product
	tx := r.db.WithContext(ctx)
	if query != "" {
		pattern := fmt.Sprintf("%%%s%%", query)
		tx = tx.Where("LOWER(name) LIKE LOWER(?) OR LOWER(category) LIKE LOWER(?)", pattern, pattern)
	}
	if err := tx.Find(&products).Error; err != nil {
		return nil, err
	}

	return products, nil
}

func (r *productRepoImpl) ByCategory(ctx context.Context, category string) ([]*model.Product, error) {
	var products []*model.Product
	tx := r.db.WithContext(ctx)
	if category != CategoryAll {
		tx = tx.Where("category = ?", category)
	}
	if err := tx.Find(&products).Error; err != nil {
		return nil, err
	}

	return products, nil
}
