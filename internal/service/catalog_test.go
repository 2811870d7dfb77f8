package service

import (
	"context"
	"testing"

	"toko-storefront/internal/dto"
	"toko-storefront/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newCatalogFixture(t *testing.T) (CatalogService, ReviewService, *gorm.DB) {
	t.Helper()

	db := newTestDB(t)
	reviewSvc := NewReviewService(repository.NewReviewRepository(db))
	catalogSvc := NewCatalogService(repository.NewProductRepository(db), reviewSvc)

	return catalogSvc, reviewSvc, db
}

func seedCatalog(t *testing.T, db *gorm.DB) {
	t.Helper()
	createProduct(t, db, "Batik Shirt", "batik-shirt", "Clothing", "100.00", "80.00")
	createProduct(t, db, "Leather Sandals", "leather-sandals", "Footwear", "50.00", "")
	createProduct(t, db, "Rattan Bag", "rattan-bag", "Accessories", "35.00", "")
}

func TestByCategoryAllReturnsEverything(t *testing.T) {
	svc, _, db := newCatalogFixture(t)
	seedCatalog(t, db)

	products, err := svc.ByCategory(context.Background(), repository.CategoryAll)
	require.NoError(t, err)
	assert.Len(t, products, 3)
}

func TestByCategoryExactMatch(t *testing.T) {
	svc, _, db := newCatalogFixture(t)
	seedCatalog(t, db)

	products, err := svc.ByCategory(context.Background(), "Clothing")
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "batik-shirt", products[0].Slug)

	// substring of a category is not an exact match
	products, err = svc.ByCategory(context.Background(), "Cloth")
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestSearchMatchesNameOrCategoryCaseInsensitive(t *testing.T) {
	svc, _, db := newCatalogFixture(t)
	seedCatalog(t, db)
	ctx := context.Background()

	products, err := svc.Search(ctx, "batik")
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "batik-shirt", products[0].Slug)

	products, err = svc.Search(ctx, "FOOT")
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "leather-sandals", products[0].Slug)

	products, err = svc.Search(ctx, "")
	require.NoError(t, err)
	assert.Len(t, products, 3)
}

func TestDetailUnknownSlug(t *testing.T) {
	svc, _, _ := newCatalogFixture(t)

	_, err := svc.Detail(context.Background(), "does-not-exist")
	assert.ErrorIs(t, err, repository.ErrProductNotFound)
}

func TestDetailIncludesReviewsAndAverage(t *testing.T) {
	svc, reviewSvc, db := newCatalogFixture(t)
	ctx := context.Background()
	seedCatalog(t, db)

	detail, err := svc.Detail(ctx, "batik-shirt")
	require.NoError(t, err)
	assert.Nil(t, detail.AverageRating)
	assert.Empty(t, detail.Ratings)

	require.NoError(t, reviewSvc.AddRating(ctx, "user-1", detail.Product.ID, &dto.RatingForm{Value: 4}))
	require.NoError(t, reviewSvc.AddRating(ctx, "user-2", detail.Product.ID, &dto.RatingForm{Value: 5}))
	require.NoError(t, reviewSvc.AddComment(ctx, "user-1", detail.Product.ID, &dto.CommentForm{Text: "Love it"}))

	detail, err = svc.Detail(ctx, "batik-shirt")
	require.NoError(t, err)
	require.NotNil(t, detail.AverageRating)
	assert.Equal(t, "4.5", *detail.AverageRating)
	assert.Len(t, detail.Ratings, 2)
	assert.Len(t, detail.Comments, 1)
}
