package service

import (
	"context"
	"testing"

	"toko-storefront/internal/dto"
	"toko-storefront/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newReviewFixture(t *testing.T) (ReviewService, *gorm.DB) {
	t.Helper()

	db := newTestDB(t)
	return NewReviewService(repository.NewReviewRepository(db)), db
}

func TestAverageRatingAbsentWithoutRatings(t *testing.T) {
	svc, db := newReviewFixture(t)
	product := createProduct(t, db, "Batik Shirt", "batik-shirt", "Clothing", "100.00", "")

	avg, err := svc.AverageRating(context.Background(), product.ID)
	require.NoError(t, err)
	assert.Nil(t, avg)
}

func TestAverageRatingRoundedToOneDecimal(t *testing.T) {
	svc, db := newReviewFixture(t)
	ctx := context.Background()
	product := createProduct(t, db, "Batik Shirt", "batik-shirt", "Clothing", "100.00", "")

	for i, value := range []int{4, 4, 5, 4, 4} {
		userID := string(rune('a' + i))
		require.NoError(t, svc.AddRating(ctx, userID, product.ID, &dto.RatingForm{Value: value}))
	}

	avg, err := svc.AverageRating(ctx, product.ID)
	require.NoError(t, err)
	require.NotNil(t, avg)
	assert.True(t, avg.Equal(decimal.RequireFromString("4.2")), "got %s", avg)
}

func TestAverageRatingIgnoresOtherProducts(t *testing.T) {
	svc, db := newReviewFixture(t)
	ctx := context.Background()
	rated := createProduct(t, db, "Batik Shirt", "batik-shirt", "Clothing", "100.00", "")
	other := createProduct(t, db, "Rattan Bag", "rattan-bag", "Accessories", "35.00", "")

	require.NoError(t, svc.AddRating(ctx, "user-1", rated.ID, &dto.RatingForm{Value: 5}))

	avg, err := svc.AverageRating(ctx, other.ID)
	require.NoError(t, err)
	assert.Nil(t, avg)
}

func TestAddRatingRejectsOutOfRange(t *testing.T) {
	svc, db := newReviewFixture(t)
	product := createProduct(t, db, "Batik Shirt", "batik-shirt", "Clothing", "100.00", "")

	err := svc.AddRating(context.Background(), "user-1", product.ID, &dto.RatingForm{Value: 6})
	assert.ErrorIs(t, err, ErrValidationFailed)
}

func TestListReviews(t *testing.T) {
	svc, db := newReviewFixture(t)
	ctx := context.Background()
	product := createProduct(t, db, "Batik Shirt", "batik-shirt", "Clothing", "100.00", "")

	require.NoError(t, svc.AddRating(ctx, "user-1", product.ID, &dto.RatingForm{Value: 4}))
	require.NoError(t, svc.AddComment(ctx, "user-2", product.ID, &dto.CommentForm{Text: "Great shirt"}))

	ratings, comments, err := svc.ListReviews(ctx, product.ID)
	require.NoError(t, err)
	assert.Len(t, ratings, 1)
	require.Len(t, comments, 1)
	assert.Equal(t, "Great shirt", comments[0].Text)
}
