package repository

import (
	"context"

	"toko-storefront/internal/model"

	"gorm.io/gorm"
)

type ReviewRepository interface {
	CreateRating(ctx context.Context, rating *model.Rating) error
	CreateComment(ctx context.Context, comment *model.Comment) error
	RatingsByProduct(ctx context.Context, productID uint) ([]*model.Rating, error)
	CommentsByProduct(ctx context.Context, productID uint) ([]*model.Comment, error)
	// AverageRating returns the mean rating and the number of ratings;
	// callers treat count == 0 as "no rating" rather than zero.
	AverageRating(ctx context.Context, productID uint) (float64, int64, error)
}

type reviewRepoImpl struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepoImpl{
		db: db,
	}
}

func (r *reviewRepoImpl) CreateRating(ctx context.Context, rating *model.Rating) error {
	return r.db.WithContext(ctx).Create(rating).Error
}

func (r *reviewRepoImpl) CreateComment(ctx context.Context, comment *model.Comment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

func (r *reviewRepoImpl) RatingsByProduct(ctx context.Context, productID uint) ([]*model.Rating, error) {
	var ratings []*model.Rating
	err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Find(&ratings).Error

	if err != nil {
		return nil, err
	}

	return ratings, nil
}

func (r *reviewRepoImpl) CommentsByProduct(ctx context.Context, productID uint) ([]*model.Comment, error) {
	var comments []*model.Comment
	err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Find(&comments).Error

	if err != nil {
		return nil, err
	}

	return comments, nil
}

func (r *reviewRepoImpl) AverageRating(ctx context.Context, productID uint) (float64, int64, error) {
	var result struct {
		Avg   float64
		Count int64
	}
	err := r.db.WithContext(ctx).Model(&model.Rating{}).
		Select("COALESCE(AVG(value), 0) AS avg, COUNT(*) AS count").
		Where("product_id = ?", productID).
		Scan(&result).Error

	if err != nil {
		return 0, 0, err
	}

	return result.Avg, result.Count, nil
}
