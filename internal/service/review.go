package service

import (
	"context"
	"fmt"

	"toko-storefront/internal/dto"
	"toko-storefront/internal/model"
	"toko-storefront/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

type ReviewService interface {
	AddRating(ctx context.Context, userID string, productID uint, form *dto.RatingForm) error
	AddComment(ctx context.Context, userID string, productID uint, form *dto.CommentForm) error
	ListReviews(ctx context.Context, productID uint) ([]*model.Rating, []*model.Comment, error)
	// AverageRating is the mean of all ratings rounded to one decimal place,
	// or nil when the product has no ratings.
	AverageRating(ctx context.Context, productID uint) (*decimal.Decimal, error)
}

type reviewServiceImpl struct {
	validate   *validator.Validate
	reviewRepo repository.ReviewRepository
}

func NewReviewService(reviewRepo repository.ReviewRepository) ReviewService {
	return &reviewServiceImpl{
		validate:   validator.New(),
		reviewRepo: reviewRepo,
	}
}

func (s *reviewServiceImpl) AddRating(ctx context.Context, userID string, productID uint, form *dto.RatingForm) error {
	if err := s.validate.Struct(form); err != nil {
		return fmt.Errorf("%w: %v", ErrValidationFailed, err)
	}

	return s.reviewRepo.CreateRating(ctx, &model.Rating{
		UserID:    userID,
		ProductID: productID,
		Value:     form.Value,
	})
}

func (s *reviewServiceImpl) AddComment(ctx context.Context, userID string, productID uint, form *dto.CommentForm) error {
	if err := s.validate.Struct(form); err != nil {
		return fmt.Errorf("%w: %v", ErrValidationFailed, err)
	}

	return s.reviewRepo.CreateComment(ctx, &model.Comment{
		UserID:    userID,
		ProductID: productID,
		Text:      form.Text,
	})
}

func (s *reviewServiceImpl) ListReviews(ctx context.Context, productID uint) ([]*model.Rating, []*model.Comment, error) {
	ratings, err := s.reviewRepo.RatingsByProduct(ctx, productID)
	if err != nil {
		return nil, nil, err
	}

	comments, err := s.reviewRepo.CommentsByProduct(ctx, productID)
	if err != nil {
		return nil, nil, err
	}

	return ratings, comments, nil
}

func (s *reviewServiceImpl) AverageRating(ctx context.Context, productID uint) (*decimal.Decimal, error) {
	avg, count, err := s.reviewRepo.AverageRating(ctx, productID)
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, nil
	}

	rounded := decimal.NewFromFloat(avg).Round(1)
	return &rounded, nil
}
