package service

import (
	"context"
	"fmt"

	"toko-storefront/internal/dto"
	"toko-storefront/internal/model"
	"toko-storefront/internal/repository"
)

// CatalogService is the read side of the product store.
type CatalogService interface {
	List(ctx context.Context) ([]*model.Product, error)
	Detail(ctx context.Context, slug string) (*dto.ProductDetailResponse, error)
	Search(ctx context.Context, query string) ([]*model.Product, error)
	ByCategory(ctx context.Context, category string) ([]*model.Product, error)
}

type catalogServiceImpl struct {
	productRepo repository.ProductRepository
	reviewSvc   ReviewService
}

func NewCatalogService(productRepo repository.ProductRepository, reviewSvc ReviewService) CatalogService {
	return &catalogServiceImpl{
		productRepo: productRepo,
		reviewSvc:   reviewSvc,
	}
}

func (s *catalogServiceImpl) List(ctx context.Context) ([]*model.Product, error) {
	return s.productRepo.List(ctx)
}

// Detail assembles the product view: the product itself, its ratings and
// comments, and the average rating (absent when nobody rated yet).
func (s *catalogServiceImpl) Detail(ctx context.Context, slug string) (*dto.ProductDetailResponse, error) {
	product, err := s.productRepo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	ratings, comments, err := s.reviewSvc.ListReviews(ctx, product.ID)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}

	average, err := s.reviewSvc.AverageRating(ctx, product.ID)
	if err != nil {
		return nil, fmt.Errorf("average rating: %w", err)
	}

	var averageStr *string
	if average != nil {
		v := average.String()
		averageStr = &v
	}

	return &dto.ProductDetailResponse{
		Product:       product,
		AverageRating: averageStr,
		Ratings:       ratings,
		Comments:      comments,
	}, nil
}

func (s *catalogServiceImpl) Search(ctx context.Context, query string) ([]*model.Product, error) {
	return s.productRepo.Search(ctx, query)
}

func (s *catalogServiceImpl) ByCategory(ctx context.Context, category string) ([]*model.Product, error) {
	return s.productRepo.ByCategory(ctx, category)
}
