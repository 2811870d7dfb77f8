package handler

import (
	"errors"
	"net/http"

	"toko-storefront/internal/dto"
	"toko-storefront/internal/middleware"
	"toko-storefront/internal/repository"
	"toko-storefront/internal/service"

	"github.com/labstack/echo/v4"
)

type ReviewHandler struct {
	reviewService service.ReviewService
	productRepo   repository.ProductRepository
}

func NewReviewHandler(reviewService service.ReviewService, productRepo repository.ProductRepository) *ReviewHandler {
	return &ReviewHandler{
		reviewService: reviewService,
		productRepo:   productRepo,
	}
}

func (h *ReviewHandler) AddRating(c echo.Context) error {
	ctx := c.Request().Context()
	userID := middleware.UserID(c)
	slug := c.Param("slug")

	product, err := h.productRepo.FindBySlug(ctx, slug)
	if errors.Is(err, repository.ErrProductNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "product not found")
	}
	if err != nil {
		return err
	}

	var form dto.RatingForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	if err := h.reviewService.AddRating(ctx, userID, product.ID, &form); err != nil {
		if errors.Is(err, service.ErrValidationFailed) {
			return echo.NewHTTPError(http.StatusBadRequest, "rating must be between 1 and 5")
		}
		return err
	}

	return c.NoContent(http.StatusCreated)
}

func (h *ReviewHandler) AddComment(c echo.Context) error {
	ctx := c.Request().Context()
	userID := middleware.UserID(c)
	slug := c.Param("slug")

	product, err := h.productRepo.FindBySlug(ctx, slug)
	if errors.Is(err, repository.ErrProductNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "product not found")
	}
	if err != nil {
		return err
	}

	var form dto.CommentForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	if err := h.reviewService.AddComment(ctx, userID, product.ID, &form); err != nil {
		if errors.Is(err, service.ErrValidationFailed) {
			return echo.NewHTTPError(http.StatusBadRequest, "comment text is required")
		}
		return err
	}

	return c.NoContent(http.StatusCreated)
}
