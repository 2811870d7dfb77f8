package handler

import (
	"errors"
	"fmt"
	"net/http"

	"toko-storefront/internal/dto"
	"toko-storefront/internal/middleware"
	"toko-storefront/internal/model"
	"toko-storefront/internal/notice"
	"toko-storefront/internal/repository"
	"toko-storefront/internal/service"

	"github.com/labstack/echo/v4"
)

type CartHandler struct {
	cartService service.CartService
}

func NewCartHandler(cartService service.CartService) *CartHandler {
	return &CartHandler{
		cartService: cartService,
	}
}

func (h *CartHandler) AddItem(c echo.Context) error {
	ctx := c.Request().Context()
	userID := middleware.UserID(c)
	slug := c.Param("slug")

	item, n, err := h.cartService.AddItem(ctx, userID, slug)
	if errors.Is(err, repository.ErrProductNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "product not found")
	}
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"notice":   n,
		"quantity": item.Quantity,
		"redirect": fmt.Sprintf("/products/%s", slug),
	})
}

// RemoveItem never fails on a missing cart or item; those outcomes come
// back as informational notices with the same redirect.
func (h *CartHandler) RemoveItem(c echo.Context) error {
	ctx := c.Request().Context()
	userID := middleware.UserID(c)
	slug := c.Param("slug")

	n, err := h.cartService.RemoveItem(ctx, userID, slug)
	if errors.Is(err, repository.ErrProductNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "product not found")
	}
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"notice":   n,
		"redirect": fmt.Sprintf("/products/%s", slug),
	})
}

func (h *CartHandler) GetCart(c echo.Context) error {
	ctx := c.Request().Context()
	userID := middleware.UserID(c)

	order, err := h.cartService.Summary(ctx, userID)
	if errors.Is(err, repository.ErrNoOpenOrder) {
		return c.JSON(http.StatusNotFound, map[string]interface{}{
			"notice":   notice.ActiveOrderMissing(),
			"redirect": "/",
		})
	}
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, cartResponse(order))
}

func cartResponse(order *model.Order) *dto.CartResponse {
	items := make([]dto.LineItemResponse, len(order.Items))
	for i := range order.Items {
		item := &order.Items[i]
		items[i] = dto.LineItemResponse{
			ProductSlug: item.Product.Slug,
			ProductName: item.Product.Name,
			UnitPrice:   item.Product.EffectivePrice().StringFixed(2),
			Quantity:    item.Quantity,
			Subtotal:    item.Subtotal().StringFixed(2),
		}
	}

	return &dto.CartResponse{
		OrderID: order.ID,
		Items:   items,
		Total:   order.Total().StringFixed(2),
	}
}
