package handler

import (
	"errors"
	"net/http"

	"toko-storefront/internal/repository"
	"toko-storefront/internal/service"

	"github.com/labstack/echo/v4"
)

type CatalogHandler struct {
	catalogService service.CatalogService
}

func NewCatalogHandler(catalogService service.CatalogService) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
	}
}

func (h *CatalogHandler) ListProducts(c echo.Context) error {
	ctx := c.Request().Context()

	products, err := h.catalogService.List(ctx)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"products": products,
	})
}

func (h *CatalogHandler) ProductDetail(c echo.Context) error {
	ctx := c.Request().Context()
	slug := c.Param("slug")

	detail, err := h.catalogService.Detail(ctx, slug)
	if errors.Is(err, repository.ErrProductNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "product not found")
	}
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, detail)
}

func (h *CatalogHandler) Search(c echo.Context) error {
	ctx := c.Request().Context()
	query := c.QueryParam("q")

	products, err := h.catalogService.Search(ctx, query)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"query":    query,
		"products": products,
	})
}

func (h *CatalogHandler) ByCategory(c echo.Context) error {
	ctx := c.Request().Context()
	category := c.Param("category")

	products, err := h.catalogService.ByCategory(ctx, category)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"category": category,
		"products": products,
	})
}
