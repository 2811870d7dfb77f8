package handler

import (
	"errors"
	"net/http"

	"toko-storefront/internal/dto"
	"toko-storefront/internal/service"

	"github.com/labstack/echo/v4"
)

type ContactHandler struct {
	contactService service.ContactService
}

func NewContactHandler(contactService service.ContactService) *ContactHandler {
	return &ContactHandler{
		contactService: contactService,
	}
}

func (h *ContactHandler) Submit(c echo.Context) error {
	ctx := c.Request().Context()

	var form dto.ContactForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	n, err := h.contactService.Submit(ctx, &form)
	if errors.Is(err, service.ErrValidationFailed) {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid contact form")
	}
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"notice":   n,
		"redirect": "/",
	})
}
