package handler

import (
	"errors"
	"net/http"

	"toko-storefront/internal/dto"
	"toko-storefront/internal/middleware"
	"toko-storefront/internal/model"
	"toko-storefront/internal/repository"
	"toko-storefront/internal/service"

	"github.com/labstack/echo/v4"
)

type CheckoutHandler struct {
	checkoutService service.CheckoutService
}

func NewCheckoutHandler(checkoutService service.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutService: checkoutService,
	}
}

// BeginCheckout returns the cart to check out, or a warning with a redirect
// back to the catalog when there is nothing to order.
func (h *CheckoutHandler) BeginCheckout(c echo.Context) error {
	ctx := c.Request().Context()
	userID := middleware.UserID(c)

	order, n, err := h.checkoutService.Begin(ctx, userID)
	if err != nil {
		return err
	}
	if n != nil {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"notice":   n,
			"redirect": "/",
		})
	}

	return c.JSON(http.StatusOK, cartResponse(order))
}

func (h *CheckoutHandler) SubmitCheckout(c echo.Context) error {
	ctx := c.Request().Context()
	userID := middleware.UserID(c)

	var form dto.CheckoutForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	method, n, err := h.checkoutService.Submit(ctx, userID, &form)
	if errors.Is(err, service.ErrValidationFailed) {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"notice":   n,
			"redirect": "/checkout",
		})
	}
	if errors.Is(err, repository.ErrNoOpenOrder) {
		return c.JSON(http.StatusNotFound, map[string]interface{}{
			"notice":   n,
			"redirect": "/order-summary",
		})
	}
	if err != nil {
		return err
	}

	// every payment method variant must be handled here
	switch method.Kind {
	case model.PaymentKindPayPal:
		resp, err := h.checkoutService.StartPaypalPayment(ctx, userID)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, &dto.CheckoutResponse{
			Next:        "paypal",
			ApprovalURL: resp.ApproveURL,
		})
	case model.PaymentKindOther:
		return c.JSON(http.StatusOK, &dto.CheckoutResponse{
			Next: method.Name,
		})
	default:
		return echo.NewHTTPError(http.StatusBadRequest, "unsupported payment method")
	}
}

// PayWithCard completes the "other" branch: the client sends the processor
// nonce and the order is charged and finalized in one go.
func (h *CheckoutHandler) PayWithCard(c echo.Context) error {
	ctx := c.Request().Context()
	userID := middleware.UserID(c)

	var req dto.CardPaymentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}
	if req.Nonce == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "missing payment nonce")
	}

	n, err := h.checkoutService.PayWithCard(ctx, userID, req.Nonce)
	if errors.Is(err, repository.ErrNoOpenOrder) || errors.Is(err, repository.ErrOrderAlreadyFinalized) {
		return c.JSON(http.StatusConflict, map[string]interface{}{
			"notice":   n,
			"redirect": "/order-summary",
		})
	}
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"notice":   n,
		"redirect": "/",
	})
}

// PaypalReturn is the provider success callback: capture, then finalize the
// buyer's open order.
func (h *CheckoutHandler) PaypalReturn(c echo.Context) error {
	ctx := c.Request().Context()
	userID := middleware.UserID(c)

	providerOrderID := c.QueryParam("token")

	n, err := h.checkoutService.HandlePaypalReturn(ctx, userID, providerOrderID)
	if errors.Is(err, repository.ErrNoOpenOrder) || errors.Is(err, repository.ErrOrderAlreadyFinalized) {
		return c.JSON(http.StatusConflict, map[string]interface{}{
			"notice":   n,
			"redirect": "/order-summary",
		})
	}
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"notice":   n,
		"redirect": "/",
	})
}

func (h *CheckoutHandler) PaymentHistory(c echo.Context) error {
	ctx := c.Request().Context()
	userID := middleware.UserID(c)

	payments, err := h.checkoutService.PaymentHistory(ctx, userID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, payments)
}

// PaypalCancel mutates nothing.
func (h *CheckoutHandler) PaypalCancel(c echo.Context) error {
	userID := middleware.UserID(c)

	n := h.checkoutService.CancelPayment(userID)

	return c.JSON(http.StatusOK, map[string]interface{}{
		"notice":   n,
		"redirect": "/order-summary",
	})
}
