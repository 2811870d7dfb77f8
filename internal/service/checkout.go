package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"toko-storefront/internal/client"
	"toko-storefront/internal/dto"
	"toko-storefront/internal/model"
	"toko-storefront/internal/notice"
	"toko-storefront/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrValidationFailed marks checkout or contact form input the validator
// rejected. Handlers surface the accompanying notice and stay on the form.
var ErrValidationFailed = errors.New("validation failed")

const orderCurrency = "USD"

// CheckoutService drives an open order through address capture, payment
// method selection and finalization.
type CheckoutService interface {
	// Begin returns the open order to check out, or a warning notice when
	// the cart is absent or empty (the caller redirects to the catalog).
	Begin(ctx context.Context, userID string) (*model.Order, *notice.Notice, error)
	// Submit validates the address form, persists the shipping address on
	// the open order and returns the chosen payment method.
	Submit(ctx context.Context, userID string, form *dto.CheckoutForm) (model.PaymentMethod, notice.Notice, error)
	// StartPaypalPayment creates the provider-side payment order for the
	// open order's total and returns the buyer approval redirect.
	StartPaypalPayment(ctx context.Context, userID string) (*client.CreateOrderResponse, error)
	// PayWithCard charges the card nonce via the fallback processor and
	// finalizes the order with the processor's transaction id.
	PayWithCard(ctx context.Context, userID, nonce string) (notice.Notice, error)
	// HandlePaypalReturn captures the approved provider order and finalizes
	// the buyer's open order.
	HandlePaypalReturn(ctx context.Context, userID, providerOrderID string) (notice.Notice, error)
	// ConfirmPayment finalizes the open order: one transaction computes the
	// total over the items being flipped, creates the Payment and marks the
	// order and every line item ordered=true. Repeat calls find no open
	// order and change nothing.
	ConfirmPayment(ctx context.Context, userID string, method model.PaymentMethod, externalChargeID string) (notice.Notice, error)
	// CancelPayment mutates nothing; it only reports the cancellation.
	CancelPayment(userID string) notice.Notice
	// PaymentHistory lists the user's settled payments, newest first.
	PaymentHistory(ctx context.Context, userID string) ([]*model.Payment, error)
}

type checkoutServiceImpl struct {
	db              *gorm.DB
	logger          *slog.Logger
	validate        *validator.Validate
	serviceBaseURL  string
	paypalClient    client.PaypalClient
	braintreeClient client.BraintreeClient
	orderRepo       repository.OrderRepository
	addressRepo     repository.AddressRepository
	paymentRepo     repository.PaymentRepository
}

func NewCheckoutService(
	db *gorm.DB,
	logger *slog.Logger,
	serviceBaseURL string,
	paypalClient client.PaypalClient,
	braintreeClient client.BraintreeClient,
	orderRepo repository.OrderRepository,
	addressRepo repository.AddressRepository,
	paymentRepo repository.PaymentRepository,
) CheckoutService {
	return &checkoutServiceImpl{
		db:              db,
		logger:          logger,
		validate:        validator.New(),
		serviceBaseURL:  serviceBaseURL,
		paypalClient:    paypalClient,
		braintreeClient: braintreeClient,
		orderRepo:       orderRepo,
		addressRepo:     addressRepo,
		paymentRepo:     paymentRepo,
	}
}

func (s *checkoutServiceImpl) Begin(ctx context.Context, userID string) (*model.Order, *notice.Notice, error) {
	order, err := s.orderRepo.FindOpenByUser(ctx, userID)
	if errors.Is(err, repository.ErrNoOpenOrder) {
		n := notice.CartEmpty()
		return nil, &n, nil
	}
	if err != nil {
		return nil, nil, fmt.Errorf("find open order: %w", err)
	}
	if len(order.Items) == 0 {
		n := notice.CartEmpty()
		return nil, &n, nil
	}

	return order, nil, nil
}

func (s *checkoutServiceImpl) Submit(ctx context.Context, userID string, form *dto.CheckoutForm) (model.PaymentMethod, notice.Notice, error) {
	if err := s.validate.Struct(form); err != nil {
		return model.PaymentMethod{}, notice.CheckoutFailed(), fmt.Errorf("%w: %v", ErrValidationFailed, err)
	}

	method, err := model.ParsePaymentOption(form.PaymentOption)
	if err != nil {
		return model.PaymentMethod{}, notice.CheckoutFailed(), fmt.Errorf("%w: %v", ErrValidationFailed, err)
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		order, err := s.orderRepo.FindOpenByUserTx(ctx, tx, userID)
		if err != nil {
			return err
		}

		address := &model.ShippingAddress{
			UserID:     userID,
			Line1:      form.Line1,
			Line2:      form.Line2,
			PostalCode: form.PostalCode,
			Country:    form.Country,
		}
		if err := s.addressRepo.Create(ctx, tx, address); err != nil {
			return fmt.Errorf("create shipping address: %w", err)
		}

		return s.orderRepo.AttachAddress(ctx, tx, order.ID, address.ID)
	})
	if errors.Is(err, repository.ErrNoOpenOrder) {
		return model.PaymentMethod{}, notice.ActiveOrderMissing(), err
	}
	if err != nil {
		return model.PaymentMethod{}, notice.CheckoutFailed(), err
	}

	return method, notice.Notice{}, nil
}

func (s *checkoutServiceImpl) StartPaypalPayment(ctx context.Context, userID string) (*client.CreateOrderResponse, error) {
	order, err := s.orderRepo.FindOpenByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("find open order: %w", err)
	}

	payReq := &client.PaymentRequest{
		Amount:      order.Total(),
		Currency:    orderCurrency,
		Description: fmt.Sprintf("Payment for order %d", order.ID),
		Invoice:     fmt.Sprintf("%d-%s", order.ID, uuid.NewString()),
	}

	resp, err := s.paypalClient.CreateOrderForApproval(ctx, s.serviceBaseURL, payReq)
	if err != nil {
		return nil, fmt.Errorf("paypal api create order: %w", err)
	}

	return resp, nil
}

func (s *checkoutServiceImpl) PayWithCard(ctx context.Context, userID, nonce string) (notice.Notice, error) {
	order, err := s.orderRepo.FindOpenByUser(ctx, userID)
	if errors.Is(err, repository.ErrNoOpenOrder) {
		return notice.NoOrderToPay(), err
	}
	if err != nil {
		return notice.Notice{}, fmt.Errorf("find open order: %w", err)
	}

	chargeID, err := s.braintreeClient.ChargeOneTime(ctx, nonce, order.Total())
	if err != nil {
		return notice.Notice{}, fmt.Errorf("braintree charge: %w", err)
	}

	return s.ConfirmPayment(ctx, userID, model.OtherMethod("braintree"), chargeID)
}

func (s *checkoutServiceImpl) HandlePaypalReturn(ctx context.Context, userID, providerOrderID string) (notice.Notice, error) {
	if providerOrderID != "" {
		if err := s.paypalClient.CaptureOrder(ctx, providerOrderID); err != nil {
			return notice.Notice{}, fmt.Errorf("paypal api capture order: %w", err)
		}
	}

	return s.ConfirmPayment(ctx, userID, model.PayPalMethod(), "")
}

func (s *checkoutServiceImpl) ConfirmPayment(ctx context.Context, userID string, method model.PaymentMethod, externalChargeID string) (notice.Notice, error) {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		order, err := s.orderRepo.FindOpenByUserTx(ctx, tx, userID)
		if err != nil {
			return err
		}

		now := time.Now()
		chargeID := externalChargeID
		if chargeID == "" {
			chargeID = fmt.Sprintf("%d-%d", order.ID, now.UnixNano())
		}

		// the amount is computed from the exact rows being finalized, so a
		// catalog price change can never diverge from the charged total
		payment := &model.Payment{
			UserID:    userID,
			Amount:    order.Total(),
			Method:    method.Tag(),
			ChargeID:  chargeID,
			Timestamp: now,
		}
		if err := s.paymentRepo.Create(ctx, tx, payment); err != nil {
			return fmt.Errorf("create payment: %w", err)
		}

		if err := s.orderRepo.MarkItemsOrdered(ctx, tx, order.ID); err != nil {
			return fmt.Errorf("mark line items ordered: %w", err)
		}

		if err := s.orderRepo.Finalize(ctx, tx, order.ID, payment.ID, now); err != nil {
			return fmt.Errorf("finalize order: %w", err)
		}

		return nil
	})
	if errors.Is(err, repository.ErrNoOpenOrder) || errors.Is(err, repository.ErrOrderAlreadyFinalized) {
		s.logger.Info("payment confirmation without open order",
			slog.String("user_id", userID))
		return notice.NoOrderToPay(), err
	}
	if err != nil {
		return notice.Notice{}, err
	}

	return notice.PaymentReceived(), nil
}

func (s *checkoutServiceImpl) CancelPayment(userID string) notice.Notice {
	s.logger.Info("payment cancelled", slog.String("user_id", userID))
	return notice.PaymentCancelled()
}

func (s *checkoutServiceImpl) PaymentHistory(ctx context.Context, userID string) ([]*model.Payment, error) {
	payments, err := s.paymentRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}

	return payments, nil
}
