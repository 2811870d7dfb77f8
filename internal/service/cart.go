package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"toko-storefront/internal/model"
	"toko-storefront/internal/notice"
	"toko-storefront/internal/repository"

	"gorm.io/gorm"
)

// CartService mutates the user's active cart: the single order with
// ordered=false. All find-or-create paths run in one transaction and lean on
// the partial unique indexes, so two concurrent adds for the same user can
// never produce two open orders or two open line items for one product.
type CartService interface {
	AddItem(ctx context.Context, userID, slug string) (*model.LineItem, notice.Notice, error)
	RemoveItem(ctx context.Context, userID, slug string) (notice.Notice, error)
	Summary(ctx context.Context, userID string) (*model.Order, error)
}

type cartServiceImpl struct {
	db          *gorm.DB
	logger      *slog.Logger
	productRepo repository.ProductRepository
	orderRepo   repository.OrderRepository
}

func NewCartService(
	db *gorm.DB,
	logger *slog.Logger,
	productRepo repository.ProductRepository,
	orderRepo repository.OrderRepository,
) CartService {
	return &cartServiceImpl{
		db:          db,
		logger:      logger,
		productRepo: productRepo,
		orderRepo:   orderRepo,
	}
}

func (s *cartServiceImpl) AddItem(ctx context.Context, userID, slug string) (*model.LineItem, notice.Notice, error) {
	product, err := s.productRepo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, notice.Notice{}, fmt.Errorf("find product by slug: %w", err)
	}

	item, n, err := s.addItemTx(ctx, userID, product)
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		// a concurrent add won the insert; rerun to merge into its rows
		item, n, err = s.addItemTx(ctx, userID, product)
	}
	if err != nil {
		return nil, notice.Notice{}, err
	}

	return item, n, nil
}

func (s *cartServiceImpl) addItemTx(ctx context.Context, userID string, product *model.Product) (*model.LineItem, notice.Notice, error) {
	var (
		item *model.LineItem
		n    notice.Notice
	)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		order, err := s.orderRepo.FindOpenByUserTx(ctx, tx, userID)
		if errors.Is(err, repository.ErrNoOpenOrder) {
			order = &model.Order{
				UserID:    userID,
				StartedAt: time.Now(),
			}
			if err := s.orderRepo.Create(ctx, tx, order); err != nil {
				return fmt.Errorf("create open order: %w", err)
			}
		} else if err != nil {
			return fmt.Errorf("find open order: %w", err)
		}

		existing, err := s.orderRepo.FindOpenLineItem(ctx, tx, userID, product.ID)
		switch {
		case err == nil:
			quantity, err := s.orderRepo.IncrementQuantity(ctx, tx, existing.ID)
			if err != nil {
				return fmt.Errorf("increment quantity: %w", err)
			}
			existing.Quantity = quantity
			item = existing
			n = notice.QuantityUpdated(quantity)

		case errors.Is(err, repository.ErrLineItemNotFound):
			item = &model.LineItem{
				UserID:    userID,
				ProductID: product.ID,
				OrderID:   &order.ID,
				Quantity:  1,
			}
			if err := s.orderRepo.CreateLineItem(ctx, tx, item); err != nil {
				return fmt.Errorf("create line item: %w", err)
			}
			n = notice.ItemAdded()

		default:
			return fmt.Errorf("find open line item: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, notice.Notice{}, err
	}

	return item, n, nil
}

// RemoveItem deletes the open line item for the product. A missing order or
// missing item is a named, logged, non-fatal outcome, not an error.
func (s *cartServiceImpl) RemoveItem(ctx context.Context, userID, slug string) (notice.Notice, error) {
	product, err := s.productRepo.FindBySlug(ctx, slug)
	if err != nil {
		return notice.Notice{}, fmt.Errorf("find product by slug: %w", err)
	}

	var n notice.Notice
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		_, err := s.orderRepo.FindOpenByUserTx(ctx, tx, userID)
		if errors.Is(err, repository.ErrNoOpenOrder) {
			s.logger.Info("remove from cart without active order",
				slog.String("user_id", userID), slog.String("slug", slug))
			n = notice.NoActiveOrder()
			return nil
		}
		if err != nil {
			return fmt.Errorf("find open order: %w", err)
		}

		item, err := s.orderRepo.FindOpenLineItem(ctx, tx, userID, product.ID)
		if errors.Is(err, repository.ErrLineItemNotFound) {
			s.logger.Info("remove from cart for item not in cart",
				slog.String("user_id", userID), slog.String("slug", slug))
			n = notice.ItemNotInCart()
			return nil
		}
		if err != nil {
			return fmt.Errorf("find open line item: %w", err)
		}

		if err := s.orderRepo.DeleteLineItem(ctx, tx, item.ID); err != nil {
			return fmt.Errorf("delete line item: %w", err)
		}
		n = notice.ItemRemoved()
		return nil
	})
	if err != nil {
		return notice.Notice{}, err
	}

	return n, nil
}

func (s *cartServiceImpl) Summary(ctx context.Context, userID string) (*model.Order, error) {
	order, err := s.orderRepo.FindOpenByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	return order, nil
}
