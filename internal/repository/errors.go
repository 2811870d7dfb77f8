package repository

import "errors"

var (
	// ErrProductNotFound is returned when no product has the given slug.
	ErrProductNotFound = errors.New("product not found")
	// ErrNoOpenOrder is returned when the user has no order with ordered=false.
	ErrNoOpenOrder = errors.New("no open order")
	// ErrLineItemNotFound is returned when the open order holds no line item
	// for the given product.
	ErrLineItemNotFound = errors.New("line item not found")
	// ErrOrderAlreadyFinalized is returned when a finalization update matches
	// no open row, i.e. a repeated payment confirmation.
	ErrOrderAlreadyFinalized = errors.New("order already finalized")
)
