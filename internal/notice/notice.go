// Package notice carries the leveled user-facing messages every mutating
// operation emits. Handlers render them in the response envelope; services
// never hand raw strings to the delivery layer.
package notice

import "fmt"

type Level string

const (
	LevelInfo    Level = "info"
	LevelSuccess Level = "success"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

type Notice struct {
	Level   Level  `json:"level"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Cart outcomes.
func ItemAdded() Notice {
	return Notice{LevelInfo, "ITEM_ADDED", "Item added to your cart"}
}

func QuantityUpdated(quantity int) Notice {
	return Notice{LevelInfo, "QUANTITY_UPDATED", fmt.Sprintf("Item quantity updated to %d", quantity)}
}

func ItemRemoved() Notice {
	return Notice{LevelInfo, "ITEM_REMOVED", "Item removed from your cart"}
}

// ItemNotInCart and NoActiveOrder are the named non-fatal outcomes of
// removing something that is not there. They are informational, not errors.
func ItemNotInCart() Notice {
	return Notice{LevelInfo, "ITEM_NOT_IN_CART", "That item is not in your cart"}
}

func NoActiveOrder() Notice {
	return Notice{LevelInfo, "NO_ACTIVE_ORDER", "You have no active order"}
}

// ActiveOrderMissing is the error-level variant used when checkout or
// payment is attempted with no open order at all.
func ActiveOrderMissing() Notice {
	return Notice{LevelError, "NO_ACTIVE_ORDER", "No active order"}
}

// Checkout outcomes.
func CartEmpty() Notice {
	return Notice{LevelWarning, "CART_EMPTY", "Your cart is empty, keep shopping"}
}

func CheckoutFailed() Notice {
	return Notice{LevelWarning, "CHECKOUT_FAILED", "Checkout failed, please check the form"}
}

func NoOrderToPay() Notice {
	return Notice{LevelError, "CHECK_YOUR_ORDER", "Please check your order"}
}

func PaymentReceived() Notice {
	return Notice{LevelSuccess, "PAYMENT_RECEIVED", "Payment received, thank you"}
}

func PaymentCancelled() Notice {
	return Notice{LevelError, "PAYMENT_CANCELLED", "Payment was cancelled"}
}

// Contact outcome.
func MessageSent() Notice {
	return Notice{LevelSuccess, "MESSAGE_SENT", "Your message has been submitted successfully"}
}
