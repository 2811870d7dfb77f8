package model

import "fmt"

type PaymentMethodKind int

const (
	PaymentKindPayPal PaymentMethodKind = iota
	PaymentKindOther
)

// PaymentMethod is a tagged variant: PayPal, or a named fallback processor.
type PaymentMethod struct {
	Kind PaymentMethodKind
	// Name identifies the processor for Kind == PaymentKindOther, e.g. "braintree".
	Name string
}

func PayPalMethod() PaymentMethod {
	return PaymentMethod{Kind: PaymentKindPayPal}
}

func OtherMethod(name string) PaymentMethod {
	return PaymentMethod{Kind: PaymentKindOther, Name: name}
}

// Tag is the value persisted on Payment records.
func (m PaymentMethod) Tag() string {
	switch m.Kind {
	case PaymentKindPayPal:
		return "paypal"
	case PaymentKindOther:
		return m.Name
	}
	return "unknown"
}

// ParsePaymentOption maps the checkout form option to a payment method.
func ParsePaymentOption(option string) (PaymentMethod, error) {
	switch option {
	case "paypal":
		return PayPalMethod(), nil
	case "braintree":
		return OtherMethod("braintree"), nil
	default:
		return PaymentMethod{}, fmt.Errorf("unknown payment option %q", option)
	}
}
