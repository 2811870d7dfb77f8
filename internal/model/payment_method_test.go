package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePaymentOption(t *testing.T) {
	method, err := ParsePaymentOption("paypal")
	require.NoError(t, err)
	assert.Equal(t, PaymentKindPayPal, method.Kind)
	assert.Equal(t, "paypal", method.Tag())

	method, err = ParsePaymentOption("braintree")
	require.NoError(t, err)
	assert.Equal(t, PaymentKindOther, method.Kind)
	assert.Equal(t, "braintree", method.Tag())

	_, err = ParsePaymentOption("cheque")
	assert.Error(t, err)
}
