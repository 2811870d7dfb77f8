package dto

import (
	"toko-storefront/internal/model"
	"toko-storefront/internal/notice"
)

type CheckoutForm struct {
	Line1         string `json:"address_line1" validate:"required"`
	Line2         string `json:"address_line2"`
	PostalCode    string `json:"postal_code" validate:"required"`
	Country       string `json:"country" validate:"required"`
	PaymentOption string `json:"payment_option" validate:"required,oneof=paypal braintree"`
}

type ContactForm struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"required"`
	Message string `json:"message" validate:"required"`
}

type RatingForm struct {
	Value int `json:"value" validate:"required,min=1,max=5"`
}

type CommentForm struct {
	Text string `json:"text" validate:"required"`
}

type CardPaymentRequest struct {
	Nonce string `json:"nonce" validate:"required"`
}

type LineItemResponse struct {
	ProductSlug string `json:"product_slug"`
	ProductName string `json:"product_name"`
	UnitPrice   string `json:"unit_price"`
	Quantity    int    `json:"quantity"`
	Subtotal    string `json:"subtotal"`
}

type CartResponse struct {
	OrderID uint               `json:"order_id"`
	Items   []LineItemResponse `json:"items"`
	Total   string             `json:"total"`
}

type CheckoutResponse struct {
	Notice notice.Notice `json:"notice"`
	// Next tells the client where to continue: "paypal" carries an approval
	// URL, "braintree" expects a card nonce submission.
	Next        string `json:"next,omitempty"`
	ApprovalURL string `json:"approval_url,omitempty"`
}

type ProductDetailResponse struct {
	Product       *model.Product   `json:"product"`
	AverageRating *string          `json:"average_rating"`
	Ratings       []*model.Rating  `json:"ratings"`
	Comments      []*model.Comment `json:"comments"`
}
