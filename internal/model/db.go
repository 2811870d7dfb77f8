package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID            uint             `gorm:"primaryKey"`
	Name          string           `gorm:"size:128;not null"`
	Price         decimal.Decimal  `gorm:"type:decimal(12,2);not null"`
	DiscountPrice *decimal.Decimal `gorm:"type:decimal(12,2)"`
	Slug          string           `gorm:"size:128;uniqueIndex;not null"`
	Description   string           `gorm:"type:text"`
	Image         string           `gorm:"size:256"`
	Label         string           `gorm:"size:32"` // NEW, SALE, BEST
	Category      string           `gorm:"size:64;index;not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// EffectivePrice is the discounted price when one is set.
func (p *Product) EffectivePrice() decimal.Decimal {
	if p.DiscountPrice != nil {
		return *p.DiscountPrice
	}
	return p.Price
}

// LineItem lives in at most one open order per (user, product); the partial
// unique index backs the get-or-create in the cart service.
type LineItem struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    string `gorm:"size:64;not null;uniqueIndex:uniq_open_line_item,where:ordered = false"`
	ProductID uint   `gorm:"not null;uniqueIndex:uniq_open_line_item,where:ordered = false"`
	Product   Product
	OrderID   *uint `gorm:"index"`
	Quantity  int   `gorm:"not null;default:1"`
	Ordered   bool  `gorm:"not null;default:false;index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Subtotal is effective unit price times quantity.
func (li *LineItem) Subtotal() decimal.Decimal {
	return li.Product.EffectivePrice().Mul(decimal.NewFromInt(int64(li.Quantity)))
}

// Order with ordered=false is the user's active cart; the partial unique
// index guarantees at most one per user.
type Order struct {
	ID                uint   `gorm:"primaryKey"`
	UserID            string `gorm:"size:64;not null;uniqueIndex:uniq_open_order,where:ordered = false"`
	Ordered           bool   `gorm:"not null;default:false;index"`
	StartedAt         time.Time
	OrderedAt         *time.Time
	ShippingAddressID *uint
	ShippingAddress   *ShippingAddress
	PaymentID         *uint
	Payment           *Payment
	Items             []LineItem `gorm:"foreignKey:OrderID"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// Total sums effective price times quantity over the loaded items.
func (o *Order) Total() decimal.Decimal {
	total := decimal.Zero
	for i := range o.Items {
		total = total.Add(o.Items[i].Subtotal())
	}
	return total
}

type ShippingAddress struct {
	ID         uint   `gorm:"primaryKey"`
	UserID     string `gorm:"size:64;index;not null"`
	Line1      string `gorm:"size:256;not null"`
	Line2      string `gorm:"size:256"`
	PostalCode string `gorm:"size:16;not null"`
	Country    string `gorm:"size:64;not null"`
	CreatedAt  time.Time
}

type Payment struct {
	ID        uint            `gorm:"primaryKey"`
	UserID    string          `gorm:"size:64;index;not null"`
	Amount    decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Method    string          `gorm:"size:32;not null"` // paypal | braintree
	ChargeID  string          `gorm:"size:128;uniqueIndex;not null"`
	Timestamp time.Time
	CreatedAt time.Time
}

type Rating struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    string `gorm:"size:64;index;not null"`
	ProductID uint   `gorm:"index;not null"`
	Value     int    `gorm:"not null"` // 1..5
	CreatedAt time.Time
}

type Comment struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    string `gorm:"size:64;index;not null"`
	ProductID uint   `gorm:"index;not null"`
	Text      string `gorm:"type:text;not null"`
	CreatedAt time.Time
}

type Contact struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"size:128;not null"`
	Email     string `gorm:"size:128;not null"`
	Subject   string `gorm:"size:256;not null"`
	Message   string `gorm:"type:text;not null"`
	CreatedAt time.Time
}
