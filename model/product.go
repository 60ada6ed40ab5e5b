package model

import (
	"github.com/shopspring/decimal"
	"time"
)

// Product ...
type Product struct {
	ID    int64           `db:"id"`
	Name  string          `db:"name"`
	Price decimal.Decimal `db:"price"`

	// DiscountPercent and IsFlashSale are the stored fields, the pricing
	// overlay recomputes the effective view and never writes them back
	DiscountPercent int64 `db:"discount_percent"`
	IsFlashSale     bool  `db:"is_flash_sale"`

	ImageURL string `db:"image_url"`

	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// NullProduct ...
type NullProduct struct {
	Valid   bool
	Product Product
}
