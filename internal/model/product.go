package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DefaultLowStockThreshold is applied when a product is created without one.
const DefaultLowStockThreshold = 5

type Size string

const (
	SizeXS  Size = "XS"
	SizeS   Size = "S"
	SizeM   Size = "M"
	SizeL   Size = "L"
	SizeXL  Size = "XL"
	SizeXXL Size = "XXL"
)

// Variant is one size/color instance of a product with its own stock and
// pricing. Variants live inside the product row (jsonb), not in their own
// table, so stock adjustments are a read-modify-write of the whole product.
type Variant struct {
	ID            string           `json:"id"`
	Size          Size             `json:"size" validate:"required,oneof=XS S M L XL XXL"`
	Color         string           `json:"color" validate:"required"`
	SKU           string           `json:"sku"`
	StockQuantity int              `json:"stock_quantity"`
	Price         decimal.Decimal  `json:"price"`
	BuyPrice      *decimal.Decimal `json:"buy_price,omitempty"`
	PurchaseDate  *time.Time       `json:"purchase_date,omitempty"`
}

type Product struct {
	BaseModel
	Name              string    `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	Description       string    `gorm:"type:text" json:"description"`
	Category          string    `gorm:"type:varchar(100)" json:"category"`
	Variants          []Variant `gorm:"type:jsonb;serializer:json" json:"variants" validate:"required,min=1,dive"`
	LowStockThreshold int       `gorm:"default:5" json:"low_stock_threshold"`
}

// LowStockItem is one variant at or below its product's threshold.
type LowStockItem struct {
	ProductID    uuid.UUID `json:"product_id"`
	ProductName  string    `json:"product_name"`
	VariantID    string    `json:"variant_id"`
	Size         Size      `json:"size"`
	Color        string    `json:"color"`
	CurrentStock int       `json:"current_stock"`
	Threshold    int       `json:"threshold"`
}
