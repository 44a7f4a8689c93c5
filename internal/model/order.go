package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusOnCourier OrderStatus = "on_courier"
	StatusDelivered OrderStatus = "delivered"
	StatusReturned  OrderStatus = "returned"
)

// DefaultCourierCharges is the flat delivery fee applied when an order
// arrives without one.
var DefaultCourierCharges = decimal.NewFromInt(350)

// OrderItem is a frozen line-item snapshot. Product name, size, color and
// prices are copied at order time; product_id/variant_id are plain strings
// with no foreign-key enforcement, a dangling reference is skipped during
// stock adjustment.
type OrderItem struct {
	ProductID   string          `json:"product_id" validate:"required"`
	VariantID   string          `json:"variant_id" validate:"required"`
	ProductName string          `json:"product_name"`
	Size        string          `json:"size"`
	Color       string          `json:"color"`
	Quantity    int             `json:"quantity" validate:"required,gt=0"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	TotalPrice  decimal.Decimal `json:"total_price"`
}

type Order struct {
	BaseModel
	OrderNumber        string           `gorm:"type:varchar(20);index" json:"order_number"`
	CustomerID         uuid.UUID        `gorm:"type:uuid" json:"customer_id"`
	CustomerName       string           `gorm:"type:varchar(255)" json:"customer_name" validate:"required"`
	CustomerAddress    string           `gorm:"type:text" json:"customer_address" validate:"required"`
	CustomerPhone      string           `gorm:"type:varchar(50)" json:"customer_phone" validate:"required"`
	CustomerPhone2     string           `gorm:"type:varchar(50)" json:"customer_phone_2"`
	CustomerCity       string           `gorm:"type:varchar(100)" json:"customer_city"`
	Items              []OrderItem      `gorm:"type:jsonb;serializer:json" json:"items" validate:"required,min=1,dive"`
	Subtotal           decimal.Decimal  `gorm:"type:decimal(12,2)" json:"subtotal"`
	TaxAmount          decimal.Decimal  `gorm:"type:decimal(12,2)" json:"tax_amount"`
	CourierCharges     decimal.Decimal  `gorm:"type:decimal(12,2)" json:"courier_charges"`
	DiscountAmount     decimal.Decimal  `gorm:"type:decimal(12,2)" json:"discount_amount"`
	DiscountPercentage decimal.Decimal  `gorm:"type:decimal(6,2)" json:"discount_percentage"`
	TotalAmount        decimal.Decimal  `gorm:"type:decimal(12,2)" json:"total_amount"`
	Status             OrderStatus      `gorm:"type:varchar(20);index" json:"status" validate:"omitempty,oneof=pending on_courier delivered returned"`
	TrackingNumber     string           `gorm:"type:varchar(100)" json:"tracking_number"`
	CODAmount          *decimal.Decimal `gorm:"type:decimal(12,2)" json:"cod_amount,omitempty"`
	Remarks            string           `gorm:"type:text" json:"remarks"`
}
