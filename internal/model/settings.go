package model

import "github.com/shopspring/decimal"

// SettingsID is the fixed primary key of the singleton settings record.
const SettingsID = "business_settings"

type BusinessSettings struct {
	ID                    string          `gorm:"primaryKey;type:varchar(50)" json:"id"`
	BusinessName          string          `gorm:"type:varchar(255)" json:"business_name"`
	Address               string          `gorm:"type:text" json:"address"`
	Phone                 string          `gorm:"type:varchar(50)" json:"phone"`
	Email                 string          `gorm:"type:varchar(255)" json:"email"`
	TaxRate               decimal.Decimal `gorm:"type:decimal(6,2)" json:"tax_rate"`
	ShippingLabelTemplate string          `gorm:"type:text" json:"shipping_label_template"`
}

const defaultLabelTemplate = `
    <div style="width: 210mm; height: 297mm; padding: 20mm; font-family: Arial, sans-serif;">
        <div style="border: 2px solid #000; height: 100%; padding: 10mm;">
            <h2 style="text-align: center; margin-bottom: 20px;">{{business_name}}</h2>
            <div style="margin-bottom: 20px;">
                <strong>From:</strong><br>
                {{business_address}}<br>
                {{business_phone}}
            </div>
            <div style="margin-bottom: 20px;">
                <strong>To:</strong><br>
                {{customer_name}}<br>
                {{customer_address}}<br>
                {{customer_phone}}
            </div>
            <div style="margin-bottom: 20px;">
                <strong>Order #:</strong> {{order_number}}<br>
                <strong>Tracking #:</strong> {{tracking_number}}<br>
                <strong>Date:</strong> {{order_date}}
            </div>
            <div style="margin-bottom: 20px;">
                <strong>Items:</strong><br>
                {{order_items}}
            </div>
            <div style="margin-top: 40px; text-align: center;">
                <strong>Total: LKR {{total_amount}}</strong>
            </div>
        </div>
    </div>
    `

// DefaultSettings returns the record persisted on first access when no
// settings document exists yet.
func DefaultSettings() *BusinessSettings {
	return &BusinessSettings{
		ID:                    SettingsID,
		BusinessName:          "My Clothing Store",
		TaxRate:               decimal.Zero,
		ShippingLabelTemplate: defaultLabelTemplate,
	}
}
