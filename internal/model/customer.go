package model

type Customer struct {
	BaseModel
	Name       string `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	Email      string `gorm:"type:varchar(255)" json:"email" validate:"required,email"`
	Phone      string `gorm:"type:varchar(50)" json:"phone" validate:"required"`
	Phone2     string `gorm:"type:varchar(50)" json:"phone_2"`
	Address    string `gorm:"type:text" json:"address" validate:"required"`
	City       string `gorm:"type:varchar(100)" json:"city"`
	PostalCode string `gorm:"type:varchar(20)" json:"postal_code"`
}
