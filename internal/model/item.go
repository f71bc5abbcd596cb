package model

import "time"

// Unit types for Item.
const (
	UnitQuantity = "quantity"
	UnitWeight   = "weight"
)

// ValidUnitType reports whether u is a recognized unit type.
func ValidUnitType(u string) bool {
	return u == UnitQuantity || u == UnitWeight
}

// Item — карточка товара пользователя.
// UPC уникален в пределах одного владельца; у разных пользователей
// допускаются одинаковые UPC.
type Item struct {
	ID     string `gorm:"primaryKey;type:uuid" json:"id"`
	UserID int64  `gorm:"not null;index;uniqueIndex:idx_items_user_upc" json:"user_id"`

	// Связи
	User *User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`

	Name                 string   `gorm:"not null" json:"name"`
	UPCNumber            *string  `gorm:"column:upc_number;uniqueIndex:idx_items_user_upc" json:"upc_number,omitempty"`
	AverageWeightPerUnit *float64 `gorm:"column:average_weight_per_unit" json:"average_weight_per_unit,omitempty"`
	UnitType             string   `gorm:"not null;default:quantity" json:"unit_type"`
	ItemType             *string  `json:"item_type,omitempty"`
	Brand                *string  `json:"brand,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
