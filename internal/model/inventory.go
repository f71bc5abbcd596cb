package model

import "time"

// Inventory statuses.
const (
	StatusDraft  = "draft"
	StatusActive = "active"
	StatusClosed = "closed"
)

// ValidStatus reports whether s is a recognized inventory status.
func ValidStatus(s string) bool {
	return s == StatusDraft || s == StatusActive || s == StatusClosed
}

// Recognized keys of the Inventory settings map. Anything else is rejected
// at create time.
var RecognizedSettingKeys = map[string]struct{}{
	"count_mode":  {},
	"blind_count": {},
	"location":    {},
	"note":        {},
}

// Inventory — сессия пересчёта. Содержит строки InventoryEntry.
type Inventory struct {
	ID     string `gorm:"primaryKey;type:uuid" json:"id"`
	UserID int64  `gorm:"not null;index" json:"user_id"`

	// Связи
	User *User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`

	Name     string         `gorm:"not null" json:"name"`
	Status   string         `gorm:"not null;default:draft" json:"status"`
	Settings map[string]any `gorm:"serializer:json" json:"settings,omitempty"`

	Entries []InventoryEntry `gorm:"constraint:OnDelete:CASCADE" json:"-"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// InventoryEntry — строка сессии: товар плюс посчитанное количество.
// Один товар встречается в сессии не более одного раза.
type InventoryEntry struct {
	ID          string `gorm:"primaryKey;type:uuid" json:"id"`
	InventoryID string `gorm:"type:uuid;not null;index;uniqueIndex:idx_entries_inventory_item" json:"inventory_id"`
	ItemID      string `gorm:"type:uuid;not null;uniqueIndex:idx_entries_inventory_item" json:"item_id"`

	Item *Item `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"item,omitempty"`

	Quantity float64 `gorm:"not null;default:0" json:"quantity"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
