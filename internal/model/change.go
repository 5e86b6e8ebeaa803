package model

import "time"

// DateStr/TimeStr keep the display formats the storefront writes them in
// ("30 Aug 2026" / "14:05:09"); CreatedAt is the real ordering key.
type InventoryChange struct {
	ID        string    `gorm:"primaryKey;type:varchar(64)" json:"id"`
	Action    string    `gorm:"type:varchar(50);not null" json:"action" validate:"required"`
	ItemID    string    `gorm:"column:item_id;type:varchar(64);not null" json:"itemId" validate:"required"`
	ItemName  string    `gorm:"column:item_name;type:varchar(255);not null" json:"itemName" validate:"required"`
	Details   string    `gorm:"type:text" json:"details"`
	DateStr   string    `gorm:"column:date_str;type:varchar(20)" json:"date"`
	TimeStr   string    `gorm:"column:time_str;type:varchar(20)" json:"time"`
	CreatedAt time.Time `json:"created_at"`
}

func (InventoryChange) TableName() string {
	return "inventory_changes"
}
