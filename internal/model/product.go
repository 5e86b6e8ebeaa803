package model

// Product is one sellable item. The table keeps the storefront's historical
// name "inventory"; product ids are caller-supplied SKU-style strings.
type Product struct {
	ID        string  `gorm:"primaryKey;type:varchar(64)" json:"id" validate:"required"`
	Name      string  `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	Price     int64   `gorm:"not null;default:0" json:"price"`
	Stock     int     `gorm:"not null;default:0" json:"stock"`
	Category  string  `gorm:"type:varchar(100);not null" json:"category"`
	ImagePath *string `gorm:"column:image_path;type:varchar(255)" json:"imagePath"`
}

func (Product) TableName() string {
	return "inventory"
}
