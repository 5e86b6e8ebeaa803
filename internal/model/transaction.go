package model

// Transaction is one sale header. The id comes from the caller (receipt
// number); Date is stored as "2006-01-02 15:04:05" so lexical order is
// chronological.
type Transaction struct {
	ID            string            `gorm:"primaryKey;type:varchar(64)" json:"id" validate:"required"`
	Date          string            `gorm:"type:varchar(32);not null" json:"date"`
	Total         int64             `gorm:"not null" json:"total"`
	PaymentMethod string            `gorm:"column:payment_method;type:varchar(32)" json:"paymentMethod"`
	ChangeAmount  int64             `gorm:"column:change_amount;not null;default:0" json:"change"`
	Items         []TransactionItem `gorm:"foreignKey:TransactionID;constraint:OnDelete:CASCADE" json:"items" validate:"required,min=1"`
}

func (Transaction) TableName() string {
	return "transactions"
}

// TransactionItem is one line of a sale. The table has no primary key: a
// cart may list the same product on several lines and each line is stored
// as its own row. ProductID is a weak reference; the product may be
// deleted later.
type TransactionItem struct {
	TransactionID string `gorm:"column:transaction_id;type:varchar(64);not null;index" json:"-"`
	ProductID     string `gorm:"column:product_id;type:varchar(64);not null" json:"id"`
	Quantity      int    `gorm:"not null" json:"qty"`
	Price         int64  `gorm:"not null" json:"price"`
	Subtotal      int64  `gorm:"not null" json:"subtotal"`
}

func (TransactionItem) TableName() string {
	return "transaction_items"
}

// TransactionLine is a line item joined with the current product name.
// Name is null when the product has since been deleted.
type TransactionLine struct {
	ProductID string  `json:"id"`
	Name      *string `json:"name"`
	Quantity  int     `json:"qty"`
	Price     int64   `json:"price"`
	Subtotal  int64   `json:"subtotal"`
}

// TransactionResponse mirrors the receipt-history wire format.
type TransactionResponse struct {
	ID            string            `json:"id"`
	Date          string            `json:"date"`
	Total         int64             `json:"total"`
	PaymentMethod string            `json:"paymentMethod"`
	Change        int64             `json:"change"`
	Items         []TransactionLine `json:"items"`
}
