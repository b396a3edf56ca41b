package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// LineItem is a product line frozen at the moment of sale.
type LineItem struct {
	ProductID int             `json:"id"`
	Name      string          `json:"name"`
	Qty       int             `json:"qty"`
	Price     decimal.Decimal `json:"price"` // Unit price at sale
	Image     string          `json:"image"`
}

func (li LineItem) Subtotal() decimal.Decimal {
	return li.Price.Mul(decimal.NewFromInt(int64(li.Qty)))
}

// Transaction is an immutable point-of-sale record. Total always equals the sum of line subtotals.
// ID is the per-process sequence; JournalID keys the durable row, since ID restarts at 1 with every process.
type Transaction struct {
	JournalID uuid.UUID       `gorm:"type:uuid;primaryKey" json:"-"`
	ID        int             `gorm:"not null;index" json:"id"`
	OutletID  string          `gorm:"type:varchar(50);not null;index" json:"outlet_id"`
	Items     []LineItem      `gorm:"serializer:json;type:text" json:"items"`
	Total     decimal.Decimal `gorm:"type:numeric;not null" json:"total"`
	Date      time.Time       `gorm:"not null;index" json:"date"`
}

// TableName specifies the table name for GORM
func (Transaction) TableName() string {
	return "pos_transactions"
}

func (t *Transaction) BeforeCreate(tx *gorm.DB) (err error) {
	if t.JournalID == uuid.Nil {
		t.JournalID = uuid.New()
	}
	return
}

// ItemCount sums the quantities of every line.
func (t *Transaction) ItemCount() int {
	total := 0
	for _, li := range t.Items {
		total += li.Qty
	}
	return total
}
