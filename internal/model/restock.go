package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RestockStatus string

const (
	RestockPending RestockStatus = "Pending"
)

type RestockItem struct {
	ProductID int `json:"id"`
	Qty       int `json:"qty"`
}

// RestockRequest is an outlet asking the hub for more stock. The ledger never
// acts on it directly; fulfilment happens through a Distribution.
type RestockRequest struct {
	JournalID uuid.UUID     `gorm:"type:uuid;primaryKey" json:"-"`
	ID        int           `gorm:"not null;index" json:"id"`
	Date      time.Time     `gorm:"not null;index" json:"date"`
	OutletID  string        `gorm:"type:varchar(50);not null;index" json:"outlet_id"`
	Items     []RestockItem `gorm:"serializer:json;type:text" json:"items"`
	Note      *string       `gorm:"type:text" json:"note"`
	Status    RestockStatus `gorm:"type:varchar(20);not null" json:"status"`
}

// TableName specifies the table name for GORM
func (RestockRequest) TableName() string {
	return "restock_requests"
}

func (r *RestockRequest) BeforeCreate(tx *gorm.DB) (err error) {
	if r.JournalID == uuid.Nil {
		r.JournalID = uuid.New()
	}
	return
}
