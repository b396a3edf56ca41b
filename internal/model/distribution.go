package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Distribution summarizes one hub->outlet transfer batch.
type Distribution struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Date       time.Time `gorm:"not null;index" json:"date"`
	OutletID   string    `gorm:"type:varchar(50);not null;index" json:"outlet_id"`
	OutletName string    `gorm:"type:varchar(255)" json:"outlet"`
	ItemsCount int       `gorm:"not null" json:"items_count"`
	TotalQty   int       `gorm:"not null" json:"total_qty"`
}

// TableName specifies the table name for GORM
func (Distribution) TableName() string {
	return "distributions"
}

// Hook Before Create untuk generate UUID kalau belum diisi service
func (d *Distribution) BeforeCreate(tx *gorm.DB) (err error) {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return
}
