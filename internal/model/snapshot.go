package model

import "time"

// LedgerSnapshot is a persisted point-in-time copy of the whole ledger.
type LedgerSnapshot struct {
	ID         uint                   `gorm:"primaryKey" json:"id"`
	TakenAt    time.Time              `gorm:"not null;index" json:"taken_at"`
	LastRefill time.Time              `json:"last_refill"`
	Hub        map[int]int            `gorm:"serializer:json;type:text" json:"hub"`
	Outlets    map[string]map[int]int `gorm:"serializer:json;type:text" json:"outlets"`
}

// TableName specifies the table name for GORM
func (LedgerSnapshot) TableName() string {
	return "ledger_snapshots"
}
