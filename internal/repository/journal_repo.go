package repository

import (
	"go-inventory-hub/internal/model"

	"gorm.io/gorm"
)

// JournalRepository is the durable, append-only mirror of the in-memory logs.
// It only ever inserts; nothing is updated or deleted.
type JournalRepository interface {
	Migrate() error
	RecordTransaction(tx *model.Transaction) error
	RecordDistribution(d *model.Distribution) error
	RecordRestockRequest(req *model.RestockRequest) error
	SaveSnapshot(snap *model.LedgerSnapshot) error
	LatestSnapshot() (*model.LedgerSnapshot, error)
}

type journalRepo struct {
	db *gorm.DB
}

func NewJournalRepo(db *gorm.DB) JournalRepository {
	return &journalRepo{db}
}

func (r *journalRepo) Migrate() error {
	return r.db.AutoMigrate(&model.Transaction{}, &model.Distribution{}, &model.RestockRequest{}, &model.LedgerSnapshot{})
}

func (r *journalRepo) RecordTransaction(tx *model.Transaction) error {
	return r.db.Create(tx).Error
}

func (r *journalRepo) RecordDistribution(d *model.Distribution) error {
	return r.db.Create(d).Error
}

func (r *journalRepo) RecordRestockRequest(req *model.RestockRequest) error {
	return r.db.Create(req).Error
}

func (r *journalRepo) SaveSnapshot(snap *model.LedgerSnapshot) error {
	return r.db.Create(snap).Error
}

func (r *journalRepo) LatestSnapshot() (*model.LedgerSnapshot, error) {
	var snap model.LedgerSnapshot
	if err := r.db.Order("taken_at DESC").Order("id DESC").First(&snap).Error; err != nil {
		return nil, err
	}
	return &snap, nil
}

// noopJournal is used when no database is configured; the in-memory state stays authoritative either way.
type noopJournal struct{}

func NewNoopJournal() JournalRepository {
	return noopJournal{}
}

func (noopJournal) Migrate() error                                   { return nil }
func (noopJournal) RecordTransaction(*model.Transaction) error       { return nil }
func (noopJournal) RecordDistribution(*model.Distribution) error     { return nil }
func (noopJournal) RecordRestockRequest(*model.RestockRequest) error { return nil }
func (noopJournal) SaveSnapshot(*model.LedgerSnapshot) error         { return nil }
func (noopJournal) LatestSnapshot() (*model.LedgerSnapshot, error)   { return nil, gorm.ErrRecordNotFound }
