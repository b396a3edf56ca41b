package service

import (
	"context"
	"fmt"
	"time"

	"go-inventory-hub/internal/ledger"
	"go-inventory-hub/internal/model"
	"go-inventory-hub/internal/repository"

	"go.uber.org/zap"
)

// SnapshotService copies the live ledger into the journal.
type SnapshotService interface {
	TakeSnapshot() (*model.LedgerSnapshot, error)
	Run(ctx context.Context, interval time.Duration)
}

type snapshotService struct {
	ledger  *ledger.Ledger
	journal repository.JournalRepository
	log     *zap.Logger
	now     func() time.Time
}

func NewSnapshotService(l *ledger.Ledger, journal repository.JournalRepository, log *zap.Logger) SnapshotService {
	return &snapshotService{
		ledger:  l,
		journal: journal,
		log:     log.Named("snapshot"),
		now:     time.Now,
	}
}

func (s *snapshotService) TakeSnapshot() (*model.LedgerSnapshot, error) {
	snap, err := s.ledger.Snapshot()
	if err != nil {
		return nil, err
	}
	record := &model.LedgerSnapshot{
		TakenAt:    s.now().UTC(),
		LastRefill: snap.LastRefill,
		Hub:        snap.Hub,
		Outlets:    snap.Outlets,
	}
	if err := s.journal.SaveSnapshot(record); err != nil {
		return nil, fmt.Errorf("save ledger snapshot: %w", err)
	}
	return record, nil
}

// Run takes a snapshot every interval until ctx is cancelled. A non-positive interval disables it.
func (s *snapshotService) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			record, err := s.TakeSnapshot()
			if err != nil {
				s.log.Error("ledger snapshot failed", zap.Error(err))
				continue
			}
			s.log.Debug("ledger snapshot saved", zap.Uint("id", record.ID), zap.Time("taken_at", record.TakenAt))
		}
	}
}
