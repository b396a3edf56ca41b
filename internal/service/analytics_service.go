package service

import (
	"time"

	"go-inventory-hub/internal/ledger"
	"go-inventory-hub/internal/model"
	"go-inventory-hub/internal/repository"
)

const (
	salesWindowDay  = 24 * time.Hour
	salesWindowWeek = 7 * 24 * time.Hour
)

// AnalyticsService estimates spoilage risk from a ledger snapshot and the sales log.
type AnalyticsService interface {
	Estimate(snap ledger.Snapshot, txs []model.Transaction, now time.Time) model.WasteEstimate
	CurrentWaste() (model.WasteEstimate, error)
}

type analyticsService struct {
	catalog    *model.Catalog
	ledger     *ledger.Ledger
	txRepo     repository.TransactionRepository
	thresholds Thresholds
	now        func() time.Time
}

func NewAnalyticsService(catalog *model.Catalog, l *ledger.Ledger, txRepo repository.TransactionRepository, th Thresholds) AnalyticsService {
	return &analyticsService{
		catalog:    catalog,
		ledger:     l,
		txRepo:     txRepo,
		thresholds: th,
		now:        time.Now,
	}
}

func (s *analyticsService) Estimate(snap ledger.Snapshot, txs []model.Transaction, now time.Time) model.WasteEstimate {
	outlets := s.catalog.Outlets()
	totals := make([]int, 0, len(outlets))
	for _, o := range outlets {
		totals = append(totals, snap.OutletTotal(o.ID))
	}
	return EstimateWaste(WasteInput{
		OutletTotals: totals,
		HubTotal:     snap.HubTotal(),
		Sales24h:     SalesInWindow(txs, now, salesWindowDay),
		Sales7d:      SalesInWindow(txs, now, salesWindowWeek),
	}, s.thresholds)
}

func (s *analyticsService) CurrentWaste() (model.WasteEstimate, error) {
	now := s.now().UTC()
	snap, err := s.ledger.SettleAndSnapshot(now)
	if err != nil {
		return model.WasteEstimate{}, err
	}
	return s.Estimate(snap, s.txRepo.FindAll(), now), nil
}
