package service

import (
	"fmt"
	"time"

	"go-inventory-hub/internal/ledger"
	"go-inventory-hub/internal/model"
	"go-inventory-hub/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type DistributionItem struct {
	ProductID int
	Qty       int
}

type DistributionRequest struct {
	OutletID string
	Items    []DistributionItem
}

type DistributionResult struct {
	Distribution model.Distribution
	HubRemaining map[int]int
}

type DistributionService interface {
	Distribute(req DistributionRequest) (*DistributionResult, error)
	GetAllDistributions() []model.Distribution
}

type distributionService struct {
	catalog *model.Catalog
	ledger  *ledger.Ledger
	repo    repository.DistributionRepository
	journal repository.JournalRepository
	events  *EventPublisher
	log     *zap.Logger
	now     func() time.Time
}

func NewDistributionService(
	catalog *model.Catalog,
	l *ledger.Ledger,
	repo repository.DistributionRepository,
	journal repository.JournalRepository,
	events *EventPublisher,
	log *zap.Logger,
) DistributionService {
	return &distributionService{
		catalog: catalog,
		ledger:  l,
		repo:    repo,
		journal: journal,
		events:  events,
		log:     log.Named("distribution"),
		now:     time.Now,
	}
}

func (s *distributionService) Distribute(req DistributionRequest) (*DistributionResult, error) {
	outlet, err := requireOutlet(s.catalog, req.OutletID)
	if err != nil {
		return nil, err
	}
	if len(req.Items) == 0 {
		return nil, ledger.InvalidInput("items must not be empty")
	}

	entries := make([]ledger.Entry, 0, 2*len(req.Items))
	totalQty := 0
	for i, item := range req.Items {
		product, err := requireProduct(s.catalog, i+1, item.ProductID, item.Qty)
		if err != nil {
			return nil, err
		}
		entries = append(entries,
			ledger.Entry{Location: ledger.Hub(), ProductID: product.ID, Delta: -item.Qty},
			ledger.Entry{Location: ledger.Outlet(outlet.ID), ProductID: product.ID, Delta: item.Qty},
		)
		totalQty += item.Qty
	}

	// Refill settles inside the same lock as the hub check, so the batch sees one consistent hub.
	now := s.now().UTC()
	applied, err := s.ledger.ApplyBatch(ledger.Batch{Entries: entries, Touch: outlet.ID, At: now, Settle: true})
	if err != nil {
		return nil, describeStockError(s.catalog, err, "hub")
	}

	d := s.repo.Append(model.Distribution{
		ID:         uuid.New(),
		Date:       now,
		OutletID:   outlet.ID,
		OutletName: outlet.Name,
		ItemsCount: len(req.Items),
		TotalQty:   totalQty,
	})

	if err := s.journal.RecordDistribution(&d); err != nil {
		s.log.Error("journal distribution", zap.String("distribution_id", d.ID.String()), zap.Error(err))
	}

	hubRemaining := applied.Hub

	s.log.Info("stock distributed",
		zap.String("outlet_id", outlet.ID),
		zap.Int("items", d.ItemsCount),
		zap.Int("total_qty", d.TotalQty),
	)

	go s.events.Publish(map[string]interface{}{
		"type":   "stock_update",
		"action": "distribution_created",
		"distribution": map[string]interface{}{
			"id":        d.ID,
			"outlet_id": d.OutletID,
			"total_qty": d.TotalQty,
		},
		"hub_remaining": hubRemaining,
		"message":       fmt.Sprintf("%d pcs dikirim ke %s", d.TotalQty, outlet.Name),
	})

	return &DistributionResult{Distribution: d, HubRemaining: hubRemaining}, nil
}

func (s *distributionService) GetAllDistributions() []model.Distribution {
	return s.repo.FindAll()
}
