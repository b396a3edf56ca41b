package service

import (
	"sync"
	"time"

	"go-inventory-hub/internal/ledger"
	"go-inventory-hub/internal/model"
	"go-inventory-hub/internal/repository"

	"go.uber.org/zap"
)

var baseTime = time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

type fixture struct {
	at          time.Time
	catalog     *model.Catalog
	ledger      *ledger.Ledger
	txRepo      repository.TransactionRepository
	distRepo    repository.DistributionRepository
	restockRepo repository.RestockRepository

	inventory    *inventoryService
	transactions *transactionService
	distribution *distributionService
	restock      *restockService
	analytics    *analyticsService
	dashboard    *dashboardService
}

func (f *fixture) now() time.Time { return f.at }

func zapNop() *zap.Logger { return zap.NewNop() }

// newFixture wires every service over the default seed with a frozen clock.
func newFixture(events *EventPublisher) *fixture {
	log := zap.NewNop()
	f := &fixture{
		at:          baseTime,
		catalog:     model.DefaultCatalog(),
		txRepo:      repository.NewTransactionRepo(),
		distRepo:    repository.NewDistributionRepo(),
		restockRepo: repository.NewRestockRepo(),
	}
	f.ledger = ledger.New(model.DefaultLedgerSeed(baseTime), ledger.NewReplenishmentClock(baseTime, ledger.DefaultRefillIncrement), ledger.WithNow(f.now))
	journal := repository.NewNoopJournal()

	f.inventory = NewInventoryService(f.catalog, f.ledger).(*inventoryService)
	f.inventory.now = f.now
	f.transactions = NewTransactionService(f.catalog, f.ledger, f.txRepo, journal, events, log).(*transactionService)
	f.transactions.now = f.now
	f.distribution = NewDistributionService(f.catalog, f.ledger, f.distRepo, journal, events, log).(*distributionService)
	f.distribution.now = f.now
	f.restock = NewRestockService(f.catalog, f.restockRepo, journal, events, log).(*restockService)
	f.restock.now = f.now
	f.analytics = NewAnalyticsService(f.catalog, f.ledger, f.txRepo, DefaultThresholds).(*analyticsService)
	f.analytics.now = f.now
	f.dashboard = NewDashboardService(f.catalog, f.ledger, f.txRepo, f.restockRepo, f.analytics, DefaultThresholds).(*dashboardService)
	f.dashboard.now = f.now
	return f
}

func (f *fixture) totalStock() int {
	snap, err := f.ledger.Snapshot()
	if err != nil {
		panic(err)
	}
	return snap.HubTotal() + snap.OutletsTotal()
}

// recordingSink captures every broadcast message.
type recordingSink struct {
	mu       sync.Mutex
	messages chan []byte
}

func newRecordingSink() *recordingSink {
	return &recordingSink{messages: make(chan []byte, 16)}
}

func (r *recordingSink) Broadcast(msg []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages <- msg
	return nil
}
