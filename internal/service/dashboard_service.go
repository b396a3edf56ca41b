package service

import (
	"fmt"
	"time"

	"go-inventory-hub/internal/ledger"
	"go-inventory-hub/internal/model"
	"go-inventory-hub/internal/repository"

	"github.com/shopspring/decimal"
)

type DashboardService interface {
	GetDashboard() (*model.Dashboard, error)
	GetReport() []model.ReportRow
}

type dashboardService struct {
	catalog     *model.Catalog
	ledger      *ledger.Ledger
	txRepo      repository.TransactionRepository
	restockRepo repository.RestockRepository
	analytics   AnalyticsService
	thresholds  Thresholds
	now         func() time.Time
}

func NewDashboardService(
	catalog *model.Catalog,
	l *ledger.Ledger,
	txRepo repository.TransactionRepository,
	restockRepo repository.RestockRepository,
	analytics AnalyticsService,
	th Thresholds,
) DashboardService {
	return &dashboardService{
		catalog:     catalog,
		ledger:      l,
		txRepo:      txRepo,
		restockRepo: restockRepo,
		analytics:   analytics,
		thresholds:  th,
		now:         time.Now,
	}
}

func (s *dashboardService) GetDashboard() (*model.Dashboard, error) {
	now := s.now().UTC()
	snap, err := s.ledger.SettleAndSnapshot(now)
	if err != nil {
		return nil, err
	}
	txs := s.txRepo.FindAll()

	revenue := CarriedRevenueBaseline
	for i := range txs {
		revenue = revenue.Add(txs[i].Total)
	}

	counts := map[model.OutletStatus]int{
		model.StatusCritical: 0,
		model.StatusAman:     0,
		model.StatusBerlebih: 0,
	}
	outlets := s.catalog.Outlets()
	rows := make([]model.OutletInventoryRow, 0, len(outlets))
	for _, o := range outlets {
		total := snap.OutletTotal(o.ID)
		status := ClassifyOutlet(total, s.thresholds)
		counts[status]++

		lastUpdate := "-"
		if at, ok := snap.LastActivity[o.ID]; ok {
			lastUpdate = timeAgo(now.Sub(at))
		}
		stock := snap.Outlets[o.ID]
		if stock == nil {
			stock = map[int]int{}
		}
		rows = append(rows, model.OutletInventoryRow{
			ID:         o.ID,
			Outlet:     o.Name,
			Stock:      stock,
			Total:      total,
			Status:     status,
			LastUpdate: lastUpdate,
		})
	}

	waste := s.analytics.Estimate(snap, txs, now)

	return &model.Dashboard{
		Stats: model.DashboardStats{
			TotalOutlet:     len(outlets),
			TotalPendapatan: revenue,
			StokGudang:      snap.HubTotal(),
			OutletKritis:    counts[model.StatusCritical],
			StatusCounts:    counts,
			PotensiWaste:    formatPercent(waste.Percent),
			PotensiWastePcs: waste.Pcs,
		},
		Waste:         waste,
		Inventory:     rows,
		RequestsCount: s.restockRepo.CountByStatus(model.RestockPending),
	}, nil
}

// ClassifyOutlet buckets an outlet by its total stock.
func ClassifyOutlet(total int, th Thresholds) model.OutletStatus {
	switch {
	case total < th.CriticalBelow:
		return model.StatusCritical
	case total > th.OverstockedAbove:
		return model.StatusBerlebih
	default:
		return model.StatusAman
	}
}

func formatPercent(p float64) string {
	return decimal.NewFromFloat(p).StringFixed(1) + "%"
}

func timeAgo(d time.Duration) string {
	minutes := int(d / time.Minute)
	switch {
	case minutes < 1:
		return "Just now"
	case minutes < 60:
		return fmt.Sprintf("%d min ago", minutes)
	default:
		return fmt.Sprintf("%d hours ago", minutes/60)
	}
}
