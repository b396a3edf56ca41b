package model

import "github.com/shopspring/decimal"

type OutletStatus string

const (
	StatusCritical OutletStatus = "CRITICAL"
	StatusAman     OutletStatus = "AMAN"
	StatusBerlebih OutletStatus = "BERLEBIH"
)

// WasteEstimate is the analytics output shown on the dashboard.
type WasteEstimate struct {
	Percent      float64 `json:"percent"`
	Pcs          int     `json:"pcs"`
	CoverageDays float64 `json:"coverage_days"`
	Velocity     float64 `json:"velocity"`
}

type DashboardStats struct {
	TotalOutlet     int                  `json:"total_outlet"`
	TotalPendapatan decimal.Decimal      `json:"total_pendapatan"`
	StokGudang      int                  `json:"stok_gudang"`
	OutletKritis    int                  `json:"outlet_kritis"`
	StatusCounts    map[OutletStatus]int `json:"status_counts"`
	PotensiWaste    string               `json:"potensi_waste"`
	PotensiWastePcs int                  `json:"potensi_waste_pcs"`
}

// OutletInventoryRow is one line of the dashboard inventory table.
type OutletInventoryRow struct {
	ID         string       `json:"id"`
	Outlet     string       `json:"outlet"`
	Stock      map[int]int  `json:"stock"`
	Total      int          `json:"total"`
	Status     OutletStatus `json:"status"`
	LastUpdate string       `json:"last_update"`
}

type Dashboard struct {
	Stats         DashboardStats       `json:"stats"`
	Waste         WasteEstimate        `json:"waste"`
	Inventory     []OutletInventoryRow `json:"inventory"`
	RequestsCount int                  `json:"requests_count"`
}
