package model

import (
	"time"

	"go-inventory-hub/internal/ledger"
)

// DefaultHubStock is the opening stock of the central hub.
var DefaultHubStock = map[int]int{
	1: 400, // Dada
	2: 400, // Paha Atas
	3: 300, // Sayap
	4: 300, // Paha Bawah
	5: 600, // Nasi
	6: 600, // Es Teh
}

// DefaultOutletStock is the opening stock of every outlet, keyed by outlet then product.
var DefaultOutletStock = map[string]map[int]int{
	"outlet_1": {1: 24, 2: 18, 3: 5, 4: 12, 5: 50, 6: 100},
	"outlet_2": {1: 40, 2: 35, 3: 20, 4: 30, 5: 80, 6: 120},
	"outlet_3": {1: 10, 2: 8, 3: 5, 4: 5, 5: 20, 6: 40},
	"outlet_4": {1: 5, 2: 2, 3: 0, 4: 4, 5: 10, 6: 15},
}

// defaultLastActivity is how long before process start each outlet was last touched.
var defaultLastActivity = map[string]time.Duration{
	"outlet_1": 5 * time.Minute,
	"outlet_2": 15 * time.Minute,
	"outlet_3": 30 * time.Minute,
	"outlet_4": 2 * time.Minute,
}

// DefaultLedgerSeed returns the opening ledger state relative to now.
func DefaultLedgerSeed(now time.Time) ledger.Seed {
	seed := ledger.Seed{
		Hub:          make(map[int]int, len(DefaultHubStock)),
		Outlets:      make(map[string]map[int]int, len(DefaultOutletStock)),
		LastActivity: make(map[string]time.Time, len(defaultLastActivity)),
	}
	for id, qty := range DefaultHubStock {
		seed.Hub[id] = qty
	}
	for outletID, stock := range DefaultOutletStock {
		seed.Outlets[outletID] = make(map[int]int, len(stock))
		for id, qty := range stock {
			seed.Outlets[outletID][id] = qty
		}
	}
	for outletID, ago := range defaultLastActivity {
		seed.LastActivity[outletID] = now.Add(-ago)
	}
	return seed
}
