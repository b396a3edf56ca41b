package service

import "github.com/shopspring/decimal"

// Overstock and waste-risk tuning.
const (
	OutletOverstockThreshold = 180  // outlet stock above this counts fully as overstock
	HubOverstockBuffer       = 2000 // hub stock above this counts as overstock...
	HubOverstockWeight       = 0.5  // ...at this weight
	MinDailyVelocity         = 80.0 // assumed units/day when history is sparse
	WasteRiskFloor           = 5.0  // percent

	// Piecewise coverage curve: flat until FlatUntil days, then linear through
	// the knots, then TailSlope percent per extra day capped at TailCap.
	CoverageFlatUntil = 1.5
	CoverageMidKnot   = 3.0
	CoverageHighKnot  = 7.0
	RiskAtMidKnot     = 23.0
	RiskAtHighKnot    = 51.0
	RiskTailSlope     = 4.0
	RiskTailCap       = 25.0
)

// MaxLineQuantity caps a single sale, distribution or restock line.
const MaxLineQuantity = 100000

// Dashboard outlet classification.
const (
	CriticalStockThreshold    = 50  // below is CRITICAL
	OverstockedStockThreshold = 200 // above is BERLEBIH
)

// CarriedRevenueBaseline is revenue booked before the in-memory ledger went live.
var CarriedRevenueBaseline = decimal.NewFromInt(15700000)

// Thresholds groups every tunable so the algorithms can be exercised with other values.
type Thresholds struct {
	OutletOverstock  int
	HubBuffer        int
	HubWeight        float64
	MinVelocity      float64
	RiskFloor        float64
	FlatUntil        float64
	MidKnot          float64
	HighKnot         float64
	RiskAtMid        float64
	RiskAtHigh       float64
	TailSlope        float64
	TailCap          float64
	CriticalBelow    int
	OverstockedAbove int
}

var DefaultThresholds = Thresholds{
	OutletOverstock:  OutletOverstockThreshold,
	HubBuffer:        HubOverstockBuffer,
	HubWeight:        HubOverstockWeight,
	MinVelocity:      MinDailyVelocity,
	RiskFloor:        WasteRiskFloor,
	FlatUntil:        CoverageFlatUntil,
	MidKnot:          CoverageMidKnot,
	HighKnot:         CoverageHighKnot,
	RiskAtMid:        RiskAtMidKnot,
	RiskAtHigh:       RiskAtHighKnot,
	TailSlope:        RiskTailSlope,
	TailCap:          RiskTailCap,
	CriticalBelow:    CriticalStockThreshold,
	OverstockedAbove: OverstockedStockThreshold,
}
