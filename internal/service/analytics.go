package service

import (
	"math"
	"time"

	"go-inventory-hub/internal/model"
)

// WasteInput is everything the waste estimate depends on.
type WasteInput struct {
	OutletTotals []int
	HubTotal     int
	Sales24h     int
	Sales7d      int
}

// OverstockPcs estimates how many units are likely to spoil before they sell.
// Outlet excess counts fully; hub excess above the buffer counts at HubWeight.
func OverstockPcs(outletTotals []int, hubTotal int, th Thresholds) int {
	overstock := 0
	for _, total := range outletTotals {
		if total > th.OutletOverstock {
			overstock += total - th.OutletOverstock
		}
	}
	if hubExcess := hubTotal - th.HubBuffer; hubExcess > 0 {
		overstock += int(float64(hubExcess) * th.HubWeight)
	}
	return overstock
}

// SalesVelocity takes the strongest of the 24h and 7-day daily rates, floored at MinVelocity.
func SalesVelocity(sales24h, sales7d int, th Thresholds) float64 {
	return math.Max(math.Max(float64(sales24h), float64(sales7d)/7), th.MinVelocity)
}

// BaselineRisk maps days of supply onto the monotonic risk curve.
func BaselineRisk(coverageDays float64, th Thresholds) float64 {
	switch {
	case coverageDays <= th.FlatUntil:
		return th.RiskFloor
	case coverageDays <= th.MidKnot:
		return lerp(coverageDays, th.FlatUntil, th.MidKnot, th.RiskFloor, th.RiskAtMid)
	case coverageDays <= th.HighKnot:
		return lerp(coverageDays, th.MidKnot, th.HighKnot, th.RiskAtMid, th.RiskAtHigh)
	default:
		return th.RiskAtHigh + math.Min(th.TailCap, (coverageDays-th.HighKnot)*th.TailSlope)
	}
}

func lerp(x, x0, x1, y0, y1 float64) float64 {
	return y0 + (x-x0)*(y1-y0)/(x1-x0)
}

// EstimateWaste combines the coverage curve with the overstock share of all stock.
// With no stock anywhere the risk is exactly zero.
func EstimateWaste(in WasteInput, th Thresholds) model.WasteEstimate {
	outletStock := 0
	for _, total := range in.OutletTotals {
		outletStock += total
	}
	totalAll := outletStock + in.HubTotal
	if totalAll <= 0 {
		return model.WasteEstimate{}
	}

	overstock := OverstockPcs(in.OutletTotals, in.HubTotal, th)
	velocity := SalesVelocity(in.Sales24h, in.Sales7d, th)
	coverage := float64(outletStock) / math.Max(velocity, 1)

	overstockPct := float64(overstock) / float64(totalAll) * 100
	risk := math.Max(BaselineRisk(coverage, th), math.Max(overstockPct, th.RiskFloor))
	risk = math.Min(100, math.Max(0, risk))

	return model.WasteEstimate{
		Percent:      roundTo1(risk),
		Pcs:          overstock,
		CoverageDays: roundTo1(coverage),
		Velocity:     velocity,
	}
}

// SalesInWindow sums the quantities sold at or after now-window.
func SalesInWindow(txs []model.Transaction, now time.Time, window time.Duration) int {
	cutoff := now.Add(-window)
	total := 0
	for i := range txs {
		if !txs[i].Date.Before(cutoff) {
			total += txs[i].ItemCount()
		}
	}
	return total
}

func roundTo1(v float64) float64 {
	return math.Round(v*10) / 10
}
