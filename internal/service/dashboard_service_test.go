package service

import (
	"testing"
	"time"

	"go-inventory-hub/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetDashboard_Seed(t *testing.T) {
	f := newFixture(nil)

	d, err := f.dashboard.GetDashboard()
	require.NoError(t, err)

	assert.Equal(t, 4, d.Stats.TotalOutlet)
	assert.True(t, CarriedRevenueBaseline.Equal(d.Stats.TotalPendapatan))
	assert.Equal(t, 2600, d.Stats.StokGudang)
	assert.Equal(t, 1, d.Stats.OutletKritis)
	assert.Equal(t, map[model.OutletStatus]int{
		model.StatusCritical: 1,
		model.StatusAman:     1,
		model.StatusBerlebih: 2,
	}, d.Stats.StatusCounts)
	assert.Equal(t, 0, d.RequestsCount)

	require.Len(t, d.Inventory, 4)
	wants := []struct {
		id         string
		total      int
		status     model.OutletStatus
		lastUpdate string
	}{
		{"outlet_1", 209, model.StatusBerlebih, "5 min ago"},
		{"outlet_2", 325, model.StatusBerlebih, "15 min ago"},
		{"outlet_3", 88, model.StatusAman, "30 min ago"},
		{"outlet_4", 36, model.StatusCritical, "2 min ago"},
	}
	for i, want := range wants {
		row := d.Inventory[i]
		assert.Equal(t, want.id, row.ID)
		assert.Equal(t, want.total, row.Total)
		assert.Equal(t, want.status, row.Status)
		assert.Equal(t, want.lastUpdate, row.LastUpdate)
	}

	// 658 outlet units over 80/day is 8.225 days of cover.
	assert.InDelta(t, 55.9, d.Waste.Percent, 0.001)
	assert.Equal(t, 474, d.Stats.PotensiWastePcs)
	assert.Equal(t, "55.9%", d.Stats.PotensiWaste)
}

func TestGetDashboard_SettlesHubAndCountsRevenue(t *testing.T) {
	f := newFixture(nil)
	_, err := f.transactions.RecordSale(SaleRequest{OutletID: "outlet_2", Items: []SaleItem{{ProductID: 1, Qty: 3}}})
	require.NoError(t, err)
	_, err = f.restock.CreateRequest(RestockRequestInput{OutletID: "outlet_4", Items: []model.RestockItem{{ProductID: 1, Qty: 20}}})
	require.NoError(t, err)

	f.at = baseTime.Add(2 * time.Hour)
	d, err := f.dashboard.GetDashboard()
	require.NoError(t, err)

	assert.Equal(t, 2600+6*50*120, d.Stats.StokGudang)
	assert.True(t, CarriedRevenueBaseline.Add(decimal.NewFromInt(30000)).Equal(d.Stats.TotalPendapatan))
	assert.Equal(t, "2 hours ago", d.Inventory[1].LastUpdate)
	assert.Equal(t, 1, d.RequestsCount)
}

func TestClassifyOutlet(t *testing.T) {
	assert.Equal(t, model.StatusCritical, ClassifyOutlet(49, DefaultThresholds))
	assert.Equal(t, model.StatusAman, ClassifyOutlet(50, DefaultThresholds))
	assert.Equal(t, model.StatusAman, ClassifyOutlet(200, DefaultThresholds))
	assert.Equal(t, model.StatusBerlebih, ClassifyOutlet(201, DefaultThresholds))
}

func TestTimeAgo(t *testing.T) {
	assert.Equal(t, "Just now", timeAgo(30*time.Second))
	assert.Equal(t, "Just now", timeAgo(-time.Minute))
	assert.Equal(t, "1 min ago", timeAgo(time.Minute))
	assert.Equal(t, "59 min ago", timeAgo(59*time.Minute+59*time.Second))
	assert.Equal(t, "1 hours ago", timeAgo(time.Hour))
	assert.Equal(t, "26 hours ago", timeAgo(26*time.Hour))
}

func TestGetReport(t *testing.T) {
	f := newFixture(nil)
	sale := func(outletID string, date time.Time, qty int) {
		_, err := f.transactions.RecordSale(SaleRequest{OutletID: outletID, Items: []SaleItem{{ProductID: 6, Qty: qty}}, Date: &date})
		require.NoError(t, err)
	}

	// 29 Feb 17:00 WIB
	sale("outlet_1", time.Date(2024, 2, 29, 10, 0, 0, 0, time.UTC), 2)
	// 1 Mar 03:00 WIB, the same Jakarta day as baseTime
	sale("outlet_1", time.Date(2024, 2, 29, 20, 0, 0, 0, time.UTC), 1)
	sale("outlet_2", baseTime, 4)
	sale("outlet_1", baseTime, 3)

	rows := f.dashboard.GetReport()
	require.Len(t, rows, 3+len(model.ArchivedReports))

	assert.Equal(t, "rep_2024-02-29_outlet_1", rows[0].ID)
	assert.Equal(t, "29 Feb 2024", rows[0].Tanggal)
	assert.Equal(t, model.ReportFinal, rows[0].Status)
	assert.Equal(t, 1, rows[0].Transaksi)
	assert.True(t, decimal.NewFromInt(6000).Equal(rows[0].Omzet))

	assert.Equal(t, "rep_2024-03-01_outlet_1", rows[1].ID)
	assert.Equal(t, "01 Mar 2024", rows[1].Tanggal)
	assert.Equal(t, "Cabang UNNES Sekaran", rows[1].Outlet)
	assert.Equal(t, model.ReportOpen, rows[1].Status)
	assert.Equal(t, 2, rows[1].Transaksi)
	assert.Equal(t, 4, rows[1].ItemTerjual)
	assert.True(t, decimal.NewFromInt(12000).Equal(rows[1].Omzet))

	assert.Equal(t, "rep_2024-03-01_outlet_2", rows[2].ID)
	assert.Equal(t, model.ArchivedReports, rows[3:])
}

func TestFormatTanggal(t *testing.T) {
	assert.Equal(t, "02 Des 2023", formatTanggal(time.Date(2023, 12, 2, 5, 0, 0, 0, time.UTC)))
	// 31 May 20:00 UTC is already June in Jakarta.
	assert.Equal(t, "01 Jun 2024", formatTanggal(time.Date(2024, 5, 31, 20, 0, 0, 0, time.UTC)))
	assert.Equal(t, "17 Agu 2024", formatTanggal(time.Date(2024, 8, 17, 0, 0, 0, 0, time.UTC)))
}
