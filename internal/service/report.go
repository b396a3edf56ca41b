package service

import (
	"fmt"
	"time"

	"go-inventory-hub/internal/model"

	"github.com/shopspring/decimal"
)

// Asia/Jakarta timezone
var jakartaLoc *time.Location

func init() {
	var err error
	jakartaLoc, err = time.LoadLocation("Asia/Jakarta")
	if err != nil {
		// Fallback to UTC+7 if timezone data not available
		jakartaLoc = time.FixedZone("WIB", 7*60*60)
	}
}

var bulanSingkat = [...]string{"Jan", "Feb", "Mar", "Apr", "Mei", "Jun", "Jul", "Agu", "Sep", "Okt", "Nov", "Des"}

// formatTanggal renders t as "02 Jan 2006" in Jakarta time with Indonesian month names.
func formatTanggal(t time.Time) string {
	local := t.In(jakartaLoc)
	return fmt.Sprintf("%02d %s %d", local.Day(), bulanSingkat[local.Month()-1], local.Year())
}

type reportKey struct {
	day      string
	outletID string
}

// GetReport groups the sales log by Jakarta calendar day and outlet, in order
// of first appearance, followed by the archived rows. Today's rows stay Open.
func (s *dashboardService) GetReport() []model.ReportRow {
	return BuildReport(s.catalog, s.txRepo.FindAll(), s.now())
}

func BuildReport(catalog *model.Catalog, txs []model.Transaction, now time.Time) []model.ReportRow {
	today := now.In(jakartaLoc).Format("2006-01-02")

	index := make(map[reportKey]int)
	rows := make([]model.ReportRow, 0, len(model.ArchivedReports))
	for i := range txs {
		tx := &txs[i]
		day := tx.Date.In(jakartaLoc).Format("2006-01-02")
		key := reportKey{day: day, outletID: tx.OutletID}

		pos, ok := index[key]
		if !ok {
			status := model.ReportFinal
			if day == today {
				status = model.ReportOpen
			}
			rows = append(rows, model.ReportRow{
				ID:      fmt.Sprintf("rep_%s_%s", day, tx.OutletID),
				Tanggal: formatTanggal(tx.Date),
				Outlet:  catalog.OutletName(tx.OutletID),
				Omzet:   decimal.Zero,
				Status:  status,
			})
			pos = len(rows) - 1
			index[key] = pos
		}
		rows[pos].Transaksi++
		rows[pos].ItemTerjual += tx.ItemCount()
		rows[pos].Omzet = rows[pos].Omzet.Add(tx.Total)
	}

	return append(rows, model.ArchivedReports...)
}
