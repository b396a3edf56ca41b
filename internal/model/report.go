package model

import "github.com/shopspring/decimal"

type ReportStatus string

const (
	ReportOpen  ReportStatus = "Open"
	ReportFinal ReportStatus = "Final"
)

// ReportRow aggregates one outlet's sales for one calendar day.
type ReportRow struct {
	ID          string          `json:"id"`
	Tanggal     string          `json:"tanggal"`
	Outlet      string          `json:"outlet"`
	Transaksi   int             `json:"transaksi"`
	ItemTerjual int             `json:"item_terjual"`
	Omzet       decimal.Decimal `json:"omzet"`
	Status      ReportStatus    `json:"status"`
}

// ArchivedReports are closed days carried over from before this ledger went live.
var ArchivedReports = []ReportRow{
	{ID: "hist_1", Tanggal: "02 Des 2023", Outlet: "Cabang UNNES Sekaran", Transaksi: 150, ItemTerjual: 340, Omzet: decimal.NewFromInt(3450000), Status: ReportFinal},
	{ID: "hist_2", Tanggal: "02 Des 2023", Outlet: "Cabang Banaran", Transaksi: 98, ItemTerjual: 210, Omzet: decimal.NewFromInt(2150000), Status: ReportFinal},
}
