package service

import (
	"time"

	"go-inventory-hub/internal/ledger"
	"go-inventory-hub/internal/model"
	"go-inventory-hub/internal/repository"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// SaleItem is one requested POS line. Price and Image override the catalog when set.
type SaleItem struct {
	ProductID int
	Qty       int
	Price     *decimal.Decimal
	Image     string
}

type SaleRequest struct {
	OutletID string
	Items    []SaleItem
	Date     *time.Time // caller-supplied sale time, server time when nil
}

type SaleResult struct {
	Transaction model.Transaction
	NewStock    map[int]int
}

type TransactionService interface {
	RecordSale(req SaleRequest) (*SaleResult, error)
	GetAllTransactions() []model.Transaction
	GetTransactionByID(id int) (*model.Transaction, error)
}

type transactionService struct {
	catalog *model.Catalog
	ledger  *ledger.Ledger
	txRepo  repository.TransactionRepository
	journal repository.JournalRepository
	events  *EventPublisher
	log     *zap.Logger
	now     func() time.Time
}

func NewTransactionService(
	catalog *model.Catalog,
	l *ledger.Ledger,
	txRepo repository.TransactionRepository,
	journal repository.JournalRepository,
	events *EventPublisher,
	log *zap.Logger,
) TransactionService {
	return &transactionService{
		catalog: catalog,
		ledger:  l,
		txRepo:  txRepo,
		journal: journal,
		events:  events,
		log:     log.Named("pos"),
		now:     time.Now,
	}
}

func (s *transactionService) RecordSale(req SaleRequest) (*SaleResult, error) {
	// 1. Outlet harus dikenal
	if _, err := requireOutlet(s.catalog, req.OutletID); err != nil {
		return nil, err
	}

	// 2. Item tidak boleh kosong
	if len(req.Items) == 0 {
		return nil, ledger.InvalidInput("items must not be empty")
	}

	// 3. Validasi tiap item & bekukan harga saat jual
	lines := make([]model.LineItem, 0, len(req.Items))
	entries := make([]ledger.Entry, 0, len(req.Items))
	for i, item := range req.Items {
		product, err := requireProduct(s.catalog, i+1, item.ProductID, item.Qty)
		if err != nil {
			return nil, err
		}

		price := product.Price
		if item.Price != nil {
			price = *item.Price
		}
		image := product.Image
		if item.Image != "" {
			image = item.Image
		}

		lines = append(lines, model.LineItem{
			ProductID: product.ID,
			Name:      product.Name,
			Qty:       item.Qty,
			Price:     price,
			Image:     image,
		})
		entries = append(entries, ledger.Entry{
			Location:  ledger.Outlet(req.OutletID),
			ProductID: product.ID,
			Delta:     -item.Qty,
		})
	}

	// 4. Cek stok & potong dalam satu critical section
	now := s.now().UTC()
	applied, err := s.ledger.ApplyBatch(ledger.Batch{Entries: entries, Touch: req.OutletID, At: now})
	if err != nil {
		return nil, describeStockError(s.catalog, err, "outlet")
	}

	// 5. Simpan log transaksi
	total := decimal.Zero
	for _, li := range lines {
		total = total.Add(li.Subtotal())
	}
	date := now
	if req.Date != nil {
		date = req.Date.UTC()
	}
	tx := s.txRepo.Append(model.Transaction{
		OutletID: req.OutletID,
		Items:    lines,
		Total:    total,
		Date:     date,
	})

	if err := s.journal.RecordTransaction(&tx); err != nil {
		s.log.Error("journal transaction", zap.Int("transaction_id", tx.ID), zap.Error(err))
	}

	newStock := applied.Outlet

	s.log.Info("sale recorded",
		zap.Int("transaction_id", tx.ID),
		zap.String("outlet_id", tx.OutletID),
		zap.Int("items", tx.ItemCount()),
		zap.String("total", tx.Total.String()),
	)

	// 6. Broadcast ke WebSocket
	go s.events.Publish(map[string]interface{}{
		"type":   "stock_update",
		"action": "transaction_created",
		"transaction": map[string]interface{}{
			"id":        tx.ID,
			"outlet_id": tx.OutletID,
			"total":     tx.Total,
			"items":     tx.ItemCount(),
		},
		"new_stock": newStock,
		"message":   "Transaksi berhasil di " + s.catalog.OutletName(tx.OutletID),
	})

	return &SaleResult{Transaction: tx, NewStock: newStock}, nil
}

func (s *transactionService) GetAllTransactions() []model.Transaction {
	return s.txRepo.FindAll()
}

func (s *transactionService) GetTransactionByID(id int) (*model.Transaction, error) {
	return s.txRepo.FindByID(id)
}
