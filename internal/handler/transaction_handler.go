package handler

import (
	"strconv"

	"go-inventory-hub/internal/ledger"
	"go-inventory-hub/internal/service"

	"github.com/gofiber/fiber/v2"
)

type TransactionHandler struct {
	service service.TransactionService
}

func NewTransactionHandler(s service.TransactionService) *TransactionHandler {
	return &TransactionHandler{service: s}
}

func (h *TransactionHandler) CreateTransaction(c *fiber.Ctx) error {
	var req transactionRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	date, err := parseDate(req.Date)
	if err != nil {
		return err
	}

	items := make([]service.SaleItem, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, service.SaleItem{
			ProductID: int(it.ID),
			Qty:       int(it.Qty),
			Price:     it.Price.value,
			Image:     it.Image,
		})
	}

	res, err := h.service.RecordSale(service.SaleRequest{OutletID: req.OutletID, Items: items, Date: date})
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"message":   "Transaksi berhasil",
		"id":        res.Transaction.ID,
		"total":     res.Transaction.Total,
		"new_stock": res.NewStock,
	})
}

func (h *TransactionHandler) GetTransactions(c *fiber.Ctx) error {
	return c.JSON(h.service.GetAllTransactions())
}

func (h *TransactionHandler) GetTransaction(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return ledger.InvalidInput("Invalid transaction ID")
	}

	tx, err := h.service.GetTransactionByID(id)
	if err != nil {
		return err
	}
	return c.JSON(tx)
}
