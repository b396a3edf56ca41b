package handler

import (
	"go-inventory-hub/internal/service"

	"github.com/gofiber/fiber/v2"
)

type DistributionHandler struct {
	service service.DistributionService
}

func NewDistributionHandler(s service.DistributionService) *DistributionHandler {
	return &DistributionHandler{service: s}
}

func (h *DistributionHandler) CreateDistribution(c *fiber.Ctx) error {
	var req distributionRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	items := make([]service.DistributionItem, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, service.DistributionItem{ProductID: int(it.ID), Qty: int(it.Qty)})
	}

	res, err := h.service.Distribute(service.DistributionRequest{OutletID: req.OutletID, Items: items})
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":       "Stok berhasil ditambahkan",
		"id":            res.Distribution.ID,
		"total_qty":     res.Distribution.TotalQty,
		"hub_remaining": res.HubRemaining,
	})
}

func (h *DistributionHandler) GetDistributions(c *fiber.Ctx) error {
	return c.JSON(h.service.GetAllDistributions())
}
