package handler

import (
	"go-inventory-hub/internal/service"

	"github.com/gofiber/fiber/v2"
)

type InventoryHandler struct {
	service service.InventoryService
}

func NewInventoryHandler(s service.InventoryService) *InventoryHandler {
	return &InventoryHandler{service: s}
}

// GetProducts lists the catalog. With ?outlet_id= each product carries the
// stock held there; outlet_id=hub_pusat reports the hub.
func (h *InventoryHandler) GetProducts(c *fiber.Ctx) error {
	outletID := c.Query("outlet_id")
	if outletID == "" {
		return c.JSON(h.service.GetAllProducts())
	}

	products, err := h.service.GetProductsWithStock(outletID)
	if err != nil {
		return err
	}
	return c.JSON(products)
}
