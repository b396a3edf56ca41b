package handler

import (
	"go-inventory-hub/internal/service"

	"github.com/gofiber/fiber/v2"
)

type DashboardHandler struct {
	service service.DashboardService
}

func NewDashboardHandler(s service.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: s}
}

// GetDashboard returns overview statistics, the waste estimate and the per-outlet inventory table
func (h *DashboardHandler) GetDashboard(c *fiber.Ctx) error {
	dashboard, err := h.service.GetDashboard()
	if err != nil {
		return err
	}
	return c.JSON(dashboard)
}

// GetReport returns daily sales per outlet (laporan)
func (h *DashboardHandler) GetReport(c *fiber.Ctx) error {
	return c.JSON(h.service.GetReport())
}
