package handler

import (
	"go-inventory-hub/internal/model"
	"go-inventory-hub/internal/service"

	"github.com/gofiber/fiber/v2"
)

type RestockHandler struct {
	service service.RestockService
}

func NewRestockHandler(s service.RestockService) *RestockHandler {
	return &RestockHandler{service: s}
}

// CreateRequest takes the requested lines from "requests", or from "items" when that is absent.
func (h *RestockHandler) CreateRequest(c *fiber.Ctx) error {
	var req restockRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	lines := req.Requests
	if len(lines) == 0 {
		lines = req.Items
	}
	items := make([]model.RestockItem, 0, len(lines))
	for _, it := range lines {
		items = append(items, model.RestockItem{ProductID: int(it.ID), Qty: int(it.Qty)})
	}

	created, err := h.service.CreateRequest(service.RestockRequestInput{OutletID: req.OutletID, Items: items, Note: req.Note})
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Request received", "id": created.ID})
}

func (h *RestockHandler) GetRequests(c *fiber.Ctx) error {
	return c.JSON(h.service.GetAllRequests())
}
