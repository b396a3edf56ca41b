package service

import (
	"time"

	"go-inventory-hub/internal/ledger"
	"go-inventory-hub/internal/model"
)

type InventoryService interface {
	GetAllProducts() []model.Product
	// GetProductsWithStock lists the catalog with quantities held at the hub
	// (model.HubID) or at one outlet.
	GetProductsWithStock(locationID string) ([]model.ProductStock, error)
}

type inventoryService struct {
	catalog *model.Catalog
	ledger  *ledger.Ledger
	now     func() time.Time
}

func NewInventoryService(catalog *model.Catalog, l *ledger.Ledger) InventoryService {
	return &inventoryService{
		catalog: catalog,
		ledger:  l,
		now:     time.Now,
	}
}

func (s *inventoryService) GetAllProducts() []model.Product {
	return s.catalog.Products()
}

func (s *inventoryService) GetProductsWithStock(locationID string) ([]model.ProductStock, error) {
	var stock map[int]int
	if locationID == model.HubID {
		snap, err := s.ledger.SettleAndSnapshot(s.now().UTC())
		if err != nil {
			return nil, err
		}
		stock = snap.Hub
	} else {
		if _, err := requireOutlet(s.catalog, locationID); err != nil {
			return nil, err
		}
		snap, err := s.ledger.Snapshot()
		if err != nil {
			return nil, err
		}
		stock = snap.Outlets[locationID]
	}

	products := s.catalog.Products()
	result := make([]model.ProductStock, 0, len(products))
	for _, p := range products {
		result = append(result, model.ProductStock{Product: p, Stock: stock[p.ID]})
	}
	return result, nil
}
