package service

import (
	"errors"
	"fmt"

	"go-inventory-hub/internal/ledger"
	"go-inventory-hub/internal/model"
)

func requireOutlet(catalog *model.Catalog, outletID string) (model.Outlet, error) {
	if outletID == "" {
		return model.Outlet{}, ledger.InvalidInput("outlet_id is required")
	}
	outlet, ok := catalog.Outlet(outletID)
	if !ok {
		return model.Outlet{}, &ledger.Error{Kind: ledger.KindNotFound, Message: fmt.Sprintf("outlet %s not found", outletID), OutletID: outletID}
	}
	return outlet, nil
}

// requireProduct validates one batch line: positive id and bounded qty first, then catalog membership.
func requireProduct(catalog *model.Catalog, line, productID, qty int) (model.Product, error) {
	if productID <= 0 || qty <= 0 {
		return model.Product{}, &ledger.Error{
			Kind:      ledger.KindInvalidInput,
			Message:   fmt.Sprintf("item %d: every item needs an id and qty > 0", line),
			ProductID: productID,
		}
	}
	if qty > MaxLineQuantity {
		return model.Product{}, &ledger.Error{
			Kind:      ledger.KindInvalidInput,
			Message:   fmt.Sprintf("item %d: qty must not exceed %d", line, MaxLineQuantity),
			ProductID: productID,
		}
	}
	product, ok := catalog.Product(productID)
	if !ok {
		return model.Product{}, &ledger.Error{Kind: ledger.KindNotFound, Message: fmt.Sprintf("product %d not found", productID), ProductID: productID}
	}
	return product, nil
}

// describeStockError rewrites a ledger stock error so it names the product,
// e.g. "insufficient outlet stock for Ayam Dada".
func describeStockError(catalog *model.Catalog, err error, where string) error {
	var le *ledger.Error
	if !errors.As(err, &le) || le.Kind != ledger.KindInsufficientStock {
		return err
	}
	name := fmt.Sprintf("product %d", le.ProductID)
	if p, ok := catalog.Product(le.ProductID); ok {
		name = p.Name
	}
	return &ledger.Error{
		Kind:      le.Kind,
		Message:   fmt.Sprintf("insufficient %s stock for %s", where, name),
		OutletID:  le.OutletID,
		ProductID: le.ProductID,
	}
}
