package handler

import (
	"bytes"
	"math"
	"strconv"
	"time"

	"go-inventory-hub/internal/ledger"
	"go-inventory-hub/pkg/validator"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

// flexInt accepts 3, 3.0 and "3". Anything else decodes to 0 and is
// rejected later as a non-positive id or qty.
type flexInt int

func (f *flexInt) UnmarshalJSON(data []byte) error {
	raw := string(bytes.Trim(data, `"`))
	if n, err := strconv.Atoi(raw); err == nil {
		*f = flexInt(n)
		return nil
	}
	if v, err := strconv.ParseFloat(raw, 64); err == nil && v == math.Trunc(v) && math.Abs(v) < math.MaxInt32 {
		*f = flexInt(v)
		return nil
	}
	*f = 0
	return nil
}

// priceOverride keeps the caller's price only when it is numeric and not negative.
type priceOverride struct {
	value *decimal.Decimal
}

func (p *priceOverride) UnmarshalJSON(data []byte) error {
	p.value = nil
	raw := string(bytes.Trim(data, `"`))
	d, err := decimal.NewFromString(raw)
	if err != nil || d.IsNegative() {
		return nil
	}
	p.value = &d
	return nil
}

type itemRequest struct {
	ID    flexInt       `json:"id"`
	Qty   flexInt       `json:"qty"`
	Price priceOverride `json:"price"`
	Image string        `json:"image" validate:"omitempty,max=1024"`
}

type transactionRequest struct {
	OutletID string        `json:"outlet_id" validate:"max=50"`
	Items    []itemRequest `json:"items" validate:"dive"`
	Date     string        `json:"date"`
}

type distributionRequest struct {
	OutletID string        `json:"outlet_id" validate:"max=50"`
	Items    []itemRequest `json:"items" validate:"dive"`
}

type restockRequest struct {
	OutletID string        `json:"outlet_id" validate:"max=50"`
	Requests []itemRequest `json:"requests" validate:"dive"`
	Items    []itemRequest `json:"items" validate:"dive"`
	Note     *string       `json:"note" validate:"omitempty,max=500"`
}

// parseBody decodes and structurally validates a JSON body. Semantic checks
// (known outlet, stock) stay in the services so their ordering is preserved.
func parseBody(c *fiber.Ctx, out interface{}) error {
	if err := c.BodyParser(out); err != nil {
		return ledger.InvalidInput("Invalid JSON")
	}
	if msg := validator.FirstError(out); msg != "" {
		return ledger.InvalidInput("%s", msg)
	}
	return nil
}

// parseDate accepts RFC 3339 timestamps; an empty value means "now".
func parseDate(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return nil, ledger.InvalidInput("invalid date %q, use RFC 3339 (e.g. 2024-03-01T10:00:00Z)", raw)
	}
	return &t, nil
}
