package service

import (
	"testing"

	"go-inventory-hub/internal/ledger"
	"go-inventory-hub/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateRestockRequest(t *testing.T) {
	f := newFixture(nil)
	note := "stok sayap habis"
	before := f.totalStock()

	req, err := f.restock.CreateRequest(RestockRequestInput{
		OutletID: "outlet_4",
		Items:    []model.RestockItem{{ProductID: 3, Qty: 30}},
		Note:     &note,
	})
	require.NoError(t, err)

	assert.Equal(t, 1, req.ID)
	assert.Equal(t, model.RestockPending, req.Status)
	assert.Equal(t, baseTime, req.Date)
	require.NotNil(t, req.Note)
	assert.Equal(t, note, *req.Note)

	// a request never touches the ledger
	assert.Equal(t, before, f.totalStock())

	all := f.restock.GetAllRequests()
	require.Len(t, all, 1)
	assert.Equal(t, "outlet_4", all[0].OutletID)
}

func TestCreateRestockRequest_Validation(t *testing.T) {
	tests := []struct {
		name  string
		input RestockRequestInput
		kind  ledger.ErrorKind
	}{
		{"missing outlet", RestockRequestInput{Items: []model.RestockItem{{ProductID: 1, Qty: 1}}}, ledger.KindInvalidInput},
		{"unknown outlet", RestockRequestInput{OutletID: "outlet_5", Items: []model.RestockItem{{ProductID: 1, Qty: 1}}}, ledger.KindNotFound},
		{"empty items", RestockRequestInput{OutletID: "outlet_1"}, ledger.KindInvalidInput},
		{"zero qty", RestockRequestInput{OutletID: "outlet_1", Items: []model.RestockItem{{ProductID: 1}}}, ledger.KindInvalidInput},
		{"unknown product", RestockRequestInput{OutletID: "outlet_1", Items: []model.RestockItem{{ProductID: 42, Qty: 1}}}, ledger.KindNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(nil)
			_, err := f.restock.CreateRequest(tt.input)
			assert.Equal(t, tt.kind, ledger.KindOf(err))
			assert.Empty(t, f.restock.GetAllRequests())
		})
	}
}
