package handler

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go-inventory-hub/internal/ledger"
	"go-inventory-hub/internal/model"
	"go-inventory-hub/internal/repository"
	"go-inventory-hub/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupApp(t *testing.T) *fiber.App {
	t.Helper()
	log := zap.NewNop()
	now := time.Now().UTC()

	catalog := model.DefaultCatalog()
	l := ledger.New(model.DefaultLedgerSeed(now), ledger.NewReplenishmentClock(now, ledger.DefaultRefillIncrement))
	txRepo := repository.NewTransactionRepo()
	restockRepo := repository.NewRestockRepo()
	journal := repository.NewNoopJournal()

	analytics := service.NewAnalyticsService(catalog, l, txRepo, service.DefaultThresholds)

	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler(log)})
	SetupRoutes(app, Handlers{
		Inventory:    NewInventoryHandler(service.NewInventoryService(catalog, l)),
		Transaction:  NewTransactionHandler(service.NewTransactionService(catalog, l, txRepo, journal, nil, log)),
		Distribution: NewDistributionHandler(service.NewDistributionService(catalog, l, repository.NewDistributionRepo(), journal, nil, log)),
		Restock:      NewRestockHandler(service.NewRestockService(catalog, restockRepo, journal, nil, log)),
		Dashboard:    NewDashboardHandler(service.NewDashboardService(catalog, l, txRepo, restockRepo, analytics, service.DefaultThresholds)),
	})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, body string) (int, []byte) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, data
}

func decode(t *testing.T, data []byte, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(data, out), string(data))
}

func TestHealth(t *testing.T) {
	app := setupApp(t)

	code, body := doJSON(t, app, http.MethodGet, "/api/health", "")
	assert.Equal(t, http.StatusOK, code)

	var got map[string]string
	decode(t, body, &got)
	assert.Equal(t, "ok", got["status"])
}

func TestGetProducts(t *testing.T) {
	app := setupApp(t)

	t.Run("catalog", func(t *testing.T) {
		code, body := doJSON(t, app, http.MethodGet, "/api/products", "")
		assert.Equal(t, http.StatusOK, code)

		var got []map[string]interface{}
		decode(t, body, &got)
		require.Len(t, got, 6)
		assert.NotContains(t, got[0], "stock")
	})

	t.Run("outlet stock", func(t *testing.T) {
		code, body := doJSON(t, app, http.MethodGet, "/api/products?outlet_id=outlet_2", "")
		assert.Equal(t, http.StatusOK, code)

		var got []struct {
			ID    int    `json:"id"`
			Name  string `json:"name"`
			Stock int    `json:"stock"`
		}
		decode(t, body, &got)
		assert.Equal(t, "Ayam Dada", got[0].Name)
		assert.Equal(t, 40, got[0].Stock)
	})

	t.Run("hub", func(t *testing.T) {
		code, body := doJSON(t, app, http.MethodGet, "/api/products?outlet_id=hub_pusat", "")
		assert.Equal(t, http.StatusOK, code)

		var got []struct {
			Stock int `json:"stock"`
		}
		decode(t, body, &got)
		assert.GreaterOrEqual(t, got[0].Stock, 400)
	})

	t.Run("unknown outlet", func(t *testing.T) {
		code, body := doJSON(t, app, http.MethodGet, "/api/products?outlet_id=outlet_99", "")
		assert.Equal(t, http.StatusNotFound, code)
		assert.Contains(t, string(body), "outlet outlet_99 not found")
	})
}

func TestCreateTransaction(t *testing.T) {
	app := setupApp(t)

	code, body := doJSON(t, app, http.MethodPost, "/api/pos/transaksi",
		`{"outlet_id":"outlet_1","items":[{"id":1,"qty":2,"price":"12000"},{"id":"6","qty":1.0,"price":"gratis"}],"date":"2024-03-01T10:00:00Z"}`)
	require.Equal(t, http.StatusOK, code, string(body))

	var got struct {
		Message  string         `json:"message"`
		ID       int            `json:"id"`
		Total    string         `json:"total"`
		NewStock map[string]int `json:"new_stock"`
	}
	decode(t, body, &got)
	assert.Equal(t, "Transaksi berhasil", got.Message)
	assert.Equal(t, 1, got.ID)
	assert.Equal(t, "27000", got.Total)
	assert.Equal(t, 22, got.NewStock["1"])
	assert.Equal(t, 99, got.NewStock["6"])

	code, body = doJSON(t, app, http.MethodGet, "/api/pos/transaksi/1", "")
	assert.Equal(t, http.StatusOK, code)
	var tx model.Transaction
	decode(t, body, &tx)
	assert.Equal(t, time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC), tx.Date)
	assert.Len(t, tx.Items, 2)
}

func TestCreateTransaction_Errors(t *testing.T) {
	tests := []struct {
		name string
		body string
		code int
	}{
		{"malformed json", `{"outlet_id":`, http.StatusBadRequest},
		{"missing outlet", `{"items":[{"id":1,"qty":1}]}`, http.StatusBadRequest},
		{"unknown outlet", `{"outlet_id":"outlet_9","items":[{"id":1,"qty":1}]}`, http.StatusNotFound},
		{"empty items", `{"outlet_id":"outlet_1","items":[]}`, http.StatusBadRequest},
		{"bad qty", `{"outlet_id":"outlet_1","items":[{"id":1,"qty":"abc"}]}`, http.StatusBadRequest},
		{"unknown product", `{"outlet_id":"outlet_1","items":[{"id":42,"qty":1}]}`, http.StatusNotFound},
		{"insufficient stock", `{"outlet_id":"outlet_4","items":[{"id":3,"qty":1}]}`, http.StatusConflict},
		{"qty above line cap", `{"outlet_id":"outlet_1","items":[{"id":1,"qty":100001}]}`, http.StatusBadRequest},
		{"qty lines that would wrap around", `{"outlet_id":"outlet_1","items":[{"id":1,"qty":9223372036854775803},{"id":1,"qty":9223372036854775803}]}`, http.StatusBadRequest},
		{"bad date", `{"outlet_id":"outlet_1","items":[{"id":1,"qty":1}],"date":"kemarin"}`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := setupApp(t)
			code, body := doJSON(t, app, http.MethodPost, "/api/pos/transaksi", tt.body)
			assert.Equal(t, tt.code, code, string(body))

			var got map[string]interface{}
			decode(t, body, &got)
			assert.NotEmpty(t, got["error"])
		})
	}
}

func TestGetTransaction_NotFoundAndInvalid(t *testing.T) {
	app := setupApp(t)

	code, _ := doJSON(t, app, http.MethodGet, "/api/pos/transaksi/7", "")
	assert.Equal(t, http.StatusNotFound, code)

	code, _ = doJSON(t, app, http.MethodGet, "/api/pos/transaksi/abc", "")
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestDistribution(t *testing.T) {
	app := setupApp(t)

	code, body := doJSON(t, app, http.MethodPost, "/api/distribusi", `{"outlet_id":"outlet_3","items":[{"id":1,"qty":50},{"id":2,"qty":401}]}`)
	assert.Equal(t, http.StatusConflict, code)
	assert.Contains(t, string(body), "insufficient hub stock for Paha Atas")

	code, body = doJSON(t, app, http.MethodPost, "/api/distribusi", `{"outlet_id":"outlet_3","items":[{"id":1,"qty":50}]}`)
	require.Equal(t, http.StatusCreated, code, string(body))

	var created struct {
		TotalQty     int            `json:"total_qty"`
		HubRemaining map[string]int `json:"hub_remaining"`
	}
	decode(t, body, &created)
	assert.Equal(t, 50, created.TotalQty)
	assert.GreaterOrEqual(t, created.HubRemaining["1"], 350)

	code, body = doJSON(t, app, http.MethodGet, "/api/distribusi", "")
	assert.Equal(t, http.StatusOK, code)
	var list []model.Distribution
	decode(t, body, &list)
	require.Len(t, list, 1)
	assert.Equal(t, "Cabang Patemon", list[0].OutletName)
	assert.Equal(t, 1, list[0].ItemsCount)
}

func TestRestockRequests(t *testing.T) {
	app := setupApp(t)

	code, body := doJSON(t, app, http.MethodPost, "/api/requests", `{"outlet_id":"outlet_4","requests":[{"id":3,"qty":25}],"note":"sayap habis"}`)
	require.Equal(t, http.StatusCreated, code, string(body))
	assert.Contains(t, string(body), "Request received")

	code, _ = doJSON(t, app, http.MethodPost, "/api/requests", `{"outlet_id":"outlet_4","requests":[]}`)
	assert.Equal(t, http.StatusBadRequest, code)

	code, body = doJSON(t, app, http.MethodGet, "/api/requests", "")
	assert.Equal(t, http.StatusOK, code)
	var list []model.RestockRequest
	decode(t, body, &list)
	require.Len(t, list, 1)
	assert.Equal(t, model.RestockPending, list[0].Status)
	require.NotNil(t, list[0].Note)
	assert.Equal(t, "sayap habis", *list[0].Note)

	code, body = doJSON(t, app, http.MethodGet, "/api/dashboard", "")
	assert.Equal(t, http.StatusOK, code)
	var dash model.Dashboard
	decode(t, body, &dash)
	assert.Equal(t, 1, dash.RequestsCount)
}

func TestDashboardAndReport(t *testing.T) {
	app := setupApp(t)

	code, body := doJSON(t, app, http.MethodGet, "/api/dashboard", "")
	require.Equal(t, http.StatusOK, code)
	var dash model.Dashboard
	decode(t, body, &dash)
	assert.Equal(t, 4, dash.Stats.TotalOutlet)
	assert.Equal(t, 1, dash.Stats.OutletKritis)
	assert.Equal(t, "55.9%", dash.Stats.PotensiWaste)
	require.Len(t, dash.Inventory, 4)
	assert.Equal(t, "Cabang Sampangan", dash.Inventory[3].Outlet)

	code, body = doJSON(t, app, http.MethodGet, "/api/laporan", "")
	require.Equal(t, http.StatusOK, code)
	var rows []model.ReportRow
	decode(t, body, &rows)
	require.Len(t, rows, len(model.ArchivedReports))
	assert.Equal(t, "hist_1", rows[0].ID)
}

func TestStatusFor(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, StatusFor(ledger.ErrNotFound))
	assert.Equal(t, http.StatusBadRequest, StatusFor(ledger.ErrInvalidInput))
	assert.Equal(t, http.StatusConflict, StatusFor(ledger.ErrInsufficientStock))
	assert.Equal(t, http.StatusInternalServerError, StatusFor(ledger.ErrInternalInconsistency))
	assert.Equal(t, http.StatusInternalServerError, StatusFor(io.EOF))
}
