package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/atelier-api/internal/application/activity"
	"github.com/jhoicas/atelier-api/internal/application/catalog"
	"github.com/jhoicas/atelier-api/internal/application/revenue"
	"github.com/jhoicas/atelier-api/internal/application/stock"
	"github.com/jhoicas/atelier-api/internal/domain/entity"
	"github.com/jhoicas/atelier-api/internal/infrastructure/memory"
	apphttp "github.com/jhoicas/atelier-api/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/atelier-api/pkg/jwt"
	"github.com/jhoicas/atelier-api/pkg/logger"
)

type stubRenderer struct{}

func (stubRenderer) RenderRevenue(context.Context, *entity.RevenueReport) ([]byte, error) {
	return []byte("%PDF-1.3 stub"), nil
}

// newAPI monta la API completa sobre el almacén en memoria.
func newAPI(t *testing.T) *fiber.App {
	t.Helper()
	store := memory.NewStore()
	products := store.Products()
	app := apphttp.NewApp("atelier-test", logger.Nop())
	apphttp.Router(app, apphttp.RouterDeps{
		ProductUC:  catalog.NewProductUseCase(products, store.ProductModels(), store.ProductColoris(), store),
		CatalogUC:  catalog.NewModelUseCase(store.ProductModels(), store.ProductColoris()),
		ActivityUC: activity.NewActivityUseCase(store.Activities()),
		StockUC:    stock.NewMovementUseCase(store.StockMovements(), store),
		RevenueUC:  revenue.NewRevenueUseCase(store.Activities(), products, stubRenderer{}),
		Storage:    "memory",
		Pinger:     store,
		JWTSecret:  testJWTSecret,
	})
	return app
}

func call(t *testing.T, app *fiber.App, method, path, role string, body interface{}) (*http.Response, []byte) {
	t.Helper()
	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if role != "" {
		req.Header.Set("Authorization", tokenForRole(t, role))
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, raw
}

func decode(t *testing.T, raw []byte) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &out), string(raw))
	return out
}

func createLegacyProduct(t *testing.T, app *fiber.App, stock float64) string {
	t.Helper()
	resp, raw := call(t, app, http.MethodPost, "/api/products", pkgjwt.RoleAdmin, map[string]interface{}{
		"name": "Cabas", "type": "BAG", "coloris": "Camel",
		"unitCost": 10, "salePrice": 45, "stock": stock,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(raw))
	return decode(t, raw)["id"].(string)
}

// ──────────────────────────────────────────────────────────────────────────────
// Health y autenticación
// ──────────────────────────────────────────────────────────────────────────────

func TestHealth_Publico(t *testing.T) {
	app := newAPI(t)
	resp, raw := call(t, app, http.MethodGet, "/health", "", nil)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decode(t, raw)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "memory", body["storage"])
}

func TestAPI_SinToken_Retorna401(t *testing.T) {
	app := newAPI(t)
	resp, _ := call(t, app, http.MethodGet, "/api/products", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAPI_ViewerSoloLectura(t *testing.T) {
	app := newAPI(t)

	resp, _ := call(t, app, http.MethodGet, "/api/products", pkgjwt.RoleViewer, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = call(t, app, http.MethodPost, "/api/products", pkgjwt.RoleViewer, map[string]interface{}{
		"name": "Cabas", "type": "BAG", "coloris": "Camel", "unitCost": 10, "salePrice": 45,
	})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestAPI_RutaInexistente_Retorna404(t *testing.T) {
	app := newAPI(t)
	resp, raw := call(t, app, http.MethodGet, "/no-existe", "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", decode(t, raw)["code"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Products
// ──────────────────────────────────────────────────────────────────────────────

func TestProducts_CrearYObtener(t *testing.T) {
	app := newAPI(t)
	id := createLegacyProduct(t, app, 3)

	resp, raw := call(t, app, http.MethodGet, "/api/products/"+id, pkgjwt.RoleViewer, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decode(t, raw)
	assert.Equal(t, "legacy", body["namingScheme"])
	assert.Equal(t, "Cabas", body["name"])
	assert.Equal(t, "10", body["unitCost"])
	assert.Equal(t, float64(3), body["stock"])

	resp, raw = call(t, app, http.MethodGet, "/api/products", pkgjwt.RoleViewer, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(1), decode(t, raw)["total"])
}

func TestProducts_Inexistente_Retorna404(t *testing.T) {
	app := newAPI(t)
	resp, _ := call(t, app, http.MethodGet, "/api/products/nope", pkgjwt.RoleAdmin, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = call(t, app, http.MethodPatch, "/api/products/nope", pkgjwt.RoleAdmin, map[string]interface{}{"stock": 1})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestProducts_AmbosEsquemas_Retorna400(t *testing.T) {
	app := newAPI(t)
	resp, raw := call(t, app, http.MethodPost, "/api/products", pkgjwt.RoleAdmin, map[string]interface{}{
		"name": "Cabas", "type": "BAG", "coloris": "Camel",
		"modelId": "m1", "colorisId": "c1",
		"unitCost": 10, "salePrice": 45,
	})

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decode(t, raw)
	assert.Equal(t, "VALIDATION_ERROR", body["code"])
	assert.Equal(t, "exactly one naming scheme is required: name/type/coloris or modelId/colorisId", body["message"])
}

func TestProducts_CuerpoInvalido_Retorna400(t *testing.T) {
	app := newAPI(t)
	resp, raw := call(t, app, http.MethodPost, "/api/products", pkgjwt.RoleAdmin, "{no es json")

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_BODY", decode(t, raw)["code"])
}

func TestProducts_PatchParcial(t *testing.T) {
	app := newAPI(t)
	id := createLegacyProduct(t, app, 3)

	resp, raw := call(t, app, http.MethodPatch, "/api/products/"+id, pkgjwt.RoleArtisan, map[string]interface{}{"salePrice": 50})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(raw))
	body := decode(t, raw)
	assert.Equal(t, "50", body["salePrice"])
	assert.Equal(t, "Cabas", body["name"])

	resp, raw = call(t, app, http.MethodPatch, "/api/products/"+id, pkgjwt.RoleArtisan, map[string]interface{}{"unitCost": 0})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "unitCost must be positive", decode(t, raw)["message"])
}

func TestProducts_StockSoloPorMovimientos(t *testing.T) {
	app := newAPI(t)
	id := createLegacyProduct(t, app, 3)

	_, raw := call(t, app, http.MethodGet, "/api/products/"+id+"/stock-movements", pkgjwt.RoleViewer, nil)
	ledger := decode(t, raw)
	require.Equal(t, float64(1), ledger["total"])
	first := ledger["items"].([]interface{})[0].(map[string]interface{})
	assert.Equal(t, "CREATION", first["source"])
	assert.Equal(t, float64(3), first["quantity"])

	resp, raw := call(t, app, http.MethodPatch, "/api/products/"+id, pkgjwt.RoleAdmin, map[string]interface{}{"stock": 100})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "stock can only change through stock movements", decode(t, raw)["message"])

	_, raw = call(t, app, http.MethodGet, "/api/products/"+id, pkgjwt.RoleViewer, nil)
	assert.Equal(t, float64(3), decode(t, raw)["stock"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Catálogo
// ──────────────────────────────────────────────────────────────────────────────

func TestCatalog_ProductoConReferencias(t *testing.T) {
	app := newAPI(t)

	resp, raw := call(t, app, http.MethodPost, "/api/product-models", pkgjwt.RoleAdmin, map[string]string{"type": "BAG", "name": "Cabas"})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(raw))
	modelID := decode(t, raw)["id"].(string)

	resp, raw = call(t, app, http.MethodPost, "/api/product-models/"+modelID+"/coloris", pkgjwt.RoleAdmin, map[string]string{"coloris": "Camel"})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(raw))
	colorisID := decode(t, raw)["id"].(string)

	resp, _ = call(t, app, http.MethodPost, "/api/product-models/"+modelID+"/coloris", pkgjwt.RoleAdmin, map[string]string{"coloris": "Camel"})
	assert.Equal(t, http.StatusConflict, resp.StatusCode, "coloris duplicado en el mismo modelo")

	resp, raw = call(t, app, http.MethodPost, "/api/products", pkgjwt.RoleAdmin, map[string]interface{}{
		"modelId": modelID, "colorisId": colorisID, "unitCost": "12.50", "salePrice": "40",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(raw))
	body := decode(t, raw)
	assert.Equal(t, "model", body["namingScheme"])
	assert.Equal(t, "12.5", body["unitCost"])

	resp, raw = call(t, app, http.MethodGet, "/api/product-models/"+modelID+"/coloris", pkgjwt.RoleViewer, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(1), decode(t, raw)["total"])

	resp, raw = call(t, app, http.MethodPatch, "/api/product-coloris/"+colorisID, pkgjwt.RoleAdmin, map[string]string{"coloris": "Noir"})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(raw))
	assert.Equal(t, "Noir", decode(t, raw)["coloris"])
}

func TestCatalog_FiltroPorTipo(t *testing.T) {
	app := newAPI(t)
	for _, m := range []map[string]string{{"type": "BAG", "name": "Cabas"}, {"type": "WALLET", "name": "Compact"}} {
		resp, raw := call(t, app, http.MethodPost, "/api/product-models", pkgjwt.RoleAdmin, m)
		require.Equal(t, http.StatusCreated, resp.StatusCode, string(raw))
	}

	resp, raw := call(t, app, http.MethodGet, "/api/product-models?type=WALLET", pkgjwt.RoleViewer, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(raw))
	body := decode(t, raw)
	assert.Equal(t, float64(1), body["total"])
	assert.Equal(t, "Compact", body["items"].([]interface{})[0].(map[string]interface{})["name"])

	resp, _ = call(t, app, http.MethodGet, "/api/product-models?type=belt", pkgjwt.RoleViewer, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCatalog_ModeloInexistente(t *testing.T) {
	app := newAPI(t)
	resp, _ := call(t, app, http.MethodGet, "/api/product-models/nope/coloris", pkgjwt.RoleViewer, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, raw := call(t, app, http.MethodPost, "/api/products", pkgjwt.RoleAdmin, map[string]interface{}{
		"modelId": "nope", "colorisId": "c1", "unitCost": 10, "salePrice": 40,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "modelId does not reference an existing product model", decode(t, raw)["message"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Stock movements
// ──────────────────────────────────────────────────────────────────────────────

func TestStockMovements_ActualizaStock(t *testing.T) {
	app := newAPI(t)
	id := createLegacyProduct(t, app, 3)

	resp, raw := call(t, app, http.MethodPost, "/api/stock-movements", pkgjwt.RoleArtisan, map[string]interface{}{
		"productId": id, "quantity": -2, "source": "SALE",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(raw))

	_, raw = call(t, app, http.MethodGet, "/api/products/"+id, pkgjwt.RoleViewer, nil)
	assert.Equal(t, float64(1), decode(t, raw)["stock"])

	_, raw = call(t, app, http.MethodGet, "/api/products/"+id+"/stock-movements", pkgjwt.RoleViewer, nil)
	assert.Equal(t, float64(2), decode(t, raw)["total"], "CREATION inicial más la venta")
}

func TestStockMovements_StockInsuficiente_Retorna409(t *testing.T) {
	app := newAPI(t)
	id := createLegacyProduct(t, app, 1)

	resp, raw := call(t, app, http.MethodPost, "/api/stock-movements", pkgjwt.RoleArtisan, map[string]interface{}{
		"productId": id, "quantity": -5, "source": "SALE",
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "INSUFFICIENT_STOCK", decode(t, raw)["code"])

	_, raw = call(t, app, http.MethodGet, "/api/stock-movements", pkgjwt.RoleViewer, nil)
	assert.Equal(t, float64(1), decode(t, raw)["total"], "solo el CREATION inicial; el rechazado no queda registrado")
}

func TestStockMovements_Validacion(t *testing.T) {
	app := newAPI(t)
	id := createLegacyProduct(t, app, 1)

	tests := []struct {
		name    string
		body    map[string]interface{}
		status  int
		message string
	}{
		{"signo contrario al origen", map[string]interface{}{"productId": id, "quantity": 2, "source": "SALE"},
			http.StatusBadRequest, "quantity sign does not match stock movement source"},
		{"cantidad cero", map[string]interface{}{"productId": id, "quantity": 0, "source": "INVENTORY_ADJUSTMENT"},
			http.StatusBadRequest, "quantity must be non-zero"},
		{"origen desconocido", map[string]interface{}{"productId": id, "quantity": 1, "source": "creation"},
			http.StatusBadRequest, "source must be one of CREATION, SALE, INVENTORY_ADJUSTMENT"},
		{"sin producto", map[string]interface{}{"quantity": 1, "source": "CREATION"},
			http.StatusBadRequest, "productId is required for stock movement"},
		{"producto inexistente", map[string]interface{}{"productId": "nope", "quantity": 1, "source": "CREATION"},
			http.StatusNotFound, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, raw := call(t, app, http.MethodPost, "/api/stock-movements", pkgjwt.RoleAdmin, tt.body)
			assert.Equal(t, tt.status, resp.StatusCode, string(raw))
			if tt.message != "" {
				assert.Equal(t, tt.message, decode(t, raw)["message"])
			}
		})
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Activities
// ──────────────────────────────────────────────────────────────────────────────

func TestActivities_VentaSinProducto_Retorna400(t *testing.T) {
	app := newAPI(t)
	resp, raw := call(t, app, http.MethodPost, "/api/activities", pkgjwt.RoleArtisan, map[string]interface{}{
		"date": "2025-01-20", "type": "SALE", "quantity": -1, "amount": 45,
	})

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "productId is required for SALE and STOCK_CORRECTION activities", decode(t, raw)["message"])
}

func TestActivities_FechaInvalida_Retorna400(t *testing.T) {
	app := newAPI(t)
	resp, raw := call(t, app, http.MethodPost, "/api/activities", pkgjwt.RoleArtisan, map[string]interface{}{
		"date": "20/01/2025", "type": "OTHER",
	})

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "date must be a valid ISO 8601 string", decode(t, raw)["message"])
}

func TestActivities_CrearYActualizar(t *testing.T) {
	app := newAPI(t)
	resp, raw := call(t, app, http.MethodPost, "/api/activities", pkgjwt.RoleArtisan, map[string]interface{}{
		"date": "2025-01-20T10:00:00Z", "type": "CREATION", "quantity": 2, "note": "dos cabas",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(raw))
	id := decode(t, raw)["id"].(string)

	resp, raw = call(t, app, http.MethodPatch, "/api/activities/"+id, pkgjwt.RoleArtisan, map[string]interface{}{"type": "SALE"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "pasar a SALE sin productId")
	assert.Equal(t, "VALIDATION_ERROR", decode(t, raw)["code"])

	resp, raw = call(t, app, http.MethodPatch, "/api/activities/"+id, pkgjwt.RoleArtisan, map[string]interface{}{"note": "tres cabas"})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(raw))
	body := decode(t, raw)
	assert.Equal(t, "tres cabas", body["note"])
	assert.Equal(t, "CREATION", body["type"])

	resp, _ = call(t, app, http.MethodGet, "/api/activities/nope", pkgjwt.RoleViewer, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Reports
// ──────────────────────────────────────────────────────────────────────────────

func TestReports_IngresosDeEnero(t *testing.T) {
	app := newAPI(t)
	id := createLegacyProduct(t, app, 10)

	for _, a := range []map[string]interface{}{
		{"date": "2025-01-20", "type": "SALE", "productId": id, "quantity": -3, "amount": 60},
		{"date": "2025-01-25", "type": "SALE", "productId": id, "quantity": -1, "amount": 25},
		{"date": "2025-02-03", "type": "SALE", "productId": id, "quantity": -1, "amount": 45},
		{"date": "2025-01-22", "type": "OTHER", "amount": 999},
	} {
		resp, raw := call(t, app, http.MethodPost, "/api/activities", pkgjwt.RoleArtisan, a)
		require.Equal(t, http.StatusCreated, resp.StatusCode, string(raw))
	}

	resp, raw := call(t, app, http.MethodGet,
		"/api/reports/revenue?period=CUSTOM&start_date=2025-01-20&end_date=2025-01-31", pkgjwt.RoleViewer, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(raw))

	body := decode(t, raw)
	assert.Equal(t, "CUSTOM", body["period"])
	assert.Equal(t, "2025-01-20", body["startDate"])
	assert.Equal(t, "2025-01-31", body["endDate"])
	assert.Equal(t, "85", body["totalRevenue"])
	assert.Equal(t, "40", body["materialCosts"])
	assert.Equal(t, "45", body["grossMargin"])
	assert.Equal(t, "52.94", body["grossMarginRate"])
}

func TestReports_Validacion(t *testing.T) {
	app := newAPI(t)

	resp, raw := call(t, app, http.MethodGet, "/api/reports/revenue?period=month", pkgjwt.RoleViewer, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "period must be one of DAY, WEEK, MONTH, YEAR, CUSTOM", decode(t, raw)["message"])

	resp, raw = call(t, app, http.MethodGet, "/api/reports/revenue?period=CUSTOM&start_date=ayer&end_date=2025-01-31", pkgjwt.RoleViewer, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "startDate must be a valid ISO 8601 string", decode(t, raw)["message"])

	resp, _ = call(t, app, http.MethodGet, "/api/reports/revenue?period=MONTH", pkgjwt.RoleViewer, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode, "sin fechas se usa el mes en curso")

	resp, raw = call(t, app, http.MethodGet,
		"/api/reports/revenue?period=CUSTOM&start_date=2025-01-20T10:00Z&end_date=2025-01-31T10:00%2B01:00", pkgjwt.RoleViewer, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(raw))
	body := decode(t, raw)
	assert.Equal(t, "2025-01-20T10:00Z", body["startDate"])
	assert.Equal(t, "2025-01-31T10:00+01:00", body["endDate"])
}

func TestReports_PDF(t *testing.T) {
	app := newAPI(t)
	resp, raw := call(t, app, http.MethodGet,
		"/api/reports/revenue/pdf?period=CUSTOM&start_date=2025-01-01&end_date=2025-01-31", pkgjwt.RoleViewer, nil)

	require.Equal(t, http.StatusOK, resp.StatusCode, string(raw))
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "revenue-custom.pdf")
	assert.True(t, bytes.HasPrefix(raw, []byte("%PDF")))
}
