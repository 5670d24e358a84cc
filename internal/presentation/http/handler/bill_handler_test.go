package handler_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/retailworks/pos-billing-api/internal/application/service"
	"github.com/retailworks/pos-billing-api/internal/config"
	"github.com/retailworks/pos-billing-api/internal/domain/entity"
	infra "github.com/retailworks/pos-billing-api/internal/infrastructure/repository"
	"github.com/retailworks/pos-billing-api/internal/presentation/http/handler"
	"github.com/retailworks/pos-billing-api/internal/presentation/http/routes"
	"github.com/retailworks/pos-billing-api/pkg/printer"
)

func setupTestServer(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(&entity.Product{}, &entity.Bill{}, &entity.BillItem{}, &entity.ShopSettings{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	productRepo := infra.NewProductRepository(db)
	billRepo := infra.NewBillRepository(db)
	settingsRepo := infra.NewSettingsRepository(db)

	productService := service.NewProductService(productRepo)
	billingService := service.NewBillingService(billRepo, productRepo)
	settingsService := service.NewSettingsService(settingsRepo)
	printerService := service.NewPrinterService(printer.NewNullPrinter(), billingService, settingsService, "none", 32)

	handlers := &routes.Handlers{
		Product:  handler.NewProductHandler(productService),
		Bill:     handler.NewBillHandler(billingService, settingsService),
		Settings: handler.NewSettingsHandler(settingsService),
		Printer:  handler.NewPrinterHandler(printerService),
	}

	cfg := &config.Config{}
	cfg.App.Name = "pos-billing-api-test"
	cfg.RateLimit.Requests = 1000
	cfg.RateLimit.Duration = 1

	return routes.Setup(handlers, &routes.Deps{Cfg: cfg}), db
}

func seedTestProduct(t *testing.T, db *gorm.DB, name string, price, gstRate float64) *entity.Product {
	t.Helper()
	product := &entity.Product{
		Name:     name,
		HSNCode:  "8471",
		GSTRate:  gstRate,
		Price:    price,
		Category: "Electronics",
	}
	if err := db.Create(product).Error; err != nil {
		t.Fatalf("failed to seed product: %v", err)
	}
	return product
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("failed to encode request body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

type apiEnvelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	var envelope apiEnvelope
	if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if out != nil {
		if err := json.Unmarshal(envelope.Data, out); err != nil {
			t.Fatalf("failed to decode response data: %v", err)
		}
	}
}

func TestCreateBillEndpoint(t *testing.T) {
	router, db := setupTestServer(t)
	laptop := seedTestProduct(t, db, "Laptop - Dell Inspiron 15", 55000, 18)

	w := doJSON(t, router, http.MethodPost, "/api/v1/bills", gin.H{
		"customer_name":  "Rajesh Kumar",
		"customer_phone": "9876543210",
		"items": []gin.H{
			{"product_id": laptop.ID.String(), "quantity": 2},
		},
	})

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var bill entity.Bill
	decodeData(t, w, &bill)
	if bill.GrandTotal != 129800 {
		t.Errorf("GrandTotal = %v, want 129800", bill.GrandTotal)
	}
	if !strings.HasPrefix(bill.BillNo, "BILL-") {
		t.Errorf("bill number %q missing BILL- prefix", bill.BillNo)
	}
}

func TestCreateBillEndpointValidation(t *testing.T) {
	router, db := setupTestServer(t)
	laptop := seedTestProduct(t, db, "Laptop - Dell Inspiron 15", 55000, 18)

	w := doJSON(t, router, http.MethodPost, "/api/v1/bills", gin.H{
		"customer_name":  "R",
		"customer_phone": "12345",
		"items": []gin.H{
			{"product_id": laptop.ID.String(), "quantity": 1},
		},
	})

	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "customer_name") {
		t.Error("expected field errors in the response body")
	}
}

func TestBillDocumentEndpoint(t *testing.T) {
	router, db := setupTestServer(t)
	laptop := seedTestProduct(t, db, "Laptop - Dell Inspiron 15", 55000, 18)

	w := doJSON(t, router, http.MethodPost, "/api/v1/bills", gin.H{
		"customer_name":  "Rajesh Kumar",
		"customer_phone": "9876543210",
		"items": []gin.H{
			{"product_id": laptop.ID.String(), "quantity": 2},
		},
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}
	var bill entity.Bill
	decodeData(t, w, &bill)

	doc := doJSON(t, router, http.MethodGet, "/api/v1/bills/"+bill.ID.String()+"/document", nil)
	if doc.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", doc.Code, doc.Body.String())
	}
	if ct := doc.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("Content-Type = %q, want text/html", ct)
	}
	body := doc.Body.String()
	if !strings.Contains(body, "TAX INVOICE") {
		t.Error("document missing the standard layout title")
	}
	if !strings.Contains(body, bill.BillNo) {
		t.Error("document missing the bill number")
	}
	if strings.Contains(body, "PREVIEW MODE") {
		t.Error("saved bill document should not carry the preview banner")
	}
}

func TestBillPreviewEndpoint(t *testing.T) {
	router, db := setupTestServer(t)
	laptop := seedTestProduct(t, db, "Laptop - Dell Inspiron 15", 55000, 18)

	w := doJSON(t, router, http.MethodPost, "/api/v1/bills/preview", gin.H{
		"customer_name":  "Priya Sharma",
		"customer_phone": "8765432109",
		"items": []gin.H{
			{"product_id": laptop.ID.String(), "quantity": 1},
		},
	})

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	body := w.Body.String()
	if !strings.Contains(body, "PREVIEW-") {
		t.Error("preview document missing the PREVIEW- bill number prefix")
	}
	if !strings.Contains(body, "PREVIEW MODE") {
		t.Error("preview document missing the preview banner")
	}

	var count int64
	db.Model(&entity.Bill{}).Count(&count)
	if count != 0 {
		t.Errorf("expected no persisted bills after preview, found %d", count)
	}
}

func TestGetBillByNumberEndpoint(t *testing.T) {
	router, db := setupTestServer(t)
	laptop := seedTestProduct(t, db, "Laptop - Dell Inspiron 15", 55000, 18)

	w := doJSON(t, router, http.MethodPost, "/api/v1/bills", gin.H{
		"customer_name":  "Rajesh Kumar",
		"customer_phone": "9876543210",
		"items": []gin.H{
			{"product_id": laptop.ID.String(), "quantity": 1},
		},
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}
	var bill entity.Bill
	decodeData(t, w, &bill)

	got := doJSON(t, router, http.MethodGet, "/api/v1/bills/number/"+bill.BillNo, nil)
	if got.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", got.Code, got.Body.String())
	}
	var found entity.Bill
	decodeData(t, got, &found)
	if found.ID != bill.ID {
		t.Errorf("found bill %s, want %s", found.ID, bill.ID)
	}

	missing := doJSON(t, router, http.MethodGet, "/api/v1/bills/number/BILL-0", nil)
	if missing.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown number, got %d", missing.Code)
	}
}

func TestGetBillNotFound(t *testing.T) {
	router, _ := setupTestServer(t)

	w := doJSON(t, router, http.MethodGet, "/api/v1/bills/7b2f3e84-9a41-4c5d-8f06-1f2a3b4c5d6e", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", w.Code, w.Body.String())
	}
}

func TestProductCRUDEndpoints(t *testing.T) {
	router, _ := setupTestServer(t)

	created := doJSON(t, router, http.MethodPost, "/api/v1/products", gin.H{
		"name":     "USB Cable - Type C",
		"hsn_code": "8544",
		"gst_rate": 28,
		"price":    500,
		"category": "Accessories",
	})
	if created.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", created.Code, created.Body.String())
	}
	var product entity.Product
	decodeData(t, created, &product)

	got := doJSON(t, router, http.MethodGet, "/api/v1/products/"+product.ID.String(), nil)
	if got.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", got.Code)
	}

	updated := doJSON(t, router, http.MethodPut, "/api/v1/products/"+product.ID.String(), gin.H{
		"price": 450,
	})
	if updated.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", updated.Code, updated.Body.String())
	}
	var after entity.Product
	decodeData(t, updated, &after)
	if after.Price != 450 {
		t.Errorf("Price = %v, want 450", after.Price)
	}
	if after.Name != "USB Cable - Type C" {
		t.Errorf("Name changed unexpectedly: %q", after.Name)
	}

	list := doJSON(t, router, http.MethodGet, "/api/v1/products?search=USB", nil)
	if list.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", list.Code)
	}
	if !strings.Contains(list.Body.String(), "USB Cable - Type C") {
		t.Error("search result missing the created product")
	}

	deleted := doJSON(t, router, http.MethodDelete, "/api/v1/products/"+product.ID.String(), nil)
	if deleted.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", deleted.Code)
	}

	gone := doJSON(t, router, http.MethodGet, "/api/v1/products/"+product.ID.String(), nil)
	if gone.Code != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", gone.Code)
	}
}

func TestSettingsEndpoints(t *testing.T) {
	router, _ := setupTestServer(t)

	// First read creates the default profile.
	got := doJSON(t, router, http.MethodGet, "/api/v1/settings", nil)
	if got.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", got.Code, got.Body.String())
	}
	var settings entity.ShopSettings
	decodeData(t, got, &settings)
	if settings.ShopName == "" {
		t.Error("expected default settings to carry a shop name")
	}

	updated := doJSON(t, router, http.MethodPut, "/api/v1/settings", gin.H{
		"shop_name":         "Sharma Electronics",
		"address":           "MG Road, Pune",
		"phone":             "+91 9123456780",
		"email":             "contact@sharma.example",
		"gstin":             "27AAACS1234A1Z2",
		"upi_id":            "sharma@upi",
		"show_upi_on_bill":  true,
		"show_logo_on_bill": false,
		"bill_format":       "compact",
	})
	if updated.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", updated.Code, updated.Body.String())
	}
	var after entity.ShopSettings
	decodeData(t, updated, &after)
	if after.ShopName != "Sharma Electronics" {
		t.Errorf("ShopName = %q, want %q", after.ShopName, "Sharma Electronics")
	}
	if after.BillFormat != "compact" {
		t.Errorf("BillFormat = %q, want %q", after.BillFormat, "compact")
	}

	// An unrecognized format is normalized to standard, never stored raw.
	normalized := doJSON(t, router, http.MethodPut, "/api/v1/settings", gin.H{
		"shop_name":   "Sharma Electronics",
		"bill_format": "fancy",
	})
	if normalized.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", normalized.Code)
	}
	var norm entity.ShopSettings
	decodeData(t, normalized, &norm)
	if norm.BillFormat != "standard" {
		t.Errorf("BillFormat = %q, want %q", norm.BillFormat, "standard")
	}
}

func TestPrinterStatusEndpoint(t *testing.T) {
	router, _ := setupTestServer(t)

	w := doJSON(t, router, http.MethodGet, "/api/v1/printer/status", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var status service.PrinterStatus
	decodeData(t, w, &status)
	if status.Configured {
		t.Error("null printer should report as not configured")
	}
	if status.Type != "none" {
		t.Errorf("Type = %q, want %q", status.Type, "none")
	}
}

func TestHealthEndpoint(t *testing.T) {
	router, _ := setupTestServer(t)

	w := doJSON(t, router, http.MethodGet, "/health", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "ok") {
		t.Errorf("unexpected health body: %s", w.Body.String())
	}
}
