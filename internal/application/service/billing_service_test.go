package service

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"strings"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/retailworks/pos-billing-api/internal/domain/entity"
	infra "github.com/retailworks/pos-billing-api/internal/infrastructure/repository"
	"github.com/retailworks/pos-billing-api/pkg/apperror"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
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
	return db
}

func seedProduct(t *testing.T, db *gorm.DB, name string, price, gstRate float64) *entity.Product {
	t.Helper()
	product := &entity.Product{
		Name:    name,
		HSNCode: "8471",
		GSTRate: gstRate,
		Price:   price,
	}
	if err := db.Create(product).Error; err != nil {
		t.Fatalf("failed to seed product: %v", err)
	}
	return product
}

func TestComputeLineItem(t *testing.T) {
	laptop := &entity.Product{
		ID:      uuid.New(),
		Name:    "Laptop - Dell Inspiron 15",
		HSNCode: "8471",
		GSTRate: 18,
		Price:   55000,
	}

	item := ComputeLineItem(laptop, 2)

	if item.TaxableValue != 110000 {
		t.Errorf("TaxableValue = %v, want 110000", item.TaxableValue)
	}
	if item.CGST != 9900 {
		t.Errorf("CGST = %v, want 9900", item.CGST)
	}
	if item.SGST != 9900 {
		t.Errorf("SGST = %v, want 9900", item.SGST)
	}
	if item.Total != 129800 {
		t.Errorf("Total = %v, want 129800", item.Total)
	}
	if item.ProductName != laptop.Name || item.HSNCode != laptop.HSNCode {
		t.Error("expected product details to be snapshotted onto the item")
	}
}

func TestComputeLineItemHalvesGSTEqually(t *testing.T) {
	rates := []float64{0, 5, 12, 18, 28}
	for _, rate := range rates {
		product := &entity.Product{ID: uuid.New(), Price: 999.99, GSTRate: rate}
		item := ComputeLineItem(product, 3)
		if item.CGST != item.SGST {
			t.Errorf("rate %v: CGST %v != SGST %v", rate, item.CGST, item.SGST)
		}
		gst := item.TaxableValue * rate / 100
		if math.Abs(item.CGST+item.SGST-gst) > 1e-9 {
			t.Errorf("rate %v: CGST+SGST = %v, want %v", rate, item.CGST+item.SGST, gst)
		}
		if math.Abs(item.Total-(item.TaxableValue+gst)) > 1e-9 {
			t.Errorf("rate %v: Total = %v, want %v", rate, item.Total, item.TaxableValue+gst)
		}
	}
}

func TestAggregate(t *testing.T) {
	laptop := &entity.Product{ID: uuid.New(), Price: 55000, GSTRate: 18}
	mouse := &entity.Product{ID: uuid.New(), Price: 1500, GSTRate: 18}

	items := []entity.BillItem{
		ComputeLineItem(laptop, 1),
		ComputeLineItem(mouse, 2),
	}
	totals := Aggregate(items)

	if totals.Subtotal != 58000 {
		t.Errorf("Subtotal = %v, want 58000", totals.Subtotal)
	}
	if totals.TotalCGST != 5220 {
		t.Errorf("TotalCGST = %v, want 5220", totals.TotalCGST)
	}
	if totals.TotalSGST != 5220 {
		t.Errorf("TotalSGST = %v, want 5220", totals.TotalSGST)
	}
	if totals.GrandTotal != 68440 {
		t.Errorf("GrandTotal = %v, want 68440", totals.GrandTotal)
	}
}

func TestAggregateEmpty(t *testing.T) {
	totals := Aggregate(nil)
	if totals.Subtotal != 0 || totals.TotalCGST != 0 || totals.TotalSGST != 0 || totals.GrandTotal != 0 {
		t.Errorf("expected zero totals for empty items, got %+v", totals)
	}
}

func TestGenerateBillNo(t *testing.T) {
	billNo := GenerateBillNo()
	if !strings.HasPrefix(billNo, "BILL-") {
		t.Errorf("bill number %q missing BILL- prefix", billNo)
	}
	previewNo := GeneratePreviewBillNo()
	if !strings.HasPrefix(previewNo, "PREVIEW-") {
		t.Errorf("preview number %q missing PREVIEW- prefix", previewNo)
	}
}

func TestCreateBill(t *testing.T) {
	db := setupTestDB(t)
	billRepo := infra.NewBillRepository(db)
	productRepo := infra.NewProductRepository(db)
	svc := NewBillingService(billRepo, productRepo)

	laptop := seedProduct(t, db, "Laptop - Dell Inspiron 15", 55000, 18)
	mouse := seedProduct(t, db, "Wireless Mouse - Logitech", 1500, 18)

	bill, err := svc.CreateBill(context.Background(), &CreateBillInput{
		CustomerName:  "Rajesh Kumar",
		CustomerPhone: "9876543210",
		Items: []BillItemInput{
			{ProductID: laptop.ID, Quantity: 1},
			{ProductID: mouse.ID, Quantity: 2},
		},
	})
	if err != nil {
		t.Fatalf("CreateBill failed: %v", err)
	}

	if bill.GrandTotal != 68440 {
		t.Errorf("GrandTotal = %v, want 68440", bill.GrandTotal)
	}
	if len(bill.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(bill.Items))
	}
	if bill.Items[0].Position != 0 || bill.Items[1].Position != 1 {
		t.Error("expected items to keep entry order positions")
	}

	// Round-trip through the repository preserves item order and figures.
	saved, err := svc.GetBill(context.Background(), bill.ID)
	if err != nil {
		t.Fatalf("GetBill failed: %v", err)
	}
	if saved.BillNo != bill.BillNo {
		t.Errorf("BillNo = %q, want %q", saved.BillNo, bill.BillNo)
	}
	if len(saved.Items) != 2 || saved.Items[0].ProductName != "Laptop - Dell Inspiron 15" {
		t.Errorf("unexpected saved items: %+v", saved.Items)
	}
}

func TestCreateBillUnknownProduct(t *testing.T) {
	db := setupTestDB(t)
	svc := NewBillingService(infra.NewBillRepository(db), infra.NewProductRepository(db))

	_, err := svc.CreateBill(context.Background(), &CreateBillInput{
		CustomerName:  "Rajesh Kumar",
		CustomerPhone: "9876543210",
		Items:         []BillItemInput{{ProductID: uuid.New(), Quantity: 1}},
	})
	if err == nil {
		t.Fatal("expected error for unknown product")
	}
	appErr := apperror.GetAppError(err)
	if appErr == nil || appErr.Code != http.StatusNotFound {
		t.Errorf("expected 404 app error, got %v", err)
	}
}

func TestCreateBillValidation(t *testing.T) {
	db := setupTestDB(t)
	svc := NewBillingService(infra.NewBillRepository(db), infra.NewProductRepository(db))
	product := seedProduct(t, db, "Keyboard - Mechanical RGB", 4500, 18)

	tests := []struct {
		name  string
		input CreateBillInput
	}{
		{
			name: "short customer name",
			input: CreateBillInput{
				CustomerName:  "R",
				CustomerPhone: "9876543210",
				Items:         []BillItemInput{{ProductID: product.ID, Quantity: 1}},
			},
		},
		{
			name: "invalid phone",
			input: CreateBillInput{
				CustomerName:  "Rajesh Kumar",
				CustomerPhone: "1234567890",
				Items:         []BillItemInput{{ProductID: product.ID, Quantity: 1}},
			},
		},
		{
			name: "no items",
			input: CreateBillInput{
				CustomerName:  "Rajesh Kumar",
				CustomerPhone: "9876543210",
			},
		},
		{
			name: "zero quantity",
			input: CreateBillInput{
				CustomerName:  "Rajesh Kumar",
				CustomerPhone: "9876543210",
				Items:         []BillItemInput{{ProductID: product.ID, Quantity: 0}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateBill(context.Background(), &tt.input)
			appErr := apperror.GetAppError(err)
			if appErr == nil || appErr.Code != http.StatusUnprocessableEntity {
				t.Errorf("expected validation error, got %v", err)
			}
		})
	}
}

func TestPreviewBillDoesNotPersist(t *testing.T) {
	db := setupTestDB(t)
	svc := NewBillingService(infra.NewBillRepository(db), infra.NewProductRepository(db))
	product := seedProduct(t, db, "Monitor - LG 24 inch", 12000, 18)

	bill, err := svc.PreviewBill(context.Background(), &CreateBillInput{
		CustomerName:  "Priya Sharma",
		CustomerPhone: "8765432109",
		Items:         []BillItemInput{{ProductID: product.ID, Quantity: 1}},
	})
	if err != nil {
		t.Fatalf("PreviewBill failed: %v", err)
	}
	if !strings.HasPrefix(bill.BillNo, "PREVIEW-") {
		t.Errorf("preview bill number %q missing PREVIEW- prefix", bill.BillNo)
	}

	var count int64
	db.Model(&entity.Bill{}).Count(&count)
	if count != 0 {
		t.Errorf("expected no persisted bills after preview, found %d", count)
	}
}
