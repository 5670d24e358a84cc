package service

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/retailworks/pos-billing-api/internal/domain/entity"
	"github.com/retailworks/pos-billing-api/pkg/printer"
)

// PrinterService formats saved bills as thermal receipts and sends them to a
// configured ESC/POS printer. With no hardware configured a null printer
// keeps the endpoint functional: the receipt is still composed and returned.
type PrinterService struct {
	printer     printer.Printer
	billing     *BillingService
	settings    *SettingsService
	printerType string
	width       int
}

// NewPrinterService creates a new printer service
func NewPrinterService(p printer.Printer, billing *BillingService, settings *SettingsService, printerType string, width int) *PrinterService {
	if width <= 0 {
		width = 32 // 58mm paper
	}
	return &PrinterService{
		printer:     p,
		billing:     billing,
		settings:    settings,
		printerType: printerType,
		width:       width,
	}
}

// PrinterStatus returns the current printer status information.
type PrinterStatus struct {
	Configured bool   `json:"configured"`
	Connected  bool   `json:"connected"`
	Type       string `json:"type"`
}

// GetStatus returns printer connection status.
func (s *PrinterService) GetStatus() *PrinterStatus {
	return &PrinterStatus{
		Configured: s.printerType != "none" && s.printerType != "",
		Connected:  s.printer.IsConnected(),
		Type:       s.printerType,
	}
}

// TestPrint sends a short test page to verify connectivity and alignment.
func (s *PrinterService) TestPrint() error {
	doc := printer.NewDocument(s.width)
	doc.SetAlign(printer.AlignCenter).
		SetBold(true).
		Text("PRINTER TEST").
		SetBold(false).
		Separator('-').
		Text("If you can read this,").
		Text("the printer is working.").
		FeedLines(3).
		PartialCut()

	if err := s.printer.Print(doc.Bytes()); err != nil {
		return fmt.Errorf("test print failed: %w", err)
	}
	return nil
}

// PrintBillReceipt fetches a saved bill and prints its receipt. The receipt
// is returned either way so the handler can include it in the response.
func (s *PrinterService) PrintBillReceipt(ctx context.Context, billID uuid.UUID) (*entity.Receipt, error) {
	bill, err := s.billing.GetBill(ctx, billID)
	if err != nil {
		return nil, err
	}
	shop, err := s.settings.GetSettings(ctx)
	if err != nil {
		return nil, err
	}

	receipt := ComposeReceipt(bill, shop)

	data := FormatReceipt(receipt, s.width)
	if err := s.printer.Print(data); err != nil {
		log.Printf("Printer error (bill %s): %v", bill.BillNo, err)
		return receipt, fmt.Errorf("failed to print receipt: %w", err)
	}

	return receipt, nil
}

// ComposeReceipt builds the receipt value object for a bill. Content mirrors
// the minimal invoice layout: shop identity, customer, line-by-line items,
// tax split and total.
func ComposeReceipt(bill *entity.Bill, shop *entity.ShopSettings) *entity.Receipt {
	receipt := &entity.Receipt{
		Header: entity.ReceiptHeader{
			ShopName: shop.ShopName,
			Address:  shop.Address,
			Phone:    shop.Phone,
			GSTIN:    shop.GSTIN,
		},
		BillNo:   bill.BillNo,
		Date:     bill.BillDate.Format("02/01/2006 3:04:05 pm"),
		Customer: bill.CustomerName,
		Subtotal: bill.Subtotal,
		CGST:     bill.TotalCGST,
		SGST:     bill.TotalSGST,
		Total:    bill.GrandTotal,
	}

	for _, item := range bill.Items {
		receipt.Items = append(receipt.Items, entity.ReceiptItem{
			Name:      item.ProductName,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Total:     item.Total,
		})
	}

	return receipt
}

// FormatReceipt converts a Receipt into ESC/POS bytes.
func FormatReceipt(r *entity.Receipt, width int) []byte {
	doc := printer.NewDocument(width)

	// Header
	doc.SetAlign(printer.AlignCenter).
		SetBold(true).
		SetFontSize(printer.FontDouble).
		Text(r.Header.ShopName).
		SetFontSize(printer.FontNormal).
		SetBold(false)

	if r.Header.Phone != "" {
		doc.Text(r.Header.Phone)
	}
	if r.Header.GSTIN != "" {
		doc.TextF("GSTIN: %s", r.Header.GSTIN)
	}

	doc.SetAlign(printer.AlignLeft).
		Separator('-')

	doc.TextF("Bill: %s", r.BillNo).
		TextF("Date: %s", r.Date)
	if r.Customer != "" {
		doc.TextF("Customer: %s", r.Customer)
	}

	doc.Separator('-')

	// Items: name on one line, qty x rate = total on the next.
	for _, item := range r.Items {
		doc.Text(item.Name).
			TextF("%d x %.2f = %.2f", item.Quantity, item.UnitPrice, item.Total)
	}

	doc.Separator('-')

	doc.KeyValue("Subtotal:", fmt.Sprintf("%.2f", r.Subtotal)).
		KeyValue("CGST:", fmt.Sprintf("%.2f", r.CGST)).
		KeyValue("SGST:", fmt.Sprintf("%.2f", r.SGST))

	doc.Separator('-')

	doc.SetBold(true).
		KeyValue("TOTAL:", fmt.Sprintf("%.2f", r.Total)).
		SetBold(false)

	doc.Separator('-')

	doc.SetAlign(printer.AlignCenter).
		Text("Thank You!").
		SetAlign(printer.AlignLeft).
		FeedLines(3).
		PartialCut()

	return doc.Bytes()
}
