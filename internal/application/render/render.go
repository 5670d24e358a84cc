// Package render turns a computed bill into a self-contained printable HTML
// document. Four layouts are supported, selected by the shop's configured
// bill format; anything unrecognized falls back to the standard layout.
// Rendering is pure: identical inputs produce byte-identical output, and no
// I/O happens here. QR codes are referenced by URL, never fetched.
package render

import (
	"bytes"
	"embed"
	"html/template"

	"github.com/retailworks/pos-billing-api/internal/domain/entity"
	"github.com/retailworks/pos-billing-api/internal/domain/enum"
	"github.com/retailworks/pos-billing-api/pkg/numwords"
	"github.com/retailworks/pos-billing-api/pkg/upi"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.New("invoice").Funcs(template.FuncMap{
	"money": Money,
	"num":   Number,
	"inr":   FormatINR,
	"half":  HalfRate,
	"inc":   func(i int) int { return i + 1 },
}).ParseFS(templateFS, "templates/*.html"))

// qrSize is the QR image edge in pixels per layout. Zero means the layout
// never shows a QR code.
var qrSize = map[enum.BillFormat]int{
	enum.BillFormatStandard: 150,
	enum.BillFormatCompact:  120,
	enum.BillFormatDetailed: 180,
	enum.BillFormatMinimal:  0,
}

// invoiceData is the template context shared by all four layouts.
type invoiceData struct {
	Bill    *entity.Bill
	Shop    *entity.ShopSettings
	Preview bool

	Date        string // dd/mm/yyyy
	Time        string // h:mm:ss am
	AmountWords string

	ShowLogo bool
	LogoURL  template.URL // may be a data URI, which the URL sanitizer would otherwise reject

	ShowUPI bool
	QRURL   string
	UPIID   string
}

// HTML renders the bill as a complete HTML document using the layout the
// shop settings select. Preview adds a visible banner on layouts that carry
// one; the bill number itself already distinguishes previews.
func HTML(bill *entity.Bill, shop *entity.ShopSettings, preview bool) (string, error) {
	format := shop.BillFormat.Normalize()

	data := invoiceData{
		Bill:        bill,
		Shop:        shop,
		Preview:     preview,
		Date:        bill.BillDate.Format("02/01/2006"),
		Time:        bill.BillDate.Format("3:04:05 pm"),
		AmountWords: numwords.ToWords(bill.GrandTotal),
	}

	// Logo appears only on layouts with a full header block.
	if shop.HasLogo() && shop.ShowLogoOnBill {
		switch format {
		case enum.BillFormatStandard, enum.BillFormatDetailed:
			data.ShowLogo = true
			data.LogoURL = template.URL(shop.LogoURL())
		}
	}

	if shop.UPIID != "" && shop.ShowUPIOnBill {
		if size := qrSize[format]; size > 0 {
			uri := upi.PaymentURI(shop.UPIID, shop.ShopName, bill.GrandTotal, "Bill Payment - "+bill.BillNo)
			data.ShowUPI = true
			data.QRURL = upi.QRImageURL(uri, size)
			data.UPIID = shop.UPIID
		}
	}

	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, string(format)+".html", data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
