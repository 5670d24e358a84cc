// Package upi builds UPI deep-link payment strings and QR image URLs for
// embedding on printed invoices. It performs no network calls; the QR image is
// referenced by URL and fetched by whatever surface displays the document.
package upi

import (
	"fmt"
	"net/url"
	"strings"
)

// qrEndpoint is a third-party QR image generation service. The service is
// parameterized entirely through the query string, so availability is the
// rendering surface's problem, not ours.
const qrEndpoint = "https://api.qrserver.com/v1/create-qr-code/"

// PaymentURI returns a upi://pay deep link for the given payee and amount.
// The payee name and transaction note are percent-encoded; the payee id is
// used verbatim. Amount is fixed to two decimals with currency INR.
func PaymentURI(payeeID, payeeName string, amount float64, note string) string {
	return fmt.Sprintf("upi://pay?pa=%s&pn=%s&am=%.2f&cu=INR&tn=%s",
		payeeID, escape(payeeName), amount, escape(note))
}

// QRImageURL returns the URL of a size x size pixel QR image encoding data.
func QRImageURL(data string, size int) string {
	return fmt.Sprintf("%s?size=%dx%d&data=%s", qrEndpoint, size, size, escape(data))
}

// escape percent-encodes s for use in a query component, using %20 for spaces
// as UPI apps expect rather than the form-encoding plus sign.
func escape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
