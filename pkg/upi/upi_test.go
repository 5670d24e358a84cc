package upi

import (
	"net/url"
	"strings"
	"testing"
)

func TestPaymentURI(t *testing.T) {
	uri := PaymentURI("techworld@upi", "TechWorld Electronics", 129800, "Bill Payment - BILL-1700000000000")

	want := "upi://pay?pa=techworld@upi&pn=TechWorld%20Electronics&am=129800.00&cu=INR&tn=Bill%20Payment%20-%20BILL-1700000000000"
	if uri != want {
		t.Fatalf("PaymentURI = %q, want %q", uri, want)
	}
}

func TestPaymentURIAmountTwoDecimals(t *testing.T) {
	uri := PaymentURI("shop@upi", "Shop", 99.5, "note")
	if !strings.Contains(uri, "am=99.50") {
		t.Fatalf("amount not fixed to two decimals: %q", uri)
	}
}

func TestQRImageURL(t *testing.T) {
	data := "upi://pay?pa=shop@upi&pn=Shop&am=10.00&cu=INR&tn=x"
	got := QRImageURL(data, 150)

	if !strings.HasPrefix(got, "https://api.qrserver.com/v1/create-qr-code/?size=150x150&data=") {
		t.Fatalf("unexpected QR URL prefix: %q", got)
	}

	// The deep link must round-trip through the data parameter.
	u, err := url.Parse(got)
	if err != nil {
		t.Fatalf("parse QR URL: %v", err)
	}
	if u.Query().Get("data") != data {
		t.Fatalf("data param = %q, want %q", u.Query().Get("data"), data)
	}
}
