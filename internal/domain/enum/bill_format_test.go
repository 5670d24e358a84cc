package enum

import (
	"encoding/json"
	"testing"
)

func TestBillFormatNormalize(t *testing.T) {
	cases := []struct {
		in   BillFormat
		want BillFormat
	}{
		{BillFormatStandard, BillFormatStandard},
		{BillFormatCompact, BillFormatCompact},
		{BillFormatDetailed, BillFormatDetailed},
		{BillFormatMinimal, BillFormatMinimal},
		{"", BillFormatStandard},
		{"fancy", BillFormatStandard},
		{"STANDARD", BillFormatStandard},
	}
	for _, c := range cases {
		if got := c.in.Normalize(); got != c.want {
			t.Errorf("Normalize(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestBillFormatJSONRoundTrip(t *testing.T) {
	var f BillFormat
	if err := json.Unmarshal([]byte(`"compact"`), &f); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if f != BillFormatCompact {
		t.Fatalf("got %q, want compact", f)
	}

	if err := json.Unmarshal([]byte(`"receipt-55"`), &f); err != nil {
		t.Fatalf("unmarshal unknown: %v", err)
	}
	if f != BillFormatStandard {
		t.Fatalf("unknown format should normalize to standard, got %q", f)
	}

	out, err := json.Marshal(BillFormat("bogus"))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != `"standard"` {
		t.Fatalf("marshal bogus = %s, want \"standard\"", out)
	}
}

func TestBillFormatScan(t *testing.T) {
	var f BillFormat
	if err := f.Scan("minimal"); err != nil {
		t.Fatalf("scan: %v", err)
	}
	if f != BillFormatMinimal {
		t.Fatalf("got %q, want minimal", f)
	}
	if err := f.Scan(nil); err != nil {
		t.Fatalf("scan nil: %v", err)
	}
	if f != BillFormatStandard {
		t.Fatalf("nil should scan to standard, got %q", f)
	}
}
