package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// BillFormat selects the invoice layout used when a bill is rendered
type BillFormat string

const (
	BillFormatStandard BillFormat = "standard"
	BillFormatCompact  BillFormat = "compact"
	BillFormatDetailed BillFormat = "detailed"
	BillFormatMinimal  BillFormat = "minimal"
)

// Valid reports whether f is one of the four recognized layouts.
func (f BillFormat) Valid() bool {
	switch f {
	case BillFormatStandard, BillFormatCompact, BillFormatDetailed, BillFormatMinimal:
		return true
	}
	return false
}

// Normalize maps any unrecognized value (including empty) to the standard
// layout. Renderer dispatch always goes through this, so a malformed stored
// value degrades silently rather than erroring.
func (f BillFormat) Normalize() BillFormat {
	if f.Valid() {
		return f
	}
	return BillFormatStandard
}

func (f BillFormat) String() string {
	return string(f.Normalize())
}

func (f BillFormat) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(f.Normalize()))
}

func (f *BillFormat) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*f = BillFormat(str).Normalize()
	return nil
}

func (f BillFormat) Value() (driver.Value, error) {
	return string(f.Normalize()), nil
}

func (f *BillFormat) Scan(value interface{}) error {
	if value == nil {
		*f = BillFormatStandard
		return nil
	}
	switch v := value.(type) {
	case string:
		*f = BillFormat(v).Normalize()
	case []byte:
		*f = BillFormat(v).Normalize()
	default:
		*f = BillFormatStandard
	}
	return nil
}
