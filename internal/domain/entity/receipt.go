package entity

// ReceiptHeader holds the shop header printed at the top of a receipt.
type ReceiptHeader struct {
	ShopName string `json:"shop_name"`
	Address  string `json:"address,omitempty"`
	Phone    string `json:"phone,omitempty"`
	GSTIN    string `json:"gstin,omitempty"`
}

// ReceiptItem represents a single line item on a receipt.
type ReceiptItem struct {
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	Total     float64 `json:"total"`
}

// Receipt is a value object representing a printable thermal receipt. It is
// not a database entity; it is composed from a saved bill at print time.
type Receipt struct {
	Header   ReceiptHeader `json:"header"`
	BillNo   string        `json:"bill_no"`
	Date     string        `json:"date"`
	Customer string        `json:"customer,omitempty"`
	Items    []ReceiptItem `json:"items"`
	Subtotal float64       `json:"subtotal"`
	CGST     float64       `json:"cgst"`
	SGST     float64       `json:"sgst"`
	Total    float64       `json:"total"`
}
