package request

// UpdateSettingsRequest represents the update shop settings request. The
// profile is replaced as a whole; the settings screen always submits every
// field.
type UpdateSettingsRequest struct {
	ShopName       string  `json:"shop_name" binding:"required"`
	Address        string  `json:"address"`
	Phone          string  `json:"phone"`
	Email          string  `json:"email"`
	GSTIN          string  `json:"gstin"`
	Logo           *string `json:"logo"`
	UPIID          string  `json:"upi_id"`
	ShowUPIOnBill  bool    `json:"show_upi_on_bill"`
	ShowLogoOnBill bool    `json:"show_logo_on_bill"`
	BillFormat     string  `json:"bill_format"`
}
