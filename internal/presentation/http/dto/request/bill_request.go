package request

// BillItemRequest represents one cart line in a bill request
type BillItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required"`
}

// CreateBillRequest represents the create (or preview) bill request. Field
// level validation beyond presence lives in the billing service, whose
// messages mirror what the cashier screen shows.
type CreateBillRequest struct {
	CustomerName  string            `json:"customer_name"`
	CustomerPhone string            `json:"customer_phone"`
	Items         []BillItemRequest `json:"items"`
}

// BillFilterRequest represents bill list query parameters
type BillFilterRequest struct {
	Page    int    `form:"page"`
	PerPage int    `form:"per_page"`
	Search  string `form:"search"`
}
