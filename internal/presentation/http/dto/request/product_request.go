package request

// CreateProductRequest represents the create product request
type CreateProductRequest struct {
	Name     string  `json:"name" binding:"required"`
	HSNCode  string  `json:"hsn_code" binding:"required"`
	GSTRate  float64 `json:"gst_rate" binding:"gte=0"`
	Price    float64 `json:"price" binding:"gte=0"`
	Category string  `json:"category"`
}

// UpdateProductRequest represents the update product request; omitted fields
// are left unchanged.
type UpdateProductRequest struct {
	Name     *string  `json:"name"`
	HSNCode  *string  `json:"hsn_code"`
	GSTRate  *float64 `json:"gst_rate"`
	Price    *float64 `json:"price"`
	Category *string  `json:"category"`
}

// ProductFilterRequest represents product list query parameters
type ProductFilterRequest struct {
	Page      int    `form:"page"`
	PerPage   int    `form:"per_page"`
	Search    string `form:"search"`
	Category  string `form:"category"`
	SortBy    string `form:"sort_by"`
	SortOrder string `form:"sort_order"`
}
