package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/retailworks/pos-billing-api/internal/application/render"
	"github.com/retailworks/pos-billing-api/internal/application/service"
	"github.com/retailworks/pos-billing-api/internal/domain/repository"
	"github.com/retailworks/pos-billing-api/internal/presentation/http/dto/request"
	"github.com/retailworks/pos-billing-api/internal/presentation/http/dto/response"
	"github.com/retailworks/pos-billing-api/pkg/pagination"
)

// BillHandler handles billing HTTP requests
type BillHandler struct {
	billingService  *service.BillingService
	settingsService *service.SettingsService
}

// NewBillHandler creates a new bill handler
func NewBillHandler(billingService *service.BillingService, settingsService *service.SettingsService) *BillHandler {
	return &BillHandler{
		billingService:  billingService,
		settingsService: settingsService,
	}
}

// billInput converts a request body into a service input, parsing the
// product id of every line. Returns nil after writing a 400 response when
// an id is malformed.
func billInput(c *gin.Context, req *request.CreateBillRequest) *service.CreateBillInput {
	input := &service.CreateBillInput{
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		Items:         make([]service.BillItemInput, 0, len(req.Items)),
	}
	for _, item := range req.Items {
		productID, err := uuid.Parse(item.ProductID)
		if err != nil {
			response.BadRequest(c, "Invalid product ID: "+item.ProductID)
			return nil
		}
		input.Items = append(input.Items, service.BillItemInput{
			ProductID: productID,
			Quantity:  item.Quantity,
		})
	}
	return input
}

// Create handles saving a new bill
func (h *BillHandler) Create(c *gin.Context) {
	var req request.CreateBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	input := billInput(c, &req)
	if input == nil {
		return
	}

	bill, err := h.billingService.CreateBill(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Bill saved successfully", bill)
}

// List handles listing bills
func (h *BillHandler) List(c *gin.Context) {
	var filter request.BillFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	params := &repository.BillFilterParams{
		Pagination: &pagination.PaginationParams{
			Page:    filter.Page,
			PerPage: filter.PerPage,
		},
		Search: filter.Search,
	}

	result, err := h.billingService.ListBills(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Bills retrieved successfully", result)
}

// Get handles getting a single bill with its items
func (h *BillHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		response.BadRequest(c, "Invalid bill ID")
		return
	}

	bill, err := h.billingService.GetBill(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Bill retrieved successfully", bill)
}

// GetByNumber handles looking up a bill by its printed number, the one a
// customer reads off a paper invoice.
func (h *BillHandler) GetByNumber(c *gin.Context) {
	billNo := c.Param("bill_no")
	if billNo == "" {
		response.BadRequest(c, "Bill number is required")
		return
	}

	bill, err := h.billingService.GetBillByNumber(c.Request.Context(), billNo)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Bill retrieved successfully", bill)
}

// Document handles rendering a saved bill as a printable HTML invoice in
// the layout the shop settings select.
func (h *BillHandler) Document(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		response.BadRequest(c, "Invalid bill ID")
		return
	}

	bill, err := h.billingService.GetBill(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	shop, err := h.settingsService.GetSettings(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	doc, err := render.HTML(bill, shop, false)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(doc))
}

// Preview handles computing and rendering a bill without saving it. The
// returned document carries a PREVIEW-prefixed bill number and, on layouts
// that show one, a preview banner.
func (h *BillHandler) Preview(c *gin.Context) {
	var req request.CreateBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	input := billInput(c, &req)
	if input == nil {
		return
	}

	bill, err := h.billingService.PreviewBill(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	shop, err := h.settingsService.GetSettings(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	doc, err := render.HTML(bill, shop, true)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(doc))
}
