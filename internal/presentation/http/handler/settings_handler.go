package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/retailworks/pos-billing-api/internal/application/service"
	"github.com/retailworks/pos-billing-api/internal/domain/enum"
	"github.com/retailworks/pos-billing-api/internal/presentation/http/dto/request"
	"github.com/retailworks/pos-billing-api/internal/presentation/http/dto/response"
)

// SettingsHandler handles shop settings HTTP requests
type SettingsHandler struct {
	settingsService *service.SettingsService
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(settingsService *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// Get handles getting the shop settings
func (h *SettingsHandler) Get(c *gin.Context) {
	settings, err := h.settingsService.GetSettings(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Settings retrieved successfully", settings)
}

// Update handles replacing the shop settings
func (h *SettingsHandler) Update(c *gin.Context) {
	var req request.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	settings, err := h.settingsService.UpdateSettings(c.Request.Context(), &service.UpdateSettingsInput{
		ShopName:       req.ShopName,
		Address:        req.Address,
		Phone:          req.Phone,
		Email:          req.Email,
		GSTIN:          req.GSTIN,
		Logo:           req.Logo,
		UPIID:          req.UPIID,
		ShowUPIOnBill:  req.ShowUPIOnBill,
		ShowLogoOnBill: req.ShowLogoOnBill,
		BillFormat:     enum.BillFormat(req.BillFormat),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Settings updated successfully", settings)
}
