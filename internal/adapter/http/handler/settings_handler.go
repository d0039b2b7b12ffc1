package handler

import (
	"charity-donation-service/internal/adapter/http/dto"
	"charity-donation-service/internal/core/domain"
	"charity-donation-service/internal/core/ports"
	"charity-donation-service/pkg/apperror"
	"charity-donation-service/pkg/response"

	"github.com/gin-gonic/gin"
)

// SettingsHandler serves the admin configuration endpoints: provider
// settings, custodial wallet setup, and the manual settlement trigger.
type SettingsHandler struct {
	settingsSvc   ports.SettingsService
	settlementSvc ports.SettlementService
}

// NewSettingsHandler creates a new SettingsHandler.
func NewSettingsHandler(settingsSvc ports.SettingsService, settlementSvc ports.SettlementService) *SettingsHandler {
	return &SettingsHandler{settingsSvc: settingsSvc, settlementSvc: settlementSvc}
}

// GetProviderSettings handles GET /api/v1/admin/settings/provider.
func (h *SettingsHandler) GetProviderSettings(c *gin.Context) {
	settings, err := h.settingsSvc.ProviderSettings(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.NewProviderSettingsResponse(settings))
}

// UpdateProviderSettings handles PUT /api/v1/admin/settings/provider.
// Secret fields left out of the body keep their stored values.
func (h *SettingsHandler) UpdateProviderSettings(c *gin.Context) {
	var req dto.ProviderSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	settings, err := h.settingsSvc.ProviderSettings(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	if req.APIKey != nil {
		settings.APIKey = *req.APIKey
	}
	if req.IPNSecret != nil {
		settings.IPNSecret = *req.IPNSecret
	}
	if req.WithdrawalMode != "" {
		settings.WithdrawalMode = domain.WithdrawalMode(req.WithdrawalMode)
	}
	if req.MinWithdrawal != nil {
		if req.MinWithdrawal.IsNegative() {
			response.Error(c, apperror.Validation("min_withdrawal cannot be negative"))
			return
		}
		settings.MinWithdrawal = *req.MinWithdrawal
	}
	if req.AutoTransfer != nil {
		settings.AutoTransfer = *req.AutoTransfer
	}

	if err := h.settingsSvc.UpdateProviderSettings(c.Request.Context(), settings); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.NewProviderSettingsResponse(settings))
}

// GetWallet handles GET /api/v1/admin/settings/wallet.
func (h *SettingsHandler) GetWallet(c *gin.Context) {
	wallet, err := h.settingsSvc.Wallet(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, wallet)
}

// UpdateWallet handles PUT /api/v1/admin/settings/wallet. The mnemonic is
// write-only: it is validated, encrypted and never echoed back.
func (h *SettingsHandler) UpdateWallet(c *gin.Context) {
	var req dto.WalletRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	wallet := &domain.CustodialWallet{
		Address:           req.Address,
		SettlementAddress: req.SettlementAddress,
		Network:           req.Network,
		Currency:          req.Currency,
		AutoTransfer:      req.AutoTransfer,
	}
	if existing, err := h.settingsSvc.Wallet(c.Request.Context()); err == nil && existing != nil {
		wallet.ID = existing.ID
		wallet.CreatedAt = existing.CreatedAt
	}

	if err := h.settingsSvc.UpdateWallet(c.Request.Context(), wallet, req.Mnemonic); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, wallet)
}

// TriggerTransfer handles POST /api/v1/admin/transfers/:orderID, queueing
// one settlement attempt. The worker logs the outcome; the transaction
// listing shows the transferred flag once the funds move.
func (h *SettingsHandler) TriggerTransfer(c *gin.Context) {
	orderID := c.Param("orderID")
	if orderID == "" {
		response.Error(c, apperror.Validation("order ID is required"))
		return
	}

	if !h.settlementSvc.Enqueue(orderID) {
		response.Error(c, apperror.ErrSettlementQueueFull())
		return
	}
	response.OK(c, dto.TransferResponse{OrderID: orderID, Status: "queued"})
}
