package handler

import (
	"charity-donation-service/internal/adapter/http/dto"
	"charity-donation-service/internal/adapter/http/middleware"
	"charity-donation-service/internal/core/domain"
	"charity-donation-service/internal/core/ports"
	"charity-donation-service/pkg/apperror"
	"charity-donation-service/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TreasuryHandler serves payout bank accounts and withdrawal requests.
type TreasuryHandler struct {
	treasurySvc ports.TreasuryService
}

// NewTreasuryHandler creates a new TreasuryHandler.
func NewTreasuryHandler(treasurySvc ports.TreasuryService) *TreasuryHandler {
	return &TreasuryHandler{treasurySvc: treasurySvc}
}

// ListBankAccounts handles GET /api/v1/admin/bank-accounts.
func (h *TreasuryHandler) ListBankAccounts(c *gin.Context) {
	accounts, err := h.treasurySvc.ListBankAccounts(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, accounts)
}

// CreateBankAccount handles POST /api/v1/admin/bank-accounts.
func (h *TreasuryHandler) CreateBankAccount(c *gin.Context) {
	var req dto.BankAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	account := bankAccountFromRequest(req)
	if err := h.treasurySvc.CreateBankAccount(c.Request.Context(), account); err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, account)
}

// UpdateBankAccount handles PUT /api/v1/admin/bank-accounts/:id.
func (h *TreasuryHandler) UpdateBankAccount(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("invalid bank account ID"))
		return
	}

	var req dto.BankAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	account := bankAccountFromRequest(req)
	account.ID = id
	if err := h.treasurySvc.UpdateBankAccount(c.Request.Context(), account); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, account)
}

// DeleteBankAccount handles DELETE /api/v1/admin/bank-accounts/:id.
func (h *TreasuryHandler) DeleteBankAccount(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("invalid bank account ID"))
		return
	}

	if err := h.treasurySvc.DeleteBankAccount(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"deleted": true})
}

// SetDefaultBankAccount handles POST /api/v1/admin/bank-accounts/:id/default.
func (h *TreasuryHandler) SetDefaultBankAccount(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("invalid bank account ID"))
		return
	}

	if err := h.treasurySvc.SetDefaultBankAccount(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"default": true})
}

// CreateWithdrawal handles POST /api/v1/admin/withdrawals.
func (h *TreasuryHandler) CreateWithdrawal(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.WithdrawalCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	var bankAccountID *uuid.UUID
	if req.BankAccountID != nil && *req.BankAccountID != "" {
		id, err := uuid.Parse(*req.BankAccountID)
		if err != nil {
			response.Error(c, apperror.Validation("invalid bank account ID"))
			return
		}
		bankAccountID = &id
	}

	withdrawal, err := h.treasurySvc.RequestWithdrawal(c.Request.Context(), ports.WithdrawalRequest{
		Amount:        req.Amount,
		Currency:      req.Currency,
		BankAccountID: bankAccountID,
		Note:          req.Note,
		RequestedBy:   userID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, withdrawal)
}

// ListWithdrawals handles GET /api/v1/admin/withdrawals.
func (h *TreasuryHandler) ListWithdrawals(c *gin.Context) {
	withdrawals, err := h.treasurySvc.ListWithdrawals(c.Request.Context(), limitParam(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, withdrawals)
}

func bankAccountFromRequest(req dto.BankAccountRequest) *domain.BankAccount {
	return &domain.BankAccount{
		BankName:      req.BankName,
		AccountName:   req.AccountName,
		AccountNumber: req.AccountNumber,
		Branch:        req.Branch,
		SwiftCode:     req.SwiftCode,
		Currency:      req.Currency,
		IsDefault:     req.IsDefault,
	}
}
