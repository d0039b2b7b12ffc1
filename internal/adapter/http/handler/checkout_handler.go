package handler

import (
	"charity-donation-service/internal/adapter/http/dto"
	"charity-donation-service/internal/core/ports"
	"charity-donation-service/pkg/apperror"
	"charity-donation-service/pkg/response"

	"github.com/gin-gonic/gin"
)

// CheckoutHandler handles the public donation checkout endpoint.
type CheckoutHandler struct {
	checkoutSvc ports.CheckoutService
}

// NewCheckoutHandler creates a new CheckoutHandler.
func NewCheckoutHandler(checkoutSvc ports.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{checkoutSvc: checkoutSvc}
}

// CreateDonation handles POST /api/v1/donations.
func (h *CheckoutHandler) CreateDonation(c *gin.Context) {
	var req dto.CreateDonationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	result, err := h.checkoutSvc.CreateDonationInvoice(c.Request.Context(), ports.CreateInvoiceRequest{
		Amount:     req.Amount,
		Currency:   req.Currency,
		DonorName:  req.DonorName,
		DonorEmail: req.DonorEmail,
		CauseName:  req.CauseName,
		SuccessURL: req.SuccessURL,
		CancelURL:  req.CancelURL,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.CreateDonationResponse{
		PaymentURL: result.PaymentURL,
		PaymentID:  result.PaymentID,
		OrderID:    result.OrderID,
	})
}
