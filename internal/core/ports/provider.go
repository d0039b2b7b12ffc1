package ports

import (
	"context"

	"github.com/shopspring/decimal"
)

// InvoiceRequest is the outbound invoice-creation payload.
type InvoiceRequest struct {
	OrderID          string
	PriceAmount      decimal.Decimal
	PriceCurrency    string
	OrderDescription string
	SuccessURL       string
	CancelURL        string
	IPNCallbackURL   string
}

// Invoice is the provider's response to a successful creation call.
type Invoice struct {
	ID         string
	InvoiceURL string
}

// InvoiceClient talks to the external payment provider. Implementations
// must impose a request timeout and surface provider rejections with the
// provider's own message.
type InvoiceClient interface {
	CreateInvoice(ctx context.Context, apiKey string, req InvoiceRequest) (*Invoice, error)
}
