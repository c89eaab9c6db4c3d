package dto

import (
	"time"

	"github.com/bizdesk/business_management_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// IDName is a minimal {id, name} reference to another entity.
type IDName struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ServiceLineInput is a billable line item on invoice create/update. Clients
// may supply their own line ids (preserved on update flows); invalid or empty
// ids are replaced server-side.
type ServiceLineInput struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
}

// SaveInvoiceRequest is the payload for creating or updating an invoice.
type SaveInvoiceRequest struct {
	Business      *IDName            `json:"business"`
	Services      []ServiceLineInput `json:"services"`
	Amount        decimal.Decimal    `json:"amount"`
	VatPercentage decimal.Decimal    `json:"vatPercentage"`
	StartDate     time.Time          `json:"startDate" binding:"required"`
	DueDate       time.Time          `json:"dueDate" binding:"required"`
}

// InvoiceResponse is the full invoice view.
type InvoiceResponse struct {
	InvoiceID     string               `json:"invoiceID"`
	InvoiceCode   string               `json:"invoiceCode"`
	BusinessID    string               `json:"businessID"`
	BusinessCode  string               `json:"businessCode"`
	BusinessName  string               `json:"businessName"`
	Services      []domain.ServiceLine `json:"services"`
	Amount        decimal.Decimal      `json:"amount"`
	VatPercentage decimal.Decimal      `json:"vatPercentage"`
	TotalAmount   decimal.Decimal      `json:"totalAmount"`
	StartDate     time.Time            `json:"startDate"`
	DueDate       time.Time            `json:"dueDate"`
	CreatedAt     time.Time            `json:"createdAt"`
	Status        string               `json:"status"`
}

// BusinessInvoiceResponse is the projection used by the by-business listing,
// with the owning business embedded as an {id, name} reference.
type BusinessInvoiceResponse struct {
	ID            string               `json:"id"`
	Business      IDName               `json:"business"`
	InvoiceCode   string               `json:"invoiceCode"`
	Services      []domain.ServiceLine `json:"services"`
	Amount        decimal.Decimal      `json:"amount"`
	TotalAmount   decimal.Decimal      `json:"totalAmount"`
	VatPercentage decimal.Decimal      `json:"vatPercentage"`
	StartDate     time.Time            `json:"startDate"`
	DueDate       time.Time            `json:"dueDate"`
	Status        string               `json:"status"`
}

// FilterInvoicesParams defines query parameters for the filtered invoice list.
type FilterInvoicesParams struct {
	Service   string     `form:"service"`
	StartDate *time.Time `form:"startDate" time_format:"2006-01-02"`
	EndDate   *time.Time `form:"endDate" time_format:"2006-01-02"`
}

// ListInvoicesParams defines query parameters for the paginated invoice list.
// Page is 1-indexed.
type ListInvoicesParams struct {
	Page      int        `form:"page,default=1"`
	PageSize  int        `form:"pageSize,default=15"`
	Search    string     `form:"search"`
	StartDate *time.Time `form:"startDate" time_format:"2006-01-02"`
	EndDate   *time.Time `form:"endDate" time_format:"2006-01-02"`
}

// PaginatedInvoicesResponse wraps a page of invoices with the total count of
// the filtered set before pagination.
type PaginatedInvoicesResponse struct {
	Data  []InvoiceResponse `json:"data"`
	Total int64             `json:"total"`
}

// ToInvoiceResponse converts a domain.Invoice to InvoiceResponse.
func ToInvoiceResponse(inv *domain.Invoice) InvoiceResponse {
	return InvoiceResponse{
		InvoiceID:     inv.InvoiceID,
		InvoiceCode:   inv.InvoiceCode,
		BusinessID:    inv.BusinessID,
		BusinessCode:  inv.BusinessCode,
		BusinessName:  inv.BusinessName,
		Services:      inv.Services,
		Amount:        inv.Amount,
		VatPercentage: inv.VatPercentage,
		TotalAmount:   inv.TotalAmount,
		StartDate:     inv.StartDate,
		DueDate:       inv.DueDate,
		CreatedAt:     inv.CreatedAt,
		Status:        string(inv.Status),
	}
}

// ToInvoiceResponses converts a slice of domain.Invoice to []InvoiceResponse.
func ToInvoiceResponses(invoices []domain.Invoice) []InvoiceResponse {
	responses := make([]InvoiceResponse, len(invoices))
	for i := range invoices {
		responses[i] = ToInvoiceResponse(&invoices[i])
	}
	return responses
}

// ToBusinessInvoiceResponse converts a domain.Invoice to the by-business projection.
func ToBusinessInvoiceResponse(inv *domain.Invoice) BusinessInvoiceResponse {
	return BusinessInvoiceResponse{
		ID:            inv.InvoiceID,
		Business:      IDName{ID: inv.BusinessID, Name: inv.BusinessName},
		InvoiceCode:   inv.InvoiceCode,
		Services:      inv.Services,
		Amount:        inv.Amount,
		TotalAmount:   inv.TotalAmount,
		VatPercentage: inv.VatPercentage,
		StartDate:     inv.StartDate,
		DueDate:       inv.DueDate,
		Status:        string(inv.Status),
	}
}
