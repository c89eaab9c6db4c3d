package services

import (
	"context"

	"github.com/bizdesk/business_management_app/internal/core/domain"
	"github.com/bizdesk/business_management_app/internal/dto"
)

// InvoiceReaderSvc defines read operations for invoices. Listing operations
// only ever return Active invoices; soft-deleted rows are filtered out.
type InvoiceReaderSvc interface {
	// GetInvoiceByID retrieves an invoice by ID regardless of status.
	GetInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error)

	// ListInvoices lists Active invoices matching the optional filters.
	ListInvoices(ctx context.Context, params dto.FilterInvoicesParams) ([]domain.Invoice, error)

	// ListInvoicesByBusiness lists all invoices of a business in the
	// by-business projection.
	ListInvoicesByBusiness(ctx context.Context, businessID string) ([]dto.BusinessInvoiceResponse, error)

	// ListInvoicesPaginated lists a page of Active invoices sorted ascending by
	// creation time, plus the total count of the filtered set.
	ListInvoicesPaginated(ctx context.Context, params dto.ListInvoicesParams) (*dto.PaginatedInvoicesResponse, error)
}

// InvoiceWriterSvc defines write operations for invoices.
type InvoiceWriterSvc interface {
	// CreateInvoice allocates the next sequential invoice code, snapshots the
	// business, computes the VAT total, persists the invoice, links it to its
	// business, and appends a history entry.
	CreateInvoice(ctx context.Context, req dto.SaveInvoiceRequest, actorUserID, actorName string) (*domain.Invoice, error)

	// UpdateInvoice replaces the mutable fields of an invoice, recomputes the
	// total, reactivates it, and appends a history entry itemizing the changes.
	UpdateInvoice(ctx context.Context, invoiceID string, req dto.SaveInvoiceRequest, actorUserID, actorName string) (*domain.Invoice, error)

	// DeleteInvoice soft-deletes an invoice and appends a history entry. The
	// row is retained with status Deleted.
	DeleteInvoice(ctx context.Context, invoiceID, actorUserID, actorName string) error
}

// InvoiceHistorySvc exposes the invoice-history view of a business.
type InvoiceHistorySvc interface {
	// GetInvoiceHistory lists Invoice ledger entries correlated to the business
	// through its denormalized business code, newest first.
	GetInvoiceHistory(ctx context.Context, businessID string) ([]domain.History, error)
}

// InvoiceSvcFacade combines all invoice-related service interfaces
type InvoiceSvcFacade interface {
	InvoiceReaderSvc
	InvoiceWriterSvc
	InvoiceHistorySvc
}
