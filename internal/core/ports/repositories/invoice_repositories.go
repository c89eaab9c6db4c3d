package repositories

import (
	"context"
	"time"

	"github.com/bizdesk/business_management_app/internal/core/domain"
)

// InvoiceFilter narrows invoice list queries. Nil/empty fields are ignored.
// StartDate is a lower bound on the invoice start date, EndDate an upper bound
// on the due date.
type InvoiceFilter struct {
	ServiceName string
	StartDate   *time.Time
	EndDate     *time.Time
}

// InvoicePageFilter narrows paginated invoice queries. Search matches
// case-insensitively against service names, the invoice code, and the business
// name.
type InvoicePageFilter struct {
	Search    string
	StartDate *time.Time
	EndDate   *time.Time
	Limit     int
	Offset    int
}

// InvoiceRepositoryFacade defines persistence operations for invoices.
// Deletion is always a status transition; rows are never removed.
type InvoiceRepositoryFacade interface {
	// SaveInvoice inserts a new invoice record.
	SaveInvoice(ctx context.Context, invoice domain.Invoice) error

	// FindInvoiceByID retrieves an invoice by primary key regardless of status.
	// Returns apperrors.ErrNotFound if no such invoice exists.
	FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error)

	// FindInvoicesByBusinessID lists all invoices of a business regardless of status.
	FindInvoicesByBusinessID(ctx context.Context, businessID string) ([]domain.Invoice, error)

	// CountInvoices returns the total number of invoices (any status). Used for
	// sequential code allocation immediately before insert.
	CountInvoices(ctx context.Context) (int64, error)

	// UpdateInvoice replaces the mutable fields of an existing invoice.
	UpdateInvoice(ctx context.Context, invoice domain.Invoice) error

	// MarkInvoiceDeleted soft-deletes an invoice by setting its status.
	MarkInvoiceDeleted(ctx context.Context, invoiceID string) error

	// FilterInvoices lists Active invoices matching the filter.
	FilterInvoices(ctx context.Context, filter InvoiceFilter) ([]domain.Invoice, error)

	// FindInvoicesPaginated lists a page of Active invoices matching the filter,
	// sorted ascending by creation time, plus the total count of the filtered
	// set before pagination.
	FindInvoicesPaginated(ctx context.Context, filter InvoicePageFilter) ([]domain.Invoice, int64, error)
}
