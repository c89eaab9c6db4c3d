package repositories

import (
	"context"

	"github.com/bizdesk/business_management_app/internal/core/domain"
)

// BusinessRepositoryFacade defines persistence operations for businesses.
// Read operations take an ownerUserID filter; the empty string means "all
// businesses" and is only passed for callers whose role can see everything.
type BusinessRepositoryFacade interface {
	// SaveBusiness inserts a new business record.
	SaveBusiness(ctx context.Context, business domain.Business) error

	// FindBusinessByID retrieves a business by primary key.
	// Returns apperrors.ErrNotFound if no such business exists.
	FindBusinessByID(ctx context.Context, businessID string) (*domain.Business, error)

	// FindBusinesses lists businesses, optionally restricted to one owner.
	FindBusinesses(ctx context.Context, ownerUserID string) ([]domain.Business, error)

	// FindBusinessesPaginated lists a page of businesses plus the total count of
	// the filtered set before pagination.
	FindBusinessesPaginated(ctx context.Context, ownerUserID string, limit, offset int) ([]domain.Business, int64, error)

	// SearchBusinessesByName lists businesses whose name contains the query,
	// case-insensitively, optionally restricted to one owner.
	SearchBusinessesByName(ctx context.Context, ownerUserID, query string) ([]domain.Business, error)

	// CountBusinesses returns the total number of businesses. Used for
	// sequential code allocation immediately before insert.
	CountBusinesses(ctx context.Context) (int64, error)

	// AppendInvoiceID pushes an invoice id onto the business's invoiceIDs list.
	AppendInvoiceID(ctx context.Context, businessID, invoiceID string) error
}
