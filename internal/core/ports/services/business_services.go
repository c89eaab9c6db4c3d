package services

import (
	"context"

	"github.com/bizdesk/business_management_app/internal/core/domain"
	"github.com/bizdesk/business_management_app/internal/dto"
)

// BusinessReaderSvc defines read operations for businesses. All list-shaped
// operations are role-scoped: a role that can see all gets every business,
// any other role only the ones the calling user created.
type BusinessReaderSvc interface {
	// ListBusinesses lists businesses visible to the caller.
	ListBusinesses(ctx context.Context, userID string, role domain.UserRole) ([]domain.Business, error)

	// GetBusinessByID retrieves a business by ID.
	GetBusinessByID(ctx context.Context, businessID string) (*domain.Business, error)

	// GetBusinessDetails retrieves the detail view with the owner resolved live.
	GetBusinessDetails(ctx context.Context, businessID string) (*dto.BusinessDetailsResponse, error)

	// SearchBusinesses lists visible businesses whose name matches the query.
	// An empty query falls back to the plain visible list.
	SearchBusinesses(ctx context.Context, query, userID string, role domain.UserRole) ([]domain.Business, error)

	// ListBusinessesPaginated lists a page of visible businesses plus the total
	// count of the visible set.
	ListBusinessesPaginated(ctx context.Context, params dto.ListBusinessesParams, userID string, role domain.UserRole) (*dto.PaginatedBusinessesResponse, error)
}

// BusinessWriterSvc defines write operations for businesses.
type BusinessWriterSvc interface {
	// CreateBusiness allocates the next sequential business code, snapshots the
	// owner, persists the business, and appends a history entry.
	CreateBusiness(ctx context.Context, req dto.CreateBusinessRequest, creatorUserID string) (*domain.Business, error)
}

// BusinessHistorySvc exposes the business-level history view.
type BusinessHistorySvc interface {
	// GetBusinessHistory lists all ledger entries of a business, newest first.
	GetBusinessHistory(ctx context.Context, businessID string) ([]domain.History, error)
}

// BusinessSvcFacade combines all business-related service interfaces
type BusinessSvcFacade interface {
	BusinessReaderSvc
	BusinessWriterSvc
	BusinessHistorySvc
}
