package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/bizdesk/business_management_app/internal/apperrors"
	"github.com/bizdesk/business_management_app/internal/core/domain"
	portsrepo "github.com/bizdesk/business_management_app/internal/core/ports/repositories"
	portssvc "github.com/bizdesk/business_management_app/internal/core/ports/services"
	"github.com/bizdesk/business_management_app/internal/dto"
	"github.com/bizdesk/business_management_app/internal/middleware"
	"github.com/google/uuid"
)

// businessCodePrefix is the prefix of sequential business codes ("BE-001").
const businessCodePrefix = "BE"

type businessService struct {
	businessRepo portsrepo.BusinessRepositoryFacade
	userRepo     portsrepo.UserRepositoryFacade
	history      portssvc.HistorySvcFacade
}

// NewBusinessService creates the business directory service.
func NewBusinessService(
	businessRepo portsrepo.BusinessRepositoryFacade,
	userRepo portsrepo.UserRepositoryFacade,
	history portssvc.HistorySvcFacade,
) portssvc.BusinessSvcFacade {
	return &businessService{
		businessRepo: businessRepo,
		userRepo:     userRepo,
		history:      history,
	}
}

var _ portssvc.BusinessSvcFacade = (*businessService)(nil)

// ownerScopeFor translates the caller's identity into the repository owner
// filter: roles that can see all get the unscoped view (empty filter), every
// other role only the businesses they created. All read paths go through this
// one function so the visibility rule cannot diverge between them.
func ownerScopeFor(userID string, role domain.UserRole) string {
	if role.CanSeeAll() {
		return ""
	}
	return userID
}

// CreateBusiness allocates the next sequential business code from a live
// count, snapshots the owner's name and email onto the record, persists it,
// and appends one history entry. The count-then-insert sequence is not
// serialized; concurrent creates can be assigned the same code.
func (s *businessService) CreateBusiness(ctx context.Context, req dto.CreateBusinessRequest, creatorUserID string) (*domain.Business, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	totalCount, err := s.businessRepo.CountBusinesses(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count businesses: %w", err)
	}
	businessCode := nextSequentialCode(businessCodePrefix, totalCount)

	owner, err := s.userRepo.FindUserByID(ctx, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("user %s not found: %w", creatorUserID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to resolve creator %s: %w", creatorUserID, err)
	}

	business := domain.Business{
		BusinessID:   uuid.NewString(),
		BusinessCode: businessCode,
		Name:         req.Name,
		Type:         domain.ParseBusinessType(req.Type),
		PhoneNumber:  req.PhoneNumber,
		OwnerUserID:  creatorUserID,
		// Copy-on-create snapshots; never re-synced if the user is renamed.
		OwnerUserName: owner.Username,
		Email:         owner.Email,
		CreatedOn:     time.Now().UTC(),
		InvoiceIDs:    []string{},
	}
	if req.Address != nil {
		business.Address = domain.Address{
			Country:    req.Address.Country,
			City:       req.Address.City,
			PostalCode: req.Address.PostalCode,
			Building:   req.Address.Building,
			Street:     req.Address.Street,
		}
	}

	if err := s.businessRepo.SaveBusiness(ctx, business); err != nil {
		return nil, fmt.Errorf("failed to save business: %w", err)
	}

	// The business write above is already committed; a history failure
	// surfaces to the caller but is never compensated.
	_, err = s.history.AppendHistory(ctx, portssvc.AppendHistoryParams{
		TargetID:    business.BusinessID,
		ActorUserID: creatorUserID,
		ActorName:   owner.Username,
		Type:        domain.HistoryTypeBusiness,
		Action:      "Created",
		Description: fmt.Sprintf("Business %s created", req.Name),
		BusinessID:  business.BusinessID,
	})
	if err != nil {
		return nil, fmt.Errorf("business %s created but recording history failed: %w", business.BusinessCode, err)
	}

	logger.Info("Business created",
		slog.String("business_id", business.BusinessID),
		slog.String("business_code", business.BusinessCode),
	)
	return &business, nil
}

// ListBusinesses lists businesses visible to the caller.
func (s *businessService) ListBusinesses(ctx context.Context, userID string, role domain.UserRole) ([]domain.Business, error) {
	businesses, err := s.businessRepo.FindBusinesses(ctx, ownerScopeFor(userID, role))
	if err != nil {
		return nil, fmt.Errorf("failed to list businesses: %w", err)
	}
	return businesses, nil
}

// GetBusinessByID retrieves a business by ID.
func (s *businessService) GetBusinessByID(ctx context.Context, businessID string) (*domain.Business, error) {
	business, err := s.businessRepo.FindBusinessByID(ctx, businessID)
	if err != nil {
		return nil, fmt.Errorf("failed to get business %s: %w", businessID, err)
	}
	return business, nil
}

// GetBusinessDetails retrieves the detail view. Unlike the stored snapshot,
// the owner's name and email are resolved live here, with "-" fallbacks when
// the owner no longer resolves.
func (s *businessService) GetBusinessDetails(ctx context.Context, businessID string) (*dto.BusinessDetailsResponse, error) {
	business, err := s.businessRepo.FindBusinessByID(ctx, businessID)
	if err != nil {
		return nil, fmt.Errorf("failed to get business %s: %w", businessID, err)
	}

	username, email := "-", "-"
	if owner, err := s.userRepo.FindUserByID(ctx, business.OwnerUserID); err == nil {
		username = owner.Username
		email = owner.Email
	}

	return &dto.BusinessDetailsResponse{
		Name:         business.Name,
		Type:         string(business.Type),
		PhoneNumber:  business.PhoneNumber,
		BusinessCode: business.BusinessCode,
		Address:      business.Address,
		Username:     username,
		Email:        email,
		CreatedOn:    business.CreatedOn,
	}, nil
}

// SearchBusinesses lists visible businesses whose name contains the query.
// An empty query falls back to the plain visible list.
func (s *businessService) SearchBusinesses(ctx context.Context, query, userID string, role domain.UserRole) ([]domain.Business, error) {
	if query == "" {
		return s.ListBusinesses(ctx, userID, role)
	}
	businesses, err := s.businessRepo.SearchBusinessesByName(ctx, ownerScopeFor(userID, role), query)
	if err != nil {
		return nil, fmt.Errorf("failed to search businesses: %w", err)
	}
	return businesses, nil
}

// ListBusinessesPaginated lists a page of visible businesses. The total count
// reflects the visible set before pagination.
func (s *businessService) ListBusinessesPaginated(ctx context.Context, params dto.ListBusinessesParams, userID string, role domain.UserRole) (*dto.PaginatedBusinessesResponse, error) {
	page := params.Page
	if page < 1 {
		page = 1
	}
	pageSize := params.PageSize
	if pageSize <= 0 {
		pageSize = 15
	}

	businesses, total, err := s.businessRepo.FindBusinessesPaginated(ctx, ownerScopeFor(userID, role), pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list businesses paginated: %w", err)
	}

	return &dto.PaginatedBusinessesResponse{
		Data:  dto.ToBusinessResponses(businesses),
		Total: total,
	}, nil
}

// GetBusinessHistory lists all ledger entries of a business, newest first.
func (s *businessService) GetBusinessHistory(ctx context.Context, businessID string) ([]domain.History, error) {
	if _, err := s.businessRepo.FindBusinessByID(ctx, businessID); err != nil {
		return nil, fmt.Errorf("failed to get business %s: %w", businessID, err)
	}
	return s.history.ListHistoryByBusinessID(ctx, businessID)
}
