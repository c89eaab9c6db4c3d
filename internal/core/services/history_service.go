package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/bizdesk/business_management_app/internal/core/domain"
	portsrepo "github.com/bizdesk/business_management_app/internal/core/ports/repositories"
	portssvc "github.com/bizdesk/business_management_app/internal/core/ports/services"
	"github.com/bizdesk/business_management_app/internal/middleware"
	"github.com/google/uuid"
)

// unknownActorName is the sentinel stored when the acting user cannot be resolved.
const unknownActorName = "Unknown"

// historyService is the append-only audit ledger. Entries are inserted once
// and never updated or deleted.
type historyService struct {
	historyRepo  portsrepo.HistoryRepositoryFacade
	userRepo     portsrepo.UserRepositoryFacade
	businessRepo portsrepo.BusinessRepositoryFacade
}

// NewHistoryService creates the history ledger service. The user repository is
// used to resolve actor display names, the business repository to denormalize
// the owning business code onto each entry.
func NewHistoryService(
	historyRepo portsrepo.HistoryRepositoryFacade,
	userRepo portsrepo.UserRepositoryFacade,
	businessRepo portsrepo.BusinessRepositoryFacade,
) portssvc.HistorySvcFacade {
	return &historyService{
		historyRepo:  historyRepo,
		userRepo:     userRepo,
		businessRepo: businessRepo,
	}
}

var _ portssvc.HistorySvcFacade = (*historyService)(nil)

// AppendHistory constructs and inserts one ledger entry. The actor name is
// resolved synchronously through the identity store when the caller supplied
// none (or the "Unknown" sentinel); if that lookup fails too, the sentinel is
// stored. Storage errors propagate to the caller, but by then the primary
// write has already committed, so callers must not treat this as a rollback.
func (s *historyService) AppendHistory(ctx context.Context, params portssvc.AppendHistoryParams) (*domain.History, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	actorName := params.ActorName
	if actorName == "" || actorName == unknownActorName {
		user, err := s.userRepo.FindUserByID(ctx, params.ActorUserID)
		if err != nil || user == nil {
			logger.Warn("Could not resolve actor name for history entry", slog.String("actor_user_id", params.ActorUserID))
			actorName = unknownActorName
		} else {
			actorName = user.Username
		}
	}

	businessCode := ""
	if params.BusinessID != "" {
		business, err := s.businessRepo.FindBusinessByID(ctx, params.BusinessID)
		if err == nil {
			businessCode = business.BusinessCode
		}
	}

	description := params.Description
	if description == "" {
		description = fmt.Sprintf("Entity %s %s", params.Type, params.Action)
	}

	now := time.Now().UTC()
	entry := domain.History{
		HistoryID:    uuid.NewString(),
		BusinessID:   params.BusinessID,
		BusinessCode: businessCode,
		Description:  description,
		Target: domain.HistoryTarget{
			ID:   params.TargetID,
			Name: string(params.Type),
		},
		Type: params.Type,
		CreatedBy: domain.HistoryActor{
			UserID:    params.ActorUserID,
			Name:      actorName,
			CreatedOn: now,
		},
		Date: now,
	}

	if err := s.historyRepo.SaveHistory(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to append history entry: %w", err)
	}
	return &entry, nil
}

// ListHistoryByBusinessID lists all entries for a business, newest first.
func (s *historyService) ListHistoryByBusinessID(ctx context.Context, businessID string) ([]domain.History, error) {
	entries, err := s.historyRepo.FindHistoryByBusinessID(ctx, businessID)
	if err != nil {
		return nil, fmt.Errorf("failed to list history for business %s: %w", businessID, err)
	}
	return entries, nil
}

// ListInvoiceHistoryByBusinessCode lists Invoice entries keyed by the
// denormalized business code, newest first.
func (s *historyService) ListInvoiceHistoryByBusinessCode(ctx context.Context, businessCode string) ([]domain.History, error) {
	entries, err := s.historyRepo.FindHistoryByBusinessCodeAndType(ctx, businessCode, domain.HistoryTypeInvoice)
	if err != nil {
		return nil, fmt.Errorf("failed to list invoice history for business code %s: %w", businessCode, err)
	}
	return entries, nil
}
