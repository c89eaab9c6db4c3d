package services

import (
	"context"

	"github.com/bizdesk/business_management_app/internal/core/domain"
)

// AppendHistoryParams carries everything needed to append one ledger entry.
// Description may be empty, in which case a default of the form
// "Entity {type} {action}" is used. ActorName may be empty or "Unknown", in
// which case the ledger resolves the display name from the identity store.
type AppendHistoryParams struct {
	TargetID    string
	ActorUserID string
	ActorName   string
	Type        domain.HistoryType
	Action      string
	Description string
	BusinessID  string
}

// HistoryAppenderSvc defines the write side of the audit ledger.
type HistoryAppenderSvc interface {
	// AppendHistory constructs and inserts one immutable ledger entry.
	AppendHistory(ctx context.Context, params AppendHistoryParams) (*domain.History, error)
}

// HistoryReaderSvc defines the query side of the audit ledger.
type HistoryReaderSvc interface {
	// ListHistoryByBusinessID lists all entries for a business, newest first.
	ListHistoryByBusinessID(ctx context.Context, businessID string) ([]domain.History, error)

	// ListInvoiceHistoryByBusinessCode lists Invoice entries keyed by the
	// denormalized business code, newest first.
	ListInvoiceHistoryByBusinessCode(ctx context.Context, businessCode string) ([]domain.History, error)
}

// HistorySvcFacade combines all history-related service interfaces
type HistorySvcFacade interface {
	HistoryAppenderSvc
	HistoryReaderSvc
}
