package repositories

import (
	"context"

	"github.com/bizdesk/business_management_app/internal/core/domain"
)

// HistoryRepositoryFacade defines persistence operations for the append-only
// history ledger. There is no update or delete: entries are immutable.
type HistoryRepositoryFacade interface {
	// SaveHistory appends a new history entry.
	SaveHistory(ctx context.Context, entry domain.History) error

	// FindHistoryByBusinessID lists all entries for a business, newest first.
	FindHistoryByBusinessID(ctx context.Context, businessID string) ([]domain.History, error)

	// FindHistoryByBusinessCodeAndType lists entries of one type keyed by the
	// denormalized business code, newest first. This is the join key for the
	// invoice-history view.
	FindHistoryByBusinessCodeAndType(ctx context.Context, businessCode string, entryType domain.HistoryType) ([]domain.History, error)
}
