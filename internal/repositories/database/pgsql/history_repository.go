package pgsql

import (
	"context"
	"fmt"

	"github.com/bizdesk/business_management_app/internal/core/domain"
	portsrepo "github.com/bizdesk/business_management_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxHistoryRepository struct {
	db *pgxpool.Pool
}

func newPgxHistoryRepository(db *pgxpool.Pool) portsrepo.HistoryRepositoryFacade {
	return &PgxHistoryRepository{db: db}
}

var _ portsrepo.HistoryRepositoryFacade = (*PgxHistoryRepository)(nil)

const historyColumns = `
    history_id, business_id, business_code, description,
    target_id, target_name, type,
    created_by_user_id, created_by_name, created_by_on, date
`

func (r *PgxHistoryRepository) SaveHistory(ctx context.Context, entry domain.History) error {
	query := `
        INSERT INTO histories (` + historyColumns + `)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
    `
	_, err := r.db.Exec(ctx, query,
		entry.HistoryID,
		entry.BusinessID,
		entry.BusinessCode,
		entry.Description,
		entry.Target.ID,
		entry.Target.Name,
		string(entry.Type),
		entry.CreatedBy.UserID,
		entry.CreatedBy.Name,
		entry.CreatedBy.CreatedOn,
		entry.Date,
	)
	if err != nil {
		return fmt.Errorf("failed to save history entry: %w", err)
	}
	return nil
}

func (r *PgxHistoryRepository) FindHistoryByBusinessID(ctx context.Context, businessID string) ([]domain.History, error) {
	query := `
        SELECT ` + historyColumns + `
        FROM histories
        WHERE business_id = $1
        ORDER BY date DESC;
    `
	rows, err := r.db.Query(ctx, query, businessID)
	if err != nil {
		return nil, fmt.Errorf("failed to query history for business %s: %w", businessID, err)
	}
	defer rows.Close()

	return collectHistoryRows(rows)
}

func (r *PgxHistoryRepository) FindHistoryByBusinessCodeAndType(ctx context.Context, businessCode string, entryType domain.HistoryType) ([]domain.History, error) {
	query := `
        SELECT ` + historyColumns + `
        FROM histories
        WHERE business_code = $1 AND type = $2
        ORDER BY date DESC;
    `
	rows, err := r.db.Query(ctx, query, businessCode, string(entryType))
	if err != nil {
		return nil, fmt.Errorf("failed to query history for business code %s: %w", businessCode, err)
	}
	defer rows.Close()

	return collectHistoryRows(rows)
}

func collectHistoryRows(rows pgx.Rows) ([]domain.History, error) {
	entries := []domain.History{}
	for rows.Next() {
		var entry domain.History
		var entryType string
		err := rows.Scan(
			&entry.HistoryID,
			&entry.BusinessID,
			&entry.BusinessCode,
			&entry.Description,
			&entry.Target.ID,
			&entry.Target.Name,
			&entryType,
			&entry.CreatedBy.UserID,
			&entry.CreatedBy.Name,
			&entry.CreatedBy.CreatedOn,
			&entry.Date,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan history row: %w", err)
		}
		entry.Type = domain.HistoryType(entryType)
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed reading history rows: %w", err)
	}
	return entries, nil
}
