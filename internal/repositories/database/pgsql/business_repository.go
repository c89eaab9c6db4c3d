package pgsql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/bizdesk/business_management_app/internal/apperrors"
	"github.com/bizdesk/business_management_app/internal/core/domain"
	portsrepo "github.com/bizdesk/business_management_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxBusinessRepository struct {
	db *pgxpool.Pool
}

func newPgxBusinessRepository(db *pgxpool.Pool) portsrepo.BusinessRepositoryFacade {
	return &PgxBusinessRepository{db: db}
}

var _ portsrepo.BusinessRepositoryFacade = (*PgxBusinessRepository)(nil)

const businessColumns = `
    business_id, business_code, name, type, address, phone_number,
    owner_user_id, owner_user_name, email, created_on, invoice_ids
`

func (r *PgxBusinessRepository) SaveBusiness(ctx context.Context, business domain.Business) error {
	addressJSON, err := json.Marshal(business.Address)
	if err != nil {
		return fmt.Errorf("failed to marshal business address: %w", err)
	}

	query := `
        INSERT INTO businesses (` + businessColumns + `)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
    `
	_, err = r.db.Exec(ctx, query,
		business.BusinessID,
		business.BusinessCode,
		business.Name,
		string(business.Type),
		addressJSON,
		business.PhoneNumber,
		business.OwnerUserID,
		business.OwnerUserName,
		business.Email,
		business.CreatedOn,
		business.InvoiceIDs,
	)
	if err != nil {
		return fmt.Errorf("failed to save business: %w", err)
	}
	return nil
}

func (r *PgxBusinessRepository) FindBusinessByID(ctx context.Context, businessID string) (*domain.Business, error) {
	query := `SELECT ` + businessColumns + ` FROM businesses WHERE business_id = $1;`

	business, err := scanBusinessRow(r.db.QueryRow(ctx, query, businessID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find business %s: %w", businessID, err)
	}
	return business, nil
}

// FindBusinesses lists businesses created by ownerUserID, oldest first. An
// empty ownerUserID removes the filter and lists every business.
func (r *PgxBusinessRepository) FindBusinesses(ctx context.Context, ownerUserID string) ([]domain.Business, error) {
	query := `
        SELECT ` + businessColumns + `
        FROM businesses
        WHERE ($1 = '' OR owner_user_id = $1)
        ORDER BY created_on ASC;
    `
	rows, err := r.db.Query(ctx, query, ownerUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to query businesses: %w", err)
	}
	defer rows.Close()

	return collectBusinessRows(rows)
}

func (r *PgxBusinessRepository) FindBusinessesPaginated(ctx context.Context, ownerUserID string, limit, offset int) ([]domain.Business, int64, error) {
	countQuery := `SELECT COUNT(*) FROM businesses WHERE ($1 = '' OR owner_user_id = $1);`
	var total int64
	if err := r.db.QueryRow(ctx, countQuery, ownerUserID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count visible businesses: %w", err)
	}

	query := `
        SELECT ` + businessColumns + `
        FROM businesses
        WHERE ($1 = '' OR owner_user_id = $1)
        ORDER BY created_on ASC
        LIMIT $2 OFFSET $3;
    `
	rows, err := r.db.Query(ctx, query, ownerUserID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query businesses page: %w", err)
	}
	defer rows.Close()

	businesses, err := collectBusinessRows(rows)
	if err != nil {
		return nil, 0, err
	}
	return businesses, total, nil
}

func (r *PgxBusinessRepository) SearchBusinessesByName(ctx context.Context, ownerUserID, nameQuery string) ([]domain.Business, error) {
	query := `
        SELECT ` + businessColumns + `
        FROM businesses
        WHERE ($1 = '' OR owner_user_id = $1)
          AND name ILIKE '%' || $2 || '%'
        ORDER BY created_on ASC;
    `
	rows, err := r.db.Query(ctx, query, ownerUserID, nameQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to search businesses: %w", err)
	}
	defer rows.Close()

	return collectBusinessRows(rows)
}

func (r *PgxBusinessRepository) CountBusinesses(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM businesses;`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count businesses: %w", err)
	}
	return count, nil
}

func (r *PgxBusinessRepository) AppendInvoiceID(ctx context.Context, businessID, invoiceID string) error {
	query := `
        UPDATE businesses
        SET invoice_ids = array_append(invoice_ids, $2)
        WHERE business_id = $1;
    `
	tag, err := r.db.Exec(ctx, query, businessID, invoiceID)
	if err != nil {
		return fmt.Errorf("failed to append invoice to business %s: %w", businessID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func scanBusinessRow(row pgx.Row) (*domain.Business, error) {
	var business domain.Business
	var businessType string
	var addressJSON []byte
	err := row.Scan(
		&business.BusinessID,
		&business.BusinessCode,
		&business.Name,
		&businessType,
		&addressJSON,
		&business.PhoneNumber,
		&business.OwnerUserID,
		&business.OwnerUserName,
		&business.Email,
		&business.CreatedOn,
		&business.InvoiceIDs,
	)
	if err != nil {
		return nil, err
	}
	business.Type = domain.ParseBusinessType(businessType)
	if len(addressJSON) > 0 {
		if err := json.Unmarshal(addressJSON, &business.Address); err != nil {
			return nil, fmt.Errorf("failed to unmarshal business address: %w", err)
		}
	}
	if business.InvoiceIDs == nil {
		business.InvoiceIDs = []string{}
	}
	return &business, nil
}

func collectBusinessRows(rows pgx.Rows) ([]domain.Business, error) {
	businesses := []domain.Business{}
	for rows.Next() {
		business, err := scanBusinessRow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan business row: %w", err)
		}
		businesses = append(businesses, *business)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed reading business rows: %w", err)
	}
	return businesses, nil
}
