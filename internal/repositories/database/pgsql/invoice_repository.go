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

type PgxInvoiceRepository struct {
	db *pgxpool.Pool
}

func newPgxInvoiceRepository(db *pgxpool.Pool) portsrepo.InvoiceRepositoryFacade {
	return &PgxInvoiceRepository{db: db}
}

var _ portsrepo.InvoiceRepositoryFacade = (*PgxInvoiceRepository)(nil)

const invoiceColumns = `
    invoice_id, invoice_code, business_id, business_code, business_name,
    services, amount, vat_percentage, total_amount,
    start_date, due_date, created_at, status
`

func (r *PgxInvoiceRepository) SaveInvoice(ctx context.Context, invoice domain.Invoice) error {
	servicesJSON, err := json.Marshal(invoice.Services)
	if err != nil {
		return fmt.Errorf("failed to marshal invoice services: %w", err)
	}

	query := `
        INSERT INTO invoices (` + invoiceColumns + `)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
    `
	_, err = r.db.Exec(ctx, query,
		invoice.InvoiceID,
		invoice.InvoiceCode,
		invoice.BusinessID,
		invoice.BusinessCode,
		invoice.BusinessName,
		servicesJSON,
		invoice.Amount,
		invoice.VatPercentage,
		invoice.TotalAmount,
		invoice.StartDate,
		invoice.DueDate,
		invoice.CreatedAt,
		string(invoice.Status),
	)
	if err != nil {
		return fmt.Errorf("failed to save invoice: %w", err)
	}
	return nil
}

func (r *PgxInvoiceRepository) FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE invoice_id = $1;`

	invoice, err := scanInvoiceRow(r.db.QueryRow(ctx, query, invoiceID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find invoice %s: %w", invoiceID, err)
	}
	return invoice, nil
}

func (r *PgxInvoiceRepository) FindInvoicesByBusinessID(ctx context.Context, businessID string) ([]domain.Invoice, error) {
	query := `
        SELECT ` + invoiceColumns + `
        FROM invoices
        WHERE business_id = $1
        ORDER BY created_at ASC;
    `
	rows, err := r.db.Query(ctx, query, businessID)
	if err != nil {
		return nil, fmt.Errorf("failed to query invoices for business %s: %w", businessID, err)
	}
	defer rows.Close()

	return collectInvoiceRows(rows)
}

func (r *PgxInvoiceRepository) CountInvoices(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM invoices;`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count invoices: %w", err)
	}
	return count, nil
}

func (r *PgxInvoiceRepository) UpdateInvoice(ctx context.Context, invoice domain.Invoice) error {
	servicesJSON, err := json.Marshal(invoice.Services)
	if err != nil {
		return fmt.Errorf("failed to marshal invoice services: %w", err)
	}

	query := `
        UPDATE invoices
        SET business_id = $2,
            business_code = $3,
            business_name = $4,
            services = $5,
            amount = $6,
            vat_percentage = $7,
            total_amount = $8,
            start_date = $9,
            due_date = $10,
            status = $11
        WHERE invoice_id = $1;
    `
	tag, err := r.db.Exec(ctx, query,
		invoice.InvoiceID,
		invoice.BusinessID,
		invoice.BusinessCode,
		invoice.BusinessName,
		servicesJSON,
		invoice.Amount,
		invoice.VatPercentage,
		invoice.TotalAmount,
		invoice.StartDate,
		invoice.DueDate,
		string(invoice.Status),
	)
	if err != nil {
		return fmt.Errorf("failed to update invoice %s: %w", invoice.InvoiceID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxInvoiceRepository) MarkInvoiceDeleted(ctx context.Context, invoiceID string) error {
	query := `UPDATE invoices SET status = $2 WHERE invoice_id = $1;`

	tag, err := r.db.Exec(ctx, query, invoiceID, string(domain.InvoiceStatusDeleted))
	if err != nil {
		return fmt.Errorf("failed to mark invoice %s deleted: %w", invoiceID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FilterInvoices lists Active invoices, optionally narrowed by service name
// and a start/due date window. The service name must equal some line's name;
// a hit on any line qualifies the invoice.
func (r *PgxInvoiceRepository) FilterInvoices(ctx context.Context, filter portsrepo.InvoiceFilter) ([]domain.Invoice, error) {
	query := `
        SELECT ` + invoiceColumns + `
        FROM invoices
        WHERE status = $1
          AND ($2 = '' OR EXISTS (
              SELECT 1 FROM jsonb_array_elements(services) AS svc
              WHERE svc->>'name' = $2
          ))
          AND ($3::timestamptz IS NULL OR start_date >= $3)
          AND ($4::timestamptz IS NULL OR due_date <= $4)
        ORDER BY created_at ASC;
    `
	rows, err := r.db.Query(ctx, query,
		string(domain.InvoiceStatusActive),
		filter.ServiceName,
		filter.StartDate,
		filter.EndDate,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to filter invoices: %w", err)
	}
	defer rows.Close()

	return collectInvoiceRows(rows)
}

func (r *PgxInvoiceRepository) FindInvoicesPaginated(ctx context.Context, filter portsrepo.InvoicePageFilter) ([]domain.Invoice, int64, error) {
	const matchClause = `
        status = $1
          AND ($2 = '' OR invoice_code ILIKE '%' || $2 || '%'
               OR business_name ILIKE '%' || $2 || '%'
               OR EXISTS (
                   SELECT 1 FROM jsonb_array_elements(services) AS svc
                   WHERE svc->>'name' ILIKE '%' || $2 || '%'
               ))
          AND ($3::timestamptz IS NULL OR start_date >= $3)
          AND ($4::timestamptz IS NULL OR due_date <= $4)
    `

	countQuery := `SELECT COUNT(*) FROM invoices WHERE ` + matchClause + `;`
	var total int64
	err := r.db.QueryRow(ctx, countQuery,
		string(domain.InvoiceStatusActive),
		filter.Search,
		filter.StartDate,
		filter.EndDate,
	).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count filtered invoices: %w", err)
	}

	query := `
        SELECT ` + invoiceColumns + `
        FROM invoices
        WHERE ` + matchClause + `
        ORDER BY created_at ASC
        LIMIT $5 OFFSET $6;
    `
	rows, err := r.db.Query(ctx, query,
		string(domain.InvoiceStatusActive),
		filter.Search,
		filter.StartDate,
		filter.EndDate,
		filter.Limit,
		filter.Offset,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query invoices page: %w", err)
	}
	defer rows.Close()

	invoices, err := collectInvoiceRows(rows)
	if err != nil {
		return nil, 0, err
	}
	return invoices, total, nil
}

func scanInvoiceRow(row pgx.Row) (*domain.Invoice, error) {
	var invoice domain.Invoice
	var servicesJSON []byte
	var status string
	err := row.Scan(
		&invoice.InvoiceID,
		&invoice.InvoiceCode,
		&invoice.BusinessID,
		&invoice.BusinessCode,
		&invoice.BusinessName,
		&servicesJSON,
		&invoice.Amount,
		&invoice.VatPercentage,
		&invoice.TotalAmount,
		&invoice.StartDate,
		&invoice.DueDate,
		&invoice.CreatedAt,
		&status,
	)
	if err != nil {
		return nil, err
	}
	invoice.Status = domain.InvoiceStatus(status)
	if len(servicesJSON) > 0 {
		if err := json.Unmarshal(servicesJSON, &invoice.Services); err != nil {
			return nil, fmt.Errorf("failed to unmarshal invoice services: %w", err)
		}
	}
	if invoice.Services == nil {
		invoice.Services = []domain.ServiceLine{}
	}
	return &invoice, nil
}

func collectInvoiceRows(rows pgx.Rows) ([]domain.Invoice, error) {
	invoices := []domain.Invoice{}
	for rows.Next() {
		invoice, err := scanInvoiceRow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan invoice row: %w", err)
		}
		invoices = append(invoices, *invoice)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed reading invoice rows: %w", err)
	}
	return invoices, nil
}
