package pgsql

import (
	portsrepo "github.com/bizdesk/business_management_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires the pgx-backed repositories against one shared
// connection pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:     newPgxUserRepository(dbPool),
		BusinessRepo: newPgxBusinessRepository(dbPool),
		InvoiceRepo:  newPgxInvoiceRepository(dbPool),
		HistoryRepo:  newPgxHistoryRepository(dbPool),
	}
}
