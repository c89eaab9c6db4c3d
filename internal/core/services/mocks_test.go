package services_test

import (
	"context"

	"github.com/bizdesk/business_management_app/internal/core/domain"
	portsrepo "github.com/bizdesk/business_management_app/internal/core/ports/repositories"
	portssvc "github.com/bizdesk/business_management_app/internal/core/ports/services"
	"github.com/stretchr/testify/mock"
)

// --- Mock UserRepository ---

type MockUserRepository struct {
	mock.Mock
	SaveUserFn        func(ctx context.Context, user domain.User) error
	FindUserByIDFn    func(ctx context.Context, userID string) (*domain.User, error)
	FindUserByEmailFn func(ctx context.Context, email string) (*domain.User, error)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	if m.SaveUserFn != nil {
		return m.SaveUserFn(ctx, user)
	}
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	if m.FindUserByIDFn != nil {
		return m.FindUserByIDFn(ctx, userID)
	}
	args := m.Called(ctx, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.FindUserByEmailFn != nil {
		return m.FindUserByEmailFn(ctx, email)
	}
	args := m.Called(ctx, email)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

var _ portsrepo.UserRepositoryFacade = (*MockUserRepository)(nil)

// --- Mock BusinessRepository ---

type MockBusinessRepository struct {
	mock.Mock
	SaveBusinessFn            func(ctx context.Context, business domain.Business) error
	FindBusinessByIDFn        func(ctx context.Context, businessID string) (*domain.Business, error)
	FindBusinessesFn          func(ctx context.Context, ownerUserID string) ([]domain.Business, error)
	FindBusinessesPaginatedFn func(ctx context.Context, ownerUserID string, limit, offset int) ([]domain.Business, int64, error)
	SearchBusinessesByNameFn  func(ctx context.Context, ownerUserID, nameQuery string) ([]domain.Business, error)
	CountBusinessesFn         func(ctx context.Context) (int64, error)
	AppendInvoiceIDFn         func(ctx context.Context, businessID, invoiceID string) error
}

func (m *MockBusinessRepository) SaveBusiness(ctx context.Context, business domain.Business) error {
	if m.SaveBusinessFn != nil {
		return m.SaveBusinessFn(ctx, business)
	}
	args := m.Called(ctx, business)
	return args.Error(0)
}

func (m *MockBusinessRepository) FindBusinessByID(ctx context.Context, businessID string) (*domain.Business, error) {
	if m.FindBusinessByIDFn != nil {
		return m.FindBusinessByIDFn(ctx, businessID)
	}
	args := m.Called(ctx, businessID)
	var business *domain.Business
	if args.Get(0) != nil {
		business = args.Get(0).(*domain.Business)
	}
	return business, args.Error(1)
}

func (m *MockBusinessRepository) FindBusinesses(ctx context.Context, ownerUserID string) ([]domain.Business, error) {
	if m.FindBusinessesFn != nil {
		return m.FindBusinessesFn(ctx, ownerUserID)
	}
	args := m.Called(ctx, ownerUserID)
	var businesses []domain.Business
	if args.Get(0) != nil {
		businesses = args.Get(0).([]domain.Business)
	}
	return businesses, args.Error(1)
}

func (m *MockBusinessRepository) FindBusinessesPaginated(ctx context.Context, ownerUserID string, limit, offset int) ([]domain.Business, int64, error) {
	if m.FindBusinessesPaginatedFn != nil {
		return m.FindBusinessesPaginatedFn(ctx, ownerUserID, limit, offset)
	}
	args := m.Called(ctx, ownerUserID, limit, offset)
	var businesses []domain.Business
	if args.Get(0) != nil {
		businesses = args.Get(0).([]domain.Business)
	}
	return businesses, args.Get(1).(int64), args.Error(2)
}

func (m *MockBusinessRepository) SearchBusinessesByName(ctx context.Context, ownerUserID, nameQuery string) ([]domain.Business, error) {
	if m.SearchBusinessesByNameFn != nil {
		return m.SearchBusinessesByNameFn(ctx, ownerUserID, nameQuery)
	}
	args := m.Called(ctx, ownerUserID, nameQuery)
	var businesses []domain.Business
	if args.Get(0) != nil {
		businesses = args.Get(0).([]domain.Business)
	}
	return businesses, args.Error(1)
}

func (m *MockBusinessRepository) CountBusinesses(ctx context.Context) (int64, error) {
	if m.CountBusinessesFn != nil {
		return m.CountBusinessesFn(ctx)
	}
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBusinessRepository) AppendInvoiceID(ctx context.Context, businessID, invoiceID string) error {
	if m.AppendInvoiceIDFn != nil {
		return m.AppendInvoiceIDFn(ctx, businessID, invoiceID)
	}
	args := m.Called(ctx, businessID, invoiceID)
	return args.Error(0)
}

var _ portsrepo.BusinessRepositoryFacade = (*MockBusinessRepository)(nil)

// --- Mock InvoiceRepository ---

type MockInvoiceRepository struct {
	mock.Mock
	SaveInvoiceFn            func(ctx context.Context, invoice domain.Invoice) error
	FindInvoiceByIDFn        func(ctx context.Context, invoiceID string) (*domain.Invoice, error)
	FindInvoicesByBusinessFn func(ctx context.Context, businessID string) ([]domain.Invoice, error)
	CountInvoicesFn          func(ctx context.Context) (int64, error)
	UpdateInvoiceFn          func(ctx context.Context, invoice domain.Invoice) error
	MarkInvoiceDeletedFn     func(ctx context.Context, invoiceID string) error
	FilterInvoicesFn         func(ctx context.Context, filter portsrepo.InvoiceFilter) ([]domain.Invoice, error)
	FindInvoicesPaginatedFn  func(ctx context.Context, filter portsrepo.InvoicePageFilter) ([]domain.Invoice, int64, error)
}

func (m *MockInvoiceRepository) SaveInvoice(ctx context.Context, invoice domain.Invoice) error {
	if m.SaveInvoiceFn != nil {
		return m.SaveInvoiceFn(ctx, invoice)
	}
	args := m.Called(ctx, invoice)
	return args.Error(0)
}

func (m *MockInvoiceRepository) FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	if m.FindInvoiceByIDFn != nil {
		return m.FindInvoiceByIDFn(ctx, invoiceID)
	}
	args := m.Called(ctx, invoiceID)
	var invoice *domain.Invoice
	if args.Get(0) != nil {
		invoice = args.Get(0).(*domain.Invoice)
	}
	return invoice, args.Error(1)
}

func (m *MockInvoiceRepository) FindInvoicesByBusinessID(ctx context.Context, businessID string) ([]domain.Invoice, error) {
	if m.FindInvoicesByBusinessFn != nil {
		return m.FindInvoicesByBusinessFn(ctx, businessID)
	}
	args := m.Called(ctx, businessID)
	var invoices []domain.Invoice
	if args.Get(0) != nil {
		invoices = args.Get(0).([]domain.Invoice)
	}
	return invoices, args.Error(1)
}

func (m *MockInvoiceRepository) CountInvoices(ctx context.Context) (int64, error) {
	if m.CountInvoicesFn != nil {
		return m.CountInvoicesFn(ctx)
	}
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockInvoiceRepository) UpdateInvoice(ctx context.Context, invoice domain.Invoice) error {
	if m.UpdateInvoiceFn != nil {
		return m.UpdateInvoiceFn(ctx, invoice)
	}
	args := m.Called(ctx, invoice)
	return args.Error(0)
}

func (m *MockInvoiceRepository) MarkInvoiceDeleted(ctx context.Context, invoiceID string) error {
	if m.MarkInvoiceDeletedFn != nil {
		return m.MarkInvoiceDeletedFn(ctx, invoiceID)
	}
	args := m.Called(ctx, invoiceID)
	return args.Error(0)
}

func (m *MockInvoiceRepository) FilterInvoices(ctx context.Context, filter portsrepo.InvoiceFilter) ([]domain.Invoice, error) {
	if m.FilterInvoicesFn != nil {
		return m.FilterInvoicesFn(ctx, filter)
	}
	args := m.Called(ctx, filter)
	var invoices []domain.Invoice
	if args.Get(0) != nil {
		invoices = args.Get(0).([]domain.Invoice)
	}
	return invoices, args.Error(1)
}

func (m *MockInvoiceRepository) FindInvoicesPaginated(ctx context.Context, filter portsrepo.InvoicePageFilter) ([]domain.Invoice, int64, error) {
	if m.FindInvoicesPaginatedFn != nil {
		return m.FindInvoicesPaginatedFn(ctx, filter)
	}
	args := m.Called(ctx, filter)
	var invoices []domain.Invoice
	if args.Get(0) != nil {
		invoices = args.Get(0).([]domain.Invoice)
	}
	return invoices, args.Get(1).(int64), args.Error(2)
}

var _ portsrepo.InvoiceRepositoryFacade = (*MockInvoiceRepository)(nil)

// --- Mock HistoryRepository ---

type MockHistoryRepository struct {
	mock.Mock
	SaveHistoryFn                      func(ctx context.Context, entry domain.History) error
	FindHistoryByBusinessIDFn          func(ctx context.Context, businessID string) ([]domain.History, error)
	FindHistoryByBusinessCodeAndTypeFn func(ctx context.Context, businessCode string, entryType domain.HistoryType) ([]domain.History, error)
}

func (m *MockHistoryRepository) SaveHistory(ctx context.Context, entry domain.History) error {
	if m.SaveHistoryFn != nil {
		return m.SaveHistoryFn(ctx, entry)
	}
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockHistoryRepository) FindHistoryByBusinessID(ctx context.Context, businessID string) ([]domain.History, error) {
	if m.FindHistoryByBusinessIDFn != nil {
		return m.FindHistoryByBusinessIDFn(ctx, businessID)
	}
	args := m.Called(ctx, businessID)
	var entries []domain.History
	if args.Get(0) != nil {
		entries = args.Get(0).([]domain.History)
	}
	return entries, args.Error(1)
}

func (m *MockHistoryRepository) FindHistoryByBusinessCodeAndType(ctx context.Context, businessCode string, entryType domain.HistoryType) ([]domain.History, error) {
	if m.FindHistoryByBusinessCodeAndTypeFn != nil {
		return m.FindHistoryByBusinessCodeAndTypeFn(ctx, businessCode, entryType)
	}
	args := m.Called(ctx, businessCode, entryType)
	var entries []domain.History
	if args.Get(0) != nil {
		entries = args.Get(0).([]domain.History)
	}
	return entries, args.Error(1)
}

var _ portsrepo.HistoryRepositoryFacade = (*MockHistoryRepository)(nil)

// --- Mock HistoryService ---

// MockHistoryService records every appended entry so tests can assert on the
// ledger side effects of business and invoice operations.
type MockHistoryService struct {
	mock.Mock
	Appended        []portssvc.AppendHistoryParams
	AppendHistoryFn func(ctx context.Context, params portssvc.AppendHistoryParams) (*domain.History, error)
}

func (m *MockHistoryService) AppendHistory(ctx context.Context, params portssvc.AppendHistoryParams) (*domain.History, error) {
	m.Appended = append(m.Appended, params)
	if m.AppendHistoryFn != nil {
		return m.AppendHistoryFn(ctx, params)
	}
	return &domain.History{Description: params.Description, Type: params.Type}, nil
}

func (m *MockHistoryService) ListHistoryByBusinessID(ctx context.Context, businessID string) ([]domain.History, error) {
	args := m.Called(ctx, businessID)
	var entries []domain.History
	if args.Get(0) != nil {
		entries = args.Get(0).([]domain.History)
	}
	return entries, args.Error(1)
}

func (m *MockHistoryService) ListInvoiceHistoryByBusinessCode(ctx context.Context, businessCode string) ([]domain.History, error) {
	args := m.Called(ctx, businessCode)
	var entries []domain.History
	if args.Get(0) != nil {
		entries = args.Get(0).([]domain.History)
	}
	return entries, args.Error(1)
}

var _ portssvc.HistorySvcFacade = (*MockHistoryService)(nil)
