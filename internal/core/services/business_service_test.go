package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/bizdesk/business_management_app/internal/apperrors"
	"github.com/bizdesk/business_management_app/internal/core/domain"
	portssvc "github.com/bizdesk/business_management_app/internal/core/ports/services"
	"github.com/bizdesk/business_management_app/internal/core/services"
	"github.com/bizdesk/business_management_app/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type BusinessServiceTestSuite struct {
	suite.Suite
	mockBusinessRepo *MockBusinessRepository
	mockUserRepo     *MockUserRepository
	mockHistory      *MockHistoryService
	service          portssvc.BusinessSvcFacade
	ctx              context.Context
}

func (s *BusinessServiceTestSuite) SetupTest() {
	s.mockBusinessRepo = new(MockBusinessRepository)
	s.mockUserRepo = new(MockUserRepository)
	s.mockHistory = new(MockHistoryService)
	s.service = services.NewBusinessService(s.mockBusinessRepo, s.mockUserRepo, s.mockHistory)
	s.ctx = context.Background()
}

func TestBusinessServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BusinessServiceTestSuite))
}

func (s *BusinessServiceTestSuite) TestCreateBusiness_AllocatesSequentialCode() {
	s.mockBusinessRepo.CountBusinessesFn = func(ctx context.Context) (int64, error) { return 2, nil }
	s.mockBusinessRepo.SaveBusinessFn = func(ctx context.Context, business domain.Business) error { return nil }
	s.mockUserRepo.FindUserByIDFn = func(ctx context.Context, userID string) (*domain.User, error) {
		return &domain.User{UserID: userID, Username: "alice", Email: "alice@example.com"}, nil
	}

	business, err := s.service.CreateBusiness(s.ctx, dto.CreateBusinessRequest{
		Name: "Acme Ltd",
		Type: "Limited",
	}, "u-1")

	s.Require().NoError(err)
	assert.Equal(s.T(), "BE-003", business.BusinessCode)
	assert.Equal(s.T(), domain.BusinessTypeLimited, business.Type)
	assert.NotEmpty(s.T(), business.BusinessID)
	assert.Empty(s.T(), business.InvoiceIDs)
	assert.NotNil(s.T(), business.InvoiceIDs)
}

func (s *BusinessServiceTestSuite) TestCreateBusiness_SnapshotsOwner() {
	s.mockBusinessRepo.CountBusinessesFn = func(ctx context.Context) (int64, error) { return 0, nil }
	s.mockBusinessRepo.SaveBusinessFn = func(ctx context.Context, business domain.Business) error { return nil }
	s.mockUserRepo.FindUserByIDFn = func(ctx context.Context, userID string) (*domain.User, error) {
		return &domain.User{UserID: userID, Username: "alice", Email: "alice@example.com"}, nil
	}

	business, err := s.service.CreateBusiness(s.ctx, dto.CreateBusinessRequest{Name: "Acme"}, "u-1")

	s.Require().NoError(err)
	assert.Equal(s.T(), "u-1", business.OwnerUserID)
	assert.Equal(s.T(), "alice", business.OwnerUserName)
	assert.Equal(s.T(), "alice@example.com", business.Email)
}

func (s *BusinessServiceTestSuite) TestCreateBusiness_AppendsHistory() {
	s.mockBusinessRepo.CountBusinessesFn = func(ctx context.Context) (int64, error) { return 0, nil }
	s.mockBusinessRepo.SaveBusinessFn = func(ctx context.Context, business domain.Business) error { return nil }
	s.mockUserRepo.FindUserByIDFn = func(ctx context.Context, userID string) (*domain.User, error) {
		return &domain.User{UserID: userID, Username: "alice"}, nil
	}

	business, err := s.service.CreateBusiness(s.ctx, dto.CreateBusinessRequest{Name: "Acme"}, "u-1")

	s.Require().NoError(err)
	s.Require().Len(s.mockHistory.Appended, 1)
	appended := s.mockHistory.Appended[0]
	assert.Equal(s.T(), domain.HistoryTypeBusiness, appended.Type)
	assert.Equal(s.T(), "Created", appended.Action)
	assert.Equal(s.T(), "Business Acme created", appended.Description)
	assert.Equal(s.T(), business.BusinessID, appended.TargetID)
	assert.Equal(s.T(), business.BusinessID, appended.BusinessID)
}

func (s *BusinessServiceTestSuite) TestCreateBusiness_CreatorNotFound() {
	s.mockBusinessRepo.CountBusinessesFn = func(ctx context.Context) (int64, error) { return 0, nil }
	s.mockUserRepo.FindUserByIDFn = func(ctx context.Context, userID string) (*domain.User, error) {
		return nil, apperrors.ErrNotFound
	}

	business, err := s.service.CreateBusiness(s.ctx, dto.CreateBusinessRequest{Name: "Acme"}, "ghost")

	assert.Nil(s.T(), business)
	assert.True(s.T(), errors.Is(err, apperrors.ErrNotFound))
	assert.Empty(s.T(), s.mockHistory.Appended)
}

func (s *BusinessServiceTestSuite) TestCreateBusiness_HistoryFailureSurfaces() {
	s.mockBusinessRepo.CountBusinessesFn = func(ctx context.Context) (int64, error) { return 0, nil }
	s.mockBusinessRepo.SaveBusinessFn = func(ctx context.Context, business domain.Business) error { return nil }
	s.mockUserRepo.FindUserByIDFn = func(ctx context.Context, userID string) (*domain.User, error) {
		return &domain.User{UserID: userID, Username: "alice"}, nil
	}
	s.mockHistory.AppendHistoryFn = func(ctx context.Context, params portssvc.AppendHistoryParams) (*domain.History, error) {
		return nil, errors.New("ledger unavailable")
	}

	business, err := s.service.CreateBusiness(s.ctx, dto.CreateBusinessRequest{Name: "Acme"}, "u-1")

	assert.Nil(s.T(), business)
	s.Require().Error(err)
	assert.Contains(s.T(), err.Error(), "recording history failed")
}

func (s *BusinessServiceTestSuite) TestListBusinesses_AdminSeesAll() {
	var capturedScope string
	s.mockBusinessRepo.FindBusinessesFn = func(ctx context.Context, ownerUserID string) ([]domain.Business, error) {
		capturedScope = ownerUserID
		return []domain.Business{}, nil
	}

	_, err := s.service.ListBusinesses(s.ctx, "u-1", domain.RoleAdmin)

	s.Require().NoError(err)
	assert.Empty(s.T(), capturedScope)
}

func (s *BusinessServiceTestSuite) TestListBusinesses_StaffScopedToOwn() {
	var capturedScope string
	s.mockBusinessRepo.FindBusinessesFn = func(ctx context.Context, ownerUserID string) ([]domain.Business, error) {
		capturedScope = ownerUserID
		return []domain.Business{}, nil
	}

	_, err := s.service.ListBusinesses(s.ctx, "u-1", domain.RoleStaff)

	s.Require().NoError(err)
	assert.Equal(s.T(), "u-1", capturedScope)
}

func (s *BusinessServiceTestSuite) TestSearchBusinesses_EmptyQueryFallsBackToList() {
	listCalled := false
	s.mockBusinessRepo.FindBusinessesFn = func(ctx context.Context, ownerUserID string) ([]domain.Business, error) {
		listCalled = true
		return []domain.Business{}, nil
	}

	_, err := s.service.SearchBusinesses(s.ctx, "", "u-1", domain.RoleManager)

	s.Require().NoError(err)
	assert.True(s.T(), listCalled)
}

func (s *BusinessServiceTestSuite) TestListBusinessesPaginated_NormalizesPageParams() {
	var capturedLimit, capturedOffset int
	s.mockBusinessRepo.FindBusinessesPaginatedFn = func(ctx context.Context, ownerUserID string, limit, offset int) ([]domain.Business, int64, error) {
		capturedLimit, capturedOffset = limit, offset
		return []domain.Business{}, 0, nil
	}

	_, err := s.service.ListBusinessesPaginated(s.ctx, dto.ListBusinessesParams{Page: 0, PageSize: -1}, "u-1", domain.RoleAdmin)

	s.Require().NoError(err)
	assert.Equal(s.T(), 15, capturedLimit)
	assert.Equal(s.T(), 0, capturedOffset)
}

func (s *BusinessServiceTestSuite) TestListBusinessesPaginated_OffsetFromPage() {
	var capturedLimit, capturedOffset int
	s.mockBusinessRepo.FindBusinessesPaginatedFn = func(ctx context.Context, ownerUserID string, limit, offset int) ([]domain.Business, int64, error) {
		capturedLimit, capturedOffset = limit, offset
		return []domain.Business{{BusinessID: "b-1"}}, 31, nil
	}

	page, err := s.service.ListBusinessesPaginated(s.ctx, dto.ListBusinessesParams{Page: 3, PageSize: 10}, "u-1", domain.RoleAdmin)

	s.Require().NoError(err)
	assert.Equal(s.T(), 10, capturedLimit)
	assert.Equal(s.T(), 20, capturedOffset)
	assert.Equal(s.T(), int64(31), page.Total)
	assert.Len(s.T(), page.Data, 1)
}

func (s *BusinessServiceTestSuite) TestGetBusinessDetails_OwnerResolvedLive() {
	s.mockBusinessRepo.FindBusinessByIDFn = func(ctx context.Context, businessID string) (*domain.Business, error) {
		return &domain.Business{BusinessID: businessID, Name: "Acme", OwnerUserID: "u-1", OwnerUserName: "stale-name"}, nil
	}
	s.mockUserRepo.FindUserByIDFn = func(ctx context.Context, userID string) (*domain.User, error) {
		return &domain.User{UserID: userID, Username: "fresh-name", Email: "fresh@example.com"}, nil
	}

	details, err := s.service.GetBusinessDetails(s.ctx, "b-1")

	s.Require().NoError(err)
	assert.Equal(s.T(), "fresh-name", details.Username)
	assert.Equal(s.T(), "fresh@example.com", details.Email)
}

func (s *BusinessServiceTestSuite) TestGetBusinessDetails_DashFallbackWhenOwnerMissing() {
	s.mockBusinessRepo.FindBusinessByIDFn = func(ctx context.Context, businessID string) (*domain.Business, error) {
		return &domain.Business{BusinessID: businessID, Name: "Acme", OwnerUserID: "ghost"}, nil
	}
	s.mockUserRepo.FindUserByIDFn = func(ctx context.Context, userID string) (*domain.User, error) {
		return nil, apperrors.ErrNotFound
	}

	details, err := s.service.GetBusinessDetails(s.ctx, "b-1")

	s.Require().NoError(err)
	assert.Equal(s.T(), "-", details.Username)
	assert.Equal(s.T(), "-", details.Email)
}

func (s *BusinessServiceTestSuite) TestGetBusinessHistory_UnknownBusinessFails() {
	s.mockBusinessRepo.FindBusinessByIDFn = func(ctx context.Context, businessID string) (*domain.Business, error) {
		return nil, apperrors.ErrNotFound
	}

	entries, err := s.service.GetBusinessHistory(s.ctx, "missing")

	assert.Nil(s.T(), entries)
	assert.True(s.T(), errors.Is(err, apperrors.ErrNotFound))
}
