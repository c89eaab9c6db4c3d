package services_test

import (
	"context"
	"testing"

	"github.com/bizdesk/business_management_app/internal/apperrors"
	"github.com/bizdesk/business_management_app/internal/core/domain"
	portssvc "github.com/bizdesk/business_management_app/internal/core/ports/services"
	"github.com/bizdesk/business_management_app/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type HistoryServiceTestSuite struct {
	suite.Suite
	mockHistoryRepo  *MockHistoryRepository
	mockUserRepo     *MockUserRepository
	mockBusinessRepo *MockBusinessRepository
	service          portssvc.HistorySvcFacade
	ctx              context.Context
}

func (s *HistoryServiceTestSuite) SetupTest() {
	s.mockHistoryRepo = new(MockHistoryRepository)
	s.mockUserRepo = new(MockUserRepository)
	s.mockBusinessRepo = new(MockBusinessRepository)
	s.service = services.NewHistoryService(s.mockHistoryRepo, s.mockUserRepo, s.mockBusinessRepo)
	s.ctx = context.Background()
}

func TestHistoryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(HistoryServiceTestSuite))
}

func (s *HistoryServiceTestSuite) TestAppendHistory_ResolvesActorNameWhenEmpty() {
	var saved domain.History
	s.mockHistoryRepo.SaveHistoryFn = func(ctx context.Context, entry domain.History) error {
		saved = entry
		return nil
	}
	s.mockUserRepo.FindUserByIDFn = func(ctx context.Context, userID string) (*domain.User, error) {
		return &domain.User{UserID: userID, Username: "alice"}, nil
	}

	entry, err := s.service.AppendHistory(s.ctx, portssvc.AppendHistoryParams{
		TargetID:    "t-1",
		ActorUserID: "u-1",
		ActorName:   "",
		Type:        domain.HistoryTypeBusiness,
		Action:      "Created",
		Description: "Business Acme created",
	})

	s.Require().NoError(err)
	assert.Equal(s.T(), "alice", entry.CreatedBy.Name)
	assert.Equal(s.T(), "alice", saved.CreatedBy.Name)
	assert.NotEmpty(s.T(), saved.HistoryID)
}

func (s *HistoryServiceTestSuite) TestAppendHistory_UnknownSentinelTriggersLookup() {
	s.mockHistoryRepo.SaveHistoryFn = func(ctx context.Context, entry domain.History) error { return nil }
	s.mockUserRepo.FindUserByIDFn = func(ctx context.Context, userID string) (*domain.User, error) {
		return &domain.User{UserID: userID, Username: "bob"}, nil
	}

	entry, err := s.service.AppendHistory(s.ctx, portssvc.AppendHistoryParams{
		ActorUserID: "u-2",
		ActorName:   "Unknown",
		Type:        domain.HistoryTypeInvoice,
		Action:      "created",
		Description: "Invoice INV-001 created",
	})

	s.Require().NoError(err)
	assert.Equal(s.T(), "bob", entry.CreatedBy.Name)
}

func (s *HistoryServiceTestSuite) TestAppendHistory_FallsBackToUnknownActor() {
	s.mockHistoryRepo.SaveHistoryFn = func(ctx context.Context, entry domain.History) error { return nil }
	s.mockUserRepo.FindUserByIDFn = func(ctx context.Context, userID string) (*domain.User, error) {
		return nil, apperrors.ErrNotFound
	}

	entry, err := s.service.AppendHistory(s.ctx, portssvc.AppendHistoryParams{
		ActorUserID: "ghost",
		Type:        domain.HistoryTypeInvoice,
		Action:      "deleted",
		Description: "Invoice INV-001 deleted",
	})

	s.Require().NoError(err)
	assert.Equal(s.T(), "Unknown", entry.CreatedBy.Name)
}

func (s *HistoryServiceTestSuite) TestAppendHistory_DefaultDescription() {
	s.mockHistoryRepo.SaveHistoryFn = func(ctx context.Context, entry domain.History) error { return nil }

	entry, err := s.service.AppendHistory(s.ctx, portssvc.AppendHistoryParams{
		ActorUserID: "u-1",
		ActorName:   "alice",
		Type:        domain.HistoryTypeInvoice,
		Action:      "updated",
	})

	s.Require().NoError(err)
	assert.Equal(s.T(), "Entity Invoice updated", entry.Description)
}

func (s *HistoryServiceTestSuite) TestAppendHistory_ResolvesBusinessCode() {
	var saved domain.History
	s.mockHistoryRepo.SaveHistoryFn = func(ctx context.Context, entry domain.History) error {
		saved = entry
		return nil
	}
	s.mockBusinessRepo.FindBusinessByIDFn = func(ctx context.Context, businessID string) (*domain.Business, error) {
		return &domain.Business{BusinessID: businessID, BusinessCode: "BE-007"}, nil
	}

	entry, err := s.service.AppendHistory(s.ctx, portssvc.AppendHistoryParams{
		ActorUserID: "u-1",
		ActorName:   "alice",
		Type:        domain.HistoryTypeInvoice,
		Action:      "created",
		Description: "Invoice INV-003 created",
		BusinessID:  "b-7",
	})

	s.Require().NoError(err)
	assert.Equal(s.T(), "BE-007", entry.BusinessCode)
	assert.Equal(s.T(), "b-7", saved.BusinessID)
}

func (s *HistoryServiceTestSuite) TestAppendHistory_NoBusinessCodeWithoutBusinessID() {
	s.mockHistoryRepo.SaveHistoryFn = func(ctx context.Context, entry domain.History) error { return nil }

	entry, err := s.service.AppendHistory(s.ctx, portssvc.AppendHistoryParams{
		ActorUserID: "u-1",
		ActorName:   "alice",
		Type:        domain.HistoryTypeInvoice,
		Action:      "created",
		Description: "Invoice INV-004 created",
	})

	s.Require().NoError(err)
	assert.Empty(s.T(), entry.BusinessCode)
}

func (s *HistoryServiceTestSuite) TestAppendHistory_TargetNameIsEntityType() {
	s.mockHistoryRepo.SaveHistoryFn = func(ctx context.Context, entry domain.History) error { return nil }

	entry, err := s.service.AppendHistory(s.ctx, portssvc.AppendHistoryParams{
		TargetID:    "inv-9",
		ActorUserID: "u-1",
		ActorName:   "alice",
		Type:        domain.HistoryTypeInvoice,
		Action:      "created",
		Description: "Invoice INV-009 created",
	})

	s.Require().NoError(err)
	assert.Equal(s.T(), "inv-9", entry.Target.ID)
	assert.Equal(s.T(), "Invoice", entry.Target.Name)
}
