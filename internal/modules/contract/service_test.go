package contract

import (
	"context"
	"testing"
	"time"

	"marinahub/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// Mock repositories
type MockContractRepository struct {
	mock.Mock
}

func (m *MockContractRepository) Create(ctx context.Context, c *domain.Contract) error {
	args := m.Called(ctx, c)
	if c != nil {
		c.ID = 999 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockContractRepository) GetByID(ctx context.Context, id int64) (*domain.Contract, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Contract), args.Error(1)
}

func (m *MockContractRepository) GetWithInvoices(ctx context.Context, id int64) (*domain.Contract, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Contract), args.Error(1)
}

func (m *MockContractRepository) GetByMarina(ctx context.Context, marinaID int64) ([]domain.Contract, error) {
	args := m.Called(ctx, marinaID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Contract), args.Error(1)
}

func (m *MockContractRepository) GetByOwner(ctx context.Context, ownerID int64) ([]domain.Contract, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Contract), args.Error(1)
}

func (m *MockContractRepository) HasActiveContractForBerth(ctx context.Context, berthID int64) (bool, error) {
	args := m.Called(ctx, berthID)
	return args.Bool(0), args.Error(1)
}

func (m *MockContractRepository) UpdateStatus(ctx context.Context, id int64, status domain.ContractStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockContractRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockBerthRepository struct {
	mock.Mock
}

func (m *MockBerthRepository) SetAvailability(ctx context.Context, id int64, available bool) error {
	args := m.Called(ctx, id, available)
	return args.Error(0)
}

var testStart = time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)

func TestService_Create_Success(t *testing.T) {
	contracts := new(MockContractRepository)
	svc := NewService(contracts, new(MockBerthRepository))

	contracts.On("HasActiveContractForBerth", mock.Anything, int64(4)).Return(false, nil)
	contracts.On("Create", mock.Anything, mock.AnythingOfType("*domain.Contract")).Return(nil)

	rate := 450.0
	c, err := svc.Create(context.Background(), CreateContractRequest{
		MarinaID:    1,
		OwnerID:     2,
		BoatID:      3,
		BerthID:     4,
		StartDate:   testStart,
		MonthlyRate: &rate,
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.ContractPending, c.Status)
	contracts.AssertExpectations(t)
}

func TestService_Create_BerthOccupied(t *testing.T) {
	contracts := new(MockContractRepository)
	svc := NewService(contracts, new(MockBerthRepository))

	contracts.On("HasActiveContractForBerth", mock.Anything, int64(4)).Return(true, nil)

	_, err := svc.Create(context.Background(), CreateContractRequest{
		MarinaID: 1, OwnerID: 2, BoatID: 3, BerthID: 4, StartDate: testStart,
	})

	assert.ErrorIs(t, err, ErrBerthOccupied)
}

func TestService_Create_EndBeforeStart(t *testing.T) {
	svc := NewService(new(MockContractRepository), new(MockBerthRepository))

	end := testStart.AddDate(0, -1, 0)
	_, err := svc.Create(context.Background(), CreateContractRequest{
		MarinaID: 1, OwnerID: 2, BoatID: 3, BerthID: 4,
		StartDate: testStart,
		EndDate:   &end,
	})

	assert.ErrorIs(t, err, ErrValidation)
}

func TestService_UpdateStatus_ActivateOccupiesBerth(t *testing.T) {
	contracts := new(MockContractRepository)
	berths := new(MockBerthRepository)
	svc := NewService(contracts, berths)

	contracts.On("GetByID", mock.Anything, int64(1)).Return(&domain.Contract{
		ID: 1, BerthID: 4, Status: domain.ContractPending,
	}, nil)
	contracts.On("HasActiveContractForBerth", mock.Anything, int64(4)).Return(false, nil)
	contracts.On("UpdateStatus", mock.Anything, int64(1), domain.ContractActive).Return(nil)
	berths.On("SetAvailability", mock.Anything, int64(4), false).Return(nil)

	c, err := svc.UpdateStatus(context.Background(), 1, domain.ContractActive)

	assert.NoError(t, err)
	assert.Equal(t, domain.ContractActive, c.Status)
	berths.AssertExpectations(t)
}

func TestService_UpdateStatus_TerminateFreesBerth(t *testing.T) {
	contracts := new(MockContractRepository)
	berths := new(MockBerthRepository)
	svc := NewService(contracts, berths)

	contracts.On("GetByID", mock.Anything, int64(1)).Return(&domain.Contract{
		ID: 1, BerthID: 4, Status: domain.ContractActive,
	}, nil)
	contracts.On("UpdateStatus", mock.Anything, int64(1), domain.ContractTerminated).Return(nil)
	berths.On("SetAvailability", mock.Anything, int64(4), true).Return(nil)

	c, err := svc.UpdateStatus(context.Background(), 1, domain.ContractTerminated)

	assert.NoError(t, err)
	assert.Equal(t, domain.ContractTerminated, c.Status)
	berths.AssertExpectations(t)
}

func TestService_UpdateStatus_RejectsBadTransition(t *testing.T) {
	contracts := new(MockContractRepository)
	svc := NewService(contracts, new(MockBerthRepository))

	contracts.On("GetByID", mock.Anything, int64(1)).Return(&domain.Contract{
		ID: 1, Status: domain.ContractExpired,
	}, nil)

	_, err := svc.UpdateStatus(context.Background(), 1, domain.ContractActive)

	assert.ErrorIs(t, err, ErrInvalidStatusTransition)
}

func TestService_Delete_RejectsActive(t *testing.T) {
	contracts := new(MockContractRepository)
	svc := NewService(contracts, new(MockBerthRepository))

	contracts.On("GetByID", mock.Anything, int64(1)).Return(&domain.Contract{
		ID: 1, Status: domain.ContractActive,
	}, nil)

	err := svc.Delete(context.Background(), 1)

	assert.ErrorIs(t, err, ErrInvalidStatusTransition)
}

func TestService_GetSummary_NotFound(t *testing.T) {
	contracts := new(MockContractRepository)
	svc := NewService(contracts, new(MockBerthRepository))

	contracts.On("GetWithInvoices", mock.Anything, int64(8)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.GetSummary(context.Background(), 8)

	assert.ErrorIs(t, err, ErrNotFound)
}
