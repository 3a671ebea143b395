package berth

import (
	"context"
	"testing"
	"time"

	"marinahub/internal/domain"
	"marinahub/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// Mock repositories
type MockBerthRepository struct {
	mock.Mock
}

func (m *MockBerthRepository) Create(ctx context.Context, b *domain.Berth) error {
	args := m.Called(ctx, b)
	if b != nil {
		b.ID = 999 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockBerthRepository) GetByID(ctx context.Context, id int64) (*domain.Berth, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Berth), args.Error(1)
}

func (m *MockBerthRepository) GetWithRelations(ctx context.Context, id int64) (*domain.Berth, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Berth), args.Error(1)
}

func (m *MockBerthRepository) GetAll(ctx context.Context, f repository.BerthFilters) ([]domain.Berth, int64, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.Berth), args.Get(1).(int64), args.Error(2)
}

func (m *MockBerthRepository) Update(ctx context.Context, b *domain.Berth) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockBerthRepository) SetAvailability(ctx context.Context, id int64, available bool) error {
	args := m.Called(ctx, id, available)
	return args.Error(0)
}

func (m *MockBerthRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestService_Create_Success(t *testing.T) {
	repo := new(MockBerthRepository)
	svc := NewService(repo)

	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Berth")).Return(nil)

	b, err := svc.Create(context.Background(), CreateBerthRequest{
		MarinaID:    1,
		BerthNumber: "A-12",
		Length:      14,
		Beam:        4.5,
	})

	assert.NoError(t, err)
	assert.True(t, b.IsAvailable)
	assert.True(t, b.IsActive)
}

func TestService_Create_MissingNumber(t *testing.T) {
	svc := NewService(new(MockBerthRepository))

	_, err := svc.Create(context.Background(), CreateBerthRequest{MarinaID: 1})

	assert.ErrorIs(t, err, ErrValidation)
}

func TestService_Create_NegativeLength(t *testing.T) {
	repo := new(MockBerthRepository)
	svc := NewService(repo)

	_, err := svc.Create(context.Background(), CreateBerthRequest{
		MarinaID:    1,
		BerthNumber: "A-13",
		Length:      -3,
	})

	assert.ErrorIs(t, err, ErrValidation)
	repo.AssertNotCalled(t, "Create")
}

func TestService_GetSummary_OccupiedByContract(t *testing.T) {
	repo := new(MockBerthRepository)
	svc := NewService(repo)
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	rate := 450.0
	repo.On("GetWithRelations", mock.Anything, int64(4)).Return(&domain.Berth{
		ID:          4,
		BerthNumber: "A-12",
		IsAvailable: false,
		IsActive:    true,
		Contracts: []domain.Contract{
			{
				ID:          1,
				Status:      domain.ContractActive,
				StartDate:   now.AddDate(0, -2, 0),
				MonthlyRate: &rate,
			},
		},
	}, nil)

	summary, err := svc.GetSummary(context.Background(), 4)

	assert.NoError(t, err)
	assert.True(t, summary.HasActiveContract)
	assert.True(t, summary.IsOccupied)
	assert.InDelta(t, 100, summary.UtilizationRate, 0.001)
	assert.InDelta(t, 450, summary.MonthlyRevenue, 0.001)
}

func TestService_GetSummary_NotFound(t *testing.T) {
	repo := new(MockBerthRepository)
	svc := NewService(repo)

	repo.On("GetWithRelations", mock.Anything, int64(404)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.GetSummary(context.Background(), 404)

	assert.ErrorIs(t, err, ErrNotFound)
}
