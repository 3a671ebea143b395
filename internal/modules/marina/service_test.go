package marina

import (
	"context"
	"testing"

	"marinahub/internal/cache"
	"marinahub/internal/domain"
	"marinahub/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// Mock repositories
type MockMarinaRepository struct {
	mock.Mock
}

func (m *MockMarinaRepository) Create(ctx context.Context, marina *domain.Marina) error {
	args := m.Called(ctx, marina)
	if marina != nil {
		marina.ID = 999 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockMarinaRepository) GetByID(ctx context.Context, id int64) (*domain.Marina, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Marina), args.Error(1)
}

func (m *MockMarinaRepository) GetWithRelations(ctx context.Context, id int64) (*domain.Marina, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Marina), args.Error(1)
}

func (m *MockMarinaRepository) GetAll(ctx context.Context, f repository.MarinaFilters) ([]domain.Marina, int64, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.Marina), args.Get(1).(int64), args.Error(2)
}

func (m *MockMarinaRepository) Update(ctx context.Context, marina *domain.Marina) error {
	args := m.Called(ctx, marina)
	return args.Error(0)
}

func (m *MockMarinaRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func noopCache(t *testing.T) cache.SummaryCache {
	t.Helper()
	c, err := cache.NewRedisCache("", "", 0, false, 0)
	assert.NoError(t, err)
	return c
}

func TestService_Create_Success(t *testing.T) {
	repo := new(MockMarinaRepository)
	svc := NewService(repo, noopCache(t))

	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Marina")).Return(nil)

	m, err := svc.Create(context.Background(), CreateMarinaRequest{
		Name: "North Harbor",
		Code: "NH-01",
		City: "Kiel",
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(999), m.ID)
	assert.True(t, m.IsActive)
	repo.AssertExpectations(t)
}

func TestService_Create_MissingCode(t *testing.T) {
	svc := NewService(new(MockMarinaRepository), noopCache(t))

	_, err := svc.Create(context.Background(), CreateMarinaRequest{Name: "No Code"})

	assert.ErrorIs(t, err, ErrValidation)
}

func TestService_GetByID_NotFound(t *testing.T) {
	repo := new(MockMarinaRepository)
	svc := NewService(repo, noopCache(t))

	repo.On("GetByID", mock.Anything, int64(42)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.GetByID(context.Background(), 42)

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_Update_TogglesActive(t *testing.T) {
	repo := new(MockMarinaRepository)
	svc := NewService(repo, noopCache(t))

	repo.On("GetByID", mock.Anything, int64(5)).Return(&domain.Marina{
		ID:       5,
		Name:     "South Pier",
		Code:     "SP-01",
		IsActive: true,
	}, nil)
	repo.On("Update", mock.Anything, mock.AnythingOfType("*domain.Marina")).Return(nil)

	inactive := false
	m, err := svc.Update(context.Background(), 5, UpdateMarinaRequest{IsActive: &inactive})

	assert.NoError(t, err)
	assert.False(t, m.IsActive)
	assert.Equal(t, "SP-01", m.Code)
}

func TestService_GetSummary_ComputesFromRelations(t *testing.T) {
	repo := new(MockMarinaRepository)
	svc := NewService(repo, noopCache(t))

	repo.On("GetWithRelations", mock.Anything, int64(3)).Return(&domain.Marina{
		ID:       3,
		Name:     "East Dock",
		Code:     "ED-01",
		IsActive: true,
		IsOnline: true,
		Berths: []domain.Berth{
			{ID: 1, IsAvailable: true, IsActive: true},
			{ID: 2, IsAvailable: true, IsActive: true},
		},
	}, nil)

	summary, err := svc.GetSummary(context.Background(), 3)

	assert.NoError(t, err)
	assert.Equal(t, 2, summary.BerthsCount)
	assert.True(t, summary.IsFullyOperational)
	assert.Equal(t, 100, summary.HealthScore)
}

func TestService_GetSummary_NotFound(t *testing.T) {
	repo := new(MockMarinaRepository)
	svc := NewService(repo, noopCache(t))

	repo.On("GetWithRelations", mock.Anything, int64(404)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.GetSummary(context.Background(), 404)

	assert.ErrorIs(t, err, ErrNotFound)
}
