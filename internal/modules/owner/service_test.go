package owner

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
type MockOwnerRepository struct {
	mock.Mock
}

func (m *MockOwnerRepository) Create(ctx context.Context, o *domain.Owner) error {
	args := m.Called(ctx, o)
	if o != nil {
		o.ID = 999 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockOwnerRepository) GetByID(ctx context.Context, id int64) (*domain.Owner, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Owner), args.Error(1)
}

func (m *MockOwnerRepository) GetWithRelations(ctx context.Context, id int64) (*domain.Owner, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Owner), args.Error(1)
}

func (m *MockOwnerRepository) GetAll(ctx context.Context, f repository.OwnerFilters) ([]domain.Owner, int64, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.Owner), args.Get(1).(int64), args.Error(2)
}

func (m *MockOwnerRepository) Update(ctx context.Context, o *domain.Owner) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOwnerRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockBoatRepository struct {
	mock.Mock
}

func (m *MockBoatRepository) Create(ctx context.Context, b *domain.Boat) error {
	args := m.Called(ctx, b)
	if b != nil {
		b.ID = 555
	}
	return args.Error(0)
}

func (m *MockBoatRepository) GetByID(ctx context.Context, id int64) (*domain.Boat, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Boat), args.Error(1)
}

func (m *MockBoatRepository) GetByOwner(ctx context.Context, ownerID int64) ([]domain.Boat, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Boat), args.Error(1)
}

func (m *MockBoatRepository) AssignBerth(ctx context.Context, boatID int64, berthID *int64) error {
	args := m.Called(ctx, boatID, berthID)
	return args.Error(0)
}

func (m *MockBoatRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestService_Create_NormalizesEmail(t *testing.T) {
	owners := new(MockOwnerRepository)
	svc := NewService(owners, new(MockBoatRepository))

	owners.On("Create", mock.Anything, mock.AnythingOfType("*domain.Owner")).Return(nil)

	o, err := svc.Create(context.Background(), CreateOwnerRequest{
		MarinaID:  1,
		FirstName: "Astrid",
		LastName:  "Berg",
		Email:     " Astrid.Berg@Example.com ",
	})

	assert.NoError(t, err)
	assert.Equal(t, "astrid.berg@example.com", o.Email)
	assert.True(t, o.IsActive)
}

func TestService_Create_MissingName(t *testing.T) {
	svc := NewService(new(MockOwnerRepository), new(MockBoatRepository))

	_, err := svc.Create(context.Background(), CreateOwnerRequest{
		MarinaID: 1,
		LastName: "Berg",
		Email:    "astrid@example.com",
	})

	assert.ErrorIs(t, err, ErrValidation)
}

func TestService_Create_InvalidEmail(t *testing.T) {
	owners := new(MockOwnerRepository)
	svc := NewService(owners, new(MockBoatRepository))

	_, err := svc.Create(context.Background(), CreateOwnerRequest{
		MarinaID:  1,
		FirstName: "Astrid",
		LastName:  "Berg",
		Email:     "not-an-address",
	})

	assert.ErrorIs(t, err, ErrValidation)
	owners.AssertNotCalled(t, "Create")
}

func TestService_GetSummary_ComputesTotals(t *testing.T) {
	owners := new(MockOwnerRepository)
	svc := NewService(owners, new(MockBoatRepository))
	svc.now = func() time.Time { return time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC) }

	owners.On("GetWithRelations", mock.Anything, int64(9)).Return(&domain.Owner{
		ID:        9,
		FirstName: "Astrid",
		LastName:  "Berg",
		IsActive:  true,
		Invoices: []domain.Invoice{
			{ID: 1, Status: domain.InvoicePending, Total: 300},
			{ID: 2, Status: domain.InvoicePaid, Total: 200},
		},
		Payments: []domain.Payment{
			{ID: 1, Status: domain.PaymentCompleted, Amount: 200},
		},
	}, nil)

	summary, err := svc.GetSummary(context.Background(), 9)

	assert.NoError(t, err)
	assert.Equal(t, "Astrid Berg", summary.FullName)
	assert.InDelta(t, 300, summary.TotalOutstandingAmount, 0.001)
	assert.InDelta(t, 200, summary.TotalPaidAmount, 0.001)
	assert.True(t, summary.HasOutstandingInvoices)
}

func TestService_AssignBerth_WrongOwner(t *testing.T) {
	owners := new(MockOwnerRepository)
	boats := new(MockBoatRepository)
	svc := NewService(owners, boats)

	boats.On("GetByID", mock.Anything, int64(5)).Return(&domain.Boat{ID: 5, OwnerID: 77}, nil)

	berthID := int64(2)
	_, err := svc.AssignBerth(context.Background(), 9, 5, &berthID)

	assert.ErrorIs(t, err, ErrBoatNotFound)
}

func TestService_AssignBerth_Clears(t *testing.T) {
	owners := new(MockOwnerRepository)
	boats := new(MockBoatRepository)
	svc := NewService(owners, boats)

	boats.On("GetByID", mock.Anything, int64(5)).Return(&domain.Boat{ID: 5, OwnerID: 9}, nil)
	boats.On("AssignBerth", mock.Anything, int64(5), (*int64)(nil)).Return(nil)

	b, err := svc.AssignBerth(context.Background(), 9, 5, nil)

	assert.NoError(t, err)
	assert.Nil(t, b.BerthID)
}

func TestService_GetByID_NotFound(t *testing.T) {
	owners := new(MockOwnerRepository)
	svc := NewService(owners, new(MockBoatRepository))

	owners.On("GetByID", mock.Anything, int64(1)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.GetByID(context.Background(), 1)

	assert.ErrorIs(t, err, ErrNotFound)
}
