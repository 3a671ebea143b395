package booking

import (
	"context"
	"testing"
	"time"

	"marinahub/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// Mock repositories
type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	if b != nil {
		b.ID = 999 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockBookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) CheckAvailability(ctx context.Context, berthID int64, start, end time.Time) (bool, error) {
	args := m.Called(ctx, berthID, start, end)
	return args.Bool(0), args.Error(1)
}

func (m *MockBookingRepository) GetByMarina(ctx context.Context, marinaID int64, limit, offset int) ([]domain.Booking, error) {
	args := m.Called(ctx, marinaID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) GetByOwner(ctx context.Context, ownerID int64, limit, offset int) ([]domain.Booking, error) {
	args := m.Called(ctx, ownerID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockBookingRepository) CancelWithReason(ctx context.Context, id int64, reason string, at time.Time) error {
	args := m.Called(ctx, id, reason, at)
	return args.Error(0)
}

var now = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

func newService(repo *MockBookingRepository) *Service {
	svc := NewService(repo)
	svc.now = func() time.Time { return now }
	return svc
}

func TestService_Create_Success(t *testing.T) {
	repo := new(MockBookingRepository)
	svc := newService(repo)

	start := now.AddDate(0, 0, 7)
	end := start.AddDate(0, 0, 3)

	repo.On("CheckAvailability", mock.Anything, int64(4), start, end).Return(true, nil)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Booking")).Return(nil)

	b, err := svc.Create(context.Background(), CreateBookingRequest{
		MarinaID: 1, OwnerID: 2, BoatID: 3, BerthID: 4,
		StartDate:   start,
		EndDate:     end,
		TotalAmount: 180,
	})

	assert.NoError(t, err)
	assert.Equal(t, "confirmed", b.Status)
	assert.Equal(t, "confirmed", b.CalculatedStatus) // window not yet open
	repo.AssertExpectations(t)
}

func TestService_Create_RejectsPastStart(t *testing.T) {
	svc := newService(new(MockBookingRepository))

	start := now.AddDate(0, 0, -1)
	_, err := svc.Create(context.Background(), CreateBookingRequest{
		MarinaID: 1, OwnerID: 2, BoatID: 3, BerthID: 4,
		StartDate: start,
		EndDate:   start.AddDate(0, 0, 2),
	})

	assert.ErrorIs(t, err, ErrValidation)
}

func TestService_Create_RejectsInvertedRange(t *testing.T) {
	svc := newService(new(MockBookingRepository))

	start := now.AddDate(0, 0, 7)
	_, err := svc.Create(context.Background(), CreateBookingRequest{
		MarinaID: 1, OwnerID: 2, BoatID: 3, BerthID: 4,
		StartDate: start,
		EndDate:   start,
	})

	assert.ErrorIs(t, err, ErrValidation)
}

func TestService_Create_BerthBusy(t *testing.T) {
	repo := new(MockBookingRepository)
	svc := newService(repo)

	start := now.AddDate(0, 0, 7)
	end := start.AddDate(0, 0, 3)
	repo.On("CheckAvailability", mock.Anything, int64(4), start, end).Return(false, nil)

	_, err := svc.Create(context.Background(), CreateBookingRequest{
		MarinaID: 1, OwnerID: 2, BoatID: 3, BerthID: 4,
		StartDate: start,
		EndDate:   end,
	})

	assert.ErrorIs(t, err, ErrNotAvailable)
}

func TestService_GetByID_DerivesActiveStatus(t *testing.T) {
	repo := new(MockBookingRepository)
	svc := newService(repo)

	repo.On("GetByID", mock.Anything, int64(1)).Return(&domain.Booking{
		ID:        1,
		Status:    domain.BookingConfirmed,
		StartDate: now.AddDate(0, 0, -1),
		EndDate:   now.AddDate(0, 0, 2),
	}, nil)

	b, err := svc.GetByID(context.Background(), 1)

	assert.NoError(t, err)
	assert.Equal(t, "confirmed", b.Status)
	assert.Equal(t, "active", b.CalculatedStatus)
}

func TestService_Cancel_RecordsReason(t *testing.T) {
	repo := new(MockBookingRepository)
	svc := newService(repo)

	repo.On("GetByID", mock.Anything, int64(1)).Return(&domain.Booking{
		ID:        1,
		Status:    domain.BookingConfirmed,
		StartDate: now.AddDate(0, 0, 7),
		EndDate:   now.AddDate(0, 0, 9),
	}, nil)
	repo.On("CancelWithReason", mock.Anything, int64(1), "engine repair", now).Return(nil)

	b, err := svc.Cancel(context.Background(), 1, "engine repair")

	assert.NoError(t, err)
	assert.Equal(t, "cancelled", b.Status)
	assert.Equal(t, "cancelled", b.CalculatedStatus)
	repo.AssertExpectations(t)
}

func TestService_Cancel_RejectsCompleted(t *testing.T) {
	repo := new(MockBookingRepository)
	svc := newService(repo)

	repo.On("GetByID", mock.Anything, int64(1)).Return(&domain.Booking{
		ID:     1,
		Status: domain.BookingCompleted,
	}, nil)

	_, err := svc.Cancel(context.Background(), 1, "too late")

	assert.ErrorIs(t, err, ErrInvalidStatusTransition)
}

func TestService_UpdateStatus_RejectsBadTransition(t *testing.T) {
	repo := new(MockBookingRepository)
	svc := newService(repo)

	repo.On("GetByID", mock.Anything, int64(1)).Return(&domain.Booking{
		ID:     1,
		Status: domain.BookingCancelled,
	}, nil)

	_, err := svc.UpdateStatus(context.Background(), 1, domain.BookingActive)

	assert.ErrorIs(t, err, ErrInvalidStatusTransition)
}

func TestService_List_RequiresScope(t *testing.T) {
	svc := newService(new(MockBookingRepository))

	_, err := svc.List(context.Background(), ListQuery{})

	assert.ErrorIs(t, err, ErrValidation)
}
