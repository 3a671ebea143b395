package datasource

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockCountProvider struct {
	mock.Mock
}

func (m *MockCountProvider) CountRecords(ctx context.Context, dataType string) (int64, error) {
	args := m.Called(ctx, dataType)
	return args.Get(0).(int64), args.Error(1)
}

func TestValidator_DemoModeMatchingCount(t *testing.T) {
	counts := new(MockCountProvider)
	counts.On("CountRecords", mock.Anything, "customers").Return(int64(25), nil)

	v := NewValidator(NewSettings(ModeDemo), counts)
	res := v.Validate(context.Background(), "customers")

	assert.True(t, res.IsValid)
	assert.True(t, res.SourceVerified)
	assert.True(t, res.CountVerified)
	assert.True(t, res.IntegrityVerified)
	assert.Equal(t, int64(25), res.ExpectedCount)
	assert.Equal(t, int64(25), res.ActualCount)
	assert.Empty(t, res.Error)
}

func TestValidator_DemoModeCountMismatch(t *testing.T) {
	counts := new(MockCountProvider)
	counts.On("CountRecords", mock.Anything, "customers").Return(int64(24), nil)

	v := NewValidator(NewSettings(ModeDemo), counts)
	res := v.Validate(context.Background(), "customers")

	assert.False(t, res.IsValid)
	assert.False(t, res.CountVerified)
	assert.True(t, res.SourceVerified)
}

func TestValidator_DemoModeZeroCountFailsIntegrity(t *testing.T) {
	counts := new(MockCountProvider)
	counts.On("CountRecords", mock.Anything, "bookings").Return(int64(0), nil)

	v := NewValidator(NewSettings(ModeDemo), counts)
	res := v.Validate(context.Background(), "bookings")

	assert.False(t, res.IsValid)
	assert.False(t, res.IntegrityVerified)
}

func TestValidator_StoreErrorNeverPropagates(t *testing.T) {
	counts := new(MockCountProvider)
	counts.On("CountRecords", mock.Anything, "owners").Return(int64(0), assert.AnError)

	v := NewValidator(NewSettings(ModeDatabase), counts)
	res := v.Validate(context.Background(), "owners")

	assert.False(t, res.IsValid)
	assert.False(t, res.SourceVerified)
	assert.False(t, res.CountVerified)
	assert.False(t, res.IntegrityVerified)
	assert.NotEmpty(t, res.Error)
}

func TestValidator_UnknownDataType(t *testing.T) {
	v := NewValidator(NewSettings(ModeDemo), new(MockCountProvider))
	res := v.Validate(context.Background(), "unicorns")

	assert.False(t, res.IsValid)
	assert.Contains(t, res.Error, "unknown data type")
}

func TestValidator_ValidateAll(t *testing.T) {
	counts := new(MockCountProvider)
	for _, dt := range DataTypes() {
		expected, _ := ExpectedCount(ModeDemo, dt)
		counts.On("CountRecords", mock.Anything, dt).Return(expected, nil)
	}

	v := NewValidator(NewSettings(ModeDemo), counts)
	results := v.ValidateAll(context.Background())

	assert.Len(t, results, len(DataTypes()))
	for _, res := range results {
		assert.True(t, res.IsValid, res.DataType)
	}
}
