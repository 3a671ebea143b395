package metrics

import (
	"testing"

	"marinahub/internal/domain"

	"github.com/stretchr/testify/assert"
)

func rate(v float64) *float64 { return &v }

func TestRate_ZeroGuard(t *testing.T) {
	assert.Equal(t, 0.0, Rate(0, 0))
	assert.Equal(t, 0.0, Rate(5, 0))
	assert.Equal(t, 50.0, Rate(1, 2))
	assert.Equal(t, 100.0, Rate(3, 3))
}

func TestOutstandingAmount(t *testing.T) {
	invoices := []domain.Invoice{
		{Status: domain.InvoicePending, Total: 1250},
		{Status: domain.InvoiceOverdue, Total: 300.50},
		{Status: domain.InvoicePaid, Total: 900},
		{Status: domain.InvoiceCancelled, Total: 50},
	}
	assert.Equal(t, 1550.50, OutstandingAmount(invoices))
}

func TestOutstandingAmount_Empty(t *testing.T) {
	assert.Equal(t, 0.0, OutstandingAmount(nil))
	assert.Equal(t, 0.0, OutstandingAmount([]domain.Invoice{}))
}

func TestPaidAmount(t *testing.T) {
	payments := []domain.Payment{
		{Status: domain.PaymentCompleted, Amount: 500},
		{Status: domain.PaymentCompleted, Amount: 199.99},
		{Status: domain.PaymentFailed, Amount: 1000},
		{Status: domain.PaymentRefunded, Amount: 250},
	}
	assert.Equal(t, 699.99, PaidAmount(payments))
}

func TestMonthlyObligations(t *testing.T) {
	contracts := []domain.Contract{
		{Status: domain.ContractActive, MonthlyRate: rate(500)},
		{Status: domain.ContractActive, MonthlyRate: nil},
		{Status: domain.ContractPending, MonthlyRate: rate(900)},
	}
	assert.Equal(t, 500.0, MonthlyObligations(contracts))
}

func TestAverageMonthlyRate(t *testing.T) {
	contracts := []domain.Contract{
		{Status: domain.ContractActive, MonthlyRate: rate(400)},
		{Status: domain.ContractActive, MonthlyRate: rate(600)},
		{Status: domain.ContractExpired, MonthlyRate: rate(9000)},
	}
	assert.Equal(t, 500.0, AverageMonthlyRate(contracts))
	assert.Equal(t, 0.0, AverageMonthlyRate(nil))
}

func TestSumWhere_RoundsToCents(t *testing.T) {
	items := []float64{0.1, 0.2}
	sum := SumWhere(items, func(float64) bool { return true }, func(v float64) float64 { return v })
	assert.Equal(t, 0.3, sum)
}
