package metrics

import (
	"math"
	"time"

	"marinahub/internal/domain"
)

// CountWhere counts the elements matching pred.
func CountWhere[T any](items []T, pred func(T) bool) int {
	n := 0
	for _, it := range items {
		if pred(it) {
			n++
		}
	}
	return n
}

// SumWhere folds amount over the elements matching pred, rounded to cents.
func SumWhere[T any](items []T, pred func(T) bool, amount func(T) float64) float64 {
	var sum float64
	for _, it := range items {
		if pred(it) {
			sum += amount(it)
		}
	}
	return RoundCents(sum)
}

// Rate returns part/whole as a percentage, 0 when whole is 0.
func Rate(part, whole int) float64 {
	if whole == 0 {
		return 0
	}
	return RoundCents(float64(part) / float64(whole) * 100)
}

func RoundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

// OutstandingAmount sums the totals of pending and overdue invoices.
func OutstandingAmount(invoices []domain.Invoice) float64 {
	return SumWhere(invoices, InvoiceOutstanding, func(inv domain.Invoice) float64 { return inv.Total })
}

// PaidAmount sums completed payments.
func PaidAmount(payments []domain.Payment) float64 {
	return SumWhere(payments, PaymentCompleted, func(p domain.Payment) float64 { return p.Amount })
}

// MonthlyObligations sums the monthly rate of contracts in active status.
// A contract without a rate contributes 0.
func MonthlyObligations(contracts []domain.Contract) float64 {
	return SumWhere(contracts,
		func(c domain.Contract) bool { return c.Status == domain.ContractActive },
		func(c domain.Contract) float64 {
			if c.MonthlyRate == nil {
				return 0
			}
			return *c.MonthlyRate
		})
}

// AverageMonthlyRate is the mean monthly rate over active contracts, 0 when
// there are none.
func AverageMonthlyRate(contracts []domain.Contract) float64 {
	active := CountWhere(contracts, func(c domain.Contract) bool { return c.Status == domain.ContractActive })
	if active == 0 {
		return 0
	}
	return RoundCents(MonthlyObligations(contracts) / float64(active))
}

func overdueCount(invoices []domain.Invoice, now time.Time) int {
	return CountWhere(invoices, func(inv domain.Invoice) bool { return InvoiceOverdue(inv, now) })
}
