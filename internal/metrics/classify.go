package metrics

import (
	"math"
	"time"

	"marinahub/internal/domain"
)

// Classifiers take the evaluation instant as a parameter so summaries stay
// deterministic under test. Nil dates are treated as "not yet": a record
// without a due/end date is never overdue and never expired.

func ContractActive(c domain.Contract, now time.Time) bool {
	if c.Status != domain.ContractActive {
		return false
	}
	if c.EndDate != nil && c.EndDate.Before(now) {
		return false
	}
	return true
}

func ContractPending(c domain.Contract) bool {
	return c.Status == domain.ContractPending
}

func InvoiceOutstanding(inv domain.Invoice) bool {
	return inv.Status == domain.InvoicePending || inv.Status == domain.InvoiceOverdue
}

func InvoiceOverdue(inv domain.Invoice, now time.Time) bool {
	if inv.Status == domain.InvoiceOverdue {
		return true
	}
	return inv.Status == domain.InvoicePending && inv.DueDate != nil && inv.DueDate.Before(now)
}

func PaymentCompleted(p domain.Payment) bool {
	return p.Status == domain.PaymentCompleted
}

func WorkOrderOpen(w domain.WorkOrder) bool {
	return w.Status == domain.WorkOrderPending || w.Status == domain.WorkOrderInProgress
}

// BookingStatusAt derives the effective status of a booking at the given
// instant. A confirmed booking inside its window reads as active, an active
// booking past its end reads as completed. The stored status is not modified;
// callers expose the derived value as a separate field.
func BookingStatusAt(b domain.Booking, now time.Time) domain.BookingStatus {
	switch b.Status {
	case domain.BookingConfirmed:
		if !now.Before(b.StartDate) && !now.After(b.EndDate) {
			return domain.BookingActive
		}
	case domain.BookingActive:
		if now.After(b.EndDate) {
			return domain.BookingCompleted
		}
	}
	return b.Status
}

func BookingUpcoming(b domain.Booking, now time.Time) bool {
	return b.Status == domain.BookingConfirmed && b.StartDate.After(now)
}

// DaysUntil returns whole days remaining until t, rounded up and clamped at 0.
func DaysUntil(t time.Time, now time.Time) int {
	d := int(math.Ceil(t.Sub(now).Hours() / 24))
	if d < 0 {
		return 0
	}
	return d
}

// DaysOverdue returns whole days elapsed past due, rounded up; 0 when the
// due date is unset or not yet reached.
func DaysOverdue(due *time.Time, now time.Time) int {
	if due == nil || !due.Before(now) {
		return 0
	}
	return int(math.Ceil(now.Sub(*due).Hours() / 24))
}
