package metrics

import (
	"time"

	"marinahub/internal/domain"
)

// OwnerSummary is the owner entity spread with its computed reporting fields.
// The relation slices are folded into the metrics and not echoed back.
type OwnerSummary struct {
	domain.Owner

	FullName         string `json:"full_name"`
	IsActiveCustomer bool   `json:"is_active_customer"`

	BoatsCount       int `json:"boats_count"`
	ActiveBoatsCount int `json:"active_boats_count"`

	ContractsCount        int `json:"contracts_count"`
	ActiveContractsCount  int `json:"active_contracts_count"`
	PendingContractsCount int `json:"pending_contracts_count"`

	InvoicesCount            int  `json:"invoices_count"`
	OutstandingInvoicesCount int  `json:"outstanding_invoices_count"`
	OverdueInvoicesCount     int  `json:"overdue_invoices_count"`
	HasOutstandingInvoices   bool `json:"has_outstanding_invoices"`

	PaymentsCount          int     `json:"payments_count"`
	CompletedPaymentsCount int     `json:"completed_payments_count"`
	PaymentRate            float64 `json:"payment_rate"`

	WorkOrdersCount        int `json:"work_orders_count"`
	PendingWorkOrdersCount int `json:"pending_work_orders_count"`

	BookingsCount         int `json:"bookings_count"`
	ActiveBookingsCount   int `json:"active_bookings_count"`
	UpcomingBookingsCount int `json:"upcoming_bookings_count"`

	TotalOutstandingAmount  float64 `json:"total_outstanding_amount"`
	TotalPaidAmount         float64 `json:"total_paid_amount"`
	TotalMonthlyObligations float64 `json:"total_monthly_obligations"`

	HealthScore    int  `json:"health_score"`
	NeedsAttention bool `json:"needs_attention"`
}

// BuildOwnerSummary folds an owner's loaded relations into a flat summary.
// It is total: empty or nil relation slices produce zeroed counts and false
// flags, never an error.
func BuildOwnerSummary(o domain.Owner, now time.Time) OwnerSummary {
	s := OwnerSummary{Owner: o}
	s.Boats, s.Contracts, s.Invoices, s.Payments, s.WorkOrders, s.Bookings = nil, nil, nil, nil, nil, nil

	s.FullName = o.FirstName + " " + o.LastName
	s.IsActiveCustomer = o.IsActive

	s.BoatsCount = len(o.Boats)
	s.ActiveBoatsCount = CountWhere(o.Boats, func(b domain.Boat) bool { return b.IsActive })

	s.ContractsCount = len(o.Contracts)
	s.ActiveContractsCount = CountWhere(o.Contracts, func(c domain.Contract) bool { return ContractActive(c, now) })
	s.PendingContractsCount = CountWhere(o.Contracts, ContractPending)

	s.InvoicesCount = len(o.Invoices)
	s.OutstandingInvoicesCount = CountWhere(o.Invoices, InvoiceOutstanding)
	s.OverdueInvoicesCount = overdueCount(o.Invoices, now)
	s.HasOutstandingInvoices = s.OutstandingInvoicesCount > 0

	s.PaymentsCount = len(o.Payments)
	s.CompletedPaymentsCount = CountWhere(o.Payments, PaymentCompleted)
	s.PaymentRate = Rate(s.CompletedPaymentsCount, s.InvoicesCount)

	s.WorkOrdersCount = len(o.WorkOrders)
	s.PendingWorkOrdersCount = CountWhere(o.WorkOrders, func(w domain.WorkOrder) bool {
		return w.Status == domain.WorkOrderPending
	})

	s.BookingsCount = len(o.Bookings)
	s.ActiveBookingsCount = CountWhere(o.Bookings, func(b domain.Booking) bool {
		return BookingStatusAt(b, now) == domain.BookingActive
	})
	s.UpcomingBookingsCount = CountWhere(o.Bookings, func(b domain.Booking) bool {
		return BookingUpcoming(b, now)
	})

	s.TotalOutstandingAmount = OutstandingAmount(o.Invoices)
	s.TotalPaidAmount = PaidAmount(o.Payments)
	s.TotalMonthlyObligations = MonthlyObligations(o.Contracts)

	s.HealthScore = HealthScore(o.WorkOrders)
	s.NeedsAttention = !o.IsActive || hasPendingWorkOrder(o.WorkOrders) || s.HasOutstandingInvoices

	return s
}
