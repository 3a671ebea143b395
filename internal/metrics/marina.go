package metrics

import (
	"time"

	"marinahub/internal/domain"
)

type MarinaSummary struct {
	domain.Marina

	BerthsCount          int     `json:"berths_count"`
	OccupiedBerthsCount  int     `json:"occupied_berths_count"`
	AvailableBerthsCount int     `json:"available_berths_count"`
	BerthUtilizationRate float64 `json:"berth_utilization_rate"`

	UsersCount   int `json:"users_count"`
	StaffCount   int `json:"staff_count"`
	AdminsCount  int `json:"admins_count"`
	BoatsCount   int `json:"boats_count"`
	ActiveBoats  int `json:"active_boats_count"`
	OwnersCount  int `json:"customers_count"`
	ActiveOwners int `json:"active_customers_count"`

	ContractsCount        int     `json:"contracts_count"`
	ActiveContractsCount  int     `json:"active_contracts_count"`
	PendingContractsCount int     `json:"pending_contracts_count"`
	AverageMonthlyRate    float64 `json:"average_monthly_rate"`

	InvoicesCount            int `json:"invoices_count"`
	OutstandingInvoicesCount int `json:"outstanding_invoices_count"`
	OverdueInvoicesCount     int `json:"overdue_invoices_count"`

	PaymentsCount          int     `json:"payments_count"`
	CompletedPaymentsCount int     `json:"completed_payments_count"`
	PaymentRate            float64 `json:"payment_rate"`

	WorkOrdersCount           int `json:"work_orders_count"`
	PendingWorkOrdersCount    int `json:"pending_work_orders_count"`
	InProgressWorkOrdersCount int `json:"in_progress_work_orders_count"`

	BookingsCount         int `json:"bookings_count"`
	ActiveBookingsCount   int `json:"active_bookings_count"`
	UpcomingBookingsCount int `json:"upcoming_bookings_count"`

	MonthlyRevenue     float64 `json:"monthly_revenue"`
	OutstandingBalance float64 `json:"outstanding_balance"`
	TotalPaidAmount    float64 `json:"total_paid_amount"`

	HealthScore        int  `json:"health_score"`
	IsFullyOperational bool `json:"is_fully_operational"`
	NeedsAttention     bool `json:"needs_attention"`
}

// BuildMarinaSummary folds one marina's loaded relations into its operations
// summary. Occupancy counts come from the berth flags; revenue figures from
// the contract and payment folds.
func BuildMarinaSummary(m domain.Marina, now time.Time) MarinaSummary {
	s := MarinaSummary{Marina: m}
	s.Marina.Berths = nil
	s.Marina.Boats = nil
	s.Marina.Owners = nil
	s.Marina.Users = nil
	s.Marina.Contracts = nil
	s.Marina.Bookings = nil
	s.Marina.WorkOrders = nil
	s.Marina.Invoices = nil
	s.Marina.Payments = nil

	s.BerthsCount = len(m.Berths)
	s.OccupiedBerthsCount = CountWhere(m.Berths, func(b domain.Berth) bool { return !b.IsAvailable })
	s.AvailableBerthsCount = s.BerthsCount - s.OccupiedBerthsCount
	s.BerthUtilizationRate = Rate(s.OccupiedBerthsCount, s.BerthsCount)

	s.UsersCount = len(m.Users)
	s.StaffCount = CountWhere(m.Users, func(u domain.User) bool { return u.Role == domain.RoleStaff || u.Role == domain.RoleManager })
	s.AdminsCount = CountWhere(m.Users, func(u domain.User) bool { return u.Role == domain.RoleAdmin })

	s.BoatsCount = len(m.Boats)
	s.ActiveBoats = CountWhere(m.Boats, func(b domain.Boat) bool { return b.IsActive })
	s.OwnersCount = len(m.Owners)
	s.ActiveOwners = CountWhere(m.Owners, func(o domain.Owner) bool { return o.IsActive })

	s.ContractsCount = len(m.Contracts)
	s.ActiveContractsCount = CountWhere(m.Contracts, func(c domain.Contract) bool { return ContractActive(c, now) })
	s.PendingContractsCount = CountWhere(m.Contracts, ContractPending)
	s.AverageMonthlyRate = AverageMonthlyRate(m.Contracts)

	s.InvoicesCount = len(m.Invoices)
	s.OutstandingInvoicesCount = CountWhere(m.Invoices, InvoiceOutstanding)
	s.OverdueInvoicesCount = overdueCount(m.Invoices, now)

	s.PaymentsCount = len(m.Payments)
	s.CompletedPaymentsCount = CountWhere(m.Payments, PaymentCompleted)
	s.PaymentRate = Rate(s.CompletedPaymentsCount, s.InvoicesCount)

	s.WorkOrdersCount = len(m.WorkOrders)
	s.PendingWorkOrdersCount = CountWhere(m.WorkOrders, func(w domain.WorkOrder) bool {
		return w.Status == domain.WorkOrderPending
	})
	s.InProgressWorkOrdersCount = CountWhere(m.WorkOrders, func(w domain.WorkOrder) bool {
		return w.Status == domain.WorkOrderInProgress
	})

	s.BookingsCount = len(m.Bookings)
	s.ActiveBookingsCount = CountWhere(m.Bookings, func(b domain.Booking) bool {
		return BookingStatusAt(b, now) == domain.BookingActive
	})
	s.UpcomingBookingsCount = CountWhere(m.Bookings, func(b domain.Booking) bool {
		return BookingUpcoming(b, now)
	})

	s.MonthlyRevenue = MonthlyObligations(m.Contracts)
	s.OutstandingBalance = OutstandingAmount(m.Invoices)
	s.TotalPaidAmount = PaidAmount(m.Payments)

	s.HealthScore = MarinaHealthScore(m)
	s.IsFullyOperational = m.IsActive && m.IsOnline
	s.NeedsAttention = !m.IsActive || !m.IsOnline ||
		hasPendingWorkOrder(m.WorkOrders) || hasOutstandingInvoice(m.Invoices)

	return s
}
