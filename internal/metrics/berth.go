package metrics

import (
	"time"

	"marinahub/internal/domain"
)

type BerthSummary struct {
	domain.Berth

	ContractsCount         int `json:"contracts_count"`
	BookingsCount          int `json:"bookings_count"`
	WorkOrdersCount        int `json:"work_orders_count"`
	PendingWorkOrdersCount int `json:"pending_work_orders_count"`

	HasActiveContract bool `json:"has_active_contract"`
	HasActiveBooking  bool `json:"has_active_booking"`
	IsOccupied        bool `json:"is_occupied"`

	// Binary occupancy, 0 or 100, keyed off the availability flag.
	UtilizationRate float64 `json:"utilization_rate"`

	MonthlyRevenue float64 `json:"monthly_revenue"`

	HealthScore    int  `json:"health_score"`
	NeedsAttention bool `json:"needs_attention"`
}

func BuildBerthSummary(b domain.Berth, now time.Time) BerthSummary {
	s := BerthSummary{Berth: b}
	s.Berth.Contracts = nil
	s.Berth.Bookings = nil
	s.Berth.WorkOrders = nil

	s.ContractsCount = len(b.Contracts)
	s.BookingsCount = len(b.Bookings)
	s.WorkOrdersCount = len(b.WorkOrders)
	s.PendingWorkOrdersCount = CountWhere(b.WorkOrders, func(w domain.WorkOrder) bool {
		return w.Status == domain.WorkOrderPending
	})

	s.HasActiveContract = CountWhere(b.Contracts, func(c domain.Contract) bool { return ContractActive(c, now) }) > 0
	s.HasActiveBooking = CountWhere(b.Bookings, func(bk domain.Booking) bool {
		return BookingStatusAt(bk, now) == domain.BookingActive
	}) > 0
	s.IsOccupied = s.HasActiveContract || s.HasActiveBooking

	if !b.IsAvailable {
		s.UtilizationRate = 100
	}

	s.MonthlyRevenue = MonthlyObligations(b.Contracts)

	s.HealthScore = HealthScore(b.WorkOrders)
	s.NeedsAttention = hasPendingWorkOrder(b.WorkOrders)

	return s
}
