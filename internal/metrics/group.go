package metrics

import (
	"time"

	"marinahub/internal/domain"
)

type GroupSummary struct {
	domain.MarinaGroup

	MarinasCount       int `json:"marinas_count"`
	ActiveMarinasCount int `json:"active_marinas_count"`
	OnlineMarinasCount int `json:"online_marinas_count"`

	BerthsCount          int     `json:"berths_count"`
	OccupiedBerthsCount  int     `json:"occupied_berths_count"`
	BerthUtilizationRate float64 `json:"berth_utilization_rate"`

	BoatsCount      int `json:"boats_count"`
	OwnersCount     int `json:"customers_count"`
	ContractsCount  int `json:"contracts_count"`
	ActiveContracts int `json:"active_contracts_count"`
	InvoicesCount   int `json:"invoices_count"`
	PaymentsCount   int `json:"payments_count"`
	WorkOrdersCount int `json:"work_orders_count"`
	BookingsCount   int `json:"bookings_count"`

	MonthlyRevenue     float64 `json:"monthly_revenue"`
	OutstandingBalance float64 `json:"outstanding_balance"`
	TotalPaidAmount    float64 `json:"total_paid_amount"`

	HealthScore    int  `json:"health_score"`
	NeedsAttention bool `json:"needs_attention"`

	MarinaSummaries []MarinaSummary `json:"marina_summaries,omitempty"`
}

// BuildGroupSummary fans out over the group's member marinas, builds each
// marina summary, and sums their counts. The group health score is the mean
// of the member scores, 100 for an empty group.
func BuildGroupSummary(g domain.MarinaGroup, now time.Time) GroupSummary {
	s := GroupSummary{MarinaGroup: g}
	s.MarinaGroup.Marinas = nil

	s.MarinasCount = len(g.Marinas)
	if s.MarinasCount == 0 {
		s.HealthScore = healthBase
		return s
	}

	scoreSum := 0
	for _, m := range g.Marinas {
		ms := BuildMarinaSummary(m, now)
		s.MarinaSummaries = append(s.MarinaSummaries, ms)

		if m.IsActive {
			s.ActiveMarinasCount++
		}
		if m.IsOnline {
			s.OnlineMarinasCount++
		}

		s.BerthsCount += ms.BerthsCount
		s.OccupiedBerthsCount += ms.OccupiedBerthsCount
		s.BoatsCount += ms.BoatsCount
		s.OwnersCount += ms.OwnersCount
		s.ContractsCount += ms.ContractsCount
		s.ActiveContracts += ms.ActiveContractsCount
		s.InvoicesCount += ms.InvoicesCount
		s.PaymentsCount += ms.PaymentsCount
		s.WorkOrdersCount += ms.WorkOrdersCount
		s.BookingsCount += ms.BookingsCount

		s.MonthlyRevenue = RoundCents(s.MonthlyRevenue + ms.MonthlyRevenue)
		s.OutstandingBalance = RoundCents(s.OutstandingBalance + ms.OutstandingBalance)
		s.TotalPaidAmount = RoundCents(s.TotalPaidAmount + ms.TotalPaidAmount)

		scoreSum += ms.HealthScore
		if ms.NeedsAttention {
			s.NeedsAttention = true
		}
	}

	s.BerthUtilizationRate = Rate(s.OccupiedBerthsCount, s.BerthsCount)
	s.HealthScore = scoreSum / s.MarinasCount

	return s
}
