package metrics

import (
	"time"

	"marinahub/internal/domain"
)

type ContractSummary struct {
	domain.Contract

	IsActive  bool `json:"is_active"`
	IsPending bool `json:"is_pending"`

	// 0 when the contract has no end date.
	DaysUntilExpiry int `json:"days_until_expiry"`

	InvoicesCount            int `json:"invoices_count"`
	OutstandingInvoicesCount int `json:"outstanding_invoices_count"`
	OverdueInvoicesCount     int `json:"overdue_invoices_count"`

	TotalInvoicedAmount  float64 `json:"total_invoiced_amount"`
	OutstandingAmount    float64 `json:"outstanding_amount"`
	EffectiveMonthlyRate float64 `json:"effective_monthly_rate"`
}

func BuildContractSummary(c domain.Contract, now time.Time) ContractSummary {
	s := ContractSummary{Contract: c}
	s.Contract.Invoices = nil
	s.Contract.Owner = nil
	s.Contract.Boat = nil
	s.Contract.Berth = nil

	s.IsActive = ContractActive(c, now)
	s.IsPending = ContractPending(c)

	if c.EndDate != nil {
		s.DaysUntilExpiry = DaysUntil(*c.EndDate, now)
	}

	s.InvoicesCount = len(c.Invoices)
	s.OutstandingInvoicesCount = CountWhere(c.Invoices, InvoiceOutstanding)
	s.OverdueInvoicesCount = overdueCount(c.Invoices, now)

	s.TotalInvoicedAmount = SumWhere(c.Invoices,
		func(inv domain.Invoice) bool { return inv.Status != domain.InvoiceCancelled },
		func(inv domain.Invoice) float64 { return inv.Total })
	s.OutstandingAmount = OutstandingAmount(c.Invoices)
	if c.MonthlyRate != nil {
		s.EffectiveMonthlyRate = *c.MonthlyRate
	}

	return s
}
