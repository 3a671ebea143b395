package metrics

import "marinahub/internal/domain"

const (
	healthBase             = 100
	pendingOrderPenalty    = 10
	inProgressOrderPenalty = 5
	offlinePenalty         = 15
)

// HealthScore is the operational score derived from the entity's work-order
// backlog: 100 minus 10 per pending and 5 per in-progress order, floored at 0.
func HealthScore(orders []domain.WorkOrder) int {
	score := healthBase
	score -= pendingOrderPenalty * CountWhere(orders, func(w domain.WorkOrder) bool {
		return w.Status == domain.WorkOrderPending
	})
	score -= inProgressOrderPenalty * CountWhere(orders, func(w domain.WorkOrder) bool {
		return w.Status == domain.WorkOrderInProgress
	})
	if score < 0 {
		score = 0
	}
	return score
}

// MarinaHealthScore extends the work-order score with a connectivity penalty.
func MarinaHealthScore(m domain.Marina) int {
	score := HealthScore(m.WorkOrders)
	if !m.IsOnline {
		score -= offlinePenalty
	}
	if score < 0 {
		score = 0
	}
	return score
}

func hasPendingWorkOrder(orders []domain.WorkOrder) bool {
	return CountWhere(orders, func(w domain.WorkOrder) bool {
		return w.Status == domain.WorkOrderPending
	}) > 0
}

func hasOutstandingInvoice(invoices []domain.Invoice) bool {
	return CountWhere(invoices, InvoiceOutstanding) > 0
}
