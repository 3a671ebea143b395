package workorder

import (
	"context"
	"errors"
	"strings"
	"time"

	"marinahub/internal/domain"
	"marinahub/internal/repository"

	"gorm.io/gorm"
)

var transitions = map[domain.WorkOrderStatus][]domain.WorkOrderStatus{
	domain.WorkOrderPending:    {domain.WorkOrderInProgress, domain.WorkOrderCancelled},
	domain.WorkOrderInProgress: {domain.WorkOrderCompleted, domain.WorkOrderCancelled},
}

func transitionAllowed(from, to domain.WorkOrderStatus) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

type Service struct {
	orders WorkOrderRepository
	now    func() time.Time
}

func NewService(orders WorkOrderRepository) *Service {
	return &Service{
		orders: orders,
		now:    time.Now,
	}
}

func (s *Service) Create(ctx context.Context, req CreateWorkOrderRequest) (*domain.WorkOrder, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, ErrValidation
	}

	priority := domain.WorkOrderPriority(req.Priority)
	if priority == "" {
		priority = domain.PriorityNormal
	}

	w := &domain.WorkOrder{
		MarinaID:      req.MarinaID,
		OwnerID:       req.OwnerID,
		BoatID:        req.BoatID,
		BerthID:       req.BerthID,
		Status:        domain.WorkOrderPending,
		Priority:      priority,
		Title:         strings.TrimSpace(req.Title),
		Description:   req.Description,
		TotalCost:     req.TotalCost,
		RequestedDate: s.now(),
	}

	if err := s.orders.Create(ctx, w); err != nil {
		return nil, err
	}
	return w, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.WorkOrder, error) {
	w, err := s.orders.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return w, nil
}

func (s *Service) List(ctx context.Context, q ListQuery) ([]domain.WorkOrder, int64, error) {
	return s.orders.GetAll(ctx, repository.WorkOrderFilters{
		MarinaID: q.MarinaID,
		OwnerID:  q.OwnerID,
		Status:   domain.WorkOrderStatus(q.Status),
		Limit:    q.Limit,
		Offset:   q.Offset,
	})
}

func (s *Service) Update(ctx context.Context, id int64, req UpdateWorkOrderRequest) (*domain.WorkOrder, error) {
	w, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if w.Status == domain.WorkOrderCompleted || w.Status == domain.WorkOrderCancelled {
		return nil, ErrInvalidStatusTransition
	}

	if req.Title != nil {
		if strings.TrimSpace(*req.Title) == "" {
			return nil, ErrValidation
		}
		w.Title = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		w.Description = *req.Description
	}
	if req.Priority != nil {
		w.Priority = domain.WorkOrderPriority(*req.Priority)
	}
	if req.TotalCost != nil {
		if *req.TotalCost < 0 {
			return nil, ErrValidation
		}
		w.TotalCost = *req.TotalCost
	}

	if err := s.orders.Update(ctx, w); err != nil {
		return nil, err
	}
	return w, nil
}

// UpdateStatus moves the order through its lifecycle; completion stamps
// completed_date in the repository.
func (s *Service) UpdateStatus(ctx context.Context, id int64, status domain.WorkOrderStatus) (*domain.WorkOrder, error) {
	w, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !transitionAllowed(w.Status, status) {
		return nil, ErrInvalidStatusTransition
	}

	now := s.now()
	if err := s.orders.UpdateStatus(ctx, id, status, now); err != nil {
		return nil, err
	}

	w.Status = status
	if status == domain.WorkOrderCompleted {
		w.CompletedDate = &now
	}
	return w, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.orders.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
