package repository

import (
	"context"
	"fmt"

	"marinahub/internal/domain"
)

// CountsRepository answers record-count queries for the data source
// validation harness.
type CountsRepository struct {
	db Conn
}

func NewCountsRepository(db Conn) *CountsRepository {
	return &CountsRepository{db: db}
}

func (r *CountsRepository) CountRecords(ctx context.Context, dataType string) (int64, error) {
	model, err := modelForDataType(dataType)
	if err != nil {
		return 0, err
	}

	var cnt int64
	if err := r.db.DB().WithContext(ctx).Model(model).Count(&cnt).Error; err != nil {
		return 0, err
	}
	return cnt, nil
}

func modelForDataType(dataType string) (any, error) {
	switch dataType {
	case "marinas":
		return &domain.Marina{}, nil
	case "owners", "customers": // customers is the legacy alias
		return &domain.Owner{}, nil
	case "boats":
		return &domain.Boat{}, nil
	case "berths":
		return &domain.Berth{}, nil
	case "contracts":
		return &domain.Contract{}, nil
	case "bookings":
		return &domain.Booking{}, nil
	case "invoices":
		return &domain.Invoice{}, nil
	case "payments":
		return &domain.Payment{}, nil
	case "work_orders":
		return &domain.WorkOrder{}, nil
	default:
		return nil, fmt.Errorf("unknown data type %q", dataType)
	}
}
