package repository

import (
	"context"

	"marinahub/internal/domain"

	"gorm.io/gorm"
)

type BoatRepository struct {
	db Conn
}

func NewBoatRepository(db Conn) *BoatRepository {
	return &BoatRepository{db: db}
}

func (r *BoatRepository) Create(ctx context.Context, b *domain.Boat) error {
	return r.db.DB().WithContext(ctx).Create(b).Error
}

func (r *BoatRepository) GetByID(ctx context.Context, id int64) (*domain.Boat, error) {
	var b domain.Boat
	if err := r.db.DB().WithContext(ctx).First(&b, id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BoatRepository) GetByOwner(ctx context.Context, ownerID int64) ([]domain.Boat, error) {
	var boats []domain.Boat
	err := r.db.DB().WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("id ASC").
		Find(&boats).Error
	return boats, err
}

func (r *BoatRepository) Update(ctx context.Context, b *domain.Boat) error {
	return r.db.DB().WithContext(ctx).Save(b).Error
}

// AssignBerth moves the boat to a berth; nil clears the assignment.
func (r *BoatRepository) AssignBerth(ctx context.Context, boatID int64, berthID *int64) error {
	tx := r.db.DB().WithContext(ctx).
		Model(&domain.Boat{}).
		Where("id = ?", boatID).
		Update("berth_id", berthID)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *BoatRepository) Delete(ctx context.Context, id int64) error {
	tx := r.db.DB().WithContext(ctx).Delete(&domain.Boat{}, id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
