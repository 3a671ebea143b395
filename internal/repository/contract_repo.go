package repository

import (
	"context"

	"marinahub/internal/domain"

	"gorm.io/gorm"
)

type ContractRepository struct {
	db Conn
}

func NewContractRepository(db Conn) *ContractRepository {
	return &ContractRepository{db: db}
}

func (r *ContractRepository) Create(ctx context.Context, c *domain.Contract) error {
	return r.db.DB().WithContext(ctx).Create(c).Error
}

func (r *ContractRepository) GetByID(ctx context.Context, id int64) (*domain.Contract, error) {
	var c domain.Contract
	if err := r.db.DB().WithContext(ctx).First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *ContractRepository) GetWithInvoices(ctx context.Context, id int64) (*domain.Contract, error) {
	var c domain.Contract
	err := r.db.DB().WithContext(ctx).
		Preload("Invoices").
		First(&c, id).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *ContractRepository) GetByMarina(ctx context.Context, marinaID int64) ([]domain.Contract, error) {
	var contracts []domain.Contract
	err := r.db.DB().WithContext(ctx).
		Where("marina_id = ?", marinaID).
		Order("id ASC").
		Find(&contracts).Error
	return contracts, err
}

func (r *ContractRepository) GetByOwner(ctx context.Context, ownerID int64) ([]domain.Contract, error) {
	var contracts []domain.Contract
	err := r.db.DB().WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("id ASC").
		Find(&contracts).Error
	return contracts, err
}

// HasActiveContractForBerth reports whether another active contract already
// occupies the berth.
func (r *ContractRepository) HasActiveContractForBerth(ctx context.Context, berthID int64) (bool, error) {
	var cnt int64
	err := r.db.DB().WithContext(ctx).
		Model(&domain.Contract{}).
		Where("berth_id = ? AND status = ?", berthID, domain.ContractActive).
		Count(&cnt).Error
	if err != nil {
		return false, err
	}
	return cnt > 0, nil
}

func (r *ContractRepository) Update(ctx context.Context, c *domain.Contract) error {
	return r.db.DB().WithContext(ctx).Save(c).Error
}

func (r *ContractRepository) UpdateStatus(ctx context.Context, id int64, status domain.ContractStatus) error {
	tx := r.db.DB().WithContext(ctx).
		Model(&domain.Contract{}).
		Where("id = ?", id).
		Update("status", status)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *ContractRepository) Delete(ctx context.Context, id int64) error {
	tx := r.db.DB().WithContext(ctx).Delete(&domain.Contract{}, id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
