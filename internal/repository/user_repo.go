package repository

import (
	"context"
	"strings"

	"marinahub/internal/domain"
)

type UserRepository struct {
	db Conn
}

func NewUserRepository(db Conn) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, u *domain.User) error {
	u.Email = strings.ToLower(u.Email)
	return r.db.DB().WithContext(ctx).Create(u).Error
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var u domain.User
	err := r.db.DB().WithContext(ctx).
		Where("email = ?", strings.ToLower(email)).
		First(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	var u domain.User
	if err := r.db.DB().WithContext(ctx).First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) GetByMarina(ctx context.Context, marinaID int64) ([]domain.User, error) {
	var users []domain.User
	err := r.db.DB().WithContext(ctx).
		Where("marina_id = ?", marinaID).
		Order("id ASC").
		Find(&users).Error
	return users, err
}

func (r *UserRepository) Update(ctx context.Context, u *domain.User) error {
	return r.db.DB().WithContext(ctx).Save(u).Error
}
