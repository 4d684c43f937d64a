package auth

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=auth_repo.go -destination=mock/auth_repo_mock.go -package=mock
type Repository interface {
	FindByEmail(ctx context.Context, email string) (*Account, error)
	FindByID(ctx context.Context, id string) (*Account, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) accounts(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("users AS u").
		Select("u.id, u.email, u.password_hash, u.role, u.organization_id, u.supervisor_id, u.is_active, u.email_verified, p.first_name, p.last_name").
		Joins("LEFT JOIN employee_profiles AS p ON p.user_id = u.id")
}

func (r *repository) FindByEmail(ctx context.Context, email string) (*Account, error) {
	var a Account
	err := r.accounts(ctx).Where("u.email = ?", email).Take(&a).Error
	return &a, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Account, error) {
	var a Account
	err := r.accounts(ctx).Where("u.id = ?", id).Take(&a).Error
	return &a, err
}
