package user

import (
	"context"
	"database/sql"

	"go-attendance/internal/domain"
	"go-attendance/internal/shared/connection"
	"go-attendance/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=user_repo.go -destination=mock/user_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, u *User) error
	CreateProfile(ctx context.Context, p *Profile) error
	FindByID(ctx context.Context, id string) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindBySetupToken(ctx context.Context, token string) (*User, error)
	FindAllBySupervisor(ctx context.Context, supervisorID string) ([]User, error)
	FindAllByRole(ctx context.Context, organizationID string, role domain.Role) ([]User, error)
	CompleteSetup(ctx context.Context, token, passwordHash string) (bool, error)
	OrganizationName(ctx context.Context, organizationID string) (string, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: connection.BindTx(r.db, tx)}
}

func (r *repository) Create(ctx context.Context, u *User) error {
	return r.db.WithContext(ctx).Omit("Profile").Create(u).Error
}

func (r *repository) CreateProfile(ctx context.Context, p *Profile) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*User, error) {
	var u User
	err := r.db.WithContext(ctx).
		Preload("Profile").
		First(&u, "id = ?", id).Error
	return &u, err
}

func (r *repository) FindByEmail(ctx context.Context, email string) (*User, error) {
	var u User
	err := r.db.WithContext(ctx).First(&u, "email = ?", email).Error
	return &u, err
}

func (r *repository) FindBySetupToken(ctx context.Context, token string) (*User, error) {
	var u User
	err := r.db.WithContext(ctx).
		Preload("Profile").
		First(&u, "setup_token = ?", token).Error
	return &u, err
}

func (r *repository) FindAllBySupervisor(ctx context.Context, supervisorID string) ([]User, error) {
	var users []User
	err := r.db.WithContext(ctx).
		Preload("Profile").
		Where("supervisor_id = ?", supervisorID).
		Where("role = ?", domain.RoleEmployee.String()).
		Order("created_at DESC").
		Find(&users).Error
	return users, err
}

func (r *repository) FindAllByRole(ctx context.Context, organizationID string, role domain.Role) ([]User, error) {
	var users []User
	err := r.db.WithContext(ctx).
		Preload("Profile").
		Scopes(tenant.Scope(organizationID)).
		Where("role = ?", role.String()).
		Order("created_at DESC").
		Find(&users).Error
	return users, err
}

// CompleteSetup redeems a setup token. It reports false when the token was
// already consumed, so a token can set a password at most once.
func (r *repository) CompleteSetup(ctx context.Context, token, passwordHash string) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&User{}).
		Where("setup_token = ?", token).
		Updates(map[string]any{
			"password_hash":  passwordHash,
			"email_verified": true,
			"setup_token":    nil,
		})
	return res.RowsAffected == 1, res.Error
}

func (r *repository) OrganizationName(ctx context.Context, organizationID string) (string, error) {
	var name string
	err := r.db.WithContext(ctx).
		Table("organizations").
		Select("name").
		Where("id = ?", organizationID).
		Scan(&name).Error
	return name, err
}
