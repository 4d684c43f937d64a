package otp

import (
	"context"
	"database/sql"
	"time"

	"go-attendance/internal/shared/connection"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=otp_repo.go -destination=mock/otp_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	UserExists(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, e *Entry) error
	DistinctEmailsSince(ctx context.Context, deviceIP string, since time.Time) ([]string, error)
	FindVerifiable(ctx context.Context, email, code, deviceIP string, now time.Time) (*Entry, error)
	MarkVerified(ctx context.Context, id uuid.UUID, at time.Time) (bool, error)
	FindRedeemable(ctx context.Context, email, code, deviceIP string, now time.Time) (*Entry, error)
	MarkConsumed(ctx context.Context, id uuid.UUID, purpose string, at time.Time) (bool, error)
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

func (r *repository) UserExists(ctx context.Context, email string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Table("users").
		Where("email = ?", email).
		Where("is_active = ?", true).
		Count(&n).Error
	return n > 0, err
}

func (r *repository) Create(ctx context.Context, e *Entry) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *repository) DistinctEmailsSince(ctx context.Context, deviceIP string, since time.Time) ([]string, error) {
	var emails []string
	err := r.db.WithContext(ctx).
		Model(&Entry{}).
		Where("device_ip = ?", deviceIP).
		Where("created_at > ?", since).
		Distinct().
		Pluck("email", &emails).Error
	return emails, err
}

func (r *repository) FindVerifiable(ctx context.Context, email, code, deviceIP string, now time.Time) (*Entry, error) {
	var e Entry
	err := r.db.WithContext(ctx).
		Where("email = ? AND code = ? AND device_ip = ?", email, code, deviceIP).
		Where("used = ?", false).
		Where("expires_at > ?", now).
		Order("created_at DESC").
		First(&e).Error
	return &e, err
}

// MarkVerified only succeeds for an entry that is still unused, so two
// concurrent verifications of the same code cannot both win.
func (r *repository) MarkVerified(ctx context.Context, id uuid.UUID, at time.Time) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&Entry{}).
		Where("id = ? AND used = ?", id, false).
		Updates(map[string]any{"used": true, "verified_at": at})
	return res.RowsAffected == 1, res.Error
}

func (r *repository) FindRedeemable(ctx context.Context, email, code, deviceIP string, now time.Time) (*Entry, error) {
	var e Entry
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("email = ? AND code = ? AND device_ip = ?", email, code, deviceIP).
		Where("used = ?", true).
		Where("consumed_at IS NULL").
		Where("expires_at > ?", now).
		Order("verified_at DESC").
		First(&e).Error
	return &e, err
}

func (r *repository) MarkConsumed(ctx context.Context, id uuid.UUID, purpose string, at time.Time) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&Entry{}).
		Where("id = ? AND consumed_at IS NULL", id).
		Updates(map[string]any{"consumed_at": at, "consumed_for": purpose})
	return res.RowsAffected == 1, res.Error
}
