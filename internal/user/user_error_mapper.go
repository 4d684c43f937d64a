package user

import (
	"errors"
	"strings"

	usererrors "go-attendance/internal/user/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return usererrors.ErrUserNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		switch pgErr.ConstraintName {
		case "uq_users_email":
			return usererrors.ErrEmailAlreadyRegistered
		case "uq_employee_profiles_nin":
			return usererrors.ErrNINAlreadyRegistered
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") {
		switch {
		case strings.Contains(errMsg, "uq_users_email"):
			return usererrors.ErrEmailAlreadyRegistered
		case strings.Contains(errMsg, "uq_employee_profiles_nin"):
			return usererrors.ErrNINAlreadyRegistered
		}
	}

	return err
}
