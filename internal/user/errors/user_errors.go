package usererrors

import (
	"go-attendance/internal/shared/apperror"
	"net/http"
)

var (
	ErrUserNotFound = apperror.New(
		apperror.CodeNotFound,
		"User not found",
		http.StatusNotFound,
	)

	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found or access denied",
		http.StatusNotFound,
	)

	ErrEmailAlreadyRegistered = apperror.New(
		apperror.CodeConflict,
		"Email already registered",
		http.StatusConflict,
	)

	ErrNINAlreadyRegistered = apperror.New(
		apperror.CodeConflict,
		"NIN already registered",
		http.StatusConflict,
	)

	ErrInvalidSetupToken = apperror.New(
		apperror.CodeNotFound,
		"Invalid or expired setup token",
		http.StatusNotFound,
	)

	ErrPasswordMismatch = apperror.New(
		apperror.CodeValidation,
		"Passwords do not match",
		http.StatusBadRequest,
	)

	ErrPasswordTooShort = apperror.New(
		apperror.CodeValidation,
		"Password must be at least 6 characters",
		http.StatusBadRequest,
	)

	ErrUserInactive = apperror.New(
		apperror.CodeForbidden,
		"User is inactive",
		http.StatusForbidden,
	)
)
