package attendanceerrors

import (
	"go-attendance/internal/shared/apperror"
	"net/http"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found or access denied",
		http.StatusNotFound,
	)

	ErrAlreadyClockedIn = apperror.New(
		apperror.CodeConflict,
		"Employee already clocked in today",
		http.StatusConflict,
	)

	ErrNotClockedIn = apperror.New(
		apperror.CodeInvalidState,
		"Employee has not clocked in today",
		http.StatusConflict,
	)

	ErrAlreadyClockedOut = apperror.New(
		apperror.CodeConflict,
		"Employee already clocked out today",
		http.StatusConflict,
	)

	ErrClockOutNotAfterClockIn = apperror.New(
		apperror.CodeInvalidState,
		"Clock-out must be later than clock-in",
		http.StatusConflict,
	)

	ErrInvalidMethod = apperror.New(
		apperror.CodeValidation,
		"Method must be one of: fingerprint, otp",
		http.StatusBadRequest,
	)

	ErrInvalidDate = apperror.New(
		apperror.CodeValidation,
		"Dates must use the YYYY-MM-DD format",
		http.StatusBadRequest,
	)

	ErrInvalidRange = apperror.New(
		apperror.CodeValidation,
		"Start date must not be after end date",
		http.StatusBadRequest,
	)
)
