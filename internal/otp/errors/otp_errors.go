package otperrors

import (
	"go-attendance/internal/shared/apperror"
	"net/http"
)

var (
	ErrUserNotFound = apperror.New(
		apperror.CodeNotFound,
		"No account is registered with this email",
		http.StatusNotFound,
	)

	ErrSuspiciousActivity = apperror.New(
		apperror.CodeSuspiciousActivity,
		"Suspicious activity detected: too many accounts requested an OTP from this device",
		http.StatusForbidden,
	)

	ErrInvalidOrExpired = apperror.New(
		apperror.CodeInvalidOTP,
		"Invalid or expired OTP",
		http.StatusBadRequest,
	)

	// ErrInvalidOTP is returned when a clock action presents a code that was
	// never verified, has expired, or was already used.
	ErrInvalidOTP = apperror.New(
		apperror.CodeInvalidOTP,
		"Invalid OTP",
		http.StatusBadRequest,
	)

	ErrOTPRequired = apperror.New(
		apperror.CodeValidation,
		"OTP code is required",
		http.StatusBadRequest,
	)
)
