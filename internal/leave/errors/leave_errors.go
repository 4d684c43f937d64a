package leaveerrors

import (
	"net/http"

	"go-attendance/internal/shared/apperror"
)

var (
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeValidation,
		"Invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidRange = apperror.New(
		apperror.CodeValidation,
		"Start date must be before or equal to end date",
		http.StatusBadRequest,
	)
	ErrPastDate = apperror.New(
		apperror.CodeValidation,
		"Leave cannot start in the past",
		http.StatusBadRequest,
	)
	ErrInvalidDecision = apperror.New(
		apperror.CodeValidation,
		"Status must be one of: approved, rejected",
		http.StatusBadRequest,
	)
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrNoSupervisor = apperror.New(
		apperror.CodeInvalidState,
		"Employee has no supervisor assigned",
		http.StatusConflict,
	)
	ErrLeaveOverlap = apperror.New(
		apperror.CodeConflict,
		"A leave request already exists in an overlapping period",
		http.StatusConflict,
	)
	ErrLeaveNotFound = apperror.New(
		apperror.CodeNotFound,
		"Leave request not found",
		http.StatusNotFound,
	)
	ErrLeaveAlreadyDecided = apperror.New(
		apperror.CodeConflict,
		"Leave request has already been decided",
		http.StatusConflict,
	)
)

var ErrInvalidStatusFilter = apperror.New(
	apperror.CodeValidation,
	"Status filter must be one of: pending, approved, rejected",
	http.StatusBadRequest,
)
