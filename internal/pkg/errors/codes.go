package errors

import "net/http"

var (
	ErrValidation = New(
		"VALIDATION_ERROR",
		"Request validation failed",
		http.StatusUnprocessableEntity,
	)

	ErrNotFound = New(
		"NOT_FOUND",
		"Referenced entity not found",
		http.StatusNotFound,
	)

	ErrConflict = New(
		"CONFLICT",
		"Entity conflicts with existing data",
		http.StatusBadRequest,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request body",
		http.StatusUnprocessableEntity,
	)

	ErrDatabaseError = New(
		"DATABASE_ERROR",
		"Database operation failed",
		http.StatusInternalServerError,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
