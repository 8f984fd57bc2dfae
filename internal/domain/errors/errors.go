// Package errors defines the application-level error contract shared by the
// use case and delivery layers.
package errors

import (
	"net/http"

	"greenloop/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types. Messages are user-facing and localized in French.
var (
	// User-related errors
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"Utilisateur introuvable",
		"",
	)

	ErrUserAlreadyExists = NewBaseError(
		http.StatusConflict,
		"USER_ALREADY_EXISTS",
		"Cette adresse e-mail est déjà utilisée",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"E-mail ou mot de passe incorrect",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"Erreur lors du traitement du mot de passe",
		"",
	)

	// Announcement lifecycle errors
	ErrAnnouncementNotFound = NewBaseError(
		http.StatusNotFound,
		"ANNOUNCEMENT_NOT_FOUND",
		"Annonce introuvable",
		"",
	)

	ErrAnnouncementNotAvailable = NewBaseError(
		http.StatusBadRequest,
		"ANNOUNCEMENT_NOT_AVAILABLE",
		"Cette annonce n'est pas disponible",
		"",
	)

	ErrAnnouncementNotReserved = NewBaseError(
		http.StatusBadRequest,
		"ANNOUNCEMENT_NOT_RESERVED",
		"Cette annonce n'est pas réservée",
		"",
	)

	ErrNotDepositor = NewBaseError(
		http.StatusForbidden,
		"NOT_DEPOSITOR",
		"Seul le déposant peut effectuer cette action",
		"",
	)

	ErrNotReservationOwner = NewBaseError(
		http.StatusForbidden,
		"NOT_RESERVATION_OWNER",
		"Cette réservation appartient à un autre collecteur",
		"",
	)

	// Collection token errors. Each validation failure carries a distinct code.
	ErrMalformedQRCode = NewBaseError(
		http.StatusBadRequest,
		"QR_MALFORMED",
		"Code illisible",
		"",
	)

	ErrInvalidQRToken = NewBaseError(
		http.StatusBadRequest,
		"QR_INVALID_TOKEN",
		"Jeton de collecte invalide",
		"",
	)

	ErrWrongAnnouncement = NewBaseError(
		http.StatusBadRequest,
		"QR_WRONG_ANNOUNCEMENT",
		"Ce code appartient à une autre annonce",
		"",
	)

	ErrExpiredQRCode = NewBaseError(
		http.StatusBadRequest,
		"QR_EXPIRED",
		"Code de collecte expiré",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Les données fournies sont invalides",
		"",
	)

	ErrInvalidCategory = NewBaseError(
		http.StatusBadRequest,
		"INVALID_CATEGORY",
		"Catégorie de déchets inconnue",
		"",
	)

	// Collection record errors
	ErrCollectionNotFound = NewBaseError(
		http.StatusNotFound,
		"COLLECTION_NOT_FOUND",
		"Collecte introuvable",
		"",
	)

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"Échec de la transaction",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Erreur interne du serveur",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Accès refusé",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Ressource introuvable",
		"",
	)
)

// InvalidStateError names the current lifecycle state in its details so the
// caller knows why the transition was refused.
func InvalidStateError(currentState string) *BaseError {
	return NewBaseError(
		http.StatusBadRequest,
		"INVALID_STATE",
		"Opération impossible dans l'état actuel de l'annonce",
		"current state: "+currentState,
	)
}

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Échec de l'accès à la base de données"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
