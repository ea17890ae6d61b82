package domain

import "errors"

// Domain errors
var (
	// Authentication errors. ErrInvalidCredentials covers both unknown
	// email and wrong password so responses never reveal which one it was.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrMissingToken       = errors.New("missing token")
	ErrInvalidToken       = errors.New("invalid token")
	ErrTokenExpired       = errors.New("token expired")

	// ErrTokenRevoked means a refresh token verified cryptographically but
	// is no longer the one stored for the user (logout or a newer login).
	ErrTokenRevoked = errors.New("token revoked")

	// Authorization errors
	ErrForbidden = errors.New("insufficient role")

	// Not found errors
	ErrUserNotFound        = errors.New("user not found")
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrServiceNotFound     = errors.New("service not found")
	ErrClientNotFound      = errors.New("client not found")
	ErrSupplierNotFound    = errors.New("supplier not found")

	// Conflict errors
	ErrEmailTaken = errors.New("email already registered")

	// Validation errors
	ErrMissingFields = errors.New("required fields missing")
	ErrInvalidStatus = errors.New("invalid status value")
	ErrInvalidRole   = errors.New("invalid role value")
	ErrInvalidID     = errors.New("invalid id")
)

// IsNotFoundError checks if the error is a not found error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrAppointmentNotFound) ||
		errors.Is(err, ErrServiceNotFound) ||
		errors.Is(err, ErrClientNotFound) ||
		errors.Is(err, ErrSupplierNotFound)
}

// IsValidationError checks if the error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrMissingFields) ||
		errors.Is(err, ErrInvalidStatus) ||
		errors.Is(err, ErrInvalidRole) ||
		errors.Is(err, ErrInvalidID)
}

// IsAuthenticationError checks if the error maps to a 401
func IsAuthenticationError(err error) bool {
	return errors.Is(err, ErrInvalidCredentials) ||
		errors.Is(err, ErrMissingToken) ||
		errors.Is(err, ErrInvalidToken) ||
		errors.Is(err, ErrTokenExpired)
}
