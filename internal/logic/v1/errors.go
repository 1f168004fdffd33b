// Package v1 holds the business logic for API version 1.
//
// Failures are reported through the sentinel errors below, wrapped with
// context via fmt.Errorf("...: %w", err). Handlers classify them with
// errors.Is and map each to an HTTP status.
package v1

import "errors"

var (
	// ErrInvalidCredentials covers both unknown email and wrong
	// password, so login failures are indistinguishable to the caller.
	// HTTP Status: 401 Unauthorized
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrEmailTaken indicates the email is already registered.
	// HTTP Status: 400 Bad Request
	ErrEmailTaken = errors.New("email already taken")

	// ErrNotFound indicates a referenced entity does not exist.
	// HTTP Status: 404 Not Found
	ErrNotFound = errors.New("not found")

	// ErrAlreadyParticipating indicates the user is already in the
	// session's participant list.
	// HTTP Status: 400 Bad Request
	ErrAlreadyParticipating = errors.New("already participating")

	// ErrNotParticipating indicates the user is not in the session's
	// participant list.
	// HTTP Status: 400 Bad Request
	ErrNotParticipating = errors.New("not participating")

	// ErrForbidden indicates an authenticated caller is not permitted
	// to act on the target resource.
	// HTTP Status: 401 Unauthorized
	ErrForbidden = errors.New("forbidden")

	// ErrTokenExpired indicates the token's expiry has passed.
	ErrTokenExpired = errors.New("token expired")

	// ErrTokenMalformed indicates the token could not be parsed.
	ErrTokenMalformed = errors.New("token malformed")

	// ErrTokenInvalid indicates the token signature did not verify.
	ErrTokenInvalid = errors.New("token invalid")
)
