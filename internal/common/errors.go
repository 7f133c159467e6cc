// Package common contains shared constants and sentinel errors used across
// the tracker client and server. Callers should match these with errors.Is.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// Token lifecycle errors.
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")

	// Client-facing failure taxonomy. Every provider or backend failure is
	// converted to one of these at the component boundary; raw transport
	// errors never reach the display layer.

	// ErrSilentAuth means a silent token acquisition failed. Recoverable by
	// falling back to the interactive flow; never shown to the user.
	ErrSilentAuth = errors.New("silent authentication failed")

	// ErrInteractiveAuth means the interactive login flow failed or was
	// cancelled by the user. Surfaced as a retryable failure.
	ErrInteractiveAuth = errors.New("interactive authentication failed")

	// ErrAuthorization means the current role set does not permit the
	// attempted action. Not retryable without a role change.
	ErrAuthorization = errors.New("not authorized")

	// ErrPersistence means the backend rejected or failed a mutation.
	// Local state is left unchanged; the operation is retryable.
	ErrPersistence = errors.New("persistence failed")

	// ErrNotificationDelivery means a best-effort notification insert
	// failed. Logged only; never blocks the originating operation.
	ErrNotificationDelivery = errors.New("notification delivery failed")

	// ErrConfiguration means the client is missing or misconfigured for its
	// external dependencies. Blocks all protected access until fixed.
	ErrConfiguration = errors.New("configuration error")
)
