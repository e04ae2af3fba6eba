package session

import "errors"

var (
	// ErrSessionBusy is returned by Reserve while another command holds a
	// reservation for the same identifier.
	ErrSessionBusy = errors.New("another command is in progress for this wallet")

	// ErrSessionExists is returned by Reserve when a session is open.
	ErrSessionExists = errors.New("session already open")

	// ErrStorageNotConfigured is returned by Storage when the registry was
	// built without a storage backend.
	ErrStorageNotConfigured = errors.New("storage backend is not configured")

	// ErrInvalidAmount is returned by ParseAmount.
	ErrInvalidAmount = errors.New("invalid amount")
)
