package store

import "errors"

// Sentinel errors returned by repository methods. Callers match them with
// [errors.Is].
var (
	// ErrWalletAlreadyExists is returned by Create when the identifier
	// already has stored material.
	ErrWalletAlreadyExists = errors.New("wallet already exists")

	// ErrWalletNotFound is returned when no material is stored for the
	// identifier.
	ErrWalletNotFound = errors.New("wallet was not found")

	// ErrWalletNotSaved is returned when a write affected no rows.
	ErrWalletNotSaved = errors.New("wallet was not saved")

	// ErrUnsupportedDSN is returned when the DSN matches no known driver.
	ErrUnsupportedDSN = errors.New("unsupported database dsn")
)

// Low-level database errors, wrapped together with the driver error.
var (
	ErrBuildingSQLQuery   = errors.New("error building sql query")
	ErrExecutingQuery     = errors.New("error executing sql query")
	ErrExecutingStatement = errors.New("failed to executing statement")
	ErrScanningRow        = errors.New("failed to scan wallet row")
)
