package config

import "errors"

// Validation errors. Each wraps the concrete reason.
var (
	// ErrInvalidAdapterConfigs indicates missing client address or timeout.
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates a missing database DSN.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates a missing token sign key or duration.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidNetworkConfigs indicates an unknown network or no node url.
	ErrInvalidNetworkConfigs = errors.New("invalid network configuration")
	// ErrInvalidServerConfigs indicates that no listener is configured.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidWorkerConfigs indicates inconsistent worker intervals.
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
	// ErrUnsupportedConfigFile is returned for files that are neither
	// .json nor .toml.
	ErrUnsupportedConfigFile = errors.New("unsupported config file extension")
)
