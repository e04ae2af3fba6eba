package config

import (
	"fmt"
	"time"
)

// Client transports.
const (
	TransportHTTP = "http"
	TransportGRPC = "grpc"
)

// ClientApp holds the settings the client needs to mint tokens locally.
type ClientApp struct {
	TokenSignKey  string
	TokenIssuer   string
	TokenDuration time.Duration
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	HTTPAddress    string
	GRPCAddress    string
	RequestTimeout time.Duration
	Token          string
	// Transport is "http" or "grpc". Set from the --transport flag.
	Transport string
}

// ClientConfig is the client view assembled from [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
}

// GetClientConfig builds the client configuration from the environment, an
// optional file and defaults. Command-line flags are owned by cobra and are
// applied by the caller on top of the result.
func GetClientConfig() (*ClientConfig, error) {
	b := newConfigBuilder()
	b.validator = nil

	cfg, err := b.withEnv().withFile().withDefaults().build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return clientConfigFrom(cfg), nil
}

func clientConfigFrom(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			TokenSignKey:  cfg.App.TokenSignKey,
			TokenIssuer:   cfg.App.TokenIssuer,
			TokenDuration: cfg.App.TokenDuration,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			GRPCAddress:    cfg.Adapter.GRPCAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
			Token:          cfg.Adapter.Token,
		},
	}
}

// Validate checks the client configuration after flags were applied.
func (cfg *ClientConfig) Validate() error {
	if cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}
	switch cfg.Adapter.Transport {
	case "", TransportHTTP:
		if cfg.Adapter.HTTPAddress == "" {
			return ErrInvalidAdapterConfigs
		}
	case TransportGRPC:
		if cfg.Adapter.GRPCAddress == "" {
			return ErrInvalidAdapterConfigs
		}
	default:
		return ErrInvalidAdapterConfigs
	}
	return nil
}
