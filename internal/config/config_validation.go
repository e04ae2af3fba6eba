// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"net/url"
	"slices"
)

// KnownNetworks lists the accepted values of Network.ID.
var KnownNetworks = []string{"mainnet", "testnet3", "regtest", "simnet", "signet"}

// validate checks the merged [StructuredConfig] before startup. Every
// violation is reported; a non-nil result is fatal for the server.
func (cfg *StructuredConfig) validate() error {
	var errs []error

	if cfg.App.TokenSignKey == "" {
		errs = append(errs, fmt.Errorf("%w: token sign key is required", ErrInvalidAppConfigs))
	}
	if cfg.App.TokenDuration <= 0 {
		errs = append(errs, fmt.Errorf("%w: token duration must be positive", ErrInvalidAppConfigs))
	}

	if cfg.Network.ID == "" {
		errs = append(errs, fmt.Errorf("%w: network id is required", ErrInvalidNetworkConfigs))
	} else if !slices.Contains(KnownNetworks, cfg.Network.ID) {
		errs = append(errs, fmt.Errorf("%w: unknown network %q", ErrInvalidNetworkConfigs, cfg.Network.ID))
	}
	if cfg.Network.ForcedNodeURL == "" && len(cfg.Network.Nodes) == 0 {
		errs = append(errs, fmt.Errorf("%w: no node url configured", ErrInvalidNetworkConfigs))
	}
	for _, raw := range append([]string{cfg.Network.ForcedNodeURL}, cfg.Network.Nodes...) {
		if raw == "" {
			continue
		}
		if u, err := url.Parse(raw); err != nil || u.Scheme == "" || u.Host == "" {
			errs = append(errs, fmt.Errorf("%w: bad node url %q", ErrInvalidNetworkConfigs, raw))
		}
	}
	if cfg.Network.FeeRate <= 0 {
		errs = append(errs, fmt.Errorf("%w: fee rate must be positive", ErrInvalidNetworkConfigs))
	}

	if cfg.Storage.DB.DSN == "" {
		errs = append(errs, fmt.Errorf("%w: database dsn is required", ErrInvalidStorageConfigs))
	}

	if cfg.Server.HTTPAddress == "" && cfg.Server.GRPCAddress == "" {
		errs = append(errs, fmt.Errorf("%w: no listen address", ErrInvalidServerConfigs))
	}

	if cfg.Workers.IdleTimeout > 0 && cfg.Workers.ReapInterval <= 0 {
		errs = append(errs, fmt.Errorf("%w: reap interval must be positive", ErrInvalidWorkerConfigs))
	}

	return errors.Join(errs...)
}
