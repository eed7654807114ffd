// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Mikhail Zhurov

package config

import "fmt"

// validate checks that the final merged [StructuredConfig] satisfies all
// server startup invariants: a reachable database, a usable token signer,
// and a listen address.
//
// Returns nil if the configuration is valid, or a descriptive error
// wrapping one of the package sentinel errors otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: empty database DSN", ErrInvalidStorageConfigs)
	}

	if cfg.App.TokenSignKey == "" {
		return fmt.Errorf("%w: empty token sign key", ErrInvalidAppConfigs)
	}

	if cfg.App.TokenDuration <= 0 {
		return fmt.Errorf("%w: non-positive token duration", ErrInvalidAppConfigs)
	}

	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: empty HTTP address", ErrInvalidServerConfigs)
	}

	if cfg.Server.RequestTimeout <= 0 {
		return fmt.Errorf("%w: non-positive request timeout", ErrInvalidServerConfigs)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.API.ServerURL == "" {
		return fmt.Errorf("%w: empty API server URL", ErrInvalidClientConfigs)
	}

	if cfg.API.RequestTimeout <= 0 {
		return fmt.Errorf("%w: non-positive request timeout", ErrInvalidClientConfigs)
	}

	if cfg.Session.DBPath == "" {
		return fmt.Errorf("%w: empty session file path", ErrInvalidClientConfigs)
	}

	return nil
}
