package config

import (
	"fmt"
	"time"
)

// ClientAPI holds network settings used by the CLI client transport layer.
type ClientAPI struct {
	// ServerURL is the base URL of the postboard API.
	ServerURL string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientSession holds local session persistence settings for the CLI client.
type ClientSession struct {
	// DBPath is the SQLite file where the login session is stored.
	DBPath string
}

// ClientConfig is the top-level CLI client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// API contains client transport address and timeout.
	API ClientAPI
	// Session contains local session storage settings.
	Session ClientSession
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the merged config through the shared builder, maps only the fields
// relevant to the client runtime, and validates the resulting [ClientConfig].
// Server-only invariants (database DSN, token sign key) are not enforced here.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		API: ClientAPI{
			ServerURL:      cfg.Client.ServerURL,
			RequestTimeout: cfg.Client.RequestTimeout,
		},
		Session: ClientSession{
			DBPath: cfg.Client.SessionDBPath,
		},
	}

	return clientCfg, clientCfg.validate()
}
