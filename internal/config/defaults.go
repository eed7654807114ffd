package config

import (
	"os"
	"path/filepath"
	"time"
)

// Fallback values applied by [configBuilder.withDefaults] for fields that no
// other configuration source provided.
const (
	DefaultHTTPAddress    = "localhost:8080"
	DefaultRequestTimeout = 30 * time.Second
	DefaultTokenIssuer    = "postboard"
	DefaultTokenDuration  = 30 * time.Minute
	DefaultServerURL      = "http://localhost:8080"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   DefaultTokenIssuer,
			TokenDuration: DefaultTokenDuration,
		},
		Server: Server{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
		Client: Client{
			ServerURL:      DefaultServerURL,
			SessionDBPath:  defaultSessionDBPath(),
			RequestTimeout: DefaultRequestTimeout,
		},
	}
}

// defaultSessionDBPath resolves the client session file location. The home
// directory may be unavailable in minimal containers, in which case the
// session file lands in the working directory.
func defaultSessionDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "postboard-session.db"
	}

	return filepath.Join(home, ".postboard", "session.db")
}
