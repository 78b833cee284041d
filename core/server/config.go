package server

import (
	"fmt"
	"os"
	"path/filepath"
)

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the TCP port the server listens on, across all interfaces.
	Port int `mapstructure:"port" default:"3000"`
	// Root is the directory static files are served from. When empty,
	// the directory containing the running executable is used.
	Root string `mapstructure:"root" default:""`
	// OpenBrowser controls whether the default browser is opened at the
	// server URL once the listener is bound.
	OpenBrowser bool `mapstructure:"open_browser" default:"true"`
}

// Addr returns the listen address in ":port" form.
func (c Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// URL returns the address users reach the server at.
func (c Config) URL() string {
	return fmt.Sprintf("http://localhost:%d", c.Port)
}

// Validate checks that the configured port is usable.
func (c Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d: must be between 1 and 65535", c.Port)
	}
	return nil
}

// ResolveRoot returns the absolute directory to serve files from: the
// configured root if set, otherwise the directory containing the executable.
func (c Config) ResolveRoot() (string, error) {
	if c.Root != "" {
		return filepath.Abs(c.Root)
	}
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("locating executable: %w", err)
	}
	return filepath.Dir(exe), nil
}
