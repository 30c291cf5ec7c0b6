package config

import (
	"fmt"
	"net"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// MetricsConfig holds settings for the Prometheus endpoint.
type MetricsConfig struct {
	// Addr is the host:port the metrics endpoint listens on. Empty disables it.
	Addr string

	// Path is the HTTP path metrics are served under.
	Path string
}

// NewMetricsConfig creates a MetricsConfig with the endpoint disabled.
func NewMetricsConfig() *MetricsConfig {
	return &MetricsConfig{Path: "/metrics"}
}

// Enabled reports whether metrics should be served.
func (m *MetricsConfig) Enabled() bool {
	return m.Addr != ""
}

// Validate checks that an enabled endpoint has a usable address.
func (m *MetricsConfig) Validate() error {
	if !m.Enabled() {
		return nil
	}
	if _, _, err := net.SplitHostPort(m.Addr); err != nil {
		return fmt.Errorf("metrics address %q: %v: %w", m.Addr, err, errors.ErrInvalidConfig)
	}
	if m.Path == "" || m.Path[0] != '/' {
		return fmt.Errorf("metrics path %q must start with /: %w", m.Path, errors.ErrInvalidConfig)
	}
	return nil
}
