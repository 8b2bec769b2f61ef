package server

import "fmt"

// Config holds configuration for the HTTP server.
type Config struct {
	// Host is the address the server binds to. It should stay on loopback.
	Host string `mapstructure:"host" default:"127.0.0.1"`
	// BasePort is the first port tried.
	BasePort int `mapstructure:"base_port" default:"50027"`
	// MaxPort is the last port tried, inclusive.
	MaxPort int `mapstructure:"max_port" default:"50050"`
	// Docs enables the swagger UI under /api/docs.
	Docs bool `mapstructure:"docs" default:"false"`
}

// Validate checks the port range.
func (c Config) Validate() error {
	if c.BasePort <= 0 || c.MaxPort > 65535 || c.BasePort > c.MaxPort {
		return fmt.Errorf("%w: %d-%d", ErrInvalidPortRange, c.BasePort, c.MaxPort)
	}
	return nil
}
