package config

import (
	"fmt"
	"time"

	"hashcash/internal/hashcash"
)

// minMessageSize fits "VERIFY <key> <challenge>" with both values hex encoded.
const minMessageSize = len("VERIFY ") + 2*2*hashcash.Size + 1

// Config holds every runtime setting. Commands read it after flags are parsed.
type Config struct {
	// Algorithm names the 512-bit hash used by create and verify
	Algorithm string
	// Verbose enables debug logging
	Verbose bool

	// ListenAddr is the TCP address of the serve command
	ListenAddr string
	// ReadTimeout bounds the wait for the next request line
	ReadTimeout time.Duration
	// WriteTimeout bounds writing one response
	WriteTimeout time.Duration
	// ShutdownTimeout bounds waiting for open connections on stop
	ShutdownTimeout time.Duration
	// MaxConnections caps concurrent connections
	MaxConnections int
	// MaxSearchTimeout caps the timeoutSeconds a remote CREATE may ask for
	MaxSearchTimeout int
	// MaxMessageSize caps one request line in bytes
	MaxMessageSize int

	// RequestsPerMinute is the sustained per-IP connection rate
	RequestsPerMinute float64
	// Burst is the per-IP bucket size
	Burst int
	// BlacklistThreshold is how many denied attempts put an IP on the blacklist
	BlacklistThreshold int
	// BlacklistDuration is how long a blacklisted IP stays blocked
	BlacklistDuration time.Duration

	// DialTimeout bounds connecting for the remote commands
	DialTimeout time.Duration
}

// Validate checks the configuration
func (c *Config) Validate() error {
	if _, err := hashcash.ParseAlgorithm(c.Algorithm); err != nil {
		return err
	}
	if c.ListenAddr == "" {
		return fmt.Errorf("listen address must be specified")
	}
	if c.MaxConnections <= 0 {
		return fmt.Errorf("max connections must be positive")
	}
	if c.ReadTimeout <= 0 || c.WriteTimeout <= 0 || c.ShutdownTimeout <= 0 || c.DialTimeout <= 0 {
		return fmt.Errorf("timeouts must be positive")
	}
	if c.MaxSearchTimeout < 0 {
		return fmt.Errorf("max search timeout must not be negative")
	}
	if c.MaxMessageSize < minMessageSize {
		return fmt.Errorf("max message size must be at least %d bytes", minMessageSize)
	}
	if c.RequestsPerMinute <= 0 || c.Burst <= 0 {
		return fmt.Errorf("rate limit must be positive")
	}
	if c.BlacklistThreshold <= 0 || c.BlacklistDuration <= 0 {
		return fmt.Errorf("blacklist settings must be positive")
	}
	return nil
}

// NewConfig returns the default configuration
func NewConfig() *Config {
	cfg := &Config{
		Algorithm:          string(hashcash.SHA512),
		ListenAddr:         ":7000",
		ReadTimeout:        30 * time.Second,
		WriteTimeout:       30 * time.Second,
		ShutdownTimeout:    30 * time.Second,
		MaxConnections:     100,
		MaxSearchTimeout:   600,
		MaxMessageSize:     1024,
		RequestsPerMinute:  60,
		Burst:              10,
		BlacklistThreshold: 5,
		BlacklistDuration:  time.Hour,
		DialTimeout:        10 * time.Second,
	}
	if err := cfg.Validate(); err != nil {
		panic(fmt.Sprintf("invalid config: %v", err))
	}
	return cfg
}
