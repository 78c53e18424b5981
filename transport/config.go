package transport

import (
	"fmt"
	"time"

	"github.com/edgekit/iothub/logger"
	"github.com/edgekit/iothub/resilience"
)

const defaultTimeout = 30 * time.Second

// Config configures the HTTP transport.
type Config struct {
	// BaseURL is the base URL prepended to all request paths.
	BaseURL string `yaml:"base_url" mapstructure:"base_url"`

	// Timeout is the per-request timeout. Defaults to 30s.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`

	// Auth configures authentication applied to all requests.
	Auth *AuthConfig `yaml:"-" mapstructure:"-"`

	// TLS configures TLS settings, including client certificates.
	TLS *TLSConfig `yaml:"tls" mapstructure:"tls"`

	// Headers are default headers applied to all requests.
	Headers map[string]string `yaml:"headers" mapstructure:"headers"`

	// Retry configures retry behavior. Nil disables retry.
	Retry *resilience.RetryConfig `yaml:"-" mapstructure:"-"`

	// Breaker configures circuit breaking. Nil disables it.
	Breaker *resilience.BreakerConfig `yaml:"-" mapstructure:"-"`

	// Logger receives per-request debug logging. Nil disables logging.
	Logger *logger.Logger `yaml:"-" mapstructure:"-"`
}

// ApplyDefaults fills in zero-value fields with defaults.
func (c *Config) ApplyDefaults() {
	if c.Timeout <= 0 {
		c.Timeout = defaultTimeout
	}
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("transport: base URL is required")
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("transport: timeout must be positive")
	}
	if c.TLS != nil {
		if err := c.TLS.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// DefaultRetryConfig returns a retry config that only retries errors
// the transport classifies as retryable.
func DefaultRetryConfig() *resilience.RetryConfig {
	cfg := resilience.DefaultRetryConfig()
	cfg.RetryIf = IsRetryable
	return &cfg
}

// DefaultBreakerConfig returns a default circuit breaker config.
func DefaultBreakerConfig(name string) *resilience.BreakerConfig {
	cfg := resilience.DefaultBreakerConfig(name)
	return &cfg
}
