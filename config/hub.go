package config

import (
	"fmt"
	"time"

	"github.com/edgekit/iothub/errors"
	"github.com/edgekit/iothub/logger"
	"github.com/edgekit/iothub/transport"
	"github.com/edgekit/iothub/validation"
)

// DefaultAPIVersion is the registry API version requested when none is
// configured.
const DefaultAPIVersion = "2018-06-30"

// Hub holds the settings needed to talk to a hub's module registry.
type Hub struct {
	// HostName is the hub host, e.g. "myhub.azure-devices.net".
	HostName string `yaml:"host_name" mapstructure:"host_name" json:"hostName" validate:"required"`

	// DeviceID is the device whose modules are managed.
	DeviceID string `yaml:"device_id" mapstructure:"device_id" json:"deviceId"`

	// APIVersion is the registry API version. Defaults to DefaultAPIVersion.
	APIVersion string `yaml:"api_version" mapstructure:"api_version" json:"apiVersion" validate:"required"`

	// SharedAccessSignature is a pre-built SAS token sent verbatim in the
	// Authorization header. Optional when TLS client certificates are used.
	SharedAccessSignature string `yaml:"shared_access_signature" mapstructure:"shared_access_signature" json:"-"`

	// Timeout is the per-request timeout.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout" json:"timeout"`

	// TLS configures TLS, including x509 client identities.
	TLS *transport.TLSConfig `yaml:"tls" mapstructure:"tls" json:"tls,omitempty"`

	// Logging configures the client logger.
	Logging logger.Config `yaml:"logging" mapstructure:"logging" json:"logging"`
}

// ApplyDefaults fills in zero-value fields with defaults.
func (h *Hub) ApplyDefaults() {
	if h.APIVersion == "" {
		h.APIVersion = DefaultAPIVersion
	}
	h.Logging.ApplyDefaults()
}

// Validate checks that the settings are usable.
func (h *Hub) Validate() error {
	if err := validation.Struct(h); err != nil {
		return errors.InvalidConfig(err.Error()).WithCause(err)
	}
	if err := h.Logging.Validate(); err != nil {
		return errors.InvalidConfig(err.Error()).WithCause(err)
	}
	if h.TLS != nil {
		if err := h.TLS.Validate(); err != nil {
			return errors.InvalidConfig(err.Error()).WithCause(err)
		}
	}
	return nil
}

// BaseURL returns the https base URL for the configured hub.
func (h *Hub) BaseURL() string {
	return fmt.Sprintf("https://%s", h.HostName)
}

// Transport builds a transport configuration from the hub settings.
func (h *Hub) Transport(log *logger.Logger) transport.Config {
	cfg := transport.Config{
		BaseURL: h.BaseURL(),
		Timeout: h.Timeout,
		TLS:     h.TLS,
		Logger:  log,
	}
	if h.SharedAccessSignature != "" {
		cfg.Auth = transport.SharedAccessAuth(h.SharedAccessSignature)
	}
	return cfg
}
