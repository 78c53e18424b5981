package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/edgekit/iothub/errors"
)

// EnvPrefix is the prefix for environment variable overrides,
// e.g. IOTHUB_HOST_NAME.
const EnvPrefix = "IOTHUB"

// LoaderOption customizes Load.
type LoaderOption func(*loaderOptions)

type loaderOptions struct {
	configFile string
	envFile    string
}

// WithConfigFile sets an explicit YAML config file path.
func WithConfigFile(path string) LoaderOption {
	return func(o *loaderOptions) { o.configFile = path }
}

// WithEnvFile sets an explicit .env file path.
func WithEnvFile(path string) LoaderOption {
	return func(o *loaderOptions) { o.envFile = path }
}

// Load populates cfg from a YAML config file, a .env file and the
// process environment, applies defaults and validates the result.
// Missing files are not an error; environment variables alone are
// enough to configure the client.
func Load(cfg *Hub, opts ...LoaderOption) error {
	var o loaderOptions
	for _, opt := range opts {
		opt(&o)
	}

	configFile := o.configFile
	if configFile == "" {
		configFile = findFirst("./iothub.yml", "./config/iothub.yml")
	}
	envFile := o.envFile
	if envFile == "" {
		envFile = findFirst("./.env")
	}

	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return errors.InvalidConfig("load env file " + envFile + ": " + err.Error()).WithCause(err)
		}
	}

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	bindKeys(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return errors.InvalidConfig("read config file " + configFile + ": " + err.Error()).WithCause(err)
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return errors.InvalidConfig("unmarshal config: " + err.Error()).WithCause(err)
	}

	cfg.ApplyDefaults()
	return cfg.Validate()
}

// bindKeys registers every settings key with viper so AutomaticEnv can
// resolve them even when no config file mentions them.
func bindKeys(v *viper.Viper) {
	keys := []string{
		"host_name",
		"device_id",
		"api_version",
		"shared_access_signature",
		"timeout",
		"tls.skip_verify",
		"tls.ca_file",
		"tls.cert_file",
		"tls.key_file",
		"tls.server_name",
		"logging.level",
		"logging.format",
		"logging.output",
		"logging.no_color",
	}
	for _, k := range keys {
		_ = v.BindEnv(k)
	}
}

func findFirst(paths ...string) string {
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}
