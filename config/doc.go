// Package config loads hub client settings from YAML files, .env files
// and environment variables.
//
// Precedence, lowest to highest: YAML config file, .env file, process
// environment. Environment variables use the IOTHUB_ prefix with
// underscores for nesting, e.g. IOTHUB_HOST_NAME or
// IOTHUB_LOGGING_LEVEL.
package config
