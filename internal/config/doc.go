// Package config holds all runtime configuration for papercloud.
//
// Configuration is layered, later sources overriding earlier ones:
//
//	defaults < .papercloud YAML file < PAPERCLOUD_* env vars < CLI flags
//
// The YAML file is searched in the working directory and the XDG config
// directory unless a path is given explicitly; an explicit path that does
// not exist is an error. Env vars are parsed after an optional .env load.
//
// The Config struct is populated once at startup and passed through the
// application by dependency injection; there is no global state.
package config
