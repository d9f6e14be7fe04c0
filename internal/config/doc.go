// Package config provides configuration management for the shared data
// library service.
//
// Configuration is loaded from environment variables (prefix DATALIB) and an
// optional config.yaml file, with environment variables taking precedence.
// Relative paths such as the library root are always resolved against the
// executable directory so the binaries behave the same regardless of the
// directory they are launched from.
package config
