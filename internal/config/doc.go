// Package config loads primext CLI settings with viper.
//
// Precedence, highest first: command-line flags bound with BindFlags,
// PRIMEXT_* environment variables, an optional config file in any format
// the codec package reads, then DefaultConfig.
package config
