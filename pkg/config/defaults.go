package config

import (
	"os"

	"github.com/ccollicutt/chatlog/pkg/chatlog"
)

// Default values for configuration.
const (
	DefaultHeaderPattern   = chatlog.DefaultHeaderPattern
	DefaultSenderDelimiter = chatlog.DefaultSenderDelimiter
	DefaultOutputFormat    = "json"
)

// Environment variable names.
const (
	EnvHeaderPattern   = "CHATLOG_HEADER_PATTERN"
	EnvSenderDelimiter = "CHATLOG_SENDER_DELIMITER"
	EnvOutputFormat    = "CHATLOG_OUTPUT_FORMAT"
)

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Header: HeaderConfig{
			Pattern:         DefaultHeaderPattern,
			SenderDelimiter: DefaultSenderDelimiter,
		},
		Output: OutputConfig{
			Format: DefaultOutputFormat,
		},
	}
}

// applyEnvironmentOverrides applies environment variable overrides to the config.
func (c *Config) applyEnvironmentOverrides() {
	if pattern := os.Getenv(EnvHeaderPattern); pattern != "" {
		c.Header.Pattern = pattern
	}
	if delim := os.Getenv(EnvSenderDelimiter); delim != "" {
		c.Header.SenderDelimiter = delim
	}
	if format := os.Getenv(EnvOutputFormat); format != "" {
		c.Output.Format = format
	}
}
