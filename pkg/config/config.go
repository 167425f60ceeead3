package config

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/ccollicutt/chatlog/pkg/chatlog"
	"github.com/ccollicutt/chatlog/pkg/codec"
)

// Parse decodes YAML configuration data on top of the defaults, applies
// environment overrides and validates the result. Empty data yields the
// default configuration.
func Parse(_ context.Context, data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	cfg.applyEnvironmentOverrides()

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Validate checks a configuration for errors and compiles the header pattern.
func Validate(cfg *Config) error {
	if err := validateHeader(&cfg.Header); err != nil {
		return fmt.Errorf("header: %w", err)
	}
	if err := validateOutput(&cfg.Output); err != nil {
		return fmt.Errorf("output: %w", err)
	}
	return nil
}

func validateHeader(h *HeaderConfig) error {
	if h.Pattern == "" {
		return errors.New("pattern is required")
	}

	re, err := regexp.Compile(h.Pattern)
	if err != nil {
		return fmt.Errorf("invalid pattern: %w", err)
	}
	matcher, err := chatlog.NewHeaderMatcher(re)
	if err != nil {
		return err
	}
	h.matcher = matcher

	if h.SenderDelimiter == "" {
		return errors.New("sender_delimiter is required")
	}
	return nil
}

func validateOutput(o *OutputConfig) error {
	if !slices.Contains(codec.Formats, o.Format) {
		return fmt.Errorf("invalid format %q (must be json, yaml, or text)", o.Format)
	}
	return nil
}

// ParserOptions returns the chatlog options described by the configuration.
// The configuration must have been validated.
func (c *Config) ParserOptions() ([]chatlog.Option, error) {
	if c.Header.matcher == nil {
		return nil, errors.New("header: configuration has not been validated")
	}

	return []chatlog.Option{
		chatlog.WithHeaderMatcher(c.Header.matcher),
		chatlog.WithSenderDelimiter(c.Header.SenderDelimiter),
	}, nil
}

// Parser builds a chatlog parser from the configuration.
func (c *Config) Parser(opts ...chatlog.Option) (*chatlog.Parser, error) {
	base, err := c.ParserOptions()
	if err != nil {
		return nil, err
	}
	return chatlog.NewParser(append(base, opts...)...), nil
}

// Codec returns the codec selected by the output configuration.
func (c *Config) Codec() (codec.Codec, error) {
	return codec.New(c.Output.Format, codec.FormatOptions{
		Indent: c.Output.Indent,
		Quiet:  c.Output.Quiet,
	})
}
