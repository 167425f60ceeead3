// Package config provides configuration parsing and validation for chatlog.
package config

import (
	"regexp"

	"github.com/ccollicutt/chatlog/pkg/chatlog"
)

// Config is the root configuration structure parsed from YAML.
type Config struct {
	Header HeaderConfig `yaml:"header"`
	Output OutputConfig `yaml:"output"`
}

// HeaderConfig defines how header lines are recognized and split.
type HeaderConfig struct {
	// Pattern is a regex matching a header line. Its first three capture
	// groups are the date, the time and the rest of the line.
	Pattern string `yaml:"pattern"`

	// SenderDelimiter separates the sender from the body in the rest.
	SenderDelimiter string `yaml:"sender_delimiter"`

	// matcher is built from Pattern during validation.
	matcher *chatlog.HeaderMatcher
}

// CompiledPattern returns the pre-compiled regex pattern, or nil before
// validation.
func (h *HeaderConfig) CompiledPattern() *regexp.Regexp {
	if h.matcher == nil {
		return nil
	}
	return h.matcher.Pattern()
}

// Matcher returns the header matcher built during validation.
func (h *HeaderConfig) Matcher() *chatlog.HeaderMatcher {
	return h.matcher
}

// OutputConfig selects the codec used for encoding messages.
type OutputConfig struct {
	// Format is one of json, yaml or text.
	Format string `yaml:"format"`

	// Indent pretty-prints JSON output.
	Indent bool `yaml:"indent,omitempty"`

	// Quiet makes text output a one-line summary.
	Quiet bool `yaml:"quiet,omitempty"`
}
