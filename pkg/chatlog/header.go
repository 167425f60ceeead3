package chatlog

import (
	"errors"
	"fmt"
	"regexp"
)

// DefaultHeaderPattern matches "DD.MM.YY, HH:MM - rest" at the start of a line.
// Digits are any Unicode decimal digits, not only ASCII.
const DefaultHeaderPattern = `^(\p{Nd}{2}\.\p{Nd}{2}\.\p{Nd}{2}), (\p{Nd}{2}:\p{Nd}{2}) - (.*)`

var defaultHeaderMatcher = &HeaderMatcher{pattern: regexp.MustCompile(DefaultHeaderPattern)}

// HeaderMatcher recognizes header lines and extracts their fields.
// It is immutable and safe for concurrent use.
type HeaderMatcher struct {
	pattern *regexp.Regexp
}

// NewHeaderMatcher creates a header matcher from a compiled pattern.
// The first three capture groups are taken as date, time and the rest of
// the line, in that order.
func NewHeaderMatcher(pattern *regexp.Regexp) (*HeaderMatcher, error) {
	if pattern == nil {
		return nil, errors.New("header pattern is nil")
	}
	if pattern.NumSubexp() < 3 {
		return nil, fmt.Errorf("header pattern has %d capture groups, need 3 (date, time, rest)",
			pattern.NumSubexp())
	}
	return &HeaderMatcher{pattern: pattern}, nil
}

// DefaultHeaderMatcher returns the matcher for DefaultHeaderPattern.
func DefaultHeaderMatcher() *HeaderMatcher {
	return defaultHeaderMatcher
}

// Pattern returns the underlying compiled pattern.
func (m *HeaderMatcher) Pattern() *regexp.Regexp {
	return m.pattern
}

// Match reports whether line is a header line and, if so, returns its fields.
func (m *HeaderMatcher) Match(line string) (Header, bool) {
	matches := m.pattern.FindStringSubmatch(line)
	if len(matches) < 4 {
		return Header{}, false
	}

	return Header{
		Date: matches[1],
		Time: matches[2],
		Rest: matches[3],
	}, true
}
