// Package chatlog parses exported chat-log text into message records.
package chatlog

import "strings"

// Message is one logical chat entry reconstructed from an export.
type Message struct {
	// Date is the DD.MM.YY date exactly as it appears in the export.
	Date string `json:"date" yaml:"date"`

	// DateTime is "{date}, {time}" using the raw HH:MM time.
	DateTime string `json:"datetime" yaml:"datetime"`

	// Sender is the author's display name. Empty for system messages.
	Sender string `json:"sender" yaml:"sender"`

	// Message is the body, with continuation lines joined by "\n".
	Message string `json:"message" yaml:"message"`
}

// IsSystem reports whether the message has no identifiable sender.
func (m Message) IsSystem() bool {
	return m.Sender == ""
}

// Time returns the time part of DateTime, or "" if DateTime does not
// start with Date.
func (m Message) Time() string {
	prefix := m.Date + ", "
	if !strings.HasPrefix(m.DateTime, prefix) {
		return ""
	}
	return m.DateTime[len(prefix):]
}

// Header is the set of fields captured from a header line.
type Header struct {
	Date string
	Time string
	Rest string
}

// Split divides Rest at the first occurrence of delim. When delim does not
// occur, sender is empty and body is the whole of Rest.
func (h Header) Split(delim string) (sender, body string) {
	if delim == "" {
		return "", h.Rest
	}
	sender, body, ok := strings.Cut(h.Rest, delim)
	if !ok {
		return "", h.Rest
	}
	return sender, body
}

// DateTime formats the header's date and time as "{date}, {time}".
func (h Header) DateTime() string {
	return h.Date + ", " + h.Time
}
