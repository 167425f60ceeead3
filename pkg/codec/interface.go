// Package codec encodes and decodes parsed chat messages.
package codec

import (
	"context"
	"errors"
	"io"

	"github.com/ccollicutt/chatlog/pkg/chatlog"
)

var (
	// ErrMalformed is returned when input is not well-formed or does not
	// match the message schema.
	ErrMalformed = errors.New("malformed message data")

	// ErrUnknownFormat is returned by New for an unsupported format name.
	ErrUnknownFormat = errors.New("unknown format")
)

// Codec renders messages in a specific format.
type Codec interface {
	// Encode writes messages to w.
	Encode(ctx context.Context, messages []chatlog.Message, w io.Writer) error

	// Name returns the format name (json, yaml, text).
	Name() string
}

// Decoder is a Codec that can also read its own output back.
type Decoder interface {
	Codec

	// Decode reads messages from r. Errors wrap ErrMalformed.
	Decode(ctx context.Context, r io.Reader) ([]chatlog.Message, error)
}

// FormatOptions controls codec behavior.
type FormatOptions struct {
	// Indent enables pretty-printed JSON output.
	Indent bool

	// Quiet makes the text codec print a one-line summary only.
	Quiet bool
}
