package codec

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ccollicutt/chatlog/pkg/chatlog"
)

// JSONCodec encodes messages as a JSON array.
type JSONCodec struct {
	opts FormatOptions
}

// NewJSONCodec creates a new JSON codec with the given options.
func NewJSONCodec(opts FormatOptions) *JSONCodec {
	return &JSONCodec{opts: opts}
}

// Name returns the format name.
func (c *JSONCodec) Name() string {
	return "json"
}

// Encode writes messages as a JSON array followed by a newline.
// A nil or empty slice is written as [].
func (c *JSONCodec) Encode(ctx context.Context, messages []chatlog.Message, w io.Writer) error {
	if err := checkEncodable(messages); err != nil {
		return err
	}
	if messages == nil {
		messages = []chatlog.Message{}
	}

	encoder := json.NewEncoder(w)
	encoder.SetEscapeHTML(false)
	if c.opts.Indent {
		encoder.SetIndent("", "  ")
	}

	return encoder.Encode(messages)
}

// Decode reads a JSON array of messages. Every element must carry exactly
// the date, datetime, sender and message keys with string values.
func (c *JSONCodec) Decode(ctx context.Context, r io.Reader) ([]chatlog.Message, error) {
	decoder := json.NewDecoder(r)
	decoder.DisallowUnknownFields()

	var records []record
	if err := decoder.Decode(&records); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if records == nil {
		return nil, fmt.Errorf("%w: expected a JSON array", ErrMalformed)
	}

	if _, err := decoder.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: unexpected data after JSON array", ErrMalformed)
	}

	return toMessages(records)
}

// Serialize returns messages as a compact JSON array.
func Serialize(messages []chatlog.Message) (string, error) {
	var buf bytes.Buffer
	if err := NewJSONCodec(FormatOptions{}).Encode(context.Background(), messages, &buf); err != nil {
		return "", err
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

// Deserialize parses text produced by Serialize.
func Deserialize(text string) ([]chatlog.Message, error) {
	return NewJSONCodec(FormatOptions{}).Decode(context.Background(), strings.NewReader(text))
}
