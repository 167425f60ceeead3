package codec

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"

	"github.com/ccollicutt/chatlog/pkg/chatlog"
)

var validate = validator.New()

// record is the decoding shape of a message. Pointer fields let the
// validator tell a missing key from an empty string.
type record struct {
	Date     *string `json:"date" yaml:"date" validate:"required"`
	DateTime *string `json:"datetime" yaml:"datetime" validate:"required"`
	Sender   *string `json:"sender" yaml:"sender" validate:"required"`
	Message  *string `json:"message" yaml:"message" validate:"required"`
}

// UnmarshalJSON decodes a JSON object whose keys must be exactly the
// lowercase field names, each at most once.
func (r *record) UnmarshalJSON(data []byte) error {
	decoder := json.NewDecoder(bytes.NewReader(data))

	tok, err := decoder.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return errors.New("message must be a JSON object")
	}

	seen := make(map[string]bool, 4)
	for decoder.More() {
		tok, err := decoder.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("unexpected token %v", tok)
		}
		if seen[key] {
			return fmt.Errorf("duplicate key %q", key)
		}
		seen[key] = true

		dst := r.field(key)
		if dst == nil {
			return fmt.Errorf("unknown key %q", key)
		}
		if err := decoder.Decode(dst); err != nil {
			return fmt.Errorf("key %q: %w", key, err)
		}
	}

	_, err = decoder.Token()
	return err
}

func (r *record) field(key string) **string {
	switch key {
	case "date":
		return &r.Date
	case "datetime":
		return &r.DateTime
	case "sender":
		return &r.Sender
	case "message":
		return &r.Message
	default:
		return nil
	}
}

func toMessages(records []record) ([]chatlog.Message, error) {
	for i := range records {
		if err := validate.Struct(&records[i]); err != nil {
			return nil, fmt.Errorf("%w: element %d: %v", ErrMalformed, i, err)
		}
	}

	return lo.Map(records, func(r record, _ int) chatlog.Message {
		return chatlog.Message{
			Date:     *r.Date,
			DateTime: *r.DateTime,
			Sender:   *r.Sender,
			Message:  *r.Message,
		}
	}), nil
}

// checkEncodable rejects messages that cannot be encoded losslessly.
func checkEncodable(messages []chatlog.Message) error {
	for i, m := range messages {
		for _, s := range []string{m.Date, m.DateTime, m.Sender, m.Message} {
			if !utf8.ValidString(s) {
				return fmt.Errorf("message %d: field contains invalid UTF-8", i)
			}
		}
	}
	return nil
}
