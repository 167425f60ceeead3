package codec

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ccollicutt/chatlog/pkg/chatlog"
)

// YAMLCodec encodes messages as a YAML sequence.
type YAMLCodec struct {
	opts FormatOptions
}

// NewYAMLCodec creates a new YAML codec with the given options.
func NewYAMLCodec(opts FormatOptions) *YAMLCodec {
	return &YAMLCodec{opts: opts}
}

// Name returns the format name.
func (c *YAMLCodec) Name() string {
	return "yaml"
}

// Encode writes messages as a YAML sequence. An empty slice is written as [].
func (c *YAMLCodec) Encode(ctx context.Context, messages []chatlog.Message, w io.Writer) error {
	if err := checkEncodable(messages); err != nil {
		return err
	}

	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(sequenceNode(messages)); err != nil {
		return fmt.Errorf("encoding yaml: %w", err)
	}
	return encoder.Close()
}

// Decode reads a YAML sequence of messages written by Encode.
func (c *YAMLCodec) Decode(ctx context.Context, r io.Reader) ([]chatlog.Message, error) {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	var records []record
	if err := decoder.Decode(&records); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrMalformed)
		}
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if records == nil {
		return nil, fmt.Errorf("%w: expected a YAML sequence", ErrMalformed)
	}

	return toMessages(records)
}

// sequenceNode builds the document tree for messages. Values containing
// line breaks are double quoted, since block scalars cannot carry a body
// made only of line breaks.
func sequenceNode(messages []chatlog.Message) *yaml.Node {
	seq := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
	for _, m := range messages {
		entry := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		entry.Content = append(entry.Content,
			stringNode("date"), stringNode(m.Date),
			stringNode("datetime"), stringNode(m.DateTime),
			stringNode("sender"), stringNode(m.Sender),
			stringNode("message"), stringNode(m.Message),
		)
		seq.Content = append(seq.Content, entry)
	}
	return seq
}

func stringNode(s string) *yaml.Node {
	n := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
	if strings.ContainsAny(s, "\n\r") {
		n.Style = yaml.DoubleQuotedStyle
	}
	return n
}
