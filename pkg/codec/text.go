package codec

import (
	"context"
	"fmt"
	"io"

	"github.com/ccollicutt/chatlog/pkg/chatlog"
	"github.com/ccollicutt/chatlog/pkg/summary"
)

// TextCodec renders messages in chat export format, one header line per
// message followed by any continuation lines. Parsing the output yields the
// same messages, except that a body ending in "\r" loses that "\r" because
// the written line terminator turns it into "\r\n".
type TextCodec struct {
	opts FormatOptions
}

// NewTextCodec creates a new text codec with the given options.
func NewTextCodec(opts FormatOptions) *TextCodec {
	return &TextCodec{opts: opts}
}

// Name returns the format name.
func (c *TextCodec) Name() string {
	return "text"
}

// Encode renders messages as export text.
func (c *TextCodec) Encode(ctx context.Context, messages []chatlog.Message, w io.Writer) error {
	if c.opts.Quiet {
		return c.encodeQuiet(messages, w)
	}

	for _, m := range messages {
		var err error
		if m.IsSystem() {
			_, err = fmt.Fprintf(w, "%s - %s\n", m.DateTime, m.Message)
		} else {
			_, err = fmt.Fprintf(w, "%s - %s%s%s\n", m.DateTime, m.Sender, chatlog.DefaultSenderDelimiter, m.Message)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (c *TextCodec) encodeQuiet(messages []chatlog.Message, w io.Writer) error {
	s := summary.Summarize(messages)
	_, err := fmt.Fprintf(w, "chatlog: %d messages, %d senders, %d system messages\n",
		s.Messages, len(s.Senders), s.SystemMessages)
	return err
}
