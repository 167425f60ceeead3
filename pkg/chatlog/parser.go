package chatlog

import (
	"log/slog"
	"strings"
)

// DefaultSenderDelimiter separates the sender from the body in a header's rest.
const DefaultSenderDelimiter = ": "

var defaultParser = NewParser()

// Parse converts exported chat text into messages using the default
// header pattern and sender delimiter. It never fails: lines before the
// first header are dropped and all other non-header lines are appended to
// the message they follow.
func Parse(content string) []Message {
	return defaultParser.Parse(content)
}

// CountHeaders returns the number of lines in content that match the
// default header pattern.
func CountHeaders(content string) int {
	return defaultParser.CountHeaders(content)
}

// Parser turns chat export text into messages.
// A Parser is immutable after construction and safe for concurrent use.
type Parser struct {
	matcher   *HeaderMatcher
	delimiter string
	logger    *slog.Logger
}

// Option configures the Parser.
type Option func(*Parser)

// WithHeaderMatcher sets the matcher used to recognize header lines.
func WithHeaderMatcher(m *HeaderMatcher) Option {
	return func(p *Parser) {
		if m != nil {
			p.matcher = m
		}
	}
}

// WithSenderDelimiter sets the string separating sender from body (default ": ").
func WithSenderDelimiter(delim string) Option {
	return func(p *Parser) {
		if delim != "" {
			p.delimiter = delim
		}
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Parser) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// NewParser creates a Parser with the default header matcher and delimiter.
func NewParser(opts ...Option) *Parser {
	p := &Parser{
		matcher:   DefaultHeaderMatcher(),
		delimiter: DefaultSenderDelimiter,
		logger:    slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// pending is the message currently open for continuation lines.
type pending struct {
	msg  Message
	body strings.Builder
}

func (p *pending) close() Message {
	p.msg.Message = p.body.String()
	return p.msg
}

// Parse converts content into messages in header order.
func (p *Parser) Parse(content string) []Message {
	messages := []Message{}
	var current *pending
	dropped := 0

	for _, line := range splitLines(content) {
		if h, ok := p.matcher.Match(line); ok {
			if current != nil {
				messages = append(messages, current.close())
			}

			sender, body := h.Split(p.delimiter)
			current = &pending{msg: Message{
				Date:     h.Date,
				DateTime: h.DateTime(),
				Sender:   sender,
			}}
			current.body.WriteString(body)
			continue
		}

		if current == nil {
			dropped++
			p.logger.Debug("dropping line before first header", slog.String("line", line))
			continue
		}

		current.body.WriteByte('\n')
		current.body.WriteString(line)
	}

	if current != nil {
		messages = append(messages, current.close())
	}

	p.logger.Debug("parsed chat log",
		slog.Int("messages", len(messages)),
		slog.Int("dropped_lines", dropped))

	return messages
}

// CountHeaders returns the number of header lines in content.
func (p *Parser) CountHeaders(content string) int {
	n := 0
	for _, line := range splitLines(content) {
		if _, ok := p.matcher.Match(line); ok {
			n++
		}
	}
	return n
}

// splitLines splits on "\n", dropping a "\r" that directly precedes it.
// A final line terminator does not produce an empty trailing line.
func splitLines(content string) []string {
	if content == "" {
		return nil
	}

	lines := strings.Split(content, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i := range lines {
		if i == len(lines)-1 && !strings.HasSuffix(content, "\n") {
			break
		}
		lines[i] = strings.TrimSuffix(lines[i], "\r")
	}
	return lines
}
