// Package summary provides aggregate statistics over parsed chat messages.
package summary

import (
	"strings"

	"github.com/samber/lo"

	"github.com/ccollicutt/chatlog/pkg/chatlog"
)

// Summary provides aggregate statistics.
type Summary struct {
	// Messages is the total number of messages.
	Messages int

	// SystemMessages is the number of messages without a sender.
	SystemMessages int

	// MultilineMessages is the number of messages with continuation lines.
	MultilineMessages int

	// Senders lists distinct senders in order of first appearance.
	Senders []string

	// PerSender counts messages by sender. System messages are not counted.
	PerSender map[string]int

	// First and Last are the datetimes of the first and last message.
	First string
	Last  string
}

// Summarize computes statistics over messages.
func Summarize(messages []chatlog.Message) Summary {
	authored := lo.Reject(messages, func(m chatlog.Message, _ int) bool {
		return m.IsSystem()
	})
	senders := lo.Map(authored, func(m chatlog.Message, _ int) string {
		return m.Sender
	})

	s := Summary{
		Messages:       len(messages),
		SystemMessages: len(messages) - len(authored),
		MultilineMessages: lo.CountBy(messages, func(m chatlog.Message) bool {
			return strings.Contains(m.Message, "\n")
		}),
		Senders:   lo.Uniq(senders),
		PerSender: lo.CountValues(senders),
	}

	if len(messages) > 0 {
		s.First = messages[0].DateTime
		s.Last = messages[len(messages)-1].DateTime
	}

	return s
}
