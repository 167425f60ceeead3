package summary

import (
	"reflect"
	"testing"

	"github.com/ccollicutt/chatlog/pkg/chatlog"
)

func TestSummarize(t *testing.T) {
	input := `11.10.23, 15:44 - Nachrichten und Anrufe sind Ende-zu-Ende-verschlüsselt.
23.11.23, 22:20 - sammy: Hey
23.11.23, 22:21 - Ole: Hi!
zweite Zeile
23.11.23, 22:22 - sammy: Na?
23.11.23, 22:23 - Systemmeldung ohne Sender`

	s := Summarize(chatlog.Parse(input))

	if s.Messages != 5 {
		t.Errorf("Messages = %d, want 5", s.Messages)
	}
	if s.SystemMessages != 2 {
		t.Errorf("SystemMessages = %d, want 2", s.SystemMessages)
	}
	if s.MultilineMessages != 1 {
		t.Errorf("MultilineMessages = %d, want 1", s.MultilineMessages)
	}
	if want := []string{"sammy", "Ole"}; !reflect.DeepEqual(s.Senders, want) {
		t.Errorf("Senders = %v, want %v", s.Senders, want)
	}
	if want := map[string]int{"sammy": 2, "Ole": 1}; !reflect.DeepEqual(s.PerSender, want) {
		t.Errorf("PerSender = %v, want %v", s.PerSender, want)
	}
	if s.First != "11.10.23, 15:44" {
		t.Errorf("First = %q, want %q", s.First, "11.10.23, 15:44")
	}
	if s.Last != "23.11.23, 22:23" {
		t.Errorf("Last = %q, want %q", s.Last, "23.11.23, 22:23")
	}
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil)

	if s.Messages != 0 || s.SystemMessages != 0 || s.MultilineMessages != 0 {
		t.Errorf("Summarize(nil) = %+v, want zero counts", s)
	}
	if len(s.Senders) != 0 {
		t.Errorf("Senders = %v, want empty", s.Senders)
	}
	if s.First != "" || s.Last != "" {
		t.Errorf("First/Last = %q/%q, want empty", s.First, s.Last)
	}
}
