package codec

import (
	"bytes"
	"context"
	"reflect"
	"testing"

	"github.com/ccollicutt/chatlog/pkg/chatlog"
)

func TestNewTextCodec(t *testing.T) {
	c := NewTextCodec(FormatOptions{})
	if c.Name() != "text" {
		t.Errorf("Name() = %q, want %q", c.Name(), "text")
	}
}

func TestTextCodec_Encode(t *testing.T) {
	c := NewTextCodec(FormatOptions{})

	var buf bytes.Buffer
	if err := c.Encode(context.Background(), testMessages()[:2], &buf); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	want := "11.10.23, 15:44 - Nachrichten und Anrufe sind Ende-zu-Ende-verschlüsselt.\n" +
		"08.05.24, 12:14 - sammy: Wer ist eig dein Partner?\n"
	if buf.String() != want {
		t.Errorf("Encode() = %q, want %q", buf.String(), want)
	}
}

func TestTextCodec_ReparsesToSameMessages(t *testing.T) {
	input := `11.10.23, 15:44 - Nachrichten und Anrufe sind Ende-zu-Ende-verschlüsselt.
Mehr erfahren
23.11.23, 22:20 - sammy: Hey: du
23.11.23, 22:21 - Ole: Hi!
  eingerückt
`
	messages := chatlog.Parse(input)

	var buf bytes.Buffer
	if err := NewTextCodec(FormatOptions{}).Encode(context.Background(), messages, &buf); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	if buf.String() != input {
		t.Errorf("Encode() = %q, want %q", buf.String(), input)
	}
	if got := chatlog.Parse(buf.String()); !reflect.DeepEqual(got, messages) {
		t.Errorf("Parse(Encode()) = %+v, want %+v", got, messages)
	}
}

func TestTextCodec_TrailingCarriageReturn(t *testing.T) {
	messages := chatlog.Parse("08.05.24, 12:14 - a: b\r")
	if messages[0].Message != "b\r" {
		t.Fatalf("Message = %q, want %q", messages[0].Message, "b\r")
	}

	var buf bytes.Buffer
	if err := NewTextCodec(FormatOptions{}).Encode(context.Background(), messages, &buf); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	if buf.String() != "08.05.24, 12:14 - a: b\r\n" {
		t.Errorf("Encode() = %q, want body written verbatim", buf.String())
	}

	got := chatlog.Parse(buf.String())
	if got[0].Message != "b" {
		t.Errorf("Parse(Encode()) Message = %q, want %q", got[0].Message, "b")
	}
}

func TestTextCodec_Encode_Quiet(t *testing.T) {
	c := NewTextCodec(FormatOptions{Quiet: true})

	var buf bytes.Buffer
	if err := c.Encode(context.Background(), testMessages(), &buf); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	want := "chatlog: 3 messages, 2 senders, 1 system messages\n"
	if buf.String() != want {
		t.Errorf("Encode() = %q, want %q", buf.String(), want)
	}
}

func TestTextCodec_Encode_Empty(t *testing.T) {
	var buf bytes.Buffer
	if err := NewTextCodec(FormatOptions{}).Encode(context.Background(), nil, &buf); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("Encode(nil) = %q, want empty", buf.String())
	}
}
