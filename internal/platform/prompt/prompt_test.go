package prompt

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestPrompter_Line_TrimsAndWritesPrompt(t *testing.T) {
	var out bytes.Buffer
	p := New(strings.NewReader("  Milo  \r\n"), &out)

	got, err := p.Line("name")
	if err != nil {
		t.Fatalf("Line returned error: %v", err)
	}
	if got != "Milo" {
		t.Fatalf("expected trimmed Milo, got %q", got)
	}
	if out.String() != "  => name: " {
		t.Fatalf("unexpected prompt %q", out.String())
	}
}

func TestPrompter_Line_LastLineWithoutNewline(t *testing.T) {
	p := New(strings.NewReader("Milo"), &bytes.Buffer{})

	got, err := p.Line("name")
	if err != nil {
		t.Fatalf("Line returned error: %v", err)
	}
	if got != "Milo" {
		t.Fatalf("expected Milo, got %q", got)
	}
}

func TestPrompter_Line_EOF(t *testing.T) {
	p := New(strings.NewReader(""), &bytes.Buffer{})

	_, err := p.Line("name")
	if !errors.Is(err, ErrNoInput) {
		t.Fatalf("expected ErrNoInput, got %v", err)
	}

	var fe *FieldError
	if !errors.As(err, &fe) || fe.Field != "name" {
		t.Fatalf("expected FieldError for name, got %#v", err)
	}
}

func TestPrompter_Uint8_ReadsSequentialLines(t *testing.T) {
	p := New(strings.NewReader("6\n 255 \n0\n"), &bytes.Buffer{})

	for _, want := range []uint8{6, 255, 0} {
		got, err := p.Uint8("age")
		if err != nil {
			t.Fatalf("Uint8 returned error: %v", err)
		}
		if got != want {
			t.Fatalf("expected %d, got %d", want, got)
		}
	}
}

func TestParseUint8_Malformed(t *testing.T) {
	cases := []string{"", "abc", "-1", "256", "1.5", "12a"}
	for _, in := range cases {
		_, err := ParseUint8("age", in)
		if !errors.Is(err, ErrMalformedNumber) {
			t.Errorf("ParseUint8(%q): expected ErrMalformedNumber, got %v", in, err)
			continue
		}

		var fe *FieldError
		if !errors.As(err, &fe) {
			t.Errorf("ParseUint8(%q): expected *FieldError, got %T", in, err)
			continue
		}
		if fe.Field != "age" || fe.Input != in {
			t.Errorf("ParseUint8(%q): unexpected field error %#v", in, fe)
		}
	}
}

func TestFieldError_Message(t *testing.T) {
	_, err := ParseUint8("max hunger", "lots")
	msg := err.Error()
	if !strings.Contains(msg, "max hunger") || !strings.Contains(msg, `"lots"`) {
		t.Fatalf("message should name field and input, got %q", msg)
	}
}
