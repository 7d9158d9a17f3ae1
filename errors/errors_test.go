package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name: "full error",
			err: &Error{
				Phase:  PhaseDecode,
				Kind:   KindTruncated,
				Detail: "input ends inside varint",
				Offset: 12,
			},
			contains: []string{"[decode]", "truncated", "offset 12", "input ends inside varint"},
		},
		{
			name: "minimal error",
			err: &Error{
				Phase:  PhaseFinish,
				Kind:   KindUnbalancedFork,
				Offset: -1,
			},
			contains: []string{"[finish]", "unbalanced_fork"},
		},
		{
			name: "error with cause",
			err: &Error{
				Phase:  PhaseParse,
				Kind:   KindInvalidLongInput,
				Detail: "bad input",
				Cause:  errors.New("underlying error"),
				Offset: -1,
			},
			contains: []string{"[parse]", "invalid_long_input", "bad input", "caused by", "underlying error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, want := range tt.contains {
				if !strings.Contains(msg, want) {
					t.Errorf("Error() = %q, want it to contain %q", msg, want)
				}
			}
		})
	}
}

func TestError_Is(t *testing.T) {
	err := Truncated(4, "varint")

	if !errors.Is(err, &Error{Phase: PhaseDecode, Kind: KindTruncated}) {
		t.Error("expected match on same phase and kind")
	}
	if errors.Is(err, &Error{Phase: PhaseDecode, Kind: KindOverflow}) {
		t.Error("expected no match on different kind")
	}
	if errors.Is(err, errors.New("plain")) {
		t.Error("expected no match on plain error")
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("strconv failure")
	err := InvalidLongInput("abc", cause)

	if !errors.Is(err, cause) {
		t.Error("expected cause to be reachable via errors.Is")
	}
}

func TestBuilder(t *testing.T) {
	cause := errors.New("short read")
	err := New(PhaseDecode, KindTruncated).
		Offset(7).
		Value(uint32(2)).
		Detail("need %d more bytes", 3).
		Cause(cause).
		Build()

	if err.Phase != PhaseDecode || err.Kind != KindTruncated {
		t.Errorf("phase/kind = %s/%s", err.Phase, err.Kind)
	}
	if err.Offset != 7 {
		t.Errorf("offset = %d, want 7", err.Offset)
	}
	if err.Detail != "need 3 more bytes" {
		t.Errorf("detail = %q", err.Detail)
	}
	if err.Cause != cause {
		t.Error("cause not set")
	}
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		kind Kind
	}{
		{"invalid long input", InvalidLongInput("xyz", nil), KindInvalidLongInput},
		{"unbalanced fork", UnbalancedFork(2), KindUnbalancedFork},
		{"truncated", Truncated(0, "length prefix"), KindTruncated},
		{"overflow", Overflow(5, "varint"), KindOverflow},
		{"bad wire type", BadWireType(1, 7), KindBadWireType},
		{"invalid utf8", InvalidUTF8(3, []byte{0xff, 0xfe}), KindInvalidUTF8},
		{"invalid input", InvalidInput(PhaseParse, "empty input"), KindInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Kind != tt.kind {
				t.Errorf("kind = %s, want %s", tt.err.Kind, tt.kind)
			}
			if tt.err.Error() == "" {
				t.Error("empty error message")
			}
		})
	}
}
