package wire

import (
	"bytes"
	"testing"
	"unicode/utf16"
)

func TestUTF16Encoding(t *testing.T) {
	tests := []struct {
		name  string
		units []uint16
		want  []byte
	}{
		{"empty", nil, []byte{}},
		{"ascii", []uint16{'A'}, []byte{0x41}},
		{"all ascii", utf16.Encode([]rune("testing")), []byte("testing")},
		{"two-byte", []uint16{0x00A3}, []byte{0xC2, 0xA3}}, // £
		{"three-byte", []uint16{0x20AC}, []byte{0xE2, 0x82, 0xAC}}, // €
		{"surrogate pair", []uint16{0xD834, 0xDD1E}, []byte{0xF0, 0x9D, 0x84, 0x9E}}, // 𝄞
		{"unpaired high surrogate", []uint16{0xD834}, []byte{0xED, 0xA0, 0xB4}},
		{"unpaired low surrogate", []uint16{0xDD1E}, []byte{0xED, 0xB4, 0x9E}},
		{"high surrogate then ascii", []uint16{0xD834, 'x'}, []byte{0xED, 0xA0, 0xB4, 0x78}},
		{"mixed", []uint16{'a', 0x00A3, 0xD834, 0xDD1E, 'z'}, []byte{0x61, 0xC2, 0xA3, 0xF0, 0x9D, 0x84, 0x9E, 0x7A}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := utf16Len(tt.units)
			if int(n) != len(tt.want) {
				t.Errorf("utf16Len = %d, want %d", n, len(tt.want))
			}
			buf := make([]byte, n)
			end := putUTF16(buf, 0, tt.units)
			if end != int(n) {
				t.Errorf("putUTF16 wrote %d bytes, length scan said %d", end, n)
			}
			if !bytes.Equal(buf, tt.want) {
				t.Errorf("putUTF16 = % X, want % X", buf, tt.want)
			}
		})
	}
}

func TestUTF16MatchesGoEncoding(t *testing.T) {
	// For well-formed text the code-unit path and Go's native UTF-8
	// must agree byte for byte.
	inputs := []string{
		"",
		"A",
		"hello, world",
		"£",
		"€",
		"\U0001D11E",
		"naïve résumé \U0001F600",
	}

	for _, s := range inputs {
		units := utf16.Encode([]rune(s))
		n := utf16Len(units)
		buf := make([]byte, n)
		putUTF16(buf, 0, units)
		if string(buf) != s {
			t.Errorf("utf16 path for %q = % X, want % X", s, buf, []byte(s))
		}
	}
}

func TestWriterStringUTF16(t *testing.T) {
	tests := []struct {
		name  string
		units []uint16
		want  []byte
	}{
		{"empty", nil, []byte{0x00}},
		{"testing", utf16.Encode([]rune("testing")), append([]byte{0x07}, "testing"...)},
		{"surrogate pair", []uint16{0xD834, 0xDD1E}, []byte{0x04, 0xF0, 0x9D, 0x84, 0x9E}},
		{"unpaired high surrogate", []uint16{0xD834}, []byte{0x03, 0xED, 0xA0, 0xB4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewWriter().StringUTF16(tt.units).Finish()
			if !bytes.Equal(got, tt.want) {
				t.Errorf("got % X, want % X", got, tt.want)
			}
		})
	}
}
