package vt

import "testing"

func TestStrip(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"csi private modes", "\x1b[?1049h\x1b[?25lREADY\r\n", "READY\r\n"},
		{"sgr colors", "\x1b[1;31merror\x1b[0m: disk full", "error: disk full"},
		{"osc title bel", "\x1b]0;wincon\x07text", "text"},
		{"osc title st", "\x1b]2;title\x1b\\after", "after"},
		{"save restore cursor", "\x1b7moved\x1b8", "moved"},
		{"intermediate byte", "\x1b[2 qcursor", "cursor"},
		{"plain", "C:\\Users\\dev> dir\n", "C:\\Users\\dev> dir\n"},
		{"empty", "", ""},
		{"only escapes", "\x1b[2J\x1b[H", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Strip(tt.input); got != tt.want {
				t.Errorf("Strip(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestContains(t *testing.T) {
	if Contains("plain text") {
		t.Error("plain text reported as containing escapes")
	}
	if !Contains("a\x1b[0mb") {
		t.Error("SGR reset not detected")
	}
}

func TestStripKeepsControlCharacters(t *testing.T) {
	in := "line one\r\n\tline two\n"
	if got := Strip(in); got != in {
		t.Errorf("Strip(%q) = %q, want unchanged", in, got)
	}
	if Contains(in) {
		t.Errorf("Contains(%q) = true", in)
	}
}
