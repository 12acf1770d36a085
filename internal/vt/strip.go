// Package vt recognises VT escape sequences in text written to a console.
package vt

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Strip removes VT escape sequences from s: CSI sequences including private
// modes and intermediate bytes, OSC strings ended by BEL or ST, and two
// byte ESC sequences. Text written to a buffer whose mode lacks virtual
// terminal processing would otherwise show them as literal characters.
func Strip(s string) string {
	if !strings.ContainsRune(s, ansi.ESC) {
		return s
	}
	return ansi.Strip(s)
}

// Contains reports whether s has at least one VT escape sequence.
func Contains(s string) bool {
	return strings.ContainsRune(s, ansi.ESC) && ansi.Strip(s) != s
}
