package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"wincon/console"
)

var (
	accentColor = lipgloss.Color("#A78BFA")
	mutedColor  = lipgloss.Color("#9CA3AF")
	errorColor  = lipgloss.Color("#F87171")

	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(accentColor)
	keyStyle   = lipgloss.NewStyle().Foreground(mutedColor)
	errStyle   = lipgloss.NewStyle().Foreground(errorColor)
)

// maxValueWidth bounds a single value column in renderTable.
const maxValueWidth = 96

// renderTable formats key/value rows under a title with the keys aligned.
func renderTable(title string, rows [][2]string) string {
	width := 0
	for _, r := range rows {
		width = max(width, lipgloss.Width(r[0]))
	}
	keyCol := keyStyle.Width(width + 2)

	var b strings.Builder
	b.WriteString(titleStyle.Render(title))
	for _, r := range rows {
		b.WriteByte('\n')
		b.WriteString(keyCol.Render(r[0]))
		b.WriteString(ansi.Truncate(r[1], maxValueWidth, "..."))
	}
	return b.String()
}

// errValue renders an error in place of a value that could not be read.
func errValue(err error) string {
	return errStyle.Render("error: " + err.Error())
}

// parseUint accepts decimal, 0x-prefixed hex or bare hex when hexDefault is set.
func parseUint(s string, bits int, hexDefault bool) (uint64, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		return 0, fmt.Errorf("empty value")
	}
	if hexDefault && !strings.HasPrefix(s, "0x") {
		s = "0x" + s
	}
	v, err := strconv.ParseUint(s, 0, bits)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", s)
	}
	return v, nil
}

// parseMode parses a console mode given in hex, with or without 0x.
func parseMode(s string) (uint32, error) {
	v, err := parseUint(s, 32, true)
	return uint32(v), err
}

// parseAttr parses a character attribute in decimal or 0x hex.
func parseAttr(s string) (uint16, error) {
	v, err := parseUint(s, 16, false)
	return uint16(v), err
}

// parseCoord parses "X,Y" into a buffer coordinate.
func parseCoord(s string) (console.Coord, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return console.Coord{}, fmt.Errorf("invalid position %q: want X,Y", s)
	}
	x, err := strconv.ParseInt(strings.TrimSpace(xs), 10, 16)
	if err != nil || x < 0 {
		return console.Coord{}, fmt.Errorf("invalid column %q", xs)
	}
	y, err := strconv.ParseInt(strings.TrimSpace(ys), 10, 16)
	if err != nil || y < 0 {
		return console.Coord{}, fmt.Errorf("invalid row %q", ys)
	}
	return console.NewCoord(int16(x), int16(y)), nil
}

// parseModeFlags resolves flag names, or a single hex value, to mode bits.
func parseModeFlags(args []string, input bool) (uint32, error) {
	var bits uint32
	for _, arg := range args {
		for _, name := range strings.Split(arg, ",") {
			name = strings.TrimSpace(name)
			if name == "" {
				continue
			}
			if v, ok := console.LookupModeFlag(name, input); ok {
				bits |= v
				continue
			}
			v, err := parseMode(name)
			if err != nil {
				return 0, fmt.Errorf("unknown mode flag %q", name)
			}
			bits |= v
		}
	}
	return bits, nil
}

func describeMode(mode uint32, input bool) string {
	names := console.DescribeMode(mode, input)
	if len(names) == 0 {
		return fmt.Sprintf("%#06x", mode)
	}
	return fmt.Sprintf("%#06x %s", mode, strings.Join(names, "|"))
}

func formatSize(s console.Size) string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

func formatCoord(c console.Coord) string {
	return fmt.Sprintf("%d,%d", c.X, c.Y)
}

func formatRect(w console.WindowPositions) string {
	return fmt.Sprintf("(%d,%d)-(%d,%d)", w.Left, w.Top, w.Right, w.Bottom)
}

// formatRecord renders one input record on a single line.
func formatRecord(rec console.InputRecord) string {
	switch rec.Type {
	case console.KeyEvent:
		k := rec.Key
		state := "up"
		if k.KeyDown {
			state = "down"
		}
		return fmt.Sprintf("key %-4s vk=%#04x scan=%#04x char=%s repeat=%d mods=%s",
			state, k.VirtualKeyCode, k.VirtualScanCode, formatChar(k.UnicodeChar), k.RepeatCount, formatMods(k.ControlKeyState))
	case console.MouseEventType:
		m := rec.Mouse
		return fmt.Sprintf("mouse %s at=%s buttons=%s mods=%s",
			m.EventFlags, formatCoord(m.MousePosition), formatButtons(m), formatMods(m.ControlKeyState))
	case console.WindowBufferSizeEvent:
		return "resize " + formatSize(rec.WindowBufferSize)
	case console.MenuEvent:
		return fmt.Sprintf("menu command=%d", rec.MenuCommand)
	case console.FocusEvent:
		return fmt.Sprintf("focus set=%t", rec.Focus)
	default:
		return rec.Type.String()
	}
}

func formatChar(c uint16) string {
	if c == 0 {
		return "-"
	}
	if c < 0x20 || c == 0x7f || (c >= 0xd800 && c <= 0xdfff) {
		return fmt.Sprintf("%#04x", c)
	}
	return strconv.QuoteRune(rune(c))
}

func formatMods(s console.ControlKeyState) string {
	var mods []string
	if s.Ctrl() {
		mods = append(mods, "ctrl")
	}
	if s.Alt() {
		mods = append(mods, "alt")
	}
	if s.Shift() {
		mods = append(mods, "shift")
	}
	if len(mods) == 0 {
		return "-"
	}
	return strings.Join(mods, "+")
}

func formatButtons(m console.MouseEvent) string {
	b := m.ButtonState
	switch m.EventFlags {
	case console.MouseWheeled:
		if b.ScrollUp() {
			return "wheel-up"
		}
		return "wheel-down"
	case console.MouseHWheeled:
		if b.ScrollRight() {
			return "wheel-right"
		}
		return "wheel-left"
	}
	if b.ReleaseButton() {
		return "none"
	}
	var names []string
	if b.LeftButton() {
		names = append(names, "left")
	}
	if b.RightButton() {
		names = append(names, "right")
	}
	if b.MiddleButton() {
		names = append(names, "middle")
	}
	if len(names) == 0 {
		return fmt.Sprintf("%#x", uint32(b))
	}
	return strings.Join(names, "+")
}
