package console

import "fmt"

// Input mode flags for handles referring to the console input buffer.
const (
	EnableProcessedInput       uint32 = 0x0001
	EnableLineInput            uint32 = 0x0002
	EnableEchoInput            uint32 = 0x0004
	EnableWindowInput          uint32 = 0x0008
	EnableMouseInput           uint32 = 0x0010
	EnableInsertMode           uint32 = 0x0020
	EnableQuickEditMode        uint32 = 0x0040
	EnableExtendedFlags        uint32 = 0x0080
	EnableAutoPosition         uint32 = 0x0100
	EnableVirtualTerminalInput uint32 = 0x0200
)

// Output mode flags for handles referring to a screen buffer.
const (
	EnableProcessedOutput           uint32 = 0x0001
	EnableWrapAtEOLOutput           uint32 = 0x0002
	EnableVirtualTerminalProcessing uint32 = 0x0004
	DisableNewlineAutoReturn        uint32 = 0x0008
	EnableLVBGridWorldwide          uint32 = 0x0010
)

// ModeFlag names one console mode bit.
type ModeFlag struct {
	Name  string
	Value uint32
}

var inputModeFlags = []ModeFlag{
	{"processed_input", EnableProcessedInput},
	{"line_input", EnableLineInput},
	{"echo_input", EnableEchoInput},
	{"window_input", EnableWindowInput},
	{"mouse_input", EnableMouseInput},
	{"insert_mode", EnableInsertMode},
	{"quick_edit_mode", EnableQuickEditMode},
	{"extended_flags", EnableExtendedFlags},
	{"auto_position", EnableAutoPosition},
	{"virtual_terminal_input", EnableVirtualTerminalInput},
}

var outputModeFlags = []ModeFlag{
	{"processed_output", EnableProcessedOutput},
	{"wrap_at_eol_output", EnableWrapAtEOLOutput},
	{"virtual_terminal_processing", EnableVirtualTerminalProcessing},
	{"disable_newline_auto_return", DisableNewlineAutoReturn},
	{"lvb_grid_worldwide", EnableLVBGridWorldwide},
}

// InputModeFlags returns the known input flags. Input and output flags
// share bit values, so the direction has to be chosen by the caller.
func InputModeFlags() []ModeFlag {
	return append([]ModeFlag(nil), inputModeFlags...)
}

// OutputModeFlags returns the known output flags.
func OutputModeFlags() []ModeFlag {
	return append([]ModeFlag(nil), outputModeFlags...)
}

// DescribeMode lists the names of the flags set in mode, in bit order.
// Bits without a name are reported as a single hex remainder.
func DescribeMode(mode uint32, input bool) []string {
	flags := outputModeFlags
	if input {
		flags = inputModeFlags
	}
	var names []string
	rest := mode
	for _, f := range flags {
		if mode&f.Value != 0 {
			names = append(names, f.Name)
			rest &^= f.Value
		}
	}
	if rest != 0 {
		names = append(names, fmt.Sprintf("%#x", rest))
	}
	return names
}

// LookupModeFlag resolves a flag name for the given direction.
func LookupModeFlag(name string, input bool) (uint32, bool) {
	flags := outputModeFlags
	if input {
		flags = inputModeFlags
	}
	for _, f := range flags {
		if f.Name == name {
			return f.Value, true
		}
	}
	return 0, false
}

// ConsoleMode reads and writes the mode flags of one console handle. Every
// call goes to the console; nothing is cached.
type ConsoleMode struct {
	handle *Handle
}

// NewConsoleMode returns a ConsoleMode on the process standard output.
// Use ConsoleModeFrom to target another handle, such as standard input.
func NewConsoleMode() (*ConsoleMode, error) {
	h, err := NewHandle(OutputHandle)
	if err != nil {
		return nil, err
	}
	return &ConsoleMode{handle: h}, nil
}

// ConsoleModeFrom returns a ConsoleMode using h. The ConsoleMode shares h;
// it does not take a new reference.
func ConsoleModeFrom(h *Handle) *ConsoleMode {
	return &ConsoleMode{handle: h}
}

// Handle returns the handle used for mode calls.
func (m *ConsoleMode) Handle() *Handle {
	return m.handle
}

// Close releases the ConsoleMode's handle reference.
func (m *ConsoleMode) Close() error {
	return m.handle.Close()
}
