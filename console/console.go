package console

// Character attributes for SetTextAttribute and FillWithAttribute.
const (
	ForegroundBlue      uint16 = 0x0001
	ForegroundGreen     uint16 = 0x0002
	ForegroundRed       uint16 = 0x0004
	ForegroundIntensity uint16 = 0x0008
	BackgroundBlue      uint16 = 0x0010
	BackgroundGreen     uint16 = 0x0020
	BackgroundRed       uint16 = 0x0040
	BackgroundIntensity uint16 = 0x0080
)

// Console performs cell level operations on a screen buffer or, for the
// input calls, on the console input buffer.
type Console struct {
	handle *Handle
}

// NewConsole returns a Console on the process standard output.
func NewConsole() (*Console, error) {
	h, err := NewHandle(OutputHandle)
	if err != nil {
		return nil, err
	}
	return &Console{handle: h}, nil
}

// ConsoleFrom returns a Console using h.
func ConsoleFrom(h *Handle) *Console {
	return &Console{handle: h}
}

// Handle returns the console's handle.
func (c *Console) Handle() *Handle {
	return c.handle
}

// WriteString writes s at the cursor position.
func (c *Console) WriteString(s string) (int, error) {
	return c.Write([]byte(s))
}

// Close releases the console's handle reference.
func (c *Console) Close() error {
	return c.handle.Close()
}

// coordResult interprets a COORD returned by value, where a zero component
// signals failure.
func coordResult(c Coord, lastErr func() error) (Coord, error) {
	if c.X != 0 && c.Y != 0 {
		return c, nil
	}
	return Coord{}, lastErr()
}
