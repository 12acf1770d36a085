//go:build !windows

package console

import "os"

func closeHandle(uintptr) error { return ErrUnsupported }

// StdOutput returns ErrUnsupported outside Windows.
func StdOutput() (*Handle, error) { return nil, ErrUnsupported }

// StdInput returns ErrUnsupported outside Windows.
func StdInput() (*Handle, error) { return nil, ErrUnsupported }

// CurrentOutput returns ErrUnsupported outside Windows.
func CurrentOutput() (*Handle, error) { return nil, ErrUnsupported }

// CurrentInput returns ErrUnsupported outside Windows.
func CurrentInput() (*Handle, error) { return nil, ErrUnsupported }

func (h *Handle) File(string) (*os.File, error) { return nil, ErrUnsupported }

func (m *ConsoleMode) SetMode(uint32) error  { return ErrUnsupported }
func (m *ConsoleMode) Mode() (uint32, error) { return 0, ErrUnsupported }

// CreateScreenBuffer returns ErrUnsupported outside Windows.
func CreateScreenBuffer() (*ScreenBuffer, error) { return nil, ErrUnsupported }

func (b *ScreenBuffer) Show() error                       { return ErrUnsupported }
func (b *ScreenBuffer) Info() (ScreenBufferInfo, error)   { return ScreenBufferInfo{}, ErrUnsupported }
func (b *ScreenBuffer) FontInfo() (FontInfo, error)       { return FontInfo{}, ErrUnsupported }
func (b *ScreenBuffer) SetSize(width, height int16) error { return ErrUnsupported }

// NewSemaphore returns ErrUnsupported outside Windows.
func NewSemaphore() (*Semaphore, error) { return nil, ErrUnsupported }

func (s *Semaphore) Release() error               { return ErrUnsupported }
func (s *Semaphore) ReleaseCount() (int32, error) { return 0, ErrUnsupported }

func (c *Console) SetTextAttribute(uint16) error                      { return ErrUnsupported }
func (c *Console) SetWindowInfo(bool, WindowPositions) error          { return ErrUnsupported }
func (c *Console) SetCursorPosition(Coord) error                      { return ErrUnsupported }
func (c *Console) LargestWindowSize() (Coord, error)                  { return Coord{}, ErrUnsupported }
func (c *Console) Write([]byte) (int, error)                          { return 0, ErrUnsupported }
func (c *Console) NumberOfInputEvents() (uint32, error)               { return 0, ErrUnsupported }
func (c *Console) ReadInput(int) ([]InputRecord, error)               { return nil, ErrUnsupported }
func (c *Console) ReadSingleInput() (InputRecord, error)              { return InputRecord{}, ErrUnsupported }
func (c *Console) ReadOutputCharacters(Coord, uint32) (string, error) { return "", ErrUnsupported }

func (c *Console) FillWithCharacter(Coord, uint32, rune) (uint32, error) {
	return 0, ErrUnsupported
}

func (c *Console) FillWithAttribute(Coord, uint32, uint16) (uint32, error) {
	return 0, ErrUnsupported
}
