package console

// Size is a width and height in character cells.
type Size struct {
	Width  int16
	Height int16
}

// NewSize returns a Size of width by height.
func NewSize(width, height int16) Size {
	return Size{Width: width, Height: height}
}

// Unsigned returns the size as unsigned columns and rows.
func (s Size) Unsigned() (uint16, uint16) {
	return uint16(s.Width), uint16(s.Height)
}

// Coord is a cell position. X is the column and Y the row, both zero based.
type Coord struct {
	X int16
	Y int16
}

// NewCoord returns the position (x, y).
func NewCoord(x, y int16) Coord {
	return Coord{X: x, Y: y}
}

// Unsigned returns the position as unsigned column and row.
func (c Coord) Unsigned() (uint16, uint16) {
	return uint16(c.X), uint16(c.Y)
}

// WindowPositions is the inclusive rectangle of buffer cells shown in the
// console window. Its layout matches SMALL_RECT.
type WindowPositions struct {
	Left   int16
	Top    int16
	Right  int16
	Bottom int16
}

// Width is the number of columns in the rectangle.
func (w WindowPositions) Width() int16 { return w.Right - w.Left + 1 }

// Height is the number of rows in the rectangle.
func (w WindowPositions) Height() int16 { return w.Bottom - w.Top + 1 }

// ScreenBufferInfo is a snapshot of a screen buffer taken by
// ScreenBuffer.Info. Later changes to the buffer are not reflected.
type ScreenBufferInfo struct {
	size       Coord
	cursor     Coord
	attributes uint16
	window     WindowPositions
	maxWindow  Coord
}

// BufferSize is the size of the whole buffer, including rows scrolled out
// of the window.
func (i ScreenBufferInfo) BufferSize() Size {
	return Size{Width: i.size.X, Height: i.size.Y}
}

// TerminalSize is the size of the visible window in cells. The window
// rectangle is inclusive, so this is Right-Left+1 by Bottom-Top+1; the Rust
// crossterm_winapi terminal_size returns Right-Left and Bottom-Top, one
// less in each dimension.
func (i ScreenBufferInfo) TerminalSize() Size {
	return Size{Width: i.window.Width(), Height: i.window.Height()}
}

// TerminalWindow is the buffer rectangle shown in the window.
func (i ScreenBufferInfo) TerminalWindow() WindowPositions {
	return i.window
}

// Attributes are the foreground and background attributes used for newly
// written characters.
func (i ScreenBufferInfo) Attributes() uint16 {
	return i.attributes
}

// CursorPos is the cursor position in buffer coordinates.
func (i ScreenBufferInfo) CursorPos() Coord {
	return i.cursor
}

// MaxWindowSize is the largest window the buffer could be shown in given
// the current font and display.
func (i ScreenBufferInfo) MaxWindowSize() Size {
	return Size{Width: i.maxWindow.X, Height: i.maxWindow.Y}
}

// FontInfo is a snapshot of the console font taken by ScreenBuffer.FontInfo.
type FontInfo struct {
	index uint32
	size  Coord
}

// Size is the width and height of one character cell in pixels.
func (f FontInfo) Size() Size {
	return Size{Width: f.size.X, Height: f.size.Y}
}

// Index is the font's index in the console's font table.
func (f FontInfo) Index() uint32 {
	return f.index
}
