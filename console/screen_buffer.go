package console

// ScreenBuffer is a console screen buffer: a grid of character cells that
// the console can display. Exactly one buffer is active per console. Show
// makes a buffer active; the previously active buffer remains valid.
type ScreenBuffer struct {
	handle *Handle
}

// ScreenBufferFrom wraps an existing handle to a screen buffer.
func ScreenBufferFrom(h *Handle) *ScreenBuffer {
	return &ScreenBuffer{handle: h}
}

// CurrentScreenBuffer opens CONOUT$, the buffer that is active right now.
func CurrentScreenBuffer() (*ScreenBuffer, error) {
	h, err := NewHandle(CurrentOutputHandle)
	if err != nil {
		return nil, err
	}
	return &ScreenBuffer{handle: h}, nil
}

// Handle returns the buffer's handle.
func (b *ScreenBuffer) Handle() *Handle {
	return b.handle
}

// Clone returns a ScreenBuffer holding a new reference to the same buffer.
func (b *ScreenBuffer) Clone() *ScreenBuffer {
	return &ScreenBuffer{handle: b.handle.Clone()}
}

// Close releases the buffer's handle reference. A buffer created by
// CreateScreenBuffer is destroyed once every reference is closed, even if it
// is still the active buffer; the console then decides what to display.
func (b *ScreenBuffer) Close() error {
	return b.handle.Close()
}
