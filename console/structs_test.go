package console

import "testing"

func TestScreenBufferInfoAccessors(t *testing.T) {
	info := ScreenBufferInfo{
		size:       Coord{X: 120, Y: 9000},
		cursor:     Coord{X: 3, Y: 42},
		attributes: ForegroundRed | BackgroundBlue,
		window:     WindowPositions{Left: 0, Top: 30, Right: 119, Bottom: 59},
		maxWindow:  Coord{X: 200, Y: 70},
	}

	if got := info.BufferSize(); got != NewSize(120, 9000) {
		t.Errorf("BufferSize() = %+v", got)
	}
	if got := info.TerminalSize(); got != NewSize(120, 30) {
		t.Errorf("TerminalSize() = %+v, want 120x30", got)
	}
	if got := info.TerminalWindow(); got.Top != 30 || got.Bottom != 59 {
		t.Errorf("TerminalWindow() = %+v", got)
	}
	if got := info.Attributes(); got != 0x14 {
		t.Errorf("Attributes() = %#x, want 0x14", got)
	}
	if got := info.CursorPos(); got != NewCoord(3, 42) {
		t.Errorf("CursorPos() = %+v", got)
	}
	if got := info.MaxWindowSize(); got != NewSize(200, 70) {
		t.Errorf("MaxWindowSize() = %+v", got)
	}
}

func TestFontInfoAccessors(t *testing.T) {
	f := FontInfo{index: 7, size: Coord{X: 8, Y: 16}}
	if f.Index() != 7 {
		t.Errorf("Index() = %d", f.Index())
	}
	if f.Size() != NewSize(8, 16) {
		t.Errorf("Size() = %+v", f.Size())
	}
}

func TestUnsignedConversions(t *testing.T) {
	w, h := NewSize(80, 25).Unsigned()
	if w != 80 || h != 25 {
		t.Errorf("Size.Unsigned() = %d, %d", w, h)
	}
	x, y := NewCoord(-1, 2).Unsigned()
	if x != 0xFFFF || y != 2 {
		t.Errorf("Coord.Unsigned() = %#x, %d", x, y)
	}
}

func TestWindowPositionsDimensions(t *testing.T) {
	w := WindowPositions{Left: 10, Top: 5, Right: 10, Bottom: 5}
	if w.Width() != 1 || w.Height() != 1 {
		t.Errorf("single cell window = %dx%d, want 1x1", w.Width(), w.Height())
	}
}

func TestCoordResult(t *testing.T) {
	errSentinel := func() error { return errTest }

	if c, err := coordResult(NewCoord(100, 40), errSentinel); err != nil || c != NewCoord(100, 40) {
		t.Errorf("coordResult valid = %+v, %v", c, err)
	}
	for _, c := range []Coord{{0, 40}, {100, 0}, {0, 0}} {
		if _, err := coordResult(c, errSentinel); err != errTest {
			t.Errorf("coordResult(%+v) err = %v, want errTest", c, err)
		}
	}
}

var errTest = testError("last os error")

type testError string

func (e testError) Error() string { return string(e) }
