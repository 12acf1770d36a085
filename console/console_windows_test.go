//go:build windows

package console

import (
	"errors"
	"testing"

	"golang.org/x/sys/windows"
)

// requireConsole skips tests when the process has no attached console, as
// on most CI runners.
func requireConsole(t *testing.T) {
	t.Helper()
	h, err := CurrentOutput()
	if err != nil {
		t.Skipf("no console attached: %v", err)
	}
	defer h.Close()
	if _, err := ConsoleModeFrom(h).Mode(); err != nil {
		t.Skipf("CONOUT$ is not a console: %v", err)
	}
}

func TestNewHandleAllTypes(t *testing.T) {
	requireConsole(t)

	for _, ht := range []HandleType{OutputHandle, InputHandle, CurrentOutputHandle, CurrentInputHandle} {
		h, err := NewHandle(ht)
		if err != nil {
			t.Errorf("NewHandle(%v): %v", ht, err)
			continue
		}
		if !IsValidHandle(h.Raw()) {
			t.Errorf("NewHandle(%v) returned INVALID_HANDLE_VALUE", ht)
		}
		wantExclusive := ht == CurrentOutputHandle || ht == CurrentInputHandle
		if h.Exclusive() != wantExclusive {
			t.Errorf("NewHandle(%v).Exclusive() = %v", ht, h.Exclusive())
		}
		if err := h.Close(); err != nil {
			t.Errorf("Close(%v): %v", ht, err)
		}
	}
}

func TestStdHandleUsableAfterRelease(t *testing.T) {
	requireConsole(t)

	h, err := StdOutput()
	if err != nil {
		t.Fatalf("StdOutput: %v", err)
	}
	raw := windows.Handle(h.Raw())
	c := h.Clone()
	_ = h.Close()
	_ = c.Close()

	var mode uint32
	if err := windows.GetConsoleMode(raw, &mode); err != nil {
		t.Fatalf("standard output unusable after releasing wrapper: %v", err)
	}
}

func TestSetModeThenMode(t *testing.T) {
	requireConsole(t)

	out, err := CurrentOutput()
	if err != nil {
		t.Fatalf("CurrentOutput: %v", err)
	}
	mode := ConsoleModeFrom(out)
	defer mode.Close()

	original, err := mode.Mode()
	if err != nil {
		t.Fatalf("Mode: %v", err)
	}
	defer mode.SetMode(original)

	want := original | EnableProcessedOutput | EnableWrapAtEOLOutput
	if err := mode.SetMode(want); err != nil {
		t.Fatalf("SetMode(%#x): %v", want, err)
	}
	got, err := mode.Mode()
	if err != nil {
		t.Fatalf("Mode: %v", err)
	}
	if got&want != want {
		t.Errorf("Mode() = %#x, missing bits of %#x", got, want)
	}
}

func TestScreenBufferInfo(t *testing.T) {
	requireConsole(t)

	buf, err := CurrentScreenBuffer()
	if err != nil {
		t.Fatalf("CurrentScreenBuffer: %v", err)
	}
	defer buf.Close()

	info, err := buf.Info()
	if err != nil {
		t.Fatalf("Info: %v", err)
	}
	size := info.TerminalSize()
	if size.Width <= 0 || size.Height <= 0 {
		t.Errorf("TerminalSize() = %+v", size)
	}
	bs := info.BufferSize()
	if bs.Width < size.Width || bs.Height < size.Height {
		t.Errorf("buffer %+v smaller than window %+v", bs, size)
	}
	if _, err := buf.FontInfo(); err != nil {
		t.Errorf("FontInfo: %v", err)
	}
}

// The console clamps buffers to at least the visible window, so the
// requested size is only checked where it exceeds the current window.
func TestCreateResizeShow(t *testing.T) {
	requireConsole(t)

	original, err := CurrentScreenBuffer()
	if err != nil {
		t.Fatalf("CurrentScreenBuffer: %v", err)
	}
	defer original.Close()
	before, err := original.Info()
	if err != nil {
		t.Fatalf("Info: %v", err)
	}

	alt, err := CreateScreenBuffer()
	if err != nil {
		t.Fatalf("CreateScreenBuffer: %v", err)
	}
	defer alt.Close()
	if !alt.Handle().Exclusive() {
		t.Error("created buffer must be exclusively owned")
	}

	width, height := int16(120), int16(9000)
	if w := before.TerminalSize().Width; w > width {
		width = w
	}
	if err := alt.SetSize(width, height); err != nil {
		t.Fatalf("SetSize(%d, %d): %v", width, height, err)
	}
	if err := alt.Show(); err != nil {
		t.Fatalf("Show: %v", err)
	}
	defer original.Show()

	current, err := CurrentScreenBuffer()
	if err != nil {
		t.Fatalf("CurrentScreenBuffer after Show: %v", err)
	}
	defer current.Close()
	info, err := current.Info()
	if err != nil {
		t.Fatalf("Info after Show: %v", err)
	}
	if got := info.BufferSize(); got.Width != width || got.Height != height {
		t.Errorf("active buffer size = %+v, want %dx%d", got, width, height)
	}
}

func TestSetSizeBelowWindowFails(t *testing.T) {
	requireConsole(t)

	buf, err := CreateScreenBuffer()
	if err != nil {
		t.Fatalf("CreateScreenBuffer: %v", err)
	}
	defer buf.Close()
	if err := buf.SetSize(1, 1); err == nil {
		t.Error("expected SetSize(1, 1) to fail")
	}
}

func TestSemaphoreReleaseOncePerCount(t *testing.T) {
	sem, err := NewSemaphore()
	if err != nil {
		t.Fatalf("NewSemaphore: %v", err)
	}
	defer sem.Close()

	if err := sem.Release(); err != nil {
		t.Fatalf("first Release: %v", err)
	}
	if err := sem.Release(); err == nil {
		t.Fatal("second Release without a wait succeeded")
	} else if !errors.Is(err, windows.ERROR_TOO_MANY_POSTS) {
		t.Errorf("second Release: expected ERROR_TOO_MANY_POSTS, got %v", err)
	}

	ev, err := windows.WaitForSingleObject(windows.Handle(sem.Handle().Raw()), 0)
	if err != nil || ev != windows.WAIT_OBJECT_0 {
		t.Fatalf("wait on released semaphore = %d, %v", ev, err)
	}
	prev, err := sem.ReleaseCount()
	if err != nil {
		t.Fatalf("Release after wait: %v", err)
	}
	if prev != 0 {
		t.Errorf("previous count = %d, want 0", prev)
	}
}

func TestConsoleWriteAndReadBack(t *testing.T) {
	requireConsole(t)

	buf, err := CreateScreenBuffer()
	if err != nil {
		t.Fatalf("CreateScreenBuffer: %v", err)
	}
	defer buf.Close()
	con := ConsoleFrom(buf.Handle())

	if err := con.SetCursorPosition(NewCoord(0, 0)); err != nil {
		t.Fatalf("SetCursorPosition: %v", err)
	}
	if _, err := con.WriteString("héllo"); err != nil {
		t.Fatalf("WriteString: %v", err)
	}
	got, err := con.ReadOutputCharacters(NewCoord(0, 0), 5)
	if err != nil {
		t.Fatalf("ReadOutputCharacters: %v", err)
	}
	if got != "héllo" {
		t.Errorf("read back %q", got)
	}

	n, err := con.FillWithCharacter(NewCoord(0, 0), 5, '#')
	if err != nil || n != 5 {
		t.Fatalf("FillWithCharacter = %d, %v", n, err)
	}
	if got, _ := con.ReadOutputCharacters(NewCoord(0, 0), 5); got != "#####" {
		t.Errorf("after fill read %q", got)
	}
	if _, err := con.FillWithAttribute(NewCoord(0, 0), 5, ForegroundGreen); err != nil {
		t.Errorf("FillWithAttribute: %v", err)
	}
	if err := con.SetTextAttribute(ForegroundRed | ForegroundIntensity); err != nil {
		t.Errorf("SetTextAttribute: %v", err)
	}
	if _, err := con.FillWithCharacter(NewCoord(0, 0), 1, 0x1F600); err == nil {
		t.Error("expected error filling with a non-BMP rune")
	}
}

func TestLargestWindowSize(t *testing.T) {
	requireConsole(t)

	out, err := CurrentOutput()
	if err != nil {
		t.Fatalf("CurrentOutput: %v", err)
	}
	con := ConsoleFrom(out)
	defer con.Close()

	size, err := con.LargestWindowSize()
	if err != nil {
		t.Fatalf("LargestWindowSize: %v", err)
	}
	if size.X <= 0 || size.Y <= 0 {
		t.Errorf("LargestWindowSize() = %+v", size)
	}
}

func TestHandleFileIsIndependent(t *testing.T) {
	requireConsole(t)

	buf, err := CreateScreenBuffer()
	if err != nil {
		t.Fatalf("CreateScreenBuffer: %v", err)
	}
	defer buf.Close()

	f, err := buf.Handle().File("alt")
	if err != nil {
		t.Fatalf("File: %v", err)
	}
	if f.Fd() == buf.Handle().Raw() {
		t.Error("File must duplicate the handle")
	}
	if err := f.Close(); err != nil {
		t.Fatalf("closing duplicate: %v", err)
	}
	if _, err := buf.Info(); err != nil {
		t.Errorf("buffer unusable after closing duplicate: %v", err)
	}
}

func TestBytesForUnits(t *testing.T) {
	p := []byte("a\U0001F600b")
	tests := []struct{ units, want int }{
		{0, 0},
		{1, 1},
		{2, 1}, // half a surrogate pair is not a whole rune
		{3, 5},
		{4, 6},
	}
	for _, tt := range tests {
		if got := bytesForUnits(p, tt.units); got != tt.want {
			t.Errorf("bytesForUnits(%d) = %d, want %d", tt.units, got, tt.want)
		}
	}
}
