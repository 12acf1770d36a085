//go:build windows

package console

import (
	"fmt"
	"os"
	"unsafe"

	"golang.org/x/sys/windows"
)

// consoleFontInfo mirrors CONSOLE_FONT_INFO.
type consoleFontInfo struct {
	font     uint32
	fontSize Coord
}

// CreateScreenBuffer allocates a new text-mode screen buffer with read and
// write access, shared for reading and writing, and an inheritable handle
// so it can be passed to child processes. The buffer is not shown until
// Show is called.
func CreateScreenBuffer() (*ScreenBuffer, error) {
	sa := windows.SecurityAttributes{InheritHandle: 1}
	sa.Length = uint32(unsafe.Sizeof(sa))

	r1, _, e1 := procCreateConsoleScreenBuffer.Call(
		uintptr(windows.GENERIC_READ|windows.GENERIC_WRITE),
		uintptr(windows.FILE_SHARE_READ|windows.FILE_SHARE_WRITE),
		uintptr(unsafe.Pointer(&sa)),
		consoleTextModeBuffer,
		0,
	)
	if r1 == 0 || !IsValidHandle(r1) {
		return nil, callErr("CreateConsoleScreenBuffer", e1)
	}
	debugLog().Debug("console: created screen buffer", "handle", fmt.Sprintf("%#x", r1))
	return &ScreenBuffer{handle: FromRaw(r1)}, nil
}

// Show makes b the active screen buffer of the console. The last call wins
// when several goroutines or processes race.
//
// This wraps SetConsoleActiveScreenBuffer.
func (b *ScreenBuffer) Show() error {
	return withNative(b.handle, func(h windows.Handle) error {
		r1, _, e1 := procSetConsoleActiveScreenBuffer.Call(uintptr(h))
		if r1 == 0 {
			return callErr("SetConsoleActiveScreenBuffer", e1)
		}
		debugLog().Debug("console: activated screen buffer", "handle", fmt.Sprintf("%#x", uintptr(h)))
		return nil
	})
}

// Info returns the buffer size, window rectangle, attributes and cursor
// position.
//
// This wraps GetConsoleScreenBufferInfo.
func (b *ScreenBuffer) Info() (ScreenBufferInfo, error) {
	var csbi windows.ConsoleScreenBufferInfo
	err := withNative(b.handle, func(h windows.Handle) error {
		if err := windows.GetConsoleScreenBufferInfo(h, &csbi); err != nil {
			return os.NewSyscallError("GetConsoleScreenBufferInfo", err)
		}
		return nil
	})
	if err != nil {
		return ScreenBufferInfo{}, err
	}
	return ScreenBufferInfo{
		size:       Coord{X: csbi.Size.X, Y: csbi.Size.Y},
		cursor:     Coord{X: csbi.CursorPosition.X, Y: csbi.CursorPosition.Y},
		attributes: csbi.Attributes,
		window: WindowPositions{
			Left:   csbi.Window.Left,
			Top:    csbi.Window.Top,
			Right:  csbi.Window.Right,
			Bottom: csbi.Window.Bottom,
		},
		maxWindow: Coord{X: csbi.MaximumWindowSize.X, Y: csbi.MaximumWindowSize.Y},
	}, nil
}

// FontInfo returns the size and index of the font used for the current
// window size.
//
// This wraps GetCurrentConsoleFont.
func (b *ScreenBuffer) FontInfo() (FontInfo, error) {
	var cfi consoleFontInfo
	err := withNative(b.handle, func(h windows.Handle) error {
		// bMaximumWindow FALSE: the current window size, not the maximum.
		r1, _, e1 := procGetCurrentConsoleFont.Call(uintptr(h), 0, uintptr(unsafe.Pointer(&cfi)))
		if r1 == 0 {
			return callErr("GetCurrentConsoleFont", e1)
		}
		return nil
	})
	if err != nil {
		return FontInfo{}, err
	}
	return FontInfo{index: cfi.font, size: cfi.fontSize}, nil
}

// SetSize resizes the buffer to width columns by height rows. The console
// rejects sizes smaller than the visible window; the exact minimum depends
// on the Windows version and is not checked here.
//
// This wraps SetConsoleScreenBufferSize.
func (b *ScreenBuffer) SetSize(width, height int16) error {
	return withNative(b.handle, func(h windows.Handle) error {
		r1, _, e1 := procSetConsoleScreenBufferSize.Call(uintptr(h), packCoord(Coord{X: width, Y: height}))
		if r1 == 0 {
			return callErr("SetConsoleScreenBufferSize", e1)
		}
		return nil
	})
}
