//go:build windows

package console

import (
	"errors"
	"os"
	"syscall"

	"golang.org/x/sys/windows"
)

// Console calls that golang.org/x/sys/windows does not export.
var (
	kernel32 = windows.NewLazySystemDLL("kernel32.dll")

	procCreateConsoleScreenBuffer     = kernel32.NewProc("CreateConsoleScreenBuffer")
	procSetConsoleActiveScreenBuffer  = kernel32.NewProc("SetConsoleActiveScreenBuffer")
	procSetConsoleScreenBufferSize    = kernel32.NewProc("SetConsoleScreenBufferSize")
	procGetCurrentConsoleFont         = kernel32.NewProc("GetCurrentConsoleFont")
	procCreateSemaphoreW              = kernel32.NewProc("CreateSemaphoreW")
	procReleaseSemaphore              = kernel32.NewProc("ReleaseSemaphore")
	procSetConsoleTextAttribute       = kernel32.NewProc("SetConsoleTextAttribute")
	procSetConsoleWindowInfo          = kernel32.NewProc("SetConsoleWindowInfo")
	procFillConsoleOutputCharacterW   = kernel32.NewProc("FillConsoleOutputCharacterW")
	procFillConsoleOutputAttribute    = kernel32.NewProc("FillConsoleOutputAttribute")
	procGetLargestConsoleWindowSize   = kernel32.NewProc("GetLargestConsoleWindowSize")
	procGetNumberOfConsoleInputEvents = kernel32.NewProc("GetNumberOfConsoleInputEvents")
	procReadConsoleInputW             = kernel32.NewProc("ReadConsoleInputW")
	procReadConsoleOutputCharacterW   = kernel32.NewProc("ReadConsoleOutputCharacterW")
)

const consoleTextModeBuffer = 0x00000001

// packCoord passes a COORD by value: X in the low word, Y in the high word.
func packCoord(c Coord) uintptr {
	return uintptr(uint16(c.X)) | uintptr(uint16(c.Y))<<16
}

func unpackCoord(v uintptr) Coord {
	return Coord{X: int16(uint16(v)), Y: int16(uint16(v >> 16))}
}

func boolArg(b bool) uintptr {
	if b {
		return 1
	}
	return 0
}

// callErr converts the last error reported by LazyProc.Call. A zero errno
// means the call failed without setting one.
func callErr(name string, e error) error {
	var errno syscall.Errno
	if errors.As(e, &errno) && errno != 0 {
		return os.NewSyscallError(name, errno)
	}
	return os.NewSyscallError(name, syscall.EINVAL)
}

// withNative runs fn with the windows.Handle behind h. h is kept alive
// until fn returns.
func withNative(h *Handle, fn func(windows.Handle) error) error {
	return h.use(func(raw uintptr) error {
		return fn(windows.Handle(raw))
	})
}
