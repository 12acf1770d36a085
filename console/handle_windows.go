//go:build windows

package console

import (
	"fmt"
	"os"

	"golang.org/x/sys/windows"
)

func closeHandle(raw uintptr) error {
	return windows.CloseHandle(windows.Handle(raw))
}

// StdOutput returns the process standard output handle. It is shared with
// the process and is never closed by this package.
func StdOutput() (*Handle, error) {
	return stdHandle(windows.STD_OUTPUT_HANDLE, OutputHandle)
}

// StdInput returns the process standard input handle. It is shared with
// the process and is never closed by this package.
func StdInput() (*Handle, error) {
	return stdHandle(windows.STD_INPUT_HANDLE, InputHandle)
}

// CurrentOutput opens CONOUT$, the active screen buffer. With several
// screen buffers this is always the one being displayed at the time of the
// call. The handle is exclusively owned.
func CurrentOutput() (*Handle, error) {
	return openConsoleFile("CONOUT$", CurrentOutputHandle)
}

// CurrentInput opens CONIN$, the console input buffer. The handle is
// exclusively owned.
func CurrentInput() (*Handle, error) {
	return openConsoleFile("CONIN$", CurrentInputHandle)
}

func stdHandle(which uint32, t HandleType) (*Handle, error) {
	h, err := windows.GetStdHandle(which)
	if err != nil {
		return nil, os.NewSyscallError("GetStdHandle", err)
	}
	// A process without a console gets a NULL standard handle and no error.
	if h == 0 || !IsValidHandle(uintptr(h)) {
		return nil, os.NewSyscallError("GetStdHandle", windows.ERROR_INVALID_HANDLE)
	}
	debugLog().Debug("console: acquired handle", "type", t.String(), "handle", fmt.Sprintf("%#x", uintptr(h)))
	return newHandle(uintptr(h), false, closeHandle), nil
}

func openConsoleFile(name string, t HandleType) (*Handle, error) {
	path, err := windows.UTF16PtrFromString(name)
	if err != nil {
		return nil, err
	}
	h, err := windows.CreateFile(
		path,
		windows.GENERIC_READ|windows.GENERIC_WRITE,
		windows.FILE_SHARE_READ|windows.FILE_SHARE_WRITE,
		nil,
		windows.OPEN_EXISTING,
		0,
		0,
	)
	if err != nil {
		return nil, os.NewSyscallError("CreateFile", err)
	}
	if !IsValidHandle(uintptr(h)) {
		return nil, os.NewSyscallError("CreateFile", windows.ERROR_INVALID_HANDLE)
	}
	debugLog().Debug("console: acquired handle", "type", t.String(), "handle", fmt.Sprintf("%#x", uintptr(h)))
	return newHandle(uintptr(h), true, closeHandle), nil
}

// File duplicates the native handle into an inheritable *os.File, for
// example to hand a screen buffer to a child process as its standard
// output. The file owns the duplicate and must be closed by the caller;
// closing it does not affect h.
func (h *Handle) File(name string) (*os.File, error) {
	var dup windows.Handle
	err := withNative(h, func(src windows.Handle) error {
		proc := windows.CurrentProcess()
		if err := windows.DuplicateHandle(proc, src, proc, &dup, 0, true, windows.DUPLICATE_SAME_ACCESS); err != nil {
			return os.NewSyscallError("DuplicateHandle", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return os.NewFile(uintptr(dup), name), nil
}
