//go:build windows

package console

import (
	"os"

	"golang.org/x/sys/windows"
)

// SetMode writes mode to the console's mode register.
//
// This wraps SetConsoleMode.
func (m *ConsoleMode) SetMode(mode uint32) error {
	return withNative(m.handle, func(h windows.Handle) error {
		if err := windows.SetConsoleMode(h, mode); err != nil {
			return os.NewSyscallError("SetConsoleMode", err)
		}
		return nil
	})
}

// Mode reads the console's mode register.
//
// This wraps GetConsoleMode.
func (m *ConsoleMode) Mode() (uint32, error) {
	var mode uint32
	err := withNative(m.handle, func(h windows.Handle) error {
		if err := windows.GetConsoleMode(h, &mode); err != nil {
			return os.NewSyscallError("GetConsoleMode", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return mode, nil
}
