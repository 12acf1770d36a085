//go:build windows

package cli

import (
	"fmt"
	"runtime"

	"golang.org/x/sys/windows"

	"wincon/console"
)

// waitInput blocks until the input buffer has records or stop is signaled.
func waitInput(input, stop *console.Handle) error {
	handles := []windows.Handle{windows.Handle(input.Raw()), windows.Handle(stop.Raw())}
	event, err := windows.WaitForMultipleObjects(handles, false, windows.INFINITE)
	runtime.KeepAlive(input)
	runtime.KeepAlive(stop)
	if err != nil {
		return fmt.Errorf("wait for input: %w", err)
	}
	switch event {
	case windows.WAIT_OBJECT_0:
		return nil
	case windows.WAIT_OBJECT_0 + 1:
		return errTimedOut
	default:
		return fmt.Errorf("wait for input: unexpected result %#x", event)
	}
}
