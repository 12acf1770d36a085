//go:build windows

package console

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

// NewSemaphore creates a semaphore with count 0 and maximum count 1.
//
// This wraps CreateSemaphoreW.
func NewSemaphore() (*Semaphore, error) {
	r1, _, e1 := procCreateSemaphoreW.Call(0, 0, 1, 0)
	if r1 == 0 {
		return nil, callErr("CreateSemaphoreW", e1)
	}
	debugLog().Debug("console: created semaphore", "handle", fmt.Sprintf("%#x", r1))
	return &Semaphore{handle: FromRaw(r1)}, nil
}

// Release increments the count by one, waking one waiter. It fails with
// ERROR_TOO_MANY_POSTS when the count is already at its maximum, that is,
// when a previous Release has not been consumed by a wait.
//
// This wraps ReleaseSemaphore.
func (s *Semaphore) Release() error {
	_, err := s.release()
	return err
}

// ReleaseCount is Release but also returns the count before the increment.
func (s *Semaphore) ReleaseCount() (int32, error) {
	return s.release()
}

func (s *Semaphore) release() (int32, error) {
	var previous int32
	err := withNative(s.handle, func(h windows.Handle) error {
		r1, _, e1 := procReleaseSemaphore.Call(uintptr(h), 1, uintptr(unsafe.Pointer(&previous)))
		if r1 == 0 {
			return callErr("ReleaseSemaphore", e1)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return previous, nil
}
