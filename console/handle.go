package console

import (
	"fmt"
	"os"
	"runtime"
	"sync/atomic"
)

// HandleType selects how NewHandle acquires a console handle.
type HandleType int

const (
	// OutputHandle is the process standard output (STD_OUTPUT_HANDLE).
	// The handle is shared with the process and never closed by this package.
	OutputHandle HandleType = iota
	// InputHandle is the process standard input (STD_INPUT_HANDLE).
	// The handle is shared with the process and never closed by this package.
	InputHandle
	// CurrentOutputHandle opens CONOUT$, which always refers to the active
	// screen buffer, even after another buffer has been shown.
	CurrentOutputHandle
	// CurrentInputHandle opens CONIN$, the console input buffer.
	CurrentInputHandle
)

func (t HandleType) String() string {
	switch t {
	case OutputHandle:
		return "stdout"
	case InputHandle:
		return "stdin"
	case CurrentOutputHandle:
		return "CONOUT$"
	case CurrentInputHandle:
		return "CONIN$"
	default:
		return fmt.Sprintf("HandleType(%d)", int(t))
	}
}

// invalidHandleValue is INVALID_HANDLE_VALUE, (HANDLE)-1.
const invalidHandleValue = ^uintptr(0)

// IsValidHandle reports whether raw differs from INVALID_HANDLE_VALUE.
func IsValidHandle(raw uintptr) bool {
	return raw != invalidHandleValue
}

// owner is the state shared by every reference to one native handle.
type owner struct {
	raw       uintptr
	exclusive bool
	refs      atomic.Int64
	closeFn   func(uintptr) error
}

// acquire adds a reference. Once the count has dropped to zero the native
// handle may already be closed, so the owner cannot be revived.
func (o *owner) acquire() *Handle {
	for {
		n := o.refs.Load()
		if n <= 0 {
			panic("console: Clone of released Handle")
		}
		if o.refs.CompareAndSwap(n, n+1) {
			break
		}
	}
	return o.track()
}

func (o *owner) track() *Handle {
	h := &Handle{owner: o}
	h.cleanup = runtime.AddCleanup(h, func(o *owner) { o.release() }, o)
	return h
}

// release drops one reference. The last reference to an exclusive handle
// closes it; a failed close means a double close or a corrupted handle and
// is not recoverable.
func (o *owner) release() {
	if o.refs.Add(-1) != 0 {
		return
	}
	if !o.exclusive {
		debugLog().Debug("console: released shared handle", "handle", fmt.Sprintf("%#x", o.raw))
		return
	}
	if err := o.closeFn(o.raw); err != nil {
		panic(fmt.Sprintf("console: failed to close handle %#x: %v", o.raw, err))
	}
	debugLog().Debug("console: closed handle", "handle", fmt.Sprintf("%#x", o.raw))
}

// Handle is one reference to a native console, file or semaphore handle.
//
// Clone creates another reference to the same native handle. Each reference
// is released by Close, or by the garbage collector if it becomes
// unreachable first. When the last reference is released the native handle
// is closed, but only if it is exclusively owned; the standard handles are
// owned by the process and stay open.
//
// A Handle may be used from any goroutine. Concurrent Close calls on
// different references are safe and exactly one of them closes the handle.
type Handle struct {
	owner   *owner
	closed  atomic.Bool
	cleanup runtime.Cleanup
}

func newHandle(raw uintptr, exclusive bool, closeFn func(uintptr) error) *Handle {
	o := &owner{raw: raw, exclusive: exclusive, closeFn: closeFn}
	o.refs.Store(1)
	return o.track()
}

// NewHandle acquires a handle of the given type.
func NewHandle(t HandleType) (*Handle, error) {
	switch t {
	case OutputHandle:
		return StdOutput()
	case InputHandle:
		return StdInput()
	case CurrentOutputHandle:
		return CurrentOutput()
	case CurrentInputHandle:
		return CurrentInput()
	default:
		return nil, fmt.Errorf("console: unknown handle type %v", t)
	}
}

// FromRaw takes exclusive ownership of raw: the last reference closes it.
//
// The caller guarantees that raw is a valid handle the process may close,
// that nothing else closes it, and that the kind of object it refers to
// tolerates use from several goroutines at once. Console buffers,
// semaphores and files do; not every kernel object does.
func FromRaw(raw uintptr) *Handle {
	return newHandle(raw, true, closeHandle)
}

// Clone returns a new reference to the same native handle.
// Cloning a reference that has already been closed is a programming error,
// and so is racing Clone against the Close of the same reference: the
// clone either succeeds or panics, it never revives a closed handle.
func (h *Handle) Clone() *Handle {
	if h.closed.Load() {
		panic("console: Clone of closed Handle")
	}
	return h.owner.acquire()
}

// Close releases this reference. It returns os.ErrClosed if this reference
// was already closed.
func (h *Handle) Close() error {
	if !h.closed.CompareAndSwap(false, true) {
		return os.ErrClosed
	}
	h.cleanup.Stop()
	h.owner.release()
	return nil
}

// Raw returns the native handle value. It stays valid until the last
// reference is released. A caller passing it to the OS must keep h
// reachable until the call returns, for example with runtime.KeepAlive.
func (h *Handle) Raw() uintptr {
	return h.owner.raw
}

// Exclusive reports whether the package closes the native handle when the
// last reference is released.
func (h *Handle) Exclusive() bool {
	return h.owner.exclusive
}

// value returns the native handle for a call made through this reference.
// Callers that pass the value to the OS must keep h reachable until the
// call returns; use does that.
func (h *Handle) value() (uintptr, error) {
	if h.closed.Load() {
		return 0, os.ErrClosed
	}
	return h.owner.raw, nil
}

// use runs fn with the native handle. h stays reachable until fn returns,
// so the garbage collector cannot release it while the OS is using it.
func (h *Handle) use(fn func(raw uintptr) error) error {
	v, err := h.value()
	if err != nil {
		return err
	}
	err = fn(v)
	runtime.KeepAlive(h)
	return err
}

func (h *Handle) String() string {
	kind := "shared"
	if h.owner.exclusive {
		kind = "exclusive"
	}
	return fmt.Sprintf("Handle(%#x, %s)", h.owner.raw, kind)
}
