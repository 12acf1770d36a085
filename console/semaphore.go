package console

// Semaphore is an unnamed counting semaphore with an initial count of zero
// and a maximum count of one.
//
// Release is the only operation. Waiters use the native handle directly,
// typically together with the console input handle in a multi-object wait,
// so that a Release from another goroutine wakes a blocked input reader.
type Semaphore struct {
	handle *Handle
}

// Handle returns the semaphore's handle for use in native wait calls.
func (s *Semaphore) Handle() *Handle {
	return s.handle
}

// Clone returns a Semaphore holding a new reference to the same object.
func (s *Semaphore) Clone() *Semaphore {
	return &Semaphore{handle: s.handle.Clone()}
}

// Close releases the semaphore's handle reference.
func (s *Semaphore) Close() error {
	return s.handle.Close()
}
