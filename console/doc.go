// Package console wraps the Windows Console API: acquiring and releasing
// console handles, reading and writing console mode flags, creating and
// switching screen buffers, cell-level output, input records, and a binary
// semaphore used to wake a reader blocked on the console input handle.
//
// Every operation is a single synchronous native call. The only state the
// package manages itself is handle ownership: a Handle is shared by all of
// its clones and the native handle is closed once, by the last reference,
// and only when the process owns it. Standard handles belong to the
// process and are never closed here.
//
// On platforms other than Windows the handle acquisition functions return
// ErrUnsupported. The value types and the input record decoder are
// available everywhere.
package console
