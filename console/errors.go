package console

import (
	"errors"
	"fmt"
)

// ErrUnsupported is returned by every native operation on platforms without
// a Windows console subsystem.
var ErrUnsupported = fmt.Errorf("console: windows console API: %w", errors.ErrUnsupported)
