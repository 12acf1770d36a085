//go:build !windows

package cli

import "wincon/console"

func waitInput(_, _ *console.Handle) error {
	return console.ErrUnsupported
}
