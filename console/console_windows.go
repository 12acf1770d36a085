//go:build windows

package console

import (
	"fmt"
	"os"
	"unicode/utf16"
	"unicode/utf8"
	"unsafe"

	"golang.org/x/sys/windows"
)

// SetTextAttribute sets the attributes used for characters written from
// now on.
//
// This wraps SetConsoleTextAttribute.
func (c *Console) SetTextAttribute(attr uint16) error {
	return withNative(c.handle, func(h windows.Handle) error {
		r1, _, e1 := procSetConsoleTextAttribute.Call(uintptr(h), uintptr(attr))
		if r1 == 0 {
			return callErr("SetConsoleTextAttribute", e1)
		}
		return nil
	})
}

// SetWindowInfo moves or resizes the console window over the buffer. With
// absolute false, rect is relative to the current window.
//
// This wraps SetConsoleWindowInfo.
func (c *Console) SetWindowInfo(absolute bool, rect WindowPositions) error {
	return withNative(c.handle, func(h windows.Handle) error {
		r1, _, e1 := procSetConsoleWindowInfo.Call(uintptr(h), boolArg(absolute), uintptr(unsafe.Pointer(&rect)))
		if r1 == 0 {
			return callErr("SetConsoleWindowInfo", e1)
		}
		return nil
	})
}

// SetCursorPosition moves the cursor to pos in buffer coordinates.
func (c *Console) SetCursorPosition(pos Coord) error {
	return withNative(c.handle, func(h windows.Handle) error {
		if err := windows.SetConsoleCursorPosition(h, windows.Coord{X: pos.X, Y: pos.Y}); err != nil {
			return os.NewSyscallError("SetConsoleCursorPosition", err)
		}
		return nil
	})
}

// FillWithCharacter writes ch into cells consecutive cells starting at
// start, wrapping at the end of each row. It returns the number of cells
// written. ch must fit in a single UTF-16 code unit.
//
// This wraps FillConsoleOutputCharacterW.
func (c *Console) FillWithCharacter(start Coord, cells uint32, ch rune) (uint32, error) {
	if ch < 0 || ch > 0xFFFF || utf16.IsSurrogate(ch) {
		return 0, fmt.Errorf("console: fill character %U is not a single UTF-16 unit", ch)
	}
	var written uint32
	err := withNative(c.handle, func(h windows.Handle) error {
		r1, _, e1 := procFillConsoleOutputCharacterW.Call(
			uintptr(h),
			uintptr(uint16(ch)),
			uintptr(cells),
			packCoord(start),
			uintptr(unsafe.Pointer(&written)),
		)
		if r1 == 0 {
			return callErr("FillConsoleOutputCharacterW", e1)
		}
		return nil
	})
	return written, err
}

// FillWithAttribute sets the attributes of cells consecutive cells starting
// at start and returns the number of cells changed.
//
// This wraps FillConsoleOutputAttribute.
func (c *Console) FillWithAttribute(start Coord, cells uint32, attr uint16) (uint32, error) {
	var written uint32
	err := withNative(c.handle, func(h windows.Handle) error {
		r1, _, e1 := procFillConsoleOutputAttribute.Call(
			uintptr(h),
			uintptr(attr),
			uintptr(cells),
			packCoord(start),
			uintptr(unsafe.Pointer(&written)),
		)
		if r1 == 0 {
			return callErr("FillConsoleOutputAttribute", e1)
		}
		return nil
	})
	return written, err
}

// LargestWindowSize returns the largest window, in cells, that fits on the
// display with the current font.
//
// This wraps GetLargestConsoleWindowSize.
func (c *Console) LargestWindowSize() (Coord, error) {
	var size Coord
	err := withNative(c.handle, func(h windows.Handle) error {
		r1, _, e1 := procGetLargestConsoleWindowSize.Call(uintptr(h))
		var err error
		size, err = coordResult(unpackCoord(r1), func() error {
			return callErr("GetLargestConsoleWindowSize", e1)
		})
		return err
	})
	return size, err
}

// Write writes p, which must be UTF-8, at the cursor position. Invalid
// UTF-8 is written as U+FFFD. Write implements io.Writer.
//
// This wraps WriteConsoleW.
func (c *Console) Write(p []byte) (int, error) {
	n := 0
	err := withNative(c.handle, func(h windows.Handle) error {
		if len(p) == 0 {
			return nil
		}
		units := utf16.Encode([]rune(string(p)))
		total := 0
		for total < len(units) {
			var written uint32
			if err := windows.WriteConsole(h, &units[total], uint32(len(units)-total), &written, nil); err != nil {
				n = bytesForUnits(p, total)
				return os.NewSyscallError("WriteConsoleW", err)
			}
			if written == 0 {
				n = bytesForUnits(p, total)
				return os.NewSyscallError("WriteConsoleW", windows.ERROR_WRITE_FAULT)
			}
			total += int(written)
		}
		n = len(p)
		return nil
	})
	return n, err
}

// bytesForUnits returns how many bytes of p encode its first n UTF-16 units.
func bytesForUnits(p []byte, n int) int {
	i := 0
	for i < len(p) && n > 0 {
		r, size := utf8.DecodeRune(p[i:])
		w := utf16.RuneLen(r)
		if w > n {
			break
		}
		n -= w
		i += size
	}
	return i
}

// ReadOutputCharacters reads up to n characters starting at start,
// continuing onto following rows.
//
// This wraps ReadConsoleOutputCharacterW.
func (c *Console) ReadOutputCharacters(start Coord, n uint32) (string, error) {
	var text string
	err := withNative(c.handle, func(h windows.Handle) error {
		if n == 0 {
			return nil
		}
		buf := make([]uint16, n)
		var read uint32
		r1, _, e1 := procReadConsoleOutputCharacterW.Call(
			uintptr(h),
			uintptr(unsafe.Pointer(&buf[0])),
			uintptr(n),
			packCoord(start),
			uintptr(unsafe.Pointer(&read)),
		)
		if r1 == 0 {
			return callErr("ReadConsoleOutputCharacterW", e1)
		}
		text = string(utf16.Decode(buf[:read]))
		return nil
	})
	return text, err
}

// NumberOfInputEvents returns the number of unread records in the input
// buffer. The console must be an input handle.
//
// This wraps GetNumberOfConsoleInputEvents.
func (c *Console) NumberOfInputEvents() (uint32, error) {
	var n uint32
	err := withNative(c.handle, func(h windows.Handle) error {
		r1, _, e1 := procGetNumberOfConsoleInputEvents.Call(uintptr(h), uintptr(unsafe.Pointer(&n)))
		if r1 == 0 {
			return callErr("GetNumberOfConsoleInputEvents", e1)
		}
		return nil
	})
	return n, err
}

// ReadInput reads up to n input records, blocking until at least one is
// available.
//
// This wraps ReadConsoleInputW.
func (c *Console) ReadInput(n int) ([]InputRecord, error) {
	if n <= 0 {
		return nil, nil
	}
	raw := make([]rawInputRecord, n)
	var read uint32
	err := withNative(c.handle, func(h windows.Handle) error {
		r1, _, e1 := procReadConsoleInputW.Call(
			uintptr(h),
			uintptr(unsafe.Pointer(&raw[0])),
			uintptr(n),
			uintptr(unsafe.Pointer(&read)),
		)
		if r1 == 0 {
			return callErr("ReadConsoleInputW", e1)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	records := make([]InputRecord, read)
	for i := range records {
		records[i] = decodeInputRecord(&raw[i])
	}
	return records, nil
}

// ReadSingleInput blocks until one input record is available and returns it.
func (c *Console) ReadSingleInput() (InputRecord, error) {
	records, err := c.ReadInput(1)
	if err != nil {
		return InputRecord{}, err
	}
	if len(records) == 0 {
		return InputRecord{}, os.NewSyscallError("ReadConsoleInputW", windows.ERROR_NO_DATA)
	}
	return records[0], nil
}
