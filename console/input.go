package console

import (
	"encoding/binary"
	"fmt"
)

// EventType identifies the member of an input record's union.
type EventType uint16

const (
	KeyEvent              EventType = 0x0001
	MouseEventType        EventType = 0x0002
	WindowBufferSizeEvent EventType = 0x0004
	MenuEvent             EventType = 0x0008
	FocusEvent            EventType = 0x0010
)

func (t EventType) String() string {
	switch t {
	case KeyEvent:
		return "key"
	case MouseEventType:
		return "mouse"
	case WindowBufferSizeEvent:
		return "resize"
	case MenuEvent:
		return "menu"
	case FocusEvent:
		return "focus"
	default:
		return fmt.Sprintf("EventType(%#x)", uint16(t))
	}
}

// ControlKeyState is the state of the modifier and lock keys.
type ControlKeyState uint32

const (
	RightAltPressed  ControlKeyState = 0x0001
	LeftAltPressed   ControlKeyState = 0x0002
	RightCtrlPressed ControlKeyState = 0x0004
	LeftCtrlPressed  ControlKeyState = 0x0008
	ShiftPressed     ControlKeyState = 0x0010
	NumLockOn        ControlKeyState = 0x0020
	ScrollLockOn     ControlKeyState = 0x0040
	CapsLockOn       ControlKeyState = 0x0080
	EnhancedKey      ControlKeyState = 0x0100
)

// Has reports whether every bit of flags is set.
func (s ControlKeyState) Has(flags ControlKeyState) bool {
	return s&flags == flags
}

// Ctrl reports whether either control key is down.
func (s ControlKeyState) Ctrl() bool { return s&(LeftCtrlPressed|RightCtrlPressed) != 0 }

// Alt reports whether either alt key is down.
func (s ControlKeyState) Alt() bool { return s&(LeftAltPressed|RightAltPressed) != 0 }

// Shift reports whether shift is down.
func (s ControlKeyState) Shift() bool { return s&ShiftPressed != 0 }

// ButtonState is the mouse button bitmask of a mouse event. For wheel
// events the high word carries the signed wheel delta.
type ButtonState uint32

const (
	FromLeft1stButtonPressed ButtonState = 0x0001
	RightmostButtonPressed   ButtonState = 0x0002
	FromLeft2ndButtonPressed ButtonState = 0x0004
	FromLeft3rdButtonPressed ButtonState = 0x0008
	FromLeft4thButtonPressed ButtonState = 0x0010
)

// ReleaseButton reports whether no button is down.
func (b ButtonState) ReleaseButton() bool { return b == 0 }

// LeftButton reports whether the leftmost button is down.
func (b ButtonState) LeftButton() bool { return b&FromLeft1stButtonPressed != 0 }

// RightButton reports whether the rightmost button is down. The third and
// fourth buttons are folded into it.
func (b ButtonState) RightButton() bool {
	return b&(RightmostButtonPressed|FromLeft3rdButtonPressed|FromLeft4thButtonPressed) != 0
}

// MiddleButton reports whether the second button from the left is down.
func (b ButtonState) MiddleButton() bool { return b&FromLeft2ndButtonPressed != 0 }

// ScrollUp reports a wheel moved away from the user. Only meaningful when
// the event flags include MouseWheeled.
func (b ButtonState) ScrollUp() bool { return int32(b) > 0 }

// ScrollDown reports a wheel moved toward the user. Only meaningful when
// the event flags include MouseWheeled.
func (b ButtonState) ScrollDown() bool { return int32(b) < 0 }

// ScrollLeft reports a horizontal wheel moved left. Only meaningful when the
// event flags include MouseHWheeled.
func (b ButtonState) ScrollLeft() bool { return int32(b) < 0 }

// ScrollRight reports a horizontal wheel moved right. Only meaningful when
// the event flags include MouseHWheeled.
func (b ButtonState) ScrollRight() bool { return int32(b) > 0 }

// EventFlags describes what kind of mouse event occurred.
type EventFlags uint32

const (
	PressOrRelease EventFlags = 0x0000
	MouseMoved     EventFlags = 0x0001
	DoubleClick    EventFlags = 0x0002
	MouseWheeled   EventFlags = 0x0004
	MouseHWheeled  EventFlags = 0x0008
)

func (f EventFlags) String() string {
	switch f {
	case PressOrRelease:
		return "press_or_release"
	case MouseMoved:
		return "moved"
	case DoubleClick:
		return "double_click"
	case MouseWheeled:
		return "wheeled"
	case MouseHWheeled:
		return "hwheeled"
	default:
		return fmt.Sprintf("EventFlags(%#x)", uint32(f))
	}
}

// KeyEventRecord is a keyboard event.
type KeyEventRecord struct {
	KeyDown         bool
	RepeatCount     uint16
	VirtualKeyCode  uint16
	VirtualScanCode uint16
	// UnicodeChar is a UTF-16 code unit; surrogate pairs arrive as two events.
	UnicodeChar     uint16
	ControlKeyState ControlKeyState
}

// MouseEvent is a mouse event. MousePosition is in buffer coordinates.
type MouseEvent struct {
	MousePosition   Coord
	ButtonState     ButtonState
	ControlKeyState ControlKeyState
	EventFlags      EventFlags
}

// InputRecord is one event read from the console input buffer. Only the
// member selected by Type is set.
type InputRecord struct {
	Type             EventType
	Key              KeyEventRecord
	Mouse            MouseEvent
	WindowBufferSize Size
	MenuCommand      uint32
	Focus            bool
}

// rawInputRecord has the size and field offsets of INPUT_RECORD: the event
// type, two bytes of padding, then the 16 byte event union.
type rawInputRecord struct {
	EventType uint16
	_         uint16
	Event     [16]byte
}

func decodeInputRecord(raw *rawInputRecord) InputRecord {
	le := binary.LittleEndian
	ev := raw.Event[:]
	rec := InputRecord{Type: EventType(raw.EventType)}
	switch rec.Type {
	case KeyEvent:
		rec.Key = KeyEventRecord{
			KeyDown:         le.Uint32(ev[0:4]) != 0,
			RepeatCount:     le.Uint16(ev[4:6]),
			VirtualKeyCode:  le.Uint16(ev[6:8]),
			VirtualScanCode: le.Uint16(ev[8:10]),
			UnicodeChar:     le.Uint16(ev[10:12]),
			ControlKeyState: ControlKeyState(le.Uint32(ev[12:16])),
		}
	case MouseEventType:
		rec.Mouse = MouseEvent{
			MousePosition:   Coord{X: int16(le.Uint16(ev[0:2])), Y: int16(le.Uint16(ev[2:4]))},
			ButtonState:     ButtonState(le.Uint32(ev[4:8])),
			ControlKeyState: ControlKeyState(le.Uint32(ev[8:12])),
			EventFlags:      EventFlags(le.Uint32(ev[12:16])),
		}
	case WindowBufferSizeEvent:
		rec.WindowBufferSize = Size{Width: int16(le.Uint16(ev[0:2])), Height: int16(le.Uint16(ev[2:4]))}
	case MenuEvent:
		rec.MenuCommand = le.Uint32(ev[0:4])
	case FocusEvent:
		rec.Focus = le.Uint32(ev[0:4]) != 0
	}
	return rec
}
