package console

import (
	"reflect"
	"testing"
)

func TestDescribeMode(t *testing.T) {
	tests := []struct {
		name  string
		mode  uint32
		input bool
		want  []string
	}{
		{"empty", 0, false, nil},
		{"output defaults", 0x0003, false, []string{"processed_output", "wrap_at_eol_output"}},
		{"vt output", 0x0007, false, []string{"processed_output", "wrap_at_eol_output", "virtual_terminal_processing"}},
		{"same bits as input", 0x0007, true, []string{"processed_input", "line_input", "echo_input"}},
		{"unknown bits", EnableVirtualTerminalProcessing | 0x8000, false, []string{"virtual_terminal_processing", "0x8000"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DescribeMode(tt.mode, tt.input); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("DescribeMode(%#x, %v) = %v, want %v", tt.mode, tt.input, got, tt.want)
			}
		})
	}
}

func TestLookupModeFlag(t *testing.T) {
	if v, ok := LookupModeFlag("virtual_terminal_processing", false); !ok || v != 0x0004 {
		t.Errorf("output lookup = %#x, %v", v, ok)
	}
	if v, ok := LookupModeFlag("virtual_terminal_input", true); !ok || v != 0x0200 {
		t.Errorf("input lookup = %#x, %v", v, ok)
	}
	if _, ok := LookupModeFlag("virtual_terminal_input", false); ok {
		t.Error("input flag resolved for output direction")
	}
}

func TestModeFlagListsAreCopies(t *testing.T) {
	flags := InputModeFlags()
	flags[0].Name = "changed"
	if InputModeFlags()[0].Name != "processed_input" {
		t.Error("InputModeFlags exposes internal table")
	}
	if len(OutputModeFlags()) != 5 {
		t.Errorf("expected 5 output flags, got %d", len(OutputModeFlags()))
	}
}
