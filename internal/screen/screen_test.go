package screen

import (
	"reflect"
	"testing"
)

func TestFromTextSplitsRows(t *testing.T) {
	s := FromText("ab  cd  ef", 4)
	if s.Rows() != 3 {
		t.Fatalf("expected 3 rows, got %d", s.Rows())
	}
	want := []string{"ab", "cd", "ef"}
	if got := s.Lines(0, false); !reflect.DeepEqual(got, want) {
		t.Errorf("Lines = %q, want %q", got, want)
	}
	if s.Cell(3, 2) != ' ' {
		t.Errorf("partial last row not padded: %q", s.Cell(3, 2))
	}
}

func TestFromTextWideRunes(t *testing.T) {
	s := FromText("héllo wörld", 5)
	if got := s.Lines(0, false); !reflect.DeepEqual(got, []string{"héllo", " wörl", "d"}) {
		t.Errorf("Lines = %q", got)
	}
}

func TestAppendRowPadsAndCuts(t *testing.T) {
	s := New(3)
	s.AppendRow("x")
	s.AppendRow("toolong")
	s.AppendRow("a\x00b")

	if s.Cell(1, 0) != ' ' || s.Cell(2, 0) != ' ' {
		t.Error("short row not padded")
	}
	if got := s.Lines(0, false); !reflect.DeepEqual(got, []string{"x", "too", "a b"}) {
		t.Errorf("Lines = %q", got)
	}
}

func TestLinesLimitAndTrim(t *testing.T) {
	s := New(10)
	for _, row := range []string{"one", "two", "three", "", ""} {
		s.AppendRow(row)
	}

	tests := []struct {
		name      string
		max       int
		trimBlank bool
		want      []string
	}{
		{"all", 0, false, []string{"one", "two", "three", "", ""}},
		{"trimmed", 0, true, []string{"one", "two", "three"}},
		{"last two trimmed", 2, true, []string{"two", "three"}},
		{"last two raw", 2, false, []string{"", ""}},
		{"limit above rows", 50, true, []string{"one", "two", "three"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.Lines(tt.max, tt.trimBlank); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Lines(%d, %v) = %q, want %q", tt.max, tt.trimBlank, got, tt.want)
			}
		})
	}
}

func TestCellOutOfRange(t *testing.T) {
	s := FromText("abc", 3)
	for _, pos := range [][2]int{{-1, 0}, {3, 0}, {0, 1}, {0, -1}} {
		if got := s.Cell(pos[0], pos[1]); got != ' ' {
			t.Errorf("Cell(%d, %d) = %q, want blank", pos[0], pos[1], got)
		}
	}
	if s.Cell(1, 0) != 'b' {
		t.Errorf("Cell(1, 0) = %q", s.Cell(1, 0))
	}
}

func TestZeroWidth(t *testing.T) {
	s := FromText("ignored", 0)
	if s.Rows() != 0 || s.String() != "" {
		t.Errorf("zero width snapshot has content: rows=%d", s.Rows())
	}
	if New(-4).Cols() != 0 {
		t.Error("negative width not clamped")
	}
}

func TestString(t *testing.T) {
	s := FromText("hi  yo  ", 4)
	if got := s.String(); got != "hi\nyo" {
		t.Errorf("String() = %q", got)
	}
}
