// Package screen holds text captured from a console screen buffer as a
// rows×cols grid of runes, ready to print.
package screen

import (
	"strings"
	"unicode/utf8"
)

// Snapshot is a fixed-width grid of cells read from a screen buffer.
// Rows shorter than the width are padded with blanks and longer rows are
// cut, so every row has exactly Cols cells.
type Snapshot struct {
	cols int
	grid [][]rune
}

// New creates an empty snapshot of the given width.
func New(cols int) *Snapshot {
	if cols < 0 {
		cols = 0
	}
	return &Snapshot{cols: cols}
}

// FromText splits text read in one call across several rows into rows of
// cols cells. The console returns such reads without line breaks.
func FromText(text string, cols int) *Snapshot {
	s := New(cols)
	if cols == 0 {
		return s
	}
	row := make([]rune, 0, cols)
	for _, r := range text {
		row = append(row, r)
		if len(row) == cols {
			s.AppendRow(string(row))
			row = row[:0]
		}
	}
	if len(row) > 0 {
		s.AppendRow(string(row))
	}
	return s
}

// AppendRow adds one row.
func (s *Snapshot) AppendRow(text string) {
	s.grid = append(s.grid, makeRow(text, s.cols))
}

func makeRow(text string, cols int) []rune {
	row := make([]rune, cols)
	i := 0
	for _, r := range text {
		if i == cols {
			break
		}
		if r == utf8.RuneError || r == 0 {
			r = ' '
		}
		row[i] = r
		i++
	}
	for ; i < cols; i++ {
		row[i] = ' '
	}
	return row
}

// Cols returns the row width.
func (s *Snapshot) Cols() int { return s.cols }

// Rows returns the number of rows.
func (s *Snapshot) Rows() int { return len(s.grid) }

// Cell returns the rune at (col, row), or a blank outside the grid.
func (s *Snapshot) Cell(col, row int) rune {
	if row < 0 || row >= len(s.grid) || col < 0 || col >= s.cols {
		return ' '
	}
	return s.grid[row][col]
}

// Lines returns the last maxLines rows with trailing blanks removed. A
// maxLines of zero or less returns every row. With trimBlank set, blank
// rows at the end are dropped before the limit is applied.
func (s *Snapshot) Lines(maxLines int, trimBlank bool) []string {
	lines := make([]string, 0, len(s.grid))
	for _, row := range s.grid {
		lines = append(lines, strings.TrimRight(string(row), " "))
	}
	if trimBlank {
		for len(lines) > 0 && lines[len(lines)-1] == "" {
			lines = lines[:len(lines)-1]
		}
	}
	if maxLines > 0 && maxLines < len(lines) {
		lines = lines[len(lines)-maxLines:]
	}
	return lines
}

// String joins every row with newlines, trailing blanks removed.
func (s *Snapshot) String() string {
	return strings.Join(s.Lines(0, false), "\n")
}
