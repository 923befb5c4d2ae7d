// Package seatmap derives the seat layout of a screen. The grid is a
// pure function of the screen's declared row and column counts: no
// bookings, no state, identical output on every call. The same grid is
// used to render the empty seat map and to validate submitted labels.
package seatmap

import (
	"fmt"
)

// maxRows is bounded by the single-letter row naming scheme (A..Z).
const maxRows = 26

// Seat is one position in a screen's grid. Label is the row letter
// followed by the 1-based column number, e.g. "A1" or "J10".
type Seat struct {
	Label string `json:"label"`
	Row   string `json:"row"`
	Col   int    `json:"col"`
}

// Grid is the deterministic seat layout for one screen.
type Grid struct {
	rows  int
	cols  int
	seats []Seat
	index map[string]struct{}
}

// New builds the grid for a screen with the given dimensions. Rows are
// lettered A, B, C... top to bottom; columns run 1..cols left to right.
func New(rows, cols int) (*Grid, error) {
	if rows < 1 || rows > maxRows {
		return nil, fmt.Errorf("seatmap: row count %d out of range [1,%d]", rows, maxRows)
	}
	if cols < 1 {
		return nil, fmt.Errorf("seatmap: column count %d must be positive", cols)
	}

	g := &Grid{
		rows:  rows,
		cols:  cols,
		seats: make([]Seat, 0, rows*cols),
		index: make(map[string]struct{}, rows*cols),
	}

	for i := 0; i < rows; i++ {
		rowLetter := string(rune('A' + i))
		for j := 1; j <= cols; j++ {
			label := fmt.Sprintf("%s%d", rowLetter, j)
			g.seats = append(g.seats, Seat{Label: label, Row: rowLetter, Col: j})
			g.index[label] = struct{}{}
		}
	}

	return g, nil
}

// Rows returns the row count.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the column count.
func (g *Grid) Cols() int { return g.cols }

// TotalSeats returns the number of seats in the grid.
func (g *Grid) TotalSeats() int { return g.rows * g.cols }

// Seats returns all seats in row-major order (A1..A<cols>, B1..).
func (g *Grid) Seats() []Seat {
	out := make([]Seat, len(g.seats))
	copy(out, g.seats)
	return out
}

// Layout returns the seats grouped per row, for rendering.
func (g *Grid) Layout() [][]Seat {
	layout := make([][]Seat, g.rows)
	for i := 0; i < g.rows; i++ {
		row := make([]Seat, g.cols)
		copy(row, g.seats[i*g.cols:(i+1)*g.cols])
		layout[i] = row
	}
	return layout
}

// Contains reports whether label is a well-formed member of the grid.
// Matching is exact: lowercase or padded labels are not members.
func (g *Grid) Contains(label string) bool {
	_, ok := g.index[label]
	return ok
}
