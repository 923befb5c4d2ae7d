package seatmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGridIsDeterministic(t *testing.T) {
	first, err := New(10, 10)
	require.NoError(t, err)
	second, err := New(10, 10)
	require.NoError(t, err)

	assert.Equal(t, first.Seats(), second.Seats())
	assert.Equal(t, 100, first.TotalSeats())

	seats := first.Seats()
	assert.Equal(t, Seat{Label: "A1", Row: "A", Col: 1}, seats[0])
	assert.Equal(t, Seat{Label: "A10", Row: "A", Col: 10}, seats[9])
	assert.Equal(t, Seat{Label: "J10", Row: "J", Col: 10}, seats[99])
}

func TestNewGridRejectsBadDimensions(t *testing.T) {
	tests := []struct {
		name string
		rows int
		cols int
	}{
		{"zero rows", 0, 10},
		{"negative rows", -1, 10},
		{"too many rows for letter naming", 27, 10},
		{"zero cols", 10, 0},
		{"negative cols", 10, -5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.rows, tt.cols)
			assert.Error(t, err)
		})
	}
}

func TestGridContainsIsExactMatch(t *testing.T) {
	grid, err := New(10, 10)
	require.NoError(t, err)

	assert.True(t, grid.Contains("A1"))
	assert.True(t, grid.Contains("J10"))
	assert.True(t, grid.Contains("E5"))

	assert.False(t, grid.Contains("a1"), "lowercase is not a member")
	assert.False(t, grid.Contains("A0"))
	assert.False(t, grid.Contains("A11"))
	assert.False(t, grid.Contains("K1"), "row K does not exist on a 10-row grid")
	assert.False(t, grid.Contains("A01"), "padded labels are not members")
	assert.False(t, grid.Contains(""))
}

func TestGridLayoutShape(t *testing.T) {
	grid, err := New(3, 4)
	require.NoError(t, err)

	layout := grid.Layout()
	require.Len(t, layout, 3)
	for i, row := range layout {
		require.Len(t, row, 4)
		for j, seat := range row {
			assert.Equal(t, string(rune('A'+i)), seat.Row)
			assert.Equal(t, j+1, seat.Col)
		}
	}
	assert.Equal(t, "C4", layout[2][3].Label)
}

func TestGridSeatsReturnsCopy(t *testing.T) {
	grid, err := New(2, 2)
	require.NoError(t, err)

	seats := grid.Seats()
	seats[0].Label = "mutated"

	assert.Equal(t, "A1", grid.Seats()[0].Label)
}
