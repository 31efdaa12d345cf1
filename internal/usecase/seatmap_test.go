package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSeatMapLayout(t *testing.T) {
	tests := []struct {
		name      string
		rows      int
		seatsRow  int
		wantRows  int
		wantLeft  int
		wantRight int
	}{
		{"six abreast splits 3/3", 10, 6, 10, 3, 3},
		{"seven abreast splits 3/4", 10, 7, 10, 3, 4},
		{"eight abreast splits 4/4", 10, 8, 10, 4, 4},
		{"narrow cabin keeps at least three on the left", 5, 4, 5, 3, 1},
		{"two abreast fits entirely on the left", 5, 2, 5, 2, 0},
		{"wider than eight clamps to eight letters", 10, 10, 10, 4, 4},
		{"zero layout falls back to defaults", 0, 0, DefaultRows, 3, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seatMap := BuildSeatMap(tt.rows, tt.seatsRow, nil)
			require.Len(t, seatMap, tt.wantRows)

			for _, row := range seatMap {
				assert.Len(t, row.Left, tt.wantLeft)
				assert.Len(t, row.Right, tt.wantRight)
			}
		})
	}
}

func TestBuildSeatMapCodes(t *testing.T) {
	seatMap := BuildSeatMap(2, 6, nil)
	require.Len(t, seatMap, 2)

	assert.Equal(t, 1, seatMap[0].Row)
	assert.Equal(t, "1A", seatMap[0].Left[0].Code)
	assert.Equal(t, "1C", seatMap[0].Left[2].Code)
	assert.Equal(t, "1D", seatMap[0].Right[0].Code)
	assert.Equal(t, "1F", seatMap[0].Right[2].Code)
	assert.Equal(t, "2A", seatMap[1].Left[0].Code)
}

func TestBuildSeatMapBookedFlags(t *testing.T) {
	seatMap := BuildSeatMap(2, 6, []string{"1A", "2F"})

	assert.True(t, seatMap[0].Left[0].Booked)
	assert.False(t, seatMap[0].Left[1].Booked)
	assert.True(t, seatMap[1].Right[2].Booked)

	// Booked seats stay in the map.
	total := 0
	for _, row := range seatMap {
		total += len(row.Left) + len(row.Right)
	}
	assert.Equal(t, 12, total)
}

func TestValidSeat(t *testing.T) {
	tests := []struct {
		code  string
		valid bool
	}{
		{"1A", true},
		{"30F", true},
		{"12C", true},
		{"31A", false},
		{"0A", false},
		{"1G", false},
		{"1a", false},
		{"A1", false},
		{"1", false},
		{"", false},
		{"x2B", false},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.valid, ValidSeat(tt.code, 30, 6))
		})
	}
}

func TestValidSeatClampsWideLayouts(t *testing.T) {
	// Ten abreast still only exposes letters A..H.
	assert.True(t, ValidSeat("1H", 30, 10))
	assert.False(t, ValidSeat("1I", 30, 10))
}
