package usecase

import (
	"fmt"

	"airline-ticketing/internal/dto/response"
)

// Seat map defaults used when the airplane has no layout recorded.
const (
	DefaultRows     = 30
	DefaultSeatsRow = 6

	// Seat letters run 'A'..'H'; wider layouts clamp to eight.
	maxSeatLetters = 8
)

// BuildSeatMap lays out the cabin for display. Each row is split at the
// aisle: the left group holds half the seats but at least three, the right
// group the remainder. Booked seats are flagged, never removed, so the
// client can render them greyed out.
func BuildSeatMap(rows, seatsRow int, bookedSeats []string) []response.SeatRow {
	if rows <= 0 {
		rows = DefaultRows
	}
	if seatsRow <= 0 {
		seatsRow = DefaultSeatsRow
	}
	if seatsRow > maxSeatLetters {
		seatsRow = maxSeatLetters
	}

	leftCount := seatsRow / 2
	if leftCount < 3 {
		leftCount = 3
	}
	if leftCount > seatsRow {
		leftCount = seatsRow
	}

	booked := make(map[string]bool, len(bookedSeats))
	for _, seat := range bookedSeats {
		booked[seat] = true
	}

	seatRows := make([]response.SeatRow, rows)
	for row := 1; row <= rows; row++ {
		seatRow := response.SeatRow{Row: row}
		for i := 0; i < seatsRow; i++ {
			code := fmt.Sprintf("%d%c", row, 'A'+i)
			seat := response.Seat{Code: code, Booked: booked[code]}
			if i < leftCount {
				seatRow.Left = append(seatRow.Left, seat)
			} else {
				seatRow.Right = append(seatRow.Right, seat)
			}
		}
		seatRows[row-1] = seatRow
	}

	return seatRows
}

// ValidSeat reports whether a seat code exists in the given layout.
func ValidSeat(code string, rows, seatsRow int) bool {
	if rows <= 0 {
		rows = DefaultRows
	}
	if seatsRow <= 0 {
		seatsRow = DefaultSeatsRow
	}
	if seatsRow > maxSeatLetters {
		seatsRow = maxSeatLetters
	}

	if len(code) < 2 {
		return false
	}

	letter := code[len(code)-1]
	if letter < 'A' || letter >= byte('A'+seatsRow) {
		return false
	}

	row := 0
	for _, c := range code[:len(code)-1] {
		if c < '0' || c > '9' {
			return false
		}
		row = row*10 + int(c-'0')
	}

	return row >= 1 && row <= rows
}
