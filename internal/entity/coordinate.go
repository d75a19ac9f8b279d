package entity

import (
	"errors"
	"fmt"
	"strconv"
)

// GridSize - the board is GridSize x GridSize cells, rows A..J and columns 1..10.
const GridSize = 10

var ErrInvalidCoordinate = errors.New("invalid coordinate")

// Coordinate - zero based row and column of a grid cell.
type Coordinate struct {
	Row int
	Col int
}

// FormatCoordinate - renders a zero based cell as "<row letter><column number>", e.g. (0, 0) -> "A1".
func FormatCoordinate(row, col int) string {
	return fmt.Sprintf("%c%d", rune('A'+row), col+1)
}

func (that Coordinate) String() string {
	return FormatCoordinate(that.Row, that.Col)
}

// ParseCoordinate - parses "A1".."J10" into a zero based Coordinate.
func ParseCoordinate(cell string) (Coordinate, error) {
	if len(cell) < 2 || len(cell) > 3 {
		return Coordinate{}, fmt.Errorf("%w: %q", ErrInvalidCoordinate, cell)
	}

	row := int(cell[0]) - 'A'
	if row < 0 || row >= GridSize {
		return Coordinate{}, fmt.Errorf("%w: row in %q", ErrInvalidCoordinate, cell)
	}

	// strconv accepts "+1" and "01", the canonical form does not
	if cell[1] < '1' || cell[1] > '9' {
		return Coordinate{}, fmt.Errorf("%w: column in %q", ErrInvalidCoordinate, cell)
	}

	col, err := strconv.Atoi(cell[1:])
	if err != nil || col < 1 || col > GridSize {
		return Coordinate{}, fmt.Errorf("%w: column in %q", ErrInvalidCoordinate, cell)
	}

	return Coordinate{Row: row, Col: col - 1}, nil
}

// AllCells - every cell of the grid in row-major order.
func AllCells() []string {
	cells := make([]string, 0, GridSize*GridSize)
	for row := 0; row < GridSize; row++ {
		for col := 0; col < GridSize; col++ {
			cells = append(cells, FormatCoordinate(row, col))
		}
	}

	return cells
}

// HorizontalRun - length consecutive cells of a row starting at column col.
func HorizontalRun(row, col, length int) []string {
	run := make([]string, 0, length)
	for k := col; k < col+length; k++ {
		run = append(run, FormatCoordinate(row, k))
	}

	return run
}
