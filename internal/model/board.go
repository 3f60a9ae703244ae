package model

import "strings"

// MaxCells caps the number of cells a board may hold
const MaxCells = 1 << 20

// Board is a fixed-size grid that pieces are dropped into column by column
type Board struct {
	columns int
	rows    int
	cells   []Color // Row-major: cells[row*columns+col], row 0 is the top
}

// NewBoard creates an empty board of the given dimensions
func NewBoard(columns, rows int) (*Board, error) {
	if columns <= 0 || rows <= 0 {
		return nil, ErrInvalidDimensions
	}
	// checked by division so the product cannot overflow
	if columns > MaxCells/rows {
		return nil, ErrInvalidDimensions
	}
	return &Board{
		columns: columns,
		rows:    rows,
		cells:   make([]Color, columns*rows),
	}, nil
}

// Columns returns the board width
func (b *Board) Columns() int {
	return b.columns
}

// Rows returns the board height
func (b *Board) Rows() int {
	return b.rows
}

// Cell returns the color at the given row and column, or Empty if out of range
func (b *Board) Cell(row, col int) Color {
	if row < 0 || row >= b.rows || !b.IsValidColumn(col) {
		return Empty
	}
	return b.cells[row*b.columns+col]
}

// IsValidColumn returns true if the column index is within bounds
func (b *Board) IsValidColumn(col int) bool {
	return col >= 0 && col < b.columns
}

// Drop lets a piece fall into the given column and returns the row it settled on.
// The board is left untouched when an error is returned.
func (b *Board) Drop(col int, color Color) (int, error) {
	if !color.IsPlayer() {
		return -1, ErrInvalidColor
	}
	if !b.IsValidColumn(col) {
		return -1, ErrInvalidColumn
	}
	if b.Cell(0, col) != Empty {
		return -1, ErrColumnFull
	}

	for row := b.rows - 1; row >= 0; row-- {
		if b.cells[row*b.columns+col] == Empty {
			b.cells[row*b.columns+col] = color
			return row, nil
		}
	}

	// unreachable while the top cell is empty
	return -1, ErrColumnFull
}

// Place drops a piece and reports whether it was accepted
func (b *Board) Place(col int, color Color) bool {
	_, err := b.Drop(col, color)
	return err == nil
}

// IsFull returns true if all cells are filled
func (b *Board) IsFull() bool {
	for _, c := range b.cells {
		if c == Empty {
			return false
		}
	}
	return true
}

// EmptyCount returns the number of empty cells
func (b *Board) EmptyCount() int {
	count := 0
	for _, c := range b.cells {
		if c == Empty {
			count++
		}
	}
	return count
}

// ColumnHeight returns how many pieces are stacked in the column
func (b *Board) ColumnHeight(col int) int {
	if !b.IsValidColumn(col) {
		return 0
	}
	height := 0
	for row := b.rows - 1; row >= 0 && b.cells[row*b.columns+col] != Empty; row-- {
		height++
	}
	return height
}

// ValidColumns returns the columns that can still take a piece
func (b *Board) ValidColumns() []int {
	var cols []int
	for col := 0; col < b.columns; col++ {
		if b.cells[col] == Empty {
			cols = append(cols, col)
		}
	}
	return cols
}

// GetRow returns a copy of the given row
func (b *Board) GetRow(row int) []Color {
	if row < 0 || row >= b.rows {
		return nil
	}
	result := make([]Color, b.columns)
	copy(result, b.cells[row*b.columns:(row+1)*b.columns])
	return result
}

// Cells returns a copy of the grid as rows, top row first
func (b *Board) Cells() [][]Color {
	result := make([][]Color, b.rows)
	for row := range result {
		result[row] = b.GetRow(row)
	}
	return result
}

// Render returns a plain text dump of the grid, one row per line
func (b *Board) Render() string {
	var sb strings.Builder
	sb.Grow(b.rows * (b.columns*2 + 1))
	for row := 0; row < b.rows; row++ {
		for col := 0; col < b.columns; col++ {
			sb.WriteRune(b.cells[row*b.columns+col].Marker())
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
