package rules

import "github.com/mcoot/linea/internal/model"

// direction is a step between neighbouring cells
type direction struct {
	dRow, dCol int
}

var (
	horizontal   = direction{dRow: 0, dCol: 1}
	vertical     = direction{dRow: 1, dCol: 0}
	diagonalDown = direction{dRow: 1, dCol: 1}  // top-left to bottom-right
	diagonalUp   = direction{dRow: -1, dCol: 1} // bottom-left to top-right
)

// hasLine scans every cell as a possible start of a run of WinLength
// pieces of color along any of the given directions
func hasLine(board *model.Board, color model.Color, dirs ...direction) bool {
	if !color.IsPlayer() {
		return false
	}
	for row := 0; row < board.Rows(); row++ {
		for col := 0; col < board.Columns(); col++ {
			if board.Cell(row, col) != color {
				continue
			}
			for _, d := range dirs {
				if runFrom(board, color, row, col, d) >= WinLength {
					return true
				}
			}
		}
	}
	return false
}

// runFrom counts consecutive pieces of color starting at (row, col)
func runFrom(board *model.Board, color model.Color, row, col int, d direction) int {
	count := 0
	for r, c := row, col; board.Cell(r, c) == color; r, c = r+d.dRow, c+d.dCol {
		count++
		if count == WinLength {
			break
		}
	}
	return count
}
