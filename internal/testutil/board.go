package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mcoot/linea/internal/model"
)

// BoardFromRows builds a board from rows of 'R', 'B' and '.' given top row
// first. Pieces are dropped bottom-up so every layout must obey gravity.
func BoardFromRows(t testing.TB, rows ...string) *model.Board {
	t.Helper()
	require.NotEmpty(t, rows)

	board, err := model.NewBoard(len(rows[0]), len(rows))
	require.NoError(t, err)

	for row := len(rows) - 1; row >= 0; row-- {
		require.Len(t, rows[row], board.Columns(), "row %d has the wrong width", row)
		for col, ch := range rows[row] {
			var color model.Color
			switch ch {
			case 'R':
				color = model.Red
			case 'B':
				color = model.Blue
			default:
				continue
			}
			got, err := board.Drop(col, color)
			require.NoError(t, err)
			require.Equal(t, row, got, "piece at row %d col %d would float", row, col)
		}
	}
	return board
}
