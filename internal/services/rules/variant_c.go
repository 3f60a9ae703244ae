package rules

import "github.com/mcoot/linea/internal/model"

// StrategyC wins on a line in any direction
type StrategyC struct{}

var _ Strategy = (*StrategyC)(nil)

func (s *StrategyC) CheckWin(board *model.Board, color model.Color) bool {
	return hasLine(board, color, horizontal, vertical, diagonalDown, diagonalUp)
}

func (s *StrategyC) Variant() Variant {
	return VariantC
}
