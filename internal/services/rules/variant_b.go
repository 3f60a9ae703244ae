package rules

import "github.com/mcoot/linea/internal/model"

// StrategyB wins only on a diagonal line
type StrategyB struct{}

var _ Strategy = (*StrategyB)(nil)

func (s *StrategyB) CheckWin(board *model.Board, color model.Color) bool {
	return hasLine(board, color, diagonalDown, diagonalUp)
}

func (s *StrategyB) Variant() Variant {
	return VariantB
}
