package rules

import "github.com/mcoot/linea/internal/model"

// StrategyA wins on a horizontal or vertical line
type StrategyA struct{}

var _ Strategy = (*StrategyA)(nil)

func (s *StrategyA) CheckWin(board *model.Board, color model.Color) bool {
	return hasLine(board, color, horizontal, vertical)
}

func (s *StrategyA) Variant() Variant {
	return VariantA
}
