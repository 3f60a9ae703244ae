package model_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/linea/internal/model"
)

type BoardSuite struct {
	suite.Suite
	board *model.Board
}

func TestBoardSuite(t *testing.T) {
	suite.Run(t, new(BoardSuite))
}

func (s *BoardSuite) SetupTest() {
	board, err := model.NewBoard(4, 3)
	s.Require().NoError(err)
	s.board = board
}

// requireGravity asserts no occupied cell sits above an empty one
func (s *BoardSuite) requireGravity() {
	for col := 0; col < s.board.Columns(); col++ {
		seenEmpty := false
		for row := s.board.Rows() - 1; row >= 0; row-- {
			if s.board.Cell(row, col) == model.Empty {
				seenEmpty = true
			} else {
				s.Require().False(seenEmpty, "floating piece at row %d col %d", row, col)
			}
		}
	}
}

// NewBoard tests

func (s *BoardSuite) TestNewBoardIsEmpty() {
	s.Equal(4, s.board.Columns())
	s.Equal(3, s.board.Rows())
	s.Equal(12, s.board.EmptyCount())
	s.False(s.board.IsFull())
}

func (s *BoardSuite) TestNewBoardRejectsInvalidDimensions() {
	_, err := model.NewBoard(0, 6)
	s.ErrorIs(err, model.ErrInvalidDimensions)

	_, err = model.NewBoard(7, -1)
	s.ErrorIs(err, model.ErrInvalidDimensions)
}

func (s *BoardSuite) TestNewBoardRejectsOversizedDimensions() {
	// 2^32 * 2^32 wraps to zero on 64-bit ints
	board, err := model.NewBoard(1<<32, 1<<32)
	s.ErrorIs(err, model.ErrInvalidDimensions)
	s.Nil(board)

	_, err = model.NewBoard(1_000_000, 1_000_000)
	s.ErrorIs(err, model.ErrInvalidDimensions)

	_, err = model.NewBoard(model.MaxCells+1, 1)
	s.ErrorIs(err, model.ErrInvalidDimensions)
}

func (s *BoardSuite) TestNewBoardAcceptsMaximumSize() {
	board, err := model.NewBoard(model.MaxCells/2, 2)
	s.Require().NoError(err)

	s.False(board.IsFull())
	s.True(board.Place(0, model.Red))
	s.Equal(model.Red, board.Cell(1, 0))
}

// Drop tests

func (s *BoardSuite) TestDropFallsToFloor() {
	row, err := s.board.Drop(2, model.Red)
	s.Require().NoError(err)

	s.Equal(2, row)
	s.Equal(model.Red, s.board.Cell(2, 2))
}

func (s *BoardSuite) TestDropStacksOnTopOfExistingPieces() {
	_, _ = s.board.Drop(1, model.Red)

	row, err := s.board.Drop(1, model.Blue)
	s.Require().NoError(err)

	s.Equal(1, row)
	s.Equal(model.Red, s.board.Cell(2, 1))
	s.Equal(model.Blue, s.board.Cell(1, 1))
	s.Equal(model.Empty, s.board.Cell(0, 1))
}

func (s *BoardSuite) TestDropOutOfRangeLeavesBoardUnchanged() {
	_, _ = s.board.Drop(0, model.Red)
	before := s.board.Render()

	_, err := s.board.Drop(-1, model.Blue)
	s.ErrorIs(err, model.ErrInvalidColumn)

	_, err = s.board.Drop(4, model.Blue)
	s.ErrorIs(err, model.ErrInvalidColumn)

	s.Equal(before, s.board.Render())
}

func (s *BoardSuite) TestDropOnFullColumnLeavesBoardUnchanged() {
	for i := 0; i < 3; i++ {
		_, err := s.board.Drop(3, model.Red)
		s.Require().NoError(err)
	}
	before := s.board.Cells()

	_, err := s.board.Drop(3, model.Blue)
	s.ErrorIs(err, model.ErrColumnFull)
	s.Equal(before, s.board.Cells())

	// Still a no-op when repeated
	s.False(s.board.Place(3, model.Blue))
	s.Equal(before, s.board.Cells())
}

func (s *BoardSuite) TestDropRejectsEmptyColor() {
	_, err := s.board.Drop(0, model.Empty)
	s.ErrorIs(err, model.ErrInvalidColor)
	s.Equal(12, s.board.EmptyCount())
}

func (s *BoardSuite) TestPlaceReportsSuccess() {
	s.True(s.board.Place(0, model.Red))
	s.False(s.board.Place(9, model.Red))
}

func (s *BoardSuite) TestGravityHoldsForMixedSequence() {
	columns := []int{0, 3, 3, 1, 0, 2, 3, 0, 1, 1, 2}
	color := model.Red
	for _, col := range columns {
		before := s.board.Cells()
		height := s.board.ColumnHeight(col)

		row, err := s.board.Drop(col, color)
		s.Require().NoError(err)

		// Lands on the lowest previously empty row
		s.Equal(s.board.Rows()-1-height, row)

		// Every other cell keeps its prior value
		after := s.board.Cells()
		for r := range after {
			for c := range after[r] {
				if r == row && c == col {
					s.Equal(color, after[r][c])
					continue
				}
				s.Equal(before[r][c], after[r][c])
			}
		}
		s.requireGravity()
		color = color.Opponent()
	}
}

// IsFull tests

func (s *BoardSuite) TestIsFullAfterFillingEveryColumn() {
	color := model.Red
	for col := 0; col < s.board.Columns(); col++ {
		for i := 0; i < s.board.Rows(); i++ {
			s.Require().False(s.board.IsFull())
			s.Require().True(s.board.Place(col, color))
			color = color.Opponent()
		}
	}
	s.True(s.board.IsFull())
	s.Equal(0, s.board.EmptyCount())
	s.Empty(s.board.ValidColumns())
}

// Accessor tests

func (s *BoardSuite) TestCellOutOfRangeIsEmpty() {
	s.Equal(model.Empty, s.board.Cell(-1, 0))
	s.Equal(model.Empty, s.board.Cell(0, 4))
	s.Equal(model.Empty, s.board.Cell(3, 0))
}

func (s *BoardSuite) TestCellsIsACopy() {
	cells := s.board.Cells()
	cells[2][0] = model.Blue

	s.Equal(model.Empty, s.board.Cell(2, 0))
}

func (s *BoardSuite) TestColumnHeightAndValidColumns() {
	_, _ = s.board.Drop(1, model.Red)
	_, _ = s.board.Drop(1, model.Blue)
	_, _ = s.board.Drop(1, model.Red)
	_, _ = s.board.Drop(2, model.Blue)

	s.Equal(0, s.board.ColumnHeight(0))
	s.Equal(3, s.board.ColumnHeight(1))
	s.Equal(1, s.board.ColumnHeight(2))
	s.Equal(0, s.board.ColumnHeight(7))
	s.Equal([]int{0, 2, 3}, s.board.ValidColumns())
}

// Render tests

func (s *BoardSuite) TestRenderEmptyBoard() {
	board, err := model.NewBoard(2, 2)
	s.Require().NoError(err)

	s.Equal("    \n    \n", board.Render())
}

func (s *BoardSuite) TestRenderShowsMarkers() {
	board, err := model.NewBoard(3, 2)
	s.Require().NoError(err)
	_, _ = board.Drop(0, model.Red)
	_, _ = board.Drop(2, model.Blue)
	_, _ = board.Drop(2, model.Red)

	s.Equal("    R \nR   B \n", board.Render())
}
