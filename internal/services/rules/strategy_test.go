package rules_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/linea/internal/model"
	"github.com/mcoot/linea/internal/services/rules"
	"github.com/mcoot/linea/internal/testutil"
)

type StrategySuite struct {
	suite.Suite
	a rules.Strategy
	b rules.Strategy
	c rules.Strategy
}

func TestStrategySuite(t *testing.T) {
	suite.Run(t, new(StrategySuite))
}

func (s *StrategySuite) SetupTest() {
	var err error
	s.a, err = rules.New(rules.VariantA)
	s.Require().NoError(err)
	s.b, err = rules.New(rules.VariantB)
	s.Require().NoError(err)
	s.c, err = rules.New(rules.VariantC)
	s.Require().NoError(err)
}

// assertWins checks the result of every variant for one color
func (s *StrategySuite) assertWins(board *model.Board, color model.Color, a, b, c bool) {
	s.Equal(a, s.a.CheckWin(board, color), "variant A")
	s.Equal(b, s.b.CheckWin(board, color), "variant B")
	s.Equal(c, s.c.CheckWin(board, color), "variant C")
}

// Selection tests

func (s *StrategySuite) TestNewReturnsMatchingVariant() {
	s.Equal(rules.VariantA, s.a.Variant())
	s.Equal(rules.VariantB, s.b.Variant())
	s.Equal(rules.VariantC, s.c.Variant())
}

func (s *StrategySuite) TestNewRejectsUnknownVariant() {
	strategy, err := rules.New('Z')
	s.ErrorIs(err, model.ErrInvalidVariant)
	s.Nil(strategy)
}

func (s *StrategySuite) TestParseVariant() {
	v, err := rules.ParseVariant("B")
	s.Require().NoError(err)
	s.Equal(rules.VariantB, v)

	for _, input := range []string{"", "Z", "a", "AB"} {
		_, err := rules.ParseVariant(input)
		s.ErrorIs(err, model.ErrInvalidVariant, "input %q", input)
	}
}

func (s *StrategySuite) TestVariantsAreDescribed() {
	s.Len(rules.Variants(), 3)
	for _, v := range rules.Variants() {
		s.True(v.IsValid())
		s.NotEqual("unknown", v.Description())
	}
	s.Equal("unknown", rules.Variant('Z').Description())
}

// Line tests

func (s *StrategySuite) TestEmptyBoardHasNoWinner() {
	board := testutil.BoardFromRows(s.T(),
		".......",
		".......",
		".......",
	)
	s.assertWins(board, model.Red, false, false, false)
	s.assertWins(board, model.Blue, false, false, false)
}

func (s *StrategySuite) TestHorizontalLine() {
	board := testutil.BoardFromRows(s.T(),
		".......",
		"....B..",
		".RRRRBB",
	)
	s.assertWins(board, model.Red, true, false, true)
	s.assertWins(board, model.Blue, false, false, false)
}

func (s *StrategySuite) TestVerticalLine() {
	board := testutil.BoardFromRows(s.T(),
		"....",
		"B...",
		"BR..",
		"BR..",
		"BR..",
	)
	s.assertWins(board, model.Blue, true, false, true)
	s.assertWins(board, model.Red, false, false, false)
}

func (s *StrategySuite) TestRisingDiagonal() {
	board := testutil.BoardFromRows(s.T(),
		"...R",
		"..RB",
		".RBB",
		"RBBR",
	)
	s.assertWins(board, model.Red, false, true, true)
	s.assertWins(board, model.Blue, false, false, false)
}

func (s *StrategySuite) TestFallingDiagonal() {
	board := testutil.BoardFromRows(s.T(),
		"B....",
		"RB...",
		"RRB..",
		"RRRB.",
	)
	s.assertWins(board, model.Blue, false, true, true)
	s.assertWins(board, model.Red, false, false, false)
}

func (s *StrategySuite) TestThreeInARowIsNotAWin() {
	board := testutil.BoardFromRows(s.T(),
		"......",
		"B.....",
		"BR....",
		"BRRR..",
	)
	s.assertWins(board, model.Red, false, false, false)
	s.assertWins(board, model.Blue, false, false, false)
}

func (s *StrategySuite) TestInterruptedLineIsNotAWin() {
	board := testutil.BoardFromRows(s.T(),
		".......",
		"RRBRRBB",
	)
	s.assertWins(board, model.Red, false, false, false)
}

func (s *StrategySuite) TestLongerLineWins() {
	board := testutil.BoardFromRows(s.T(),
		".......",
		"RRRRRBB",
	)
	s.assertWins(board, model.Red, true, false, true)
}

func (s *StrategySuite) TestBoardTooSmallForAnyLine() {
	board := testutil.BoardFromRows(s.T(),
		"RRR",
		"RRR",
		"RRR",
	)
	s.assertWins(board, model.Red, false, false, false)
}

func (s *StrategySuite) TestEmptyColorNeverWins() {
	board := testutil.BoardFromRows(s.T(),
		"....",
		"....",
		"....",
		"....",
	)
	s.assertWins(board, model.Empty, false, false, false)
}
