package cdp

import (
	"errors"
	"testing"

	"github.com/matryer/is"

	"github.com/domino14/checkers/board"
)

func TestRowToSquares(t *testing.T) {
	is := is.New(t)
	testcases := []struct {
		row    string
		parsed []int
	}{
		{"8", []int{0, 0, 0, 0, 0, 0, 0, 0}},
		{"1o1o1o1o", []int{0, 2, 0, 2, 0, 2, 0, 2}},
		{"X6O", []int{11, 0, 0, 0, 0, 0, 0, 22}},
		{"3x4", []int{0, 0, 0, 1, 0, 0, 0, 0}},
	}
	for _, tc := range testcases {
		parsed, err := rowToSquares(tc.row)
		is.NoErr(err)
		is.Equal(parsed, tc.parsed)
	}
}

func TestParseStart(t *testing.T) {
	is := is.New(t)
	pos, err := ParseCDP(StartPosition)
	is.NoErr(err)
	start := board.NewBoard()
	is.True(pos.Board.Equals(&start))
	is.Equal(pos.OnTurn, board.Player1)
}

func TestRoundTrip(t *testing.T) {
	is := is.New(t)
	for name, l := range board.SampleLayouts {
		b := board.MustFromLayout(l)
		str := ToCDP(&b, board.Player2)
		pos, err := ParseCDP(str)
		is.NoErr(err)
		is.True(pos.Board.Equals(&b)) // round trip of sample layout
		is.Equal(pos.OnTurn, board.Player2)
		t.Logf("%s: %s", name, str)
	}
}

func TestToCDP(t *testing.T) {
	is := is.New(t)
	b := board.MustFromLayout(board.KingChainLayout)
	is.Equal(ToCDP(&b, board.NoColor), "8/8/8/8/8/2o1o3/1X6/8")
	start := board.NewBoard()
	is.Equal(ToCDP(&start, board.Player1), StartPosition)
}

func TestParseErrors(t *testing.T) {
	is := is.New(t)
	for _, bad := range []string{
		"",
		"8/8/8",
		"8/8/8/8/8/8/8/7",
		"8/8/8/8/8/8/8/9",
		"8/8/8/8/8/8/8/7q",
		"8/8/8/8/8/8/8/8 3",
		"8/8/8/8/8/8/8/8 1 extra",
	} {
		_, err := ParseCDP(bad)
		is.True(errors.Is(err, ErrBadCDP))
	}
}
