package game

import (
	"errors"
	"os"
	"testing"

	"github.com/matryer/is"
	"github.com/rs/zerolog"

	"github.com/domino14/checkers/board"
	"github.com/domino14/checkers/movegen"
)

func TestMain(m *testing.M) {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	os.Exit(m.Run())
}

func TestNewGame(t *testing.T) {
	is := is.New(t)
	g := NewGame()
	is.Equal(g.PlayerOnTurn(), board.Player1)
	is.Equal(g.Status(), Playing)
	is.Equal(g.Turn(), 0)
	is.True(g.Uid() != "")
	_, ok := g.Winner()
	is.True(!ok)
}

func TestSelectAndMove(t *testing.T) {
	is := is.New(t)
	g := NewGame()

	// Not player 1's piece.
	is.True(!g.Select(2, 1))
	_, ok := g.Selected()
	is.True(!ok)

	is.True(g.Select(5, 0))
	is.Equal(g.ValidSquares(), []board.Coord{{Row: 4, Col: 1}})

	// Moving hands the turn over, so nothing is selected afterwards.
	is.True(!g.Select(4, 1))
	bd := g.Board()
	is.Equal(bd.GetSquare(4, 1), board.Player1Man)
	is.True(bd.GetSquare(5, 0).IsEmpty())
	is.Equal(g.PlayerOnTurn(), board.Player2)
	is.Equal(g.Turn(), 1)
	is.Equal(len(g.ValidMoves()), 0)
}

func TestReselect(t *testing.T) {
	is := is.New(t)
	g := NewGame()
	is.True(g.Select(5, 2))
	is.True(g.Select(5, 4))
	p, ok := g.Selected()
	is.True(ok)
	is.Equal(p.Coord(), board.Coord{Row: 5, Col: 4})

	// An empty square that is not a destination clears the selection.
	is.True(!g.Select(3, 3))
	_, ok = g.Selected()
	is.True(!ok)
	is.Equal(g.PlayerOnTurn(), board.Player1)
}

func TestHumanDoubleCapture(t *testing.T) {
	is := is.New(t)
	g := NewFromBoard(board.MustFromLayout(board.DoubleJumpLayout), board.Player2)
	is.True(g.Select(2, 1))
	is.Equal(g.ValidSquares(), []board.Coord{{Row: 3, Col: 0}, {Row: 6, Col: 5}})
	is.True(!g.Select(6, 5))
	bd := g.Board()
	p1, _ := bd.Count(board.Player1)
	is.Equal(p1, 1)
	is.Equal(g.PlayerOnTurn(), board.Player1)
}

func TestApplyBoard(t *testing.T) {
	is := is.New(t)
	g := NewGame()
	start := g.Board()

	is.True(errors.Is(g.ApplyBoard(start), ErrIllegalMove))

	next := movegen.GenerateBoards(&start, board.Player1)[3]
	is.NoErr(g.ApplyBoard(next))
	is.Equal(g.PlayerOnTurn(), board.Player2)
	bd := g.Board()
	is.True(bd.Equals(&next))
}

func TestNoLegalMove(t *testing.T) {
	is := is.New(t)
	g := NewFromBoard(board.MustFromLayout(board.BlockedLayout), board.Player2)
	winner, ok := g.Winner()
	is.True(ok)
	is.Equal(winner, board.Player1)
	is.Equal(g.Status(), Won)
	is.Equal(g.ApplyBoard(g.Board()), ErrNoLegalMove)
	is.True(!g.Select(6, 1))
}

func TestWinnerNoPieces(t *testing.T) {
	is := is.New(t)
	b := board.MustFromLayout(board.PromotionLayout)
	b.RemovePieces(b.Pieces(board.Player1))
	g := NewFromBoard(b, board.Player2)
	winner, ok := g.Winner()
	is.True(ok)
	is.Equal(winner, board.Player2)

	succ := movegen.GenerateBoards(&b, board.Player2)[0]
	is.Equal(g.ApplyBoard(succ), ErrGameOver)
}

var kingsOnly = board.Layout{
	{0, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 22, 0},
	{0, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 0, 0},
	{0, 11, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 0, 0},
}

// shuffle moves both kings out and back: four plies.
func shuffle(g *Game) {
	g.Select(6, 1)
	g.Select(5, 0)
	g.Select(1, 6)
	g.Select(0, 7)
	g.Select(5, 0)
	g.Select(6, 1)
	g.Select(0, 7)
	g.Select(1, 6)
}

func TestDrawByRepetition(t *testing.T) {
	is := is.New(t)
	g := NewFromBoard(board.MustFromLayout(kingsOnly), board.Player1)
	shuffle(g)
	is.Equal(g.Turn(), 4)
	is.Equal(g.Status(), Playing)
	shuffle(g)
	is.Equal(g.Turn(), 8)
	is.Equal(g.Status(), Drawn)
	is.True(!g.Select(6, 1))
}

func TestDrawByQuietPlies(t *testing.T) {
	is := is.New(t)
	g := NewFromBoard(board.MustFromLayout(kingsOnly), board.Player1)
	g.SetMaxQuietPlies(3)
	g.Select(6, 1)
	g.Select(5, 0)
	g.Select(1, 6)
	g.Select(0, 7)
	is.Equal(g.Status(), Playing)
	g.Select(5, 0)
	g.Select(6, 1)
	is.Equal(g.Status(), Drawn)
}

func TestReset(t *testing.T) {
	is := is.New(t)
	g := NewFromBoard(board.MustFromLayout(board.BlockedLayout), board.Player2)
	uid := g.Uid()
	g.Reset()
	is.Equal(g.Status(), Playing)
	is.Equal(g.PlayerOnTurn(), board.Player1)
	is.True(g.Uid() != uid)
	bd := g.Board()
	start := board.NewBoard()
	is.True(bd.Equals(&start))
}
