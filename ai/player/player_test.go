package player

import (
	"context"
	"os"
	"testing"

	"github.com/matryer/is"
	"github.com/rs/zerolog"

	"github.com/domino14/checkers/board"
	"github.com/domino14/checkers/equity"
	"github.com/domino14/checkers/movegen"
)

func TestMain(m *testing.M) {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	os.Exit(m.Run())
}

func isSuccessor(b *board.Board, c board.Color, next *board.Board) bool {
	for _, s := range movegen.GenerateBoards(b, c) {
		if s.Equals(next) {
			return true
		}
	}
	return false
}

func TestPlayersReturnSuccessors(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()
	players := []Player{
		NewEnginePlayer(2, equity.DefaultWeights(), 1),
		NewEnginePlayer(2, equity.DefaultWeights(), 3),
		&RandomPlayer{},
		&GreedyPlayer{Weights: equity.DefaultWeights()},
	}
	b := board.MustFromLayout(board.MiddleGameLayout)
	for _, p := range players {
		for _, c := range []board.Color{board.Player1, board.Player2} {
			next, err := p.ChooseBoard(ctx, &b, c)
			is.NoErr(err)
			is.True(isSuccessor(&b, c, &next)) // player returned an unreachable board
		}
	}
}

func TestEngineTakesDoubleJump(t *testing.T) {
	is := is.New(t)
	b := board.MustFromLayout(board.DoubleJumpLayout)
	next, err := NewEnginePlayer(1, equity.DefaultWeights(), 1).ChooseBoard(context.Background(), &b, board.Player2)
	is.NoErr(err)
	p1, _ := next.Count(board.Player1)
	is.Equal(p1, 1)
}

func TestGreedyTakesDoubleJump(t *testing.T) {
	is := is.New(t)
	b := board.MustFromLayout(board.DoubleJumpLayout)
	next, err := (&GreedyPlayer{Weights: equity.DefaultWeights()}).ChooseBoard(context.Background(), &b, board.Player2)
	is.NoErr(err)
	is.Equal(next.GetSquare(6, 5), board.Player2Man)
}

func TestNoMove(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()
	b := board.MustFromLayout(board.BlockedLayout)
	for _, p := range []Player{
		NewEnginePlayer(3, equity.DefaultWeights(), 1),
		&RandomPlayer{},
		&GreedyPlayer{},
	} {
		next, err := p.ChooseBoard(ctx, &b, board.Player2)
		is.Equal(err, ErrNoMove)
		is.True(next.Equals(&b))
	}
}

func TestEngineName(t *testing.T) {
	is := is.New(t)
	is.Equal(NewEnginePlayer(3, equity.DefaultWeights(), 1).Name(), "engine(d=3,w=1,1,0,0,0)")
}
