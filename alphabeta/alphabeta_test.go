package alphabeta

import (
	"context"
	"errors"
	"math"
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

// diff lists the squares that differ between two boards.
func diff(a, b *board.Board) []board.Coord {
	var out []board.Coord
	for row := 0; row < board.Dim; row++ {
		for col := 0; col < board.Dim; col++ {
			if a.GetSquare(row, col) != b.GetSquare(row, col) {
				out = append(out, board.Coord{Row: row, Col: col})
			}
		}
	}
	return out
}

func TestStartDepthOne(t *testing.T) {
	is := is.New(t)
	b := board.NewBoard()
	score, res := SearchDefault(&b, 1)
	is.Equal(score, 0.0)
	is.Equal(diff(&b, &res), []board.Coord{{Row: 2, Col: 1}, {Row: 3, Col: 0}})
	is.Equal(res.GetSquare(3, 0), board.Player2Man)
}

func TestStartDepthOneMinimizing(t *testing.T) {
	is := is.New(t)
	b := board.NewBoard()
	score, res := Search(&b, 1, math.Inf(-1), math.Inf(1), false, equity.DefaultWeights())
	is.Equal(score, 0.0)
	is.Equal(diff(&b, &res), []board.Coord{{Row: 4, Col: 1}, {Row: 5, Col: 0}})
}

func TestDoubleCaptureDepthOne(t *testing.T) {
	is := is.New(t)
	b := board.MustFromLayout(board.DoubleJumpLayout)
	score, res := SearchDefault(&b, 1)
	is.Equal(score, 0.0)
	is.Equal(res.GetSquare(6, 5), board.Player2Man)
	is.True(res.GetSquare(3, 2).IsEmpty())
	is.True(res.GetSquare(5, 4).IsEmpty())
	p1, _ := res.Count(board.Player1)
	is.Equal(p1, 1)
}

func TestNoMovesReturnsSentinel(t *testing.T) {
	is := is.New(t)
	b := board.MustFromLayout(board.BlockedLayout)
	for depth := 1; depth <= 3; depth++ {
		score, res := SearchDefault(&b, depth)
		is.True(math.IsInf(score, -1))
		is.True(res.Equals(&b))
	}

	// Player 1 with no pieces at all.
	empty := board.MustFromLayout(board.PromotionLayout)
	empty.RemovePieces(empty.Pieces(board.Player1))
	score, res := Search(&empty, 2, math.Inf(-1), math.Inf(1), false, equity.DefaultWeights())
	is.True(math.IsInf(score, 1))
	is.True(res.Equals(&empty))
}

func TestDepthZeroEvaluates(t *testing.T) {
	is := is.New(t)
	b := board.MustFromLayout(board.DoubleJumpLayout)
	score, res := SearchDefault(&b, 0)
	is.Equal(score, -2.0)
	is.True(res.Equals(&b))
}

func TestNegativeDepthEvaluates(t *testing.T) {
	is := is.New(t)
	// The start position never runs out of moves, so this only returns if a
	// negative depth stops the recursion.
	for _, l := range []board.Layout{board.StartLayout, board.DoubleJumpLayout} {
		b := board.MustFromLayout(l)
		want := equity.Evaluate(&b, equity.DefaultWeights())
		for _, maximizing := range []bool{true, false} {
			score, res := Search(&b, -1, math.Inf(-1), math.Inf(1), maximizing, equity.DefaultWeights())
			is.Equal(score, want)
			is.True(res.Equals(&b))

			score, res = Minimax(&b, -3, maximizing, equity.DefaultWeights())
			is.Equal(score, want)
			is.True(res.Equals(&b))
		}
	}
}

func TestAlphaBetaMatchesMinimax(t *testing.T) {
	is := is.New(t)
	weightSets := []equity.Weights{
		equity.DefaultWeights(),
		{Pieces: 1, Kings: 1, Moves: 0.5, Opportunities: 0.5, KingHopefuls: 0.25},
	}
	for name, l := range board.SampleLayouts {
		b := board.MustFromLayout(l)
		for _, w := range weightSets {
			for depth := 1; depth <= 3; depth++ {
				for _, maximizing := range []bool{true, false} {
					abScore, abBoard := Search(&b, depth, math.Inf(-1), math.Inf(1), maximizing, w)
					mmScore, mmBoard := Minimax(&b, depth, maximizing, w)
					if abScore != mmScore || !abBoard.Equals(&mmBoard) {
						t.Fatalf("%s depth %d max=%v w=%v: alphabeta %v, minimax %v",
							name, depth, maximizing, w, abScore, mmScore)
					}
				}
			}
		}
	}
	is.True(true)
}

func TestSolverMatchesSearch(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()
	for _, l := range []board.Layout{board.StartLayout, board.MiddleGameLayout, board.EndgameLayout} {
		b := board.MustFromLayout(l)
		for _, maximizing := range []bool{true, false} {
			score, bd := Search(&b, 3, math.Inf(-1), math.Inf(1), maximizing, equity.DefaultWeights())

			serial := NewSolver(3, equity.DefaultWeights())
			sres, err := serial.Solve(ctx, &b, maximizing)
			is.NoErr(err)
			is.Equal(sres.Score, score)
			is.True(sres.Board.Equals(&bd))

			parallel := NewSolver(3, equity.DefaultWeights())
			parallel.SetThreads(4)
			pres, err := parallel.Solve(ctx, &b, maximizing)
			is.NoErr(err)
			is.Equal(pres.Score, score)
			is.True(pres.Board.Equals(&bd))
		}
	}
}

func isSuccessor(b *board.Board, c board.Color, next *board.Board) bool {
	for _, s := range movegen.GenerateBoards(b, c) {
		if s.Equals(next) {
			return true
		}
	}
	return false
}

func TestSolverPrincipalVariation(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()
	for _, l := range []board.Layout{board.StartLayout, board.MiddleGameLayout} {
		b := board.MustFromLayout(l)
		for _, threads := range []int{1, 3} {
			s := NewSolver(3, equity.DefaultWeights())
			s.SetThreads(threads)
			res, err := s.Solve(ctx, &b, true)
			is.NoErr(err)
			is.Equal(len(res.PV.Boards), 3)
			is.Equal(res.PV.Score(), res.Score)
			first, ok := res.PV.GetPVBoard()
			is.True(ok)
			is.True(first.Equals(&res.Board))

			prev := b
			maximizing := true
			for i := range res.PV.Boards {
				is.True(isSuccessor(&prev, SideToMove(maximizing), &res.PV.Boards[i]))
				prev = res.PV.Boards[i]
				maximizing = !maximizing
			}
			// The line ends on the leaf the score came from.
			is.Equal(equity.Evaluate(&prev, equity.DefaultWeights()), res.Score)
		}
	}
}

func TestSolverStats(t *testing.T) {
	is := is.New(t)
	b := board.NewBoard()
	s := NewSolver(3, equity.DefaultWeights())
	res, err := s.Solve(context.Background(), &b, true)
	is.NoErr(err)
	is.True(res.Stats.Nodes > res.Stats.Leaves)
	is.True(res.Stats.Leaves > 0)
	is.True(res.Stats.Cutoffs > 0)
	is.Equal(res.Stats.NoMoveNodes, uint64(0))
}

func TestSolverErrors(t *testing.T) {
	is := is.New(t)
	b := board.NewBoard()
	_, err := NewSolver(-1, equity.DefaultWeights()).Solve(context.Background(), &b, true)
	is.Equal(err, ErrBadDepth)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = NewSolver(2, equity.DefaultWeights()).Solve(ctx, &b, true)
	is.True(errors.Is(err, context.Canceled))

	s := NewSolver(2, equity.DefaultWeights())
	s.SetThreads(2)
	_, err = s.Solve(ctx, &b, true)
	is.True(errors.Is(err, context.Canceled))
}

func BenchmarkSearchMiddleGame(b *testing.B) {
	bd := board.MustFromLayout(board.MiddleGameLayout)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Search(&bd, 4, math.Inf(-1), math.Inf(1), true, equity.DefaultWeights())
	}
}
