// Package automatic plays computer-vs-computer checkers games and collects
// statistics about them, mostly to compare evaluation weights.
package automatic

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/domino14/checkers/ai/player"
	"github.com/domino14/checkers/board"
	"github.com/domino14/checkers/cdp"
	"github.com/domino14/checkers/game"
)

// MaxGamePlies ends a game as a draw if the draw rules have been switched
// off and it is still going.
const MaxGamePlies = 1000

// GameResult is the outcome of one game.
type GameResult struct {
	ID     string
	Winner board.Color
	Drawn  bool
	Plies  int
	Final  board.Board
}

// CSVRecord is the game log line for the result.
func (gr GameResult) CSVRecord() []string {
	p1, _ := gr.Final.Count(board.Player1)
	p2, _ := gr.Final.Count(board.Player2)
	winner := "draw"
	if !gr.Drawn {
		winner = gr.Winner.String()
	}
	return []string{
		gr.ID,
		winner,
		fmt.Sprint(gr.Plies),
		fmt.Sprint(p1),
		fmt.Sprint(p2),
		cdp.ToCDP(&gr.Final, board.NoColor),
	}
}

// GameRunner is the master struct here for the automatic game logic.
type GameRunner struct {
	game               *game.Game
	players            [2]player.Player
	opening            player.Player
	openingRandomPlies int
	maxQuietPlies      int
}

// NewGameRunner pits p1 (moving first) against p2.
func NewGameRunner(p1, p2 player.Player) *GameRunner {
	return &GameRunner{
		game:          game.NewGame(),
		players:       [2]player.Player{p1, p2},
		opening:       &player.RandomPlayer{},
		maxQuietPlies: game.DefaultMaxQuietPlies,
	}
}

// SetOpeningRandomPlies makes the first n plies of every game random, so
// that deterministic engines do not replay the same game.
func (r *GameRunner) SetOpeningRandomPlies(n int) {
	r.openingRandomPlies = n
}

func (r *GameRunner) SetMaxQuietPlies(n int) {
	r.maxQuietPlies = n
}

func (r *GameRunner) playerFor(c board.Color) player.Player {
	if r.game.Turn() < r.openingRandomPlies {
		return r.opening
	}
	if c == board.Player1 {
		return r.players[0]
	}
	return r.players[1]
}

// PlayGame plays one game from the start position to the end.
func (r *GameRunner) PlayGame(ctx context.Context) (GameResult, error) {
	r.game.Reset()
	r.game.SetMaxQuietPlies(r.maxQuietPlies)
	for r.game.Status() == game.Playing && r.game.Turn() < MaxGamePlies {
		onturn := r.game.PlayerOnTurn()
		bd := r.game.Board()
		next, err := r.playerFor(onturn).ChooseBoard(ctx, &bd, onturn)
		if errors.Is(err, player.ErrNoMove) {
			break
		}
		if err != nil {
			return GameResult{}, err
		}
		if err := r.game.ApplyBoard(next); err != nil {
			return GameResult{}, err
		}
	}
	res := GameResult{
		ID:    r.game.Uid(),
		Plies: r.game.Turn(),
		Final: r.game.Board(),
	}
	if winner, ok := r.game.Winner(); ok {
		res.Winner = winner
	} else {
		res.Drawn = true
	}
	log.Debug().Str("gid", res.ID).Int("plies", res.Plies).Str("winner", res.Winner.String()).
		Bool("drawn", res.Drawn).Msg("game-over")
	return res, nil
}
