// Package player has the automated players. Each one is handed a position
// and returns the position after its move.
package player

import (
	"context"
	"errors"

	"github.com/domino14/checkers/board"
)

var ErrNoMove = errors.New("no move available")

// Player picks the next board for color c. It returns ErrNoMove when c is
// stuck.
type Player interface {
	ChooseBoard(ctx context.Context, b *board.Board, c board.Color) (board.Board, error)
	Name() string
}
