// Package game keeps the state of one checkers game between two sides: the
// board, whose turn it is, the piece a human has selected, and the history
// needed to call draws.
package game

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/domino14/checkers/board"
	"github.com/domino14/checkers/movegen"
)

// DefaultMaxQuietPlies is the number of plies without a capture or a man
// move after which the game is drawn.
const DefaultMaxQuietPlies = 80

// RepetitionLimit is how many times a position may occur before the game is
// drawn.
const RepetitionLimit = 3

type PlayState int

const (
	Playing PlayState = iota
	Won
	Drawn
)

func (p PlayState) String() string {
	switch p {
	case Playing:
		return "playing"
	case Won:
		return "won"
	case Drawn:
		return "drawn"
	}
	return "unknown"
}

var (
	ErrGameOver    = errors.New("game is over")
	ErrNoLegalMove = errors.New("side to move has no legal move")
	ErrIllegalMove = errors.New("board is not reachable in one move")
)

type positionKey struct {
	hash   uint64
	onturn board.Color
}

// Game is the turn context. Player 1 always moves first from the starting
// position.
type Game struct {
	uid      string
	board    board.Board
	onturn   board.Color
	selected *board.Piece
	// validMoves are the destinations of the selected piece.
	validMoves []movegen.Destination

	turnnum       int
	quietPlies    int
	maxQuietPlies int
	positions     map[positionKey]int
	drawn         bool
}

// NewGame starts a game from the standard position.
func NewGame() *Game {
	return NewFromBoard(board.NewBoard(), board.Player1)
}

// NewFromBoard starts a game from an arbitrary position.
func NewFromBoard(b board.Board, onturn board.Color) *Game {
	g := &Game{maxQuietPlies: DefaultMaxQuietPlies}
	g.init(b, onturn)
	return g
}

func (g *Game) init(b board.Board, onturn board.Color) {
	g.uid = uuid.NewString()
	g.board = b
	g.onturn = onturn
	g.selected = nil
	g.validMoves = nil
	g.turnnum = 0
	g.quietPlies = 0
	g.drawn = false
	g.positions = map[positionKey]int{}
	g.recordPosition()
	log.Debug().Str("uid", g.uid).Str("onturn", onturn.String()).Msg("new-game")
}

// Reset goes back to the standard starting position.
func (g *Game) Reset() {
	g.init(board.NewBoard(), board.Player1)
}

func (g *Game) SetMaxQuietPlies(n int) {
	g.maxQuietPlies = n
}

func (g *Game) Uid() string {
	return g.uid
}

// Board returns a copy of the current position.
func (g *Game) Board() board.Board {
	return g.board
}

func (g *Game) PlayerOnTurn() board.Color {
	return g.onturn
}

// Turn is the number of plies played so far.
func (g *Game) Turn() int {
	return g.turnnum
}

// Select handles a click on a square. If a piece is already selected and the
// square is one of its destinations, the move is played. Otherwise the
// selection is dropped and the square is selected afresh. It returns true
// only when a piece of the side to move ends up selected; after a move the
// turn has passed, so it returns false.
func (g *Game) Select(row, col int) bool {
	if g.Status() != Playing {
		return false
	}
	if g.selected != nil {
		if !g.processMove(row, col) {
			g.selected = nil
			g.Select(row, col)
		}
	}
	p, ok := g.board.PieceAt(row, col)
	if ok && p.Color == g.onturn {
		g.selected = &p
		g.validMoves = movegen.FindMoves(&g.board, p)
		return true
	}
	return false
}

func (g *Game) processMove(row, col int) bool {
	if !board.InBounds(row, col) || !g.board.GetSquare(row, col).IsEmpty() {
		return false
	}
	var dest *movegen.Destination
	// A later destination on the same square replaces an earlier one.
	for i := range g.validMoves {
		if g.validMoves[i].Square == (board.Coord{Row: row, Col: col}) {
			dest = &g.validMoves[i]
		}
	}
	if dest == nil {
		return false
	}
	mover := *g.selected
	g.board.MovePiece(mover, row, col)
	g.board.RemovePieces(dest.Captures)
	log.Debug().Str("piece", mover.String()).Str("dest", dest.String()).Msg("human-move")
	g.endPly(mover, len(dest.Captures))
	return true
}

// Selected returns the currently selected piece, if any.
func (g *Game) Selected() (board.Piece, bool) {
	if g.selected == nil {
		return board.Piece{}, false
	}
	return *g.selected, true
}

// ValidMoves returns the destinations of the selected piece.
func (g *Game) ValidMoves() []movegen.Destination {
	return g.validMoves
}

// ValidSquares returns just the squares of ValidMoves, for highlighting.
func (g *Game) ValidSquares() []board.Coord {
	sqs := make([]board.Coord, len(g.validMoves))
	for i, d := range g.validMoves {
		sqs[i] = d.Square
	}
	return sqs
}

// ChangeTurn passes the move to the other side and clears the selection.
func (g *Game) ChangeTurn() {
	g.validMoves = nil
	g.selected = nil
	g.onturn = g.onturn.Opponent()
}

// ApplyBoard plays the board chosen by an engine for the side to move. The
// board must be one of the successors of the current position.
func (g *Game) ApplyBoard(b board.Board) error {
	moves := movegen.GenerateMoves(&g.board, g.onturn)
	if len(moves) == 0 {
		return ErrNoLegalMove
	}
	if g.Status() != Playing {
		return ErrGameOver
	}
	for _, m := range moves {
		if m.Result.Equals(&b) {
			g.board = b
			g.endPly(m.Piece, len(m.Destination.Captures))
			return nil
		}
	}
	return fmt.Errorf("%w for %v", ErrIllegalMove, g.onturn)
}

func (g *Game) endPly(mover board.Piece, captures int) {
	if captures > 0 || !mover.King {
		g.quietPlies = 0
	} else {
		g.quietPlies++
	}
	g.turnnum++
	g.ChangeTurn()
	g.recordPosition()
}

func (g *Game) recordPosition() {
	key := positionKey{g.board.Hash(), g.onturn}
	g.positions[key]++
	if g.positions[key] >= RepetitionLimit {
		log.Debug().Int("turn", g.turnnum).Msg("draw-by-repetition")
		g.drawn = true
	}
	if g.maxQuietPlies > 0 && g.quietPlies >= g.maxQuietPlies {
		log.Debug().Int("turn", g.turnnum).Msg("draw-by-quiet-plies")
		g.drawn = true
	}
}

// Winner returns the winning side once the game is decided. A side loses
// when it has no pieces left, or when it is to move and cannot.
func (g *Game) Winner() (board.Color, bool) {
	for _, c := range []board.Color{board.Player1, board.Player2} {
		if pieces, _ := g.board.Count(c); pieces == 0 {
			return c.Opponent(), true
		}
	}
	if !movegen.HasMoves(&g.board, g.onturn) {
		return g.onturn.Opponent(), true
	}
	return board.NoColor, false
}

func (g *Game) Status() PlayState {
	if _, ok := g.Winner(); ok {
		return Won
	}
	if g.drawn {
		return Drawn
	}
	return Playing
}

// ToDisplayText shows the board with the selected piece's destinations
// highlighted.
func (g *Game) ToDisplayText() string {
	s := g.board.ToDisplayText(g.ValidSquares()...)
	s += fmt.Sprintf("\nTurn %d, %v to move (%v)\n", g.turnnum, g.onturn, g.Status())
	return s
}
