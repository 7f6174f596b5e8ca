package movegen

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/domino14/checkers/board"
)

// FindMoves returns every destination of p, in direction order.
func FindMoves(b *board.Board, p board.Piece) []Destination {
	var dests []Destination
	for _, d := range Directions(p) {
		root := Traverse(b, p, d, false, nil, false)
		dests = append(dests, CollectDestinations(root)...)
	}
	return dests
}

// SingleHops returns the first level of each direction's tree: the simple
// steps and the first jump of every capture, without their continuations.
func SingleHops(b *board.Board, p board.Piece) []*MoveNode {
	var nodes []*MoveNode
	for _, d := range Directions(p) {
		root := Traverse(b, p, d, false, nil, false)
		nodes = append(nodes, root.Children...)
	}
	return nodes
}

// A Move is a piece, one of its destinations, and the board it leads to.
type Move struct {
	Piece       board.Piece
	Destination Destination
	Result      board.Board
}

func (m *Move) String() string {
	return fmt.Sprintf("%v -> %v", m.Piece, m.Destination)
}

// Apply plays a destination of p on a copy of b.
func Apply(b *board.Board, p board.Piece, d Destination) board.Board {
	cp := *b
	cp.MovePiece(p, d.Square.Row, d.Square.Col)
	cp.RemovePieces(d.Captures)
	return cp
}

// GenerateMoves lists the moves of every piece of color c, pieces in
// row-major order. The source board is never modified.
func GenerateMoves(b *board.Board, c board.Color) []Move {
	var moves []Move
	for _, p := range b.Pieces(c) {
		for _, d := range FindMoves(b, p) {
			moves = append(moves, Move{
				Piece:       p,
				Destination: d,
				Result:      Apply(b, p, d),
			})
		}
	}
	log.Trace().Str("color", c.String()).Int("moves", len(moves)).Msg("generated-moves")
	return moves
}

// GenerateBoards returns the successor boards for color c. An empty result
// means c cannot move.
func GenerateBoards(b *board.Board, c board.Color) []board.Board {
	return lo.Map(GenerateMoves(b, c), func(m Move, _ int) board.Board {
		return m.Result
	})
}

// HasMoves is a cheaper check than len(GenerateBoards(...)) > 0.
func HasMoves(b *board.Board, c board.Color) bool {
	for _, p := range b.Pieces(c) {
		if len(FindMoves(b, p)) > 0 {
			return true
		}
	}
	return false
}
