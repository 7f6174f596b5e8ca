// Package movegen builds the move trees of checkers pieces and turns them
// into destinations and successor boards.
package movegen

import (
	"fmt"
	"strings"

	"github.com/domino14/checkers/board"
)

// RowShift is the vertical component of a diagonal. Front is toward row 0,
// the direction player 1 men move in.
type RowShift int

// ColShift is the horizontal component of a diagonal.
type ColShift int

const (
	Front RowShift = -1
	Back  RowShift = 1

	Left  ColShift = -1
	Right ColShift = 1
)

// Direction is one of the four diagonals.
type Direction struct {
	Row RowShift
	Col ColShift
}

var (
	FrontLeft  = Direction{Front, Left}
	FrontRight = Direction{Front, Right}
	BackLeft   = Direction{Back, Left}
	BackRight  = Direction{Back, Right}

	allDirections     = []Direction{FrontLeft, FrontRight, BackLeft, BackRight}
	player1Directions = []Direction{FrontLeft, FrontRight}
	player2Directions = []Direction{BackLeft, BackRight}
)

func (d Direction) String() string {
	var sb strings.Builder
	if d.Row == Front {
		sb.WriteString("front")
	} else {
		sb.WriteString("back")
	}
	if d.Col == Left {
		sb.WriteString("-left")
	} else {
		sb.WriteString("-right")
	}
	return sb.String()
}

// Directions returns the diagonals a piece may start a move in. Men only go
// forward in their own sense; kings go everywhere.
func Directions(p board.Piece) []Direction {
	switch {
	case p.King:
		return allDirections
	case p.Color == board.Player1:
		return player1Directions
	case p.Color == board.Player2:
		return player2Directions
	}
	return nil
}

// A MoveNode is one square reachable by a piece. The root of a tree holds the
// square the piece stands on.
type MoveNode struct {
	Square board.Coord
	// Capture is the piece jumped to land here, if any.
	Capture *board.Piece
	// KingHopeful is set when the step reaching this node crowns a man. It
	// holds the square the man moved from.
	KingHopeful *board.Coord
	Children    []*MoveNode
}

func (n *MoveNode) String() string {
	var sb strings.Builder
	n.write(&sb, 0)
	return sb.String()
}

func (n *MoveNode) write(sb *strings.Builder, depth int) {
	sb.WriteString(strings.Repeat("  ", depth))
	sb.WriteString(n.Square.String())
	if n.Capture != nil {
		fmt.Fprintf(sb, " x%v", n.Capture.Coord())
	}
	if n.KingHopeful != nil {
		sb.WriteString(" (k)")
	}
	sb.WriteString("\n")
	for _, c := range n.Children {
		c.write(sb, depth+1)
	}
}

// Traverse explores one diagonal from p and returns the resulting tree.
//
// hop is set when the previous frame found an opposing piece on the
// diagonal; skipped is that piece. chained is set for the frames that look
// for a further capture after a jump. In a chained frame only captures are
// recorded.
//
// Continuation frames for a capture run on a copy of the board with the
// jump already played. Their results are appended under the landing node,
// so a double jump appears as landing node -> next landing node.
func Traverse(b *board.Board, p board.Piece, d Direction, hop bool, skipped *board.Piece, chained bool) *MoveNode {
	root := &MoveNode{Square: p.Coord()}

	step := 1
	if hop {
		step = 2
	}
	tr := p.Row + int(d.Row)*step
	tc := p.Col + int(d.Col)*step
	if !board.InBounds(tr, tc) {
		return root
	}

	target, occupied := b.PieceAt(tr, tc)
	switch {
	case !occupied && skipped == nil:
		if !chained {
			root.Children = append(root.Children, &MoveNode{
				Square:      board.Coord{Row: tr, Col: tc},
				KingHopeful: kingHopeful(p, tr),
			})
		}

	case !occupied:
		node := &MoveNode{
			Square:      board.Coord{Row: tr, Col: tc},
			Capture:     skipped,
			KingHopeful: kingHopeful(p, tr),
		}
		root.Children = append(root.Children, node)

		cp := *b
		landed := cp.MovePiece(p, tr, tc)
		cp.RemovePieces([]board.Piece{*skipped})

		next := []Direction{{d.Row, Left}, {d.Row, Right}}
		if p.King {
			next = append(next, Direction{-d.Row, Left}, Direction{-d.Row, Right})
		}
		for _, nd := range next {
			cont := Traverse(&cp, landed, nd, false, nil, true)
			node.Children = append(node.Children, cont.Children...)
		}

	case skipped == nil && target.Color != p.Color:
		jumped := target
		hopRoot := Traverse(b, p, d, true, &jumped, false)
		root.Children = append(root.Children, hopRoot.Children...)
	}

	return root
}

// kingHopeful reports the pre-move square of a man that would be crowned by
// moving to toRow.
func kingHopeful(p board.Piece, toRow int) *board.Coord {
	if p.King {
		return nil
	}
	if (p.Color == board.Player1 && toRow == 0) || (p.Color == board.Player2 && toRow == board.Dim-1) {
		c := p.Coord()
		return &c
	}
	return nil
}
