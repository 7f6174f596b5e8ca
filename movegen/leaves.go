package movegen

import (
	"fmt"

	"github.com/domino14/checkers/board"
)

// A Destination is a leaf of a move tree: where the piece ends up, what it
// captured on the way, and whether any step along the path crowned it.
type Destination struct {
	Square      board.Coord
	Captures    []board.Piece
	KingHopeful bool
}

func (d Destination) String() string {
	if len(d.Captures) == 0 {
		return d.Square.String()
	}
	caps := ""
	for i, c := range d.Captures {
		if i > 0 {
			caps += " "
		}
		caps += c.Coord().String()
	}
	return fmt.Sprintf("%v x[%s]", d.Square, caps)
}

// CollectDestinations flattens a move tree depth first. Only leaves below the
// root are emitted; intermediate landing squares are dropped.
func CollectDestinations(root *MoveNode) []Destination {
	var dests []Destination
	collect(root, 0, nil, false, &dests)
	return dests
}

// depth counts the nodes on the path above n.
func collect(n *MoveNode, depth int, captures []board.Piece, hopeful bool, dests *[]Destination) {
	if n.Capture != nil {
		captures = append(captures, *n.Capture)
	}
	hopeful = hopeful || n.KingHopeful != nil
	if len(n.Children) == 0 {
		if depth > 0 {
			caps := make([]board.Piece, len(captures))
			copy(caps, captures)
			*dests = append(*dests, Destination{
				Square:      n.Square,
				Captures:    caps,
				KingHopeful: hopeful,
			})
		}
		return
	}
	for _, c := range n.Children {
		// Each branch gets its own capture list.
		branch := make([]board.Piece, len(captures), len(captures)+1)
		copy(branch, captures)
		collect(c, depth+1, branch, hopeful, dests)
	}
}
