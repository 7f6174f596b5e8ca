// Package board holds the 8x8 checkers board: the pieces, their colors and
// king flags, and the primitives to move, promote and remove them.
package board

import (
	"errors"
	"fmt"

	"github.com/cespare/xxhash"
)

// Dim is the number of rows and columns of the board.
const Dim = 8

// Color identifies the owner of a piece.
type Color uint8

const (
	NoColor Color = iota
	// Player1 starts on rows 5-7 and moves toward row 0.
	Player1
	// Player2 starts on rows 0-2 and moves toward row 7. It is the side the
	// engine maximizes for.
	Player2
)

func (c Color) String() string {
	switch c {
	case Player1:
		return "player1"
	case Player2:
		return "player2"
	}
	return "none"
}

// Opponent returns the other side.
func (c Color) Opponent() Color {
	switch c {
	case Player1:
		return Player2
	case Player2:
		return Player1
	}
	return NoColor
}

// PromotionRow is the row a color's men must reach to be crowned.
func (c Color) PromotionRow() int {
	if c == Player1 {
		return 0
	}
	return Dim - 1
}

// A Square is a single cell of the board. The values are the layout
// descriptor codes, so a grid of squares is its own layout.
type Square uint8

const (
	EmptySquare Square = 0
	Player1Man  Square = 1
	Player2Man  Square = 2
	Player1King Square = 11
	Player2King Square = 22
)

func (s Square) valid() bool {
	switch s {
	case EmptySquare, Player1Man, Player2Man, Player1King, Player2King:
		return true
	}
	return false
}

func (s Square) IsEmpty() bool {
	return s == EmptySquare
}

func (s Square) Color() Color {
	switch s {
	case Player1Man, Player1King:
		return Player1
	case Player2Man, Player2King:
		return Player2
	}
	return NoColor
}

func (s Square) IsKing() bool {
	return s == Player1King || s == Player2King
}

func squareFor(c Color, king bool) Square {
	switch {
	case c == Player1 && king:
		return Player1King
	case c == Player1:
		return Player1Man
	case c == Player2 && king:
		return Player2King
	case c == Player2:
		return Player2Man
	}
	return EmptySquare
}

// Coord is a (row, col) position on the board.
type Coord struct {
	Row int
	Col int
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// InBounds reports whether the coordinate lies on the board.
func InBounds(row, col int) bool {
	return row >= 0 && row < Dim && col >= 0 && col < Dim
}

// A Piece is a snapshot of the occupant of a square. Its Row and Col always
// equal the square it was read from.
type Piece struct {
	Row   int
	Col   int
	Color Color
	King  bool
}

func (p Piece) Coord() Coord {
	return Coord{p.Row, p.Col}
}

func (p Piece) String() string {
	kind := "man"
	if p.King {
		kind = "king"
	}
	return fmt.Sprintf("%v %s@%d,%d", p.Color, kind, p.Row, p.Col)
}

var (
	ErrInvalidLayout = errors.New("invalid board layout")
	ErrNoPiece       = errors.New("no piece at square")
	ErrOutOfBounds   = errors.New("coordinate out of bounds")
)

// Board is the 8x8 grid. It is a value type: assigning a Board copies every
// square, so a copy never aliases the original.
type Board struct {
	squares [Dim][Dim]Square
}

// NewBoard returns the standard starting position: twelve men per side on
// the dark squares of the first three rows.
func NewBoard() Board {
	var b Board
	for row := 0; row < Dim; row++ {
		for col := 0; col < Dim; col++ {
			if col%2 != (row+1)%2 {
				continue
			}
			if row < 3 {
				b.squares[row][col] = Player2Man
			} else if row > 4 {
				b.squares[row][col] = Player1Man
			}
		}
	}
	return b
}

// GetSquare returns the raw cell value. The caller must stay in bounds.
func (b *Board) GetSquare(row, col int) Square {
	return b.squares[row][col]
}

// SetSquare overwrites a cell.
func (b *Board) SetSquare(row, col int, sq Square) {
	b.squares[row][col] = sq
}

// PieceAt returns the piece on the given square. ok is false when the square
// is empty or off the board.
func (b *Board) PieceAt(row, col int) (Piece, bool) {
	if !InBounds(row, col) {
		return Piece{}, false
	}
	sq := b.squares[row][col]
	if sq.IsEmpty() {
		return Piece{}, false
	}
	return Piece{Row: row, Col: col, Color: sq.Color(), King: sq.IsKing()}, true
}

// Pieces returns every piece of the given color in row-major order.
func (b *Board) Pieces(c Color) []Piece {
	pieces := make([]Piece, 0, 12)
	for row := 0; row < Dim; row++ {
		for col := 0; col < Dim; col++ {
			sq := b.squares[row][col]
			if sq.Color() == c {
				pieces = append(pieces, Piece{Row: row, Col: col, Color: c, King: sq.IsKing()})
			}
		}
	}
	return pieces
}

// Count returns the number of pieces and kings of the given color.
func (b *Board) Count(c Color) (pieces, kings int) {
	for row := 0; row < Dim; row++ {
		for col := 0; col < Dim; col++ {
			sq := b.squares[row][col]
			if sq.Color() != c {
				continue
			}
			pieces++
			if sq.IsKing() {
				kings++
			}
		}
	}
	return
}

// MovePiece moves p to (row, col) and promotes it if it lands on row 0 or
// row 7. The destination must be on the board. It returns the piece as it
// stands after the move.
func (b *Board) MovePiece(p Piece, row, col int) Piece {
	sq := b.squares[p.Row][p.Col]
	b.squares[p.Row][p.Col] = b.squares[row][col]
	b.squares[row][col] = sq
	p.Row, p.Col = row, col
	if row == 0 || row == Dim-1 {
		p.King = true
		b.squares[row][col] = squareFor(p.Color, true)
	}
	return p
}

// Promote makes the piece on the given square a king.
func (b *Board) Promote(row, col int) error {
	if !InBounds(row, col) {
		return ErrOutOfBounds
	}
	sq := b.squares[row][col]
	if sq.IsEmpty() {
		return fmt.Errorf("%w (%d,%d)", ErrNoPiece, row, col)
	}
	b.squares[row][col] = squareFor(sq.Color(), true)
	return nil
}

// RemovePieces clears the squares of the given pieces.
func (b *Board) RemovePieces(pieces []Piece) {
	for _, p := range pieces {
		b.squares[p.Row][p.Col] = EmptySquare
	}
}

// Hash fingerprints the position. It is used to detect repetitions, not as
// a transposition key.
func (b *Board) Hash() uint64 {
	var buf [Dim * Dim]byte
	for row := 0; row < Dim; row++ {
		for col := 0; col < Dim; col++ {
			buf[row*Dim+col] = byte(b.squares[row][col])
		}
	}
	return xxhash.Sum64(buf[:])
}
