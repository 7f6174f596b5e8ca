package board

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
)

// Layout is the row-major layout descriptor: one code per cell, 0 empty,
// 1/2 men, 11/22 kings.
type Layout [][]int

// FromLayout builds a board from an explicit layout descriptor.
func FromLayout(l Layout) (Board, error) {
	var b Board
	if len(l) != Dim {
		return b, fmt.Errorf("%w: expected %d rows, got %d", ErrInvalidLayout, Dim, len(l))
	}
	for row := range l {
		if len(l[row]) != Dim {
			return b, fmt.Errorf("%w: row %d has %d columns, expected %d",
				ErrInvalidLayout, row, len(l[row]), Dim)
		}
		for col, code := range l[row] {
			sq := Square(code)
			if code < 0 || code > 255 || !sq.valid() {
				return b, fmt.Errorf("%w: unknown code %d at (%d,%d)",
					ErrInvalidLayout, code, row, col)
			}
			b.squares[row][col] = sq
		}
	}
	return b, nil
}

// MustFromLayout is FromLayout for fixtures; it panics on a bad layout.
func MustFromLayout(l Layout) Board {
	b, err := FromLayout(l)
	if err != nil {
		panic(err)
	}
	return b
}

// Layout converts the board back into its layout descriptor.
func (b *Board) Layout() Layout {
	l := make(Layout, Dim)
	for row := 0; row < Dim; row++ {
		l[row] = make([]int, Dim)
		for col := 0; col < Dim; col++ {
			l[row][col] = int(b.squares[row][col])
		}
	}
	return l
}

// Equals checks the boards for equality: same color and king flag at every
// square.
func (b *Board) Equals(b2 *Board) bool {
	for row := 0; row < Dim; row++ {
		for col := 0; col < Dim; col++ {
			if b.squares[row][col] != b2.squares[row][col] {
				log.Trace().Int("row", row).Int("col", col).Msg("boards-differ")
				return false
			}
		}
	}
	return true
}

// Symbol is the single character used for a square in text output.
func (s Square) Symbol() byte {
	switch s {
	case Player1Man:
		return 'x'
	case Player1King:
		return 'X'
	case Player2Man:
		return 'o'
	case Player2King:
		return 'O'
	}
	return '.'
}

// ToDisplayText renders the board. Highlighted squares (typically the
// destinations of a selected piece) are drawn with a '*'.
func (b *Board) ToDisplayText(highlights ...Coord) string {
	marked := map[Coord]bool{}
	for _, h := range highlights {
		marked[h] = true
	}
	var str strings.Builder
	str.WriteString("   ")
	for i := 0; i < Dim; i++ {
		fmt.Fprintf(&str, "%d ", i)
	}
	str.WriteString("\n")
	str.WriteString("   " + strings.Repeat("-", Dim*2) + "\n")
	for row := 0; row < Dim; row++ {
		fmt.Fprintf(&str, "%2d|", row)
		for col := 0; col < Dim; col++ {
			ch := b.squares[row][col].Symbol()
			if marked[Coord{row, col}] {
				ch = '*'
			}
			str.WriteByte(ch)
			str.WriteByte(' ')
		}
		str.WriteString("|\n")
	}
	str.WriteString("   " + strings.Repeat("-", Dim*2) + "\n")
	return "\n" + str.String()
}

func (b Board) String() string {
	return b.ToDisplayText()
}
