// Package cdp reads and writes compact checkers diagram positions: a one-line
// text form of a board, in the spirit of FEN.
//
//	1o1o1o1o/o1o1o1o1/1o1o1o1o/8/8/x1x1x1x1/1x1x1x1x/x1x1x1x1 1
//
// Rows are separated by slashes, a digit is a run of empty squares, x/X is a
// player 1 man/king and o/O a player 2 man/king. The optional second field is
// the side to move.
package cdp

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/domino14/checkers/board"
)

// StartPosition is the CDP of the standard opening, player 1 to move.
const StartPosition = "1o1o1o1o/o1o1o1o1/1o1o1o1o/8/8/x1x1x1x1/1x1x1x1x/x1x1x1x1 1"

var ErrBadCDP = errors.New("malformed cdp")

// Position is a parsed CDP.
type Position struct {
	Board  board.Board
	OnTurn board.Color
}

// ParseCDP parses a CDP string. When the side to move is omitted, player 1 is
// assumed.
func ParseCDP(cdpstr string) (*Position, error) {
	fields := strings.Fields(cdpstr)
	if len(fields) < 1 || len(fields) > 2 {
		return nil, fmt.Errorf("%w: expected 1 or 2 space-separated fields, got %d",
			ErrBadCDP, len(fields))
	}
	rows := strings.Split(fields[0], "/")
	if len(rows) != board.Dim {
		return nil, fmt.Errorf("%w: expected %d rows, got %d", ErrBadCDP, board.Dim, len(rows))
	}
	layout := make(board.Layout, board.Dim)
	for i, row := range rows {
		cells, err := rowToSquares(row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		layout[i] = cells
	}
	b, err := board.FromLayout(layout)
	if err != nil {
		return nil, err
	}
	pos := &Position{Board: b, OnTurn: board.Player1}
	if len(fields) == 2 {
		switch fields[1] {
		case "1":
			pos.OnTurn = board.Player1
		case "2":
			pos.OnTurn = board.Player2
		default:
			return nil, fmt.Errorf("%w: side to move must be 1 or 2, got %q", ErrBadCDP, fields[1])
		}
	}
	log.Debug().Str("cdp", cdpstr).Str("on-turn", pos.OnTurn.String()).Msg("parsed-cdp")
	return pos, nil
}

func rowToSquares(row string) ([]int, error) {
	cells := make([]int, 0, board.Dim)
	for _, rn := range row {
		switch {
		case rn >= '1' && rn <= '8':
			n, _ := strconv.Atoi(string(rn))
			for idx := 0; idx < n; idx++ {
				cells = append(cells, int(board.EmptySquare))
			}
		case rn == 'x':
			cells = append(cells, int(board.Player1Man))
		case rn == 'X':
			cells = append(cells, int(board.Player1King))
		case rn == 'o':
			cells = append(cells, int(board.Player2Man))
		case rn == 'O':
			cells = append(cells, int(board.Player2King))
		default:
			return nil, fmt.Errorf("%w: unexpected character %q", ErrBadCDP, rn)
		}
	}
	if len(cells) != board.Dim {
		return nil, fmt.Errorf("%w: row %q describes %d squares", ErrBadCDP, row, len(cells))
	}
	return cells, nil
}

// ToCDP writes the board and side to move. Passing board.NoColor omits the
// side-to-move field.
func ToCDP(b *board.Board, onTurn board.Color) string {
	var sb strings.Builder
	for row := 0; row < board.Dim; row++ {
		if row > 0 {
			sb.WriteByte('/')
		}
		empties := 0
		for col := 0; col < board.Dim; col++ {
			sq := b.GetSquare(row, col)
			if sq.IsEmpty() {
				empties++
				continue
			}
			if empties > 0 {
				sb.WriteString(strconv.Itoa(empties))
				empties = 0
			}
			sb.WriteByte(sq.Symbol())
		}
		if empties > 0 {
			sb.WriteString(strconv.Itoa(empties))
		}
	}
	switch onTurn {
	case board.Player1:
		sb.WriteString(" 1")
	case board.Player2:
		sb.WriteString(" 2")
	}
	return sb.String()
}
