package automatic

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/domino14/checkers/board"
	"github.com/domino14/checkers/cdp"
)

// AnalyzeLogFile reads a game log written by CompVsComp and summarizes it.
func AnalyzeLogFile(filepath string) (*Summary, error) {
	file, err := os.Open(filepath)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return AnalyzeLog(file)
}

func AnalyzeLog(rd io.Reader) (*Summary, error) {
	r := csv.NewReader(rd)
	r.FieldsPerRecord = len(LogHeader)
	summary := &Summary{}
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if record[0] == LogHeader[0] {
			continue
		}
		plies, err := strconv.Atoi(record[2])
		if err != nil {
			return nil, fmt.Errorf("game %s: %w", record[0], err)
		}
		res := GameResult{ID: record[0], Plies: plies}
		switch record[1] {
		case "draw":
			res.Drawn = true
		case board.Player1.String():
			res.Winner = board.Player1
		case board.Player2.String():
			res.Winner = board.Player2
		default:
			return nil, fmt.Errorf("game %s: unknown winner %q", record[0], record[1])
		}
		pos, err := cdp.ParseCDP(record[5])
		if err != nil {
			return nil, fmt.Errorf("game %s: %w", record[0], err)
		}
		res.Final = pos.Board
		summary.Add(res)
	}
	return summary, nil
}
