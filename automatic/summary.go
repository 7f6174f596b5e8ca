package automatic

import (
	"fmt"
	"io"
	"strings"

	"github.com/aybabtme/uniplot/histogram"
	"github.com/samber/lo"
	"gonum.org/v1/gonum/stat"

	"github.com/domino14/checkers/board"
	"github.com/domino14/checkers/stats"
)

const histogramBins = 10

// Summary aggregates game results.
type Summary struct {
	Games  int
	P1Wins int
	P2Wins int
	Draws  int
	plies  []float64
}

func (s *Summary) Add(res GameResult) {
	s.Games++
	switch {
	case res.Drawn:
		s.Draws++
	case res.Winner == board.Player1:
		s.P1Wins++
	case res.Winner == board.Player2:
		s.P2Wins++
	}
	s.plies = append(s.plies, float64(res.Plies))
}

// PlyStats returns the mean and standard deviation of game lengths.
func (s *Summary) PlyStats() (mean, stdev float64) {
	if len(s.plies) == 0 {
		return 0, 0
	}
	return stat.MeanStdDev(s.plies, nil)
}

func (s *Summary) String() string {
	var ss strings.Builder
	mean, stdev := s.PlyStats()
	fmt.Fprintf(&ss, "Games played: %d\n", s.Games)
	fmt.Fprintf(&ss, "%-10s%-8s%-10s\n", "Result", "Count", "%")
	for _, row := range []struct {
		name  string
		count int
	}{{"player1", s.P1Wins}, {"player2", s.P2Wins}, {"draw", s.Draws}} {
		pct := 0.0
		if s.Games > 0 {
			pct = 100 * float64(row.count) / float64(s.Games)
		}
		fmt.Fprintf(&ss, "%-10s%-8d%-10.2f\n", row.name, row.count, pct)
	}
	rate, hw := stats.ScoreInterval(s.P2Wins, s.Draws, s.Games, 95)
	fmt.Fprintf(&ss, "player2 score rate: %.3f ± %.3f (95%%)\n", rate, hw)
	fmt.Fprintf(&ss, "Plies: mean %.2f  stdev %.2f\n", mean, stdev)
	return ss.String()
}

// Histogram draws the distribution of game lengths.
func (s *Summary) Histogram(w io.Writer, width int) error {
	if len(s.plies) == 0 {
		return nil
	}
	if lo.Min(s.plies) == lo.Max(s.plies) {
		_, err := fmt.Fprintf(w, "%.0f plies: %d games\n", s.plies[0], len(s.plies))
		return err
	}
	h := histogram.Hist(histogramBins, s.plies)
	return histogram.Fprint(w, h, histogram.Linear(width))
}
