package automatic

// Data collection for automatic game. Allow computer vs computer games, etc.

import (
	"context"
	"encoding/csv"
	"errors"
	"expvar"
	"io"

	"github.com/rs/zerolog/log"
)

var (
	CVCCounter *expvar.Int
	IsPlaying  *expvar.Int
)

func init() {
	CVCCounter = expvar.NewInt("cvcCounter")
	IsPlaying = expvar.NewInt("isPlaying")
}

// LogHeader is the first line of the game log.
var LogHeader = []string{"gameID", "winner", "plies", "p1pieces", "p2pieces", "final"}

// CompVsComp plays numGames games one after the other and writes one CSV
// line per game to w. A cancelled context stops after the current game; the
// summary then covers the games that were finished.
func CompVsComp(ctx context.Context, r *GameRunner, numGames int, w io.Writer) (*Summary, error) {
	if IsPlaying.Value() > 0 {
		return nil, errors.New("games are already being played, please wait till complete")
	}
	IsPlaying.Add(1)
	defer IsPlaying.Add(-1)
	CVCCounter.Set(0)

	cw := csv.NewWriter(w)
	if err := cw.Write(LogHeader); err != nil {
		return nil, err
	}
	summary := &Summary{}
	log.Debug().Int("games", numGames).Msg("starting-comp-vs-comp")

	for i := 0; i < numGames; i++ {
		if ctx.Err() != nil {
			log.Info().Msg("Got stop signal, exiting soon...")
			break
		}
		res, err := r.PlayGame(ctx)
		if err != nil {
			cw.Flush()
			return summary, err
		}
		summary.Add(res)
		if err := cw.Write(res.CSVRecord()); err != nil {
			return summary, err
		}
		CVCCounter.Add(1)
		if (i+1)%100 == 0 {
			log.Info().Int("games", i+1).Msg("games-played")
		}
	}
	cw.Flush()
	return summary, cw.Error()
}
