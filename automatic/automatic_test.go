package automatic

import (
	"bytes"
	"context"
	"encoding/csv"
	"os"
	"strings"
	"testing"

	"github.com/matryer/is"
	"github.com/rs/zerolog"

	"github.com/domino14/checkers/ai/player"
	"github.com/domino14/checkers/board"
	"github.com/domino14/checkers/equity"
)

func TestMain(m *testing.M) {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	os.Exit(m.Run())
}

func TestPlayGame(t *testing.T) {
	is := is.New(t)
	r := NewGameRunner(player.NewEnginePlayer(1, equity.DefaultWeights(), 1), &player.RandomPlayer{})
	res, err := r.PlayGame(context.Background())
	is.NoErr(err)
	is.True(res.Plies > 0)
	is.True(res.ID != "")
	if !res.Drawn {
		is.True(res.Winner == board.Player1 || res.Winner == board.Player2)
	}
}

func TestDeterministicGamesRepeat(t *testing.T) {
	is := is.New(t)
	r := NewGameRunner(player.NewEnginePlayer(1, equity.DefaultWeights(), 1),
		player.NewEnginePlayer(1, equity.DefaultWeights(), 1))
	a, err := r.PlayGame(context.Background())
	is.NoErr(err)
	b, err := r.PlayGame(context.Background())
	is.NoErr(err)
	is.Equal(a.Plies, b.Plies)
	is.True(a.Final.Equals(&b.Final))
	is.True(a.ID != b.ID)
}

func TestCompVsComp(t *testing.T) {
	is := is.New(t)
	r := NewGameRunner(player.NewEnginePlayer(2, equity.DefaultWeights(), 1), &player.RandomPlayer{})
	r.SetOpeningRandomPlies(2)
	var buf bytes.Buffer
	summary, err := CompVsComp(context.Background(), r, 3, &buf)
	is.NoErr(err)
	is.Equal(summary.Games, 3)
	is.Equal(summary.P1Wins+summary.P2Wins+summary.Draws, 3)
	is.Equal(CVCCounter.Value(), int64(3))
	is.Equal(IsPlaying.Value(), int64(0))

	records, err := csv.NewReader(bytes.NewReader(buf.Bytes())).ReadAll()
	is.NoErr(err)
	is.Equal(len(records), 4)
	is.Equal(records[0], LogHeader)

	analyzed, err := AnalyzeLog(&buf)
	is.NoErr(err)
	is.Equal(analyzed.Games, summary.Games)
	is.Equal(analyzed.P1Wins, summary.P1Wins)
	is.Equal(analyzed.Draws, summary.Draws)
	m1, s1 := analyzed.PlyStats()
	m2, s2 := summary.PlyStats()
	is.Equal(m1, m2)
	is.Equal(s1, s2)

	is.True(strings.Contains(summary.String(), "Games played: 3"))
	var hist bytes.Buffer
	is.NoErr(summary.Histogram(&hist, 40))
	is.True(hist.Len() > 0)
}

func TestCompVsCompCancelled(t *testing.T) {
	is := is.New(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	r := NewGameRunner(&player.RandomPlayer{}, &player.RandomPlayer{})
	var buf bytes.Buffer
	summary, err := CompVsComp(ctx, r, 10, &buf)
	is.NoErr(err)
	is.Equal(summary.Games, 0)
}

func TestAnalyzeLogRejectsGarbage(t *testing.T) {
	is := is.New(t)
	_, err := AnalyzeLog(strings.NewReader("gameID,winner,plies,p1pieces,p2pieces,final\nabc,nobody,3,1,1,8/8/8/8/8/8/8/8\n"))
	is.True(err != nil)
}

func TestSummary(t *testing.T) {
	is := is.New(t)
	s := &Summary{}
	s.Add(GameResult{Winner: board.Player2, Plies: 40})
	s.Add(GameResult{Winner: board.Player1, Plies: 60})
	s.Add(GameResult{Drawn: true, Plies: 80})
	is.Equal(s.P1Wins, 1)
	is.Equal(s.P2Wins, 1)
	is.Equal(s.Draws, 1)
	mean, stdev := s.PlyStats()
	is.Equal(mean, 60.0)
	is.Equal(stdev, 20.0)
}
