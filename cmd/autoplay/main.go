// autoplay pits two engines against each other and summarizes the results.
// Player 1 plays with --p1-weights and player 2 with --p2-weights; either
// falls back to --weights.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/domino14/checkers/ai/player"
	"github.com/domino14/checkers/automatic"
	"github.com/domino14/checkers/config"
)

const histogramWidth = 60

func setupLogging(debug bool) {
	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	output.FormatLevel = func(i interface{}) string {
		return strings.ToUpper(fmt.Sprintf("| %-6s|", i))
	}
	output.FormatMessage = func(i interface{}) string {
		return fmt.Sprintf("%s", i)
	}
	output.FormatFieldName = func(i interface{}) string {
		return fmt.Sprintf("%s:", i)
	}
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = zerolog.New(output).Level(level).With().Timestamp().Logger()
}

func main() {
	cfg := config.DefaultConfig()
	if err := cfg.Load(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "error loading config:", err)
		os.Exit(1)
	}
	setupLogging(cfg.GetBool(config.ConfigDebug))

	// Load has already validated both.
	w1, _ := cfg.PlayerWeights(config.ConfigP1Weights)
	w2, _ := cfg.PlayerWeights(config.ConfigP2Weights)

	depth := cfg.SearchDepth()
	threads := cfg.GetInt(config.ConfigThreads)
	p1 := player.NewEnginePlayer(depth, w1, threads)
	p2 := player.NewEnginePlayer(depth, w2, threads)
	r := automatic.NewGameRunner(p1, p2)
	r.SetOpeningRandomPlies(cfg.GetInt(config.ConfigOpeningRandomPlies))
	r.SetMaxQuietPlies(cfg.GetInt(config.ConfigMaxPliesWithoutProgress))

	logfile := cfg.GetString(config.ConfigAutoplayLogfile)
	f, err := os.Create(logfile)
	if err != nil {
		log.Fatal().Err(err).Msg("could-not-create-logfile")
	}
	defer f.Close()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	numGames := cfg.GetInt(config.ConfigAutoplayGames)
	log.Info().Int("games", numGames).Str("p1", p1.Name()).Str("p2", p2.Name()).
		Str("logfile", logfile).Msg("autoplay-start")
	start := time.Now()
	summary, err := automatic.CompVsComp(ctx, r, numGames, f)
	if err != nil {
		log.Error().Err(err).Msg("autoplay-failed")
		if summary == nil {
			os.Exit(1)
		}
	}
	log.Info().Dur("elapsed", time.Since(start)).Msg("autoplay-done")

	fmt.Printf("%s vs %s\n", p1.Name(), p2.Name())
	fmt.Print(summary.String())
	if err := summary.Histogram(os.Stdout, histogramWidth); err != nil {
		log.Error().Err(err).Msg("histogram")
	}
}
