// Package config loads the settings of the checkers binaries. Values come
// from, in increasing priority: defaults, an optional checkers.yaml file,
// CHECKERS_* environment variables, and command-line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/domino14/checkers/equity"
)

const (
	ConfigDebug                   = "debug"
	ConfigSearchDepth             = "search-depth"
	ConfigWeights                 = "weights"
	ConfigThreads                 = "threads"
	ConfigMaxPliesWithoutProgress = "max-plies-without-progress"
	ConfigAutoplayGames           = "autoplay-games"
	ConfigAutoplayLogfile         = "autoplay-logfile"
	ConfigOpeningRandomPlies      = "opening-random-plies"
	ConfigP1Weights               = "p1-weights"
	ConfigP2Weights               = "p2-weights"
	ConfigPositionsFile           = "positions-file"
	ConfigHistoryFile             = "history-file"
	ConfigConfigFile              = "config-file"
)

const envPrefix = "CHECKERS"

type Config struct {
	*viper.Viper
}

// DefaultConfig returns a config holding only the defaults.
func DefaultConfig() *Config {
	c := &Config{Viper: viper.New()}
	c.setDefaults()
	return c
}

func (c *Config) setDefaults() {
	c.SetDefault(ConfigDebug, false)
	c.SetDefault(ConfigSearchDepth, 3)
	c.SetDefault(ConfigWeights, equity.DefaultWeights().String())
	c.SetDefault(ConfigThreads, 1)
	c.SetDefault(ConfigMaxPliesWithoutProgress, 80)
	c.SetDefault(ConfigAutoplayGames, 100)
	c.SetDefault(ConfigAutoplayLogfile, "/tmp/checkers-autoplay.csv")
	c.SetDefault(ConfigOpeningRandomPlies, 2)
	c.SetDefault(ConfigP1Weights, "")
	c.SetDefault(ConfigP2Weights, "")
	c.SetDefault(ConfigPositionsFile, "")
	c.SetDefault(ConfigHistoryFile, "/tmp/checkers_history")
}

// Load parses args and layers the environment and the config file under
// them.
func (c *Config) Load(args []string) error {
	if c.Viper == nil {
		c.Viper = viper.New()
		c.setDefaults()
	}
	fs := pflag.NewFlagSet("checkers", pflag.ContinueOnError)
	fs.Bool(ConfigDebug, false, "debug logging on")
	fs.Int(ConfigSearchDepth, 3, "alpha-beta search depth in plies")
	fs.String(ConfigWeights, equity.DefaultWeights().String(),
		"evaluation weights: pieces,kings,moves,opportunities,king-hopefuls")
	fs.Int(ConfigThreads, 1, "number of goroutines for the root of the search")
	fs.Int(ConfigMaxPliesWithoutProgress, 80,
		"plies without a capture or man move before a game is drawn (0 disables)")
	fs.Int(ConfigAutoplayGames, 100, "number of games for autoplay")
	fs.String(ConfigAutoplayLogfile, "/tmp/checkers-autoplay.csv", "CSV log of autoplay games")
	fs.Int(ConfigOpeningRandomPlies, 2, "random plies at the start of each autoplay game")
	fs.String(ConfigP1Weights, "", "autoplay weights for player 1 (default: weights)")
	fs.String(ConfigP2Weights, "", "autoplay weights for player 2 (default: weights)")
	fs.String(ConfigPositionsFile, "", "YAML file of named positions")
	fs.String(ConfigHistoryFile, "/tmp/checkers_history", "shell history file")
	fs.String(ConfigConfigFile, "", "config file (default ./checkers.yaml)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := c.BindPFlags(fs); err != nil {
		return err
	}

	c.SetEnvPrefix(envPrefix)
	c.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.AutomaticEnv()

	if cf := c.GetString(ConfigConfigFile); cf != "" {
		if _, err := os.Stat(cf); err != nil {
			return fmt.Errorf("config file: %w", err)
		}
		c.SetConfigFile(cf)
	} else {
		c.SetConfigName("checkers")
		c.SetConfigType("yaml")
		c.AddConfigPath(".")
	}
	if err := c.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("reading config file: %w", err)
		}
	}
	return c.Validate()
}

// Validate checks values that are not just strings.
func (c *Config) Validate() error {
	if c.GetInt(ConfigSearchDepth) < 0 {
		return fmt.Errorf("%s must not be negative", ConfigSearchDepth)
	}
	if c.GetInt(ConfigThreads) < 1 {
		return fmt.Errorf("%s must be at least 1", ConfigThreads)
	}
	if _, err := c.Weights(); err != nil {
		return err
	}
	for _, key := range []string{ConfigP1Weights, ConfigP2Weights} {
		if _, err := c.PlayerWeights(key); err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
	}
	return nil
}

func (c *Config) SearchDepth() int {
	return c.GetInt(ConfigSearchDepth)
}

func (c *Config) Weights() (equity.Weights, error) {
	return equity.ParseWeights(c.GetString(ConfigWeights))
}

// PlayerWeights reads one of the per-player weight keys, falling back to
// the shared weights when it is unset.
func (c *Config) PlayerWeights(key string) (equity.Weights, error) {
	if s := c.GetString(key); s != "" {
		return equity.ParseWeights(s)
	}
	return c.Weights()
}

// SanitizedSettings returns the settings for logging.
func (c *Config) SanitizedSettings() map[string]any {
	return c.AllSettings()
}
