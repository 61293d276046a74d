package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/domino14/wordgraph/alphabet"
)

const (
	ConfigFile           = "config"
	ConfigDictionary     = "dictionary"
	ConfigWordLength     = "word-length"
	ConfigRepeats        = "repeats"
	ConfigMaxGuesses     = "max-guesses"
	ConfigSeed           = "seed"
	ConfigGameType       = "game-type"
	ConfigChallengeMode  = "challenge-mode"
	ConfigWordleMode     = "wordle-mode"
	ConfigWordleStrategy = "wordle-strategy"
	ConfigThreads        = "threads"
	ConfigReportFormat   = "report-format"
	ConfigDebug          = "debug"
	ConfigCPUProfile     = "cpu-profile"
	ConfigHistoryFile    = "history-file"
)

const (
	GameTypeWordChallenge = "word_challenge"
	GameTypeWordle        = "wordle"

	ModeAuto        = "auto"
	ModeInteractive = "interactive"
	ModeKeeper      = "keeper"
	ModeGuesser     = "guesser"
)

var (
	ErrInvalidConfig = errors.New("invalid configuration")

	allowedGameTypes      = []string{GameTypeWordChallenge, GameTypeWordle}
	allowedChallengeModes = []string{ModeAuto, ModeInteractive}
	allowedWordleModes    = []string{ModeAuto, ModeKeeper, ModeGuesser}
	allowedStrategies     = []string{"random_candidate", "letter_frequency"}
	allowedReportFormats  = []string{"text", "yaml"}
)

// Config holds every setting of the program. Values come from, in order of
// precedence, command-line flags, WORDGRAPH_* environment variables, an
// optional config file, and the defaults below.
type Config struct {
	*viper.Viper
	args []string
}

// DefaultConfig returns a config that only has the default values set.
func DefaultConfig() *Config {
	c := &Config{Viper: viper.New()}
	c.SetDefault(ConfigDictionary, "./data/dictionary_9030.txt")
	c.SetDefault(ConfigWordLength, 5)
	c.SetDefault(ConfigRepeats, 10)
	c.SetDefault(ConfigMaxGuesses, 10)
	c.SetDefault(ConfigSeed, 0)
	c.SetDefault(ConfigGameType, GameTypeWordChallenge)
	c.SetDefault(ConfigChallengeMode, ModeAuto)
	c.SetDefault(ConfigWordleMode, ModeAuto)
	c.SetDefault(ConfigWordleStrategy, "letter_frequency")
	c.SetDefault(ConfigThreads, 1)
	c.SetDefault(ConfigReportFormat, "text")
	c.SetDefault(ConfigDebug, false)
	c.SetDefault(ConfigHistoryFile, "/tmp/wordgraph_history.tmp")
	return c
}

func flagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("wordgraph", pflag.ContinueOnError)
	fs.String(ConfigFile, "", "path to a config file (yaml, toml or json)")
	fs.StringP(ConfigDictionary, "f", "./data/dictionary_9030.txt", "path to dictionary file")
	fs.IntP(ConfigWordLength, "l", 5, "word length to be used in game")
	fs.IntP(ConfigRepeats, "r", 10, "number of times automatic mode repeats game")
	fs.IntP(ConfigMaxGuesses, "g", 10, "maximal number of guesses in wordle game")
	fs.Int64P(ConfigSeed, "s", 0, "seed for random number generation")
	fs.StringP(ConfigGameType, "t", GameTypeWordChallenge, "select type of game: "+strings.Join(allowedGameTypes, ", "))
	fs.StringP(ConfigChallengeMode, "c", ModeAuto, "game mode in word challenge game: "+strings.Join(allowedChallengeModes, ", "))
	fs.StringP(ConfigWordleMode, "w", ModeAuto, "game mode in wordle game: "+strings.Join(allowedWordleModes, ", "))
	fs.String(ConfigWordleStrategy, "letter_frequency", "strategy of the guesser in wordle: "+strings.Join(allowedStrategies, ", "))
	fs.Int(ConfigThreads, 1, "number of worker threads in automatic mode")
	fs.String(ConfigReportFormat, "text", "format of automatic mode reports: "+strings.Join(allowedReportFormats, ", "))
	fs.Bool(ConfigDebug, false, "turn on debug logging")
	fs.String(ConfigCPUProfile, "", "write a CPU profile to this file")
	fs.String(ConfigHistoryFile, "/tmp/wordgraph_history.tmp", "readline history file")
	return fs
}

// Load parses the command-line arguments and merges them with the
// environment and config file. Arguments that are not flags are kept and
// can be retrieved with Args.
func (c *Config) Load(args []string) error {
	fs := flagSet()
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := c.BindPFlags(fs); err != nil {
		return err
	}
	c.args = fs.Args()

	c.SetEnvPrefix("wordgraph")
	c.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.AutomaticEnv()

	if cfgFile := c.GetString(ConfigFile); cfgFile != "" {
		c.SetConfigFile(cfgFile)
		if err := c.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config file %s: %w", cfgFile, err)
		}
	}
	return c.Validate()
}

// Args returns the non-flag arguments given to Load.
func (c *Config) Args() []string {
	return c.args
}

// Validate checks that every setting is in range.
func (c *Config) Validate() error {
	if l := c.GetInt(ConfigWordLength); l < 1 || l > alphabet.MaxWordLength {
		return fmt.Errorf("%w: %s must be in [1, %d], got %d", ErrInvalidConfig,
			ConfigWordLength, alphabet.MaxWordLength, l)
	}
	for _, k := range []string{ConfigRepeats, ConfigMaxGuesses, ConfigThreads} {
		if v := c.GetInt(k); v < 1 {
			return fmt.Errorf("%w: %s must be at least 1, got %d", ErrInvalidConfig, k, v)
		}
	}
	members := []struct {
		key     string
		allowed []string
	}{
		{ConfigGameType, allowedGameTypes},
		{ConfigChallengeMode, allowedChallengeModes},
		{ConfigWordleMode, allowedWordleModes},
		{ConfigWordleStrategy, allowedStrategies},
		{ConfigReportFormat, allowedReportFormats},
	}
	for _, m := range members {
		if v := c.GetString(m.key); !slices.Contains(m.allowed, v) {
			return fmt.Errorf("%w: %s must be one of %v, got %q", ErrInvalidConfig,
				m.key, m.allowed, v)
		}
	}
	return nil
}

// SanitizedSettings returns the settings for display purposes.
func (c *Config) SanitizedSettings() map[string]any {
	return c.AllSettings()
}
