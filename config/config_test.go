package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/matryer/is"
)

func TestDefaults(t *testing.T) {
	is := is.New(t)
	c := DefaultConfig()
	is.NoErr(c.Validate())
	is.Equal(c.GetInt(ConfigWordLength), 5)
	is.Equal(c.GetString(ConfigGameType), GameTypeWordChallenge)
	is.Equal(c.GetString(ConfigWordleStrategy), "letter_frequency")
}

func TestLoadFlags(t *testing.T) {
	is := is.New(t)
	c := DefaultConfig()
	err := c.Load([]string{"-l", "3", "--game-type", "wordle", "-w", "keeper", "--seed", "17", "extra"})
	is.NoErr(err)
	is.Equal(c.GetInt(ConfigWordLength), 3)
	is.Equal(c.GetString(ConfigGameType), GameTypeWordle)
	is.Equal(c.GetString(ConfigWordleMode), ModeKeeper)
	is.Equal(c.GetInt64(ConfigSeed), int64(17))
	is.Equal(c.Args(), []string{"extra"})
}

func TestLoadRejectsOutOfRange(t *testing.T) {
	is := is.New(t)
	c := DefaultConfig()
	err := c.Load([]string{"-l", "101"})
	is.True(errors.Is(err, ErrInvalidConfig))

	c = DefaultConfig()
	err = c.Load([]string{"--wordle-strategy", "oracle"})
	is.True(errors.Is(err, ErrInvalidConfig))

	c = DefaultConfig()
	err = c.Load([]string{"-g", "0"})
	is.True(errors.Is(err, ErrInvalidConfig))
}

func TestLoadConfigFile(t *testing.T) {
	is := is.New(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "wordgraph.yaml")
	is.NoErr(os.WriteFile(path, []byte("repeats: 250\nthreads: 4\n"), 0o644))

	c := DefaultConfig()
	is.NoErr(c.Load([]string{"--config", path}))
	is.Equal(c.GetInt(ConfigRepeats), 250)
	is.Equal(c.GetInt(ConfigThreads), 4)
}

func TestEnvironment(t *testing.T) {
	is := is.New(t)
	t.Setenv("WORDGRAPH_MAX_GUESSES", "6")
	c := DefaultConfig()
	is.NoErr(c.Load(nil))
	is.Equal(c.GetInt(ConfigMaxGuesses), 6)
}
