package lexicon

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/domino14/wordgraph/alphabet"
	"github.com/domino14/wordgraph/cache"
	"github.com/domino14/wordgraph/config"
)

const (
	CacheKeyPrefix = "lexicon:"
)

var (
	ErrDuplicateWord = errors.New("word occurs more than once")
	ErrEmptyList     = errors.New("word list is empty")
)

// Validate checks every word against the alphabet and length constraints
// and rejects duplicates. All problems are reported at once.
func Validate(words []string) error {
	if len(words) == 0 {
		return ErrEmptyList
	}
	var errs []error
	seen := make(map[string]int, len(words))
	for i, w := range words {
		if err := alphabet.ValidateWord(w); err != nil {
			errs = append(errs, err)
			continue
		}
		if first, ok := seen[w]; ok {
			errs = append(errs, fmt.Errorf("%s (#%d and #%d): %w", w, first, i, ErrDuplicateWord))
			continue
		}
		seen[w] = i
	}
	return errors.Join(errs...)
}

// ReadWordList reads whitespace-separated words. It does not validate them.
func ReadWordList(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	// Tokens are at most MaxWordLength long once validated, but the
	// scanner must get far enough to report oversized ones.
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	scanner.Split(bufio.ScanWords)
	var words []string
	for scanner.Scan() {
		words = append(words, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return words, nil
}

// Load reads, validates and indexes the dictionary file at path.
func Load(cfg *config.Config, path string, opts ...Option) (*Lexicon, error) {
	log.Debug().Msgf("Loading %v ...", path)
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	ts := time.Now()
	words, err := ReadWordList(file)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	opts = append([]Option{WithName(name)}, opts...)
	lex, err := New(words, opts...)
	if err != nil {
		return nil, fmt.Errorf("dictionary %s: %w", path, err)
	}
	log.Info().Str("lexicon", name).Int("words", lex.NumWords()).
		Int("graph-nodes", lex.NumGraphNodes()).
		Str("fingerprint", fmt.Sprintf("%016x", lex.Fingerprint())).
		Dur("elapsed", time.Since(ts)).Msg("loaded-lexicon")
	return lex, nil
}

// CacheLoadFunc is the function that loads a lexicon into the global cache.
func CacheLoadFunc(cfg *config.Config, key string) (any, error) {
	return Load(cfg, strings.TrimPrefix(key, CacheKeyPrefix))
}

// Get loads the lexicon for the dictionary at path from the cache, or from
// the file the first time.
func Get(cfg *config.Config, path string) (*Lexicon, error) {
	key := CacheKeyPrefix + path
	obj, err := cache.Load(cfg, key, CacheLoadFunc)
	if err != nil {
		return nil, err
	}
	ret, ok := obj.(*Lexicon)
	if !ok {
		return nil, errors.New("could not read lexicon from cache")
	}
	return ret, nil
}
