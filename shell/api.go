package shell

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/domino14/wordgraph/alphabet"
	"github.com/domino14/wordgraph/automatic"
	"github.com/domino14/wordgraph/config"
	"github.com/domino14/wordgraph/lexicon"
	"github.com/domino14/wordgraph/rng"
	"github.com/domino14/wordgraph/wordle"
)

// settable lists the config keys that can be changed during a session.
var settable = []string{
	config.ConfigWordLength, config.ConfigMaxGuesses, config.ConfigRepeats,
	config.ConfigWordleStrategy, config.ConfigSeed, config.ConfigThreads,
	config.ConfigReportFormat,
}

func (sc *ShellController) requireLexicon() error {
	if sc.lex == nil {
		return errNoLexicon
	}
	return nil
}

func (sc *ShellController) load(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) != 1 {
		return nil, errors.New("usage: load <dictionary path>")
	}
	lex, err := lexicon.Get(sc.cfg, cmd.args[0])
	if err != nil {
		return nil, err
	}
	sc.cfg.Set(config.ConfigDictionary, cmd.args[0])
	sc.SetLexicon(lex)
	return msg(fmt.Sprintf("loaded %s with %d words", lex.Name(), lex.NumWords())), nil
}

func (sc *ShellController) set(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) != 2 {
		return nil, errors.New("usage: set <" + strings.Join(settable, "|") + "> <value>")
	}
	key, value := cmd.args[0], cmd.args[1]
	if !slices.Contains(settable, key) {
		return nil, fmt.Errorf("%s cannot be set; settable: %s", key, strings.Join(settable, ", "))
	}
	old := sc.cfg.Get(key)
	sc.cfg.Set(key, value)
	if err := sc.cfg.Validate(); err != nil {
		sc.cfg.Set(key, old)
		return nil, err
	}
	switch key {
	case config.ConfigSeed:
		seed, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			sc.cfg.Set(key, old)
			return nil, err
		}
		sc.gen = rng.New(seed)
		sc.solver = nil
	case config.ConfigWordleStrategy:
		sc.solver = nil
	}
	return msg(key + " set to " + value), nil
}

func (sc *ShellController) settings(cmd *shellcmd) (*Response, error) {
	all := sc.cfg.SanitizedSettings()
	keys := lo.Keys(all)
	slices.Sort(keys)
	var sb strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&sb, "%-16s %v\n", k, all[k])
	}
	return msg(strings.TrimRight(sb.String(), "\n")), nil
}

// words lists every word buildable from the given letters.
func (sc *ShellController) words(cmd *shellcmd) (*Response, error) {
	if err := sc.requireLexicon(); err != nil {
		return nil, err
	}
	if len(cmd.args) != 1 {
		return nil, errors.New("usage: words <letters>")
	}
	found, err := sc.engine.PossibleWordStrings(cmd.args[0])
	if err != nil {
		return nil, err
	}
	return msg(formatByLength(found)), nil
}

func (sc *ShellController) check(cmd *shellcmd) (*Response, error) {
	if err := sc.requireLexicon(); err != nil {
		return nil, err
	}
	if len(cmd.args) == 0 {
		return nil, errors.New("usage: check <word> [<word> ...]")
	}
	var sb strings.Builder
	for _, w := range cmd.args {
		verdict := "not in the dictionary"
		if sc.lex.ContainsWord(w) {
			verdict = "valid"
		}
		fmt.Fprintf(&sb, "%s: %s\n", w, verdict)
	}
	return msg(strings.TrimRight(sb.String(), "\n")), nil
}

// formatByLength prints words grouped by length, shortest first.
func formatByLength(words []string) string {
	if len(words) == 0 {
		return "no words found"
	}
	groups := lo.GroupBy(words, func(w string) int { return len(w) })
	lengths := lo.Keys(groups)
	slices.Sort(lengths)
	var sb strings.Builder
	for _, l := range lengths {
		ws := groups[l]
		slices.Sort(ws)
		fmt.Fprintf(&sb, "%2d: %s\n", l, strings.Join(ws, " "))
	}
	fmt.Fprintf(&sb, "%d words", len(words))
	return sb.String()
}

func (sc *ShellController) auto(cmd *shellcmd) (*Response, error) {
	if err := sc.requireLexicon(); err != nil {
		return nil, err
	}
	if len(cmd.args) != 1 {
		return nil, errors.New("usage: auto <challenge|wordle> [-repeats n] [-threads n] [-strategy s] [-format text|yaml]")
	}
	opts, err := automatic.OptionsFromConfig(sc.cfg)
	if err != nil {
		return nil, err
	}
	if opts.Repeats, err = cmd.options.IntDefault("repeats", opts.Repeats); err != nil {
		return nil, err
	}
	if opts.Threads, err = cmd.options.IntDefault("threads", opts.Threads); err != nil {
		return nil, err
	}
	if s := cmd.options.String("strategy"); s != "" {
		if opts.Strategy, err = wordle.ParseStrategy(s); err != nil {
			return nil, err
		}
	}
	format := sc.cfg.GetString(config.ConfigReportFormat)
	if f := cmd.options.String("format"); f != "" {
		format = f
	}

	var report automatic.Report
	switch cmd.args[0] {
	case "challenge":
		report, err = automatic.RunWordChallenge(sc.ctx, sc.lex, opts)
	case "wordle":
		report, err = automatic.RunWordle(sc.ctx, sc.lex, opts)
	default:
		return nil, fmt.Errorf("unknown automatic game %q", cmd.args[0])
	}
	if err != nil {
		return nil, err
	}
	var sb strings.Builder
	if err := automatic.Write(&sb, report, format); err != nil {
		return nil, err
	}
	return msg(strings.TrimRight(sb.String(), "\n")), nil
}

// stats shows the size of the index and the shape of the trie.
func (sc *ShellController) stats(cmd *shellcmd) (*Response, error) {
	if err := sc.requireLexicon(); err != nil {
		return nil, err
	}
	p := message.NewPrinter(language.English)
	var sb strings.Builder
	p.Fprintf(&sb, "lexicon:      %s\n", sc.lex.Name())
	p.Fprintf(&sb, "fingerprint:  %016x\n", sc.lex.Fingerprint())
	p.Fprintf(&sb, "words:        %d\n", sc.lex.NumWords())
	p.Fprintf(&sb, "trie nodes:   %d\n", sc.lex.TrieNodes())
	p.Fprintf(&sb, "graph nodes:  %d (%s edges)\n", sc.lex.NumGraphNodes(), sc.lex.EdgeKind())
	p.Fprintf(&sb, "\n%-8s %10s %8s\n", "length", "words", "repeat")
	for n := 1; n <= sc.lex.MaxLength(); n++ {
		if c := sc.lex.CountWordsOfLength(n); c > 0 {
			p.Fprintf(&sb, "%-8d %10d %8s\n", n, c, mostRepeated(sc.lex.MaxOccurrence(n)))
		}
	}
	hist := sc.lex.DegreeHistogram()
	degrees := lo.Keys(hist)
	slices.Sort(degrees)
	p.Fprintf(&sb, "\n%-8s %10s\n", "degree", "nodes")
	for _, d := range degrees {
		p.Fprintf(&sb, "%-8d %10d\n", d, hist[d])
	}
	return msg(strings.TrimRight(sb.String(), "\n")), nil
}

// mostRepeated names the letter occurring most often within a single word,
// as "e:3". Ties go to the earlier letter.
func mostRepeated(mo alphabet.LetterCounts) string {
	best := 0
	for c := range mo {
		if mo[c] > mo[best] {
			best = c
		}
	}
	return fmt.Sprintf("%c:%d", alphabet.MachineLetter(best).Byte(), mo[best])
}

func (sc *ShellController) bestStart(cmd *shellcmd) (*Response, error) {
	if err := sc.requireLexicon(); err != nil {
		return nil, err
	}
	top, err := cmd.options.IntDefault("top", 10)
	if err != nil {
		return nil, err
	}
	pool, err := cmd.options.IntDefault("pool", 50)
	if err != nil {
		return nil, err
	}
	samples, err := cmd.options.IntDefault("samples", 100)
	if err != nil {
		return nil, err
	}
	n := sc.wordLength()
	starts := wordle.TopScoring(sc.lex, n, pool)
	if len(starts) == 0 {
		return nil, fmt.Errorf("length %d: %w", n, wordle.ErrNoWordsOfLength)
	}
	ranked, err := wordle.BestStartWords(sc.lex, starts, samples, sc.gen)
	if err != nil {
		return nil, err
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "%-12s %s\n", "start word", "mean candidates left")
	for _, sw := range ranked[:min(top, len(ranked))] {
		fmt.Fprintf(&sb, "%-12s %.2f\n", sw.Word, sw.MeanCandidates)
	}
	return msg(strings.TrimRight(sb.String(), "\n")), nil
}
