package shell

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/domino14/wordgraph/alphabet"
	"github.com/domino14/wordgraph/config"
	"github.com/domino14/wordgraph/hint"
	"github.com/domino14/wordgraph/lexicon"
	"github.com/domino14/wordgraph/rng"
	"github.com/domino14/wordgraph/wordle"
)

// challengeRound is an interactive word challenge: find as many words as
// possible using the letters of a hidden word.
type challengeRound struct {
	letters  string
	possible []string
	found    map[string]bool
}

func scramble(gen *rng.Generator, word string) string {
	mw, err := alphabet.ToMachineWord(word)
	if err != nil {
		return word
	}
	gen.Shuffle(len(mw), func(i, j int) { mw[i], mw[j] = mw[j], mw[i] })
	return mw.UserVisible()
}

func (sc *ShellController) startChallenge(cmd *shellcmd) (*Response, error) {
	if err := sc.requireLexicon(); err != nil {
		return nil, err
	}
	var letters string
	if len(cmd.args) > 0 {
		letters = cmd.args[0]
		if err := alphabet.ValidateWord(letters); err != nil {
			return nil, err
		}
	} else {
		n := sc.wordLength()
		o, ok := lexicon.NewSampler(sc.lex, sc.gen).RandomWordOfLength(n)
		if !ok {
			return nil, fmt.Errorf("length %d: %w", n, wordle.ErrNoWordsOfLength)
		}
		letters = scramble(sc.gen, sc.lex.Word(o))
	}
	possible, err := sc.engine.PossibleWordStrings(letters)
	if err != nil {
		return nil, err
	}
	sc.challenge = &challengeRound{letters: letters, possible: possible, found: map[string]bool{}}
	sc.setMode(ChallengeMode)
	return msg(fmt.Sprintf("letters: %s\n%d words can be built. Type words, 'solve' to see them all, 'quit' to stop.",
		strings.ToUpper(letters), len(possible))), nil
}

func (sc *ShellController) challengeModeSwitch(line string) (*Response, error) {
	cr := sc.challenge
	switch line {
	case "quit", "q", "solve", "?":
		var missing []string
		for _, w := range cr.possible {
			if !cr.found[w] {
				missing = append(missing, w)
			}
		}
		sc.setMode(StandardMode)
		sc.challenge = nil
		return msg(fmt.Sprintf("you found %d of %d words. Missing:\n%s",
			len(cr.found), len(cr.possible), formatByLength(missing))), nil
	case "letters":
		return msg(strings.ToUpper(cr.letters)), nil
	}
	word := strings.ToLower(line)
	if err := alphabet.ValidateWord(word); err != nil {
		return nil, err
	}
	available := alphabet.CountsFromString(cr.letters)
	need := alphabet.CountsFromString(word)
	switch {
	case !available.Covers(&need):
		return nil, fmt.Errorf("%s cannot be built from %s", word, strings.ToUpper(cr.letters))
	case !sc.lex.ContainsWord(word):
		return nil, fmt.Errorf("%s: %w", word, wordle.ErrNotInDictionary)
	case cr.found[word]:
		return msg(word + " was already found"), nil
	}
	cr.found[word] = true
	return msg(fmt.Sprintf("%s is valid (%d/%d)", word, len(cr.found), len(cr.possible))), nil
}

func (sc *ShellController) maxGuesses() int {
	return sc.cfg.GetInt(config.ConfigMaxGuesses)
}

// startGuesser lets the user guess a secret word kept by the program.
func (sc *ShellController) startGuesser(cmd *shellcmd) (*Response, error) {
	if err := sc.requireLexicon(); err != nil {
		return nil, err
	}
	n := sc.wordLength()
	if err := sc.keeper.ChooseSecret(sc.gen, n); err != nil {
		return nil, err
	}
	sc.numGuesses = 0
	sc.setMode(GuesserMode)
	return msg(fmt.Sprintf("I am thinking of a word with %d letters. You have %d guesses; 'giveup' reveals it.",
		n, sc.maxGuesses())), nil
}

func (sc *ShellController) guesserModeSwitch(line string) (*Response, error) {
	secret := sc.keeper.Secret()
	if line == "giveup" || line == "quit" {
		sc.setMode(StandardMode)
		return msg("the secret word was " + secret), nil
	}
	guess := strings.ToLower(line)
	h, err := sc.keeper.Check(guess)
	switch {
	case errors.Is(err, alphabet.ErrLengthMismatch):
		return nil, fmt.Errorf("the guess must have %d letters", len(secret))
	case err != nil:
		return nil, err
	}
	sc.numGuesses++
	out := fmt.Sprintf("%d: %s", sc.numGuesses, h.Colorize(guess))
	if h.IsSolved() {
		sc.setMode(StandardMode)
		return msg(fmt.Sprintf("%s\nfound secret word after %d guesses", out, sc.numGuesses)), nil
	}
	if sc.numGuesses >= sc.maxGuesses() {
		sc.setMode(StandardMode)
		return msg(fmt.Sprintf("%s\nfailed to find word after %d guesses; it was %s", out, sc.numGuesses, secret)), nil
	}
	return msg(out), nil
}

func (sc *ShellController) getSolver() (*wordle.Solver, error) {
	if sc.solver != nil {
		return sc.solver, nil
	}
	strategy, err := wordle.ParseStrategy(sc.cfg.GetString(config.ConfigWordleStrategy))
	if err != nil {
		return nil, err
	}
	sc.solver = wordle.NewSolver(sc.lex, sc.gen, strategy)
	return sc.solver, nil
}

// startKeeper lets the program guess a word the user keeps secret. The
// user answers every guess with a hint of digits.
func (sc *ShellController) startKeeper(cmd *shellcmd) (*Response, error) {
	if err := sc.requireLexicon(); err != nil {
		return nil, err
	}
	s, err := sc.getSolver()
	if err != nil {
		return nil, err
	}
	n := sc.wordLength()
	if err := s.NewWord(n); err != nil {
		return nil, err
	}
	sc.numGuesses = 0
	sc.setMode(KeeperMode)
	guess, err := sc.nextGuess()
	if err != nil {
		sc.setMode(StandardMode)
		return nil, err
	}
	return msg(fmt.Sprintf("Think of a word with %d letters. Answer each guess with %d digits: "+
		"0 absent, 1 wrong position, 2 correct. 'quit' stops.\n%s", n, n, guess)), nil
}

func (sc *ShellController) nextGuess() (string, error) {
	guess, err := sc.solver.MakeGuess()
	if err != nil {
		return "", err
	}
	sc.numGuesses++
	sc.lastGuess = guess
	out := fmt.Sprintf("guess %d: %s (%d candidates)", sc.numGuesses, strings.ToUpper(guess), sc.solver.CandidateCount())
	if sc.solver.State() == wordle.StateExhausted {
		out += "\nno word in the dictionary matches your hints; guessing at random"
	} else if c := sc.solver.Candidates(); len(c) > 0 && len(c) <= 20 {
		c = slices.Clone(c)
		slices.Sort(c)
		out += "\ncandidates: " + strings.Join(c, " ")
	}
	return out, nil
}

func (sc *ShellController) keeperModeSwitch(line string) (*Response, error) {
	if line == "quit" {
		sc.setMode(StandardMode)
		return msg("stopped guessing"), nil
	}
	n := len(sc.lastGuess)
	h, err := hint.Parse(line)
	if err != nil || len(h) != n {
		return nil, fmt.Errorf("%q is not a hint; enter %d digits of 0 (absent), 1 (wrong position), 2 (correct)", line, n)
	}
	if h.IsSolved() {
		sc.setMode(StandardMode)
		return msg(fmt.Sprintf("found secret word after %d guesses", sc.numGuesses)), nil
	}
	if sc.numGuesses >= sc.maxGuesses() {
		sc.setMode(StandardMode)
		return msg(fmt.Sprintf("failed to find word after %d guesses", sc.numGuesses)), nil
	}
	prev := sc.lastGuess
	if err := sc.solver.TakeHint(h, prev); err != nil {
		if errors.Is(err, wordle.ErrContradictoryHint) {
			return nil, fmt.Errorf("%s for %s does not fit your earlier hints (%w); enter it again", h, strings.ToUpper(prev), err)
		}
		return nil, err
	}
	guess, err := sc.nextGuess()
	if err != nil {
		return nil, err
	}
	return msg(h.Colorize(prev) + "\n" + guess), nil
}
