package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"syscall"

	"github.com/chzyer/readline"
	"github.com/kballard/go-shellquote"
	"github.com/rs/zerolog/log"

	"github.com/domino14/wordgraph/challenge"
	"github.com/domino14/wordgraph/config"
	"github.com/domino14/wordgraph/lexicon"
	"github.com/domino14/wordgraph/rng"
	"github.com/domino14/wordgraph/wordle"
)

type Mode int

const (
	StandardMode Mode = iota
	ChallengeMode
	GuesserMode
	KeeperMode
)

func (m Mode) prompt() string {
	switch m {
	case ChallengeMode:
		return "\033[32mchallenge>\033[0m "
	case GuesserMode:
		return "\033[33mguess>\033[0m "
	case KeeperMode:
		return "\033[36mhint>\033[0m "
	}
	return "\033[31mwordgraph>\033[0m "
}

var (
	errNoData            = errors.New("no data in command")
	errWrongOptionSyntax = errors.New("wrong format; all options need arguments")
	errNoLexicon         = errors.New("no dictionary loaded; use load <path>")
)

type Response struct {
	message string
}

func msg(message string) *Response {
	return &Response{message: message}
}

type CmdOptions map[string][]string

func (c CmdOptions) String(key string) string {
	v := c[key]
	if len(v) > 0 {
		return v[0]
	}
	return ""
}

func (c CmdOptions) Int(key string) (int, error) {
	return strconv.Atoi(c.String(key))
}

func (c CmdOptions) IntDefault(key string, defaultI int) (int, error) {
	if _, ok := c[key]; !ok {
		return defaultI, nil
	}
	return c.Int(key)
}

type shellcmd struct {
	cmd     string
	args    []string
	options CmdOptions
}

// extractFields splits a command line into the command, its positional
// arguments and its -key value options.
func extractFields(line string) (*shellcmd, error) {
	fields, err := shellquote.Split(line)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, errNoData
	}
	cmd := &shellcmd{cmd: fields[0], options: CmdOptions{}}
	for i := 1; i < len(fields); i++ {
		f := fields[i]
		if len(f) > 1 && strings.HasPrefix(f, "-") {
			if i+1 >= len(fields) {
				return nil, errWrongOptionSyntax
			}
			key := strings.TrimPrefix(f, "-")
			cmd.options[key] = append(cmd.options[key], fields[i+1])
			i++
			continue
		}
		cmd.args = append(cmd.args, f)
	}
	return cmd, nil
}

// ShellController drives one interactive session.
type ShellController struct {
	l   *readline.Instance
	out io.Writer

	cfg *config.Config
	ctx context.Context
	lex *lexicon.Lexicon
	gen *rng.Generator

	curMode Mode

	engine    *challenge.Engine
	challenge *challengeRound

	keeper     *wordle.Keeper
	solver     *wordle.Solver
	lastGuess  string
	numGuesses int
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func showMessage(msg string, w io.Writer) {
	io.WriteString(w, msg)
	io.WriteString(w, "\n")
}

func NewShellController(ctx context.Context, cfg *config.Config) *ShellController {
	sc := &ShellController{cfg: cfg, ctx: ctx, gen: rng.New(cfg.GetInt64(config.ConfigSeed))}
	l, err := readline.NewEx(&readline.Config{
		Prompt:          StandardMode.prompt(),
		HistoryFile:     cfg.GetString(config.ConfigHistoryFile),
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",
		AutoComplete:    NewShellCompleter(sc),

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		panic(err)
	}
	sc.l = l
	sc.out = l.Stderr()
	return sc
}

func (sc *ShellController) showMessage(msg string) {
	showMessage(msg, sc.out)
}

func (sc *ShellController) showError(err error) {
	sc.showMessage("Error: " + err.Error())
}

func (sc *ShellController) setMode(m Mode) {
	sc.curMode = m
	if sc.l != nil {
		sc.l.SetPrompt(m.prompt())
	}
}

// SetLexicon makes lex the dictionary of the session.
func (sc *ShellController) SetLexicon(lex *lexicon.Lexicon) {
	sc.lex = lex
	sc.engine = challenge.NewEngine(lex)
	sc.keeper = wordle.NewKeeper(lex)
	sc.solver = nil
	sc.setMode(StandardMode)
}

func (sc *ShellController) wordLength() int {
	return sc.cfg.GetInt(config.ConfigWordLength)
}

func (sc *ShellController) standardModeSwitch(line string) (*Response, error) {
	cmd, err := extractFields(line)
	if err != nil {
		return nil, err
	}
	switch cmd.cmd {
	case "help":
		return sc.help(cmd)
	case "load":
		return sc.load(cmd)
	case "set":
		return sc.set(cmd)
	case "settings":
		return sc.settings(cmd)
	case "words":
		return sc.words(cmd)
	case "check":
		return sc.check(cmd)
	case "challenge":
		return sc.startChallenge(cmd)
	case "guesser":
		return sc.startGuesser(cmd)
	case "keeper":
		return sc.startKeeper(cmd)
	case "auto":
		return sc.auto(cmd)
	case "stats":
		return sc.stats(cmd)
	case "beststart":
		return sc.bestStart(cmd)
	default:
		log.Debug().Msgf("you said: %v", strconv.Quote(line))
		return nil, fmt.Errorf("unknown command %q, try help", cmd.cmd)
	}
}

// dispatch handles one input line in the current mode.
func (sc *ShellController) dispatch(line string) (*Response, error) {
	switch sc.curMode {
	case ChallengeMode:
		return sc.challengeModeSwitch(line)
	case GuesserMode:
		return sc.guesserModeSwitch(line)
	case KeeperMode:
		return sc.keeperModeSwitch(line)
	}
	return sc.standardModeSwitch(line)
}

func (sc *ShellController) Loop(sig chan os.Signal) {
	defer sc.l.Close()

	for {
		line, err := sc.l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				sig <- syscall.SIGINT
				break
			} else {
				continue
			}
		} else if err == io.EOF {
			sig <- syscall.SIGINT
			break
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == "exit" && sc.curMode == StandardMode {
			sig <- syscall.SIGINT
			break
		}
		resp, err := sc.dispatch(line)
		if err != nil {
			sc.showError(err)
			continue
		}
		if resp != nil && resp.message != "" {
			sc.showMessage(resp.message)
		}
	}
	log.Debug().Msgf("Exiting readline loop...")
}

// Execute runs a single line as if it was typed at the prompt.
func (sc *ShellController) Execute(line string) {
	resp, err := sc.dispatch(strings.TrimSpace(line))
	if err != nil {
		sc.showError(err)
		return
	}
	if resp != nil && resp.message != "" {
		sc.showMessage(resp.message)
	}
}
