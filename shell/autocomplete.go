package shell

import (
	"strings"

	"github.com/kballard/go-shellquote"

	"github.com/domino14/wordgraph/config"
)

// ShellCompleter provides context-aware autocomplete for shell commands
type ShellCompleter struct {
	sc *ShellController
}

func NewShellCompleter(sc *ShellController) *ShellCompleter {
	return &ShellCompleter{sc: sc}
}

// CommandMetadata holds autocomplete information for a command
type CommandMetadata struct {
	Options []string
	Args    []string
}

var commandMetadata = map[string]CommandMetadata{
	"auto": {
		Options: []string{"-repeats", "-threads", "-strategy", "-format"},
		Args:    []string{"challenge", "wordle"},
	},
	"beststart": {
		Options: []string{"-pool", "-samples", "-top"},
	},
	"set": {
		Args: settable,
	},
	"help": {
		Args: []string{"challenge", "guesser", "keeper", "auto", "beststart"},
	},
}

var commandNames = []string{
	"help", "load", "set", "settings", "words", "check", "challenge",
	"guesser", "keeper", "auto", "stats", "beststart", "exit",
}

var optionValues = map[string][]string{
	"strategy":                  {"random_candidate", "letter_frequency"},
	"format":                    {"text", "yaml"},
	config.ConfigWordleStrategy: {"random_candidate", "letter_frequency"},
	config.ConfigReportFormat:   {"text", "yaml"},
}

// Do implements the readline.AutoCompleter interface. Only commands of
// the standard mode are completed.
func (c *ShellCompleter) Do(line []rune, pos int) ([][]rune, int) {
	if c.sc.curMode != StandardMode {
		return nil, 0
	}
	text := string(line[:pos])
	fields, err := shellquote.Split(text)
	if err != nil {
		fields = strings.Fields(text)
	}
	endsWithSpace := len(text) > 0 && text[len(text)-1] == ' '

	var prefix string
	var completions []string

	if len(fields) == 0 || (len(fields) == 1 && !endsWithSpace) {
		if len(fields) == 1 {
			prefix = fields[0]
		}
		completions = commandNames
	} else {
		cmdName := fields[0]
		if !endsWithSpace {
			prefix = fields[len(fields)-1]
		}
		var lastCompleteField string
		if endsWithSpace {
			lastCompleteField = fields[len(fields)-1]
		} else if len(fields) > 1 {
			lastCompleteField = fields[len(fields)-2]
		}
		// option values, and the value of "set <key>"
		if vals, ok := optionValues[strings.TrimPrefix(lastCompleteField, "-")]; ok {
			completions = vals
		} else if metadata, exists := commandMetadata[cmdName]; exists {
			if strings.HasPrefix(prefix, "-") || len(metadata.Args) == 0 {
				completions = metadata.Options
			} else {
				completions = metadata.Args
			}
		}
	}

	var matches [][]rune
	for _, completion := range completions {
		if strings.HasPrefix(completion, prefix) {
			matches = append(matches, []rune(completion[len(prefix):]))
		}
	}
	return matches, len(prefix)
}
