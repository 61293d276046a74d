package automatic

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"
)

const (
	FormatText = "text"
	FormatYAML = "yaml"
)

// Report is the summary of an automatic run.
type Report interface {
	writeText(p *message.Printer, w io.Writer)
}

// Write renders the report as text or YAML.
func Write(w io.Writer, r Report, format string) error {
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	case FormatText, "":
		r.writeText(message.NewPrinter(language.English), w)
		return nil
	}
	return fmt.Errorf("unknown report format %q", format)
}

func (r *ChallengeReport) writeText(p *message.Printer, w io.Writer) {
	p.Fprintf(w, "lexicon %s, %d words of length %d, %d thread(s), seed %d\n",
		r.Lexicon, r.Repeats, r.WordLength, r.Threads, r.Seed)
	p.Fprintf(w, "mean time per search:   %.3f ms (stdev %.3f)\n", r.MeanMillis, r.StdevMillis)
	p.Fprintf(w, "mean words found:       %.1f\n", r.MeanWordsFound)
	p.Fprintf(w, "mean visited nodes:     %.1f\n", r.MeanVisitedNodes)
	p.Fprintf(w, "total time:             %v\n", r.Elapsed)
}

func (r *WordleReport) writeText(p *message.Printer, w io.Writer) {
	p.Fprintf(w, "lexicon %s, %d rounds of length %d, strategy %s, %d thread(s), seed %d\n",
		r.Lexicon, r.Repeats, r.WordLength, r.Strategy, r.Threads, r.Seed)
	p.Fprintf(w, "solved:                 %d/%d (%.1f%%) within %d guesses\n",
		r.Solved, len(r.Rounds), 100*r.SuccessRate, r.MaxGuesses)
	p.Fprintf(w, "mean guesses:           %.3f ± %.3f (95%% CI)\n", r.MeanGuesses, r.GuessesCI95)
	p.Fprintf(w, "most guesses:           %d\n", r.MaxGuessed)
	p.Fprintf(w, "%-8s %16s %16s\n", "guess", "visited nodes", "candidates")
	for i := range r.MeanVisitedPerGuess {
		p.Fprintf(w, "%-8d %16.1f %16.1f\n", i+1, r.MeanVisitedPerGuess[i], r.MeanCandidatesPerGuess[i])
	}
	if r.GuessHistogram != "" {
		p.Fprintf(w, "guesses per round:\n%s", strings.TrimRight(r.GuessHistogram, "\n")+"\n")
	}
	p.Fprintf(w, "total time:             %v\n", r.Elapsed)
}
