package main

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"os/signal"
	"runtime/pprof"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/domino14/wordgraph/automatic"
	"github.com/domino14/wordgraph/config"
	"github.com/domino14/wordgraph/lexicon"
	"github.com/domino14/wordgraph/shell"
)

var (
	GitVersion string
)

//go:embed wordgraph.txt
var banner string

func main() {
	cfg := config.DefaultConfig()
	if err := cfg.Load(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

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

	var logger zerolog.Logger
	if cfg.GetBool(config.ConfigDebug) {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		logger = zerolog.New(output).Level(zerolog.DebugLevel).With().Timestamp().Logger()
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
		logger = zerolog.New(output).Level(zerolog.InfoLevel).With().Timestamp().Logger()
	}
	zerolog.DefaultContextLogger = &logger
	log.Logger = logger
	logger.Debug().Msg("Debug logging is on")
	log.Debug().Msgf("Loaded config: %v", cfg.SanitizedSettings())

	if cfg.GetString(config.ConfigCPUProfile) != "" {
		f, err := os.Create(cfg.GetString(config.ConfigCPUProfile))
		if err != nil {
			panic("could not create CPU profile: " + err.Error())
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			panic("could not start CPU profile: " + err.Error())
		}
		defer pprof.StopCPUProfile()
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	ctx = logger.WithContext(ctx)

	lex, err := lexicon.Get(cfg, cfg.GetString(config.ConfigDictionary))
	if err != nil {
		log.Error().Err(err).Msg("could not load dictionary")
		return
	}

	gameType := cfg.GetString(config.ConfigGameType)
	challengeMode := cfg.GetString(config.ConfigChallengeMode)
	wordleMode := cfg.GetString(config.ConfigWordleMode)
	switch {
	case len(cfg.Args()) == 0 && gameType == config.GameTypeWordChallenge && challengeMode == config.ModeAuto,
		len(cfg.Args()) == 0 && gameType == config.GameTypeWordle && wordleMode == config.ModeAuto:
		if err := runAutomatic(ctx, cfg, lex, gameType); err != nil {
			log.Error().Err(err).Msg("automatic run failed")
		}
		return
	}

	fmt.Println(banner)
	fmt.Println(GitVersion)

	sc := shell.NewShellController(ctx, cfg)
	sc.SetLexicon(lex)
	if args := strings.TrimSpace(strings.Join(cfg.Args(), " ")); args != "" {
		sc.Execute(args)
		return
	}

	switch {
	case gameType == config.GameTypeWordChallenge:
		sc.Execute("challenge")
	case wordleMode == config.ModeKeeper:
		sc.Execute("keeper")
	case wordleMode == config.ModeGuesser:
		sc.Execute("guesser")
	}

	sig := make(chan os.Signal, 1)
	go sc.Loop(sig)
	select {
	case <-sig:
	case <-ctx.Done():
	}
	log.Info().Msg("got quit signal...")
}

func runAutomatic(ctx context.Context, cfg *config.Config, lex *lexicon.Lexicon, gameType string) error {
	opts, err := automatic.OptionsFromConfig(cfg)
	if err != nil {
		return err
	}
	var report automatic.Report
	if gameType == config.GameTypeWordle {
		report, err = automatic.RunWordle(ctx, lex, opts)
	} else {
		report, err = automatic.RunWordChallenge(ctx, lex, opts)
	}
	if err != nil {
		return err
	}
	return automatic.Write(os.Stdout, report, cfg.GetString(config.ConfigReportFormat))
}
