package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"math/rand/v2"
	"os"

	"ctchen222/tictactoe-minimax/internal/bot"
	"ctchen222/tictactoe-minimax/internal/config"
	"ctchen222/tictactoe-minimax/internal/console"
	"ctchen222/tictactoe-minimax/internal/game"
	"ctchen222/tictactoe-minimax/internal/logger"
	"ctchen222/tictactoe-minimax/internal/match"
	"ctchen222/tictactoe-minimax/internal/player"
	"ctchen222/tictactoe-minimax/internal/telemetry"
)

// options holds the command line flags. Non-zero values override the config.
type options struct {
	configPath string
	seed       uint64
	json       bool
	humanMark  string
	first      string
}

func main() {
	var opts options
	flag.StringVar(&opts.configPath, "config", os.Getenv("TICTACTOE_CONFIG"), "Path to a YAML config file")
	flag.Uint64Var(&opts.seed, "seed", 0, "Random seed, 0 keeps the configured one")
	flag.BoolVar(&opts.json, "json", false, "Print game events as JSON lines")
	flag.StringVar(&opts.humanMark, "human-mark", "", "Mark for the human player (X or O)")
	flag.StringVar(&opts.first, "first", "", "Who opens the game: human, computer or random")
	flag.Parse()

	if err := run(context.Background(), opts, os.Stdin, os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, player.ErrQuit) {
			fmt.Fprintln(os.Stdout, "Bye.")
			return
		}
		log.Fatalf("tictactoe: %v", err)
	}
}

func run(ctx context.Context, opts options, in io.Reader, out, errOut io.Writer) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	if opts.seed != 0 {
		cfg.Seed = opts.seed
	}
	if opts.humanMark != "" {
		cfg.HumanMark = opts.humanMark
	}
	if opts.first != "" {
		cfg.First = opts.first
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	// Initialize telemetry
	shutdown, err := telemetry.InitOtel(ctx, cfg.Telemetry, errOut)
	if err != nil {
		return fmt.Errorf("failed to initialize telemetry: %w", err)
	}
	defer func() {
		if err := shutdown(ctx); err != nil {
			slog.ErrorContext(ctx, "Error shutting down telemetry", "error", err)
		}
	}()

	logger.Init(errOut, cfg.Level())

	if cfg.Seed == 0 {
		cfg.Seed = rand.Uint64()
	}
	r := rand.New(rand.NewPCG(cfg.Seed, cfg.Seed))
	slog.InfoContext(ctx, "Starting game", "seed", cfg.Seed, "human.mark", cfg.HumanMark, "first", cfg.First)

	mark := cfg.Mark()
	// Keep prompts out of the JSON transcript.
	prompts := out
	if opts.json {
		prompts = errOut
	}
	human := player.NewHuman(cfg.HumanName, mark, in, prompts)
	machine := player.NewComputer(cfg.MachineName, mark.Opponent(), bot.NewSelector(r))

	var humanFirst bool
	switch cfg.First {
	case config.FirstHuman:
		humanFirst = true
	case config.FirstComputer:
		humanFirst = false
	default:
		humanFirst = game.RandomFirstMark(r) == mark
	}

	var players [2]player.Player
	if humanFirst {
		players = [2]player.Player{human, machine}
	} else {
		players = [2]player.Player{machine, human}
	}

	controller := match.NewController(players[0], players[1],
		match.WithNotifier(console.NewRenderer(out, mark, opts.json)),
		match.WithLogger(slog.Default()),
	)
	_, err = controller.Run(ctx)
	return err
}
