// brainrot-spire is the local terminal client. The run is saved after every
// action and resumed on the next launch.
package main

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"brainrot-spire/assets"
	"brainrot-spire/internal/config"
	"brainrot-spire/internal/game"
	"brainrot-spire/internal/store"
	"brainrot-spire/internal/ui"
)

const saveKey = "local"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	env, err := config.LoadEnv()
	if err != nil {
		return err
	}
	// The screen owns the terminal, so logs only go to BRAINROT_LOG_FILE.
	logger, logFile, err := env.Logger(io.Discard)
	if err != nil {
		return err
	}
	defer logFile.Close()

	tuning, err := env.LoadTuning()
	if err != nil {
		return err
	}
	seed := env.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	engine, err := game.New(tuning, assets.Default(), rand.New(rand.NewSource(seed)), game.WithLogger(logger))
	if err != nil {
		return err
	}

	dir := env.DataDir
	if dir == "" {
		if dir, err = store.DataDir(); err != nil {
			return fmt.Errorf("locate save dir: %w", err)
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	app := ui.New(screen, engine, store.NewFileStore(dir), saveKey,
		ui.WithLogger(logger),
		ui.WithRunEnd(func(s *game.State) {
			if err := store.AppendRunLog(dir, store.NewRunLog("", s, time.Now())); err != nil {
				logger.Warn().Err(err).Msg("run log not written")
			}
		}),
	)
	logger.Info().Int64("seed", seed).Str("dir", dir).Msg("client started")
	return app.Run(context.Background())
}
