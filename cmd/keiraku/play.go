package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/keiraku-bomber/internal/audio"
	"github.com/vovakirdan/keiraku-bomber/internal/core"
	"github.com/vovakirdan/keiraku-bomber/internal/games/keiraku"
	"github.com/vovakirdan/keiraku-bomber/internal/games/keiraku/sim"
	"github.com/vovakirdan/keiraku-bomber/internal/platform/tui"
	"github.com/vovakirdan/keiraku-bomber/internal/registry"
	"github.com/vovakirdan/keiraku-bomber/internal/storage"
)

var (
	flagMode  string
	flagStage string
	flagSound bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Play Keiraku Bomber in the terminal.

Without --mode a menu lets you choose story mode, a free play stage or the
scoreboard; leaving a game with B returns to the menu.

Controls:
  WASD/Arrows  - Move
  Space        - Place moxa
  I/J/K/L      - Fire needle up/left/down/right
  Enter        - Next stage (after a clear)
  R            - Retry stage
  P/Esc        - Pause
  B            - Back to menu
  Ctrl+S       - Save screenshot
  Q/Ctrl+C     - Quit

Examples:
  keiraku play
  keiraku play --mode story
  keiraku play --mode free --stage lung
  keiraku play --sound --difficulty easy`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagMode, "mode", "", "Skip the menu: story or free")
	playCmd.Flags().StringVar(&flagStage, "stage", "", "Starting stage ID (with --mode)")
	playCmd.Flags().BoolVar(&flagSound, "sound", false, "Play sound cues")
}

func runPlay(_ *cobra.Command, _ []string) error {
	// Get terminal size
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	if flagSound {
		board := audio.NewSoundBoard(audio.DefaultVolume, logger)
		if err := board.Init(); err != nil {
			logger.Warn("sound disabled", "error", err)
		} else {
			defer board.Close()
			keiraku.SetEventSink(board)
		}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		// Continue without storage - game still works
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	if flagMode != "" {
		gameID, stage, err := directSelection(flagMode, flagStage)
		if err != nil {
			return err
		}
		cfg.Stage = stage
		return playOnce(gameID, store, cfg)
	}
	return menuLoop(store, cfg)
}

// directSelection resolves --mode and --stage to a game ID and stage index.
func directSelection(mode, stageID string) (string, int, error) {
	m, ok := sim.ParseMode(mode)
	if !ok {
		return "", 0, fmt.Errorf("unknown mode %q (want story or free)", mode)
	}
	gameID := keiraku.StoryID
	if m == sim.ModeFree {
		gameID = keiraku.FreeID
	}

	stage := 0
	if stageID != "" {
		i, err := appCatalog.Index(stageID)
		if err != nil {
			return "", 0, fmt.Errorf("%w; run 'keiraku stages' to list them", err)
		}
		stage = i
	}
	return gameID, stage, nil
}

func playOnce(gameID string, store *storage.Store, cfg core.RuntimeConfig) error {
	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}
	if _, err := tui.Run(game, store, cfg); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

func menuLoop(store *storage.Store, cfg core.RuntimeConfig) error {
	for {
		result, err := tui.RunMenu(cfg)
		if err != nil {
			return err
		}
		cfg = result.Config

		switch {
		case result.Quit:
			return nil
		case result.WantsScoreboard:
			goBack, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if !goBack {
				return nil
			}
			continue
		}

		game, err := registry.Create(result.GameID)
		if err != nil {
			return err
		}

		runCfg := cfg
		if flagSeed == 0 {
			runCfg.Seed = time.Now().UnixNano()
		}
		back, err := tui.Run(game, store, runCfg)
		if err != nil {
			return fmt.Errorf("running game: %w", err)
		}
		if !back {
			return nil
		}
	}
}
