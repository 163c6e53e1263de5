// keiraku is a bomber arcade game played in the terminal, over SSH or
// through a websocket feed.
//
// Usage:
//
//	keiraku play             - Pick a mode and stage from the menu, then play
//	keiraku play --mode free --stage lung
//	keiraku stages           - List the stage catalog
//	keiraku scores [mode]    - Show high scores
//	keiraku serve            - Start SSH server for remote play
//	keiraku web              - Start the websocket snapshot feed
//
// Global flags:
//
//	--fps <rate>           - Set tick rate (default: 30)
//	--seed <value>         - Set RNG seed for reproducible gameplay
//	--db <path|dsn>        - Scores database path or postgres:// DSN
//	--config <path>        - Custom keiraku.yaml
//	--stages <dir>         - Directory of custom stage templates
//	--difficulty <preset>  - easy, normal or hard
//	--log-level <level>    - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/keiraku-bomber/internal/config"
	"github.com/vovakirdan/keiraku-bomber/internal/games/keiraku"
	"github.com/vovakirdan/keiraku-bomber/internal/games/keiraku/sim"
	"github.com/vovakirdan/keiraku-bomber/internal/games/keiraku/stages"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagStages     string
	flagDifficulty string
	flagLogLevel   string
)

// Resolved by setup before any command runs.
var (
	logger     *log.Logger
	appConfig  config.KeirakuConfig
	appCatalog sim.Catalog
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "keiraku",
	Short: "Keiraku Bomber - place moxa, fire needles, open the tsubo",
	Long: `Keiraku Bomber is a grid arcade game. Place moxa to break walls,
fire needles to open tsubo, collect herbs and clear every meridian stage.

Available commands:
  play     - Play in the terminal
  stages   - List the stage catalog
  scores   - View high scores
  serve    - Start SSH server for remote play
  web      - Start the websocket feed for browser front ends

Examples:
  keiraku play
  keiraku play --mode free --stage spleen --difficulty hard
  keiraku stages --stages ./my-stages
  keiraku serve --ssh :2222
  keiraku web --addr :8080 --db postgres://localhost/keiraku`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.keiraku/scores.db", "Scores database path or postgres:// DSN")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom keiraku.yaml")
	rootCmd.PersistentFlags().StringVar(&flagStages, "stages", "", "Directory of custom stage templates (YAML)")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(stagesCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(webCmd)
}

// setup builds the logger, loads configuration and the stage catalog, and
// hands both to the game package.
func setup(_ *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}
	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "keiraku",
		Level:           level,
	})

	cfg, source, err := config.ResolveKeiraku(flagConfig)
	if err != nil {
		return err
	}
	logger.Debug("loaded config", "source", source)
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}
	config.ApplyKeirakuPreset(&cfg, preset)
	appConfig = cfg

	appCatalog = sim.DefaultCatalog()
	if flagStages != "" {
		c, err := stages.NewLoader(flagStages).Catalog()
		if err != nil {
			return err
		}
		appCatalog = c
		logger.Debug("loaded custom stages", "dir", flagStages, "count", len(c))
	}

	keiraku.Configure(appConfig)
	keiraku.SetCatalog(appCatalog)
	return nil
}
