package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/keiraku-bomber/internal/games/keiraku"
	"github.com/vovakirdan/keiraku-bomber/internal/storage"
)

var flagScoreLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores [story|free]",
	Short: "Show high scores",
	Long: `Display the top high scores for story mode (default) or free play.

Examples:
  keiraku scores
  keiraku scores free --limit 20
  keiraku scores --db postgres://localhost/keiraku`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"story", "free"},
	RunE:      runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoreLimit, "limit", 10, "Number of scores to show")
}

func runScores(_ *cobra.Command, args []string) error {
	gameID, title := keiraku.StoryID, "Story"
	if len(args) == 1 {
		switch args[0] {
		case "story":
		case "free":
			gameID, title = keiraku.FreeID, "Free Play"
		default:
			return fmt.Errorf("unknown mode %q (want story or free)", args[0])
		}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	scores, err := store.TopScores(gameID, flagScoreLimit)
	if err != nil {
		return err
	}

	stageNames := make(map[string]string, len(appCatalog))
	for _, st := range appCatalog {
		stageNames[st.ID] = st.Name
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'keiraku play' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %-10s  %s\n", "Rank", "Score", "Stage", "Date")
	fmt.Printf("  %-4s  %-10s  %-10s  %s\n", "----", "-----", "-----", "----")
	for i, entry := range scores {
		stage := entry.Stage
		if name, ok := stageNames[stage]; ok {
			stage = name
		}
		fmt.Printf("  %-4d  %-10d  %-10s  %s\n", i+1, entry.Score, stage, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if stats, err := store.GameStats(gameID); err == nil {
		fmt.Printf("Best: %d  Runs: %d  Average: %.0f\n", stats.HighScore, stats.GamesCount, stats.AvgScore)
	}
	return nil
}
