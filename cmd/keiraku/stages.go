package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var stagesCmd = &cobra.Command{
	Use:   "stages",
	Short: "List the stage catalog",
	Long: `Shows the stages in play order. With --stages the catalog is read
from a directory of YAML stage templates instead of the built-in stages.`,
	Args: cobra.NoArgs,
	Run:  runStages,
}

func runStages(_ *cobra.Command, _ []string) {
	if len(appCatalog) == 0 {
		fmt.Println("No stages available.")
		return
	}

	source := "built-in"
	if flagStages != "" {
		source = flagStages
	}
	fmt.Printf("Stages (%s):\n", source)
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, st := range appCatalog {
		maxIDLen = max(maxIDLen, len(st.ID))
	}

	fmt.Printf("  %-3s  %-*s  %-12s  %s\n", "#", maxIDLen, "ID", "Name", "Difficulty")
	fmt.Printf("  %-3s  %-*s  %-12s  %s\n", "-", maxIDLen, "--", "----", "----------")
	for i, st := range appCatalog {
		fmt.Printf("  %-3d  %-*s  %-12s  %s\n", i+1, maxIDLen, st.ID, st.Name, strings.Repeat("*", st.Difficulty))
	}

	fmt.Println()
	fmt.Println("Run 'keiraku play --mode free --stage <id>' to play one.")
}
