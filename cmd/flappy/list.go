package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/H4wk507/terminal-flappy-bird/internal/games/flappy"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all versions",
	Long:  `Shows every playable version with its rules and quit key.`,
	Args:  cobra.NoArgs,
	Run:   runList,
}

func runList(cmd *cobra.Command, _ []string) {
	out := cmd.OutOrStdout()
	variants := flappy.Variants()

	fmt.Fprintln(out, "Available versions:")
	fmt.Fprintln(out)

	maxIDLen := 2 // "ID" header
	for _, v := range variants {
		maxIDLen = max(maxIDLen, len(v.ID))
	}

	fmt.Fprintf(out, "  %-*s  %-24s  %-6s  %s\n", maxIDLen, "ID", "Title", "Quit", "Rules")
	fmt.Fprintf(out, "  %-*s  %-24s  %-6s  %s\n", maxIDLen, "--", "-----", "----", "-----")

	for _, v := range variants {
		fmt.Fprintf(out, "  %-*s  %-24s  %-6s  %s\n",
			maxIDLen, v.ID, v.Title, strings.Join(v.QuitKeys, "/"), describeRules(v.Rules))
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'flappy play <id>' to play a version.")
}

// describeRules lists what a version adds on top of the bare bird.
func describeRules(r flappy.Rules) string {
	var parts []string
	if r.Obstacles {
		parts = append(parts, "pipes")
	}
	if r.Scoring {
		parts = append(parts, "score")
	}
	if r.Prompt {
		parts = append(parts, "play-again prompt")
	}
	if len(parts) == 0 {
		return "bird only"
	}
	return strings.Join(parts, ", ")
}
