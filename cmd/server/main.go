// Package main is the entry point for the character sheet server
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-sheet/cmd/server/client"
)

var rootCmd = &cobra.Command{
	Use:   "rpg-sheet",
	Short: "Character sheet session server",
	Long: `rpg-sheet hosts character sheet editing sessions. Rules math is delegated
to an external rules service; the server keeps each session's document,
derived statistics and spellbook consistent.`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(client.ClientCmd)
}
