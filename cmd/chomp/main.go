// chomp is a terminal maze-chase arcade game.
//
// Usage:
//
//	chomp play               - Play the game
//	chomp menu               - Start the interactive menu
//	chomp serve              - Start SSH server for remote play
//	chomp scores             - Show high scores
//	chomp list               - List available games
//
// Global flags:
//
//	--fps <rate>    - Set frame rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.arcade/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/mkravets/chomp-arcade/internal/games/chomp"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "chomp",
	Short: "Chomp - a maze-chase arcade game for your terminal",
	Long: `Chomp is a terminal rendition of the classic maze-chase arcade game:
clear the maze of dots while four ghosts hunt you down.

Available commands:
  play     - Play the game directly
  menu     - Interactive menu with scoreboard
  serve    - Start SSH server for remote play
  scores   - View high scores
  list     - Show registered games

Examples:
  chomp play
  chomp menu
  chomp serve --ssh :2222
  chomp scores`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frame rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = fixed arcade seed)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
