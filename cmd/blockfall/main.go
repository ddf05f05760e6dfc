// blockfall is a terminal falling-block puzzle with a small arcade shell
// around it.
//
// Usage:
//
//	blockfall list              - List available games
//	blockfall play <game>       - Play a game
//	blockfall menu              - Start menu to pick games interactively
//	blockfall serve             - Start SSH server for remote play
//	blockfall scores <game>     - Show high scores for a game
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.blockfall/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/mgilperez/blockfall/internal/games/blockfall"
	_ "github.com/mgilperez/blockfall/internal/games/tictactoe"
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
	Use:   "blockfall",
	Short: "Blockfall - Falling-block puzzle in your terminal",
	Long: `Blockfall is a terminal falling-block puzzle. Stack the pieces,
clear lines, chase the speed curve. A hot-seat tic-tac-toe board tags
along for the breaks between runs.

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  blockfall list
  blockfall play blockfall
  blockfall menu
  blockfall serve --ssh :2222
  blockfall scores blockfall`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.blockfall/scores.db", "Path to scores database")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
