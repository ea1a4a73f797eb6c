// seabattle is a terminal sea battle game against the computer.
//
// Usage:
//
//	seabattle play            - Play in the terminal UI
//	seabattle play --plain    - Play with typed "x y" coordinates
//	seabattle serve           - Start SSH server for remote play
//	seabattle scores          - Show the leaderboard and recent matches
//
// Global flags:
//
//	--config <path> - Config file (default: search ~/.seabattle, ./configs)
//	--seed <value>  - Set RNG seed for reproducible fleets
//	--db <path>     - Set results database path
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig string
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
	Use:   "seabattle",
	Short: "Sea battle against the computer in your terminal",
	Long: `seabattle is the classic grid naval battle: your fleet against the
computer's on two 6x6 boards. A hit earns another shot; the first side to
sink the whole enemy fleet wins.

Available commands:
  play     - Play a match (terminal UI, or --plain for typed coordinates)
  serve    - Start SSH server for remote play
  scores   - View the leaderboard and recent matches

Examples:
  seabattle play
  seabattle play --plain
  seabattle play --seed 42 --reveal
  seabattle serve --ssh :2222
  seabattle scores --player alice`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to results database (overrides config)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
