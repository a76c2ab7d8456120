// t2048 is the 2048 sliding-tile puzzle for the terminal.
//
// Usage:
//
//	t2048                    - Start menu (new game, resume, quit)
//	t2048 play               - Play a new game directly
//	t2048 play --resume NAME - Continue a saved game
//	t2048 saves [list|rm]    - Manage saved games
//	t2048 simulate --moves   - Play a scripted game without the TUI
//
// Global flags:
//
//	--seed <value>      - Set RNG seed for reproducible spawns
//	--db <path>         - Set database path (default: ~/.t2048/saves.db)
//	--config <path>     - Use a specific config file
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/config"
)

var (
	// Global flags
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string

	// Loaded by the root PersistentPreRunE
	appConfig config.Config
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "t2048",
	Short: "2048 - Slide and merge tiles in your terminal",
	Long: `2048 is a sliding-tile puzzle. Slide all tiles in one direction;
equal tiles that collide merge into their sum. A new tile appears after
every move. The game ends when the board is full and nothing can merge.

Available commands:
  play      - Play a game directly
  saves     - List or delete saved games
  simulate  - Run a scripted game and print every turn

Running t2048 without a command opens the start menu.

Examples:
  t2048
  t2048 play --theme numbers
  t2048 play --resume autosave
  t2048 simulate --moves LLRUD --seed 42`,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
	Run:               runMenu,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to saves database (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(savesCmd)
	rootCmd.AddCommand(simulateCmd)
}

// loadConfig reads .env and the YAML config before any command runs.
func loadConfig(cmd *cobra.Command, _ []string) error {
	if err := config.LoadDotEnv(); err != nil {
		return err
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("db") {
		cfg.Storage.DBPath = flagDBPath
	}

	appConfig = cfg
	return nil
}
