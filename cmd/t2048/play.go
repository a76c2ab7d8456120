package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagResume string
	flagSlot   string
	flagTheme  string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game of 2048.

Controls:
  Arrows/WASD/HJKL - Slide tiles
  Mouse drag       - Slide tiles in the drag direction
  R                - Restart
  Ctrl+S           - Save the board to ~/.t2048/screenshots
  Q/Ctrl+C         - Quit (saves the game to the slot)

Examples:
  t2048 play
  t2048 play --theme numbers
  t2048 play --resume autosave
  t2048 play --slot practice --seed 7`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagResume, "resume", "", "Continue the named saved game")
	playCmd.Flags().StringVar(&flagSlot, "slot", "", "Slot to save to on quit (default: resumed slot or config autosave_slot)")
	playCmd.Flags().StringVar(&flagTheme, "theme", "", "Tile theme: emoji, numbers")
}

func runPlay(_ *cobra.Command, _ []string) {
	theme, err := resolveTheme(flagTheme, appConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog := fileLogger()
	defer closeLog()

	store := openStore(logger)
	if store == nil {
		fmt.Fprintln(os.Stderr, "Warning: could not open saves database, the game will not be saved")
	}

	slot := saveSlotFor(flagSlot, flagResume, appConfig.Storage.AutosaveSlot)
	runErr := playSession(store, logger, runtimeConfig(), flagResume, slot, theme)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// saveSlotFor picks the slot written on quit: the explicit flag, then the
// slot being resumed, then the configured autosave slot.
func saveSlotFor(flag, resume, autosave string) string {
	switch {
	case flag != "":
		return flag
	case resume != "":
		return resume
	default:
		return autosave
	}
}
