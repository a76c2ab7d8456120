package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/platform/tui"
)

// runMenu shows the start menu and returns to it after each game.
func runMenu(_ *cobra.Command, _ []string) {
	theme, err := resolveTheme("", appConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog := fileLogger()
	defer closeLog()

	store := openStore(logger)
	rc := runtimeConfig()

	// Menu loop
	for {
		hasSaves := false
		if store != nil {
			slots, listErr := store.ListSlots()
			hasSaves = listErr == nil && len(slots) > 0
		}

		menuResult, err := tui.RunMenu(hasSaves, rc)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}
		rc.ScreenW, rc.ScreenH = menuResult.Config.ScreenW, menuResult.Config.ScreenH

		if menuResult.Choice == tui.ChoiceQuit {
			break
		}

		resume := ""
		if menuResult.Choice == tui.ChoiceResume {
			savesResult, savesErr := tui.RunSaves(store, rc.ScreenW, rc.ScreenH)
			if savesErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", savesErr)
				continue
			}
			if savesResult.Back {
				continue
			}
			if savesResult.Slot == "" {
				break // Quit from the saves browser
			}
			resume = savesResult.Slot
		}

		slot := saveSlotFor("", resume, appConfig.Storage.AutosaveSlot)
		if err := playSession(store, logger, rc, resume, slot, theme); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}

		// Fresh spawns for the next game unless a seed was pinned
		if flagSeed == 0 {
			rc.Seed = runtimeConfig().Seed
		}
	}

	// Cleanup
	if store != nil {
		store.Close()
	}
}
