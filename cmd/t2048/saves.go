package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/storage"
)

var savesCmd = &cobra.Command{
	Use:   "saves",
	Short: "List saved games",
	Long: `Show the saved games, most recently played first.

Examples:
  t2048 saves
  t2048 saves list
  t2048 saves rm practice`,
	Args: cobra.NoArgs,
	Run:  runSavesList,
}

var savesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved games",
	Args:  cobra.NoArgs,
	Run:   runSavesList,
}

var savesRmCmd = &cobra.Command{
	Use:   "rm <name>",
	Short: "Delete a saved game",
	Args:  cobra.ExactArgs(1),
	Run:   runSavesRm,
}

func init() {
	savesCmd.AddCommand(savesListCmd)
	savesCmd.AddCommand(savesRmCmd)
}

// mustOpenStore opens the saves database or exits.
func mustOpenStore() *storage.Store {
	store, err := storage.Open(appConfig.Storage.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening saves database: %v\n", err)
		os.Exit(1)
	}
	return store
}

func runSavesList(cmd *cobra.Command, _ []string) {
	store := mustOpenStore()
	defer store.Close()

	slots, err := store.ListSlots()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving saves: %v\n", err)
		return
	}

	printSlots(cmd.OutOrStdout(), slots)
}

// printSlots writes the slot table, or a hint when there are none.
func printSlots(w io.Writer, slots []storage.Slot) {
	if len(slots) == 0 {
		fmt.Fprintln(w, "No saved games.")
		fmt.Fprintln(w, "Quit a game in progress to save it.")
		return
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("SLOT", "SCORE", "MAX TILE", "MOVES", "STATE", "LAST PLAYED")

	for _, s := range slots {
		state := "playing"
		if s.Over() {
			state = "over"
		}
		t.Row(
			s.Name,
			humanize.Comma(int64(s.Score)),
			strconv.Itoa(s.MaxTile()),
			strconv.Itoa(s.Moves),
			state,
			humanize.Time(s.UpdatedAt),
		)
	}

	fmt.Fprintln(w, t.String())
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 't2048 play --resume <slot>' to continue a game.")
}

func runSavesRm(cmd *cobra.Command, args []string) {
	name := args[0]

	store := mustOpenStore()
	defer store.Close()

	if err := store.DeleteSlot(name); err != nil {
		if errors.Is(err, storage.ErrSlotNotFound) {
			fmt.Fprintf(os.Stderr, "Error: no saved game named %q\n", name)
		} else {
			fmt.Fprintf(os.Stderr, "Error deleting save: %v\n", err)
		}
		store.Close()
		os.Exit(1)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", name)
}
