package main

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strings"
	"unicode"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
)

var (
	flagMoves     string
	flagSimTheme  string
	flagFinalOnly bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Play a scripted game and print every turn",
	Long: `Run a game without the TUI. Moves are letters (l r u d) or words
(left right up down) separated by spaces or commas. The same seed and
moves always produce the same game.

Examples:
  t2048 simulate --moves LLRUD --seed 42
  t2048 simulate --moves "left, left, up" --theme numbers`,
	Args: cobra.NoArgs,
	Run:  runSimulate,
}

func init() {
	simulateCmd.Flags().StringVar(&flagMoves, "moves", "", "Moves to play, e.g. LLRUD or \"left up\"")
	simulateCmd.Flags().StringVar(&flagSimTheme, "theme", "numbers", "Tile theme: emoji, numbers")
	simulateCmd.Flags().BoolVar(&flagFinalOnly, "final-only", false, "Print only the final board")
	//nolint:errcheck // Flag is defined above
	simulateCmd.MarkFlagRequired("moves")
}

func runSimulate(cmd *cobra.Command, _ []string) {
	moves, err := parseMoves(flagMoves)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	theme, err := resolveTheme(flagSimTheme, appConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger := newLogger(os.Stderr, "simulate")
	seed := runtimeConfig().Seed
	logger.Debug("simulate", "seed", seed, "moves", len(moves))

	game := t2048.New(rand.New(rand.NewSource(seed)), gameOptions(appConfig))
	fmt.Fprintf(cmd.OutOrStdout(), "Seed: %d\n", seed)
	simulate(cmd.OutOrStdout(), game, moves, theme, !flagFinalOnly)
}

// parseMoves splits a move script into directions. Tokens are separated by
// spaces or commas; a token that is not a direction word is read letter by
// letter.
func parseMoves(s string) ([]t2048.Direction, error) {
	tokens := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	if len(tokens) == 0 {
		return nil, errors.New("no moves given")
	}

	var moves []t2048.Direction
	for _, tok := range tokens {
		if dir, ok := t2048.ParseDirection(tok); ok {
			moves = append(moves, dir)
			continue
		}
		for _, r := range tok {
			dir, ok := t2048.ParseDirection(string(r))
			if !ok {
				return nil, fmt.Errorf("unknown move %q in %q", string(r), tok)
			}
			moves = append(moves, dir)
		}
	}
	return moves, nil
}

// simulate plays the moves and writes each turn. It stops early when the
// game ends.
func simulate(w io.Writer, game *t2048.Game, moves []t2048.Direction, theme t2048.Theme, everyTurn bool) {
	if everyTurn {
		fmt.Fprintln(w, "Start")
		fmt.Fprint(w, t2048.FormatGrid(game.Grid(), theme))
	}

	for i, dir := range moves {
		res := game.Turn(dir)
		if everyTurn {
			fmt.Fprintf(w, "\nTurn %d: %s  +%d  score %d", i+1, dir, res.Gained, game.Score())
			if !res.Changed {
				fmt.Fprint(w, "  (no change)")
			}
			fmt.Fprintln(w)
			fmt.Fprint(w, t2048.FormatGrid(game.Grid(), theme))
		}
		if res.GameOver {
			fmt.Fprintf(w, "\nGame over after %d moves.\n", game.Moves())
			break
		}
	}

	if !everyTurn {
		fmt.Fprint(w, t2048.FormatGrid(game.Grid(), theme))
	}
	fmt.Fprintf(w, "Final score: %d  Best tile: %d  Moves: %d\n",
		game.Score(), t2048.MaxTile(game.Grid()), game.Moves())
}
