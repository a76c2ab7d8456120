package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
)

type firstCellRand struct{}

func (firstCellRand) Intn(int) int     { return 0 }
func (firstCellRand) Float64() float64 { return 0.9 }

func TestParseMoves(t *testing.T) {
	L, R, U, D := t2048.DirLeft, t2048.DirRight, t2048.DirUp, t2048.DirDown

	tests := []struct {
		name    string
		input   string
		want    []t2048.Direction
		wantErr bool
	}{
		{"letters", "LLRUD", []t2048.Direction{L, L, R, U, D}, false},
		{"lowercase", "lrud", []t2048.Direction{L, R, U, D}, false},
		{"words", "left right up down", []t2048.Direction{L, R, U, D}, false},
		{"commas", "left,up, d", []t2048.Direction{L, U, D}, false},
		{"mixed", "up LR", []t2048.Direction{U, L, R}, false},
		{"empty", "", nil, true},
		{"only separators", " , ", nil, true},
		{"unknown letter", "LXR", nil, true},
		{"unknown word", "sideways", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseMoves(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("parseMoves(%q) = %v, want error", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseMoves(%q) failed: %v", tt.input, err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("parseMoves(%q) = %v, want %v", tt.input, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("move %d = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestSimulate(t *testing.T) {
	game := t2048.Restore("", t2048.Grid{{2, 2, 2, 2}}, 0, 0, firstCellRand{}, t2048.DefaultOptions())

	var buf bytes.Buffer
	simulate(&buf, game, []t2048.Direction{t2048.DirLeft, t2048.DirLeft}, t2048.ThemeNumbers, true)

	out := buf.String()
	for _, want := range []string{
		"Start",
		"Turn 1: left  +8  score 8",
		"Turn 2: left  +8  score 16",
		"Final score: 16  Best tile: 8  Moves: 2",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestSimulateStopsAtGameOver(t *testing.T) {
	grid := t2048.Grid{
		{2, 4, 8, 16},
		{4, 8, 16, 32},
		{2, 4, 8, 16},
		{0, 32, 64, 128},
	}
	game := t2048.Restore("", grid, 0, 0, firstCellRand{}, t2048.DefaultOptions())

	var buf bytes.Buffer
	moves := []t2048.Direction{t2048.DirLeft, t2048.DirUp, t2048.DirUp}
	simulate(&buf, game, moves, t2048.ThemeNumbers, false)

	out := buf.String()
	if !strings.Contains(out, "Game over after 1 moves.") {
		t.Errorf("expected game over after the first move:\n%s", out)
	}
	if strings.Contains(out, "Turn") {
		t.Errorf("final-only output should not list turns:\n%s", out)
	}
	if game.Moves() != 1 {
		t.Errorf("moves = %d, want 1", game.Moves())
	}
}

func TestSaveSlotFor(t *testing.T) {
	tests := []struct {
		flag, resume, autosave, want string
	}{
		{"mine", "old", "autosave", "mine"},
		{"", "old", "autosave", "old"},
		{"", "", "autosave", "autosave"},
		{"", "", "", ""},
	}

	for _, tt := range tests {
		if got := saveSlotFor(tt.flag, tt.resume, tt.autosave); got != tt.want {
			t.Errorf("saveSlotFor(%q, %q, %q) = %q, want %q", tt.flag, tt.resume, tt.autosave, got, tt.want)
		}
	}
}
