package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

func TestPrintSlotsEmpty(t *testing.T) {
	var buf bytes.Buffer
	printSlots(&buf, nil)

	if !strings.Contains(buf.String(), "No saved games.") {
		t.Errorf("output = %q", buf.String())
	}
}

func TestPrintSlots(t *testing.T) {
	slots := []storage.Slot{
		{Name: "autosave", Score: 12840, Moves: 701, Grid: t2048.Grid{{1024}}, UpdatedAt: time.Now()},
		{
			Name: "stuck",
			Grid: t2048.Grid{
				{2, 4, 2, 4},
				{4, 2, 4, 2},
				{2, 4, 2, 4},
				{4, 2, 4, 2},
			},
			UpdatedAt: time.Now().Add(-3 * time.Hour),
		},
	}

	var buf bytes.Buffer
	printSlots(&buf, slots)

	out := buf.String()
	for _, want := range []string{"SLOT", "autosave", "12,840", "1024", "701", "playing", "stuck", "over", "3 hours ago"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}
