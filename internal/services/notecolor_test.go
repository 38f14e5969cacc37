package services

import (
	"testing"

	"github.com/calebwray/ideawell-backend/internal/types"
)

func TestPaletteOrDefault(t *testing.T) {
	if got := PaletteOrDefault(nil); len(got) != len(DefaultNoteColors) {
		t.Fatalf("empty palette should fall back to %d built-ins, got %d", len(DefaultNoteColors), len(got))
	}

	own := []*types.NoteColor{{Name: "Teal", Color: "#14B8A6"}}
	got := PaletteOrDefault(own)
	if len(got) != 1 || got[0].Name != "Teal" {
		t.Fatalf("user palette should win, got %v", got)
	}
}
