package normalization

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestParseHexColor_Normalizes(t *testing.T) {
	got, err := ParseHexColor("  #a1b2c3 ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "#A1B2C3" {
		t.Fatalf("expected #A1B2C3, got %q", got)
	}
}

func TestParseHexColor_Rejects(t *testing.T) {
	for _, in := range []string{"", "a1b2c3", "#a1b2c", "#a1b2c3d", "#a1b2cz"} {
		if _, err := ParseHexColor(in); err == nil {
			t.Fatalf("expected error for %q", in)
		}
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("abcdef", 4); got != "abcd" {
		t.Fatalf("expected abcd, got %q", got)
	}
	if got := Truncate("abc", 255); got != "abc" {
		t.Fatalf("expected abc, got %q", got)
	}
	if got := Truncate("abc", 0); got != "" {
		t.Fatalf("expected empty, got %q", got)
	}
}

func TestTruncateCountsRunes(t *testing.T) {
	in := strings.Repeat("é", 200)
	if got := Truncate(in, 255); got != in {
		t.Fatalf("200 runes fit within a 255 limit, got %d runes", utf8.RuneCountInString(got))
	}

	got := Truncate(strings.Repeat("é", 300), 255)
	if n := utf8.RuneCountInString(got); n != 255 {
		t.Fatalf("expected 255 runes, got %d", n)
	}
	if !utf8.ValidString(got) {
		t.Fatalf("truncated string is not valid UTF-8: %q", got[len(got)-4:])
	}
}
