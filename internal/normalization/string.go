package normalization

import (
	"fmt"
	"strings"
)

func TrimInput(input string) string {
	return strings.TrimSpace(input)
}

func ParseEmail(input string) string {
	return strings.ToLower(strings.TrimSpace(input))
}

// ParseHexColor validates a #RRGGBB color and returns it uppercased.
func ParseHexColor(input string) (string, error) {
	c := strings.ToUpper(strings.TrimSpace(input))
	if len(c) != 7 || c[0] != '#' {
		return "", fmt.Errorf("invalid hex color %q", input)
	}
	for _, r := range c[1:] {
		if (r < '0' || r > '9') && (r < 'A' || r > 'F') {
			return "", fmt.Errorf("invalid hex color %q", input)
		}
	}
	return c, nil
}

// Truncate clips a string to max characters, used for bounded free-text
// columns. Cuts land on rune boundaries so the result stays valid UTF-8.
func Truncate(input string, max int) string {
	if max <= 0 {
		return ""
	}
	if len(input) <= max {
		return input
	}
	runes := []rune(input)
	if len(runes) <= max {
		return input
	}
	return string(runes[:max])
}
