package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ninebygo/engine/geometry"
)

// columnLetters follows the conventional Go board lettering: A..H, J..
// ("I" is skipped so it can't be confused with "1").
const columnLetters = "ABCDEFGHJ"

// parseCoord parses a GTP-style coordinate like "D4" into a Position.
func parseCoord(s string) (geometry.Position, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if len(s) < 2 {
		return geometry.Position{}, fmt.Errorf("bad coordinate %q", s)
	}
	col := strings.IndexByte(columnLetters, s[0])
	if col < 0 {
		return geometry.Position{}, fmt.Errorf("bad column in coordinate %q", s)
	}
	rowNum, err := strconv.Atoi(s[1:])
	if err != nil {
		return geometry.Position{}, fmt.Errorf("bad row in coordinate %q: %w", s, err)
	}
	row := rowNum - 1
	p := geometry.Position{Row: int8(row), Col: int8(col)}
	if !p.Valid() {
		return geometry.Position{}, fmt.Errorf("coordinate %q is off the board", s)
	}
	return p, nil
}

func formatCoord(p geometry.Position) string {
	return fmt.Sprintf("%c%d", columnLetters[p.Col], p.Row+1)
}

func parseColor(s string) (geometry.Color, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "black", "b":
		return geometry.Black, nil
	case "white", "w":
		return geometry.White, nil
	default:
		return geometry.None, fmt.Errorf("bad color %q", s)
	}
}

func parseLevel(s string) (level int, err error) {
	names := map[string]int{
		"joke": 0, "easy": 1, "medium": 2, "hard": 3, "crazy": 4, "demon": 5,
	}
	l, ok := names[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return 0, fmt.Errorf("bad level %q", s)
	}
	return l, nil
}
