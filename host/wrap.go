package host

import (
	"strings"

	"github.com/zucenko/portals/render"
	"golang.org/x/image/font"
)

// wrap breaks s into lines no wider than width. Words longer than a line are
// kept whole.
func wrap(face font.Face, s string, width float64) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return []string{""}
	}
	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		candidate := line + " " + w
		if render.TextWidth(face, candidate) <= width {
			line = candidate
			continue
		}
		lines = append(lines, line)
		line = w
	}
	return append(lines, line)
}
