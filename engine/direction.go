package engine

import "fmt"

// Direction is one of the four cardinal moves. DirNone means no input.
type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

func (d Direction) String() string {
	switch d {
	case DirNone:
		return ""
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return fmt.Sprintf("dir(%d)", int(d))
	}
}

// ParseDirection reads the tokens used by touch widgets and the host bridge.
// The empty string is DirNone.
func ParseDirection(s string) (Direction, bool) {
	switch s {
	case "":
		return DirNone, true
	case "up":
		return DirUp, true
	case "down":
		return DirDown, true
	case "left":
		return DirLeft, true
	case "right":
		return DirRight, true
	}
	return DirNone, false
}

// delta is the unit step along the single axis implied by d.
func (d Direction) delta() (dx, dy float64) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	}
	return 0, 0
}
