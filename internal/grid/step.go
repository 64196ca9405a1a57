// internal/grid/step.go
//
// Direction vocabulary for moving between neighboring board cells.
// Defines:
//   - Step: closed enum of the four cardinal directions (N, S, E, W) and
//     the four intercardinal directions (NW, NE, SW, SE).
//   - Per-step (row, col) deltas used by Pos.TakeStep and Pos.StepTo.
//   - ParseStep: case-insensitive parsing of game-file step tokens.

package grid

import (
	"fmt"
	"strings"
)

// Step is one of the eight neighboring directions. Row indices grow
// downward and column indices grow rightward, so N has delta (-1, 0).
type Step int

const (
	N Step = iota
	S
	E
	W
	NW
	NE
	SW
	SE
)

// stepDeltas maps each step to its (row, col) delta.
// Every delta is in {-1, 0, 1}² and never (0, 0).
var stepDeltas = [...]struct{ dr, dc int }{
	N:  {-1, 0},
	S:  {1, 0},
	E:  {0, 1},
	W:  {0, -1},
	NW: {-1, -1},
	NE: {-1, 1},
	SW: {1, -1},
	SE: {1, 1},
}

// stepNames holds the lowercase tokens used in game files.
var stepNames = [...]string{
	N:  "n",
	S:  "s",
	E:  "e",
	W:  "w",
	NW: "nw",
	NE: "ne",
	SW: "sw",
	SE: "se",
}

// Delta returns the (row, col) offset for the step.
func (s Step) Delta() (dr, dc int) {
	d := stepDeltas[s]
	return d.dr, d.dc
}

// String returns the lowercase game-file token for the step.
func (s Step) String() string {
	if s < 0 || int(s) >= len(stepNames) {
		return fmt.Sprintf("Step(%d)", int(s))
	}
	return stepNames[s]
}

// ParseStep parses a step token, ignoring case.
// Returns an error for anything that is not one of the eight directions.
func ParseStep(tok string) (Step, error) {
	for st, name := range stepNames {
		if strings.EqualFold(tok, name) {
			return Step(st), nil
		}
	}
	return 0, fmt.Errorf("unknown step %q", tok)
}
