// internal/grid/pos.go
//
// Board-agnostic grid positions.
// Positions are 0-indexed (row, col) pairs; (0, 0) is the top-left
// corner of a board, rows grow downward and columns grow rightward.
// Positions are signed and unbounded — bounds only exist once a board
// is involved.

package grid

import (
	"errors"
	"fmt"
)

// ErrNotAdjacent is returned by StepTo for positions that are not
// exactly one king-move apart.
var ErrNotAdjacent = errors.New("positions are not adjacent")

// Pos is a position on an (unbounded) grid. Comparable value type;
// equality is structural.
type Pos struct {
	R, C int
}

// TakeStep returns the position reached by taking one step from p.
// Total: never fails, even off any particular board.
func (p Pos) TakeStep(s Step) Pos {
	dr, dc := s.Delta()
	return Pos{R: p.R + dr, C: p.C + dc}
}

// StepTo returns the step that moves from p to other.
// Fails with ErrNotAdjacent when other == p or when either delta is
// outside {-1, 0, 1}.
func (p Pos) StepTo(other Pos) (Step, error) {
	dr := other.R - p.R
	dc := other.C - p.C
	if dr == 0 && dc == 0 || dr < -1 || dr > 1 || dc < -1 || dc > 1 {
		return 0, fmt.Errorf("%w: %v to %v", ErrNotAdjacent, p, other)
	}
	for st, d := range stepDeltas {
		if d.dr == dr && d.dc == dc {
			return Step(st), nil
		}
	}
	// Unreachable: every non-zero delta in {-1,0,1}² has a step.
	return 0, fmt.Errorf("%w: %v to %v", ErrNotAdjacent, p, other)
}

// IsAdjacentTo reports whether other is exactly one step away from p.
func (p Pos) IsAdjacentTo(other Pos) bool {
	_, err := p.StepTo(other)
	return err == nil
}

// String formats the position as "(r, c)".
func (p Pos) String() string {
	return fmt.Sprintf("(%d, %d)", p.R, p.C)
}
