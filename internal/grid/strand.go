// internal/grid/strand.go
//
// Strands: paths over the grid, represented as a start position plus a
// sequence of steps.
// Responsibilities:
//   - Derive the absolute position list for a strand.
//   - Detect cyclic strands (a position visited twice).
//   - Detect folded strands (two path edges crossing geometrically).
//
// A strand is board-agnostic: its positions assume an unbounded grid.
// Bounds checking happens when a board evaluates the strand.

package grid

// Strand is an ordered path: a start position followed by zero or more
// steps. Two strands are equal only when start and steps match; strands
// covering the same cells via different step sequences are distinct
// values (the game engine compares those by position set instead).
type Strand struct {
	Start Pos
	Steps []Step
}

// Positions returns the absolute positions visited by the strand:
// the start followed by the cumulative application of each step.
// The result always has len(Steps)+1 entries.
func (s Strand) Positions() []Pos {
	out := make([]Pos, 0, len(s.Steps)+1)
	p := s.Start
	out = append(out, p)
	for _, st := range s.Steps {
		p = p.TakeStep(st)
		out = append(out, p)
	}
	return out
}

// PositionSet returns the set of cells the strand covers. Used for
// direction-agnostic strand identity.
func (s Strand) PositionSet() map[Pos]struct{} {
	pos := s.Positions()
	set := make(map[Pos]struct{}, len(pos))
	for _, p := range pos {
		set[p] = struct{}{}
	}
	return set
}

// Equal reports structural equality over (start, steps).
func (s Strand) Equal(other Strand) bool {
	if s.Start != other.Start || len(s.Steps) != len(other.Steps) {
		return false
	}
	for i, st := range s.Steps {
		if st != other.Steps[i] {
			return false
		}
	}
	return true
}

// IsCyclic reports whether any position appears more than once in the
// strand.
func (s Strand) IsCyclic() bool {
	pos := s.Positions()
	return len(s.PositionSet()) < len(pos)
}

// IsFolded reports whether any two edges of the path cross.
//
// Edges are the unit segments between consecutive positions. Only pairs
// with index distance >= 2 are tested; consecutive edges always share an
// endpoint. Edges that meet solely at a shared endpoint (which happens
// when a cyclic strand revisits a cell) do not count as a fold; a proper
// crossing or a collinear overlap longer than a point does. Two diagonal
// edges crossing at a lattice mid-point are the common case.
func (s Strand) IsFolded() bool {
	pos := s.Positions()
	for i := 0; i+1 < len(pos); i++ {
		for j := i + 2; j+1 < len(pos); j++ {
			if edgesCross(pos[i], pos[i+1], pos[j], pos[j+1]) {
				return true
			}
		}
	}
	return false
}

// edgesCross reports whether unit segments p1-q1 and p2-q2 intersect at
// anything other than a shared endpoint. Exact integer arithmetic.
func edgesCross(p1, q1, p2, q2 Pos) bool {
	o1 := orient(p1, q1, p2)
	o2 := orient(p1, q1, q2)
	o3 := orient(p2, q2, p1)
	o4 := orient(p2, q2, q1)

	// Proper crossing: each segment straddles the other's line.
	if o1*o2 < 0 && o3*o4 < 0 {
		return true
	}

	// Collinear: folded only if the overlap is longer than a point.
	if o1 == 0 && o2 == 0 && o3 == 0 && o4 == 0 {
		loR := max(min(p1.R, q1.R), min(p2.R, q2.R))
		hiR := min(max(p1.R, q1.R), max(p2.R, q2.R))
		loC := max(min(p1.C, q1.C), min(p2.C, q2.C))
		hiC := min(max(p1.C, q1.C), max(p2.C, q2.C))
		return loR < hiR || loC < hiC
	}

	// Remaining touch configurations can only happen at lattice points,
	// which on unit edges are endpoints of both segments. A shared
	// endpoint is not a fold.
	return false
}

// orient returns the sign of the cross product (b-a) × (c-a):
// positive for one turn direction, negative for the other, zero for
// collinear points.
func orient(a, b, c Pos) int {
	v := (b.R-a.R)*(c.C-a.C) - (b.C-a.C)*(c.R-a.R)
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
