// internal/game/engine.go
//
// Core game engine for a single Strands session.
// Responsibilities:
//   - Match submitted strands against theme answers (in either trace
//     direction) and the injected dictionary oracle.
//   - Track found strands in discovery order and found words by text.
//   - Drive the hint protocol: meter, threshold, active hint lifecycle.
//   - Report game-over once every theme word is found (monotonic).
//
// Notes:
//   - The session is single-threaded and synchronous; each Game owns its
//     state exclusively.
//   - An off-board strand is a caller error (ErrOutOfBounds), never a
//     gameplay outcome.
package game

import (
	"github.com/tbraddock/strands/internal/board"
	"github.com/tbraddock/strands/internal/grid"
)

// Game holds the immutable puzzle (theme, board, answers) and the
// mutable play state for one session. Construct with Load.
type Game struct {
	theme   string
	board   *board.Board
	answers []Answer
	dict    Dictionary

	found         []grid.Strand       // found theme strands, discovery order
	foundWords    map[string]struct{} // found words by text, theme ∪ dictionary
	hintMeter     int
	hintThreshold int
	activeHint    *Hint
}

// Theme returns the theme line from the game file.
func (g *Game) Theme() string { return g.theme }

// Board returns the puzzle board.
func (g *Game) Board() *board.Board { return g.board }

// Answers returns the theme answers in game-file order.
// Callers must not modify the returned slice.
func (g *Game) Answers() []Answer { return g.answers }

// FoundStrands returns the found theme strands in the order they were
// submitted. These are the strands the player traced, which may differ
// step-for-step from the stored answer strands while covering the same
// cells. Callers must not modify the returned slice.
func (g *Game) FoundStrands() []grid.Strand { return g.found }

// GameOver reports whether every theme word has been found.
func (g *Game) GameOver() bool { return len(g.found) == len(g.answers) }

// HintThreshold returns the meter level required to unlock a hint.
func (g *Game) HintThreshold() int { return g.hintThreshold }

// HintMeter returns the current hint meter.
func (g *Game) HintMeter() int { return g.hintMeter }

// ActiveHint returns the current hint, if one is active.
func (g *Game) ActiveHint() (Hint, bool) {
	if g.activeHint == nil {
		return Hint{}, false
	}
	return *g.activeHint, true
}

// SubmitStrand plays a selected strand.
//
// Resolution order:
//  1. Evaluate the strand on the board; an off-board strand returns
//     ErrOutOfBounds and changes nothing.
//  2. A strand covering an answer's cells and spelling its word in
//     either direction is a theme find, unless those cells were already
//     found. Finding the hinted answer clears the active hint.
//  3. Fewer than four letters → "too_short", dictionary never consulted.
//  4. A word already found by text, or cells already found, → "already_found".
//  5. A dictionary hit is recorded by text and advances the hint meter.
//  6. Anything else → "not_in_list".
func (g *Game) SubmitStrand(s grid.Strand) (SubmitResult, error) {
	word, err := g.board.EvaluateStrand(s)
	if err != nil {
		return SubmitResult{}, err
	}
	cells := s.PositionSet()

	if i, ok := g.matchAnswer(word, cells); ok && !g.cellsFound(cells) {
		g.found = append(g.found, s)
		g.foundWords[g.answers[i].Word] = struct{}{}
		if g.activeHint != nil && g.activeHint.Index == i {
			g.activeHint = nil
		}
		return SubmitResult{Outcome: SubmitTheme, Word: g.answers[i].Word}, nil
	}
	if len(word) < 4 {
		return SubmitResult{Outcome: SubmitTooShort}, nil
	}
	if _, ok := g.foundWords[word]; ok || g.cellsFound(cells) {
		return SubmitResult{Outcome: SubmitAlreadyFound}, nil
	}
	if g.dict != nil && g.dict.Contains(word) {
		g.foundWords[word] = struct{}{}
		g.hintMeter++
		return SubmitResult{Outcome: SubmitDictionary, Word: word}, nil
	}
	return SubmitResult{Outcome: SubmitNotInWordList}, nil
}

// UseHint plays a hint.
//
// Resolution order:
//  1. Meter below threshold → "not_ready".
//  2. An active, fully revealed hint → "already_shown".
//  3. An active, unrevealed hint is revealed in place.
//  4. Otherwise the first unfound answer becomes the active hint
//     (unrevealed) and the meter is consumed.
func (g *Game) UseHint() HintResult {
	if g.hintMeter < g.hintThreshold {
		return HintResult{Outcome: HintNotReady}
	}
	if g.activeHint != nil {
		if g.activeHint.Revealed {
			return HintResult{Outcome: HintAlreadyShown, Index: g.activeHint.Index, Revealed: true}
		}
		g.activeHint.Revealed = true
		return HintResult{Outcome: HintOK, Index: g.activeHint.Index, Revealed: true}
	}
	for i, a := range g.answers {
		if !g.cellsFound(a.Strand.PositionSet()) {
			g.activeHint = &Hint{Index: i}
			g.hintMeter = 0
			return HintResult{Outcome: HintOK, Index: i, Revealed: false}
		}
	}
	// Every answer is found; nothing left to hint at.
	return HintResult{Outcome: HintNotReady}
}

// matchAnswer returns the index of the answer whose cells equal the
// submitted set and whose word matches the spelled text in either trace
// direction.
func (g *Game) matchAnswer(word string, cells map[grid.Pos]struct{}) (int, bool) {
	for i, a := range g.answers {
		if !sameCells(cells, a.Strand.PositionSet()) {
			continue
		}
		if word == a.Word || reverse(word) == a.Word {
			return i, true
		}
	}
	return 0, false
}

// cellsFound reports whether a found strand already covers exactly the
// given cells.
func (g *Game) cellsFound(cells map[grid.Pos]struct{}) bool {
	for _, f := range g.found {
		if sameCells(cells, f.PositionSet()) {
			return true
		}
	}
	return false
}

// sameCells compares two position sets.
func sameCells(a, b map[grid.Pos]struct{}) bool {
	if len(a) != len(b) {
		return false
	}
	for p := range a {
		if _, ok := b[p]; !ok {
			return false
		}
	}
	return true
}

// reverse returns s backwards.
func reverse(s string) string {
	b := []byte(s)
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return string(b)
}
