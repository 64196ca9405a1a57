package game

import (
	"errors"
	"testing"

	"github.com/tbraddock/strands/internal/board"
	"github.com/tbraddock/strands/internal/grid"
)

// dict is a canned oracle for tests.
type dict map[string]bool

func (d dict) Contains(w string) bool { return d[w] }

// Strands on the cs-142 board used across the engine tests.
var (
	cmscStrand  = grid.Strand{Start: grid.Pos{R: 0, C: 3}, Steps: []grid.Step{grid.W, grid.W, grid.W}}
	oneStrand   = grid.Strand{Start: grid.Pos{R: 1, C: 0}, Steps: []grid.Step{grid.S, grid.E}}
	fortyStrand = grid.Strand{Start: grid.Pos{R: 1, C: 1}, Steps: []grid.Step{grid.E, grid.E, grid.NE, grid.S}}
	twoStrand   = grid.Strand{Start: grid.Pos{R: 2, C: 4}, Steps: []grid.Step{grid.W, grid.W}}

	// cmsc traced from the other end.
	cmscReversed = grid.Strand{Start: grid.Pos{R: 0, C: 0}, Steps: []grid.Step{grid.E, grid.E, grid.E}}

	// Non-theme strands: "crow" and "fort" are dictionary words,
	// "ocsm" is nothing, "eon" is a three-letter dictionary word.
	crowStrand = grid.Strand{Start: grid.Pos{R: 0, C: 3}, Steps: []grid.Step{grid.S, grid.SW, grid.E}}
	fortStrand = grid.Strand{Start: grid.Pos{R: 1, C: 1}, Steps: []grid.Step{grid.E, grid.E, grid.NE}}
	ocsmStrand = grid.Strand{Start: grid.Pos{R: 1, C: 0}, Steps: []grid.Step{grid.N, grid.E, grid.E}}
	eonStrand  = grid.Strand{Start: grid.Pos{R: 2, C: 1}, Steps: []grid.Step{grid.NW, grid.S}}
)

func newGame(t *testing.T, threshold int) *Game {
	t.Helper()
	return mustLoad(t, cs142, threshold, dict{"crow": true, "fort": true, "eon": true})
}

func submitTheme(t *testing.T, g *Game, s grid.Strand, word string) {
	t.Helper()
	res, err := g.SubmitStrand(s)
	if err != nil {
		t.Fatalf("SubmitStrand failed: %v", err)
	}
	if res.Outcome != SubmitTheme || res.Word != word {
		t.Fatalf("SubmitStrand = %+v, want theme find %q", res, word)
	}
}

func submitOutcome(t *testing.T, g *Game, s grid.Strand, want SubmitOutcome) {
	t.Helper()
	res, err := g.SubmitStrand(s)
	if err != nil {
		t.Fatalf("SubmitStrand failed: %v", err)
	}
	if res.Outcome != want {
		t.Fatalf("SubmitStrand = %+v, want outcome %q", res, want)
	}
}

func TestSubmitAnswersInOrder(t *testing.T) {
	g := newGame(t, 3)
	for i, step := range []struct {
		strand grid.Strand
		word   string
	}{
		{cmscStrand, "cmsc"},
		{oneStrand, "one"},
		{fortyStrand, "forty"},
		{twoStrand, "two"},
	} {
		submitTheme(t, g, step.strand, step.word)
		if got := len(g.FoundStrands()); got != i+1 {
			t.Fatalf("after %q: %d found strands, want %d", step.word, got, i+1)
		}
	}
	if !g.GameOver() {
		t.Error("GameOver() = false after finding everything")
	}
}

func TestSubmitAnswersAnyOrder(t *testing.T) {
	g := newGame(t, 3)
	submitTheme(t, g, fortyStrand, "forty")
	submitTheme(t, g, twoStrand, "two")
	submitTheme(t, g, oneStrand, "one")
	if g.GameOver() {
		t.Fatal("game over with one answer missing")
	}
	submitTheme(t, g, cmscStrand, "cmsc")
	if !g.GameOver() {
		t.Error("GameOver() = false after finding everything")
	}
	// Discovery order matches submission order, not file order.
	found := g.FoundStrands()
	if !found[0].Equal(fortyStrand) || !found[3].Equal(cmscStrand) {
		t.Errorf("found order = %v", found)
	}
}

func TestSubmitMissesAlongTheWay(t *testing.T) {
	g := newGame(t, 3)
	submitTheme(t, g, fortyStrand, "forty")
	submitOutcome(t, g, ocsmStrand, SubmitNotInWordList)
	submitOutcome(t, g, fortyStrand, SubmitAlreadyFound)
	if len(g.FoundStrands()) != 1 {
		t.Fatalf("%d found strands, want 1", len(g.FoundStrands()))
	}
	submitTheme(t, g, twoStrand, "two")
	submitTheme(t, g, oneStrand, "one")
	submitTheme(t, g, cmscStrand, "cmsc")
	if !g.GameOver() {
		t.Error("GameOver() = false after finding everything")
	}
}

func TestResubmitWinningStrand(t *testing.T) {
	g := newGame(t, 3)
	submitTheme(t, g, cmscStrand, "cmsc")
	submitOutcome(t, g, cmscStrand, SubmitAlreadyFound)
}

func TestReverseTraceMatchesTheme(t *testing.T) {
	// Theme matching is direction-agnostic: tracing cmsc backwards
	// spells "csmc" but covers the same cells.
	g := newGame(t, 3)
	submitTheme(t, g, cmscReversed, "cmsc")
	// The recorded strand is the one the player traced.
	if !g.FoundStrands()[0].Equal(cmscReversed) {
		t.Errorf("found strand = %v, want the submitted reverse trace", g.FoundStrands()[0])
	}
	submitOutcome(t, g, cmscStrand, SubmitAlreadyFound)
}

func TestDictionaryWord(t *testing.T) {
	g := newGame(t, 3)
	res, err := g.SubmitStrand(crowStrand)
	if err != nil {
		t.Fatalf("SubmitStrand failed: %v", err)
	}
	if res.Outcome != SubmitDictionary || res.Word != "crow" {
		t.Fatalf("SubmitStrand = %+v, want dictionary find %q", res, "crow")
	}
	if g.HintMeter() != 1 {
		t.Errorf("HintMeter() = %d, want 1", g.HintMeter())
	}
	// Dictionary finds never count toward game completion.
	if len(g.FoundStrands()) != 0 {
		t.Errorf("dictionary word recorded as a theme strand")
	}
	submitOutcome(t, g, crowStrand, SubmitAlreadyFound)
	if g.HintMeter() != 1 {
		t.Errorf("HintMeter() = %d after re-find, want 1", g.HintMeter())
	}
}

func TestTooShortBeforeDictionary(t *testing.T) {
	// "eon" is in the oracle, but three letters never reach it.
	g := newGame(t, 3)
	submitOutcome(t, g, eonStrand, SubmitTooShort)
	if g.HintMeter() != 0 {
		t.Errorf("HintMeter() = %d, want 0", g.HintMeter())
	}
}

func TestSubmitOutOfBounds(t *testing.T) {
	g := newGame(t, 3)
	s := grid.Strand{Start: grid.Pos{R: 0, C: 3}, Steps: []grid.Step{grid.E, grid.E}}
	if _, err := g.SubmitStrand(s); !errors.Is(err, board.ErrOutOfBounds) {
		t.Fatalf("error = %v, want ErrOutOfBounds", err)
	}
	if len(g.FoundStrands()) != 0 || g.HintMeter() != 0 {
		t.Error("out-of-bounds submission mutated state")
	}
}

func TestHintSequence(t *testing.T) {
	g := newGame(t, 0)

	res := g.UseHint()
	if res.Outcome != HintOK || res.Index != 0 || res.Revealed {
		t.Fatalf("first UseHint = %+v, want new hint for answer 0", res)
	}
	if h, ok := g.ActiveHint(); !ok || h != (Hint{Index: 0, Revealed: false}) {
		t.Fatalf("ActiveHint = %+v, %v", h, ok)
	}

	res = g.UseHint()
	if res.Outcome != HintOK || res.Index != 0 || !res.Revealed {
		t.Fatalf("second UseHint = %+v, want revealed hint for answer 0", res)
	}
	if h, _ := g.ActiveHint(); !h.Revealed {
		t.Fatal("active hint not revealed")
	}

	if res = g.UseHint(); res.Outcome != HintAlreadyShown {
		t.Fatalf("third UseHint = %+v, want %q", res, HintAlreadyShown)
	}

	// Finding the hinted answer clears the hint.
	submitTheme(t, g, cmscStrand, "cmsc")
	if _, ok := g.ActiveHint(); ok {
		t.Fatal("active hint survived finding its answer")
	}

	// The next hint targets the first unfound answer.
	submitTheme(t, g, oneStrand, "one")
	res = g.UseHint()
	if res.Outcome != HintOK || res.Index != 2 || res.Revealed {
		t.Fatalf("UseHint = %+v, want new hint for answer 2", res)
	}
	submitTheme(t, g, fortyStrand, "forty")
	if _, ok := g.ActiveHint(); ok {
		t.Fatal("active hint survived finding its answer")
	}
}

func TestHintUnaffectedByOtherFinds(t *testing.T) {
	g := newGame(t, 0)
	if res := g.UseHint(); res.Index != 0 {
		t.Fatalf("UseHint = %+v, want hint for answer 0", res)
	}
	// Finding a different answer leaves the hint in place.
	submitTheme(t, g, twoStrand, "two")
	if h, ok := g.ActiveHint(); !ok || h.Index != 0 {
		t.Fatalf("ActiveHint = %+v, %v, want hint for answer 0", h, ok)
	}
}

func TestHintMeterGating(t *testing.T) {
	g := newGame(t, 1)

	if res := g.UseHint(); res.Outcome != HintNotReady {
		t.Fatalf("UseHint = %+v, want %q", res, HintNotReady)
	}

	// A dictionary find fills the meter; taking a hint consumes it.
	submitOutcome(t, g, crowStrand, SubmitDictionary)
	res := g.UseHint()
	if res.Outcome != HintOK || res.Index != 0 || res.Revealed {
		t.Fatalf("UseHint = %+v, want new hint for answer 0", res)
	}
	if g.HintMeter() != 0 {
		t.Fatalf("HintMeter() = %d after taking a hint, want 0", g.HintMeter())
	}

	// The meter gate applies even to revealing the current hint.
	if res := g.UseHint(); res.Outcome != HintNotReady {
		t.Fatalf("UseHint = %+v, want %q", res, HintNotReady)
	}
	submitOutcome(t, g, fortStrand, SubmitDictionary)
	res = g.UseHint()
	if res.Outcome != HintOK || res.Index != 0 || !res.Revealed {
		t.Fatalf("UseHint = %+v, want revealed hint for answer 0", res)
	}
}

func TestOutcomeMessages(t *testing.T) {
	cases := []struct {
		got  string
		want string
	}{
		{SubmitResult{Outcome: SubmitTooShort}.Message(), "Too short"},
		{SubmitResult{Outcome: SubmitAlreadyFound}.Message(), "Already found"},
		{SubmitResult{Outcome: SubmitNotInWordList}.Message(), "Not in word list"},
		{HintResult{Outcome: HintNotReady}.Message(), "No hint yet"},
		{HintResult{Outcome: HintAlreadyShown}.Message(), "Use your current hint"},
	}
	for _, c := range cases {
		if c.got != c.want {
			t.Errorf("message = %q, want %q", c.got, c.want)
		}
	}
}
