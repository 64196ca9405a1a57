// tui.go
//
// Minimal terminal front-end for a Strands session.
// Renders the theme, board, and hint state; reads commands from stdin:
//   <row> <col> <step>...   submit a strand (1-indexed, file grammar)
//   hint | h                request a hint
//   quit | q                leave the game
//
// All rules live in the engine; this layer only parses input and prints
// the engine's outcome vocabulary.

package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/tbraddock/strands/internal/game"
	"github.com/tbraddock/strands/internal/grid"
)

func runTUI(g *game.Game) {
	fmt.Printf("Theme: %s\n", g.Theme())
	sc := bufio.NewScanner(os.Stdin)
	for {
		printBoard(g)
		if g.GameOver() {
			fmt.Println("You found every theme word!")
			return
		}
		printHint(g)
		fmt.Print("> ")
		if !sc.Scan() {
			return
		}
		line := strings.TrimSpace(sc.Text())
		switch {
		case line == "":
			continue
		case line == "quit" || line == "q":
			return
		case line == "hint" || line == "h":
			fmt.Println(g.UseHint().Message())
		default:
			s, err := parseStrandInput(line)
			if err != nil {
				fmt.Println(err)
				continue
			}
			res, err := g.SubmitStrand(s)
			if err != nil {
				fmt.Println("That strand leaves the board")
				continue
			}
			log.Debug().Str("outcome", string(res.Outcome)).Str("word", res.Word).Msg("strand submitted")
			fmt.Println(res.Message())
		}
	}
}

// printBoard draws the grid, uppercasing letters on found strands.
func printBoard(g *game.Game) {
	found := make(map[grid.Pos]struct{})
	for _, s := range g.FoundStrands() {
		for _, p := range s.Positions() {
			found[p] = struct{}{}
		}
	}
	b := g.Board()
	for r := 0; r < b.NumRows(); r++ {
		var sb strings.Builder
		for c := 0; c < b.NumCols(); c++ {
			p := grid.Pos{R: r, C: c}
			letter, _ := b.Letter(p)
			if _, ok := found[p]; ok {
				letter -= 'a' - 'A'
			}
			sb.WriteByte(letter)
			sb.WriteByte(' ')
		}
		fmt.Println(strings.TrimRight(sb.String(), " "))
	}
	fmt.Printf("Found %d of %d theme words — hint meter %d/%d\n",
		len(g.FoundStrands()), len(g.Answers()), g.HintMeter(), g.HintThreshold())
}

// printHint shows the active hint; a revealed hint includes the span of
// the answer, 1-indexed like the game file.
func printHint(g *game.Game) {
	h, ok := g.ActiveHint()
	if !ok {
		return
	}
	ans := g.Answers()[h.Index]
	if !h.Revealed {
		fmt.Printf("Hint: a %d-letter theme word is out there\n", len(ans.Word))
		return
	}
	pos := ans.Strand.Positions()
	first, last := pos[0], pos[len(pos)-1]
	fmt.Printf("Hint: a %d-letter theme word runs from (%d, %d) to (%d, %d)\n",
		len(ans.Word), first.R+1, first.C+1, last.R+1, last.C+1)
}

// parseStrandInput parses "<row> <col> <step>..." with 1-indexed
// coordinates, the same grammar the game file uses for answers.
func parseStrandInput(line string) (grid.Strand, error) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return grid.Strand{}, fmt.Errorf("expected: <row> <col> <step>...")
	}
	row, err := strconv.Atoi(fields[0])
	if err != nil {
		return grid.Strand{}, fmt.Errorf("bad row %q", fields[0])
	}
	col, err := strconv.Atoi(fields[1])
	if err != nil {
		return grid.Strand{}, fmt.Errorf("bad column %q", fields[1])
	}
	steps := make([]grid.Step, 0, len(fields)-2)
	for _, tok := range fields[2:] {
		st, err := grid.ParseStep(tok)
		if err != nil {
			return grid.Strand{}, err
		}
		steps = append(steps, st)
	}
	return grid.Strand{Start: grid.Pos{R: row - 1, C: col - 1}, Steps: steps}, nil
}
