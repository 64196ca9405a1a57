// internal/game/loader.go
//
// Game-file parsing for the Strands engine.
// Responsibilities:
//   - Split already-read text lines into theme, board, and answer sections.
//   - Tokenize board rows and answer lines (whitespace runs collapse,
//     case is ignored, file positions are 1-indexed).
//   - Enforce every structural rule: rectangular board, word length,
//     in-bounds strands, letters spelling the word, full board coverage.
//
// Loading is atomic: either a fully valid *Game or an error, never a
// partially constructed one. File access stays with the caller — the
// loader only ever sees lines.

package game

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/tbraddock/strands/internal/board"
	"github.com/tbraddock/strands/internal/grid"
)

// ErrInvalidGame reports a malformed game file.
var ErrInvalidGame = errors.New("invalid game file")

// Load parses game-file lines into a ready-to-play Game.
//
// Expected layout, sections separated by single blank lines:
//
//	<theme line>
//	<blank>
//	<board row>                    (repeated)
//	<blank>
//	<word> <row> <col> <step>...   (repeated, 1-indexed row/col)
//	<blank>                        (optional)
//	<ignored trailing lines>       (optional)
//
// The dictionary oracle may be nil, in which case every non-theme
// submission misses the word list.
func Load(lines []string, hintThreshold int, dict Dictionary) (*Game, error) {
	idx := 0

	// Section 1: theme, verbatim except for surrounding whitespace.
	if idx >= len(lines) || blank(lines[idx]) {
		return nil, fmt.Errorf("%w: missing theme line", ErrInvalidGame)
	}
	theme := strings.TrimSpace(lines[idx])
	idx++
	if idx >= len(lines) || !blank(lines[idx]) {
		return nil, fmt.Errorf("%w: expected blank line after theme", ErrInvalidGame)
	}
	idx++

	// Section 2: board rows. Each row is rebuilt from its
	// single-character tokens, so extra spaces between letters are fine.
	var rows []string
	for idx < len(lines) && !blank(lines[idx]) {
		row, err := parseBoardRow(lines[idx])
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
		idx++
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: missing board section", ErrInvalidGame)
	}
	bd, err := board.New(rows)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidGame, err)
	}
	if idx >= len(lines) {
		return nil, fmt.Errorf("%w: missing answers section", ErrInvalidGame)
	}
	idx++ // the blank line that ended the board section

	// Section 3: answers until the next blank line or end of input.
	var answers []Answer
	for idx < len(lines) && !blank(lines[idx]) {
		ans, err := parseAnswer(lines[idx], bd)
		if err != nil {
			return nil, err
		}
		answers = append(answers, ans)
		idx++
	}
	if len(answers) == 0 {
		return nil, fmt.Errorf("%w: missing answers section", ErrInvalidGame)
	}
	// Anything after the trailing blank is notes; ignored.

	// Answers must collectively cover the whole board. Overlap between
	// answers is allowed; every position is already known in-bounds.
	covered := make(map[grid.Pos]struct{})
	for _, a := range answers {
		for _, p := range a.Strand.Positions() {
			covered[p] = struct{}{}
		}
	}
	if len(covered) != bd.NumRows()*bd.NumCols() {
		return nil, fmt.Errorf("%w: answers leave %d cells uncovered",
			ErrInvalidGame, bd.NumRows()*bd.NumCols()-len(covered))
	}

	return &Game{
		theme:         theme,
		board:         bd,
		answers:       answers,
		dict:          dict,
		hintThreshold: hintThreshold,
		foundWords:    make(map[string]struct{}),
	}, nil
}

// parseBoardRow rebuilds one board row from whitespace-separated
// single-character tokens.
func parseBoardRow(line string) (string, error) {
	var sb strings.Builder
	for _, tok := range strings.Fields(line) {
		if len(tok) != 1 {
			return "", fmt.Errorf("%w: board token %q is not a single letter", ErrInvalidGame, tok)
		}
		sb.WriteString(tok)
	}
	return sb.String(), nil
}

// parseAnswer parses and validates one "WORD ROW COL STEP..." line.
// ROW/COL are 1-indexed in the file and stored 0-indexed.
func parseAnswer(line string, bd *board.Board) (Answer, error) {
	fields := strings.Fields(line)
	if len(fields) < 3 {
		return Answer{}, fmt.Errorf("%w: answer line %q needs a word, row, and column", ErrInvalidGame, line)
	}
	word := strings.ToLower(fields[0])
	if len(word) < 3 {
		return Answer{}, fmt.Errorf("%w: theme word %q has fewer than three letters", ErrInvalidGame, word)
	}
	row, err := strconv.Atoi(fields[1])
	if err != nil {
		return Answer{}, fmt.Errorf("%w: bad row %q for %q", ErrInvalidGame, fields[1], word)
	}
	col, err := strconv.Atoi(fields[2])
	if err != nil {
		return Answer{}, fmt.Errorf("%w: bad column %q for %q", ErrInvalidGame, fields[2], word)
	}
	steps := make([]grid.Step, 0, len(fields)-3)
	for _, tok := range fields[3:] {
		st, err := grid.ParseStep(tok)
		if err != nil {
			return Answer{}, fmt.Errorf("%w: %v for %q", ErrInvalidGame, err, word)
		}
		steps = append(steps, st)
	}
	strand := grid.Strand{Start: grid.Pos{R: row - 1, C: col - 1}, Steps: steps}

	// Bounds and spelling in one pass. Folded strands are accepted.
	spelled, err := bd.EvaluateStrand(strand)
	if err != nil {
		return Answer{}, fmt.Errorf("%w: strand for %q leaves the board", ErrInvalidGame, word)
	}
	if spelled != word {
		return Answer{}, fmt.Errorf("%w: strand spells %q, want %q", ErrInvalidGame, spelled, word)
	}
	return Answer{Word: word, Strand: strand}, nil
}

// blank reports whether a line is empty after trimming whitespace.
func blank(line string) bool {
	return strings.TrimSpace(line) == ""
}
