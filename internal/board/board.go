// internal/board/board.go
//
// The immutable letter grid for a Strands game.
// Responsibilities:
//   - Validate the grid at construction (rectangular, non-empty rows,
//     single alphabetic letters; uppercase input normalized to lowercase).
//   - Bounds-checked letter lookup.
//   - Evaluate a strand into the string of letters it traces.
//
// Boards are created once by the game loader and read-only afterwards.

package board

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tbraddock/strands/internal/grid"
)

var (
	// ErrInvalidBoard reports a structurally invalid letter grid.
	ErrInvalidBoard = errors.New("invalid board")

	// ErrOutOfBounds reports a position outside the board extent.
	ErrOutOfBounds = errors.New("position out of bounds")
)

// Board is a rectangular grid of single lowercase letters.
type Board struct {
	rows []string // one string per row, all the same length, lowercase a-z
}

// New validates and builds a board from its rows.
// Requirements: at least one row, every row non-empty and the same
// length, every cell an ASCII letter. Letters are stored lowercase.
func New(rows []string) (*Board, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrInvalidBoard)
	}
	width := len(rows[0])
	stored := make([]string, 0, len(rows))
	for i, row := range rows {
		if len(row) == 0 {
			return nil, fmt.Errorf("%w: row %d is empty", ErrInvalidBoard, i+1)
		}
		if len(row) != width {
			return nil, fmt.Errorf("%w: row %d has %d letters, want %d", ErrInvalidBoard, i+1, len(row), width)
		}
		for j := 0; j < len(row); j++ {
			if !isLetter(row[j]) {
				return nil, fmt.Errorf("%w: cell (%d, %d) is %q, want a letter", ErrInvalidBoard, i+1, j+1, row[j])
			}
		}
		stored = append(stored, strings.ToLower(row))
	}
	return &Board{rows: stored}, nil
}

// NumRows returns the number of rows on the board.
func (b *Board) NumRows() int { return len(b.rows) }

// NumCols returns the number of columns on the board.
func (b *Board) NumCols() int { return len(b.rows[0]) }

// Letter returns the letter at p, or ErrOutOfBounds if p is off-board.
func (b *Board) Letter(p grid.Pos) (byte, error) {
	if p.R < 0 || p.R >= b.NumRows() || p.C < 0 || p.C >= b.NumCols() {
		return 0, fmt.Errorf("%w: %v on %dx%d board", ErrOutOfBounds, p, b.NumRows(), b.NumCols())
	}
	return b.rows[p.R][p.C], nil
}

// Contains reports whether p is within the board extent.
func (b *Board) Contains(p grid.Pos) bool {
	_, err := b.Letter(p)
	return err == nil
}

// EvaluateStrand returns the string of letters the strand traces over
// the board. Fails with ErrOutOfBounds if any position is off-board;
// the error is never clamped or swallowed.
func (b *Board) EvaluateStrand(s grid.Strand) (string, error) {
	var sb strings.Builder
	for _, p := range s.Positions() {
		c, err := b.Letter(p)
		if err != nil {
			return "", err
		}
		sb.WriteByte(c)
	}
	return sb.String(), nil
}

// isLetter checks for an ASCII alphabetic byte, either case.
func isLetter(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}
