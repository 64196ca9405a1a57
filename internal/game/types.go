// internal/game/types.go
//
// Core type definitions for the Strands game engine.
// Defines:
//   - Answer: a theme word and its strand on the board.
//   - Dictionary: the injected word-list oracle.
//   - SubmitOutcome / SubmitResult: closed vocabulary for submissions.
//   - HintOutcome / HintResult / Hint: closed vocabulary for hints.

package game

import "github.com/tbraddock/strands/internal/grid"

// Answer pairs a theme word (lowercase) with its strand on the board.
// Answers are fixed at load time, in game-file order.
type Answer struct {
	Word   string
	Strand grid.Strand
}

// Dictionary is the set-membership oracle for non-theme words. It is
// supplied by the environment; the engine never owns one.
type Dictionary interface {
	Contains(word string) bool
}

// SubmitOutcome classifies the result of submitting a strand.
// Possible values:
//   - "theme":      the strand matched an unfound theme word.
//   - "dictionary": the strand spelled a new valid dictionary word.
//   - "already_found": the word or cells were found earlier.
//   - "too_short":  fewer than four letters.
//   - "not_in_list": not a theme word and not in the dictionary.
type SubmitOutcome string

const (
	SubmitTheme         SubmitOutcome = "theme"
	SubmitDictionary                  = "dictionary"
	SubmitAlreadyFound                = "already_found"
	SubmitTooShort                    = "too_short"
	SubmitNotInWordList               = "not_in_list"
)

// SubmitResult is the full result of a submission. Word is set for the
// "theme" and "dictionary" outcomes and empty otherwise.
type SubmitResult struct {
	Outcome SubmitOutcome
	Word    string
}

// Message returns the player-facing text for the result.
func (r SubmitResult) Message() string {
	switch r.Outcome {
	case SubmitTheme:
		return r.Word + " is a theme word!"
	case SubmitDictionary:
		return r.Word + " is a valid word"
	case SubmitAlreadyFound:
		return "Already found"
	case SubmitTooShort:
		return "Too short"
	default:
		return "Not in word list"
	}
}

// Hint identifies the answer a hint points at and whether its span has
// been revealed to the player.
type Hint struct {
	Index    int
	Revealed bool
}

// HintOutcome classifies the result of requesting a hint.
type HintOutcome string

const (
	HintOK           HintOutcome = "ok"            // hint granted or revealed
	HintNotReady                 = "not_ready"     // meter below threshold
	HintAlreadyShown             = "already_shown" // current hint fully revealed
)

// HintResult is the full result of a hint request. Index and Revealed
// are meaningful for the "ok" and "already_shown" outcomes.
type HintResult struct {
	Outcome  HintOutcome
	Index    int
	Revealed bool
}

// Message returns the player-facing text for the result.
func (r HintResult) Message() string {
	switch r.Outcome {
	case HintNotReady:
		return "No hint yet"
	case HintAlreadyShown:
		return "Use your current hint"
	default:
		return "Hint unlocked"
	}
}
