// internal/words/words.go
//
// Dictionary provider for the Strands engine.
//
// Responsibilities:
//   - Load a word list from an environment-provided file or fall back to
//     the embedded default.
//   - Maintain a set for quick membership lookups.
//   - Satisfy the engine's Dictionary interface (Contains).
//
// Initialization behavior (Load):
//   1. If WORDS_FILE is set, load one word per line from that file.
//   2. Otherwise, fall back to the embedded default list in
//      `default_words.txt`.
//
// Environment variables:
//   WORDS_FILE=/path/to/words.txt
//
// Constraints:
//   • Words are normalized to lowercase.
//   • Only alphabetic words of four or more letters are kept — the
//     engine rejects shorter submissions before ever consulting the
//     dictionary.

package words

import (
	"bufio"
	_ "embed"
	"errors"
	"os"
	"strings"
)

//go:embed default_words.txt
var embeddedWords string

// List is a set-backed dictionary.
type List struct {
	words map[string]struct{}
}

// Load builds a dictionary from the WORDS_FILE env var if set, or the
// embedded default list otherwise. Returns an error if the resulting
// list is empty.
func Load() (*List, error) {
	if path := os.Getenv("WORDS_FILE"); path != "" {
		return FromFile(path)
	}
	l := New(strings.Split(embeddedWords, "\n"))
	if l.Len() == 0 {
		return nil, errors.New("words: embedded word list is empty")
	}
	return l, nil
}

// FromFile loads one word per line from a file.
func FromFile(path string) (*List, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	l := New(lines)
	if l.Len() == 0 {
		return nil, errors.New("words: word list " + path + " is empty")
	}
	return l, nil
}

// New builds a dictionary from raw lines, lowercasing and keeping only
// alphabetic words of at least four letters.
func New(lines []string) *List {
	set := make(map[string]struct{}, len(lines))
	for _, line := range lines {
		w := strings.TrimSpace(strings.ToLower(line))
		if len(w) >= 4 && isAlpha(w) {
			set[w] = struct{}{}
		}
	}
	return &List{words: set}
}

// Contains reports whether w is in the dictionary.
func (l *List) Contains(w string) bool {
	_, ok := l.words[strings.ToLower(w)]
	return ok
}

// Len returns the number of words loaded.
func (l *List) Len() int { return len(l.words) }

// isAlpha reports whether s is all lowercase ASCII letters.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}
