// main.go
//
// Entry point for the Strands terminal game.
// Responsibilities:
//   - Load .env configuration and set the global log level.
//   - Read the game file named on the command line into lines.
//   - Build the dictionary and the game engine, then hand off to the TUI.
//
// Environment variables:
//   LOG_LEVEL       zerolog level (default "info").
//   HINT_THRESHOLD  dictionary words needed per hint (default 3).
//   WORDS_FILE      dictionary file; embedded default list otherwise.

package main

import (
	"bufio"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/tbraddock/strands/internal/game"
	"github.com/tbraddock/strands/internal/words"
)

func main() {
	_ = godotenv.Load()
	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	if len(os.Args) != 2 {
		log.Fatal().Msg("usage: strands <game-file>")
	}
	path := os.Args[1]
	lines, err := readLines(path)
	if err != nil {
		log.Fatal().Err(err).Str("file", path).Msg("failed to read game file")
	}

	dict, err := words.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load word list")
	}
	log.Debug().Int("words", dict.Len()).Msg("dictionary ready")

	threshold := getEnvInt("HINT_THRESHOLD", 3)
	g, err := game.Load(lines, threshold, dict)
	if err != nil {
		log.Fatal().Err(err).Str("file", path).Msg("invalid game file")
	}
	log.Info().
		Str("theme", g.Theme()).
		Int("answers", len(g.Answers())).
		Int("hint_threshold", threshold).
		Msg("game loaded")

	runTUI(g)
}

// readLines reads a file into its lines, newlines stripped.
func readLines(path string) ([]string, error) {
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
	return lines, sc.Err()
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getEnvInt(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
