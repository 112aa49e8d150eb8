package domain

import (
	"fmt"
	"strings"
)

// Difficulty is the self-reported recall quality of a single review.
type Difficulty string

// Recognised difficulty values. The string forms are part of the wire contract.
const (
	DifficultyNoIdea Difficulty = "no idea"
	DifficultyHard   Difficulty = "hard"
	DifficultyMedium Difficulty = "medium"
	DifficultyEasy   Difficulty = "easy"
)

// Difficulties lists every valid difficulty, hardest first.
var Difficulties = []Difficulty{
	DifficultyNoIdea,
	DifficultyHard,
	DifficultyMedium,
	DifficultyEasy,
}

// ParseDifficulty converts a raw string into a Difficulty.
// Matching is exact; anything else yields ErrInvalidDifficulty.
func ParseDifficulty(s string) (Difficulty, error) {
	d := Difficulty(s)
	if !d.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidDifficulty, s)
	}
	return d, nil
}

// Valid reports whether d is one of the four recognised values.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyNoIdea, DifficultyHard, DifficultyMedium, DifficultyEasy:
		return true
	default:
		return false
	}
}

// Successful reports whether a review with this difficulty counts towards
// retention.
func (d Difficulty) Successful() bool {
	return d == DifficultyMedium || d == DifficultyEasy
}

// String implements fmt.Stringer.
func (d Difficulty) String() string {
	return string(d)
}

// ValidDifficultyList returns the accepted values as a human-readable list,
// used in client-facing error messages.
func ValidDifficultyList() string {
	parts := make([]string, len(Difficulties))
	for i, d := range Difficulties {
		parts[i] = string(d)
	}
	return strings.Join(parts, ", ")
}
