package domain

import (
	"errors"
	"testing"
)

func TestParseDifficulty(t *testing.T) {
	valid := []string{"no idea", "hard", "medium", "easy"}
	for _, s := range valid {
		d, err := ParseDifficulty(s)
		if err != nil {
			t.Errorf("ParseDifficulty(%q) returned error %v", s, err)
		}
		if string(d) != s {
			t.Errorf("ParseDifficulty(%q) = %q", s, d)
		}
	}

	invalid := []string{"", "super easy", "Easy", "again", "no_idea", " hard"}
	for _, s := range invalid {
		if _, err := ParseDifficulty(s); !errors.Is(err, ErrInvalidDifficulty) {
			t.Errorf("ParseDifficulty(%q) expected ErrInvalidDifficulty, got %v", s, err)
		}
	}
}

func TestDifficultySuccessful(t *testing.T) {
	want := map[Difficulty]bool{
		DifficultyNoIdea: false,
		DifficultyHard:   false,
		DifficultyMedium: true,
		DifficultyEasy:   true,
	}
	for d, ok := range want {
		if d.Successful() != ok {
			t.Errorf("%q.Successful() = %v, want %v", d, d.Successful(), ok)
		}
	}
}

func TestValidDifficultyList(t *testing.T) {
	if got := ValidDifficultyList(); got != "no idea, hard, medium, easy" {
		t.Errorf("unexpected list %q", got)
	}
}
