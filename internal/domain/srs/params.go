package srs

import (
	"github.com/keshavkumar4699/cloro-questions/internal/domain"
)

// Params defines all configurable parameters for the SRS algorithm
type Params struct {
	// Core limits
	MinEaseFactor     float64
	MaxEaseFactor     float64
	DefaultEaseFactor float64

	// Adjustments for different review difficulties
	EaseFactorAdjustment map[domain.Difficulty]float64

	// Base intervals in days, used for first reviews, after a reset, and as
	// the floor for grown intervals
	BaseIntervals map[domain.Difficulty]int
}

// ParamsConfig allows overriding the default parameters when creating a new Params instance
type ParamsConfig struct {
	// Core limits
	MinEaseFactor     float64
	MaxEaseFactor     float64
	DefaultEaseFactor float64

	// Ease factor adjustments
	NoIdeaEaseFactorAdjustment float64
	HardEaseFactorAdjustment   float64
	MediumEaseFactorAdjustment float64
	EasyEaseFactorAdjustment   float64

	// Base intervals
	HardBaseInterval   int
	MediumBaseInterval int
	EasyBaseInterval   int
}

// NewDefaultParams creates a new Params instance with default values
func NewDefaultParams() *Params {
	return &Params{
		MinEaseFactor:     domain.MinEaseFactor,
		MaxEaseFactor:     domain.MaxEaseFactor,
		DefaultEaseFactor: domain.DefaultEaseFactor,

		EaseFactorAdjustment: map[domain.Difficulty]float64{
			domain.DifficultyNoIdea: -0.20,
			domain.DifficultyHard:   -0.15,
			domain.DifficultyMedium: 0.0,
			domain.DifficultyEasy:   0.15,
		},

		BaseIntervals: map[domain.Difficulty]int{
			domain.DifficultyNoIdea: 1,
			domain.DifficultyHard:   2,
			domain.DifficultyMedium: 5,
			domain.DifficultyEasy:   10,
		},
	}
}

// NewParams creates a new Params instance with custom configuration.
// Zero values in config keep the defaults. The "no idea" base interval is
// always 1 day.
func NewParams(config ParamsConfig) *Params {
	params := NewDefaultParams()

	if config.MinEaseFactor > 0 {
		params.MinEaseFactor = config.MinEaseFactor
	}
	if config.MaxEaseFactor > 0 {
		params.MaxEaseFactor = config.MaxEaseFactor
	}
	if config.DefaultEaseFactor > 0 {
		params.DefaultEaseFactor = config.DefaultEaseFactor
	}

	if config.NoIdeaEaseFactorAdjustment != 0 {
		params.EaseFactorAdjustment[domain.DifficultyNoIdea] = config.NoIdeaEaseFactorAdjustment
	}
	if config.HardEaseFactorAdjustment != 0 {
		params.EaseFactorAdjustment[domain.DifficultyHard] = config.HardEaseFactorAdjustment
	}
	if config.MediumEaseFactorAdjustment != 0 {
		params.EaseFactorAdjustment[domain.DifficultyMedium] = config.MediumEaseFactorAdjustment
	}
	if config.EasyEaseFactorAdjustment != 0 {
		params.EaseFactorAdjustment[domain.DifficultyEasy] = config.EasyEaseFactorAdjustment
	}

	if config.HardBaseInterval > 0 {
		params.BaseIntervals[domain.DifficultyHard] = config.HardBaseInterval
	}
	if config.MediumBaseInterval > 0 {
		params.BaseIntervals[domain.DifficultyMedium] = config.MediumBaseInterval
	}
	if config.EasyBaseInterval > 0 {
		params.BaseIntervals[domain.DifficultyEasy] = config.EasyBaseInterval
	}

	return params
}

// validEase reports whether ef is a usable ease factor under these params.
func (p *Params) validEase(ef float64) bool {
	return ef >= p.MinEaseFactor && ef <= p.MaxEaseFactor
}
