// Package sm2 implements the SuperMemo-2 spaced-repetition algorithm.
//
// Review is a pure function: it never touches the database, a logger, or the
// wall clock — the caller supplies "now" so tests can pin exact dates.
package sm2

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// Quality bounds of the SM-2 scale. 0 is a total blackout, 5 a perfect recall.
// Quality >= PassingQuality counts as a successful repetition.
const (
	MinQuality     = 0
	MaxQuality     = 5
	PassingQuality = 3
)

// ErrInvalidQuality is returned when quality is outside [MinQuality, MaxQuality].
// The caller's rating mapping is supposed to make this unreachable, so seeing
// it means a broken contract, not bad user input.
var ErrInvalidQuality = errors.New("quality must be an integer between 0 and 5")

// State holds the scheduling parameters a card carries between reviews.
type State struct {
	EaseFactor  float64
	Interval    int // days until the next review; 0 before the first pass
	Repetitions int // consecutive successful reviews since the last reset
}

// DefaultState is the implicit prior state of a never-rated card.
func DefaultState() State {
	return State{EaseFactor: 2.5, Interval: 0, Repetitions: 0}
}

// Result is the outcome of a single review.
type Result struct {
	EaseFactor  float64
	Interval    int
	Repetitions int
	NextReview  time.Time
}

// Review applies one quality rating to the prior state.
//
// The ease factor is always recalculated, even on a failed review, then
// clamped to 1.3 and rounded to two decimals; the rounded value is what feeds
// the interval growth so the persisted ease and the computed interval never
// disagree. Quality < 3 resets repetitions to 0 and the interval to exactly
// 1 day regardless of how large it had grown.
func Review(quality int, prior State, now time.Time) (Result, error) {
	if quality < MinQuality || quality > MaxQuality {
		return Result{}, fmt.Errorf("quality %d: %w", quality, ErrInvalidQuality)
	}

	q := float64(quality)
	ease := prior.EaseFactor + (0.1 - (5-q)*(0.08+(5-q)*0.02))
	if ease < 1.3 {
		ease = 1.3
	}
	ease = roundEase(ease)

	var repetitions, interval int
	if quality < PassingQuality {
		repetitions = 0
		interval = 1
	} else {
		repetitions = prior.Repetitions + 1
		switch repetitions {
		case 1:
			interval = 1
		case 2:
			interval = 6
		default:
			interval = int(math.Round(float64(prior.Interval) * ease))
		}
	}

	return Result{
		EaseFactor:  ease,
		Interval:    interval,
		Repetitions: repetitions,
		NextReview:  now.AddDate(0, 0, interval),
	}, nil
}

// roundEase rounds to two decimals, the storage precision of the ease factor.
func roundEase(ease float64) float64 {
	return math.Round(ease*100) / 100
}
