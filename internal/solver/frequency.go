// internal/solver/frequency.go
//
// Frequency is the letter-frequency elimination strategy.
// Responsibilities:
//   - Keep the per-game candidate set, seeded from the shared dictionary.
//   - Filter candidates against each turn's observed feedback.
//   - Rank remaining candidates by aggregate distinct-letter frequency.
//
// Notes:
//   - The dictionary slice is shared read-only across instances; every
//     Reset copies it, so the source is never mutated.
//   - All operations are synchronous and deterministic. Failures are
//     contract violations, never transient.

package solver

import "errors"

var (
	// ErrInvalidResult is returned when AdvanceTurn sees a non-initial
	// result whose Valid flag is false. Calling in that sequence is a
	// programming error in the caller.
	ErrInvalidResult = errors.New("solver: previous result marked invalid")

	// ErrNoCandidates is returned when filtering empties the candidate
	// set: no dictionary word is consistent with the feedback history.
	// It signals an upstream mismatch (wrong dictionary, foreign game).
	ErrNoCandidates = errors.New("solver: no candidate consistent with feedback history")
)

// openingGuess is the fixed first guess: five distinct common letters,
// chosen in advance for information yield. Constant across all games and
// independent of the dictionary in play.
const openingGuess = "raise"

// Frequency implements Strategy by candidate elimination plus a
// distinct-word letter-frequency heuristic.
type Frequency struct {
	dictionary []string // shared, read-only
	candidates []string // owned by this instance

	// pick ranks the surviving candidates. Swappable for tests.
	pick func([]string) string
}

// NewFrequency builds a strategy over dictionary and resets it for play.
// The dictionary must contain lowercase 5-letter words; it is read, never
// written.
func NewFrequency(dictionary []string) *Frequency {
	f := &Frequency{dictionary: dictionary, pick: bestCandidate}
	f.Reset()
	return f
}

// Reset discards any game in progress and restores the full candidate set.
// Safe to call repeatedly; the outcome never depends on prior state.
func (f *Frequency) Reset() {
	f.candidates = append([]string(nil), f.dictionary...)
}

// Candidates reports how many words remain consistent with the feedback
// seen so far this game.
func (f *Frequency) Candidates() int { return len(f.candidates) }

// AdvanceTurn consumes the previous turn's result and returns the next
// guess. For the pre-game sentinel it returns the fixed opening word.
// Otherwise it narrows the candidate set to the words that would have
// produced exactly the observed feedback, then guesses the highest-scoring
// survivor (or the lone survivor directly).
func (f *Frequency) AdvanceTurn(prev GuessResult) (string, error) {
	if prev.Initial() {
		return openingGuess, nil
	}
	if !prev.Valid {
		return "", ErrInvalidResult
	}

	// In-place filter; candidate order (and with it the scoring
	// tie-break) is preserved.
	kept := f.candidates[:0]
	for _, w := range f.candidates {
		if Compatible(w, prev.Word, prev.Feedback) {
			kept = append(kept, w)
		}
	}
	f.candidates = kept

	switch len(f.candidates) {
	case 0:
		return "", ErrNoCandidates
	case 1:
		return f.candidates[0], nil
	}
	return f.pick(f.candidates), nil
}

// bestCandidate scores each candidate by summing, over its distinct
// letters, the number of distinct candidate words containing that letter.
// A word contributes at most once per letter to the frequency table no
// matter how often it repeats the letter; this is deliberately not an
// occurrence count. Ties go to the earliest candidate in list order.
func bestCandidate(candidates []string) string {
	var freq [26]int
	for _, w := range candidates {
		var seen [26]bool
		for i := 0; i < WordLength; i++ {
			c := w[i] - 'a'
			if !seen[c] {
				seen[c] = true
				freq[c]++
			}
		}
	}

	best := candidates[0]
	bestScore := -1
	for _, w := range candidates {
		var seen [26]bool
		score := 0
		for i := 0; i < WordLength; i++ {
			c := w[i] - 'a'
			if !seen[c] {
				seen[c] = true
				score += freq[c]
			}
		}
		if score > bestScore {
			best, bestScore = w, score
		}
	}
	return best
}
