// internal/solver/types.go
//
// Core type definitions for the elimination solver.
// Defines:
//   - LetterStatus: per-letter outcome of comparing a guess to an answer.
//   - Feedback: the full 5-position outcome of one guess.
//   - GuessResult: what the game reported back for one submitted guess.
//   - Strategy: the contract every solving strategy satisfies.

package solver

// WordLength is the fixed word size of the game.
const WordLength = 5

// LetterStatus is the evaluation result for a single letter in a guess.
// Possible values:
//   - "correct":   letter is in the answer at this exact position.
//   - "misplaced": letter is in the answer but at a different position.
//   - "unused":    letter does not appear in the answer (or all of its
//     occurrences are already claimed by other positions).
type LetterStatus string

const (
	Correct   LetterStatus = "correct"
	Misplaced LetterStatus = "misplaced"
	Unused    LetterStatus = "unused"
)

// Feedback is the position-aligned outcome for all five letters of a guess.
// Being an array, two Feedback values compare with ==.
type Feedback [WordLength]LetterStatus

// AllCorrect reports whether every position is marked correct,
// i.e. the guess was the answer.
func (f Feedback) AllCorrect() bool {
	for _, st := range f {
		if st != Correct {
			return false
		}
	}
	return true
}

// GuessResult is the outcome of one submitted guess, as reported by the
// game engine. The zero value (Turn 0, no feedback) is the pre-game
// sentinel handed to AdvanceTurn at the start of a game.
type GuessResult struct {
	Word     string   `json:"word"`
	Feedback Feedback `json:"feedback"`
	Turn     int      `json:"turn"` // 0 = pre-game sentinel
	Valid    bool     `json:"valid"`
}

// Initial reports whether r is the pre-game sentinel.
func (r GuessResult) Initial() bool { return r.Turn == 0 }

// Strategy is the contract between the caller and a solving strategy.
// The caller resets the strategy at game start, then alternates: feed the
// previous turn's result in, submit the returned guess to the game, repeat.
// Implementations own their candidate state; one logical game per instance.
type Strategy interface {
	// Reset prepares the strategy for a new game.
	Reset()

	// AdvanceTurn consumes the previous turn's result and returns the
	// next word to guess.
	AdvanceTurn(prev GuessResult) (string, error)
}
