// internal/solver/feedback.go
//
// Feedback simulation: the classic two-pass scoring algorithm, shared by
// the candidate filter and by callers that need to judge real guesses
// (the benchmark plays both sides with it).

package solver

// Simulate computes the feedback the game would produce for guess against
// answer. Both inputs must be 5 lowercase ASCII letters.
//
// Pass 1:
//   - Mark exact matches as correct.
//   - Count remaining (non-correct) answer letters by letter index.
//
// Pass 2:
//   - For each non-correct guess letter, left to right: if there is
//     remaining count for that letter, mark misplaced and decrement the
//     count; otherwise mark unused.
//
// The left-to-right order in pass 2 is load-bearing: when the guess repeats
// a letter more times than the answer contains it, earlier positions claim
// the misplaced credit first.
func Simulate(guess, answer string) Feedback {
	var fb Feedback

	// Letter frequency for the non-correct positions (a–z).
	var counts [26]int

	for i := 0; i < WordLength; i++ {
		if guess[i] == answer[i] {
			fb[i] = Correct
		} else {
			counts[answer[i]-'a']++
		}
	}

	for i := 0; i < WordLength; i++ {
		if fb[i] == Correct {
			continue
		}
		j := guess[i] - 'a'
		if counts[j] > 0 {
			fb[i] = Misplaced
			counts[j]--
		} else {
			fb[i] = Unused
		}
	}
	return fb
}

// Compatible reports whether answer, were it the true answer, would have
// produced exactly fb for guess. This is the sole filtering predicate.
func Compatible(answer, guess string, fb Feedback) bool {
	return Simulate(guess, answer) == fb
}
