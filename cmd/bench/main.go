// cmd/bench/main.go
//
// Self-play benchmark: plays the solver against every dictionary word,
// using the solver's own feedback simulation as the judge, and prints the
// guess-count distribution.

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/mitchellh/colorstring"
	"github.com/schollz/progressbar/v3"

	"github.com/solverkit/wordle/internal/solver"
	"github.com/solverkit/wordle/internal/words"
)

const maxTurns = 10

func main() {
	wordsFile := flag.String("words", "", "path to a word list (default: embedded list)")
	limit := flag.Int("n", 0, "benchmark only the first n answers (0 = all)")
	flag.Parse()

	var (
		dict *words.List
		err  error
	)
	if *wordsFile != "" {
		dict, err = words.Load(*wordsFile)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	} else {
		dict = words.Default()
	}

	answers := dict.Words()
	if *limit > 0 && *limit < len(answers) {
		answers = answers[:*limit]
	}

	strat := solver.NewFrequency(dict.Words())
	dist := make(map[int]int)
	var failed []string

	bar := progressbar.Default(int64(len(answers)))
	for _, answer := range answers {
		turns, ok := play(strat, answer)
		if ok {
			dist[turns]++
		} else {
			failed = append(failed, answer)
		}
		_ = bar.Add(1)
	}

	report(dist, failed, len(answers))
}

// play runs one full game against answer and reports the number of
// guesses used, or ok=false if the game did not converge.
func play(strat solver.Strategy, answer string) (turns int, ok bool) {
	strat.Reset()

	prev := solver.GuessResult{}
	for turn := 1; turn <= maxTurns; turn++ {
		guess, err := strat.AdvanceTurn(prev)
		if err != nil {
			return 0, false
		}
		fb := solver.Simulate(guess, answer)
		if fb.AllCorrect() {
			return turn, true
		}
		prev = solver.GuessResult{Word: guess, Feedback: fb, Turn: turn, Valid: true}
	}
	return 0, false
}

func report(dist map[int]int, failed []string, total int) {
	var solved, sum int
	for turns, n := range dist {
		solved += n
		sum += turns * n
	}

	colorstring.Printf("[bold]solved %d/%d answers[reset]\n", solved, total)
	for turns := 1; turns <= maxTurns; turns++ {
		if n, ok := dist[turns]; ok {
			fmt.Printf("  %2d guesses: %d\n", turns, n)
		}
	}
	if solved > 0 {
		colorstring.Printf("[green]average %.2f guesses[reset]\n", float64(sum)/float64(solved))
	}
	if len(failed) > 0 {
		colorstring.Printf("[red]unsolved within %d turns:[reset] %v\n", maxTurns, failed)
	}
}
