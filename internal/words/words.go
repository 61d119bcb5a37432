// internal/words/words.go
//
// Dictionary loading for the solver.
//
// Responsibilities:
//   - Load a word list from a file, or fall back to the embedded default.
//   - Normalize entries: lowercase, trimmed, exactly 5 letters a–z,
//     deduplicated with first occurrence winning.
//   - Expose an immutable List shared read-only by every solver instance.
//
// A List is built once at startup and never mutated afterwards, so it is
// safe for any number of concurrent readers. Load order is preserved:
// the solver's tie-break depends on it.

package words

import (
	"bufio"
	_ "embed"
	"fmt"
	"os"
	"strings"
)

//go:embed default_words.txt
var embedded string

// List is an immutable, deduplicated dictionary of 5-letter words.
type List struct {
	words []string
	set   map[string]struct{}
}

// Load reads one word per line from path and builds a List.
// A missing or unreadable file is a fatal startup condition; the returned
// error wraps the underlying fs error so errors.Is(err, fs.ErrNotExist)
// holds when the file is absent.
func Load(path string) (*List, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("words: open %s: %w", path, err)
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("words: read %s: %w", path, err)
	}

	l := build(lines)
	if l.Len() == 0 {
		return nil, fmt.Errorf("words: %s contains no usable 5-letter words", path)
	}
	return l, nil
}

// Default returns the embedded word list, used when no file is configured.
func Default() *List {
	return build(strings.Split(embedded, "\n"))
}

// build normalizes raw lines into a List: lowercase, trim, keep only
// 5-letter a–z entries, drop duplicates keeping the first occurrence.
func build(lines []string) *List {
	l := &List{set: make(map[string]struct{}, len(lines))}
	for _, line := range lines {
		w := strings.TrimSpace(strings.ToLower(line))
		if len(w) != 5 || !isAlpha(w) {
			continue
		}
		if _, dup := l.set[w]; dup {
			continue
		}
		l.set[w] = struct{}{}
		l.words = append(l.words, w)
	}
	return l
}

// isAlpha reports whether s is all lowercase ASCII letters.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

// Words returns the dictionary in load order. The returned slice is the
// List's backing storage: read it, never modify it.
func (l *List) Words() []string { return l.words }

// Contains reports whether w is in the dictionary.
func (l *List) Contains(w string) bool {
	_, ok := l.set[strings.ToLower(w)]
	return ok
}

// Len reports the number of words in the dictionary.
func (l *List) Len() int { return len(l.words) }
