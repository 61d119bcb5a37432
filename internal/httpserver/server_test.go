package httpserver

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/solverkit/wordle/internal/results"
	"github.com/solverkit/wordle/internal/session"
	"github.com/solverkit/wordle/internal/solver"
	"github.com/solverkit/wordle/internal/words"
)

const testSecret = "test_secret"

func newTestServer(t *testing.T) *Server {
	t.Helper()

	dir := t.TempDir()
	wordsPath := filepath.Join(dir, "words.txt")
	if err := os.WriteFile(wordsPath, []byte("crane\ntrace\ntread\nreact\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	dict, err := words.Load(wordsPath)
	if err != nil {
		t.Fatalf("load words: %v", err)
	}

	hist, err := results.Open(filepath.Join(dir, "solves.db"))
	if err != nil {
		t.Fatalf("open results: %v", err)
	}
	t.Cleanup(func() { _ = hist.Close() })

	return New(dict, session.NewMemoryStore(), hist, testSecret, time.Hour)
}

func doJSON(t *testing.T, s *Server, method, path, token string, body any, out any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatal(err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)
	if out != nil && rec.Code == http.StatusOK {
		if err := json.NewDecoder(rec.Body).Decode(out); err != nil {
			t.Fatalf("decode %s %s: %v", method, path, err)
		}
	}
	return rec
}

func TestSolveFlow(t *testing.T) {
	s := newTestServer(t)
	answer := "trace"

	var opened newRes
	if rec := doJSON(t, s, http.MethodPost, "/solve/new", "", nil, &opened); rec.Code != http.StatusOK {
		t.Fatalf("new: status %d: %s", rec.Code, rec.Body)
	}
	if opened.Guess != "raise" {
		t.Fatalf("opening guess = %q, want %q", opened.Guess, "raise")
	}

	guess, turn := opened.Guess, opened.Turn
	for i := 0; i < 6; i++ {
		fb := solver.Simulate(guess, answer)
		req := nextReq{Word: guess, Feedback: fb[:], Turn: turn, Valid: true}

		var res nextRes
		if rec := doJSON(t, s, http.MethodPost, "/solve/next", opened.Token, req, &res); rec.Code != http.StatusOK {
			t.Fatalf("next: status %d: %s", rec.Code, rec.Body)
		}
		if res.State == "solved" {
			if guess != answer {
				t.Fatalf("solved with %q, want %q", guess, answer)
			}
			// The recorded solve shows up in history.
			var rows []results.Solve
			if rec := doJSON(t, s, http.MethodGet, "/solve/recent", "", nil, &rows); rec.Code != http.StatusOK {
				t.Fatalf("recent: status %d", rec.Code)
			}
			if len(rows) != 1 || rows[0].Answer != answer {
				t.Fatalf("recent = %+v, want one solve of %q", rows, answer)
			}
			return
		}
		if res.Guess == "" {
			t.Fatalf("playing state without a guess: %+v", res)
		}
		guess, turn = res.Guess, res.Turn
	}
	t.Fatalf("answer %q not reached within 6 turns", answer)
}

func TestNextRequiresToken(t *testing.T) {
	s := newTestServer(t)
	req := nextReq{Word: "raise", Feedback: make([]solver.LetterStatus, 5), Turn: 1, Valid: true}

	if rec := doJSON(t, s, http.MethodPost, "/solve/next", "", req, nil); rec.Code != http.StatusUnauthorized {
		t.Fatalf("missing token: status %d, want 401", rec.Code)
	}
	if rec := doJSON(t, s, http.MethodPost, "/solve/next", "garbage", req, nil); rec.Code != http.StatusUnauthorized {
		t.Fatalf("bad token: status %d, want 401", rec.Code)
	}
}

func TestNextUnknownSession(t *testing.T) {
	s := newTestServer(t)

	tok, err := signSessionToken([]byte(testSecret), "deadbeef", time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	fb := solver.Simulate("raise", "trace")
	req := nextReq{Word: "raise", Feedback: fb[:], Turn: 1, Valid: true}
	if rec := doJSON(t, s, http.MethodPost, "/solve/next", tok, req, nil); rec.Code != http.StatusNotFound {
		t.Fatalf("status %d, want 404", rec.Code)
	}
}

func TestNextRejectsBadPayloads(t *testing.T) {
	s := newTestServer(t)
	var opened newRes
	doJSON(t, s, http.MethodPost, "/solve/new", "", nil, &opened)

	fb := solver.Simulate("raise", "trace")
	tests := []struct {
		name string
		req  nextReq
		want int
	}{
		{"word too short", nextReq{Word: "cat", Feedback: fb[:], Turn: 1, Valid: true}, http.StatusBadRequest},
		{"uppercase word", nextReq{Word: "RAISE", Feedback: fb[:], Turn: 1, Valid: true}, http.StatusBadRequest},
		{"turn zero", nextReq{Word: "raise", Feedback: fb[:], Turn: 0, Valid: true}, http.StatusBadRequest},
		{"short feedback", nextReq{Word: "raise", Feedback: fb[:3], Turn: 1, Valid: true}, http.StatusBadRequest},
		{"unknown status", nextReq{Word: "raise", Feedback: []solver.LetterStatus{"green", "green", "green", "green", "green"}, Turn: 1, Valid: true}, http.StatusBadRequest},
		{"invalid previous result", nextReq{Word: "raise", Feedback: fb[:], Turn: 1, Valid: false}, http.StatusBadRequest},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if rec := doJSON(t, s, http.MethodPost, "/solve/next", opened.Token, tc.req, nil); rec.Code != tc.want {
				t.Fatalf("status %d, want %d: %s", rec.Code, tc.want, rec.Body)
			}
		})
	}
}

func TestNextInconsistentFeedback(t *testing.T) {
	s := newTestServer(t)
	var opened newRes
	doJSON(t, s, http.MethodPost, "/solve/new", "", nil, &opened)

	// Every dictionary word shares a letter with "raise", so all-unused
	// feedback eliminates the entire candidate set.
	allUnused := []solver.LetterStatus{solver.Unused, solver.Unused, solver.Unused, solver.Unused, solver.Unused}
	req := nextReq{Word: "raise", Feedback: allUnused, Turn: 1, Valid: true}
	if rec := doJSON(t, s, http.MethodPost, "/solve/next", opened.Token, req, nil); rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status %d, want 422: %s", rec.Code, rec.Body)
	}
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)
	rec := doJSON(t, s, http.MethodGet, "/health", "", nil, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d, want 200", rec.Code)
	}
}
