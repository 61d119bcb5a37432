// internal/httpserver/server.go
//
// HTTP wiring for the solver service.
// Responsibilities:
//   - Router + middleware (request IDs, panic recovery, timeouts, JSON).
//   - Public endpoints: "/", "/health", "/debug/words", GET /solve/recent.
//   - Session endpoints: POST /solve/new opens a session and returns the
//     opening guess; POST /solve/next feeds back one turn's result and
//     returns the next guess.
//
// The server never judges guesses. Feedback always arrives from the
// caller; this layer only moves it into the solver and maps the solver's
// error taxonomy onto status codes: invalid previous result → 400,
// feedback inconsistent with the whole dictionary → 422.

package httpserver

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/solverkit/wordle/internal/results"
	"github.com/solverkit/wordle/internal/session"
	"github.com/solverkit/wordle/internal/solver"
	"github.com/solverkit/wordle/internal/words"
)

// Server bundles router, dictionary, live sessions, and solve history.
type Server struct {
	r        *chi.Mux
	dict     *words.List
	sessions session.Store
	history  *results.Store
	secret   []byte
	ttl      time.Duration
}

// New constructs a Server, installs middleware, and registers routes.
func New(dict *words.List, sessions session.Store, history *results.Store, secret string, ttl time.Duration) *Server {
	s := &Server{
		r:        chi.NewRouter(),
		dict:     dict,
		sessions: sessions,
		history:  history,
		secret:   []byte(secret),
		ttl:      ttl,
	}

	s.r.Use(chimw.RequestID)
	s.r.Use(chimw.RealIP)
	s.r.Use(chimw.Recoverer)
	s.r.Use(chimw.Timeout(10 * time.Second))
	s.r.Use(jsonContentType)

	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"service":"wordle-solver","endpoints":["/health","POST /solve/new","POST /solve/next","GET /solve/recent"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})
	s.r.Get("/debug/words", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]int{"words": s.dict.Len()})
	})

	s.r.Post("/solve/new", s.handleNew)
	s.r.Post("/solve/next", s.handleNext)
	s.r.Get("/solve/recent", s.handleRecent)

	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"not_found","path":"`+r.URL.Path+`"}`, http.StatusNotFound)
	})

	return s
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error { return http.ListenAndServe(addr, s.r) }

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// ------------------------------ sessions -----------------------------------

type newRes struct {
	SessionID string `json:"sessionId"`
	Token     string `json:"token"`
	Guess     string `json:"guess"`
	Turn      int    `json:"turn"`
}

// handleNew opens a fresh session over the shared dictionary and returns
// the opening guess together with the token gating subsequent turns.
func (s *Server) handleNew(w http.ResponseWriter, r *http.Request) {
	strat := solver.NewFrequency(s.dict.Words())
	guess, err := strat.AdvanceTurn(solver.GuessResult{})
	if err != nil {
		log.Error().Err(err).Msg("opening turn")
		http.Error(w, `{"error":"internal"}`, http.StatusInternalServerError)
		return
	}

	sess := &session.Session{
		ID:        randomID(),
		Strategy:  strat,
		Turn:      1,
		LastGuess: guess,
		StartedAt: time.Now().UTC(),
	}
	if err := s.sessions.Save(r.Context(), sess); err != nil {
		log.Error().Err(err).Msg("save session")
		http.Error(w, `{"error":"save_failed"}`, http.StatusInternalServerError)
		return
	}

	tok, err := signSessionToken(s.secret, sess.ID, s.ttl)
	if err != nil {
		log.Error().Err(err).Msg("sign session token")
		http.Error(w, `{"error":"sign_failed"}`, http.StatusInternalServerError)
		return
	}

	log.Info().Str("sessionId", sess.ID).Str("guess", guess).Msg("session started")
	_ = json.NewEncoder(w).Encode(newRes{SessionID: sess.ID, Token: tok, Guess: guess, Turn: sess.Turn})
}

type nextReq struct {
	Word     string                `json:"word"`
	Feedback []solver.LetterStatus `json:"feedback"`
	Turn     int                   `json:"turn"`
	Valid    bool                  `json:"valid"`
}

type nextRes struct {
	Guess     string `json:"guess,omitempty"`
	Turn      int    `json:"turn,omitempty"`
	Remaining int    `json:"remaining,omitempty"`
	State     string `json:"state"`
	Turns     int    `json:"turns,omitempty"`
}

// handleNext consumes one turn's reported result and returns the next
// guess, or closes out the session when the feedback is all-correct.
func (s *Server) handleNext(w http.ResponseWriter, r *http.Request) {
	tok := bearerToken(r)
	if tok == "" {
		http.Error(w, `{"error":"missing_token"}`, http.StatusUnauthorized)
		return
	}
	sid, err := parseSessionToken(s.secret, tok)
	if err != nil {
		http.Error(w, `{"error":"invalid_token"}`, http.StatusUnauthorized)
		return
	}

	var req nextReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}
	prev, err := toGuessResult(req)
	if err != nil {
		http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusBadRequest)
		return
	}

	sess, err := s.sessions.Get(r.Context(), sid)
	if err != nil {
		http.Error(w, `{"error":"session_not_found"}`, http.StatusNotFound)
		return
	}

	// All-correct feedback means the reported word was the answer;
	// the session is done and only needs recording.
	if prev.Feedback.AllCorrect() {
		now := time.Now().UTC()
		if err := s.history.Insert(r.Context(), results.Solve{
			SessionID:  sess.ID,
			Answer:     prev.Word,
			Turns:      sess.Turn,
			StartedAt:  sess.StartedAt,
			FinishedAt: now,
		}); err != nil {
			log.Warn().Err(err).Str("sessionId", sess.ID).Msg("record solve")
		}
		_ = s.sessions.Delete(r.Context(), sess.ID)
		log.Info().Str("sessionId", sess.ID).Str("answer", prev.Word).Int("turns", sess.Turn).Msg("session solved")
		_ = json.NewEncoder(w).Encode(nextRes{State: "solved", Turns: sess.Turn})
		return
	}

	guess, err := sess.Strategy.AdvanceTurn(prev)
	switch {
	case errors.Is(err, solver.ErrInvalidResult):
		http.Error(w, `{"error":"invalid_result"}`, http.StatusBadRequest)
		return
	case errors.Is(err, solver.ErrNoCandidates):
		log.Warn().Str("sessionId", sess.ID).Msg("feedback inconsistent with dictionary")
		http.Error(w, `{"error":"inconsistent_feedback"}`, http.StatusUnprocessableEntity)
		return
	case err != nil:
		log.Error().Err(err).Str("sessionId", sess.ID).Msg("advance turn")
		http.Error(w, `{"error":"internal"}`, http.StatusInternalServerError)
		return
	}

	sess.Turn++
	sess.LastGuess = guess
	if err := s.sessions.Save(r.Context(), sess); err != nil {
		log.Error().Err(err).Msg("save session")
		http.Error(w, `{"error":"save_failed"}`, http.StatusInternalServerError)
		return
	}

	res := nextRes{Guess: guess, Turn: sess.Turn, State: "playing"}
	if c, ok := sess.Strategy.(interface{ Candidates() int }); ok {
		res.Remaining = c.Candidates()
	}
	_ = json.NewEncoder(w).Encode(res)
}

// toGuessResult validates the wire payload and converts it to the
// solver's result type.
func toGuessResult(req nextReq) (solver.GuessResult, error) {
	if len(req.Word) != solver.WordLength || !isLower(req.Word) {
		return solver.GuessResult{}, errors.New("invalid_word")
	}
	if req.Turn < 1 {
		return solver.GuessResult{}, errors.New("invalid_turn")
	}
	if len(req.Feedback) != solver.WordLength {
		return solver.GuessResult{}, errors.New("invalid_feedback")
	}
	var fb solver.Feedback
	for i, st := range req.Feedback {
		switch st {
		case solver.Correct, solver.Misplaced, solver.Unused:
			fb[i] = st
		default:
			return solver.GuessResult{}, errors.New("invalid_feedback")
		}
	}
	return solver.GuessResult{Word: req.Word, Feedback: fb, Turn: req.Turn, Valid: req.Valid}, nil
}

func isLower(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

// ------------------------------ history ------------------------------------

// handleRecent lists the most recently finished solves.
func (s *Server) handleRecent(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	rows, err := s.history.Recent(r.Context(), limit)
	if err != nil {
		log.Error().Err(err).Msg("recent solves")
		http.Error(w, `{"error":"db_error"}`, http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(rows)
}

// randomID returns a compact 16-hex-char identifier.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
