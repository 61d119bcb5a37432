package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/solverkit/wordle/internal/solver"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()

	s := &Session{
		ID:        "abc123",
		Strategy:  solver.NewFrequency([]string{"crane", "trace"}),
		Turn:      1,
		LastGuess: "raise",
		StartedAt: time.Now().UTC(),
	}
	if err := st.Save(ctx, s); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := st.Get(ctx, "abc123")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.LastGuess != "raise" || got.Turn != 1 {
		t.Fatalf("got %+v", got)
	}

	if _, err := st.Get(ctx, "nope"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}

	if err := st.Delete(ctx, "abc123"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := st.Get(ctx, "abc123"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err after delete = %v, want ErrNotFound", err)
	}
}
