package calc

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/trigcalc/internal/config"
	"github.com/san-kum/trigcalc/internal/logx"
	"github.com/san-kum/trigcalc/internal/lut"
)

func newSession() *Session {
	return New(lut.Build(), config.DefaultConfig(), logx.Discard())
}

func TestSession_Defaults(t *testing.T) {
	s := newSession()

	if s.Input() != "60" {
		t.Errorf("expected input 60, got %q", s.Input())
	}
	if _, ok := s.Result(); ok {
		t.Error("expected no result before submit")
	}
	if s.Lines() != nil {
		t.Error("expected no lines before submit")
	}
	if s.ShowTable() {
		t.Error("table should start hidden")
	}
	if r := s.Range(); r.Start != 0 || r.End != 10 {
		t.Errorf("unexpected range %+v", r)
	}
}

func TestSession_Submit(t *testing.T) {
	s := newSession()

	if err := s.Submit(); err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	r, ok := s.Result()
	if !ok {
		t.Fatal("expected a result")
	}
	if math.Abs(r.Sin-0.866025) > 1e-6 || math.Abs(r.Tan-1.732051) > 1e-6 {
		t.Errorf("unexpected result %+v", r)
	}
	want := []string{"sin(60°) = 0.866025", "cos(60°) = 0.500000", "tan(60°) = 1.732051"}
	for i, line := range s.Lines() {
		if line != want[i] {
			t.Errorf("line %d = %q, want %q", i, line, want[i])
		}
	}
}

func TestSession_InvalidKeepsResult(t *testing.T) {
	s := newSession()
	s.SetInput("90")
	if err := s.Submit(); err != nil {
		t.Fatal(err)
	}

	s.SetInput("abc")
	err := s.Submit()
	if !errors.Is(err, lut.ErrInvalidAngleInput) {
		t.Fatalf("expected ErrInvalidAngleInput, got %v", err)
	}
	if s.Err() != "please enter a valid angle value" {
		t.Errorf("unexpected message %q", s.Err())
	}

	r, ok := s.Result()
	if !ok || r.Index != 90 {
		t.Errorf("previous result lost: %+v ok=%v", r, ok)
	}
	if s.Submitted() != "90" {
		t.Errorf("lines should keep the submitted text, got %q", s.Submitted())
	}

	s.SetInput("-30")
	if err := s.Submit(); err != nil {
		t.Fatal(err)
	}
	if s.Err() != "" {
		t.Error("message should clear after a valid submit")
	}
	if r, _ := s.Result(); r.Index != 330 {
		t.Errorf("expected index 330, got %d", r.Index)
	}
}

func TestSession_Editing(t *testing.T) {
	s := newSession()
	s.SetInput("")
	s.Type("4")
	s.Type("5°")
	s.Backspace()
	if s.Input() != "45" {
		t.Errorf("expected 45, got %q", s.Input())
	}
	s.Backspace()
	s.Backspace()
	s.Backspace()
	if s.Input() != "" {
		t.Errorf("expected empty buffer, got %q", s.Input())
	}
}

func TestSession_Range(t *testing.T) {
	s := newSession()

	s.SetRange(200, 100)
	if r := s.Range(); r.Start != 100 || r.End != 150 {
		t.Errorf("expected 100..150, got %+v", r)
	}
	if n := len(s.Entries()); n != 51 {
		t.Errorf("expected 51 entries, got %d", n)
	}

	s.SetRange(10, 12)
	s.NudgeStart(5)
	if r := s.Range(); r.Start != 12 || r.End != 15 {
		t.Errorf("expected swap to 12..15, got %+v", r)
	}
	s.NudgeEnd(-20)
	if r := s.Range(); r.Start != 0 || r.End != 12 {
		t.Errorf("expected 0..12, got %+v", r)
	}

	s.ToggleTable()
	if !s.ShowTable() {
		t.Error("toggle should show the table")
	}
}

func TestScrollWindow(t *testing.T) {
	tests := []struct {
		offset, rows, total, want int
	}{
		{0, 4, 11, 0},
		{5, 4, 11, 5},
		{9, 4, 11, 7},
		{-3, 4, 11, 0},
		{2, 20, 11, 0},
		{60, 10, 51, 41},
		{3, 0, 5, 3},
		{0, 4, 0, 0},
	}
	for _, tt := range tests {
		if got := ScrollWindow(tt.offset, tt.rows, tt.total); got != tt.want {
			t.Errorf("ScrollWindow(%d, %d, %d) = %d, want %d", tt.offset, tt.rows, tt.total, got, tt.want)
		}
	}
}

func TestSession_VisibleEntries(t *testing.T) {
	s := newSession()

	entries, first, total := s.VisibleEntries(4)
	if len(entries) != 4 || first != 0 || total != 11 {
		t.Fatalf("got %d entries from %d of %d", len(entries), first, total)
	}

	// Every row of the default range must be reachable by scrolling.
	seen := map[int]bool{}
	for i := 0; i < 5; i++ {
		entries, _, _ = s.VisibleEntries(4)
		for _, e := range entries {
			seen[e.Degree] = true
		}
		s.ScrollTable(4)
	}
	if len(seen) != 11 {
		t.Errorf("expected all 11 degrees visible after scrolling, saw %d", len(seen))
	}
	if _, first, _ = s.VisibleEntries(4); first != 7 {
		t.Errorf("scroll past the end should stop at 7, got %d", first)
	}

	s.SetRange(0, 359)
	entries, first, total = s.VisibleEntries(10)
	if first != 0 || total != 51 || entries[0].Degree != 0 {
		t.Errorf("SetRange should reset scroll: first=%d total=%d", first, total)
	}
	s.ScrollTable(100)
	entries, first, _ = s.VisibleEntries(10)
	if first != 41 || entries[len(entries)-1].Degree != 50 {
		t.Errorf("expected last window 41..50, got first=%d last=%d", first, entries[len(entries)-1].Degree)
	}

	entries, _, _ = s.VisibleEntries(0)
	if len(entries) != 1 {
		t.Errorf("a zero-row window should still show one entry, got %d", len(entries))
	}
}
