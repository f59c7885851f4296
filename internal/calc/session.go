package calc

import (
	"log/slog"

	"github.com/san-kum/trigcalc/internal/config"
	"github.com/san-kum/trigcalc/internal/lut"
)

// Session is the state behind one calculator view. Front ends feed it
// keystrokes and read back what to draw.
type Session struct {
	table *lut.Table
	log   *slog.Logger

	input     string
	submitted string
	result    lut.Result
	hasResult bool
	errMsg    string

	showTable bool
	rng       lut.Range
	scroll    int
}

// New creates a session over table, seeded with the configured angle and
// listing range. A nil cfg or log falls back to the defaults.
func New(table *lut.Table, cfg *config.Config, log *slog.Logger) *Session {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if log == nil {
		log = slog.Default()
	}
	return &Session{
		table:     table,
		log:       log,
		input:     cfg.Angle,
		showTable: cfg.Table.Show,
		rng:       lut.Range{Start: cfg.Table.Start, End: cfg.Table.End}.Normalize(),
	}
}

// Table returns the shared lookup table.
func (s *Session) Table() *lut.Table { return s.table }

// Input returns the edit buffer.
func (s *Session) Input() string { return s.input }

// SetInput replaces the edit buffer. The last result stays visible.
func (s *Session) SetInput(in string) { s.input = in }

// Type appends text to the edit buffer.
func (s *Session) Type(text string) { s.input += text }

// Backspace removes the last rune of the edit buffer.
func (s *Session) Backspace() {
	r := []rune(s.input)
	if len(r) > 0 {
		s.input = string(r[:len(r)-1])
	}
}

// Submit evaluates the edit buffer. On failure the previous result is kept
// and the validation message is recorded.
func (s *Session) Submit() error {
	deg, err := lut.ParseAngle(s.input)
	if err != nil {
		s.errMsg = err.Error()
		s.log.Debug("rejected angle", "input", s.input)
		return err
	}
	s.result = s.table.Evaluate(deg)
	s.submitted = s.input
	s.hasResult = true
	s.errMsg = ""
	s.log.Debug("evaluated angle", "input", s.input, "index", s.result.Index)
	return nil
}

// Result returns the last valid result and whether one exists.
func (s *Session) Result() (lut.Result, bool) { return s.result, s.hasResult }

// Submitted is the input text that produced the current result.
func (s *Session) Submitted() string { return s.submitted }

// Err is the current validation message, empty when the last submit succeeded.
func (s *Session) Err() string { return s.errMsg }

// Lines renders the current result, or nil when there is none.
func (s *Session) Lines() []string {
	if !s.hasResult {
		return nil
	}
	return s.result.Lines(s.submitted)
}

// ShowTable reports whether the listing is visible.
func (s *Session) ShowTable() bool { return s.showTable }

// ToggleTable shows or hides the listing.
func (s *Session) ToggleTable() { s.showTable = !s.showTable }

// Range returns the normalized listing range.
func (s *Session) Range() lut.Range { return s.rng }

// SetRange stores the normalized form of start..end and scrolls the
// listing back to its first row.
func (s *Session) SetRange(start, end int) {
	s.rng = lut.Range{Start: start, End: end}.Normalize()
	s.scroll = 0
}

// NudgeStart moves the range start by delta, renormalizing.
func (s *Session) NudgeStart(delta int) { s.SetRange(s.rng.Start+delta, s.rng.End) }

// NudgeEnd moves the range end by delta, renormalizing.
func (s *Session) NudgeEnd(delta int) { s.SetRange(s.rng.Start, s.rng.End+delta) }

// Entries lists the current range.
func (s *Session) Entries() []lut.Entry { return s.table.Entries(s.rng) }

// ScrollTable moves the first visible listing row by delta. The offset is
// clamped when the listing is read.
func (s *Session) ScrollTable(delta int) { s.scroll += delta }

// VisibleEntries returns the window of at most rows listing entries that
// starts at the scroll offset, together with that offset and the total
// number of entries in the range.
func (s *Session) VisibleEntries(rows int) (entries []lut.Entry, first, total int) {
	all := s.Entries()
	s.scroll = ScrollWindow(s.scroll, rows, len(all))
	end := s.scroll + rows
	if rows < 1 {
		end = s.scroll + 1
	}
	if end > len(all) {
		end = len(all)
	}
	return all[s.scroll:end], s.scroll, len(all)
}

// ScrollWindow clamps offset so a window of rows (at least 1) over total
// items stays full where possible and never starts past the end.
func ScrollWindow(offset, rows, total int) int {
	if rows < 1 {
		rows = 1
	}
	last := total - rows
	if last < 0 {
		last = 0
	}
	if offset > last {
		offset = last
	}
	if offset < 0 {
		offset = 0
	}
	return offset
}
