package session

import (
	"go.uber.org/zap"

	"github.com/cwbudde/peak-curator/curation"
	"github.com/cwbudde/peak-curator/peaks"
	"github.com/cwbudde/peak-curator/report"
)

func (s *Session) ready() error {
	if s.done {
		return ErrClosed
	}
	if s.state != AwaitingEdit || s.cur == nil {
		return ErrNoColumn
	}
	return nil
}

// edit applies fn to the open curation and revalidates. A rejected edit
// leaves the curation unchanged.
func (s *Session) edit(fn func(curation.State) (curation.State, error)) error {
	if err := s.ready(); err != nil {
		return err
	}
	next, err := fn(s.cur.curation)
	if err != nil {
		return err
	}
	s.cur.curation = next
	s.validate()
	return nil
}

// Insert accepts index i as an extremum of polarity p.
func (s *Session) Insert(i int, p peaks.Polarity) error {
	return s.edit(func(st curation.State) (curation.State, error) {
		return st.Insert(i, p)
	})
}

// Remove drops index i from polarity p.
func (s *Session) Remove(i int, p peaks.Polarity) error {
	return s.edit(func(st curation.State) (curation.State, error) {
		return st.Remove(i, p), nil
	})
}

// Clear empties both sets.
func (s *Session) Clear() error {
	return s.edit(func(st curation.State) (curation.State, error) {
		return st.Clear(), nil
	})
}

// Click toggles the extremum nearest to (x, y) and returns it.
func (s *Session) Click(x, y float64) (curation.Selection, error) {
	var sel curation.Selection
	err := s.edit(func(st curation.State) (curation.State, error) {
		var ok bool
		sel, ok = curation.Nearest(s.cur.sig, st, s.cur.candidates, x, y)
		if !ok {
			return st, ErrNothingNear
		}
		return st.Toggle(sel.Index, sel.Polarity)
	})
	return sel, err
}

// ForceClick inserts an extremum of polarity p at the sample located from
// time x, regardless of amplitude, and returns its index.
func (s *Session) ForceClick(x float64, p peaks.Polarity) (int, error) {
	var idx int
	err := s.edit(func(st curation.State) (curation.State, error) {
		next, i, err := curation.InsertAt(s.cur.sig, st, x, p)
		idx = i
		return next, err
	})
	return idx, err
}

// SetThresholds replaces the prominence thresholds, clamped to
// [0, MaxProminence], and recomputes the candidate pool. The curation is
// left as is.
func (s *Session) SetThresholds(minT, maxT float64) error {
	if err := s.ready(); err != nil {
		return err
	}

	c := s.cur
	c.thresholds = Thresholds{Min: s.clamp(minT), Max: s.clamp(maxT)}
	ex := s.cal.Extractor()
	c.candidates = curation.Candidates{
		Min: ex.Extract(c.sig, c.thresholds.Min, peaks.Minimum),
		Max: ex.Extract(c.sig, c.thresholds.Max, peaks.Maximum),
	}
	s.log.Debug("thresholds changed",
		zap.String("column", c.id.Raw),
		zap.Float64("min_threshold", c.thresholds.Min),
		zap.Float64("max_threshold", c.thresholds.Max))

	s.validate()
	return nil
}

func (s *Session) clamp(v float64) float64 {
	return min(max(v, 0), s.cfg.MaxProminence)
}

// Finalize records the open column and moves on. An invalid curation
// returns a *ValidationError and keeps the column open.
func (s *Session) Finalize() error {
	if err := s.ready(); err != nil {
		return err
	}
	if !s.cur.verdict.Valid {
		return &ValidationError{Column: s.cur.id.Raw, Verdict: s.cur.verdict}
	}
	return s.accept(false)
}

// ForceFinalize records the open column whatever its verdict. Statistics
// of empty or misordered curations are written as N/A.
func (s *Session) ForceFinalize() error {
	if err := s.ready(); err != nil {
		return err
	}
	return s.accept(true)
}

func (s *Session) accept(forced bool) error {
	c := s.cur
	row := report.NewRow(c.id.Raw, forced, c.curation.Pairing(), c.sig, c.verdict)
	s.rep.Add(row)
	s.curated[c.id.Raw] = c.curation

	fields := []zap.Field{
		zap.String("column", c.id.Raw),
		zap.Bool("forced", forced),
		zap.Stringer("mean_height", row.Summary.MeanHeight),
		zap.Stringer("mean_duration", row.Summary.MeanDuration),
	}
	if forced && !c.verdict.Valid {
		s.log.Warn("forced acceptance", append(fields, zap.Stringer("kind", c.verdict.Kind))...)
	} else {
		s.log.Info("column accepted", fields...)
	}

	s.transition(Finalized)
	return s.advance(s.pos + 1)
}

// Skip discards the open column without writing a row.
func (s *Session) Skip() error {
	if err := s.ready(); err != nil {
		return err
	}
	s.log.Info("column skipped", zap.String("column", s.cur.id.Raw))
	s.transition(Skipped)
	return s.advance(s.pos + 1)
}

// Previous reopens the nearest earlier column that can be curated. A
// column accepted before is restored with its accepted curation.
func (s *Session) Previous() error {
	if err := s.ready(); err != nil {
		return err
	}
	for i := s.pos - 1; i >= 0; i-- {
		if s.open(i) {
			return nil
		}
	}
	return ErrNoPrevious
}

// Dump writes the report without ending the session and returns the path.
// It stays available after the session ended so a failed final write can
// be retried.
func (s *Session) Dump() (string, error) {
	return s.flushTo(s.sink)
}

// DumpTo writes the report through sink instead of the session's own. Later
// writes still go to the session's sink.
func (s *Session) DumpTo(sink Sink) (string, error) {
	return s.flushTo(sink)
}

// Exit writes the report and ends the session.
func (s *Session) Exit() error {
	if s.done {
		return ErrClosed
	}
	s.log.Info("exit requested", zap.Int("position", s.pos), zap.Int("total", len(s.columns)))
	return s.finish()
}
