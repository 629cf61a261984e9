package session

import (
	"errors"
	"math"
	"slices"

	"go.uber.org/zap"

	"github.com/cwbudde/peak-curator/column"
	"github.com/cwbudde/peak-curator/curation"
	"github.com/cwbudde/peak-curator/dsp/window"
	"github.com/cwbudde/peak-curator/internal/logging"
	"github.com/cwbudde/peak-curator/peaks"
	"github.com/cwbudde/peak-curator/report"
	"github.com/cwbudde/peak-curator/signal"
	"github.com/cwbudde/peak-curator/stats/frequency"
)

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(log *zap.Logger) Option {
	return func(s *Session) {
		if log != nil {
			s.log = log
		}
	}
}

// WithConfig sets the extraction and calibration parameters.
func WithConfig(cfg peaks.Config) Option {
	return func(s *Session) {
		s.cfg = cfg
	}
}

// WithFinder replaces the peak-finding primitive.
func WithFinder(f peaks.Finder) Option {
	return func(s *Session) {
		s.finder = f
	}
}

// WithSpectralWindow selects the taper used by the spectral cycle check.
func WithSpectralWindow(t window.Type) Option {
	return func(s *Session) {
		s.window = t
	}
}

// WithObserver registers observers.
func WithObserver(obs ...Observer) Option {
	return func(s *Session) {
		for _, o := range obs {
			if o != nil {
				s.observers = append(s.observers, o)
			}
		}
	}
}

// WithReport continues an existing report instead of starting empty.
func WithReport(rep *report.Report) Option {
	return func(s *Session) {
		if rep != nil {
			s.rep = rep
		}
	}
}

// Session curates a queue of columns.
type Session struct {
	src     Source
	sink    Sink
	columns []string

	cfg       peaks.Config
	window    window.Type
	finder    peaks.Finder
	cal       *peaks.Calibrator
	log       *zap.Logger
	observers []Observer

	rep *report.Report
	// curated keeps the last accepted curation per column for Previous.
	curated map[string]curation.State

	state State
	pos   int
	cur   *current
	done  bool
}

type current struct {
	id         column.ID
	sig        signal.Signal
	curation   curation.State
	candidates curation.Candidates
	thresholds Thresholds
	expected   int
	verdict    curation.Verdict
	exhausted  bool
}

// New returns an idle session over columns. Call Start to open the first
// column.
func New(src Source, sink Sink, columns []string, opts ...Option) *Session {
	s := &Session{
		src:     src,
		sink:    sink,
		columns: slices.Clone(columns),
		cfg:     peaks.DefaultConfig(),
		window:  window.TypeHann,
		log:     logging.OrNop(nil),
		rep:     report.New(),
		curated: make(map[string]curation.State),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	s.cal = peaks.NewCalibrator(s.cfg, s.finder)
	return s
}

// Start opens the first column that can be curated. With an empty queue it
// flushes the report, ends the session and returns ErrNoColumns.
func (s *Session) Start() error {
	if s.done {
		return ErrClosed
	}
	if s.state != Idle {
		return nil
	}
	if len(s.columns) == 0 {
		return errors.Join(ErrNoColumns, s.finish())
	}
	return s.advance(0)
}

// State returns the current phase.
func (s *Session) State() State { return s.state }

// Done reports whether the session has ended.
func (s *Session) Done() bool { return s.done }

// Report returns the report accumulated so far.
func (s *Session) Report() *report.Report { return s.rep }

// View returns a snapshot of the session.
func (s *Session) View() View {
	v := View{
		State:    s.state,
		Position: s.pos,
		Total:    len(s.columns),
		Done:     s.done,
	}
	if s.cur == nil {
		return v
	}

	c := s.cur
	v.Column = c.id
	v.Signal = c.sig
	v.Curation = c.curation
	v.Pairing = c.curation.Pairing()
	v.Candidates = curation.Candidates{Min: slices.Clone(c.candidates.Min), Max: slices.Clone(c.candidates.Max)}
	v.Thresholds = c.thresholds
	v.Expected = c.expected
	v.Verdict = c.verdict
	v.Exhausted = c.exhausted
	v.Saved, v.Forced = s.rep.Status(c.id.Raw)
	return v
}

func (s *Session) transition(st State) {
	s.state = st
	v := s.View()
	for _, o := range s.observers {
		o.Observe(v)
	}
}

// advance opens the first curatable column at or after i, or finishes the
// session when none is left.
func (s *Session) advance(i int) error {
	for ; i < len(s.columns); i++ {
		if s.open(i) {
			return nil
		}
	}
	return s.finish()
}

// open loads, calibrates and validates column i. Columns whose identifier
// or data cannot be read are logged and reported as not opened.
func (s *Session) open(i int) bool {
	name := s.columns[i]
	log := s.log.With(zap.String("column", name))

	id, err := column.Parse(name)
	if err != nil {
		log.Warn("skipping column", zap.Error(err))
		return false
	}
	sig, err := s.src.Signal(name)
	if err != nil {
		log.Error("skipping unreadable column", zap.Error(err))
		return false
	}

	s.pos = i
	s.cur = &current{id: id, sig: sig, expected: id.ExpectedCount()}
	s.transition(Calibrating)

	c := s.cur
	lo := s.cal.Calibrate(sig, c.expected, peaks.Minimum)
	hi := s.cal.Calibrate(sig, c.expected, peaks.Maximum)
	c.thresholds = Thresholds{Min: lo.Threshold, Max: hi.Threshold}
	c.candidates = curation.Candidates{Min: lo.Indices, Max: hi.Indices}
	c.exhausted = lo.Exhausted || hi.Exhausted

	log.Info("calibrated",
		zap.Int("expected", c.expected),
		zap.Float64("min_threshold", lo.Threshold),
		zap.Int("min_found", len(lo.Indices)),
		zap.Float64("max_threshold", hi.Threshold),
		zap.Int("max_found", len(hi.Indices)))
	if c.exhausted {
		log.Warn("calibration exhausted", zap.Int("expected", c.expected),
			zap.Int("min_found", len(lo.Indices)), zap.Int("max_found", len(hi.Indices)))
	}

	s.checkSpectrum(log, sig, c.expected)

	if prev, ok := s.curated[name]; ok {
		c.curation = prev
	} else if prop, err := curation.Propose(sig, lo.Indices, hi.Indices); err != nil {
		log.Warn("automatic pairing failed", zap.Error(err))
		c.curation = curation.NewState(sig.Len())
	} else {
		c.curation = prop.State
		log.Debug("proposed", zap.Bool("offset", prop.Offset), zap.Int("suppressed", prop.Suppressed))
	}

	s.validate()
	return true
}

// Below these sizes the bin spacing of the zero-padded transform is too
// coarse for the estimate to mean anything.
const (
	spectralMinSamples      = 32
	spectralSamplesPerCycle = 8
)

// checkSpectrum warns when the dominant cycle count of sig disagrees with
// the count implied by the column's frame rate. Short columns are not
// checked.
func (s *Session) checkSpectrum(log *zap.Logger, sig signal.Signal, expected int) {
	if n := sig.Len(); n < max(spectralMinSamples, spectralSamplesPerCycle*expected) {
		log.Debug("spectral check skipped", zap.Int("samples", n), zap.Int("expected", expected))
		return
	}
	est, err := frequency.DominantCycles(sig.Values(), frequency.WithWindow(s.window))
	if err != nil {
		log.Debug("no spectral estimate", zap.Error(err))
		return
	}
	if math.Abs(float64(est.Cycles-expected)) > 1 {
		log.Warn("spectral cycle count disagrees with frame rate",
			zap.Int("expected", expected),
			zap.Stringer("window", s.window),
			zap.Int("estimated", est.Cycles),
			zap.Float64("share", est.Share))
	}
}

func (s *Session) validate() {
	s.transition(Validating)
	s.cur.verdict = curation.Validate(s.cur.curation, s.cur.expected)
	s.transition(AwaitingEdit)
}

// finish flushes the report and ends the session. The report stays in
// memory when the write fails so Dump can retry.
func (s *Session) finish() error {
	s.done = true
	s.cur = nil
	s.transition(s.state)
	_, err := s.flushTo(s.sink)
	return err
}

func (s *Session) flushTo(sink Sink) (string, error) {
	path, err := sink.Write(s.rep)
	if err != nil {
		s.log.Error("writing report failed", zap.Error(err), zap.Int("rows", s.rep.Len()))
		return "", err
	}
	s.log.Info("report written", zap.String("path", path), zap.Int("rows", s.rep.Len()))
	return path, nil
}
