// Package cycle computes per-column peak statistics from an ordered min/max
// pairing: the mean and population standard deviation of peak height and of
// the min-to-max duration.
package cycle

import (
	"math"
	"strconv"

	"gonum.org/v1/gonum/stat"

	"github.com/cwbudde/peak-curator/curation"
	"github.com/cwbudde/peak-curator/signal"
)

// NotAvailable is the rendering of an undefined statistic.
const NotAvailable = "N/A"

// Measure is a statistic that may be undefined.
type Measure struct {
	value float64
	ok    bool
}

// Value returns a defined measure.
func Value(v float64) Measure { return Measure{value: v, ok: true} }

// NA returns an undefined measure.
func NA() Measure { return Measure{} }

// Float returns the value and whether it is defined.
func (m Measure) Float() (float64, bool) { return m.value, m.ok }

// IsNA reports whether the measure is undefined.
func (m Measure) IsNA() bool { return !m.ok }

func (m Measure) String() string {
	if !m.ok {
		return NotAvailable
	}
	return strconv.FormatFloat(m.value, 'f', -1, 64)
}

// Summary holds the statistics of one curated column.
type Summary struct {
	MeanHeight   Measure
	MeanDuration Measure
	StdHeight    Measure
	StdDuration  Measure
	// Pairs is the number of complete pairs the statistics cover.
	Pairs int
}

// Unavailable returns a summary with every statistic undefined, written for
// forced columns whose pairing is empty or misordered.
func Unavailable() Summary {
	return Summary{MeanHeight: NA(), MeanDuration: NA(), StdHeight: NA(), StdDuration: NA()}
}

// Aggregate computes the summary over the complete pairs of p.
//
// Height is value(max) - value(min) and duration is time(max) - time(min).
// When p is offset, the first pair wraps past the end of the recording and
// its duration is (last time - min time) + (max time - first time). A lone
// wrapped pair cannot be told apart from the recording length, so its
// duration is undefined.
func Aggregate(p curation.Pairing, sig signal.Signal) Summary {
	heights := Heights(p, sig)
	if len(heights) == 0 {
		return Unavailable()
	}

	s := Summary{Pairs: len(heights)}
	s.MeanHeight, s.StdHeight = meanStd(heights)

	if durations, ok := Durations(p, sig); ok {
		s.MeanDuration, s.StdDuration = meanStd(durations)
	} else {
		s.MeanDuration, s.StdDuration = NA(), NA()
	}

	return s
}

// Heights returns the unsigned height of each complete pair.
func Heights(p curation.Pairing, sig signal.Signal) []float64 {
	n := p.Complete()
	out := make([]float64, n)
	for i := range n {
		out[i] = math.Abs(sig.Value(p.Max[i]) - sig.Value(p.Min[i]))
	}
	return out
}

// Durations returns the duration of each complete pair. It reports false
// when the durations are undefined.
func Durations(p curation.Pairing, sig signal.Signal) ([]float64, bool) {
	n := p.Complete()
	if n == 0 || (n == 1 && p.Offset) {
		return nil, false
	}

	out := make([]float64, n)
	for i := range n {
		lo, hi := sig.Time(p.Min[i]), sig.Time(p.Max[i])
		if i == 0 && p.Offset {
			out[i] = (sig.LastTime() - lo) + (hi - sig.FirstTime())
			continue
		}
		out[i] = hi - lo
	}
	return out, true
}

// meanStd returns the population mean and standard deviation. gonum derives
// the population variance from the sample variance, which is undefined for
// a single value.
func meanStd(x []float64) (Measure, Measure) {
	if len(x) == 1 {
		return Value(x[0]), Value(0)
	}
	mean, std := stat.PopMeanStdDev(x, nil)
	return Value(mean), Value(std)
}
