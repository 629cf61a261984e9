package report

import (
	"strconv"

	"github.com/cwbudde/peak-curator/curation"
	"github.com/cwbudde/peak-curator/signal"
	"github.com/cwbudde/peak-curator/stats/cycle"
)

// Absent is the cell written for a missing pair member.
const Absent = "-"

// Point is one pair member in signal coordinates.
type Point struct {
	X, Y    float64
	Present bool
}

func (p Point) String() string {
	if !p.Present {
		return Absent
	}
	return formatFloat(p.X) + ", " + formatFloat(p.Y)
}

// Pair is one min/max cycle of a row.
type Pair struct {
	Min Point
	Max Point
}

// Row is the summary of one finalized column.
type Row struct {
	Column  string
	Forced  bool
	Summary cycle.Summary
	Pairs   []Pair
}

// NewRow summarizes pairing p of sig. Statistics are computed only when the
// verdict allows it; a forced row over an empty or misordered state carries
// N/A statistics.
func NewRow(column string, forced bool, p curation.Pairing, sig signal.Signal, v curation.Verdict) Row {
	row := Row{
		Column:  column,
		Forced:  forced,
		Summary: cycle.Unavailable(),
		Pairs:   make([]Pair, p.Len()),
	}

	if v.Forcible() {
		row.Summary = cycle.Aggregate(p, sig)
	}

	for i := range row.Pairs {
		lo, hasLo, hi, hasHi := p.At(i)
		if hasLo {
			row.Pairs[i].Min = point(sig, lo)
		}
		if hasHi {
			row.Pairs[i].Max = point(sig, hi)
		}
	}

	return row
}

func point(sig signal.Signal, i int) Point {
	pt := sig.At(i)
	return Point{X: pt.X, Y: pt.Y, Present: true}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
