package session

import (
	"github.com/cwbudde/peak-curator/column"
	"github.com/cwbudde/peak-curator/curation"
	"github.com/cwbudde/peak-curator/signal"
)

// Thresholds are the prominence thresholds per polarity.
type Thresholds struct {
	Min float64
	Max float64
}

// View is a snapshot of the session handed to observers. Slices inside it
// are copies.
type View struct {
	State State
	// Position is the index of the column in the queue and Total its length.
	Position int
	Total    int

	Column     column.ID
	Signal     signal.Signal
	Curation   curation.State
	Pairing    curation.Pairing
	Candidates curation.Candidates
	Thresholds Thresholds
	Expected   int
	Verdict    curation.Verdict
	// Exhausted is set when calibration reached zero without meeting the
	// expected count for either polarity.
	Exhausted bool

	// Saved and Forced describe the column's row in the report.
	Saved  bool
	Forced bool

	Done bool
}

// Observer receives a view after every transition.
type Observer interface {
	Observe(View)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(View)

// Observe calls f(v).
func (f ObserverFunc) Observe(v View) { f(v) }
