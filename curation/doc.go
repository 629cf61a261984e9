// Package curation holds the editable set of accepted minima and maxima for
// one signal, the ordered min/max pairing derived from it, the automatic
// pairing heuristic that seeds it, and the structural validator that gates
// statistics.
//
// States are values. Each edit returns a new [State], which lets a caller
// keep history or discard a column without aliasing:
//
//	s := curation.NewState(sig.Len())
//	s, _ = s.Insert(12, peaks.Minimum)
//	s, _ = s.Insert(30, peaks.Maximum)
//	v := curation.Validate(s, column.ExpectedCount(5))
//	// v.Valid == true
package curation
