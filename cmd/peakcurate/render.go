package main

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/cwbudde/peak-curator/session"
	"github.com/cwbudde/peak-curator/signal"
)

// renderer prints the open column whenever it is ready for edits.
type renderer struct {
	out io.Writer
}

func newRenderer(out io.Writer) *renderer {
	return &renderer{out: out}
}

// Observe implements session.Observer.
func (r *renderer) Observe(v session.View) {
	switch {
	case v.Done:
		fmt.Fprintln(r.out, "all columns processed")
	case v.State == session.AwaitingEdit:
		render(r.out, v)
	}
}

func render(out io.Writer, v session.View) {
	if v.Signal.Len() == 0 {
		fmt.Fprintln(out, "no column open")
		return
	}

	status := "not saved"
	if v.Saved {
		status = "saved"
		if v.Forced {
			status = "saved (forced)"
		}
	}

	fmt.Fprintf(out, "\n[%d/%d] %s  %s\n", v.Position+1, v.Total, v.Column.Title(), status)
	fmt.Fprintf(out, "thresholds min %.2f max %.2f  candidates %d min %d max  expected %d pairs",
		v.Thresholds.Min, v.Thresholds.Max, len(v.Candidates.Min), len(v.Candidates.Max), v.Expected)
	if v.Exhausted {
		fmt.Fprint(out, "  (calibration exhausted)")
	}
	fmt.Fprintf(out, "\nverdict: %s\n", v.Verdict)

	p := v.Pairing
	if p.Len() == 0 {
		return
	}

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Pair\tMin\tMin (t, v)\tMax\tMax (t, v)\n")
	fmt.Fprintf(tw, "----\t---\t----------\t---\t----------\n")
	for i := range p.Len() {
		lo, hasLo, hi, hasHi := p.At(i)
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", i+1,
			indexCell(lo, hasLo), pointCell(v.Signal, lo, hasLo),
			indexCell(hi, hasHi), pointCell(v.Signal, hi, hasHi))
	}
	_ = tw.Flush()

	if p.Offset {
		fmt.Fprintln(out, "offset: pair 1 wraps past the end of the recording")
	}
}

func indexCell(i int, ok bool) string {
	if !ok {
		return "-"
	}
	return strconv.Itoa(i)
}

func pointCell(sig signal.Signal, i int, ok bool) string {
	if !ok {
		return "-"
	}
	pt := sig.At(i)
	return fmt.Sprintf("%.4g, %.4g", pt.X, pt.Y)
}
