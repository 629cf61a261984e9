package session

import (
	"github.com/cwbudde/peak-curator/report"
	"github.com/cwbudde/peak-curator/signal"
)

// Source provides the signal of a named column.
type Source interface {
	Signal(name string) (signal.Signal, error)
}

// Sink persists the report and returns where it was written.
type Sink interface {
	Write(rep *report.Report) (string, error)
}

// DirSink writes plot_data.csv into the named directory.
type DirSink string

// Write implements Sink.
func (d DirSink) Write(rep *report.Report) (string, error) {
	return report.WritePlotData(string(d), rep)
}
