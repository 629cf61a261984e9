package session

import (
	"errors"
	"fmt"

	"github.com/cwbudde/peak-curator/curation"
)

var (
	// ErrNoColumns is returned by Start when the queue is empty.
	ErrNoColumns = errors.New("session: no columns to curate")
	// ErrClosed is returned for commands issued after the session ended.
	ErrClosed = errors.New("session: closed")
	// ErrNoColumn is returned for edits while no column is open.
	ErrNoColumn = errors.New("session: no column open")
	// ErrNoPrevious is returned when no earlier column can be reopened.
	ErrNoPrevious = errors.New("session: no previous column")
	// ErrNothingNear is returned for a click with no extremum to select.
	ErrNothingNear = errors.New("session: no extremum to select")
)

// ValidationError rejects a Finalize on a structurally invalid curation.
type ValidationError struct {
	Column  string
	Verdict curation.Verdict
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("session: %s: %s", e.Column, e.Verdict)
}
