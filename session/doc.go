// Package session drives the curation of a queue of columns, one at a time,
// as an explicit state machine.
//
// Opening a column calibrates both polarities, proposes an initial curation
// and validates it:
//
//	Idle -> Calibrating -> Validating -> AwaitingEdit
//
// Every edit revalidates (AwaitingEdit -> Validating -> AwaitingEdit).
// Finalize, ForceFinalize and Skip leave the column through Finalized or
// Skipped and open the next one. Observers receive an immutable [View]
// after every transition.
//
// A Session is not safe for concurrent use.
//
// # Usage
//
//	s := session.New(ds, session.DirSink(outDir), columns,
//		session.WithLogger(log),
//		session.WithObserver(renderer),
//	)
//	if err := s.Start(); err != nil {
//		return err
//	}
//	for !s.Done() {
//		// dispatch user commands: s.Click, s.Finalize, s.Skip, ...
//	}
package session
