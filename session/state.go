package session

// State is a session phase.
type State int

const (
	Idle State = iota
	Calibrating
	AwaitingEdit
	Validating
	Finalized
	Skipped
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Calibrating:
		return "calibrating"
	case AwaitingEdit:
		return "awaiting_edit"
	case Validating:
		return "validating"
	case Finalized:
		return "finalized"
	case Skipped:
		return "skipped"
	default:
		return "unknown"
	}
}
