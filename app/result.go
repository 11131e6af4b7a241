package app

// Result tells the run loop whether to keep going or shut down.
// It is the value Iterate returns after every frame.
type Result int

const (
	// ResultContinue keeps the run loop going.
	ResultContinue Result = iota

	// ResultSuccess ends the run loop with a successful exit
	// (user closed the window or pressed Escape).
	ResultSuccess

	// ResultFailure ends the run loop with a failed exit.
	ResultFailure
)

// String returns a human-readable name for logging.
func (r Result) String() string {
	switch r {
	case ResultContinue:
		return "continue"
	case ResultSuccess:
		return "success"
	case ResultFailure:
		return "failure"
	default:
		return "unknown"
	}
}
