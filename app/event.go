package app

// Key identifies a keyboard key in controller events. Only the keys the
// controller reacts to are named; drivers map their native key codes
// onto these.
type Key int

const (
	// KeyUnknown is any key the controller does not care about.
	KeyUnknown Key = iota

	// KeyEscape requests a successful quit.
	KeyEscape
)

// Event is an input event delivered to HandleEvent. Drivers translate
// their native events into these; everything else is dropped at the
// driver boundary.
type Event interface {
	isEvent()
}

// QuitEvent signals a user-initiated quit, e.g. window close.
type QuitEvent struct{}

func (QuitEvent) isEvent() {}

// KeyDownEvent signals a key press.
type KeyDownEvent struct {
	Key Key
}

func (KeyDownEvent) isEvent() {}

// EventSource supplies pending input events, one per call.
// PollEvent returns false when no events are queued for this frame.
type EventSource interface {
	PollEvent() (Event, bool)
}
