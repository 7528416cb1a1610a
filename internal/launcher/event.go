package launcher

import "fmt"

// EventKind identifies an input event delivered to the controller.
type EventKind int

const (
	EventChar      EventKind = iota // printable character in Event.Char
	EventBackspace                  // delete the last character
	EventUp                         // move the selection up
	EventDown                       // move the selection down
	EventComplete                   // replace the buffer with a suggestion
	EventAccept                     // run the command
	EventCancel                     // end without running anything
	EventTimeout                    // inactivity deadline passed
	EventRefresh                    // search path contents changed
)

var eventNames = map[EventKind]string{
	EventChar:      "char",
	EventBackspace: "backspace",
	EventUp:        "up",
	EventDown:      "down",
	EventComplete:  "complete",
	EventAccept:    "accept",
	EventCancel:    "cancel",
	EventTimeout:   "timeout",
	EventRefresh:   "refresh",
}

func (k EventKind) String() string {
	if name, ok := eventNames[k]; ok {
		return name
	}
	return fmt.Sprintf("EventKind(%d)", int(k))
}

// Event is one discrete input event.
type Event struct {
	Kind EventKind
	Char rune // only for EventChar
}

// Char builds a character event.
func Char(c rune) Event { return Event{Kind: EventChar, Char: c} }

// Key builds an event without a payload.
func Key(kind EventKind) Event { return Event{Kind: kind} }

// isInput reports whether the event came from the user and so counts as
// activity for the inactivity timer.
func (e Event) isInput() bool {
	switch e.Kind {
	case EventTimeout, EventRefresh:
		return false
	default:
		return true
	}
}

// State is the controller's position in the session lifecycle.
type State int

const (
	StateIdle       State = iota // nothing typed yet
	StateSearching               // re-deriving suggestions
	StateDisplaying              // suggestions computed, waiting for input
	StateExecuted                // command handed to the launcher
	StateCancelled               // user cancelled
	StateTimedOut                // inactivity deadline passed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSearching:
		return "searching"
	case StateDisplaying:
		return "displaying"
	case StateExecuted:
		return "executed"
	case StateCancelled:
		return "cancelled"
	case StateTimedOut:
		return "timed out"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Terminal reports whether the session has ended.
func (s State) Terminal() bool {
	return s == StateExecuted || s == StateCancelled || s == StateTimedOut
}
