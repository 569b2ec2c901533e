package session

// Key is one of the keys the state machine reacts to.
type Key int

const (
	KeyNone Key = iota
	KeyEscape
	KeyTab
	KeyEnter
)

func (k Key) String() string {
	switch k {
	case KeyEscape:
		return "escape"
	case KeyTab:
		return "tab"
	case KeyEnter:
		return "enter"
	default:
		return "none"
	}
}

// KeyEvent is a key press. Modified is set when any modifier key was held;
// modified presses are never intercepted.
type KeyEvent struct {
	Key      Key
	Modified bool
}

// Event is the input of one interaction cycle.
type Event struct {
	Key   KeyEvent
	Focus FieldID
}

// Signal ends a session.
type Signal int

const (
	SignalNone Signal = iota
	SignalCommit
	SignalCancel
)

func (s Signal) String() string {
	switch s {
	case SignalCommit:
		return "commit"
	case SignalCancel:
		return "cancel"
	default:
		return "none"
	}
}

// Result describes what a cycle did. Handled is false when the key was left
// to the presentation layer (for example default Tab traversal).
type Result struct {
	Handled bool
	Signal  Signal
	Output  string
	Err     error
}
