package inputs

// State is the input sampled once at the start of a frame.
type State struct {
	// Exit is set when the user asked to leave the frame loop.
	Exit bool
	// Pressed holds the keys that went down since the previous poll.
	Pressed map[Key]bool
	// Frame is the number of polls before this one.
	Frame uint64
}

// Key is a platform-neutral key code.
type Key int

const (
	KeyUnknown Key = iota
	KeyEscape
	KeyEnter
	KeySpace
	KeyQ
	KeyPlus
)

var keyNames = map[Key]string{
	KeyEscape: "escape",
	KeyEnter:  "enter",
	KeySpace:  "space",
	KeyQ:      "q",
	KeyPlus:   "plus",
}

func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "unknown"
}

// ParseKey maps a key name back to a Key. It returns KeyUnknown for names
// it does not know.
func ParseKey(name string) Key {
	for k, n := range keyNames {
		if n == name {
			return k
		}
	}
	return KeyUnknown
}

// Poller samples input once per frame.
type Poller interface {
	PollFrameInput() State
}

// PollerFunc adapts a function to the Poller interface.
type PollerFunc func() State

func (f PollerFunc) PollFrameInput() State { return f() }

// WasExitPressed reports whether s asks the frame loop to stop.
func WasExitPressed(s State) bool {
	return s.Exit
}
