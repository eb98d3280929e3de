package eglcontext

// State is the longest prefix of the acquire chain currently held.
type State int

const (
	StateEmpty State = iota
	StateDisplayOpen
	StateAPISelected
	StateConfigChosen
	StateSurfaceCreated
	StateContextCreated
	StateCurrent
)

var stateNames = [...]string{
	StateEmpty:          "empty",
	StateDisplayOpen:    "display-open",
	StateAPISelected:    "api-selected",
	StateConfigChosen:   "config-chosen",
	StateSurfaceCreated: "surface-created",
	StateContextCreated: "context-created",
	StateCurrent:        "current",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "unknown"
	}
	return stateNames[s]
}
