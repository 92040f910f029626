package termnav

import "path/filepath"

// ActionKind enumerates navigation actions.
type ActionKind int

const (
	ActionNoOp ActionKind = iota
	ActionFinalize
	ActionAscend
	ActionDescend
	ActionCancel
)

func (k ActionKind) String() string {
	switch k {
	case ActionFinalize:
		return "finalize"
	case ActionAscend:
		return "ascend"
	case ActionDescend:
		return "descend"
	case ActionCancel:
		return "cancel"
	default:
		return "noop"
	}
}

// Action is the result of resolving a selection.
type Action struct {
	Kind ActionKind
	Name string // child name for ActionDescend
}

// Outcome tells the driver whether to keep looping.
type Outcome int

const (
	Continue Outcome = iota
	Terminate
)

// Session holds the directory the run started in and the one being browsed.
type Session struct {
	origin  string
	current string
}

// NewSession starts a session at dir, which must be absolute.
func NewSession(dir string) *Session {
	dir = filepath.Clean(dir)
	return &Session{origin: dir, current: dir}
}

// Origin returns the launch directory.
func (s *Session) Origin() string { return s.origin }

// Current returns the directory being browsed.
func (s *Session) Current() string { return s.current }

// AtOrigin reports whether the session is back at its launch directory.
func (s *Session) AtOrigin() bool { return s.current == s.origin }

// Apply mutates Current according to a and reports whether to continue.
func (s *Session) Apply(a Action) Outcome {
	switch a.Kind {
	case ActionAscend:
		// filepath.Dir of the root is the root.
		s.current = filepath.Dir(s.current)
	case ActionDescend:
		s.current = filepath.Join(s.current, a.Name)
	case ActionFinalize, ActionCancel:
		return Terminate
	}
	return Continue
}
