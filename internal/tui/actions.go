package tui

// ActionTracker owns the in-flight bookmark state for every story on a
// screen, keyed by story ID.
type ActionTracker struct {
	states map[string]ActionState
}

// NewActionTracker creates an empty tracker.
func NewActionTracker() ActionTracker {
	return ActionTracker{states: make(map[string]ActionState)}
}

// State returns the state for a story. Unknown stories are idle.
func (t ActionTracker) State(storyID string) ActionState {
	return t.states[storyID]
}

// StartAdd marks an add as in flight. Returns false if one already is.
func (t *ActionTracker) StartAdd(storyID string) bool {
	s := t.states[storyID]
	if s.Adding {
		return false
	}
	s.Adding = true
	t.set(storyID, s)
	return true
}

// FinishAdd clears the add flag.
func (t *ActionTracker) FinishAdd(storyID string) {
	s := t.states[storyID]
	s.Adding = false
	t.set(storyID, s)
}

// StartRemove marks a remove as in flight. Returns false if one already is.
func (t *ActionTracker) StartRemove(storyID string) bool {
	s := t.states[storyID]
	if s.Removing {
		return false
	}
	s.Removing = true
	t.set(storyID, s)
	return true
}

// FinishRemove clears the remove flag.
func (t *ActionTracker) FinishRemove(storyID string) {
	s := t.states[storyID]
	s.Removing = false
	t.set(storyID, s)
}

// Busy reports whether any mutation is in flight.
func (t ActionTracker) Busy() bool {
	return len(t.states) > 0
}

func (t *ActionTracker) set(storyID string, s ActionState) {
	if t.states == nil {
		t.states = make(map[string]ActionState)
	}
	if !s.Loading() {
		delete(t.states, storyID)
		return
	}
	t.states[storyID] = s
}
