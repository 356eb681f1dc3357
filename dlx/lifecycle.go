package dlx

import "fmt"

// requireState panics if u is not in want, naming the offending call. This
// is the enforcement point for "no external calls may intrude" during
// Searching, and for rejecting use-after-destroy.
func (u *Universe) requireState(want matrixState) {
	if u.state == want {
		return
	}
	switch u.state {
	case stateSearching:
		panic("dlx: Universe mutated while a search is in progress (solution sink must not call back into the matrix)")
	case stateDestroyed:
		panic("dlx: use of a destroyed Universe")
	}
}

// Destroy releases u's resources. Pre-seeded covers are unwound in strict
// reverse order first, restoring the matrix to its post-build state, then
// every column and its cells are dropped. After Destroy, u must not be used
// again.
func (u *Universe) Destroy() {
	u.requireState(stateBuilding)

	for i := len(u.uncoverAnchors) - 1; i >= 0; i-- {
		u.uncover(u.uncoverAnchors[i])
	}
	u.uncoverAnchors = nil
	u.requiredNames = nil
	u.columns = nil
	u.chosen = nil
	u.root = nil
	u.sink = nil
	u.sinkData = nil

	u.state = stateDestroyed
	u.tracef("universe destroyed")
}

func (s matrixState) String() string {
	switch s {
	case stateBuilding:
		return "building"
	case stateSearching:
		return "searching"
	case stateDestroyed:
		return "destroyed"
	default:
		return fmt.Sprintf("matrixState(%d)", int(s))
	}
}
