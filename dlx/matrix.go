package dlx

import "log/slog"

// matrixState tracks the lifecycle described in spec §4.7: Building and
// Sealed are externally indistinguishable (the caller's discipline governs
// which mutations still make sense); Searching is internal-only and forbids
// reentrant mutation from a solution sink; Destroyed is terminal.
type matrixState int

const (
	stateBuilding matrixState = iota
	stateSearching
	stateDestroyed
)

// Universe is an exact-cover matrix: a universe of named elements (columns)
// and a family of named subsets (rows). The zero value is not usable; build
// one with NewUniverse or NewUniverseFromString.
type Universe struct {
	root    *ColumnNode
	columns []*ColumnNode // insertion order, for name lookup and destroy

	subsetCount int

	requiredNames  []string
	uncoverAnchors []*ColumnNode

	sink     SolutionSink
	sinkData any

	trace  bool
	logger *slog.Logger

	state     matrixState
	heuristic bool

	// chosen is the pre-sized row buffer search() writes into at each
	// depth. Allocated at the start of every Search call, sized to the live
	// column count at that moment, per the "single pre-sized array" design
	// note.
	chosen []*Node
}

// NewUniverse builds a universe from an ordered list of element names.
// Duplicate names are rejected (skipped, traced) and never produce a second
// column.
func NewUniverse(elements []string) *Universe {
	u := &Universe{root: newColumnNode(""), heuristic: true}
	for _, name := range elements {
		u.addColumn(name)
	}
	return u
}

// NewUniverseFromString builds a universe from a delimited string, splitting
// on any byte in separators. Empty tokens are skipped.
func NewUniverseFromString(elements, separators string) *Universe {
	return NewUniverse(splitTokens(elements, separators))
}

func (u *Universe) addColumn(name string) bool {
	if name == "" {
		return false
	}
	if u.columnByName(name) != nil {
		u.tracef("universe: duplicate element %q skipped", name)
		return false
	}
	c := newColumnNode(name)
	appendColumn(u.root, c)
	u.columns = append(u.columns, c)
	return true
}

func (u *Universe) columnByName(name string) *ColumnNode {
	for col := u.root.Right; col != &u.root.Node; col = col.Right {
		if col.Column.Name == name {
			return col.Column
		}
	}
	return nil
}

// DefineSubset adds a row naming subset to the universe: one cell per
// resolved element. Unknown element names are skipped (traced); duplicate
// element names within the same subset are skipped (traced). Returns false,
// recording nothing, if no element resolves.
func (u *Universe) DefineSubset(name string, elements []string) bool {
	u.requireState(stateBuilding)

	var first *Node
	seen := make(map[string]bool, len(elements))

	for _, elemName := range elements {
		if elemName == "" || seen[elemName] {
			if elemName != "" {
				u.tracef("subset %q: duplicate element %q skipped", name, elemName)
			}
			continue
		}
		col := u.columnByName(elemName)
		if col == nil {
			u.tracef("subset %q: unknown element %q skipped", name, elemName)
			continue
		}
		seen[elemName] = true

		cell := newCell(col, name)
		col.appendCell(cell)
		if first == nil {
			first = cell
		} else {
			appendRowCell(first, cell)
		}
	}

	if first == nil {
		u.tracef("subset %q: no resolved elements, not recorded", name)
		return false
	}

	u.subsetCount++
	u.tracef("subset %q defined", name)
	return true
}

// DefineSubsetFromString is the delimited-string overload of DefineSubset.
func (u *Universe) DefineSubsetFromString(name, elements, separators string) bool {
	return u.DefineSubset(name, splitTokens(elements, separators))
}

// IsEmpty reports whether every column has been covered: the matrix is
// fully covered and a solution (or none) is at hand.
func (u *Universe) IsEmpty() bool {
	return u.root.Right == &u.root.Node
}

// ColumnCount returns the number of live (uncovered) columns.
func (u *Universe) ColumnCount() int {
	n := 0
	for col := u.root.Right; col != &u.root.Node; col = col.Right {
		n++
	}
	return n
}

// SubsetCount returns the total number of subsets successfully defined.
func (u *Universe) SubsetCount() int {
	return u.subsetCount
}
