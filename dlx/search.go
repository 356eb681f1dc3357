package dlx

// SolutionSink receives one callback per solution found by Search. names is
// the concatenation of subsets required via RequireInSolution and the rows
// chosen during the search, in that order. It is valid only for the
// duration of the call — copy it if you need to keep it.
type SolutionSink func(u *Universe, names []string, data any)

// SetSolutionSink registers sink (and its user data) on u, returning
// whatever sink was previously registered (nil on first call). Passing a
// nil sink disables callback reporting; solutions are then only counted,
// or traced to the logger if tracing is enabled.
func (u *Universe) SetSolutionSink(sink SolutionSink, data any) SolutionSink {
	prev := u.sink
	u.sink = sink
	u.sinkData = data
	return prev
}

// SetHeuristic turns the minimum-remaining-values column choice on or off
// for u. Defaults to on. Disabling it falls back to first-live-column
// choice, matching the OPTIMIZE_CHOICE compile-time flag in the reference
// implementation — kept per-instance rather than process-wide, for the same
// re-entrancy reasons the trace flag is a field and not a global.
func (u *Universe) SetHeuristic(on bool) {
	u.heuristic = on
}

// Search runs Algorithm X over the live matrix and returns the number of
// exact covers found. With oneOnly set, it returns after the first solution.
// On return, the matrix is restored to exactly its pre-call state (besides
// the side arrays that record found solutions).
func (u *Universe) Search(oneOnly bool) uint64 {
	u.requireState(stateBuilding)

	u.chosen = make([]*Node, u.ColumnCount())
	u.state = stateSearching
	defer func() { u.state = stateBuilding }()

	u.tracef("search: looking for %s exact cover solution(s)", oneOnlyWord(oneOnly))
	n := u.search(0, oneOnly)
	u.tracef("search: %d solution(s) found", n)
	return n
}

func (u *Universe) search(k int, oneOnly bool) uint64 {
	if u.IsEmpty() {
		u.reportSolution(k)
		return 1
	}

	c := u.chooseColumn()
	if c.Size == 0 {
		return 0
	}

	u.cover(c)

	var found uint64
	for r := c.Down; r != &c.Node; r = r.Down {
		u.chosen[k] = r
		for j := r.Right; j != r; j = j.Right {
			u.cover(j.Column)
		}

		found += u.search(k+1, oneOnly)

		for j := r.Left; j != r; j = j.Left {
			u.uncover(j.Column)
		}

		if oneOnly && found > 0 {
			break
		}
	}

	u.uncover(c)
	return found
}

// chooseColumn picks the live column with the fewest rows (first occurrence
// wins ties), or simply the first live column when the heuristic is
// disabled.
func (u *Universe) chooseColumn() *ColumnNode {
	chosen := u.root.Right.Column
	if !u.heuristic {
		return chosen
	}

	min := chosen.Size
	for colNode := u.root.Right.Right; colNode != &u.root.Node; colNode = colNode.Right {
		if colNode.Column.Size < min {
			chosen = colNode.Column
			min = colNode.Column.Size
		}
	}
	return chosen
}

// reportSolution builds the name list for the just-found solution —
// required names first, then the rows chosen at depths 0..k-1 — and
// invokes the sink, or traces/counts silently if none is registered.
func (u *Universe) reportSolution(k int) {
	names := make([]string, 0, len(u.requiredNames)+k)
	names = append(names, u.requiredNames...)
	for i := 0; i < k; i++ {
		names = append(names, u.chosen[i].SubsetName)
	}

	if u.sink != nil {
		u.sink(u, names, u.sinkData)
		return
	}

	if u.trace {
		u.tracef("solution: %v", names)
	}
}

func oneOnlyWord(oneOnly bool) string {
	if oneOnly {
		return "the first"
	}
	return "all"
}
