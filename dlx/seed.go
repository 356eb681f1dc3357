package dlx

// RequireInSolution forces the first row named name into every solution
// found by a subsequent Search. "First" means: scan live columns in
// universe-insertion order, and within each column's vertical list, in
// row-insertion order — the same search order dlx_subset_require_in_solution
// uses in the reference implementation, so repeated calls with duplicate
// subset names resolve deterministically.
//
// Returns false, making no change, if name is unknown or every row named
// name is no longer reachable (one of its columns was already covered by a
// prior RequireInSolution).
func (u *Universe) RequireInSolution(name string) bool {
	u.requireState(stateBuilding)

	row := u.findFirstRow(name)
	if row == nil {
		u.tracef("require %q: unknown or incompatible subset, not required", name)
		return false
	}

	for cell := row; ; cell = cell.Right {
		u.cover(cell.Column)
		u.uncoverAnchors = append(u.uncoverAnchors, cell.Column)
		if cell.Right == row {
			break
		}
	}

	u.requiredNames = append(u.requiredNames, name)
	u.tracef("require %q: seeded", name)
	return true
}

// findFirstRow scans columns in insertion order, and within each column's
// vertical list in row-insertion order, returning the first cell whose row
// carries subsetName.
func (u *Universe) findFirstRow(subsetName string) *Node {
	for colNode := u.root.Right; colNode != &u.root.Node; colNode = colNode.Right {
		col := colNode.Column
		for cell := col.Down; cell != &col.Node; cell = cell.Down {
			if cell.SubsetName == subsetName {
				return cell
			}
		}
	}
	return nil
}
