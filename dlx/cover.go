package dlx

// cover removes column c from the live column list, then for every row
// passing through c, unlinks every other cell in that row from its own
// column's vertical list. c's own vertical list is left untouched: only the
// horizontal neighbours of cells in rows through c are rewritten.
func (u *Universe) cover(c *ColumnNode) {
	u.tracef("cover %q", c.Name)
	unlinkColumn(c)
	for i := c.Down; i != &c.Node; i = i.Down {
		for j := i.Right; j != i; j = j.Right {
			unlinkVertical(j)
		}
	}
}

// uncover is the exact mirror of cover: it must walk in the reverse
// direction (up vs down, left vs right) so that the neighbours it relinks
// are exactly the ones cover observed, restoring the matrix bit-for-bit.
func (u *Universe) uncover(c *ColumnNode) {
	for i := c.Up; i != &c.Node; i = i.Up {
		for j := i.Left; j != i; j = j.Left {
			relinkVertical(j)
		}
	}
	relinkColumn(c)
	u.tracef("uncover %q", c.Name)
}
