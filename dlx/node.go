package dlx

// Node is one cell of the toroidal matrix: a row cell when Column is set to
// another column, or the embedded Node of a ColumnNode when Column points at
// itself. Left/Right link the row (or the column-header list, for the root);
// Up/Down link the column.
type Node struct {
	Left, Right, Up, Down *Node
	Column                *ColumnNode
	SubsetName            string
}

// ColumnNode is a column header: one per universe element, plus one
// distinguished instance acting as the root that anchors the horizontal list
// of live columns.
type ColumnNode struct {
	Node
	Name string
	Size int
}

func newColumnNode(name string) *ColumnNode {
	c := &ColumnNode{Name: name}
	c.Left = &c.Node
	c.Right = &c.Node
	c.Up = &c.Node
	c.Down = &c.Node
	c.Column = c
	return c
}

func newCell(col *ColumnNode, subsetName string) *Node {
	n := &Node{Column: col, SubsetName: subsetName}
	n.Left = n
	n.Right = n
	n.Up = n
	n.Down = n
	return n
}

// appendColumn links c at the tail of root's horizontal list.
func appendColumn(root *ColumnNode, c *ColumnNode) {
	c.Right = &root.Node
	c.Left = root.Left
	root.Left.Right = &c.Node
	root.Left = &c.Node
}

// unlinkColumn removes c from root's horizontal list (used by cover).
func unlinkColumn(c *ColumnNode) {
	c.Right.Left = c.Left
	c.Left.Right = c.Right
}

// relinkColumn restores c into root's horizontal list (used by uncover).
// Must be called with the same neighbours cover() observed, which holds
// because cover/uncover nest in strict LIFO order.
func relinkColumn(c *ColumnNode) {
	c.Right.Left = &c.Node
	c.Left.Right = &c.Node
}

// appendRowCell inserts n immediately to the left of anchor, i.e. at the
// tail of anchor's row.
func appendRowCell(anchor, n *Node) {
	n.Right = anchor
	n.Left = anchor.Left
	anchor.Left.Right = n
	anchor.Left = n
}

// appendCell inserts n at the bottom of column c's vertical list and bumps
// c.Size. The row-cell/column-header splice itself never allocates.
func (c *ColumnNode) appendCell(n *Node) {
	n.Up = c.Up
	n.Down = &c.Node
	c.Up.Down = n
	c.Up = n
	c.Size++
}

// unlinkVertical removes n from its column's vertical list, decrementing
// size. Does not touch n's own Up/Down fields, so a matched relinkVertical
// restores the list exactly.
func unlinkVertical(n *Node) {
	n.Down.Up = n.Up
	n.Up.Down = n.Down
	n.Column.Size--
}

func relinkVertical(n *Node) {
	n.Column.Size++
	n.Down.Up = n
	n.Up.Down = n
}
